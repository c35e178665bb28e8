package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWin(t *testing.T) {
	t.Run("Empty board is never a win", func(t *testing.T) {
		for size := 2; size <= 10; size++ {
			assert.False(t, IsWin(entity.NewBoard(size)), "size %d", size)
		}
	})

	t.Run("Full row of X", func(t *testing.T) {
		// Given: a board where player X owns the bottom row
		board := boardFromRows(
			"O O",
			" O ",
			"XXX",
		)

		// When: check the board
		// Then: it is a win
		assert.True(t, IsWin(board))
	})

	t.Run("Full column of O", func(t *testing.T) {
		board := boardFromRows(
			"XOX ",
			" O X",
			"XO  ",
			" O  ",
		)

		assert.True(t, IsWin(board))
	})

	t.Run("Diagonal does not count", func(t *testing.T) {
		// Given: player X owns only the main diagonal
		board := boardFromRows(
			"X  ",
			" X ",
			"  X",
		)

		// Then: no row or column is complete, so it is not a win
		assert.False(t, IsWin(board))
	})

	t.Run("Anti-diagonal does not count", func(t *testing.T) {
		board := boardFromRows(
			"OXO",
			"XOX",
			"OXX",
		)

		assert.False(t, IsWin(board))
	})

	t.Run("Mixed row is not a win", func(t *testing.T) {
		board := boardFromRows(
			"XXO",
			"O  ",
			"   ",
		)

		assert.False(t, IsWin(board))
	})

	t.Run("Largest board column", func(t *testing.T) {
		board := entity.NewBoard(10)
		for row := range 10 {
			require.NoError(t, board.Place(row, 7, entity.PlayerO))
		}

		assert.True(t, IsWin(board))
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("Win goes to the last mover", func(t *testing.T) {
		board := boardFromRows(
			"OO",
			"X ",
		)

		outcome := Evaluate(board, 3, entity.PlayerO)

		assert.Equal(t, Outcome{Status: StatusWin, Winner: entity.PlayerO, Moves: 3}, outcome)
		assert.True(t, outcome.IsFinished())
	})

	t.Run("Draw when the board is full", func(t *testing.T) {
		board := boardFromRows(
			"XO",
			"OX",
		)

		outcome := Evaluate(board, 4, entity.PlayerO)

		assert.Equal(t, Outcome{Status: StatusDraw, Moves: 4}, outcome)
		assert.True(t, outcome.IsFinished())
	})

	t.Run("Ongoing game", func(t *testing.T) {
		board := boardFromRows(
			"X  ",
			" O ",
			"   ",
		)

		outcome := Evaluate(board, 2, entity.PlayerO)

		assert.Equal(t, StatusOngoing, outcome.Status)
		assert.False(t, outcome.IsFinished())
	})
}
