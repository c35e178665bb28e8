package tictactoe

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/mock"
)

var errSourceBroken = errors.New("source broken")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// boardFromRows builds a board from rows like "XO ", where a space is an empty cell.
func boardFromRows(rows ...string) *entity.Board {
	board := entity.NewBoard(len(rows))
	for row, line := range rows {
		for col, ch := range line {
			if ch == ' ' {
				continue
			}
			if err := board.Place(row, col, entity.Mark(string(ch))); err != nil {
				panic(err)
			}
		}
	}

	return board
}

// fixedPicker always returns the same index.
type fixedPicker int

func (that fixedPicker) Intn(n int) int {
	return int(that) % n
}

// countingPicker records every range it was asked for and returns the index from a script.
type countingPicker struct {
	picks  []int
	ranges []int
}

func (that *countingPicker) Intn(n int) int {
	that.ranges = append(that.ranges, n)
	pick := that.picks[0]
	that.picks = that.picks[1:]
	return pick
}

// scriptedPrompter answers ReadInt with the given values, then io.EOF.
type scriptedPrompter struct {
	values   []int
	prompts  []string
	messages []string
}

func (that *scriptedPrompter) ReadInt(_ context.Context, prompt string, _, _ int) (int, error) {
	that.prompts = append(that.prompts, prompt)
	if len(that.values) == 0 {
		return 0, io.EOF
	}

	value := that.values[0]
	that.values = that.values[1:]

	return value, nil
}

func (that *scriptedPrompter) Notify(message string) {
	that.messages = append(that.messages, message)
}

func humanInput(cells ...entity.Cell) *scriptedPrompter {
	prompter := &scriptedPrompter{}
	for _, cell := range cells {
		prompter.values = append(prompter.values, cell.Row, cell.Col)
	}

	return prompter
}

// scriptedSource replays a fixed list of moves without any validation.
type scriptedSource struct {
	cells []entity.Cell
	err   error
}

func (that *scriptedSource) NextMove(_ context.Context, _ *entity.Board) (entity.Cell, error) {
	if that.err != nil {
		return entity.Cell{}, that.err
	}

	cell := that.cells[0]
	that.cells = that.cells[1:]

	return cell, nil
}

type recordedMove struct {
	Mark entity.Mark
	Cell entity.Cell
}

type recordingListener struct {
	turns []entity.Mark
	moves []recordedMove
}

func (that *recordingListener) TurnStarted(mark entity.Mark) {
	that.turns = append(that.turns, mark)
}

func (that *recordingListener) MoveApplied(mark entity.Mark, cell entity.Cell, _ *entity.Board) {
	that.moves = append(that.moves, recordedMove{Mark: mark, Cell: cell})
}

type mockListener struct {
	mock.Mock
}

func (that *mockListener) TurnStarted(mark entity.Mark) {
	that.Called(mark)
}

func (that *mockListener) MoveApplied(mark entity.Mark, cell entity.Cell, board *entity.Board) {
	that.Called(mark, cell, board)
}
