package tictactoe

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// MoveSource supplies the next move of one player.
type MoveSource interface {
	NextMove(ctx context.Context, board *entity.Board) (entity.Cell, error)
}

// MoveObserver is notified about every move applied to the board, whoever made it.
type MoveObserver interface {
	ObserveMove(cell entity.Cell, mark entity.Mark)
}

// Prompter reads validated values from the person at the keyboard.
type Prompter interface {
	ReadInt(ctx context.Context, prompt string, minValue, maxValue int) (int, error)
	Notify(message string)
}

// Picker returns a uniformly distributed number in [0, n). *rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}

type HumanMoveSource struct {
	prompter Prompter
}

func NewHumanMoveSource(prompter Prompter) *HumanMoveSource {
	return &HumanMoveSource{
		prompter: prompter,
	}
}

// NextMove - asks for a row and a column until they point at an empty cell.
func (that *HumanMoveSource) NextMove(ctx context.Context, board *entity.Board) (entity.Cell, error) {
	maxIndex := board.Size() - 1

	for {
		row, err := that.prompter.ReadInt(ctx, "Enter row index", 0, maxIndex)
		if err != nil {
			return entity.Cell{}, fmt.Errorf("failed to read row: %w", err)
		}

		col, err := that.prompter.ReadInt(ctx, "Enter column index", 0, maxIndex)
		if err != nil {
			return entity.Cell{}, fmt.Errorf("failed to read column: %w", err)
		}

		if board.IsEmpty(row, col) {
			return entity.Cell{Row: row, Col: col}, nil
		}

		that.prompter.Notify("Cell is occupied")
	}
}

type RandomMoveSource struct {
	moves  *AvailableMoves
	picker Picker
}

func NewRandomMoveSource(moves *AvailableMoves, picker Picker) *RandomMoveSource {
	return &RandomMoveSource{
		moves:  moves,
		picker: picker,
	}
}

// NextMove - picks one of the available cells at random and takes it out of the set.
func (that *RandomMoveSource) NextMove(_ context.Context, _ *entity.Board) (entity.Cell, error) {
	if that.moves.Len() == 0 {
		return entity.Cell{}, apperror.ErrNoAvailableMoves
	}

	chosenCell := that.moves.at(that.picker.Intn(that.moves.Len()))
	that.moves.Remove(chosenCell)

	return chosenCell, nil
}

func (that *RandomMoveSource) ObserveMove(cell entity.Cell, _ entity.Mark) {
	that.moves.Remove(cell)
}
