package tictactoe

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

const (
	StatusOngoing Status = "ongoing"
	StatusWin     Status = "win"
	StatusDraw    Status = "draw"
)

type Status string

// Outcome describes the state of a game after a move.
type Outcome struct {
	Status Status      `json:"status"`
	Winner entity.Mark `json:"winner,omitempty"`
	Moves  int         `json:"moves"`
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

// IsWin - reports whether a full row or a full column holds a single mark.
// Diagonals are not lines in this game.
func IsWin(board *entity.Board) bool {
	size := board.Size()

	for i := range size {
		if lineOwner(size, func(j int) entity.Mark { return board.At(i, j) }) != entity.Empty {
			return true
		}
		if lineOwner(size, func(j int) entity.Mark { return board.At(j, i) }) != entity.Empty {
			return true
		}
	}

	return false
}

func lineOwner(size int, at func(int) entity.Mark) entity.Mark {
	first := at(0)
	if first == entity.Empty {
		return entity.Empty
	}

	for j := 1; j < size; j++ {
		if at(j) != first {
			return entity.Empty
		}
	}

	return first
}

// Evaluate - computes the outcome from the board and the number of moves made so far.
// lastMark is the mark of the player who made the last move.
func Evaluate(board *entity.Board, moves int, lastMark entity.Mark) Outcome {
	switch {
	case IsWin(board):
		return Outcome{Status: StatusWin, Winner: lastMark, Moves: moves}
	case moves >= board.Capacity():
		return Outcome{Status: StatusDraw, Moves: moves}
	default:
		return Outcome{Status: StatusOngoing, Moves: moves}
	}
}
