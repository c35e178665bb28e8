package tictactoe

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

// TurnController keeps track of whose turn it is and how many moves were made.
type TurnController struct {
	active   entity.Mark
	moves    int
	capacity int
}

func NewTurnController(first entity.Mark, capacity int) *TurnController {
	return &TurnController{
		active:   first,
		capacity: capacity,
	}
}

func (that *TurnController) Active() entity.Mark {
	return that.active
}

func (that *TurnController) Moves() int {
	return that.moves
}

// Record - counts one applied move.
func (that *TurnController) Record() {
	that.moves++
}

// Advance - passes the turn to the other mark.
func (that *TurnController) Advance() {
	that.active = toggleMark(that.active)
}

func (that *TurnController) IsExhausted() bool {
	return that.moves >= that.capacity
}

func toggleMark(currentMark entity.Mark) entity.Mark {
	return currentMark.Opponent()
}
