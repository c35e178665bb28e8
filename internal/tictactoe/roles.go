package tictactoe

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

const (
	HumanTurn Turn = iota
	ComputerTurn
)

// Turn tells who moves in a game against the computer.
type Turn int

func (that Turn) String() string {
	if that == ComputerTurn {
		return "computer"
	}
	return "human"
}

// Roles binds the marks to the human and the computer.
type Roles struct {
	Human    entity.Mark
	Computer entity.Mark
}

// FlipStartingTurn - tosses a fair coin to decide who moves first.
func FlipStartingTurn(picker Picker) Turn {
	if picker.Intn(2) == 0 {
		return HumanTurn
	}
	return ComputerTurn
}

// AssignRoles - whoever starts plays X.
func AssignRoles(first Turn) Roles {
	if first == ComputerTurn {
		return Roles{Human: entity.PlayerO, Computer: entity.PlayerX}
	}
	return Roles{Human: entity.PlayerX, Computer: entity.PlayerO}
}

// SourceFor - returns a lookup that hands out the human source for the human's mark
// and the computer source for the other one.
func (that Roles) SourceFor(human, computer MoveSource) func(entity.Mark) MoveSource {
	return func(mark entity.Mark) MoveSource {
		if mark == that.Human {
			return human
		}
		return computer
	}
}

// TurnOf - tells whether the mark belongs to the human or to the computer.
func (that Roles) TurnOf(mark entity.Mark) Turn {
	if mark == that.Human {
		return HumanTurn
	}
	return ComputerTurn
}
