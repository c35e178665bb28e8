package entity

const (
	Empty   Mark = ""
	PlayerX Mark = "X"
	PlayerO Mark = "O"
)

// Mark is the symbol a player places on the board.
type Mark string

func (that Mark) String() string {
	if that == Empty {
		return " "
	}
	return string(that)
}

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == PlayerO {
		return PlayerX
	}
	return PlayerO
}

func ParseMark(s string) (Mark, bool) {
	switch Mark(s) {
	case PlayerX, PlayerO:
		return Mark(s), true
	default:
		return Empty, false
	}
}
