package apperror

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrIllegalMove      = errors.New("illegal move")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrNoAvailableMoves = errors.New("no available moves")
)
