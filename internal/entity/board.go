package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Cell addresses a single position on the board.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Index - returns the linear row-major index of the cell on a board of the given size.
func (that Cell) Index(size int) int {
	return that.Row*size + that.Col
}

func (that Cell) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Board is a square grid of marks. Place is the only way to change it.
type Board struct {
	size  int
	cells [][]Mark
}

func NewBoard(size int) *Board {
	cells := make([][]Mark, size)
	for row := range cells {
		cells[row] = make([]Mark, size)
	}

	return &Board{
		size:  size,
		cells: cells,
	}
}

func (that *Board) Size() int {
	return that.size
}

// Capacity - returns the number of cells on the board.
func (that *Board) Capacity() int {
	return that.size * that.size
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

// At - returns the mark at the given position, Empty when it is out of range.
func (that *Board) At(row, col int) Mark {
	if !that.InBounds(row, col) {
		return Empty
	}
	return that.cells[row][col]
}

func (that *Board) IsEmpty(row, col int) bool {
	return that.InBounds(row, col) && that.cells[row][col] == Empty
}

// Place - puts the mark on an empty cell.
func (that *Board) Place(row, col int, mark Mark) error {
	if !that.InBounds(row, col) {
		return fmt.Errorf("%w: %w: row %d, col %d", apperror.ErrIllegalMove, apperror.ErrInvalidCell, row, col)
	}

	if mark != PlayerX && mark != PlayerO {
		return fmt.Errorf("%w: unknown mark %q", apperror.ErrIllegalMove, string(mark))
	}

	if that.cells[row][col] != Empty {
		return fmt.Errorf("%w: %w: row %d, col %d", apperror.ErrIllegalMove, apperror.ErrCellOccupied, row, col)
	}

	that.cells[row][col] = mark

	return nil
}

// EmptyCells - returns all empty cells ordered by their linear index.
func (that *Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, that.Capacity())
	for row := range that.cells {
		for col, mark := range that.cells[row] {
			if mark == Empty {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}

	return cells
}

// Rows - returns a copy of the grid, safe to keep after further moves.
func (that *Board) Rows() [][]Mark {
	rows := make([][]Mark, that.size)
	for i, row := range that.cells {
		rows[i] = append([]Mark(nil), row...)
	}

	return rows
}
