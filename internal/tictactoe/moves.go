package tictactoe

import (
	"slices"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// AvailableMoves is the ordered set of cells nobody has played yet.
type AvailableMoves struct {
	size  int
	cells []entity.Cell
}

// NewAvailableMoves - collects the empty cells of the board.
func NewAvailableMoves(board *entity.Board) *AvailableMoves {
	return &AvailableMoves{
		size:  board.Size(),
		cells: board.EmptyCells(),
	}
}

func (that *AvailableMoves) Len() int {
	return len(that.cells)
}

func (that *AvailableMoves) Contains(cell entity.Cell) bool {
	_, found := that.search(cell)
	return found
}

// Remove - deletes the cell from the set, reports false if it was not there.
func (that *AvailableMoves) Remove(cell entity.Cell) bool {
	i, found := that.search(cell)
	if !found {
		return false
	}

	that.cells = slices.Delete(that.cells, i, i+1)

	return true
}

// Cells - returns a copy of the remaining cells in ascending index order.
func (that *AvailableMoves) Cells() []entity.Cell {
	return slices.Clone(that.cells)
}

func (that *AvailableMoves) at(i int) entity.Cell {
	return that.cells[i]
}

func (that *AvailableMoves) search(cell entity.Cell) (int, bool) {
	if cell.Row < 0 || cell.Row >= that.size || cell.Col < 0 || cell.Col >= that.size {
		return 0, false
	}

	return slices.BinarySearchFunc(that.cells, cell.Index(that.size), func(c entity.Cell, target int) int {
		return c.Index(that.size) - target
	})
}
