package game

import (
	"fmt"
)

type Cell struct {
	x, y     int
	numMines int

	isMine, isRevealed bool
}

// Coord addresses a cell by column (X) and row (Y)
type Coord struct {
	X, Y int
}

func (coord Coord) String() string {
	return fmt.Sprintf("(%d, %d)", coord.X, coord.Y)
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.x, cell.y)
}

func (cell *Cell) X() int {
	return cell.x
}

func (cell *Cell) Y() int {
	return cell.y
}

func (cell *Cell) Coord() Coord {
	return Coord{X: cell.x, Y: cell.y}
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

// NumMines is the number of mines among the 8 neighbouring cells. It carries no
// meaning for a mine.
func (cell *Cell) NumMines() int {
	return cell.numMines
}

// State reports what the player can see of the cell
func (cell *Cell) State() CellState {
	switch {
	case !cell.isRevealed:
		return Unrevealed
	case cell.isMine:
		return Mine
	default:
		return CellState(cell.numMines)
	}
}

func (cell *Cell) Glyph() string {
	return cell.State().Glyph()
}
