package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Board struct {
	side     int // in number of cells, both ways
	numMines int
	cells    [][]Cell

	state BoardState
	// Non-mine cells not yet revealed; the game is won when this reaches 0
	unrevealedSafe int
}

func (board *Board) Side() int {
	return board.side
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumCells() int {
	return board.side * board.side
}

func (board *Board) UnrevealedSafe() int {
	return board.unrevealedSafe
}

func (board *Board) State() BoardState {
	return board.state
}

func (board *Board) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < board.side && y < board.side
}

// CellAt panics when (x, y) lies off the board
func (board *Board) CellAt(x, y int) *Cell {
	if !board.Contains(x, y) {
		panic(fmt.Sprintf("cell (%d, %d) is outside the %dx%d board", x, y, board.side, board.side))
	}
	return &board.cells[y][x]
}

// Cells returns every cell in row-major order
func (board *Board) Cells() []*Cell {
	cells := make([]*Cell, 0, board.NumCells())
	for y := range board.cells {
		for x := range board.cells[y] {
			cells = append(cells, &board.cells[y][x])
		}
	}
	return cells
}

// NeighborCoordinates lists the on-board neighbours of (x, y). The x offset varies
// slowest, so (0, 0) yields (0, 1), (1, 0), (1, 1).
func (board *Board) NeighborCoordinates(x, y int) []Coord {
	board.CellAt(x, y)

	coords := make([]Coord, 0, 8)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			nx, ny := x+dx, y+dy
			if (dx != 0 || dy != 0) && board.Contains(nx, ny) {
				coords = append(coords, Coord{X: nx, Y: ny})
			}
		}
	}
	return coords
}

func (board *Board) neighbors(cell *Cell) []*Cell {
	coords := board.NeighborCoordinates(cell.x, cell.y)
	neighbors := make([]*Cell, len(coords))
	for i, coord := range coords {
		neighbors[i] = &board.cells[coord.Y][coord.X]
	}
	return neighbors
}

// PlaceMine mines (x, y) and bumps the count of each neighbouring non-mine.
// Placing a mine twice is a no-op.
func (board *Board) PlaceMine(x, y int) {
	cell := board.CellAt(x, y)
	if cell.isMine {
		return
	}

	cell.isMine = true
	cell.numMines = 0
	board.numMines++
	if !cell.isRevealed {
		board.unrevealedSafe--
	}

	for _, neighbor := range board.neighbors(cell) {
		if !neighbor.isMine {
			neighbor.numMines++
		}
	}
}

// HitMine reports whether (x, y) holds a mine, revealed or not
func (board *Board) HitMine(x, y int) bool {
	return board.CellAt(x, y).isMine
}

func (board *Board) IsWinner() bool {
	return board.unrevealedSafe == 0
}

// Reveal uncovers (x, y). A zero-count cell floods outwards through its connected
// zero region and that region's numbered border. Revealing an already revealed
// cell changes nothing.
func (board *Board) Reveal(x, y int) Outcome {
	cell := board.CellAt(x, y)

	if cell.isRevealed {
		if cell.isMine {
			return Hit
		}
		return Safe
	}

	if cell.isMine {
		cell.isRevealed = true
		board.lose()
		return Hit
	}

	if cell.numMines == 0 {
		revealed := board.flood(cell)
		Log.WithFields(logrus.Fields{
			"cell":     cell,
			"revealed": revealed,
		}).Debug("flooded empty region")
	} else {
		board.markRevealed(cell)
	}

	return Safe
}

func (board *Board) markRevealed(cell *Cell) {
	cell.isRevealed = true
	board.unrevealedSafe--

	if board.unrevealedSafe == 0 && board.state == Ongoing {
		board.win()
	}
}

func (board *Board) win() {
	board.state = Won
}

func (board *Board) lose() {
	board.state = Lost
}

func createBoard(side int) *Board {
	board := Board{
		state:          Ongoing,
		side:           side,
		cells:          make([][]Cell, side),
		unrevealedSafe: side * side,
	}

	for y := 0; y < side; y++ {
		row := make([]Cell, side)
		board.cells[y] = row

		for x := 0; x < side; x++ {
			row[x].x, row[x].y = x, y
		}
	}

	return &board
}

// NewEmptyBoard builds a board without mines. Mines can then be laid by hand
// with PlaceMine.
func NewEmptyBoard(side int) (*Board, error) {
	if err := validateBoard(side, 0); err != nil {
		return nil, err
	}
	return createBoard(side), nil
}

// NewBoard builds a side x side board with numMines mines laid by ShuffleLayout.
// A nil rng is replaced by one seeded from the clock.
func NewBoard(side, numMines int, rng *rand.Rand) (*Board, error) {
	return NewBoardWithLayout(side, numMines, rng, ShuffleLayout)
}

func NewBoardWithLayout(side, numMines int, rng *rand.Rand, layout Layout) (*Board, error) {
	if err := validateBoard(side, numMines); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if layout == nil {
		layout = ShuffleLayout
	}

	board := createBoard(side)
	for _, coord := range layout(side, numMines, rng) {
		board.PlaceMine(coord.X, coord.Y)
	}

	Log.WithFields(logrus.Fields{
		"side":  side,
		"mines": board.numMines,
	}).Debug("created board")

	return board, nil
}
