package random

import (
	"math/rand"
	"time"

	"github.com/they4kman/termsweep/game"
)

// Director reveals unrevealed cells in a random order fixed at Init
type Director struct {
	rand  *rand.Rand
	board *game.Board
	order []*game.Cell
}

// New returns a Director drawing from rng, or from a clock-seeded source if rng is nil
func New(rng *rand.Rand) *Director {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Director{rand: rng}
}

func (director *Director) Init(board *game.Board) {
	if director.rand == nil {
		director.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	director.board = board
	director.order = board.Cells()

	director.rand.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act() (game.Coord, bool) {
	return director.ActAvoiding(nil)
}

// ActAvoiding picks the next unrevealed cell for which avoid returns false
func (director *Director) ActAvoiding(avoid func(*game.Cell) bool) (game.Coord, bool) {
	for _, cell := range director.order {
		if cell.IsRevealed() {
			continue
		}
		if avoid != nil && avoid(cell) {
			continue
		}
		return cell.Coord(), true
	}
	return game.Coord{}, false
}

func (director *Director) End() {
	director.board = nil
	director.order = nil
}
