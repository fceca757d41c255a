package game

import "strconv"

type CellState int
type BoardState int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Mine
)

// Glyph returns the text drawn for a cell in this state
func (state CellState) Glyph() string {
	switch state {
	case Unrevealed:
		return " "
	case Mine:
		return "*"
	default:
		return strconv.Itoa(int(state))
	}
}

const (
	Ongoing BoardState = iota
	Won
	Lost
)

func (state BoardState) String() string {
	switch state {
	case Ongoing:
		return "ongoing"
	case Won:
		return "win"
	case Lost:
		return "loss"
	default:
		return "other"
	}
}

// Outcome of revealing a single cell
type Outcome int

const (
	Safe Outcome = iota
	Hit
)

func (outcome Outcome) String() string {
	if outcome == Hit {
		return "hit"
	}
	return "safe"
}

// MinSide is the smallest playable board width
const MinSide = 3
