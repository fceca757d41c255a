package game

import (
	"strconv"
	"strings"
)

func (board *Board) divider() string {
	return "\n---" + strings.Repeat("----", board.side) + "\n"
}

// Render draws the grid as text: a header of column indexes, then each row
// prefixed by its index, every line followed by a divider of dashes.
func (board *Board) Render() string {
	var out strings.Builder
	divider := board.divider()

	out.WriteString(" ")
	for x := 0; x < board.side; x++ {
		out.WriteString(" | ")
		out.WriteString(strconv.Itoa(x))
	}
	out.WriteString(divider)

	for y, row := range board.cells {
		out.WriteString(strconv.Itoa(y))
		for x := range row {
			out.WriteString(" | ")
			out.WriteString(row[x].Glyph())
		}
		out.WriteString(" |")
		out.WriteString(divider)
	}

	return out.String()
}

func (board *Board) String() string {
	return board.Render()
}
