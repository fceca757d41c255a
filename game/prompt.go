package game

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter reads whole-number answers from the player, one per line
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *prompter) readInt(question string) (int, error) {
	for {
		fmt.Fprint(p.out, question)

		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return 0, err
			}
			return 0, ErrInputClosed
		}

		answer, err := strconv.Atoi(strings.TrimSpace(p.scanner.Text()))
		if err == nil {
			return answer, nil
		}
		fmt.Fprintln(p.out, "Please enter a whole number.")
	}
}

func (p *prompter) readWidth() (int, error) {
	width, err := p.readInt("Choose the width of the board: ")
	for err == nil && width < MinSide {
		fmt.Fprintf(p.out, "Board width should be at least %d for a playable game.\n", MinSide)
		width, err = p.readInt("Choose the width of the board: ")
	}
	return width, err
}

func (p *prompter) readNumMines(side int) (int, error) {
	numMines, err := p.readInt("Choose the number of mines: ")
	for err == nil && (numMines < 0 || numMines >= side*side) {
		fmt.Fprintln(p.out, "Number of mines should be less than the total number of spots on the board.")
		numMines, err = p.readInt("Choose the number of mines: ")
	}
	return numMines, err
}

func (p *prompter) readCoord() (Coord, error) {
	x, err := p.readInt("x: ")
	if err != nil {
		return Coord{}, err
	}
	y, err := p.readInt("y: ")
	if err != nil {
		return Coord{}, err
	}
	return Coord{X: x, Y: y}, nil
}

// readMove asks until the player names an unrevealed cell on the board
func (p *prompter) readMove(board *Board) (Coord, error) {
	for {
		coord, err := p.readCoord()
		if err != nil {
			return Coord{}, err
		}

		switch {
		case !board.Contains(coord.X, coord.Y):
			fmt.Fprintln(p.out, "Invalid coordinates. Please choose coordinates within the board range.")
		case board.CellAt(coord.X, coord.Y).IsRevealed():
			fmt.Fprintln(p.out, "Spot already selected. Please choose an unselected spot.")
		default:
			return coord, nil
		}
	}
}
