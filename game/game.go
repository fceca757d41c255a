package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var errDirectorStuck = errors.New("director has no move left")

type GameConfig struct {
	// Width of the square board, in cells. 0 asks the player.
	Width int `yaml:"width"`
	// Number of mines to lay. A negative count asks the player.
	NumMines int `yaml:"mines"`

	// Seed for mine placement; 0 picks one from the clock
	Seed int64 `yaml:"seed"`
	// Name of the mine layout strategy, see LayoutNames
	Layout string `yaml:"layout"`

	// Name of the automated player; empty for a human player
	DirectorName string `yaml:"director"`
	// Pause between automated moves
	DirectorDelay time.Duration `yaml:"delay"`
	Director      Director      `yaml:"-"`

	Verbose bool `yaml:"verbose"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:         0,
		NumMines:      -1,
		Layout:        "shuffle",
		Director:      nil,
		DirectorDelay: 500 * time.Millisecond,
	}
}

func (config GameConfig) seed() int64 {
	if config.Seed != 0 {
		return config.Seed
	}
	return time.Now().UnixNano()
}

func (config GameConfig) createBoard(p *prompter) (*Board, error) {
	layout, err := LayoutByName(config.Layout)
	if err != nil {
		return nil, err
	}

	side := config.Width
	if side == 0 {
		if side, err = p.readWidth(); err != nil {
			return nil, err
		}
	}

	numMines := config.NumMines
	if numMines < 0 {
		// An unplayable width must be reported before the mine count is asked for
		if err := validateBoard(side, 0); err != nil {
			return nil, err
		}
		if numMines, err = p.readNumMines(side); err != nil {
			return nil, err
		}
	}

	seed := config.seed()
	Log.WithFields(logrus.Fields{
		"seed":   seed,
		"layout": config.Layout,
	}).Debug("laying mines")

	return NewBoardWithLayout(side, numMines, rand.New(rand.NewSource(seed)), layout)
}

func (config GameConfig) nextMove(board *Board, p *prompter, out io.Writer) (Coord, error) {
	if config.Director == nil {
		return p.readMove(board)
	}

	if config.DirectorDelay > 0 {
		time.Sleep(config.DirectorDelay)
	}

	coord, ok := config.Director.Act()
	if !ok {
		return Coord{}, errDirectorStuck
	}
	fmt.Fprintf(out, "x: %d\ny: %d\n", coord.X, coord.Y)
	return coord, nil
}

// Run plays one game on the terminal, reading answers from in and drawing to out.
// It returns the board's final state.
func Run(config GameConfig, in io.Reader, out io.Writer) (BoardState, error) {
	p := newPrompter(in, out)

	board, err := config.createBoard(p)
	if err != nil {
		return Ongoing, err
	}

	if config.Director != nil {
		config.Director.Init(board)
		defer config.Director.End()
	}

	gameOver, winner := false, false
	for !gameOver {
		fmt.Fprintln(out, board)
		fmt.Fprintln(out, "Make your move:")

		coord, err := config.nextMove(board, p, out)
		if err != nil {
			return board.State(), err
		}

		outcome := board.Reveal(coord.X, coord.Y)
		Log.WithFields(logrus.Fields{
			"coord":     coord,
			"outcome":   outcome,
			"remaining": board.UnrevealedSafe(),
		}).Debug("revealed cell")

		gameOver = board.HitMine(coord.X, coord.Y)
		if board.IsWinner() && !gameOver {
			gameOver, winner = true, true
		}
	}

	fmt.Fprintln(out, board)
	if winner {
		fmt.Fprintln(out, "Congratulations, You Win!")
	} else {
		fmt.Fprintln(out, "You hit a mine, Game Over!")
	}

	Log.WithField("result", board.State()).Info("game over")
	return board.State(), nil
}
