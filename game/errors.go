package game

import "github.com/pkg/errors"

var (
	ErrInvalidSize      = errors.New("invalid board size")
	ErrInvalidMineCount = errors.New("invalid mine count")
	ErrUnknownLayout    = errors.New("unknown mine layout")
	ErrInputClosed      = errors.New("input closed before the game ended")
)

func validateBoard(side, numMines int) error {
	if side < MinSide {
		return errors.Wrapf(ErrInvalidSize, "board width %d is below the minimum of %d", side, MinSide)
	}
	if numMines < 0 || numMines >= side*side {
		return errors.Wrapf(ErrInvalidMineCount, "%d mines do not fit a %dx%d board", numMines, side, side)
	}
	return nil
}
