package game

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Layout chooses numMines distinct coordinates on a side x side board
type Layout func(side, numMines int, rng *rand.Rand) []Coord

var layouts = map[string]Layout{
	"shuffle": ShuffleLayout,
	"reject":  RejectionLayout,
}

// LayoutNames lists the names accepted by LayoutByName
func LayoutNames() []string {
	return []string{"shuffle", "reject"}
}

func LayoutByName(name string) (Layout, error) {
	if layout, ok := layouts[name]; ok {
		return layout, nil
	}
	return nil, errors.Wrapf(ErrUnknownLayout, "%q", name)
}

// ShuffleLayout shuffles every cell index and mines the first numMines of them.
func ShuffleLayout(side, numMines int, rng *rand.Rand) []Coord {
	cellIndexes := make([]int, side*side)
	for i := range cellIndexes {
		cellIndexes[i] = i
	}

	rng.Shuffle(len(cellIndexes), func(i, j int) {
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
	})

	coords := make([]Coord, numMines)
	for i := 0; i < numMines; i++ {
		cellIdx := cellIndexes[i]
		coords[i] = Coord{X: cellIdx % side, Y: cellIdx / side}
	}
	return coords
}

// RejectionLayout draws uniform coordinates until numMines distinct ones have been
// found. Expected running time grows sharply as numMines approaches side*side, and
// it never returns if numMines exceeds it.
func RejectionLayout(side, numMines int, rng *rand.Rand) []Coord {
	mined := make(map[Coord]struct{}, numMines)
	coords := make([]Coord, 0, numMines)
	attempts := 0

	for len(coords) < numMines {
		attempts++
		coord := Coord{X: rng.Intn(side), Y: rng.Intn(side)}
		if _, isMined := mined[coord]; isMined {
			continue
		}
		mined[coord] = struct{}{}
		coords = append(coords, coord)
	}

	Log.WithField("attempts", attempts).Debug("rejection layout finished")
	return coords
}
