package constraint

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/termsweep/director/random"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/util/collections"
)

// Number of observe/deduce passes made before giving up on a deliberate move
const maxDeduceRounds = 8

// Director plays by deduction. Each revealed number yields an Observation about
// its unrevealed neighbours; overlapping observations are reduced until some cells
// are certainly safe or certainly mined. Mines it deduces are remembered here and
// never revealed.
type Director struct {
	rand   *rand.Rand
	board  *game.Board
	random *random.Director

	knownMines collections.Set[*game.Cell]
	// Cells deduced safe, waiting to be revealed
	pending deque.Deque
}

type Observation struct {
	origin   *game.Cell
	numMines int
	cells    collections.Set[*game.Cell]
}

func (observation Observation) String() string {
	coords := make([]string, 0, observation.cells.Len())
	for cell := range observation.cells {
		coords = append(coords, cell.Coord().String())
	}

	var originRepr string
	if observation.origin == nil {
		originRepr = "?"
	} else {
		originRepr = observation.origin.Coord().String()
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, strings.Join(coords, ", "))
}

func (observation Observation) MineProbability() float32 {
	return float32(observation.numMines) / float32(observation.cells.Len())
}

// New returns a Director breaking ties with rng, or with a clock-seeded source if rng is nil
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
	director.knownMines = collections.NewSet[*game.Cell]()
	director.pending = deque.Deque{}

	director.random = random.New(director.rand)
	director.random.Init(board)
}

// KnownMine reports whether the director has deduced that cell holds a mine
func (director *Director) KnownMine(cell *game.Cell) bool {
	return director.knownMines.Contains(cell)
}

func (director *Director) Act() (game.Coord, bool) {
	actors := []func() (*game.Cell, bool){
		director.actDeliberate,
		director.actLowestProbability,
		director.actRandom,
	}

	for _, actor := range actors {
		if cell, ok := actor(); ok {
			return cell.Coord(), true
		}
	}
	return game.Coord{}, false
}

func (director *Director) End() {
	director.board = nil
	director.pending = deque.Deque{}
	if director.random != nil {
		director.random.End()
	}
}

func (director *Director) popPending() (*game.Cell, bool) {
	for director.pending.Len() > 0 {
		cell := director.pending.PopFront().(*game.Cell)
		// Flooding may have revealed it since it was queued
		if !cell.IsRevealed() {
			return cell, true
		}
	}
	return nil, false
}

func (director *Director) actDeliberate() (*game.Cell, bool) {
	if cell, ok := director.popPending(); ok {
		return cell, true
	}

	director.deduce()
	return director.popPending()
}

func (director *Director) actLowestProbability() (*game.Cell, bool) {
	lowestProbability := float32(math.Inf(1))
	cellProbabilities := make(map[*game.Cell]float32)

	for _, observation := range director.observe() {
		probability := observation.MineProbability()
		if probability < lowestProbability {
			lowestProbability = probability
		}

		for cell := range observation.cells {
			pastProbability, hasPastProbability := cellProbabilities[cell]
			if !hasPastProbability || probability < pastProbability {
				cellProbabilities[cell] = probability
			}
		}
	}

	if len(cellProbabilities) == 0 {
		return nil, false
	}

	lowestProbabilityCells := make([]*game.Cell, 0, len(cellProbabilities))
	for _, cell := range director.board.Cells() {
		if probability, ok := cellProbabilities[cell]; ok && probability <= lowestProbability {
			lowestProbabilityCells = append(lowestProbabilityCells, cell)
		}
	}

	director.rand.Shuffle(len(lowestProbabilityCells), func(i, j int) {
		lowestProbabilityCells[i], lowestProbabilityCells[j] = lowestProbabilityCells[j], lowestProbabilityCells[i]
	})

	game.Log.WithFields(logrus.Fields{
		"director":    "constraint",
		"probability": lowestProbability,
		"candidates":  len(lowestProbabilityCells),
	}).Debug("guessing lowest mine probability")

	return lowestProbabilityCells[0], true
}

func (director *Director) actRandom() (*game.Cell, bool) {
	coord, ok := director.random.ActAvoiding(director.KnownMine)
	if !ok {
		return nil, false
	}
	return director.board.CellAt(coord.X, coord.Y), true
}

// observe builds one Observation per revealed number that still borders
// unrevealed cells not known to be mines
func (director *Director) observe() []*Observation {
	board := director.board
	observations := make([]*Observation, 0)

	for _, cell := range board.Cells() {
		if !cell.IsRevealed() || cell.IsMine() {
			continue
		}

		observation := Observation{
			origin:   cell,
			numMines: cell.NumMines(),
			cells:    collections.NewSet[*game.Cell](),
		}

		for _, coord := range board.NeighborCoordinates(cell.X(), cell.Y()) {
			neighbor := board.CellAt(coord.X, coord.Y)
			switch {
			case neighbor.IsRevealed():
			case director.knownMines.Contains(neighbor):
				observation.numMines--
			default:
				observation.cells.Add(neighbor)
			}
		}

		if observation.cells.Len() > 0 {
			observations = append(observations, &observation)
		}
	}

	return observations
}

// simplify derives new observations from every overlapping pair
func (director *Director) simplify(observations []*Observation) []*Observation {
	seen := collections.NewSet[string]()
	for _, observation := range observations {
		seen.Add(director.key(observation.cells))
	}

	derived := observations
	addObservation := func(observation *Observation) {
		// Don't add vacuous or duplicate observations
		if observation.cells.Len() == 0 {
			return
		}
		key := director.key(observation.cells)
		if seen.Contains(key) {
			return
		}
		seen.Add(key)
		derived = append(derived, observation)
	}

	for _, observation := range observations {
		for _, intersectingObs := range observations {
			if intersectingObs == observation {
				continue
			}

			sharedCells, isSubset := observation.cells.IntersectionEx(intersectingObs.cells)
			if sharedCells.Len() == 0 {
				continue
			}

			if isSubset {
				addObservation(&Observation{
					numMines: intersectingObs.numMines - observation.numMines,
					cells:    intersectingObs.cells.Difference(observation.cells),
				})
				continue
			}

			// At most this many of intersectingObs's mines can hide in the shared cells
			maxSharedMines := observation.numMines
			if sharedCells.Len() < maxSharedMines {
				maxSharedMines = sharedCells.Len()
			}

			leftOnlyCells := intersectingObs.cells.Difference(sharedCells)
			occludedMines := intersectingObs.numMines - maxSharedMines
			if occludedMines > 0 && occludedMines == leftOnlyCells.Len() {
				addObservation(&Observation{
					numMines: occludedMines,
					cells:    leftOnlyCells,
				})
			}
		}
	}

	return derived
}

// deduce queues every cell it can prove safe, recording proven mines on the way
func (director *Director) deduce() {
	for round := 0; round < maxDeduceRounds; round++ {
		observations := director.simplify(director.observe())

		safeCells := collections.NewSet[*game.Cell]()
		newMines := 0
		for _, observation := range observations {
			switch observation.numMines {
			case observation.cells.Len():
				newMines += director.knownMines.Union(observation.cells)
			case 0:
				safeCells.Union(observation.cells)
			}
		}

		// A cell cannot be both; trust the mine deduction
		safeCells = safeCells.Difference(director.knownMines)

		if safeCells.Len() > 0 {
			for _, cell := range director.board.Cells() {
				if safeCells.Contains(cell) {
					director.pending.PushBack(cell)
				}
			}

			game.Log.WithFields(logrus.Fields{
				"director": "constraint",
				"round":    round,
				"safe":     safeCells.Len(),
				"mines":    director.knownMines.Len(),
			}).Debug("deduced safe cells")
			return
		}

		if newMines == 0 {
			return
		}
	}
}

func (director *Director) key(cells collections.Set[*game.Cell]) string {
	side := director.board.Side()
	present := make([]bool, director.board.NumCells())
	for cell := range cells {
		present[cell.Y()*side+cell.X()] = true
	}

	var key strings.Builder
	for idx, isPresent := range present {
		if isPresent {
			fmt.Fprintf(&key, "%d,", idx)
		}
	}
	return key.String()
}
