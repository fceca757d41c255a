package game

import "github.com/gammazero/deque"

// flood reveals start and, breadth first, every cell reachable from it through
// zero-count cells. Cells are marked revealed as they are queued, so none is
// queued twice. Returns the number of cells revealed.
func (board *Board) flood(start *Cell) int {
	var visitQueue deque.Deque
	revealed := 0

	enqueue := func(cell *Cell) {
		board.markRevealed(cell)
		revealed++
		visitQueue.PushBack(cell)
	}

	enqueue(start)
	for visitQueue.Len() > 0 {
		cell := visitQueue.PopFront().(*Cell)
		if cell.numMines != 0 {
			continue
		}

		for _, neighbor := range board.neighbors(cell) {
			// A zero-count cell has no mined neighbours
			if !neighbor.isRevealed {
				enqueue(neighbor)
			}
		}
	}

	return revealed
}
