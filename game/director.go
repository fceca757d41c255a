package game

type Director interface {
	/**
	 * Initialize the director for a fresh board
	 */
	Init(*Board)

	/**
	 * Choose the next cell to reveal. ok is false if the director has no move.
	 */
	Act() (coord Coord, ok bool)

	/**
	 * Stop acting
	 */
	End()
}
