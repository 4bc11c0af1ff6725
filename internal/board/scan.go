package board

// Scan derives the status of b from scratch by searching every column, every
// row and every diagonal for winLength consecutive slots of one owner. It
// ignores the cached status, which makes it the check to use for boards that
// were not built move by move. On boards built with ApplyMove it agrees with
// Status.
func Scan(b Board) Resolution {
	if winner := b.scanLines(); winner != None {
		return Resolution{Kind: Won, Winner: winner}
	}

	occupied := 0
	for _, h := range b.heights {
		occupied += h
	}
	if occupied == b.width*b.height {
		return Resolution{Kind: Tie}
	}
	return Resolution{Kind: InProgress}
}

// scanLines returns the owner of the first run found, columns first, then
// rows, then diagonals (constant column-row), then anti-diagonals (constant
// column+row).
func (b Board) scanLines() Player {
	for c := range b.width {
		if p := b.runAlong(c, 0, 0, 1); p != None {
			return p
		}
	}
	for r := range b.height {
		if p := b.runAlong(0, r, 1, 0); p != None {
			return p
		}
	}

	// Diagonals start on the left edge or the bottom edge.
	for r := b.height - 1; r >= 0; r-- {
		if p := b.runAlong(0, r, 1, 1); p != None {
			return p
		}
	}
	for c := 1; c < b.width; c++ {
		if p := b.runAlong(c, 0, 1, 1); p != None {
			return p
		}
	}

	// Anti-diagonals start on the left edge or the top edge.
	for r := range b.height {
		if p := b.runAlong(0, r, 1, -1); p != None {
			return p
		}
	}
	for c := 1; c < b.width; c++ {
		if p := b.runAlong(c, b.height-1, 1, -1); p != None {
			return p
		}
	}

	return None
}

// runAlong walks a whole line from (column, row) and returns the owner of the
// first run of winLength consecutive slots, or None.
func (b Board) runAlong(column, row, dc, dr int) Player {
	owner := None
	count := 0
	for c, r := column, row; b.inBounds(c, r); c, r = c+dc, r+dr {
		p := b.at(c, r)
		switch {
		case p == None:
			owner, count = None, 0
		case p == owner:
			count++
		default:
			owner, count = p, 1
		}
		if owner != None && count >= b.winLength {
			return owner
		}
	}
	return None
}
