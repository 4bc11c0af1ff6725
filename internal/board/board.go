// Package board implements the immutable connect-N game position: a grid of
// gravity-filled columns with an incrementally maintained resolution status.
//
// A Board is a value. ApplyMove never modifies its receiver; it returns a new
// Board that shares every untouched column with the old one, so boards can be
// handed to other goroutines without locking.
package board

import (
	"iter"
	"slices"
)

// Board is one game position. The zero value is not usable; create boards
// with Empty, Parse or FromMoves.
type Board struct {
	width     int
	height    int
	winLength int

	// columns[c][r] is the owner of row r of column c, row 0 at the bottom.
	columns [][]Player
	// heights[c] is the number of occupied slots in column c.
	heights []int

	turnsTaken int
	status     Resolution
}

// Empty returns a board with every slot empty and status InProgress.
func Empty(width, height, winLength int) (Board, error) {
	if width <= 0 || height <= 0 || winLength <= 0 {
		return Board{}, ErrInvalidDimensions
	}

	columns := make([][]Player, width)
	for c := range columns {
		columns[c] = make([]Player, height)
	}

	return Board{
		width:     width,
		height:    height,
		winLength: winLength,
		columns:   columns,
		heights:   make([]int, width),
	}, nil
}

// Width returns the number of columns.
func (b Board) Width() int { return b.width }

// Height returns the number of rows.
func (b Board) Height() int { return b.height }

// WinLength returns the run length required to win.
func (b Board) WinLength() int { return b.winLength }

// TurnsTaken returns the number of pieces placed so far.
func (b Board) TurnsTaken() int { return b.turnsTaken }

// Status returns the cached resolution of the position.
func (b Board) Status() Resolution { return b.status }

// IsTerminal reports whether the game is won or tied.
func (b Board) IsTerminal() bool { return b.status.Terminal() }

// Full reports whether every slot is occupied.
func (b Board) Full() bool { return b.turnsTaken == b.width*b.height }

// ColumnHeight returns how many pieces column c holds, or -1 when c does not exist.
func (b Board) ColumnHeight(c int) int {
	if c < 0 || c >= b.width {
		return -1
	}
	return b.heights[c]
}

// ApplyMove drops player's piece into column and returns the resulting board.
// The status of the new board is derived from the placed slot only.
func (b Board) ApplyMove(column int, player Player) (Board, error) {
	if player == None {
		return Board{}, &MoveError{Column: column, Player: player, Err: ErrInvalidPlayer}
	}
	if b.status.Terminal() {
		return Board{}, &MoveError{Column: column, Player: player, Err: ErrGameAlreadyResolved}
	}
	if column < 0 || column >= b.width {
		return Board{}, &MoveError{Column: column, Player: player, Err: ErrInvalidColumn}
	}
	row := b.heights[column]
	if row >= b.height {
		return Board{}, &MoveError{Column: column, Player: player, Err: ErrColumnFull}
	}

	next := b
	next.columns = slices.Clone(b.columns)
	next.columns[column] = slices.Clone(b.columns[column])
	next.columns[column][row] = player
	next.heights = slices.Clone(b.heights)
	next.heights[column]++
	next.turnsTaken++
	next.status = next.resolveAt(column, row, player)

	return next, nil
}

// SlotAt returns the owner of a slot. The boolean is false for an empty slot.
func (b Board) SlotAt(column, row int) (Player, bool, error) {
	if !b.inBounds(column, row) {
		return None, false, ErrOutOfBounds
	}
	p := b.columns[column][row]
	return p, p != None, nil
}

// Owner is SlotAt without the error: out-of-bounds slots read as None.
func (b Board) Owner(column, row int) Player {
	if !b.inBounds(column, row) {
		return None
	}
	return b.at(column, row)
}

// LegalColumns yields, in ascending order, every column whose top slot is
// empty. It does not consult the resolution status.
func (b Board) LegalColumns() iter.Seq[int] {
	return func(yield func(int) bool) {
		for c := range b.width {
			if b.heights[c] < b.height && !yield(c) {
				return
			}
		}
	}
}

func (b Board) inBounds(column, row int) bool {
	return column >= 0 && column < b.width && row >= 0 && row < b.height
}

// at returns the owner of an in-bounds slot.
func (b Board) at(column, row int) Player {
	return b.columns[column][row]
}
