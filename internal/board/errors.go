package board

import "fmt"

// Error is a rule violation reported by board operations.
// Callers compare against the constants with errors.Is.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidDimensions   Error = "board: invalid dimensions"
	ErrInvalidPlayer       Error = "board: invalid player"
	ErrInvalidColumn       Error = "board: column does not exist"
	ErrColumnFull          Error = "board: column is full"
	ErrGameAlreadyResolved Error = "board: game already resolved"
	ErrOutOfBounds         Error = "board: slot out of bounds"
	ErrMalformedGrid       Error = "board: malformed grid"
	ErrFloatingPiece       Error = "board: piece above an empty slot"
)

// MoveError describes a rejected move. It unwraps to one of the Err* constants.
type MoveError struct {
	Column int
	Player Player
	Err    error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%v (column %d, player %s)", e.Err, e.Column, e.Player)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// SequenceError reports the position of the failing move in a move list.
type SequenceError struct {
	Index int
	Err   error
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("move %d: %v", e.Index, e.Err)
}

func (e *SequenceError) Unwrap() error {
	return e.Err
}
