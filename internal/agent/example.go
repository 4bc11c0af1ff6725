package agent

import (
	"context"
	"slices"
)

func init() {
	Register("example", func(Options) (Agent, error) {
		return Example{}, nil
	})
}

// Example is a minimal agent showing the turn contract. It tries a move on
// a private copy of the board, then submits twice: only the second call,
// the last legal column, is played.
type Example struct{}

func (Example) Name() string { return "example player" }

func (Example) TakeTurn(_ context.Context, req TurnRequest, submit func(column int)) error {
	legal := slices.Collect(req.Board.LegalColumns())
	if len(legal) == 0 {
		return nil
	}

	// Simulated moves never touch the match board.
	if _, err := req.Board.ApplyMove(legal[0], req.Player); err != nil {
		return err
	}

	submit(legal[0])
	submit(legal[len(legal)-1])
	return nil
}
