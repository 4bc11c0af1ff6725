// Package agent defines the players of a connect-N match and the registry
// they are discovered through.
//
// Agents are plain move selectors. The match runner hands each one a
// TurnRequest and a submit callback under a deadline; the agent may call
// submit any number of times and only the last call counts. Agents register
// themselves in init() so the CLI can list and create them by id.
package agent

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/connectn/internal/board"
)

// TurnRequest is everything an agent is told about the turn it must play.
type TurnRequest struct {
	// Board is the current position. It is immutable, so the agent may
	// explore moves on it freely.
	Board board.Board
	// Player is the side the agent plays this match.
	Player board.Player
	// Opponent is the display name of the other agent.
	Opponent string
	// WinLength is the run length that wins the game.
	WinLength int
}

// Agent selects moves.
type Agent interface {
	// Name returns a human-readable name for results and logs.
	Name() string

	// TakeTurn chooses a column for req.Player. It reports its choice
	// through submit, as often as it likes, until it returns or ctx is
	// done. Submissions after the deadline are ignored. A returned error
	// forfeits the game.
	TakeTurn(ctx context.Context, req TurnRequest, submit func(column int)) error
}

// Options configure an agent at creation time. Agents ignore the fields
// they have no use for.
type Options struct {
	// MaxDepth bounds the search depth. Negative means no bound: the search
	// deepens until the turn deadline or until the result is exact.
	MaxDepth int
	// Parallel is the number of goroutines used for root successors.
	// Values below 2 search serially.
	Parallel int
	// Heuristic names the static evaluation, see Heuristics.
	Heuristic string
	// Seed feeds agents that make random choices.
	Seed uint64
	// Logger receives debug output. Nil means log.Default().
	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

// Interactive is implemented by agents driven by a person. The match runner
// does not hold them to the turn timeout.
type Interactive interface {
	Agent
	Interactive() bool
}

// IsInteractive reports whether a waits for a person.
func IsInteractive(a Agent) bool {
	ia, ok := a.(Interactive)
	return ok && ia.Interactive()
}
