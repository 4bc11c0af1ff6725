package match

import (
	"time"

	"github.com/vovakirdan/connectn/internal/board"
)

// EndReason describes why a match ended.
type EndReason int

const (
	EndWin         EndReason = iota // A player completed a run
	EndTie                          // The board filled up
	EndTimeout                      // No move was submitted before the deadline
	EndNoMove                       // The agent returned without submitting
	EndAgentError                   // The agent returned an error or panicked
	EndIllegalMove                  // The submitted column was rejected
	EndAborted                      // The match context was cancelled
)

func (r EndReason) String() string {
	switch r {
	case EndWin:
		return "win"
	case EndTie:
		return "tie"
	case EndTimeout:
		return "timeout"
	case EndNoMove:
		return "no move"
	case EndAgentError:
		return "agent error"
	case EndIllegalMove:
		return "illegal move"
	case EndAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Forfeit reports whether the reason is a loss by rule rather than by play.
func (r EndReason) Forfeit() bool {
	switch r {
	case EndTimeout, EndNoMove, EndAgentError, EndIllegalMove:
		return true
	default:
		return false
	}
}

// Result contains the outcome of a completed match.
type Result struct {
	MatchID string
	// Players holds the agent names, first player first.
	Players [2]string
	// Winner is board.None for ties and aborted matches.
	Winner board.Player
	Reason EndReason
	Turns  int
	// Board is the final position.
	Board     board.Board
	StartedAt time.Time
	Duration  time.Duration
	// Err carries the agent error or the rejected move for forfeits.
	Err error
}

// String returns the score in 1-0, 0-1, 1/2-1/2 form.
func (r Result) String() string {
	switch {
	case r.Winner == board.First:
		return "1-0"
	case r.Winner == board.Second:
		return "0-1"
	case r.Reason == EndTie:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// WinnerName returns the name of the winning agent, or "" without one.
func (r Result) WinnerName() string {
	switch r.Winner {
	case board.First:
		return r.Players[0]
	case board.Second:
		return r.Players[1]
	default:
		return ""
	}
}

// ResultSaver persists finished matches. It lets the runner store results
// without depending on the storage package.
type ResultSaver interface {
	SaveMatch(result Result) error
}

// Turn is reported to the observer after every accepted move.
type Turn struct {
	Number  int
	Player  board.Player
	Agent   string
	Column  int
	Board   board.Board
	Elapsed time.Duration
}
