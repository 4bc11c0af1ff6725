// Package match plays connect-N games between two agents.
//
// Each turn runs the agent on its own goroutine under a deadline. The
// agent's submissions land in a move cell; when the agent returns or the
// deadline passes the cell is sealed and read once. A worker still running
// after the deadline is abandoned, never killed: it finishes in the
// background and whatever it submits is discarded.
package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/connectn/internal/agent"
	"github.com/vovakirdan/connectn/internal/board"
)

// Config describes the games a Runner plays.
type Config struct {
	Width     int
	Height    int
	WinLength int
	// TurnTimeout bounds each non-interactive turn. Zero means no bound.
	TurnTimeout time.Duration
}

// ErrAgentPanicked wraps the value recovered from a panicking agent.
var ErrAgentPanicked = errors.New("match: agent panicked")

// Runner plays matches.
type Runner struct {
	cfg      Config
	logger   *log.Logger
	saver    ResultSaver
	observer func(Turn)
}

// NewRunner creates a runner. A nil logger means log.Default().
func NewRunner(cfg Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{cfg: cfg, logger: logger}
}

// SetResultSaver sets where finished matches are stored. Nil disables saving.
func (r *Runner) SetResultSaver(saver ResultSaver) {
	r.saver = saver
}

// SetObserver registers a callback invoked after every accepted move.
func (r *Runner) SetObserver(fn func(Turn)) {
	r.observer = fn
}

// Play runs one game with first moving first. The error is non-nil when the
// board cannot be built or the result cannot be saved; in the latter case
// the returned Result is still valid.
func (r *Runner) Play(ctx context.Context, first, second agent.Agent) (Result, error) {
	b, err := board.Empty(r.cfg.Width, r.cfg.Height, r.cfg.WinLength)
	if err != nil {
		return Result{}, fmt.Errorf("match: %w", err)
	}

	seats := [2]agent.Agent{first, second}
	res := Result{
		MatchID:   uuid.NewString(),
		Players:   [2]string{first.Name(), second.Name()},
		StartedAt: time.Now(),
	}
	logger := r.logger.With("match", res.MatchID)
	logger.Info("match started", "first", res.Players[0], "second", res.Players[1],
		"board", fmt.Sprintf("%dx%d", b.Width(), b.Height()), "win", b.WinLength())

	player := board.First
	for !b.IsTerminal() {
		if ctx.Err() != nil {
			res.Reason = EndAborted
			res.Err = ctx.Err()
			break
		}

		a := seats[player-1]
		req := agent.TurnRequest{
			Board:     b,
			Player:    player,
			Opponent:  seats[player.Opponent()-1].Name(),
			WinLength: b.WinLength(),
		}

		start := time.Now()
		column, played, reason, turnErr := r.turn(ctx, a, req)
		elapsed := time.Since(start)

		if !played {
			if reason == EndAborted {
				res.Reason = EndAborted
				res.Err = turnErr
				break
			}
			r.forfeit(&res, player, reason, turnErr)
			logger.Warn("turn forfeited", "agent", a.Name(), "reason", reason, "error", turnErr)
			break
		}

		next, err := b.ApplyMove(column, player)
		if err != nil {
			r.forfeit(&res, player, EndIllegalMove, err)
			logger.Warn("illegal move", "agent", a.Name(), "column", column, "error", err)
			break
		}
		b = next
		res.Turns++
		logger.Debug("move", "turn", res.Turns, "agent", a.Name(), "column", column, "elapsed", elapsed)

		if r.observer != nil {
			r.observer(Turn{
				Number:  res.Turns,
				Player:  player,
				Agent:   a.Name(),
				Column:  column,
				Board:   b,
				Elapsed: elapsed,
			})
		}
		player = player.Opponent()
	}

	res.Board = b
	res.Duration = time.Since(res.StartedAt)
	if st := b.Status(); st.Terminal() {
		res.Winner = st.Winner
		res.Reason = EndWin
		if st.Kind == board.Tie {
			res.Reason = EndTie
		}
	}

	logger.Info("match finished", "result", res.String(), "reason", res.Reason, "turns", res.Turns, "duration", res.Duration)

	if r.saver != nil && res.Reason != EndAborted {
		if err := r.saver.SaveMatch(res); err != nil {
			return res, fmt.Errorf("match: save result: %w", err)
		}
	}
	return res, nil
}

func (r *Runner) forfeit(res *Result, loser board.Player, reason EndReason, err error) {
	res.Winner = loser.Opponent()
	res.Reason = reason
	res.Err = err
}

// turn runs one agent turn and returns the sealed column. When played is
// false, reason says why the turn produced nothing.
func (r *Runner) turn(ctx context.Context, a agent.Agent, req agent.TurnRequest) (column int, played bool, reason EndReason, err error) {
	var (
		tctx   context.Context
		cancel context.CancelFunc
	)
	if r.cfg.TurnTimeout > 0 && !agent.IsInteractive(a) {
		tctx, cancel = context.WithTimeout(ctx, r.cfg.TurnTimeout)
	} else {
		tctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	cell := newMoveCell(tctx)
	done := make(chan error, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- fmt.Errorf("%w: %v", ErrAgentPanicked, p)
			}
		}()
		done <- a.TakeTurn(tctx, req, cell.submit)
	}()

	var (
		agentErr error
		returned bool
	)
	select {
	case agentErr = <-done:
		returned = true
	case <-tctx.Done():
	}
	column, submitted := cell.seal()

	// Once the deadline has passed, whatever the worker returns is ignored.
	expired := tctx.Err() != nil

	switch {
	case ctx.Err() != nil:
		return 0, false, EndAborted, ctx.Err()
	case returned && agentErr != nil && !expired:
		return 0, false, EndAgentError, agentErr
	case submitted:
		return column, true, 0, nil
	case expired:
		return 0, false, EndTimeout, tctx.Err()
	default:
		return 0, false, EndNoMove, nil
	}
}
