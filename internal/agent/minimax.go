package agent

import (
	"context"
	"fmt"
	"iter"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/connectn/internal/board"
	"github.com/vovakirdan/connectn/internal/search"
)

func init() {
	Register("minimax", func(opts Options) (Agent, error) {
		return NewMinimax(opts)
	})
}

// Minimax deepens an alpha-beta search until the turn deadline, submitting
// the best move found at every completed depth.
type Minimax struct {
	opts      Options
	heuristic Heuristic
	logger    *log.Logger
}

// NewMinimax builds a minimax agent. It fails on an unknown heuristic.
func NewMinimax(opts Options) (*Minimax, error) {
	h, err := HeuristicByName(opts.Heuristic)
	if err != nil {
		return nil, err
	}
	if opts.Heuristic == "" {
		opts.Heuristic = DefaultHeuristic
	}
	return &Minimax{opts: opts, heuristic: h, logger: opts.logger()}, nil
}

func (m *Minimax) Name() string {
	if m.opts.MaxDepth < 0 {
		return fmt.Sprintf("minimax (%s)", m.opts.Heuristic)
	}
	return fmt.Sprintf("minimax (%s, depth %d)", m.opts.Heuristic, m.opts.MaxDepth)
}

func (m *Minimax) TakeTurn(ctx context.Context, req TurnRequest, submit func(column int)) error {
	g := BoardGame(ctx, req.Player, m.heuristic)

	var iterations iter.Seq[search.Iteration[int]]
	if m.opts.Parallel > 1 {
		iterations = search.IterateWith(func(depth int) (search.Result[int], bool) {
			res, ok, err := search.SearchParallel(ctx, g, req.Board, depth, m.opts.Parallel)
			return res, ok && err == nil
		})
	} else {
		iterations = search.Iterate(g, req.Board)
	}

	for it := range iterations {
		// A depth finished after the deadline ran on truncated successors.
		if ctx.Err() != nil {
			break
		}
		submit(it.Move)
		m.logger.Debug("search deepened",
			"agent", m.Name(),
			"depth", it.Depth,
			"move", it.Move,
			"value", it.Value,
			"nodes", it.Stats.Nodes,
			"exact", it.Exact,
		)
		if it.Exact || (m.opts.MaxDepth >= 0 && it.Depth >= m.opts.MaxDepth) {
			break
		}
	}
	return nil
}

// BoardGame describes connect-N to the search from me's point of view,
// scoring cut-off positions with h. Once ctx is done no more successors are
// produced, so an abandoned search winds down quickly.
func BoardGame(ctx context.Context, me board.Player, h Heuristic) search.Game[board.Board, int] {
	return search.Funcs[board.Board, int]{
		SuccessorsFunc: func(b board.Board, maximizing bool) iter.Seq2[int, board.Board] {
			player := me.Opponent()
			if maximizing {
				player = me
			}
			return func(yield func(int, board.Board) bool) {
				for c := range b.LegalColumns() {
					if ctx.Err() != nil {
						return
					}
					next, err := b.ApplyMove(c, player)
					if err != nil {
						continue
					}
					if !yield(c, next) {
						return
					}
				}
			}
		},
		ResolutionFunc: func(b board.Board) (search.Outcome, bool) {
			return outcomeFor(b.Status(), me)
		},
		ScoreFunc: func(b board.Board) int {
			return h(b, me)
		},
	}
}

func outcomeFor(st board.Resolution, me board.Player) (search.Outcome, bool) {
	switch {
	case st.Kind == board.Tie:
		return search.Tie, true
	case st.Kind == board.Won && st.Winner == me:
		return search.Win, true
	case st.Kind == board.Won:
		return search.Loss, true
	default:
		return 0, false
	}
}
