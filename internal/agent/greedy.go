package agent

import (
	"context"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/vovakirdan/connectn/internal/board"
)

func init() {
	Register("greedy", func(opts Options) (Agent, error) {
		return NewGreedy(opts.Seed), nil
	})
}

// Greedy wins when it can, blocks when it must and otherwise plays a random
// legal column.
type Greedy struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGreedy returns a greedy agent whose random choices follow seed.
func NewGreedy(seed uint64) *Greedy {
	return &Greedy{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (g *Greedy) Name() string { return "greedy" }

func (g *Greedy) TakeTurn(_ context.Context, req TurnRequest, submit func(column int)) error {
	legal := slices.Collect(req.Board.LegalColumns())
	if len(legal) == 0 {
		return nil
	}

	if c, ok := winningColumn(req.Board, legal, req.Player); ok {
		submit(c)
		return nil
	}
	if c, ok := winningColumn(req.Board, legal, req.Player.Opponent()); ok {
		submit(c)
		return nil
	}

	g.mu.Lock()
	c := legal[g.rng.IntN(len(legal))]
	g.mu.Unlock()
	submit(c)
	return nil
}

// winningColumn returns the first column in which player wins at once.
func winningColumn(b board.Board, legal []int, player board.Player) (int, bool) {
	for _, c := range legal {
		next, err := b.ApplyMove(c, player)
		if err != nil {
			continue
		}
		if st := next.Status(); st.Kind == board.Won && st.Winner == player {
			return c, true
		}
	}
	return 0, false
}
