package search

// Stats counts the work done by one search.
type Stats struct {
	Nodes       int // states visited below the root
	StaticEvals int // states scored by the heuristic instead of searched
	Prunes      int // sibling enumerations stopped by an alpha-beta cutoff
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Nodes += o.Nodes
	s.StaticEvals += o.StaticEvals
	s.Prunes += o.Prunes
}

// Result is the move chosen by a search and its minimax value.
type Result[M any] struct {
	Move  M
	Value int
	Stats Stats

	proven bool
}

// Exact reports whether the value is proven: either no heuristic score
// reached it, or it is a forced win found before the remaining successors
// were searched. Searching deeper cannot change an exact value.
func (r Result[M]) Exact() bool {
	return r.proven
}

// BestMove returns the successor move of state with the highest minimax
// value. The immediate successors sit at depth 0, so maxDepth 0 scores them
// without looking further. Among equal values the first one enumerated wins.
// The boolean is false when state has no successors.
func BestMove[S, M any](g Game[S, M], state S, maxDepth int) (M, bool) {
	res, ok := Search(g, state, maxDepth)
	return res.Move, ok
}

// Search is BestMove with the chosen value and search statistics.
func Search[S, M any](g Game[S, M], state S, maxDepth int) (Result[M], bool) {
	s := searcher[S, M]{game: g, maxDepth: maxDepth}

	var res Result[M]
	found := false
	res.proven = true
	alpha := NegInf
	for move, child := range g.Successors(state, true) {
		v, proven := s.value(child, false, 0, alpha, Inf)
		if !found || v > res.Value {
			res.Move, res.Value = move, v
			found = true
		}
		if v == Inf && proven {
			// Nothing beats a forced win.
			res.proven = true
			break
		}
		res.proven = res.proven && proven
		alpha = max(alpha, v)
	}

	res.Stats = s.stats
	return res, found
}

// Value returns the minimax value of state itself, treated as sitting at
// depth 0 with the given side to move.
func Value[S, M any](g Game[S, M], state S, maximizing bool, maxDepth int) int {
	s := searcher[S, M]{game: g, maxDepth: maxDepth}
	v, _ := s.value(state, maximizing, 0, NegInf, Inf)
	return v
}

type searcher[S, M any] struct {
	game     Game[S, M]
	maxDepth int
	stats    Stats
}

// value is minimax with alpha-beta pruning. alpha and beta only bound which
// siblings are enumerated; the value of an unpruned subtree is exact.
//
// The boolean reports a proven value: every leaf that decided it was a
// resolved state, or the side to move found a proven forced win, after
// which the remaining siblings are skipped.
func (s *searcher[S, M]) value(state S, maximizing bool, depth, alpha, beta int) (int, bool) {
	s.stats.Nodes++

	if outcome, ok := s.game.Resolution(state); ok {
		return outcomeValue(outcome), true
	}
	if depth == s.maxDepth {
		s.stats.StaticEvals++
		return s.game.Score(state), false
	}

	best, win := Inf, NegInf
	if maximizing {
		best, win = NegInf, Inf
	}
	expanded := false
	proven := true

	for _, child := range s.game.Successors(state, maximizing) {
		expanded = true
		v, childProven := s.value(child, !maximizing, depth+1, alpha, beta)
		if v == win && childProven {
			return v, true
		}
		proven = proven && childProven
		if maximizing {
			best = max(best, v)
			alpha = max(alpha, best)
		} else {
			best = min(best, v)
			beta = min(beta, best)
		}
		if beta <= alpha {
			s.stats.Prunes++
			break
		}
	}

	// A live state with nothing to play has only its heuristic.
	if !expanded {
		s.stats.StaticEvals++
		return s.game.Score(state), false
	}
	return best, proven
}
