package search

import "iter"

// Iteration is one step of an iterative-deepening run.
type Iteration[M any] struct {
	Depth int
	Move  M
	Value int
	// Exact is set once a depth proved its value. From then on the same
	// move and value are yielded for every later depth.
	Exact bool
	Stats Stats
}

// Iterate runs Search at depth 0, 1, 2, ... on state and yields the best
// move at every depth. The sequence is unbounded while state has successors;
// the consumer decides when to stop. It is empty when state has none.
func Iterate[S, M any](g Game[S, M], state S) iter.Seq[Iteration[M]] {
	return IterateWith(func(maxDepth int) (Result[M], bool) {
		return Search(g, state, maxDepth)
	})
}

// IterateWith is Iterate over an arbitrary depth-limited search. The
// sequence ends as soon as search reports false.
func IterateWith[M any](search func(maxDepth int) (Result[M], bool)) iter.Seq[Iteration[M]] {
	return func(yield func(Iteration[M]) bool) {
		var last Iteration[M]
		for depth := 0; ; depth++ {
			if last.Exact {
				last.Depth = depth
				last.Stats = Stats{}
			} else {
				res, ok := search(depth)
				if !ok {
					return
				}
				last = Iteration[M]{
					Depth: depth,
					Move:  res.Move,
					Value: res.Value,
					Exact: res.Exact(),
					Stats: res.Stats,
				}
			}
			if !yield(last) {
				return
			}
		}
	}
}
