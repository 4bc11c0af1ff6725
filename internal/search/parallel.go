package search

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SearchParallel is Search with each root successor evaluated on its own
// goroutine, at most workers at a time (workers <= 0 means no limit). It
// returns the same move and value as Search. Root successors are searched
// with a full window, so it usually visits more nodes in total.
//
// The game must be safe for concurrent use. ctx is only checked before each
// root successor is started; a cancelled search returns ctx.Err().
func SearchParallel[S, M any](ctx context.Context, g Game[S, M], state S, maxDepth, workers int) (Result[M], bool, error) {
	type root struct {
		move  M
		child S
	}
	var roots []root
	for move, child := range g.Successors(state, true) {
		roots = append(roots, root{move, child})
	}
	if len(roots) == 0 {
		return Result[M]{}, false, nil
	}

	values := make([]int, len(roots))
	proven := make([]bool, len(roots))
	stats := make([]Stats, len(roots))

	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, r := range roots {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := searcher[S, M]{game: g, maxDepth: maxDepth}
			values[i], proven[i] = s.value(r.child, false, 0, NegInf, Inf)
			stats[i] = s.stats
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result[M]{}, false, err
	}

	res := Result[M]{Move: roots[0].move, Value: values[0], proven: true}
	for i := range roots {
		res.Stats.Add(stats[i])
	}
	for i := range roots {
		if values[i] > res.Value {
			res.Move, res.Value = roots[i].move, values[i]
		}
		if values[i] == Inf && proven[i] {
			res.proven = true
			break
		}
		res.proven = res.proven && proven[i]
	}
	return res, true, nil
}
