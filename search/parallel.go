package search

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// runParallel searches the subtree of every first move independently.
//
// Each subtree gets its own engine (schedule, unopened set, incumbent), so
// workers share only the read-only problem. Outcomes are max-reduced; on a
// tie the move the sequential engine would pop first (the highest index)
// wins, which keeps the reported schedule identical to a sequential run
// without the bound.
func (p *problem) runParallel(ctx context.Context, first []action, workers int) (Result, error) {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	results := make([]Result, len(first))
	for i, move := range first {
		eg.Go(func() error {
			e := p.newEngine(egCtx)
			e.stack = append(e.stack, move)
			if err := e.run(); err != nil {
				return err
			}
			results[i] = e.result()
			p.log.WithFields(logrus.Fields{
				"move":    i,
				"release": results[i].Release,
				"leaves":  results[i].Leaves,
			}).Debug("search: subtree done")
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	var out Result
	for i := len(results) - 1; i >= 0; i-- {
		r := results[i]
		if r.Release > out.Release {
			out.Release = r.Release
			out.Schedule = r.Schedule
		}
		out.Leaves += r.Leaves
		out.Explored += r.Explored
		out.Pruned += r.Pruned
	}
	if out.Schedule == nil {
		out.Schedule = Schedule{}
	}

	return out, nil
}
