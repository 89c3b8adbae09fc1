package placement

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dmfb-tools/reconfig-placement/pkg/multiobjective/framework"
)

// EvaluateBatch evaluates sols with up to the configured parallelism.
// Decoding and scoring run concurrently; archive updates are then applied one
// by one in the order of sols, so the archive ends up the same as with
// sequential Evaluate calls.
//
// If ctx is cancelled before scoring completes, no archive update is applied
// and the context error is returned.
func (p *Problem) EvaluateBatch(ctx context.Context, sols []framework.Solution) ([]framework.Evaluation, error) {
	placements := make([]*Placement, len(sols))
	constraints := make([][]float64, len(sols))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.parallelism)
	for i, sol := range sols {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			placements[i], constraints[i] = p.score(asBinary(sol, p.logger))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	evals := make([]framework.Evaluation, len(sols))
	for i := range sols {
		evals[i] = p.record(placements[i], constraints[i])
	}

	evaluations, feasible := p.Stats()
	p.logger.V(3).Info("evaluated batch", "size", len(sols), "evaluations", evaluations, "feasible", feasible, "archived", p.archive.Len())
	return evals, nil
}
