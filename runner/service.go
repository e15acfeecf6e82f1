// Package runner puts the tsp solvers behind a Service so callers can stack
// middleware (logging) and run several solvers side by side on one graph.
package runner

import (
	"context"

	"github.com/katalvlaran/salesman/graph"
	"github.com/katalvlaran/salesman/tsp"
)

// Service solves TSP instances with a fixed set of options.
type Service interface {
	// Solve runs algo on g. A feasible branch-and-bound result is also
	// recorded as g's optimal path.
	Solve(ctx context.Context, g *graph.Graph, algo tsp.Algorithm) (tsp.Result, error)

	// Options returns the solver options in effect.
	Options() tsp.Options
}

type solverService struct {
	opts tsp.Options
}

// New returns a Service bound to opts.
func New(opts tsp.Options) Service {
	return solverService{opts: opts}
}

func (s solverService) Options() tsp.Options { return s.opts }

func (s solverService) Solve(ctx context.Context, g *graph.Graph, algo tsp.Algorithm) (tsp.Result, error) {
	res, err := tsp.Solve(ctx, g, algo, s.opts)
	if err != nil {
		return res, err
	}
	if algo == tsp.AlgoBranchAndBound && res.Feasible() {
		if err := g.SetOptimalPath(res.Path); err != nil {
			return res, err
		}
	}

	return res, nil
}
