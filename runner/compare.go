package runner

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/salesman/graph"
	"github.com/katalvlaran/salesman/tsp"
)

// Outcome pairs a solver's result with its error.
type Outcome struct {
	Algorithm tsp.Algorithm
	Result    tsp.Result
	Err       error
}

// Compare runs every algorithm in algos concurrently on g and returns the
// outcomes in input order. Solver failures (time limit, infeasible instance)
// are reported per outcome; Compare itself fails only on an unknown
// algorithm or when g has no usable distance matrix.
func Compare(ctx context.Context, s Service, g *graph.Graph, algos []tsp.Algorithm) ([]Outcome, error) {
	known := make(map[tsp.Algorithm]bool)
	for _, a := range tsp.Algorithms() {
		known[a] = true
	}
	for _, a := range algos {
		if !known[a] {
			return nil, fmt.Errorf("runner: %w: %v", tsp.ErrUnknownAlgorithm, a)
		}
	}
	// Solvers share the matrix read-only.
	if _, err := g.DistanceMatrix(); err != nil {
		if _, err := g.BuildDistanceMatrix(); err != nil {
			return nil, fmt.Errorf("runner: %w", err)
		}
	}

	out := make([]Outcome, len(algos))
	eg, ctx := errgroup.WithContext(ctx)
	for i, a := range algos {
		eg.Go(func() error {
			res, err := s.Solve(ctx, g, a)
			out[i] = Outcome{Algorithm: a, Result: res, Err: err}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
