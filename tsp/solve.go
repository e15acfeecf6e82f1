// Unified dispatcher for the solvers.

package tsp

import (
	"context"
	"fmt"

	"github.com/katalvlaran/salesman/graph"
)

// Solve routes g to the solver named by algo. Errors are those of the chosen
// solver, or ErrUnknownAlgorithm.
func Solve(ctx context.Context, g *graph.Graph, algo Algorithm, opts Options) (Result, error) {
	switch algo {
	case AlgoBranchAndBound:
		return BranchAndBound(ctx, g, opts)
	case AlgoDoubleTree:
		return DoubleTree(ctx, g, opts)
	case AlgoNearestNeighbourSwap:
		return NearestNeighbourSwap(ctx, g, opts)
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, algo)
	}
}
