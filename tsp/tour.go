// Path utilities shared by the solvers.

package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/salesman/graph"
)

// roundScale controls cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision so costs compare
// equal across summation orders.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// ValidatePath checks that path has length n, is a permutation of [0, n-1]
// and starts at 0.
// Complexity: O(n).
func ValidatePath(path []int, n int) error {
	if err := validatePermutation(path, n); err != nil {
		return err
	}
	if n > 0 && path[0] != 0 {
		return fmt.Errorf("%w: starts at %d", ErrInvalidPath, path[0])
	}

	return nil
}

func validatePermutation(path []int, n int) error {
	if len(path) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidPath, len(path), n)
	}
	seen := make([]bool, n)
	for i, v := range path {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: id %d at %d out of range", ErrInvalidPath, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: id %d repeated", ErrInvalidPath, v)
		}
		seen[v] = true
	}

	return nil
}

// PathCost returns the closed cost of path over dm: the sum of
// dm[path[i]][path[i+1]] plus the closing hop dm[path[n-1]][path[0]].
// Every hop must be a positive entry (ErrMissingEdge otherwise). A single
// vertex costs 0.
//
// Errors: ErrInvalidPath, ErrMissingEdge.
// Complexity: O(n).
func PathCost(dm *graph.DistanceMatrix, path []int) (float64, error) {
	n := dm.N()
	if err := validatePermutation(path, n); err != nil {
		return 0, err
	}

	return pathCostFlat(dm.Flat(), n, path)
}

// pathCostFlat is PathCost over a row-major buffer, for hot loops.
func pathCostFlat(w []float64, n int, path []int) (float64, error) {
	if n < 2 {
		return 0, nil
	}
	var sum float64
	for i := 0; i < n; i++ {
		u, v := path[i], path[(i+1)%n]
		c := w[u*n+v]
		if c <= 0 {
			return 0, fmt.Errorf("%w: %d→%d", ErrMissingEdge, u, v)
		}
		sum += c
	}

	return round1e9(sum), nil
}

// distanceMatrix returns g's matrix, building it when missing.
func distanceMatrix(g *graph.Graph) (*graph.DistanceMatrix, error) {
	dm, err := g.DistanceMatrix()
	if err == nil {
		return dm, nil
	}

	return g.BuildDistanceMatrix()
}

// infeasible returns the Infeasible result for algo.
func infeasible(algo Algorithm, d deadline) Result {
	return Result{Algorithm: algo, Cost: Infeasible, Elapsed: d.elapsed()}
}
