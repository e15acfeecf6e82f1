// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// impl_euclidean.go - Euclidean(n, side) constructor.
//
// Contract:
//   - n ≥ 1 and side > 0 (else ErrTooFewVertices); cfg.rng required (ErrNeedRandSource).
//   - Vertex i gets coordinates (x, y) drawn uniformly from [0, side)² and
//     stored as (Longitude, Latitude).
//   - Every pair {i,j}, i<j, is linked with max(1, round(‖p_i − p_j‖)).
//     Rounding keeps costs exact in tests; the floor of 1 keeps every link
//     visible in the distance matrix (0 means "no edge" there).
//   - The weight function is ignored: distances are the weights.
//
// The rounded metric can break the triangle inequality by at most 1 per hop,
// so 2-approximation bounds hold up to that slack.
//
// Complexity: O(n²).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/salesman/graph"
)

const (
	methodEuclidean   = "Euclidean"
	minEuclideanNodes = 1
)

// Euclidean returns a Constructor for a random complete geometric instance.
func Euclidean(n int, side float64) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minEuclideanNodes || side <= 0 {
			return fmt.Errorf("%s: n=%d side=%g: %w", methodEuclidean, n, side, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodEuclidean, ErrNeedRandSource)
		}

		xs := make([]float64, n)
		ys := make([]float64, n)
		for i := 0; i < n; i++ {
			xs[i] = cfg.rng.Float64() * side
			ys[i] = cfg.rng.Float64() * side
		}
		coords := func(i int) []graph.VertexOption {
			return []graph.VertexOption{graph.WithCoordinates(xs[i], ys[i])}
		}
		if err := ensureVertices(g, methodEuclidean, n, coords); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d := math.Max(1, math.Round(math.Hypot(xs[i]-xs[j], ys[i]-ys[j])))
				if err := link(g, methodEuclidean, i, j, d); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
