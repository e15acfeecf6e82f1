// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits each unordered pair {i,j} with i<j exactly once, in lexicographic order.
//   - Weight per pair: cfg.weightFn(cfg.rng).
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/salesman/graph"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := ensureVertices(g, methodComplete, n, nil); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, methodComplete, i, j, cfg.weightFn(cfg.rng)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
