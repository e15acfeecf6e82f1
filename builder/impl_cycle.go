// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// impl_cycle.go - Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Links i↔(i+1) mod n for ascending i, so the ring closes with (n-1)↔0.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/salesman/graph"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the ring C_n. On a ring the only
// tour is the ring itself, which makes it a handy fixture for solvers.
func Cycle(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := ensureVertices(g, methodCycle, n, nil); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(g, methodCycle, i, (i+1)%n, cfg.weightFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
