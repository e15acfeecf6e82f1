// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// api.go - entry point of the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/salesman/graph"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first and return sentinel
// errors instead of panicking.
type Constructor func(g *graph.Graph, cfg builderConfig) error

// BuildGraph creates a new graph, resolves bopts and applies all constructors
// in order. The first constructor error is returned wrapped as
// "BuildGraph: %w"; no partial cleanup is attempted.
//
// Complexity: Σ cost of the constructors.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	g := graph.New()
	for _, c := range cons {
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// ensureVertices adds ids 0..n-1 that are not yet present.
func ensureVertices(g *graph.Graph, method string, n int, opts func(i int) []graph.VertexOption) error {
	for i := 0; i < n; i++ {
		if g.HasVertex(i) {
			continue
		}
		var vopts []graph.VertexOption
		if opts != nil {
			vopts = opts(i)
		}
		if err := g.AddVertex(i, vopts...); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", method, i, err)
		}
	}

	return nil
}

// link adds u↔v with weight w, wrapping failures with method context.
func link(g *graph.Graph, method string, u, v int, w float64) error {
	if _, err := g.AddBidirectionalEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddBidirectionalEdge(%d↔%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
