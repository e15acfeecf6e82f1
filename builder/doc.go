// SPDX-License-Identifier: MIT

// Package builder assembles *graph.Graph fixtures for the TSP solvers, their
// tests and the CLI's random mode.
//
// A Constructor mutates a graph using a resolved builderConfig. BuildGraph
// creates the graph, resolves the options and applies constructors in order:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 100)},
//		builder.Complete(8),
//	)
//
// Constructors:
//
//   - Complete(n): K_n, one link per unordered pair {i, j}, i<j.
//   - Cycle(n): the ring 0-1-...-(n-1)-0.
//   - Euclidean(n, side): n random points in a side×side square (coordinates
//     stored on the vertices); every pair is linked with its Euclidean
//     distance rounded to the nearest integer, floored at 1 so no link
//     collapses to the "no edge" value 0. Requires an RNG (WithSeed/WithRand).
//   - FromMatrix(rows): one vertex per row; for i<j a positive rows[i][j]
//     becomes a link. Rows must be square and symmetric.
//
// Vertices get ids 0..n-1. A constructor reuses vertices already present, so
// constructors compose (e.g. Cycle then Complete adds parallel links).
//
// Weight functions (WeightFn) draw float64 weights from the configured RNG:
// DefaultWeightFn, ConstantWeightFn, UniformWeightFn, NormalWeightFn,
// ExponentialWeightFn. Option constructors panic on meaningless arguments;
// Constructors never panic and return sentinel errors wrapped with context.
package builder
