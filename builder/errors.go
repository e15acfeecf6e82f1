// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNotSquare indicates a FromMatrix input whose rows differ in length from
// the row count.
var ErrNotSquare = errors.New("builder: matrix is not square")

// ErrAsymmetric indicates a FromMatrix input with rows[i][j] != rows[j][i].
var ErrAsymmetric = errors.New("builder: matrix is not symmetric")
