// SPDX-License-Identifier: MIT
// Package: salesman/builder
//
// impl_matrix.go - FromMatrix(rows) constructor.
//
// Contract:
//   - len(rows) ≥ 1 (else ErrTooFewVertices); every row has len(rows) entries
//     (else ErrNotSquare); rows[i][j] == rows[j][i] (else ErrAsymmetric).
//   - For i<j a positive entry becomes the link i↔j; 0 means no link.
//     Negative entries surface as graph.ErrBadWeight. The diagonal is ignored.
//   - The weight function is ignored.
//
// Complexity: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/salesman/graph"
)

const (
	methodFromMatrix = "FromMatrix"
	minMatrixNodes   = 1
)

// FromMatrix returns a Constructor that materialises a symmetric weight table.
func FromMatrix(rows [][]float64) Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		n := len(rows)
		if n < minMatrixNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodFromMatrix, n, minMatrixNodes, ErrTooFewVertices)
		}
		for i, r := range rows {
			if len(r) != n {
				return fmt.Errorf("%s: row %d has %d entries, want %d: %w", methodFromMatrix, i, len(r), n, ErrNotSquare)
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rows[i][j] != rows[j][i] {
					return fmt.Errorf("%s: [%d][%d]=%g vs [%d][%d]=%g: %w",
						methodFromMatrix, i, j, rows[i][j], j, i, rows[j][i], ErrAsymmetric)
				}
			}
		}

		if err := ensureVertices(g, methodFromMatrix, n, nil); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rows[i][j] == 0 {
					continue
				}
				if err := link(g, methodFromMatrix, i, j, rows[i][j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
