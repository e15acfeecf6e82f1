// SPDX-License-Identifier: MIT

package graph

import (
	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix is the dense n×n all-pairs weight table of a Graph.
// Entry (i, j) holds the weight of edge i→j, or 0 when no such edge exists.
// A DistanceMatrix is immutable once built.
type DistanceMatrix struct {
	n int
	m *mat.Dense
}

// N returns the matrix order (the vertex count it was built for).
func (d *DistanceMatrix) N() int { return d.n }

// At returns entry (i, j). Indices must lie in [0, N()); out-of-range access
// panics, as with any slice index.
func (d *DistanceMatrix) At(i, j int) float64 { return d.m.At(i, j) }

// Has reports whether an i→j edge is visible in the matrix (entry > 0).
func (d *DistanceMatrix) Has(i, j int) bool { return d.m.At(i, j) > 0 }

// Row returns a copy of row i.
func (d *DistanceMatrix) Row(i int) []float64 {
	return mat.Row(nil, i, d.m)
}

// Flat returns a row-major copy of the whole matrix: Flat()[i*N()+j] == At(i, j).
// Solvers use it to keep interface calls out of their hot loops.
func (d *DistanceMatrix) Flat() []float64 {
	raw := d.m.RawMatrix()
	out := make([]float64, d.n*d.n)
	for i := 0; i < d.n; i++ {
		copy(out[i*d.n:(i+1)*d.n], raw.Data[i*raw.Stride:i*raw.Stride+d.n])
	}

	return out
}

// Matrix exposes a read-only gonum view of the table.
func (d *DistanceMatrix) Matrix() mat.Matrix { return d.m }

// Symmetric reports whether At(i, j) == At(j, i) for all i, j.
func (d *DistanceMatrix) Symmetric() bool {
	return mat.Equal(d.m, d.m.T())
}

// BuildDistanceMatrix derives the distance matrix from the current edge set
// and stores it in the graph.
//
// Rules:
//   - Vertex ids must be [0, n-1] (ErrNonContiguousIDs otherwise).
//   - For every vertex in id order and every outgoing edge in insertion order,
//     the first edge seen for a pair {i, j} fixes both (i, j) and (j, i).
//     Later parallel edges do not overwrite it. Pairs without edges stay 0.
//
// Errors: ErrEmptyGraph, ErrNonContiguousIDs.
// Complexity: O(V² + E) time, O(V²) space.
func (g *Graph) BuildDistanceMatrix() (*DistanceMatrix, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.vertices)
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if !g.contiguous() {
		return nil, ErrNonContiguousIDs
	}

	m := mat.NewDense(n, n, nil)
	for id := 0; id < n; id++ {
		for _, h := range g.vertices[g.byID[id]].adj {
			e := g.edges[h]
			if m.At(e.From, e.To) != 0 {
				continue
			}
			m.Set(e.From, e.To, e.Weight)
			m.Set(e.To, e.From, e.Weight)
		}
	}
	g.dist = &DistanceMatrix{n: n, m: m}

	return g.dist, nil
}

// DistanceMatrix returns the matrix built by BuildDistanceMatrix.
// Returns ErrMatrixNotBuilt if it was never built or a later mutation dropped it.
func (g *Graph) DistanceMatrix() (*DistanceMatrix, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.dist == nil {
		return nil, ErrMatrixNotBuilt
	}

	return g.dist, nil
}
