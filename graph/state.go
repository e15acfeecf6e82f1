// SPDX-License-Identifier: MIT

package graph

import "math"

// SearchState holds the transient per-vertex fields an algorithm run mutates,
// indexed by vertex id. Each run allocates (or resets) its own state, so the
// Graph itself is never written during a search.
type SearchState struct {
	// Visited marks vertices already settled by the run.
	Visited []bool

	// Dist is the per-vertex key (e.g. Prim's best connecting weight).
	Dist []float64

	// Path is the handle of the edge that reached each vertex, or NoEdge.
	Path []int
}

// NewSearchState allocates a state sized for the graph's current vertex count,
// already in its reset form.
func (g *Graph) NewSearchState() *SearchState {
	n := g.NumVertices()
	s := &SearchState{
		Visited: make([]bool, n),
		Dist:    make([]float64, n),
		Path:    make([]int, n),
	}
	s.Reset()

	return s
}

// Reset restores Visited=false, Dist=+Inf and Path=NoEdge for every vertex.
func (s *SearchState) Reset() {
	inf := math.Inf(1)
	for i := range s.Visited {
		s.Visited[i] = false
		s.Dist[i] = inf
		s.Path[i] = NoEdge
	}
}

// Len returns the number of vertices the state covers.
func (s *SearchState) Len() int { return len(s.Visited) }
