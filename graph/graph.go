// SPDX-License-Identifier: MIT

package graph

import (
	"math"
	"sort"
)

// AddVertex inserts a vertex with the given id.
//
// Errors:
//   - ErrNegativeID if id < 0.
//   - ErrDuplicateVertex if the id is already present (the graph is unchanged).
//
// Adding a vertex drops a previously built distance matrix.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int, opts ...VertexOption) error {
	if id < 0 {
		return ErrNegativeID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.byID[id]; ok {
		return ErrDuplicateVertex
	}
	v := Vertex{ID: id}
	for _, opt := range opts {
		opt(&v)
	}
	g.byID[id] = len(g.vertices)
	g.vertices = append(g.vertices, v)
	g.dist = nil

	return nil
}

// HasVertex reports whether id names a vertex of g.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.byID[id]

	return ok
}

// Vertex returns a copy of the vertex with the given id.
func (g *Graph) Vertex(id int) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.byID[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}
	v := g.vertices[i]
	v.adj = nil

	return v, nil
}

// Vertices returns copies of all vertices sorted by id.
// Complexity: O(V log V).
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Vertex, len(g.vertices))
	for i := range g.vertices {
		out[i] = g.vertices[i]
		out[i].adj = nil
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NumVertices returns the number of vertices.
func (g *Graph) NumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// NumEdges returns the number of directed edges (two per bidirectional link).
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.live
}

// AddBidirectionalEdge installs u→v and v→u with weight w and links them as
// mutual reverses. It returns the handle of the u→v edge.
//
// Self-loops are not rejected (u==v yields two loop edges) and parallel edges
// are not merged. If either endpoint is unknown nothing is inserted.
//
// Errors:
//   - ErrBadWeight for negative, NaN or infinite w.
//   - ErrVertexNotFound if u or v is not in the graph.
//
// Complexity: O(1) amortized.
func (g *Graph) AddBidirectionalEdge(u, v int, w float64) (int, error) {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return NoEdge, ErrBadWeight
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	iu, ok := g.byID[u]
	if !ok {
		return NoEdge, ErrVertexNotFound
	}
	iv, ok := g.byID[v]
	if !ok {
		return NoEdge, ErrVertexNotFound
	}

	fwd := len(g.edges)
	bwd := fwd + 1
	g.edges = append(g.edges,
		Edge{Handle: fwd, From: u, To: v, Weight: w, Reverse: bwd},
		Edge{Handle: bwd, From: v, To: u, Weight: w, Reverse: fwd},
	)
	g.vertices[iu].adj = append(g.vertices[iu].adj, fwd)
	g.vertices[iv].adj = append(g.vertices[iv].adj, bwd)
	g.live += 2
	g.dist = nil

	return fwd, nil
}

// RemoveEdge removes every u→v edge together with its reverse and returns the
// number of links removed.
//
// Errors:
//   - ErrVertexNotFound if u or v is unknown.
//   - ErrEdgeNotFound if no u→v edge exists.
//
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) RemoveEdge(u, v int) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	iu, ok := g.byID[u]
	if !ok {
		return 0, ErrVertexNotFound
	}
	if _, ok = g.byID[v]; !ok {
		return 0, ErrVertexNotFound
	}

	var removed int
	kept := g.vertices[iu].adj[:0]
	for _, h := range g.vertices[iu].adj {
		e := &g.edges[h]
		if e.To != v {
			kept = append(kept, h)
			continue
		}
		e.removed = true
		g.live--
		removed++
		// A loop's twin sits in this same list and is filtered by this loop.
		if u != v && e.Reverse != NoEdge && !g.edges[e.Reverse].removed {
			g.dropReverse(e.Reverse)
		}
	}
	g.vertices[iu].adj = kept
	if removed == 0 {
		return 0, ErrEdgeNotFound
	}
	if u == v {
		removed /= 2
	}
	g.dist = nil

	return removed, nil
}

// dropReverse tombstones edge h and unlinks it from its origin's adjacency.
// Caller holds g.mu.
func (g *Graph) dropReverse(h int) {
	e := &g.edges[h]
	e.removed = true
	g.live--
	owner := &g.vertices[g.byID[e.From]]
	for i, x := range owner.adj {
		if x == h {
			owner.adj = append(owner.adj[:i], owner.adj[i+1:]...)
			break
		}
	}
}

// Edge returns a copy of the edge with the given handle.
func (g *Graph) Edge(handle int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if handle < 0 || handle >= len(g.edges) || g.edges[handle].removed {
		return Edge{}, ErrEdgeNotFound
	}

	return g.edges[handle], nil
}

// Adjacent returns copies of the outgoing edges of id in insertion order.
// Complexity: O(deg(id)).
func (g *Graph) Adjacent(id int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.byID[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	adj := g.vertices[i].adj
	out := make([]Edge, len(adj))
	for k, h := range adj {
		out[k] = g.edges[h]
	}

	return out, nil
}

// HasEdge reports whether at least one u→v edge exists.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.byID[u]
	if !ok {
		return false
	}
	for _, h := range g.vertices[i].adj {
		if g.edges[h].To == v {
			return true
		}
	}

	return false
}

// SetOptimalPath stores a copy of path as the graph's best known tour.
// Returns ErrPathLength if len(path) differs from the vertex count.
func (g *Graph) SetOptimalPath(path []int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(path) != len(g.vertices) {
		return ErrPathLength
	}
	g.optimal = append(g.optimal[:0], path...)

	return nil
}

// OptimalPath returns a copy of the stored tour, or nil if none was set.
func (g *Graph) OptimalPath() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.optimal == nil {
		return nil
	}

	return append([]int(nil), g.optimal...)
}

// contiguous reports whether the vertex ids are exactly [0, n-1].
// Caller holds g.mu.
func (g *Graph) contiguous() bool {
	n := len(g.vertices)
	for _, v := range g.vertices {
		if v.ID >= n {
			return false
		}
	}
	// ids are unique (AddVertex enforces it), so n ids below n cover [0, n-1].
	return true
}
