// SPDX-License-Identifier: MIT

package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrNegativeID indicates a vertex id below zero.
	ErrNegativeID = errors.New("graph: negative vertex id")

	// ErrDuplicateVertex indicates AddVertex with an id already in the graph.
	ErrDuplicateVertex = errors.New("graph: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an unknown edge handle or a missing u→v edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("graph: edge weight must be finite and non-negative")

	// ErrEmptyGraph indicates an operation that needs at least one vertex.
	ErrEmptyGraph = errors.New("graph: graph has no vertices")

	// ErrNonContiguousIDs indicates vertex ids that do not form [0, n-1].
	ErrNonContiguousIDs = errors.New("graph: vertex ids are not contiguous from 0")

	// ErrMatrixNotBuilt indicates DistanceMatrix was requested before
	// BuildDistanceMatrix, or after a mutation dropped it.
	ErrMatrixNotBuilt = errors.New("graph: distance matrix not built")

	// ErrPathLength indicates an optimal path whose length differs from n.
	ErrPathLength = errors.New("graph: path length does not match vertex count")
)

// NoEdge is the handle used where an edge reference is absent
// (Edge.Reverse of an unlinked edge, SearchState.Path of an unreached vertex).
const NoEdge = -1

// Vertex is a graph node.
type Vertex struct {
	// ID is the caller-assigned identifier; ids must end up covering [0, n-1].
	ID int

	// Name is an optional display label.
	Name string

	// Longitude and Latitude are meaningful only when HasCoordinates is set.
	Longitude float64
	Latitude  float64

	// HasCoordinates reports whether the vertex was created with coordinates.
	HasCoordinates bool

	adj []int // outgoing edge handles, insertion order
}

// Edge is one direction of a bidirectional link.
type Edge struct {
	// Handle is the edge's index in the graph's edge arena.
	Handle int

	// From and To are vertex ids.
	From int
	To   int

	// Weight is the non-negative traversal cost.
	Weight float64

	// Reverse is the handle of the opposite-direction edge, or NoEdge.
	Reverse int

	// Selected and Flow are auxiliary fields for flow-style algorithms.
	// The TSP solvers never read them.
	Selected bool
	Flow     float64

	removed bool
}

// VertexOption configures a Vertex before it is stored.
type VertexOption func(*Vertex)

// WithName sets the vertex display name.
func WithName(name string) VertexOption {
	return func(v *Vertex) { v.Name = name }
}

// WithCoordinates sets the vertex longitude/latitude.
func WithCoordinates(longitude, latitude float64) VertexOption {
	return func(v *Vertex) {
		v.Longitude = longitude
		v.Latitude = latitude
		v.HasCoordinates = true
	}
}

// GraphOption configures a Graph at construction.
type GraphOption func(*Graph)

// WithCapacity preallocates room for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.vertices = make([]Vertex, 0, n)
			g.byID = make(map[int]int, n)
		}
	}
}

// Graph is an in-memory weighted graph with symmetric edge pairs.
type Graph struct {
	mu sync.RWMutex

	vertices []Vertex    // arena, insertion order
	byID     map[int]int // vertex id -> arena index
	edges    []Edge      // arena; removed edges stay as tombstones
	live     int         // number of non-removed edges

	dist    *DistanceMatrix // nil until BuildDistanceMatrix
	optimal []int           // last recorded optimal path
}

// New creates an empty Graph.
// Complexity: O(1) plus any preallocation requested by options.
func New(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.byID == nil {
		g.byID = make(map[int]int)
	}

	return g
}
