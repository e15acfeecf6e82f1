package mst

import (
	"errors"

	"github.com/katalvlaran/salesman/graph"
	"gonum.org/v1/gonum/floats"
)

// ErrDisconnected indicates that some vertex cannot be reached, so no tree
// spans the graph.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// Tree is a spanning tree of a graph.
type Tree struct {
	// Root is the vertex the tree hangs from.
	Root int

	// Parent[v] is the handle of the edge parent→v, or graph.NoEdge for Root.
	Parent []int

	// Edges are the tree edges in selection order, each oriented parent→child.
	Edges []graph.Edge

	// Weight is the sum of the edge weights.
	Weight float64
}

// Children returns the ids whose parent edge leaves v, in the order given by
// adj (typically g.Adjacent(v)).
func (t Tree) Children(v int, adj []graph.Edge) []int {
	var out []int
	for _, e := range adj {
		if e.From == v && e.To < len(t.Parent) && t.Parent[e.To] == e.Handle {
			out = append(out, e.To)
		}
	}

	return out
}

// weightOf sums the edge weights.
func weightOf(edges []graph.Edge) float64 {
	ws := make([]float64, len(edges))
	for i, e := range edges {
		ws[i] = e.Weight
	}

	return floats.Sum(ws)
}

// checkIDs returns the vertex count after verifying ids are [0, n-1].
func checkIDs(g *graph.Graph) (int, error) {
	n := g.NumVertices()
	if n == 0 {
		return 0, graph.ErrEmptyGraph
	}
	for _, v := range g.Vertices() {
		if v.ID >= n {
			return 0, graph.ErrNonContiguousIDs
		}
	}

	return n, nil
}
