package mst

import (
	"math"

	"github.com/katalvlaran/salesman/graph"
	"github.com/katalvlaran/salesman/pqueue"
)

// Prim grows a minimum spanning tree from root.
//
// Steps:
//  1. Verify ids and root; allocate a fresh SearchState (Dist=+Inf, Path=NoEdge).
//  2. Queue every vertex: root with key 0, the others with +Inf.
//  3. Extract the minimum. A key still at +Inf means the rest of the queue is
//     unreachable: return ErrDisconnected. Otherwise mark it visited, record its
//     parent edge, and relax its outgoing edges (strictly smaller weight wins).
//
// Errors: graph.ErrEmptyGraph, graph.ErrNonContiguousIDs,
// graph.ErrVertexNotFound (unknown root), ErrDisconnected.
// Complexity: O(E log V) time, O(V) memory.
func Prim(g *graph.Graph, root int) (Tree, error) {
	n, err := checkIDs(g)
	if err != nil {
		return Tree{}, err
	}
	if !g.HasVertex(root) {
		return Tree{}, graph.ErrVertexNotFound
	}

	st := g.NewSearchState()
	st.Dist[root] = 0
	q := pqueue.New(n)
	for id := 0; id < n; id++ {
		if err = q.Insert(id, st.Dist[id]); err != nil {
			return Tree{}, err
		}
	}

	t := Tree{Root: root, Parent: st.Path, Edges: make([]graph.Edge, 0, n-1)}
	for !q.Empty() {
		cur, key, err := q.ExtractMin()
		if err != nil {
			return Tree{}, err
		}
		if math.IsInf(key, 1) {
			return Tree{}, ErrDisconnected
		}
		st.Visited[cur] = true
		if h := st.Path[cur]; h != graph.NoEdge {
			e, err := g.Edge(h)
			if err != nil {
				return Tree{}, err
			}
			t.Edges = append(t.Edges, e)
		}

		adj, err := g.Adjacent(cur)
		if err != nil {
			return Tree{}, err
		}
		for _, e := range adj {
			if st.Visited[e.To] || e.Weight >= st.Dist[e.To] {
				continue
			}
			st.Dist[e.To] = e.Weight
			st.Path[e.To] = e.Handle
			if err = q.DecreaseKey(e.To, e.Weight); err != nil {
				return Tree{}, err
			}
		}
	}
	t.Weight = weightOf(t.Edges)

	return t, nil
}
