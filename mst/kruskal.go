package mst

import (
	"sort"

	"github.com/katalvlaran/salesman/graph"
)

// Kruskal computes a minimum spanning tree with a disjoint-set forest and
// roots the result at vertex 0.
//
// Steps:
//  1. Collect the From<To direction of every link (loops dropped).
//  2. Stable-sort by weight so equal weights keep insertion order.
//  3. Scan the edges; take one whenever its endpoints lie in different sets.
//  4. Fewer than n-1 edges taken means ErrDisconnected.
//  5. Orient the tree away from vertex 0 (Parent, Edges parent→child).
//
// Errors: graph.ErrEmptyGraph, graph.ErrNonContiguousIDs, ErrDisconnected.
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(g *graph.Graph) (Tree, error) {
	n, err := checkIDs(g)
	if err != nil {
		return Tree{}, err
	}

	var candidates []graph.Edge
	for id := 0; id < n; id++ {
		adj, err := g.Adjacent(id)
		if err != nil {
			return Tree{}, err
		}
		for _, e := range adj {
			if e.From < e.To {
				candidates = append(candidates, e)
			}
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Weight < candidates[j].Weight
	})

	ds := newDisjointSet(n)
	chosen := make([]graph.Edge, 0, n-1)
	for _, e := range candidates {
		if ds.union(e.From, e.To) {
			chosen = append(chosen, e)
			if len(chosen) == n-1 {
				break
			}
		}
	}
	if len(chosen) < n-1 {
		return Tree{}, ErrDisconnected
	}

	return orient(g, chosen, n)
}

// orient hangs the undirected edge set from vertex 0. Parent and Edges use the
// handle of the parent→child direction.
func orient(g *graph.Graph, chosen []graph.Edge, n int) (Tree, error) {
	incident := make([][]graph.Edge, n)
	for _, e := range chosen {
		incident[e.From] = append(incident[e.From], e)
		rev, err := g.Edge(e.Reverse)
		if err != nil {
			return Tree{}, err
		}
		incident[e.To] = append(incident[e.To], rev)
	}

	st := g.NewSearchState()
	t := Tree{Root: 0, Parent: st.Path, Edges: make([]graph.Edge, 0, n-1)}
	st.Visited[0] = true
	stack := []int{0}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range incident[u] {
			if st.Visited[e.To] {
				continue
			}
			st.Visited[e.To] = true
			t.Parent[e.To] = e.Handle
			t.Edges = append(t.Edges, e)
			stack = append(stack, e.To)
		}
	}
	t.Weight = weightOf(t.Edges)

	return t, nil
}

// disjointSet is a union-find forest over ids [0, n).
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find returns the set representative, compressing the path as it walks.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were distinct.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
