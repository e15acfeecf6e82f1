package tsp

import (
	"math"

	"github.com/katalvlaran/salesman/graph"
)

// NearestNeighbour walks greedily from vertex 0 over the distance matrix.
//
// At each step the walk takes the cheapest positive matrix entry to an
// unvisited vertex; ties go to the lowest id. It stops when every vertex is
// placed or no unvisited neighbour remains. The closing hop back to 0 is
// added when its entry is positive. Entries ≤ 0 are missing edges, so the
// tour cost always equals PathCost over the same matrix.
//
// Errors: graph.ErrEmptyGraph, graph.ErrNonContiguousIDs.
// Complexity: O(V²).
func NearestNeighbour(g *graph.Graph) (Tour, error) {
	dm, err := distanceMatrix(g)
	if err != nil {
		return Tour{}, err
	}
	n := dm.N()
	w := dm.Flat()
	st := g.NewSearchState()

	t := Tour{Path: make([]int, 1, n)}
	st.Visited[0] = true
	cur := 0
	for len(t.Path) < n {
		row := w[cur*n : (cur+1)*n]
		next, best := -1, math.Inf(1)
		for v, c := range row {
			if c > 0 && !st.Visited[v] && c < best {
				next, best = v, c
			}
		}
		if next < 0 {
			break
		}
		st.Visited[next] = true
		t.Path = append(t.Path, next)
		t.Cost += best
		cur = next
	}

	if n == 1 {
		t.Complete = true
		return t, nil
	}
	if c := w[cur*n]; c > 0 {
		t.Cost += c
		t.Complete = len(t.Path) == n
	}
	t.Cost = round1e9(t.Cost)

	return t, nil
}

// padPath extends a dead-ended walk with the unvisited ids in ascending order.
func padPath(path []int, n int) []int {
	out := make([]int, n)
	copy(out, path)
	seen := make([]bool, n)
	for _, v := range path {
		seen[v] = true
	}
	k := len(path)
	for v := 0; v < n; v++ {
		if !seen[v] {
			out[k] = v
			k++
		}
	}

	return out
}
