package mst_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/salesman/builder"
	"github.com/katalvlaran/salesman/graph"
	"github.com/katalvlaran/salesman/mst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pentagon: 0-1(1) 1-2(2) 2-3(3) 3-4(5) 0-4(12) plus chord 0-2(4).
// MST = {0-1, 1-2, 2-3, 3-4}, weight 11.
func pentagon(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.FromMatrix([][]float64{
		{0, 1, 4, 0, 12},
		{1, 0, 2, 0, 0},
		{4, 2, 0, 3, 0},
		{0, 0, 3, 0, 5},
		{12, 0, 0, 5, 0},
	}))
	require.NoError(t, err)

	return g
}

// checkTree verifies the structural invariants of a spanning tree.
func checkTree(t *testing.T, g *graph.Graph, tr mst.Tree) {
	t.Helper()
	n := g.NumVertices()
	require.Len(t, tr.Parent, n)
	require.Len(t, tr.Edges, n-1)
	assert.Equal(t, graph.NoEdge, tr.Parent[tr.Root])

	var sum float64
	for _, e := range tr.Edges {
		assert.Equal(t, e.Handle, tr.Parent[e.To], "edge %d→%d is the parent edge of its child", e.From, e.To)
		sum += e.Weight
	}
	assert.InDelta(t, sum, tr.Weight, 1e-9)

	// Every vertex reaches the root by following parents.
	for v := 0; v < n; v++ {
		cur, steps := v, 0
		for cur != tr.Root {
			e, err := g.Edge(tr.Parent[cur])
			require.NoError(t, err)
			cur = e.From
			steps++
			require.LessOrEqual(t, steps, n, "parent chain from %d loops", v)
		}
	}
}

func TestPrim_Pentagon(t *testing.T) {
	g := pentagon(t)
	tr, err := mst.Prim(g, 0)
	require.NoError(t, err)
	checkTree(t, g, tr)
	assert.Equal(t, 11.0, tr.Weight)

	// Extraction order follows the growing frontier.
	got := make([][2]int, len(tr.Edges))
	for i, e := range tr.Edges {
		got[i] = [2]int{e.From, e.To}
	}
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}, got)
}

func TestKruskal_Pentagon(t *testing.T) {
	g := pentagon(t)
	tr, err := mst.Kruskal(g)
	require.NoError(t, err)
	checkTree(t, g, tr)
	assert.Equal(t, 0, tr.Root)
	assert.Equal(t, 11.0, tr.Weight)
}

func TestPrim_OtherRoot(t *testing.T) {
	g := pentagon(t)
	tr, err := mst.Prim(g, 3)
	require.NoError(t, err)
	checkTree(t, g, tr)
	assert.Equal(t, 3, tr.Root)
	assert.Equal(t, 11.0, tr.Weight)
}

func TestMST_Errors(t *testing.T) {
	_, err := mst.Prim(graph.New(), 0)
	assert.ErrorIs(t, err, graph.ErrEmptyGraph)
	_, err = mst.Kruskal(graph.New())
	assert.ErrorIs(t, err, graph.ErrEmptyGraph)

	g := pentagon(t)
	_, err = mst.Prim(g, 42)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)

	gap := graph.New()
	require.NoError(t, gap.AddVertex(0))
	require.NoError(t, gap.AddVertex(5))
	_, err = mst.Prim(gap, 0)
	assert.ErrorIs(t, err, graph.ErrNonContiguousIDs)
	_, err = mst.Kruskal(gap)
	assert.ErrorIs(t, err, graph.ErrNonContiguousIDs)

	split, err := builder.BuildGraph(nil, builder.FromMatrix([][]float64{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 2},
		{0, 0, 2, 0},
	}))
	require.NoError(t, err)
	_, err = mst.Prim(split, 0)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	_, err = mst.Kruskal(split)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
}

func TestMST_SingleVertexAndLoops(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex(0))
	_, err := g.AddBidirectionalEdge(0, 0, 3)
	require.NoError(t, err)

	for _, run := range []func() (mst.Tree, error){
		func() (mst.Tree, error) { return mst.Prim(g, 0) },
		func() (mst.Tree, error) { return mst.Kruskal(g) },
	} {
		tr, err := run()
		require.NoError(t, err)
		assert.Empty(t, tr.Edges)
		assert.Zero(t, tr.Weight)
	}
}

// TestPrimMatchesKruskal cross-checks the two algorithms on random sparse
// and dense instances: spanning trees may differ on ties, weights may not.
func TestPrimMatchesKruskal(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 30; trial++ {
		n := 2 + r.Intn(12)
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithRand(r), builder.WithUniformWeight(1, 20)},
			builder.Cycle(max(n, 3)),
		)
		require.NoError(t, err)
		n = g.NumVertices()
		for k := 0; k < n; k++ {
			u, v := r.Intn(n), r.Intn(n)
			_, err = g.AddBidirectionalEdge(u, v, float64(1+r.Intn(20)))
			require.NoError(t, err)
		}

		p, err := mst.Prim(g, r.Intn(n))
		require.NoError(t, err)
		k, err := mst.Kruskal(g)
		require.NoError(t, err)
		checkTree(t, g, p)
		checkTree(t, g, k)
		assert.InDelta(t, k.Weight, p.Weight, 1e-9, "trial %d", trial)
	}
}

func TestTreeChildren(t *testing.T) {
	g := pentagon(t)
	tr, err := mst.Prim(g, 2)
	require.NoError(t, err)

	adj, err := g.Adjacent(2)
	require.NoError(t, err)
	// Vertex 2's adjacency order is 0, 1, 3; 0 hangs below 1, not 2.
	assert.Equal(t, []int{1, 3}, tr.Children(2, adj))
}
