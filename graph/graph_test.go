package graph_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/salesman/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSquare returns the 4-cycle 0-1-2-3-0 with weights 1,2,3,4 plus the
// diagonal 0-2 (5).
func buildSquare(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New(graph.WithCapacity(4))
	for id := 0; id < 4; id++ {
		require.NoError(t, g.AddVertex(id))
	}
	for _, e := range []struct {
		u, v int
		w    float64
	}{{0, 1, 1}, {1, 2, 2}, {2, 3, 3}, {3, 0, 4}, {0, 2, 5}} {
		_, err := g.AddBidirectionalEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestAddVertex(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex(0, graph.WithName("Porto")))
	require.NoError(t, g.AddVertex(1, graph.WithCoordinates(-8.61, 41.15)))

	assert.ErrorIs(t, g.AddVertex(0), graph.ErrDuplicateVertex)
	assert.ErrorIs(t, g.AddVertex(-3), graph.ErrNegativeID)
	assert.Equal(t, 2, g.NumVertices())

	v, err := g.Vertex(0)
	require.NoError(t, err)
	assert.Equal(t, "Porto", v.Name)
	assert.False(t, v.HasCoordinates)

	v, err = g.Vertex(1)
	require.NoError(t, err)
	assert.True(t, v.HasCoordinates)
	assert.InDelta(t, 41.15, v.Latitude, 1e-12)

	_, err = g.Vertex(9)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestAddBidirectionalEdge_LinksReverse(t *testing.T) {
	g := buildSquare(t)
	assert.Equal(t, 10, g.NumEdges())

	adj, err := g.Adjacent(0)
	require.NoError(t, err)
	require.Len(t, adj, 3)
	assert.Equal(t, []int{1, 3, 2}, []int{adj[0].To, adj[1].To, adj[2].To})

	for _, e := range adj {
		rev, err := g.Edge(e.Reverse)
		require.NoError(t, err)
		assert.Equal(t, e.From, rev.To)
		assert.Equal(t, e.To, rev.From)
		assert.Equal(t, e.Weight, rev.Weight)
		assert.Equal(t, e.Handle, rev.Reverse)
	}
}

func TestAddBidirectionalEdge_Rejects(t *testing.T) {
	g := buildSquare(t)
	before := g.NumEdges()

	_, err := g.AddBidirectionalEdge(0, 42, 1)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
	_, err = g.AddBidirectionalEdge(0, 1, -1)
	assert.ErrorIs(t, err, graph.ErrBadWeight)
	_, err = g.AddBidirectionalEdge(0, 1, math.NaN())
	assert.ErrorIs(t, err, graph.ErrBadWeight)

	assert.Equal(t, before, g.NumEdges(), "failed inserts must not mutate the graph")
}

func TestAddBidirectionalEdge_ParallelAndLoops(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex(0))
	require.NoError(t, g.AddVertex(1))

	_, err := g.AddBidirectionalEdge(0, 1, 7)
	require.NoError(t, err)
	_, err = g.AddBidirectionalEdge(0, 1, 3)
	require.NoError(t, err)
	_, err = g.AddBidirectionalEdge(1, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, g.NumEdges())

	dm, err := g.BuildDistanceMatrix()
	require.NoError(t, err)
	assert.Equal(t, 7.0, dm.At(0, 1), "first parallel edge wins")
	assert.Equal(t, 7.0, dm.At(1, 0))
	assert.Equal(t, 2.0, dm.At(1, 1))
}

func TestRemoveEdge(t *testing.T) {
	g := buildSquare(t)
	_, err := g.BuildDistanceMatrix()
	require.NoError(t, err)

	n, err := g.RemoveEdge(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.False(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(2, 0))
	assert.Equal(t, 8, g.NumEdges())

	_, err = g.DistanceMatrix()
	assert.ErrorIs(t, err, graph.ErrMatrixNotBuilt, "mutation drops the matrix")

	_, err = g.RemoveEdge(2, 0)
	assert.ErrorIs(t, err, graph.ErrEdgeNotFound)
	_, err = g.RemoveEdge(2, 99)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)

	require.NoError(t, g.AddVertex(4))
	_, err = g.AddBidirectionalEdge(4, 4, 1)
	require.NoError(t, err)
	n, err = g.RemoveEdge(4, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 8, g.NumEdges())
}

func TestBuildDistanceMatrix(t *testing.T) {
	g := buildSquare(t)

	_, err := g.DistanceMatrix()
	require.ErrorIs(t, err, graph.ErrMatrixNotBuilt)

	dm, err := g.BuildDistanceMatrix()
	require.NoError(t, err)
	require.Equal(t, 4, dm.N())
	assert.True(t, dm.Symmetric())

	want := [][]float64{
		{0, 1, 5, 4},
		{1, 0, 2, 0},
		{5, 2, 0, 3},
		{4, 0, 3, 0},
	}
	for i := range want {
		assert.Equal(t, want[i], dm.Row(i), "row %d", i)
	}
	assert.False(t, dm.Has(1, 3))
	assert.True(t, dm.Has(3, 2))

	flat := dm.Flat()
	require.Len(t, flat, 16)
	assert.Equal(t, 5.0, flat[0*4+2])

	same, err := g.DistanceMatrix()
	require.NoError(t, err)
	assert.Same(t, dm, same)
}

func TestBuildDistanceMatrix_IDContract(t *testing.T) {
	_, err := graph.New().BuildDistanceMatrix()
	assert.ErrorIs(t, err, graph.ErrEmptyGraph)

	g := graph.New()
	require.NoError(t, g.AddVertex(1))
	require.NoError(t, g.AddVertex(2))
	_, err = g.BuildDistanceMatrix()
	assert.ErrorIs(t, err, graph.ErrNonContiguousIDs)

	// Out-of-order insertion is fine as long as the final set is [0, n-1].
	require.NoError(t, g.AddVertex(0))
	_, err = g.BuildDistanceMatrix()
	assert.NoError(t, err)
}

func TestOptimalPath(t *testing.T) {
	g := buildSquare(t)
	assert.Nil(t, g.OptimalPath())
	assert.ErrorIs(t, g.SetOptimalPath([]int{0, 1}), graph.ErrPathLength)

	p := []int{0, 1, 2, 3}
	require.NoError(t, g.SetOptimalPath(p))
	p[1] = 99
	assert.Equal(t, []int{0, 1, 2, 3}, g.OptimalPath(), "stored path is a copy")
}

func TestSearchState(t *testing.T) {
	g := buildSquare(t)
	s := g.NewSearchState()
	require.Equal(t, 4, s.Len())
	for i := 0; i < s.Len(); i++ {
		assert.False(t, s.Visited[i])
		assert.True(t, math.IsInf(s.Dist[i], 1))
		assert.Equal(t, graph.NoEdge, s.Path[i])
	}

	s.Visited[2], s.Dist[2], s.Path[2] = true, 3, 7
	s.Reset()
	assert.False(t, s.Visited[2])
	assert.True(t, math.IsInf(s.Dist[2], 1))
	assert.Equal(t, graph.NoEdge, s.Path[2])
}

func TestVerticesSorted(t *testing.T) {
	g := graph.New()
	for _, id := range []int{3, 0, 2, 1} {
		require.NoError(t, g.AddVertex(id))
	}
	vs := g.Vertices()
	require.Len(t, vs, 4)
	for i, v := range vs {
		assert.Equal(t, i, v.ID)
	}
}
