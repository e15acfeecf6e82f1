package tsp_test

import (
	"testing"

	"github.com/katalvlaran/salesman/graph"
	"github.com/katalvlaran/salesman/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestNeighbour_FourCities(t *testing.T) {
	tour, err := tsp.NearestNeighbour(fromRows(t, fourCitiesRows))
	require.NoError(t, err)
	// 0→1 (10), 1→3 (25), 3→2 (30), close 2→0 (15).
	assert.Equal(t, []int{0, 1, 3, 2}, tour.Path)
	assert.Equal(t, 80.0, tour.Cost)
	assert.True(t, tour.Complete)
}

func TestNearestNeighbour_DeadEnd(t *testing.T) {
	// Star centred at 0: the walk enters leaf 1 and cannot leave.
	g := fromRows(t, [][]float64{
		{0, 2, 3, 4},
		{2, 0, 0, 0},
		{3, 0, 0, 0},
		{4, 0, 0, 0},
	})
	tour, err := tsp.NearestNeighbour(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, tour.Path)
	assert.False(t, tour.Complete)
	assert.Equal(t, 4.0, tour.Cost, "hop 0→1 plus the closing edge 1→0")
}

func TestNearestNeighbour_TieTakesLowestID(t *testing.T) {
	g := graph.New()
	for id := 0; id < 3; id++ {
		require.NoError(t, g.AddVertex(id))
	}
	// Inserted 0-2 first: adjacency order does not decide ties.
	_, err := g.AddBidirectionalEdge(0, 2, 5)
	require.NoError(t, err)
	_, err = g.AddBidirectionalEdge(0, 1, 5)
	require.NoError(t, err)
	_, err = g.AddBidirectionalEdge(1, 2, 1)
	require.NoError(t, err)

	tour, err := tsp.NearestNeighbour(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, tour.Path)
	assert.Equal(t, 11.0, tour.Cost)
	assert.True(t, tour.Complete)
}

// parallelEdgeCities is the four-city instance plus a cheaper duplicate 0-1
// link inserted after the original, which the matrix ignores.
func parallelEdgeCities(t *testing.T) *graph.Graph {
	t.Helper()
	g := fromRows(t, fourCitiesRows)
	_, err := g.AddBidirectionalEdge(0, 1, 1)
	require.NoError(t, err)
	_, err = g.BuildDistanceMatrix()
	require.NoError(t, err)

	return g
}

// zeroEdgeTriangle links 0-1 with weight 0, which the matrix reads as no edge.
func zeroEdgeTriangle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for id := 0; id < 3; id++ {
		require.NoError(t, g.AddVertex(id))
	}
	for _, e := range [][3]float64{{0, 1, 0}, {1, 2, 4}, {0, 2, 6}} {
		_, err := g.AddBidirectionalEdge(int(e[0]), int(e[1]), e[2])
		require.NoError(t, err)
	}

	return g
}

func TestNearestNeighbour_ReadsMatrix(t *testing.T) {
	g := parallelEdgeCities(t)
	tour, err := tsp.NearestNeighbour(g)
	require.NoError(t, err)
	require.True(t, tour.Complete)
	dm, err := g.DistanceMatrix()
	require.NoError(t, err)
	c, err := tsp.PathCost(dm, tour.Path)
	require.NoError(t, err)
	assert.Equal(t, c, tour.Cost)
	assert.Equal(t, 80.0, tour.Cost)

	tour, err = tsp.NearestNeighbour(zeroEdgeTriangle(t))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, tour.Path)
	assert.False(t, tour.Complete, "the closing hop 1→0 has weight 0")
	assert.Equal(t, 10.0, tour.Cost)
}

func TestNearestNeighbour_SingleVertex(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex(0))
	tour, err := tsp.NearestNeighbour(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, tour.Path)
	assert.Zero(t, tour.Cost)
	assert.True(t, tour.Complete)

	_, err = tsp.NearestNeighbour(graph.New())
	assert.ErrorIs(t, err, graph.ErrEmptyGraph)
}
