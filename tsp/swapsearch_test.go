package tsp_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/salesman/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSwap_NeverWorseThanBaseline checks the returned cost against an
// independently computed nearest-neighbour tour.
func TestSwap_NeverWorseThanBaseline(t *testing.T) {
	for n := 3; n <= 14; n++ {
		for seed := int64(1); seed <= 3; seed++ {
			g := euclidean(t, n, seed)
			base, err := tsp.NearestNeighbour(g)
			require.NoError(t, err)
			require.True(t, base.Complete)

			res, err := tsp.NearestNeighbourSwap(context.Background(), g, tsp.NewOptions(tsp.WithSeed(seed)))
			require.NoError(t, err)
			assert.LessOrEqual(t, res.Cost, base.Cost, "n=%d seed=%d", n, seed)
			require.NoError(t, tsp.ValidatePath(res.Path, n))

			dm, err := g.DistanceMatrix()
			require.NoError(t, err)
			got, err := tsp.PathCost(dm, res.Path)
			require.NoError(t, err)
			assert.InDelta(t, res.Cost, got, 1e-9)
		}
	}
}

func TestSwap_Deterministic(t *testing.T) {
	g := euclidean(t, 12, 9)
	run := func(seed int64) tsp.Result {
		res, err := tsp.NearestNeighbourSwap(context.Background(), g, tsp.NewOptions(tsp.WithSeed(seed)))
		require.NoError(t, err)
		return res
	}
	a, b := run(42), run(42)
	assert.Equal(t, a.Path, b.Path)
	assert.Equal(t, a.Cost, b.Cost)
	assert.Equal(t, int64(42), a.Seed)

	assert.Equal(t, int64(1), run(0).Seed, "seed 0 selects the default seed")
}

func TestSwap_RecoversFromDeadEnd(t *testing.T) {
	// Ring 0-1-2-3-0 (9 each) plus chord 0-2 (1). The walk goes 0→2→1 and
	// dead-ends; only swapping positions 1 and 2 yields the ring.
	g := fromRows(t, [][]float64{
		{0, 9, 1, 9},
		{9, 0, 9, 0},
		{1, 9, 0, 9},
		{9, 0, 9, 0},
	})
	base, err := tsp.NearestNeighbour(g)
	require.NoError(t, err)
	require.False(t, base.Complete)

	res, err := tsp.NearestNeighbourSwap(context.Background(), g,
		tsp.NewOptions(tsp.WithSeed(3), tsp.WithMaxIterations(200)))
	require.NoError(t, err)
	assert.Equal(t, 36.0, res.Cost)
	require.NoError(t, tsp.ValidatePath(res.Path, 4))
}

func TestSwap_NoTour(t *testing.T) {
	star := fromRows(t, [][]float64{
		{0, 1, 1, 1},
		{1, 0, 0, 0},
		{1, 0, 0, 0},
		{1, 0, 0, 0},
	})
	res, err := tsp.NearestNeighbourSwap(context.Background(), star,
		tsp.NewOptions(tsp.WithMaxIterations(100)))
	require.ErrorIs(t, err, tsp.ErrNoTourFound)
	assert.Equal(t, float64(tsp.Infeasible), res.Cost)
	assert.Nil(t, res.Path)
}

func TestSwap_FewDistinctCostsTerminates(t *testing.T) {
	// Every tour of a triangle costs the same, so the pool never reaches n.
	res, err := tsp.NearestNeighbourSwap(context.Background(), fromRows(t, [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	}), tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.Cost)
}

func TestSwap_TinyGraphs(t *testing.T) {
	res, err := tsp.NearestNeighbourSwap(context.Background(), fromRows(t, [][]float64{{0, 4}, {4, 0}}), tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Path)
	assert.Equal(t, 8.0, res.Cost)

	res, err = tsp.NearestNeighbourSwap(context.Background(), fromRows(t, [][]float64{{0}}), tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Path)
	assert.Zero(t, res.Cost)
}

func TestSwap_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := tsp.NearestNeighbourSwap(ctx, euclidean(t, 6, 1), tsp.DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, res.Feasible())
}

// TestSwap_CostMatchesMatrix checks that duplicate and zero-weight links do
// not let the search report a cost its path does not have.
func TestSwap_CostMatchesMatrix(t *testing.T) {
	ctx := context.Background()

	g := parallelEdgeCities(t)
	res, err := tsp.NearestNeighbourSwap(ctx, g, tsp.DefaultOptions())
	require.NoError(t, err)
	dm, err := g.DistanceMatrix()
	require.NoError(t, err)
	c, err := tsp.PathCost(dm, res.Path)
	require.NoError(t, err)
	assert.Equal(t, c, res.Cost)

	exact, err := tsp.BranchAndBound(ctx, g, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Cost, exact.Cost)

	tri := zeroEdgeTriangle(t)
	res, err = tsp.NearestNeighbourSwap(ctx, tri, tsp.DefaultOptions())
	assert.ErrorIs(t, err, tsp.ErrNoTourFound)
	assert.False(t, res.Feasible())
	_, err = tsp.BranchAndBound(ctx, tri, tsp.DefaultOptions())
	assert.ErrorIs(t, err, tsp.ErrNoHamiltonianCycle)
}
