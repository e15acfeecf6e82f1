// Shared fixtures for the tsp tests.

package tsp_test

import (
	"math"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/salesman/builder"
	"github.com/katalvlaran/salesman/graph"
	"github.com/katalvlaran/salesman/tsp"
	"github.com/stretchr/testify/require"
)

// fourCitiesRows is the classic 4-city instance; the optimum is 80 via
// 0-1-3-2-0 (or its reverse).
var fourCitiesRows = [][]float64{
	{0, 10, 15, 20},
	{10, 0, 35, 25},
	{15, 35, 0, 30},
	{20, 25, 30, 0},
}

// fromRows builds a graph from a symmetric weight table (0 = no edge).
func fromRows(t testing.TB, rows [][]float64) *graph.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.FromMatrix(rows))
	require.NoError(t, err)
	_, err = g.BuildDistanceMatrix()
	require.NoError(t, err)

	return g
}

// euclidean builds a random geometric instance.
func euclidean(t testing.TB, n int, seed int64) *graph.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.Euclidean(n, 100))
	require.NoError(t, err)
	_, err = g.BuildDistanceMatrix()
	require.NoError(t, err)

	return g
}

// manhattan builds a metric instance: point i sits at (i, y_i) with random
// integer y_i, weights are L1 distances (≥ 1 since x differs).
func manhattan(t testing.TB, n int, seed int64) *graph.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = float64(r.Intn(50))
	}
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = math.Abs(float64(i-j)) + math.Abs(ys[i]-ys[j])
			}
		}
	}

	return fromRows(t, rows)
}

// sparse builds a random instance where each pair is linked with
// probability p and weight in [1, 30].
func sparse(t testing.TB, n int, p float64, seed int64) *graph.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Float64() < p {
				w := float64(1 + r.Intn(30))
				rows[i][j], rows[j][i] = w, w
			}
		}
	}

	return fromRows(t, rows)
}

// bruteForce enumerates every path 0,π(1..n-1) and returns the cheapest
// feasible closed cost, or +Inf.
func bruteForce(t testing.TB, g *graph.Graph) float64 {
	t.Helper()
	dm, err := g.DistanceMatrix()
	require.NoError(t, err)
	n := dm.N()
	if n == 1 {
		return 0
	}

	best := math.Inf(1)
	path := make([]int, n)
	used := make([]bool, n)
	var rec func(depth int)
	rec = func(depth int) {
		if depth == n {
			if c, err := tsp.PathCost(dm, path); err == nil && c < best {
				best = c
			}
			return
		}
		for v := 1; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			path[depth] = v
			rec(depth + 1)
			used[v] = false
		}
	}
	used[0] = true
	rec(1)

	return best
}

// stepClock advances by step on every Now call, so deadlines expire after a
// fixed number of checks regardless of machine speed.
type stepClock struct {
	mu    sync.Mutex
	now   time.Time
	step  time.Duration
	calls int
}

func newStepClock(step time.Duration) *stepClock {
	return &stepClock{now: time.Unix(0, 0), step: step}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	c.calls++

	return t
}

func (c *stepClock) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.calls
}
