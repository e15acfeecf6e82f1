// Branch-and-bound: exhaustive DFS from vertex 0 with incumbent pruning and a
// cooperative deadline.
//
// Search rules:
//  1. Start at 0 with cost 0; try neighbours v = 1..n-1 in id order.
//  2. Take v only if it is unvisited, w[last→v] > 0 and cost + w < best.
//  3. With all n placed, close over w[last→0] > 0; a smaller total replaces best.
//  4. Before any work, every call checks the deadline and the context.
//
// The bound is the incumbent alone (no lower-bound relaxation), so the first
// complete tour found in id order seeds the pruning.

package tsp

import (
	"context"
	"math"

	"github.com/katalvlaran/salesman/graph"
)

// bbEngine holds the search state of one BranchAndBound run.
type bbEngine struct {
	ctx context.Context
	dl  deadline

	n int
	w []float64 // row-major copy of the distance matrix

	visited []bool
	path    []int // path[0:depth], path[0] == 0

	best     float64
	bestPath []int

	// stop is the reason the search was cut short, or nil.
	stop error
}

func (e *bbEngine) at(u, v int) float64 { return e.w[u*e.n+v] }

// halted records and reports a deadline or context stop.
func (e *bbEngine) halted() bool {
	if e.stop != nil {
		return true
	}
	if e.dl.expired() {
		e.stop = ErrTimeLimit
		return true
	}
	if err := e.ctx.Err(); err != nil {
		e.stop = err
		return true
	}

	return false
}

func (e *bbEngine) dfs(depth int, cost float64) {
	if e.halted() {
		return
	}
	last := e.path[depth-1]

	if depth == e.n {
		c := e.at(last, 0)
		if c > 0 && cost+c < e.best {
			e.best = cost + c
			copy(e.bestPath, e.path)
		}

		return
	}

	for v := 1; v < e.n; v++ {
		c := e.at(last, v)
		if e.visited[v] || c <= 0 || cost+c >= e.best {
			continue
		}
		e.visited[v] = true
		e.path[depth] = v
		e.dfs(depth+1, cost+c)
		e.visited[v] = false
		if e.stop != nil {
			return
		}
	}
}

// BranchAndBound returns an optimal tour or an Infeasible result.
//
// Errors:
//   - graph.ErrEmptyGraph, graph.ErrNonContiguousIDs from the matrix build.
//   - ErrBadOptions for an invalid hand-built Options.
//   - ErrTimeLimit when the budget expires (Cost == Infeasible, no path).
//   - ctx.Err() when the context is done (Cost == Infeasible).
//   - ErrNoHamiltonianCycle when the search completes without a tour.
//
// A single vertex is its own tour with cost 0.
// Complexity: O(n!) time worst case, O(n²) memory for the matrix copy.
func BranchAndBound(ctx context.Context, g *graph.Graph, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	dm, err := distanceMatrix(g)
	if err != nil {
		return Result{}, err
	}

	e := bbEngine{
		ctx:      ctx,
		dl:       newDeadline(opts.Clock, opts.TimeLimit),
		n:        dm.N(),
		w:        dm.Flat(),
		best:     math.Inf(1),
		visited:  make([]bool, dm.N()),
		path:     make([]int, dm.N()),
		bestPath: make([]int, dm.N()),
	}
	if e.halted() {
		return infeasible(AlgoBranchAndBound, e.dl), e.stop
	}
	if e.n == 1 {
		return Result{Algorithm: AlgoBranchAndBound, Path: []int{0}, Elapsed: e.dl.elapsed()}, nil
	}

	e.visited[0] = true
	e.path[0] = 0
	e.dfs(1, 0)

	if e.stop != nil {
		return infeasible(AlgoBranchAndBound, e.dl), e.stop
	}
	if math.IsInf(e.best, 1) {
		return infeasible(AlgoBranchAndBound, e.dl), ErrNoHamiltonianCycle
	}
	cost := round1e9(e.best)

	return Result{
		Algorithm:  AlgoBranchAndBound,
		Cost:       cost,
		Path:       e.bestPath,
		LowerBound: cost,
		Elapsed:    e.dl.elapsed(),
	}, nil
}
