package tsp

import (
	"context"
	"math"

	"github.com/katalvlaran/salesman/graph"
)

// ctxCheckEvery is how many swaps run between context checks.
const ctxCheckEvery = 1024

// NearestNeighbourSwap improves the nearest-neighbour tour by random swaps.
//
// Steps:
//  1. baseline := NearestNeighbour(g). A dead-ended walk is padded with the
//     unvisited ids ascending and counts as infinitely expensive.
//  2. bound := UpperBoundFactor × baseline cost (+Inf for a dead end).
//  3. Repeat: copy the best path, swap two distinct random positions in
//     [1, n-1], cost it with PathCost. A feasible candidate below bound joins
//     the pool of distinct costs and replaces the best when cheaper.
//  4. Stop once the pool holds n distinct costs or after the iteration cap.
//
// Vertex 0 never moves. With n ≤ 2 there is nothing to swap and the baseline
// is returned as is. The returned cost never exceeds the baseline cost.
//
// Errors: graph.ErrEmptyGraph, graph.ErrNonContiguousIDs, ErrBadOptions,
// ErrNoTourFound (Cost == Infeasible), ctx.Err().
// Complexity: O(MaxIterations · n) time, O(n + pool) memory.
func NearestNeighbourSwap(ctx context.Context, g *graph.Graph, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	dl := newDeadline(opts.Clock, opts.TimeLimit)
	seed := effectiveSeed(opts.Seed)

	base, err := NearestNeighbour(g)
	if err != nil {
		return Result{}, err
	}
	dm, err := distanceMatrix(g)
	if err != nil {
		return Result{}, err
	}
	n := dm.N()
	w := dm.Flat()

	best := padPath(base.Path, n)
	bestCost := math.Inf(1)
	if base.Complete {
		bestCost = base.Cost
	}
	bound := opts.UpperBoundFactor * bestCost
	pool := make(map[float64]struct{}, n)
	if base.Complete {
		pool[bestCost] = struct{}{}
	}

	if n > 2 {
		rng := rngFromSeed(seed)
		cand := make([]int, n)
		limit := opts.iterations(n)
		for it := 0; len(pool) < n && it < limit; it++ {
			if it%ctxCheckEvery == 0 {
				if err = ctx.Err(); err != nil {
					r := infeasible(AlgoNearestNeighbourSwap, dl)
					r.Seed = seed
					return r, err
				}
			}
			copy(cand, best)
			i, j := distinctPair(rng, 1, n-1)
			cand[i], cand[j] = cand[j], cand[i]

			cost, cerr := pathCostFlat(w, n, cand)
			if cerr != nil || cost >= bound {
				continue
			}
			pool[cost] = struct{}{}
			if cost < bestCost {
				bestCost = cost
				best, cand = cand, best
			}
		}
	}

	if math.IsInf(bestCost, 1) {
		r := infeasible(AlgoNearestNeighbourSwap, dl)
		r.Seed = seed
		return r, ErrNoTourFound
	}

	return Result{
		Algorithm: AlgoNearestNeighbourSwap,
		Cost:      bestCost,
		Path:      best,
		Seed:      seed,
		Elapsed:   dl.elapsed(),
	}, nil
}
