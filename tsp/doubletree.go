package tsp

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/salesman/graph"
	"github.com/katalvlaran/salesman/mst"
)

// DoubleTree builds an MST from vertex 0 and returns its preorder walk.
//
// Steps:
//  1. mst.Prim(g, 0) over the priority queue.
//  2. Preorder from 0: append the vertex, then descend into each child in the
//     vertex's adjacency order. Each tree edge adds its weight twice to the
//     cost, once going down and once coming back.
//
// Result.Cost is the double-tree bound 2·w(MST), not the shortcut tour's own
// cost; use PathCost for the latter. Result.LowerBound is w(MST).
//
// Errors: graph.ErrEmptyGraph, graph.ErrNonContiguousIDs, ErrBadOptions,
// ErrDisconnected (Cost == Infeasible), ctx.Err().
// Complexity: O(E log V) time, O(V) memory.
func DoubleTree(ctx context.Context, g *graph.Graph, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if _, err := distanceMatrix(g); err != nil {
		return Result{}, err
	}
	dl := newDeadline(opts.Clock, opts.TimeLimit)
	if err := ctx.Err(); err != nil {
		return infeasible(AlgoDoubleTree, dl), err
	}

	tree, err := mst.Prim(g, 0)
	if err != nil {
		if errors.Is(err, mst.ErrDisconnected) {
			return infeasible(AlgoDoubleTree, dl), fmt.Errorf("tsp: double tree: %w", err)
		}

		return Result{}, err
	}

	w := preorderWalk{g: g, tree: tree, path: make([]int, 0, len(tree.Parent))}
	if err = w.visit(tree.Root); err != nil {
		return Result{}, err
	}

	return Result{
		Algorithm:  AlgoDoubleTree,
		Cost:       round1e9(w.cost),
		Path:       w.path,
		LowerBound: round1e9(tree.Weight),
		Elapsed:    dl.elapsed(),
	}, nil
}

// preorderWalk accumulates the path and the doubled edge weights.
type preorderWalk struct {
	g    *graph.Graph
	tree mst.Tree
	path []int
	cost float64
}

func (w *preorderWalk) visit(v int) error {
	w.path = append(w.path, v)
	adj, err := w.g.Adjacent(v)
	if err != nil {
		return err
	}
	for _, e := range adj {
		if w.tree.Parent[e.To] != e.Handle {
			continue
		}
		w.cost += e.Weight
		if err = w.visit(e.To); err != nil {
			return err
		}
		w.cost += e.Weight
	}

	return nil
}
