// Package tsp solves the Travelling Salesman Problem on a *graph.Graph whose
// vertex ids are [0, n-1]. Every tour starts at vertex 0, visits each vertex
// exactly once and returns to 0. Paths are reported open: a permutation of
// length n with Path[0] == 0 and the closing hop implied.
//
// Solvers:
//
//   - BranchAndBound: exact depth-first search from vertex 0.
//     Neighbours are tried in id order; a hop is taken only when the matrix
//     entry is positive and the partial cost plus the hop stays strictly below
//     the incumbent. A full placement closes only over a positive edge back
//     to 0. A deadline (Options.TimeLimit measured with Options.Clock) and the
//     context are checked on every recursive step; on expiry the result is
//     Infeasible with ErrTimeLimit (or the context error), even if an
//     incumbent exists, because it is not certified optimal.
//     Time: O(n!) worst case. Memory: O(n).
//
//   - DoubleTree: 2-approximation on metric instances.
//     A minimum spanning tree is grown from vertex 0 with mst.Prim; a preorder
//     walk (children in adjacency order) yields the path. The reported cost is
//     the double-tree bound 2·w(MST): each tree edge is paid on the way down
//     and again on the way back. Result.LowerBound carries w(MST).
//     Time: O(E log V). Memory: O(V).
//
//   - NearestNeighbourSwap: greedy construction plus random swap search.
//     NearestNeighbour walks from 0 to the closest unvisited neighbour until
//     all vertices are placed or a dead end is hit. The search then repeatedly
//     copies the best path, swaps two random positions in [1, n-1] and keeps
//     candidates cheaper than UpperBoundFactor × baseline in a pool of
//     distinct costs, promoting improvements. It stops when the pool holds n
//     distinct costs or after MaxIterations swaps.
//     Time: O(MaxIterations · n). Memory: O(n).
//
// Matrix semantics:
//
//	The solvers read graph.DistanceMatrix, where 0 means "no edge". A
//	zero-weight edge is therefore invisible to BranchAndBound and to the swap
//	search's cost function. The matrix is built on demand when missing.
//
// Infeasibility:
//
//	Result.Cost == Infeasible (-1) whenever no certified tour is returned;
//	the accompanying error says why (ErrTimeLimit, ErrNoHamiltonianCycle,
//	ErrDisconnected, ErrNoTourFound, context errors).
//
// Determinism:
//
//	The swap search draws from math/rand seeded with Options.Seed (0 selects
//	the fixed default seed 1); the effective seed is echoed in Result.Seed.
//	The other solvers are fully deterministic.
//
// Concurrency:
//
//	Solvers own their scratch state and only read the graph, so distinct
//	solvers may run concurrently over the same built graph.
package tsp
