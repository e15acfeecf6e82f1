// Package salesman solves the symmetric travelling-salesman problem over an
// in-memory weighted graph.
//
// Three solvers share one contract (tour from vertex 0, cost −1 when no
// certified tour is available):
//
//	tsp.BranchAndBound        exact depth-first search with pruning and a
//	                          wall-clock budget
//	tsp.DoubleTree            MST preorder walk; reports 2·w(MST) as the
//	                          upper bound and w(MST) as the lower bound
//	tsp.NearestNeighbourSwap  greedy tour improved by seeded random swaps
//
// Supporting packages:
//
//	graph/    arena graph, dense distance matrix, search state
//	pqueue/   min-priority queue with decrease-key
//	mst/      Prim and Kruskal spanning trees
//	builder/  deterministic instance generators (complete, cycle, Euclidean, matrix)
//	loader/   CSV datasets (edges only, or nodes + edges)
//	config/   file and environment configuration
//	runner/   service with logging middleware and concurrent comparison
//
// The salesman command (cmd/salesman) loads datasets, runs a solver or all
// of them, and prints the tour.
package salesman
