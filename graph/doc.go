// SPDX-License-Identifier: MIT

// Package graph defines the weighted, symmetric graph consumed by the TSP
// solvers: vertices addressed by caller-assigned integer ids, bidirectional
// edge pairs linked as mutual reverses, and a dense all-pairs distance matrix
// derived from the edge set.
//
// Storage model:
//
//	Vertices and edges live in flat arenas (slices). An Edge names its
//	endpoints by vertex id and its opposite-direction twin by edge handle
//	(an index into the edge arena), so no pointers cross between records.
//
// Id contract:
//
//	Vertex ids must form the contiguous range [0, n-1]. Ids may be inserted in
//	any order; BuildDistanceMatrix verifies the range and returns
//	ErrNonContiguousIDs when it does not hold. Everything downstream (matrix
//	rows, SearchState slices, tour paths) is indexed by id.
//
// Edges:
//
//	AddBidirectionalEdge(u, v, w) installs u→v and v→u with the same weight.
//	It does not guard self-loops and does not deduplicate parallel edges.
//	Unknown endpoints leave the graph untouched and return ErrVertexNotFound.
//
// Distance matrix:
//
//	matrix[i][j] = weight of the first i→j edge met while scanning vertices in
//	id order, or 0 when no edge exists. A 0 entry therefore means "no edge";
//	zero-weight edges are accepted by AddBidirectionalEdge but are invisible
//	to consumers of the matrix. Any mutation after BuildDistanceMatrix drops
//	the matrix; DistanceMatrix then reports ErrMatrixNotBuilt until rebuilt.
//
// Concurrency:
//
//	Graph guards its arenas with a sync.RWMutex. A built DistanceMatrix is
//	immutable and may be shared by concurrent readers.
package graph
