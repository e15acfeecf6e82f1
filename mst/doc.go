// Package mst computes minimum spanning trees over a *graph.Graph.
//
// Two algorithms are provided and return the same Tree shape:
//
//   - Prim(g, root): grows the tree from root. Every vertex is queued up front
//     in a pqueue.Queue (root with key 0, the rest with +Inf). The loop
//     extracts the cheapest vertex, marks it visited and relaxes its outgoing
//     edges: an edge to an unvisited vertex whose weight is strictly below that
//     vertex's key becomes its parent edge and lowers its key (DecreaseKey).
//     Time O(E log V), memory O(V).
//
//   - Kruskal(g): sorts one direction of every link by weight (stable, so ties
//     keep insertion order) and merges components with a disjoint-set forest
//     (path compression plus union by rank). The chosen edges are then oriented
//     away from vertex 0 so Parent has the same meaning as Prim's.
//     Time O(E log E), memory O(V + E).
//
// Tree:
//
//	Parent[v] is the handle of the edge parent→v, or graph.NoEdge for the root.
//	Edges lists the tree edges in the order they were chosen and Weight is
//	their sum. On a disconnected graph both algorithms return ErrDisconnected.
//
// Vertex ids must be [0, n-1] (graph.ErrNonContiguousIDs otherwise).
// Self-loops never enter a tree. Parallel edges compete on weight.
package mst
