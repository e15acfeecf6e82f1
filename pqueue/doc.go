// Package pqueue provides a mutable binary min-heap keyed by float64 priorities.
//
// What & Why:
//
//	Prim-style algorithms need more than push/pop: once a vertex is queued its
//	key may drop several times before it is extracted. Queue supports
//	Insert, ExtractMin and DecreaseKey in O(log n) by keeping, for every
//	queued handle, its current slot in the heap. The slot lives in a side
//	table owned by the queue (not inside the caller's element), so the queue
//	works for any element that can be named by a small non-negative integer
//	handle, e.g. a vertex id.
//
// Contracts:
//   - Handles are non-negative ints; the side table grows on demand.
//   - A handle may be queued at most once at a time (Insert of a present
//     handle returns ErrPresent).
//   - DecreaseKey only lowers keys; raising one returns ErrKeyIncreased and
//     leaves the heap unchanged.
//   - Ties are broken by heap order (unspecified but deterministic).
//
// Complexity:
//
//	Insert, ExtractMin, DecreaseKey: O(log n). Empty, Len, Contains, Key: O(1).
//
// Concurrency:
//
//	Queue is not safe for concurrent use; each algorithm run owns its queue.
package pqueue
