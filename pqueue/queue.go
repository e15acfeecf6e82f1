package pqueue

import "container/heap"

// Queue is a binary min-heap over integer handles with mutable keys.
// The zero value is ready to use.
type Queue struct {
	h slots
}

// slots implements heap.Interface and keeps pos in sync on every move.
type slots struct {
	data []item
	pos  []int // pos[handle] = index in data, or notQueued
}

func (s *slots) Len() int           { return len(s.data) }
func (s *slots) Less(i, j int) bool { return s.data[i].key < s.data[j].key }
func (s *slots) Swap(i, j int) {
	s.data[i], s.data[j] = s.data[j], s.data[i]
	s.pos[s.data[i].handle] = i
	s.pos[s.data[j].handle] = j
}

// Push appends x at the tail; heap.Push sifts it up afterwards.
func (s *slots) Push(x any) {
	it := x.(item)
	s.pos[it.handle] = len(s.data)
	s.data = append(s.data, it)
}

// Pop removes the tail element (the minimum after heap.Pop's swap).
func (s *slots) Pop() any {
	n := len(s.data)
	it := s.data[n-1]
	s.data = s.data[:n-1]
	s.pos[it.handle] = notQueued

	return it
}

// New returns an empty Queue with room for handles in [0, capacity).
// Larger handles are still accepted; the position table grows on demand.
// Complexity: O(capacity).
func New(capacity int) *Queue {
	if capacity < 0 {
		capacity = 0
	}
	q := &Queue{}
	q.h.data = make([]item, 0, capacity)
	q.h.pos = make([]int, capacity)
	for i := range q.h.pos {
		q.h.pos[i] = notQueued
	}

	return q
}

// grow extends the position table so that handle h is addressable.
func (q *Queue) grow(h int) {
	for len(q.h.pos) <= h {
		q.h.pos = append(q.h.pos, notQueued)
	}
}

// Len reports the number of queued handles.
func (q *Queue) Len() int { return len(q.h.data) }

// Empty reports whether the queue holds no handles.
func (q *Queue) Empty() bool { return len(q.h.data) == 0 }

// Contains reports whether h is currently queued.
func (q *Queue) Contains(h int) bool {
	return h >= 0 && h < len(q.h.pos) && q.h.pos[h] != notQueued
}

// Key returns the current key of a queued handle.
func (q *Queue) Key(h int) (float64, error) {
	if !q.Contains(h) {
		return 0, ErrAbsent
	}

	return q.h.data[q.h.pos[h]].key, nil
}

// Insert queues handle h with the given key.
// Complexity: O(log n).
func (q *Queue) Insert(h int, key float64) error {
	if h < 0 {
		return ErrBadHandle
	}
	q.grow(h)
	if q.h.pos[h] != notQueued {
		return ErrPresent
	}
	heap.Push(&q.h, item{handle: h, key: key})

	return nil
}

// ExtractMin removes and returns the handle with the smallest key.
// Complexity: O(log n).
func (q *Queue) ExtractMin() (int, float64, error) {
	if len(q.h.data) == 0 {
		return notQueued, 0, ErrEmpty
	}
	it := heap.Pop(&q.h).(item)

	return it.handle, it.key, nil
}

// DecreaseKey lowers the key of a queued handle and restores heap order by
// sifting it towards the root. Equal keys are accepted as a no-op move.
// Complexity: O(log n).
func (q *Queue) DecreaseKey(h int, key float64) error {
	if !q.Contains(h) {
		return ErrAbsent
	}
	i := q.h.pos[h]
	if key > q.h.data[i].key {
		return ErrKeyIncreased
	}
	q.h.data[i].key = key
	heap.Fix(&q.h, i)

	return nil
}

// Reset empties the queue while keeping its allocations.
func (q *Queue) Reset() {
	for _, it := range q.h.data {
		q.h.pos[it.handle] = notQueued
	}
	q.h.data = q.h.data[:0]
}
