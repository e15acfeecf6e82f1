package pqueue

// HeapOrdered reports whether every parent key is <= its children's keys and
// the position table agrees with the slot layout. Test-only.
func HeapOrdered(q *Queue) bool {
	d := q.h.data
	for i := range d {
		if q.h.pos[d[i].handle] != i {
			return false
		}
		if l := 2*i + 1; l < len(d) && d[l].key < d[i].key {
			return false
		}
		if r := 2*i + 2; r < len(d) && d[r].key < d[i].key {
			return false
		}
	}

	return true
}
