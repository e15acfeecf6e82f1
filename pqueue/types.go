package pqueue

import "errors"

// Sentinel errors for queue operations.
var (
	// ErrEmpty is returned by ExtractMin on an empty queue.
	ErrEmpty = errors.New("pqueue: queue is empty")

	// ErrPresent is returned by Insert when the handle is already queued.
	ErrPresent = errors.New("pqueue: handle already queued")

	// ErrAbsent is returned by DecreaseKey/Key when the handle is not queued.
	ErrAbsent = errors.New("pqueue: handle not queued")

	// ErrKeyIncreased is returned by DecreaseKey when the new key is larger
	// than the current one.
	ErrKeyIncreased = errors.New("pqueue: decrease-key would increase key")

	// ErrBadHandle is returned for negative handles.
	ErrBadHandle = errors.New("pqueue: negative handle")
)

// notQueued marks a handle without a heap slot in the position table.
const notQueued = -1

// item is a single heap slot.
type item struct {
	handle int
	key    float64
}
