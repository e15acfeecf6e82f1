package tsp

import "time"

// Clock is the time source for budgets and elapsed time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }

// deadline is a start instant plus a budget on a given clock.
type deadline struct {
	clock  Clock
	start  time.Time
	budget time.Duration
}

func newDeadline(c Clock, budget time.Duration) deadline {
	return deadline{clock: c, start: c.Now(), budget: budget}
}

// expired reports elapsed ≥ budget, so a zero budget is expired from the start.
func (d deadline) expired() bool {
	return d.clock.Now().Sub(d.start) >= d.budget
}

// elapsed returns the time spent since start.
func (d deadline) elapsed() time.Duration {
	return d.clock.Now().Sub(d.start)
}
