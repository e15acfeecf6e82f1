package tsp

import (
	"fmt"
	"math"
	"time"
)

const (
	// DefaultTimeLimit is the exact search budget.
	DefaultTimeLimit = 30 * time.Second

	// DefaultUpperBoundFactor scales the nearest-neighbour baseline into the
	// swap search's acceptance bound.
	DefaultUpperBoundFactor = 1.5

	// iterationsPerVertex sizes the default swap budget (MaxIterations == 0).
	iterationsPerVertex = 1000
)

// Options configures the solvers. Fields a solver does not use are ignored.
type Options struct {
	// TimeLimit bounds BranchAndBound. Zero expires immediately.
	TimeLimit time.Duration

	// Clock measures TimeLimit and Result.Elapsed.
	Clock Clock

	// Seed feeds the swap search RNG; 0 selects the default seed.
	Seed int64

	// MaxIterations caps the swap search; 0 means 1000·n.
	MaxIterations int

	// UpperBoundFactor scales the baseline cost into the acceptance bound; ≥ 1.
	UpperBoundFactor float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a 30 s budget, the wall clock, seed 0, the 1000·n
// iteration cap and an acceptance factor of 1.5.
func DefaultOptions() Options {
	return Options{
		TimeLimit:        DefaultTimeLimit,
		Clock:            SystemClock(),
		UpperBoundFactor: DefaultUpperBoundFactor,
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithTimeLimit sets the exact search budget. Panics if d < 0.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic(fmt.Sprintf("tsp: WithTimeLimit(%v)", d))
	}

	return func(o *Options) { o.TimeLimit = d }
}

// WithClock replaces the clock. Panics if c is nil.
func WithClock(c Clock) Option {
	if c == nil {
		panic("tsp: WithClock(nil)")
	}

	return func(o *Options) { o.Clock = c }
}

// WithSeed sets the swap search seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithMaxIterations caps the swap search. Panics if n < 0.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("tsp: WithMaxIterations(%d)", n))
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithUpperBoundFactor sets the acceptance factor. Panics unless f ≥ 1.
func WithUpperBoundFactor(f float64) Option {
	if !(f >= 1) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("tsp: WithUpperBoundFactor(%g)", f))
	}

	return func(o *Options) { o.UpperBoundFactor = f }
}

// validate checks a hand-built Options value and fills a nil Clock.
func (o *Options) validate() error {
	switch {
	case o.TimeLimit < 0:
		return fmt.Errorf("%w: TimeLimit=%v", ErrBadOptions, o.TimeLimit)
	case o.MaxIterations < 0:
		return fmt.Errorf("%w: MaxIterations=%d", ErrBadOptions, o.MaxIterations)
	case !(o.UpperBoundFactor >= 1) || math.IsInf(o.UpperBoundFactor, 0):
		return fmt.Errorf("%w: UpperBoundFactor=%g", ErrBadOptions, o.UpperBoundFactor)
	}
	if o.Clock == nil {
		o.Clock = SystemClock()
	}

	return nil
}

// iterations resolves the swap budget for n vertices.
func (o Options) iterations(n int) int {
	if o.MaxIterations > 0 {
		return o.MaxIterations
	}

	return iterationsPerVertex * n
}
