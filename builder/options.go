// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
)

// builderConfig holds the resolved knobs shared by all constructors.
type builderConfig struct {
	// rng drives stochastic constructors and weight functions; nil means
	// deterministic fallbacks (see WeightFn).
	rng *rand.Rand

	// weightFn draws the weight of every emitted link.
	weightFn WeightFn
}

// BuilderOption mutates a builderConfig before use.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts over the defaults (no RNG, constant weight).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand uses r as the random source. Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed uses a fresh math/rand source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the link weight generator. Panics if fn is nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
