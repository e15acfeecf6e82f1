// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each link when no custom
// WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// minSampledWeight floors the sampled weights; a 0 weight reads as "no edge"
// in the distance matrix.
const minSampledWeight = 1

// WeightFn produces a link weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling integers uniformly in
// [min, max] (bounds rounded inward). Panics if min < 0 or max < min.
// If rng is nil it yields DefaultEdgeWeight.
// Complexity: O(1).
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}
	lo, hi := math.Ceil(min), math.Floor(max)

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if hi <= lo {
			return lo
		}

		return lo + float64(rng.Int63n(int64(hi-lo)+1))
	}
}

// NormalWeightFn returns a WeightFn sampling N(mean, stddev), rounded to the
// nearest integer and clamped to at least minSampledWeight. Panics if stddev < 0.
// If rng is nil it yields DefaultEdgeWeight.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %g", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		return math.Max(minSampledWeight, math.Round(rng.NormFloat64()*stddev+mean))
	}
}

// ExponentialWeightFn returns a WeightFn sampling Exp(rate) rounded to the
// nearest integer and clamped to at least minSampledWeight. Panics if rate ≤ 0.
// If rng is nil it yields DefaultEdgeWeight.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Max(minSampledWeight, math.Round(rng.ExpFloat64()/rate))
	}
}

// WithConstantWeight sets a fixed link weight.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets integer weights drawn uniformly from [min, max].
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithNormalWeight sets weights ∼ N(mean, stddev).
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight sets weights ∼ Exp(rate).
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}
