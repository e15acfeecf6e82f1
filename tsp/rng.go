// RNG utilities for the swap search.
//
// Same seed ⇒ identical swap sequence. math/rand.Rand is not goroutine-safe;
// every run owns its own generator.

package tsp

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// effectiveSeed applies the seed==0 policy.
func effectiveSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}

// rngFromSeed returns a deterministic *rand.Rand for seed (0 ⇒ defaultRNGSeed).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(effectiveSeed(seed)))
}

// distinctPair draws two different positions uniformly from [lo, hi].
// Requires hi > lo.
func distinctPair(r *rand.Rand, lo, hi int) (int, int) {
	span := hi - lo + 1
	i := lo + r.Intn(span)
	j := lo + r.Intn(span-1)
	if j >= i {
		j++
	}

	return i, j
}
