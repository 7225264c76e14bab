// SPDX-License-Identifier: MIT
// Package: lvstream/seed
//
// rng.go — deterministic random sources. Seeding never reads system entropy:
// the same configuration yields the same particles on every run.
//
// math/rand.Rand is not goroutine-safe; each Generate call owns its source.

package seed

import "math/rand"

const (
	// DefaultRandomSeed drives the Random strategy when the config leaves
	// RandomSeed at zero.
	DefaultRandomSeed int64 = 255

	// DefaultSubsampleSeed drives Subsample when no option overrides it.
	DefaultSubsampleSeed int64 = 314
)

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ fallback; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed, fallback int64) *rand.Rand {
	if seed == 0 {
		seed = fallback
	}
	return rand.New(rand.NewSource(seed))
}

// uniformIn draws one value in [lo, hi).
func uniformIn(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
