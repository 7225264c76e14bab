// SPDX-License-Identifier: MIT
// Package: lvstream/seed
//
// options.go — functional options for the stochastic paths (Random strategy
// and Subsample). Option constructors panic on meaningless input; generation
// itself never panics.

package seed

import "math/rand"

// Option customizes a Generate, GenerateCharged or Subsample call.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithRand supplies the random source, overriding the configured seed.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("seed: WithRand(nil)")
	}
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}
