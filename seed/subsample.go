// SPDX-License-Identifier: MIT
// Package: lvstream/seed

package seed

import (
	"fmt"

	"github.com/katalvlaran/lvstream/csr"
)

// renumberable is satisfied by *Particle and *ChargedParticle.
type renumberable[T any] interface {
	*T
	renumber(id int)
}

// Subsample draws n particles from in uniformly with replacement and
// renumbers the draws 0..n-1. The random source defaults to
// DefaultSubsampleSeed; WithSeed or WithRand override it. in is not modified.
//
// Errors: ErrConfiguration for n < 0 or n > MaxParticles, ErrData for n > 0 with empty input.
// Complexity: O(n).
func Subsample[T any, PT renumberable[T]](in []T, n int, opts ...Option) ([]T, error) {
	if n < 0 || n > MaxParticles {
		return nil, fmt.Errorf("Subsample: n=%d outside [0,%d]: %w", n, MaxParticles, ErrConfiguration)
	}
	if n > 0 && len(in) == 0 {
		return nil, fmt.Errorf("Subsample: %d draws from an empty set: %w", n, ErrData)
	}
	o := applyOptions(opts)
	r := o.rng
	if r == nil {
		r = rngFromSeed(0, DefaultSubsampleSeed)
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = r.Intn(len(in))
	}
	out, err := csr.Gather(in, idx)
	if err != nil {
		return nil, fmt.Errorf("Subsample: %w", err)
	}
	for i := range out {
		PT(&out[i]).renumber(i)
	}
	return out, nil
}
