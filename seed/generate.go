// SPDX-License-Identifier: MIT
// Package: lvstream/seed
//
// generate.go — procedural seeding strategies.

package seed

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvstream/geom"
)

const methodGenerate = "Generate"

// Generate produces the seed set selected by cfg.Strategy. src supplies
// bounds, native resolution and coordinates where the strategy needs them
// and may be nil for Single and SingleCopies, or when every bounds axis is
// given explicitly.
//
// IDs are dense 0..N-1 in generation order: x-fastest lattice order for
// Uniform, draw order for Random, source order for FromCoordinates. When
// cfg.Subsample > 0 the result is subsampled (see Subsample).
//
// Errors:
//   - ErrConfiguration — invalid cfg, bounds missing with no source, a
//     lattice above MaxParticles, or the unimplemented UniformSparse.
//   - ErrData          — no native resolution for -1 dimensions, empty
//     source bounds, or no source for FromCoordinates.
func Generate(cfg Config, src Source, opts ...Option) ([]Particle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	o := applyOptions(opts)

	var (
		ps  []Particle
		err error
	)
	switch cfg.Strategy {
	case Uniform:
		ps, err = uniformLattice(cfg, src)
	case Random:
		r := o.rng
		if r == nil {
			r = rngFromSeed(cfg.RandomSeed, DefaultRandomSeed)
		}
		ps, err = randomCloud(cfg, src, r)
	case Single:
		ps = copies(*cfg.Point, 1)
	case SingleCopies:
		ps = copies(*cfg.Point, cfg.Count)
	case FromCoordinates:
		ps, err = fromCoordinates(src)
	case UniformSparse:
		err = fmt.Errorf("strategy %v is not implemented: %w", cfg.Strategy, ErrConfiguration)
	default:
		err = fmt.Errorf("strategy %v: %w", cfg.Strategy, ErrConfiguration)
	}
	if err != nil {
		return nil, fmt.Errorf("%s(%v): %w", methodGenerate, cfg.Strategy, err)
	}

	if cfg.Subsample > 0 {
		if ps, err = Subsample(ps, cfg.Subsample, opts...); err != nil {
			return nil, fmt.Errorf("%s: %w", methodGenerate, err)
		}
	}
	return ps, nil
}

// uniformLattice places nx·ny·nz points on a lattice that includes both
// endpoints of every axis. Complexity: O(nx·ny·nz).
func uniformLattice(cfg Config, src Source) ([]Particle, error) {
	dims, err := resolveDims(cfg.Dimensions, src)
	if err != nil {
		return nil, err
	}
	b, err := resolveBounds(cfg.Bounds, src)
	if err != nil {
		return nil, err
	}

	n, ok := latticeSize(dims)
	if !ok {
		return nil, fmt.Errorf("lattice %v exceeds %d seeds: %w", dims, MaxParticles, ErrConfiguration)
	}
	ps := make([]Particle, 0, n)
	for k := 0; k < dims[2]; k++ {
		z := latticeValue(b.Z, dims[2], k)
		for j := 0; j < dims[1]; j++ {
			y := latticeValue(b.Y, dims[1], j)
			for i := 0; i < dims[0]; i++ {
				ps = append(ps, Particle{
					ID:  len(ps),
					Pos: geom.Point{X: latticeValue(b.X, dims[0], i), Y: y, Z: z},
				})
			}
		}
	}
	return ps, nil
}

// latticeValue returns sample idx of n spread over r inclusive. A single
// sample sits at r.Min; the last sample is exactly r.Max.
func latticeValue(r geom.Range, n, idx int) float64 {
	switch {
	case n == 1 || idx == 0:
		return r.Min
	case idx == n-1:
		return r.Max
	default:
		return r.Min + (r.Max-r.Min)*float64(idx)/float64(n-1)
	}
}

// randomCloud draws cfg.Count points, x then y then z per point.
// Complexity: O(count).
func randomCloud(cfg Config, src Source, r *rand.Rand) ([]Particle, error) {
	b, err := resolveBounds(cfg.Bounds, src)
	if err != nil {
		return nil, err
	}
	ps := make([]Particle, cfg.Count)
	for i := range ps {
		ps[i] = Particle{
			ID: i,
			Pos: geom.Point{
				X: uniformIn(r, b.X.Min, b.X.Max),
				Y: uniformIn(r, b.Y.Min, b.Y.Max),
				Z: uniformIn(r, b.Z.Min, b.Z.Max),
			},
		}
	}
	return ps, nil
}

func copies(p geom.Point, n int) []Particle {
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = Particle{ID: i, Pos: p}
	}
	return ps
}

func fromCoordinates(src Source) ([]Particle, error) {
	if src == nil {
		return nil, fmt.Errorf("no source dataset: %w", ErrData)
	}
	coords := src.Coordinates()
	ps := make([]Particle, len(coords))
	for i, p := range coords {
		ps[i] = Particle{ID: i, Pos: p}
	}
	return ps, nil
}

// resolveBounds applies the per-axis overrides on top of the source bounds.
func resolveBounds(over AxisBounds, src Source) (geom.Bounds, error) {
	var inherited geom.Bounds
	if src != nil {
		inherited = src.Bounds()
	}
	var axes [3]geom.Range
	for i := range axes {
		if r := over.axis(i); r != nil {
			axes[i] = *r
			continue
		}
		if src == nil {
			return geom.Bounds{}, fmt.Errorf("bounds axis %d not set and no source dataset: %w", i, ErrConfiguration)
		}
		r := inherited.Axis(i)
		if r.IsEmpty() {
			return geom.Bounds{}, fmt.Errorf("source bounds axis %d is empty: %w", i, ErrData)
		}
		axes[i] = r
	}
	return geom.Bounds{X: axes[0], Y: axes[1], Z: axes[2]}, nil
}

// resolveDims replaces NativeResolution entries with the source resolution.
func resolveDims(dims [3]int, src Source) ([3]int, error) {
	out := dims
	for i, n := range dims {
		if n != NativeResolution {
			continue
		}
		if src == nil {
			return out, fmt.Errorf("dimensions[%d]=%d with no source dataset: %w", i, n, ErrData)
		}
		native, ok := src.PointDims()
		if !ok {
			return out, fmt.Errorf("dimensions[%d]=%d but the source has no structured resolution: %w", i, n, ErrData)
		}
		out[i] = native[i]
	}
	return out, nil
}
