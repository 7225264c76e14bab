// SPDX-License-Identifier: MIT
// Package: lvstream/seed
//
// charged.go — seeds carrying physical attributes read from a particle
// dataset, with optional sampling sub-box and momentum unit conversion.

package seed

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvstream/csr"
	"github.com/katalvlaran/lvstream/dataset"
	"github.com/katalvlaran/lvstream/geom"
)

const methodGenerateCharged = "GenerateCharged"

// GenerateCharged emits one ChargedParticle per source point, reading the
// arrays named by cfg.Physical (DefaultPhysicalFields when nil). cfg.Strategy
// is not consulted.
//
// With ConvertMomentum, momentum becomes u · mass · c. With cfg.SampleBounds,
// only particles inside the box survive; survivors keep their source order,
// are renumbered 0..K-1 and remember their source index in Source. Subsample
// applies last.
//
// Errors:
//   - ErrConfiguration — partially named position or momentum components,
//     negative count/subsample, or an empty sampling box.
//   - ErrData          — nil source, or a named array that is absent or
//     has the wrong length.
//
// Complexity: O(N·F), F = number of arrays read.
func GenerateCharged(cfg Config, src Source, opts ...Option) ([]ChargedParticle, error) {
	if err := cfg.validateCommon(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerateCharged, err)
	}
	if src == nil {
		return nil, fmt.Errorf("%s: no source dataset: %w", methodGenerateCharged, ErrData)
	}
	names := DefaultPhysicalFields()
	if cfg.Physical != nil {
		names = *cfg.Physical
	}

	pos, err := readPositions(src, names)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerateCharged, err)
	}
	n := len(pos)
	mass, err := scalarOr(src, names.Mass, n, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerateCharged, err)
	}
	charge, err := scalarOr(src, names.Charge, n, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerateCharged, err)
	}
	weight, err := scalarOr(src, names.Weighting, n, 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerateCharged, err)
	}
	mom, err := readMomentum(src, names, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerateCharged, err)
	}

	ps := make([]ChargedParticle, n)
	for i := range ps {
		p := mom[i]
		if names.ConvertMomentum {
			p = r3.Scale(mass[i]*dataset.SpeedOfLight, p)
		}
		ps[i] = ChargedParticle{
			Particle:  Particle{ID: i, Pos: pos[i]},
			Mass:      mass[i],
			Charge:    charge[i],
			Weighting: weight[i],
			Momentum:  p,
			Source:    i,
		}
	}

	if cfg.SampleBounds != nil {
		mask := make([]bool, n)
		for i := range ps {
			mask[i] = cfg.SampleBounds.Contains(ps[i].Pos)
		}
		if ps, err = csr.Select(ps, mask); err != nil {
			return nil, fmt.Errorf("%s: %w", methodGenerateCharged, err)
		}
		for i := range ps {
			ps[i].ID = i
		}
	}

	if cfg.Subsample > 0 {
		if ps, err = Subsample(ps, cfg.Subsample, opts...); err != nil {
			return nil, fmt.Errorf("%s: %w", methodGenerateCharged, err)
		}
	}
	return ps, nil
}

// readPositions uses the x/y/z scalar arrays when all three are named and
// the source coordinates when none is.
func readPositions(src Source, names PhysicalFields) ([]geom.Point, error) {
	set := countNamed(names.X, names.Y, names.Z)
	switch set {
	case 0:
		return src.Coordinates(), nil
	case 3:
	default:
		return nil, fmt.Errorf("position fields %q/%q/%q must be all set or all empty: %w",
			names.X, names.Y, names.Z, ErrConfiguration)
	}
	xs, ok := src.ScalarField(names.X)
	if !ok {
		return nil, missing(names.X)
	}
	n := len(xs)
	ys, err := scalarOr(src, names.Y, n, 0)
	if err != nil {
		return nil, err
	}
	zs, err := scalarOr(src, names.Z, n, 0)
	if err != nil {
		return nil, err
	}
	return combine(xs, ys, zs), nil
}

// readMomentum prefers the Momentum vector array, then the UX/UY/UZ scalars,
// then zero.
func readMomentum(src Source, names PhysicalFields, n int) ([]geom.Point, error) {
	if names.Momentum != "" {
		v, ok := src.VectorField(names.Momentum)
		if !ok {
			return nil, missing(names.Momentum)
		}
		if len(v) != n {
			return nil, fmt.Errorf("field %q has %d values for %d particles: %w", names.Momentum, len(v), n, ErrData)
		}
		return v, nil
	}
	switch countNamed(names.UX, names.UY, names.UZ) {
	case 0:
		return make([]geom.Point, n), nil
	case 3:
	default:
		return nil, fmt.Errorf("momentum fields %q/%q/%q must be all set or all empty: %w",
			names.UX, names.UY, names.UZ, ErrConfiguration)
	}
	ux, err := scalarOr(src, names.UX, n, 0)
	if err != nil {
		return nil, err
	}
	uy, err := scalarOr(src, names.UY, n, 0)
	if err != nil {
		return nil, err
	}
	uz, err := scalarOr(src, names.UZ, n, 0)
	if err != nil {
		return nil, err
	}
	return combine(ux, uy, uz), nil
}

// scalarOr returns the named array, or n copies of def when name is empty.
func scalarOr(src Source, name string, n int, def float64) ([]float64, error) {
	if name == "" {
		out := make([]float64, n)
		for i := range out {
			out[i] = def
		}
		return out, nil
	}
	v, ok := src.ScalarField(name)
	if !ok {
		return nil, missing(name)
	}
	if len(v) != n {
		return nil, fmt.Errorf("field %q has %d values for %d particles: %w", name, len(v), n, ErrData)
	}
	return v, nil
}

func combine(xs, ys, zs []float64) []geom.Point {
	out := make([]geom.Point, len(xs))
	for i := range out {
		out[i] = geom.Point{X: xs[i], Y: ys[i], Z: zs[i]}
	}
	return out
}

func countNamed(names ...string) int {
	n := 0
	for _, s := range names {
		if s != "" {
			n++
		}
	}
	return n
}

func missing(name string) error {
	return fmt.Errorf("field %q not found: %w", name, ErrData)
}
