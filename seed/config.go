// SPDX-License-Identifier: MIT
// Package: lvstream/seed
//
// config.go — seeding configuration and its static validation.

package seed

import (
	"fmt"

	"github.com/katalvlaran/lvstream/geom"
)

// NativeResolution in Config.Dimensions means "use the source dataset's
// point resolution on this axis".
const NativeResolution = -1

// AxisBounds overrides the source dataset bounds per axis. A nil axis is
// inherited from the source.
type AxisBounds struct {
	X *geom.Range `yaml:"x,omitempty"`
	Y *geom.Range `yaml:"y,omitempty"`
	Z *geom.Range `yaml:"z,omitempty"`
}

func (b AxisBounds) axis(i int) *geom.Range {
	switch i {
	case 0:
		return b.X
	case 1:
		return b.Y
	default:
		return b.Z
	}
}

// PhysicalFields names the source arrays GenerateCharged reads. An empty
// position name set means "use the source coordinates". An empty Momentum
// means "use the UX/UY/UZ scalars". Other empty names mean the attribute is
// absent: mass, charge and momentum default to zero, weighting to one.
type PhysicalFields struct {
	X         string `yaml:"x"`
	Y         string `yaml:"y"`
	Z         string `yaml:"z"`
	Mass      string `yaml:"mass"`
	Charge    string `yaml:"charge"`
	Weighting string `yaml:"weighting"`
	UX        string `yaml:"ux"`
	UY        string `yaml:"uy"`
	UZ        string `yaml:"uz"`
	Momentum  string `yaml:"momentum"`

	// ConvertMomentum turns normalized momentum u into SI: u · mass · c.
	ConvertMomentum bool `yaml:"convertMomentum"`
}

// DefaultPhysicalFields returns the conventional particle-dump names:
// x, y, z, mass, charge, ux, uy, uz, w.
func DefaultPhysicalFields() PhysicalFields {
	return PhysicalFields{
		X: "x", Y: "y", Z: "z",
		Mass: "mass", Charge: "charge", Weighting: "w",
		UX: "ux", UY: "uy", UZ: "uz",
	}
}

// Config selects and parameterizes a seeding strategy.
type Config struct {
	Strategy   Strategy    `yaml:"strategy"`
	Bounds     AxisBounds  `yaml:"bounds"`
	Dimensions [3]int      `yaml:"dimensions" validate:"dive,gte=-1"`
	Count      int         `yaml:"count" validate:"gte=0"`
	Point      *geom.Point `yaml:"point,omitempty"`
	RandomSeed int64       `yaml:"randomSeed"`
	Density    *[3]int     `yaml:"density,omitempty"`

	// Physical is read by GenerateCharged; nil selects DefaultPhysicalFields.
	Physical *PhysicalFields `yaml:"physical,omitempty"`
	// SampleBounds, when set, keeps only charged particles inside the box.
	SampleBounds *geom.Bounds `yaml:"sampleBounds,omitempty"`
	// Subsample > 0 draws that many particles with replacement after
	// generation.
	Subsample int `yaml:"subsample" validate:"gte=0"`
}

// DefaultConfig returns a Uniform config at native resolution with the
// default random seed.
func DefaultConfig() Config {
	return Config{
		Strategy:   Uniform,
		Dimensions: [3]int{NativeResolution, NativeResolution, NativeResolution},
		RandomSeed: DefaultRandomSeed,
	}
}

// MaxParticles bounds Count, Subsample and the number of uniform lattice
// points.
const MaxParticles = 1 << 28

// latticeSize multiplies the lattice dimensions, counting NativeResolution
// entries as 1. ok is false when the product exceeds MaxParticles.
func latticeSize(dims [3]int) (n int, ok bool) {
	n = 1
	for _, d := range dims {
		if d < 1 {
			continue
		}
		if n > MaxParticles/d {
			return 0, false
		}
		n *= d
	}
	return n, true
}

// Validate performs the checks that do not need a source dataset.
//
// Errors: ErrConfiguration.
func (c Config) Validate() error {
	if _, ok := strategyNames[c.Strategy]; !ok {
		return fmt.Errorf("Validate: unknown strategy %v: %w", c.Strategy, ErrConfiguration)
	}
	if err := c.validateCommon(); err != nil {
		return err
	}

	switch c.Strategy {
	case Uniform:
		for i, n := range c.Dimensions {
			if n != NativeResolution && n < 1 {
				return fmt.Errorf("Validate: dimensions[%d]=%d, want >= 1 or %d: %w", i, n, NativeResolution, ErrConfiguration)
			}
		}
		if _, ok := latticeSize(c.Dimensions); !ok {
			return fmt.Errorf("Validate: dimensions %v exceed %d seeds: %w", c.Dimensions, MaxParticles, ErrConfiguration)
		}
	case UniformSparse:
		if c.Density == nil {
			return fmt.Errorf("Validate: uniformSparse strategy needs a density: %w", ErrConfiguration)
		}
		for i, n := range c.Density {
			if n < 1 {
				return fmt.Errorf("Validate: density[%d]=%d, want >= 1: %w", i, n, ErrConfiguration)
			}
		}
	case Random:
		if c.Count < 1 {
			return fmt.Errorf("Validate: random strategy needs count >= 1: %w", ErrConfiguration)
		}
	case Single:
		if c.Point == nil {
			return fmt.Errorf("Validate: single strategy needs a point: %w", ErrConfiguration)
		}
	case SingleCopies:
		if c.Point == nil {
			return fmt.Errorf("Validate: singleCopies strategy needs a point: %w", ErrConfiguration)
		}
		if c.Count < 1 {
			return fmt.Errorf("Validate: singleCopies strategy needs count >= 1: %w", ErrConfiguration)
		}
	}
	return nil
}

// validateCommon checks the fields shared by every strategy and by
// GenerateCharged.
func (c Config) validateCommon() error {
	if c.Count < 0 {
		return fmt.Errorf("Validate: count %d: %w", c.Count, ErrConfiguration)
	}
	if c.Count > MaxParticles {
		return fmt.Errorf("Validate: count %d exceeds %d: %w", c.Count, MaxParticles, ErrConfiguration)
	}
	if c.Subsample < 0 || c.Subsample > MaxParticles {
		return fmt.Errorf("Validate: subsample %d outside [0,%d]: %w", c.Subsample, MaxParticles, ErrConfiguration)
	}
	for i := 0; i < 3; i++ {
		if r := c.Bounds.axis(i); r != nil && r.IsEmpty() {
			return fmt.Errorf("Validate: bounds axis %d [%g,%g] is empty: %w", i, r.Min, r.Max, ErrConfiguration)
		}
	}
	if c.SampleBounds != nil {
		for i := 0; i < 3; i++ {
			if r := c.SampleBounds.Axis(i); r.IsEmpty() {
				return fmt.Errorf("Validate: sample bounds axis %d [%g,%g] is empty: %w", i, r.Min, r.Max, ErrConfiguration)
			}
		}
	}
	return nil
}
