// SPDX-License-Identifier: MIT
// Package: lvstream/seed
//
// types.go — strategies, particles and the source dataset contract.

package seed

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvstream/geom"
)

// Strategy selects how Generate places seeds. The zero value is not a valid
// strategy so an unset config field is reported instead of guessed.
type Strategy int

const (
	// Uniform fills a lattice of Dimensions points spanning the bounds.
	Uniform Strategy = iota + 1
	// Random draws Count points uniformly inside the bounds.
	Random
	// Single emits one particle at Point.
	Single
	// SingleCopies emits Count particles at Point.
	SingleCopies
	// FromCoordinates emits one particle per source point.
	FromCoordinates
	// UniformSparse is a lattice thinned by Density. It is recognized and
	// validated but Generate does not implement it.
	UniformSparse
)

var strategyNames = map[Strategy]string{
	Uniform:         "uniform",
	Random:          "random",
	Single:          "single",
	SingleCopies:    "singleCopies",
	FromCoordinates: "fromCoordinates",
	UniformSparse:   "uniformSparse",
}

// String returns the configuration spelling of s.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy is the inverse of String; matching is case-insensitive.
func ParseStrategy(text string) (Strategy, error) {
	for s, name := range strategyNames {
		if strings.EqualFold(name, text) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q: %w", text, ErrConfiguration)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if _, ok := strategyNames[s]; !ok {
		return nil, fmt.Errorf("strategy %d: %w", int(s), ErrConfiguration)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Particle is one seed. IDs are dense, 0..N-1, in generation order.
type Particle struct {
	ID  int
	Pos geom.Point
}

func (p *Particle) renumber(id int) { p.ID = id }

// ChargedParticle is a seed read from a physical dataset. Momentum is in the
// units of the source unless conversion to SI was requested. Source is the
// index of the originating point in the source dataset.
type ChargedParticle struct {
	Particle
	Mass      float64
	Charge    float64
	Weighting float64
	Momentum  geom.Point
	Source    int
}

// Source is the dataset view seeding needs. dataset.Uniform and
// dataset.PolyData both satisfy it.
type Source interface {
	// Bounds returns the axis-aligned box around the dataset.
	Bounds() geom.Bounds
	// PointDims returns the native point resolution, if the dataset has one.
	PointDims() ([3]int, bool)
	// Coordinates returns every point position. Callers must not modify it.
	Coordinates() []geom.Point
	// ScalarField looks up a per-point scalar array by name.
	ScalarField(name string) ([]float64, bool)
	// VectorField looks up a per-point 3-vector array by name.
	VectorField(name string) ([]geom.Point, bool)
}
