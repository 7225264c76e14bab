// SPDX-License-Identifier: MIT
// Package: lvstream/dataset
//
// uniform.go — structured-points dataset (regular lattice).

package dataset

import (
	"fmt"

	"github.com/katalvlaran/lvstream/geom"
)

// Uniform is a regular lattice of Dims[0]×Dims[1]×Dims[2] points starting at
// Origin with per-axis Spacing. Point i lives at lattice coordinate
// (i % nx, (i / nx) % ny, i / (nx·ny)), x varying fastest.
type Uniform struct {
	Dims      [3]int
	Origin    geom.Point
	Spacing   geom.Point
	PointData Fields
}

// MaxPoints bounds nx·ny·nz for any lattice.
const MaxPoints = 1 << 31

// NewUniform validates dims (each >= 1, product at most MaxPoints) and
// returns an empty-field lattice.
func NewUniform(dims [3]int, origin, spacing geom.Point) (*Uniform, error) {
	if err := checkDims(dims); err != nil {
		return nil, fmt.Errorf("NewUniform: %w", err)
	}
	return &Uniform{Dims: dims, Origin: origin, Spacing: spacing}, nil
}

func checkDims(dims [3]int) error {
	total := 1
	for axis, n := range dims {
		if n < 1 {
			return fmt.Errorf("dims[%d]=%d: %w", axis, n, ErrBadDims)
		}
		if total > MaxPoints/n {
			return fmt.Errorf("dims %v exceed %d points: %w", dims, MaxPoints, ErrBadDims)
		}
		total *= n
	}
	return nil
}

// NumPoints returns nx·ny·nz.
func (u *Uniform) NumPoints() int {
	return u.Dims[0] * u.Dims[1] * u.Dims[2]
}

// Validate checks dims and field lengths.
func (u *Uniform) Validate() error {
	if err := checkDims(u.Dims); err != nil {
		return fmt.Errorf("Uniform: %w", err)
	}
	return u.PointData.validate(u.NumPoints())
}

// Bounds returns the box spanned by the lattice.
func (u *Uniform) Bounds() geom.Bounds {
	axis := func(o, s float64, n int) geom.Range {
		end := o + s*float64(n-1)
		if end < o {
			return geom.Range{Min: end, Max: o}
		}
		return geom.Range{Min: o, Max: end}
	}
	return geom.Bounds{
		X: axis(u.Origin.X, u.Spacing.X, u.Dims[0]),
		Y: axis(u.Origin.Y, u.Spacing.Y, u.Dims[1]),
		Z: axis(u.Origin.Z, u.Spacing.Z, u.Dims[2]),
	}
}

// PointDims returns the native point resolution; always available.
func (u *Uniform) PointDims() ([3]int, bool) {
	return u.Dims, true
}

// Coordinates materializes every lattice point, x fastest.
// Complexity: O(nx·ny·nz).
func (u *Uniform) Coordinates() []geom.Point {
	out := make([]geom.Point, 0, u.NumPoints())
	for k := 0; k < u.Dims[2]; k++ {
		for j := 0; j < u.Dims[1]; j++ {
			for i := 0; i < u.Dims[0]; i++ {
				out = append(out, geom.Point{
					X: u.Origin.X + float64(i)*u.Spacing.X,
					Y: u.Origin.Y + float64(j)*u.Spacing.Y,
					Z: u.Origin.Z + float64(k)*u.Spacing.Z,
				})
			}
		}
	}
	return out
}

// ScalarField looks up a per-point scalar array.
func (u *Uniform) ScalarField(name string) ([]float64, bool) { return u.PointData.Scalar(name) }

// VectorField looks up a per-point vector array.
func (u *Uniform) VectorField(name string) ([]geom.Point, bool) { return u.PointData.Vector(name) }
