// SPDX-License-Identifier: MIT
// Package: lvstream/dataset

package dataset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvstream/geom"
)

// SpeedOfLight in m/s.
const SpeedOfLight = 2.99792458e8

// CFLStepLength returns the largest stable time step for a signal moving at
// the speed of light across a grid with the given per-axis spacing:
//
//	dt = 1 / (c · sqrt(1/dx² + 1/dy² + 1/dz²))
//
// Every spacing component must be positive.
func CFLStepLength(spacing geom.Point) (float64, error) {
	if !(spacing.X > 0 && spacing.Y > 0 && spacing.Z > 0) {
		return 0, fmt.Errorf("CFLStepLength: spacing %v: %w", spacing, ErrBadSpacing)
	}
	inv := 1/(spacing.X*spacing.X) + 1/(spacing.Y*spacing.Y) + 1/(spacing.Z*spacing.Z)
	return 1 / (SpeedOfLight * math.Sqrt(inv)), nil
}

// StepLength is CFLStepLength applied to the lattice spacing.
func (u *Uniform) StepLength() (float64, error) {
	return CFLStepLength(u.Spacing)
}
