// SPDX-License-Identifier: MIT
// Package: lvstream/geom
//
// geom.go — point type and axis-aligned bounds shared by seeding, datasets
// and the filter pipeline.

// Package geom holds the small geometric vocabulary used across lvstream:
// a 3D point (an alias of gonum's r3.Vec so the r3 algebra applies directly),
// a closed interval per axis, and a per-axis bounding box.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point is a position in 3D space. It aliases r3.Vec, so r3.Add, r3.Sub,
// r3.Cross and r3.Norm operate on it without conversion.
type Point = r3.Vec

// Range is a closed interval [Min, Max] along one axis.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Length returns Max-Min, or 0 for an empty range.
func (r Range) Length() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Max - r.Min
}

// IsEmpty reports whether the range contains no value (Min > Max).
func (r Range) IsEmpty() bool {
	return r.Min > r.Max
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Include grows the range so that it contains v.
func (r Range) Include(v float64) Range {
	if r.IsEmpty() {
		return Range{Min: v, Max: v}
	}
	return Range{Min: math.Min(r.Min, v), Max: math.Max(r.Max, v)}
}

// emptyRange is the identity for Include.
var emptyRange = Range{Min: math.Inf(1), Max: math.Inf(-1)}

// Bounds is an axis-aligned box described per axis.
type Bounds struct {
	X Range `yaml:"x"`
	Y Range `yaml:"y"`
	Z Range `yaml:"z"`
}

// EmptyBounds returns bounds that contain nothing; Include on it yields a
// degenerate box around the first point.
func EmptyBounds() Bounds {
	return Bounds{X: emptyRange, Y: emptyRange, Z: emptyRange}
}

// Contains reports whether p lies inside the box (boundaries included).
func (b Bounds) Contains(p Point) bool {
	return b.X.Contains(p.X) && b.Y.Contains(p.Y) && b.Z.Contains(p.Z)
}

// Include grows the box so that it contains p.
func (b Bounds) Include(p Point) Bounds {
	return Bounds{X: b.X.Include(p.X), Y: b.Y.Include(p.Y), Z: b.Z.Include(p.Z)}
}

// Axis returns the range for axis 0 (X), 1 (Y) or 2 (Z).
// Complexity: O(1).
func (b Bounds) Axis(i int) Range {
	switch i {
	case 0:
		return b.X
	case 1:
		return b.Y
	default:
		return b.Z
	}
}

// BoundsOf returns the tight bounds of pts. An empty input yields EmptyBounds.
// Complexity: O(n).
func BoundsOf(pts []Point) Bounds {
	b := EmptyBounds()
	for _, p := range pts {
		b = b.Include(p)
	}
	return b
}
