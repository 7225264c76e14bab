// SPDX-License-Identifier: MIT
// Package: lvstream/curvature
//
// curvature.go — discrete (Menger) curvature of polylines.

// Package curvature estimates how sharply a polyline bends.
//
// For every window of three consecutive points (a, b, c) it computes the
// Menger curvature
//
//	k = 2·|(b-a) × (c-a)| / (|a-b|·|b-c|·|c-a|)
//
// which is the reciprocal of the circumradius of the triangle abc. The
// estimate of a line is the maximum and the sum of k over all windows.
//
// Degeneracy policy: when two points of a window coincide the expression is
// 0/0; such windows contribute a curvature of exactly 0. Lines with fewer
// than three points have no windows and report (0, 0).
//
// All functions are pure and safe for concurrent use.
package curvature

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvstream/geom"
)

// Menger returns the discrete curvature of the triangle (a, b, c).
// Collinear points give 0; coincident points give 0 rather than NaN.
// Complexity: O(1).
func Menger(a, b, c geom.Point) float64 {
	den := r3.Norm(r3.Sub(a, b)) * r3.Norm(r3.Sub(b, c)) * r3.Norm(r3.Sub(c, a))
	if den == 0 {
		return 0
	}
	k := 2 * r3.Norm(r3.Cross(r3.Sub(b, a), r3.Sub(c, a))) / den
	if math.IsNaN(k) {
		return 0
	}
	return k
}

// Estimate returns the maximum and summed Menger curvature over all windows
// of three consecutive points. Fewer than three points yield (0, 0).
// Complexity: O(len(pts)).
func Estimate(pts []geom.Point) (maxK, sumK float64) {
	for i := 0; i+2 < len(pts); i++ {
		k := Menger(pts[i], pts[i+1], pts[i+2])
		sumK += k
		if k > maxK {
			maxK = k
		}
	}
	return maxK, sumK
}

// EstimateLine is Estimate over the points coords[line[0]], coords[line[1]], ...
// without materializing the gathered polyline. Indices must be valid.
// Complexity: O(len(line)).
func EstimateLine(coords []geom.Point, line []int) (maxK, sumK float64) {
	for i := 0; i+2 < len(line); i++ {
		k := Menger(coords[line[i]], coords[line[i+1]], coords[line[i+2]])
		sumK += k
		if k > maxK {
			maxK = k
		}
	}
	return maxK, sumK
}
