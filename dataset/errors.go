// SPDX-License-Identifier: MIT
// Package: lvstream/dataset

package dataset

import "errors"

var (
	// ErrBadDims indicates a lattice dimension below one or too many points.
	ErrBadDims = errors.New("dataset: lattice dimension must be >= 1")

	// ErrFieldLength indicates a point-data array whose length differs from
	// the number of points.
	ErrFieldLength = errors.New("dataset: field length does not match point count")

	// ErrBadSpacing indicates a non-positive grid spacing where a step length
	// is derived from it.
	ErrBadSpacing = errors.New("dataset: spacing must be positive on every axis")
)
