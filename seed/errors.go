// SPDX-License-Identifier: MIT
// Package: lvstream/seed

package seed

import "errors"

var (
	// ErrConfiguration indicates a missing or inconsistent seeding parameter
	// for the selected strategy (bounds, count, point, dimensions, strategy).
	ErrConfiguration = errors.New("seed: invalid configuration")

	// ErrData indicates the source dataset lacks something the strategy needs:
	// a named field, a coordinate system, or a native point resolution.
	ErrData = errors.New("seed: source dataset is missing required data")
)
