// SPDX-License-Identifier: MIT
// Package: lvstream/csr
//
// errors.go — sentinel errors for malformed topology inputs.
//
// Error policy:
//   • Only sentinels are exported; callers branch with errors.Is.
//   • Context (line index, offending value) is attached with %w at the call site.

package csr

import "errors"

var (
	// ErrLengthMismatch indicates parallel arrays (offsets, counts, mask) that
	// do not describe the same number of lines.
	ErrLengthMismatch = errors.New("csr: array lengths do not match")

	// ErrNegativeCount indicates a line with a negative point count.
	ErrNegativeCount = errors.New("csr: negative point count")

	// ErrOutOfRange indicates an offset/count pair reaching outside the
	// connectivity array, or a connectivity entry outside the coordinate buffer.
	ErrOutOfRange = errors.New("csr: index out of range")

	// ErrBadSentinel indicates a sentinel-terminated offsets array whose last
	// value does not equal the connectivity length, or which is not monotone.
	ErrBadSentinel = errors.New("csr: offsets are not sentinel-terminated")
)
