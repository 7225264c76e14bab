// SPDX-License-Identifier: MIT
// Package: lvstream/csr
//
// scan.go — parallel-primitive vocabulary (scan, reduce, stable filter).
//
// These are written as plain loops: every consumer in lvstream calls them
// after a full barrier, on arrays whose length is the number of lines, so the
// sequential form is both the simplest and the cheapest.

package csr

import "fmt"

// ExclusiveScan returns out with out[i] = Σ in[0..i) and the grand total.
// An empty input yields an empty out and total 0. out has room for one more
// element, so appending the total as a sentinel does not reallocate.
// Complexity: O(n) time, O(n) space.
func ExclusiveScan(in []int) (out []int, total int) {
	out = make([]int, len(in), len(in)+1)
	for i, v := range in {
		out[i] = total
		total += v
	}
	return out, total
}

// OffsetsFromCounts returns the sentinel-terminated offsets for counts:
// len(result) == len(counts)+1 and result[len(counts)] == Σcounts.
//
// Errors: ErrNegativeCount.
// Complexity: O(n).
func OffsetsFromCounts(counts []int) ([]int, error) {
	for i, c := range counts {
		if c < 0 {
			return nil, fmt.Errorf("OffsetsFromCounts: count[%d]=%d: %w", i, c, ErrNegativeCount)
		}
	}
	offsets, total := ExclusiveScan(counts)
	return append(offsets, total), nil
}

// CountMask returns the number of true entries in mask.
// Complexity: O(n).
func CountMask(mask []bool) int {
	n := 0
	for _, keep := range mask {
		if keep {
			n++
		}
	}
	return n
}

// Select returns the elements of in whose mask entry is true, in their
// original order (stable filter). The result is always a new slice, non-nil
// even when nothing survives.
//
// Errors: ErrLengthMismatch when len(in) != len(mask).
// Complexity: O(n).
func Select[T any](in []T, mask []bool) ([]T, error) {
	if len(in) != len(mask) {
		return nil, fmt.Errorf("Select: %d values, %d mask entries: %w", len(in), len(mask), ErrLengthMismatch)
	}
	out := make([]T, 0, CountMask(mask))
	for i, keep := range mask {
		if keep {
			out = append(out, in[i])
		}
	}
	return out, nil
}

// Gather returns in[idx[0]], in[idx[1]], ... as a new slice.
//
// Errors: ErrOutOfRange for an index outside in.
// Complexity: O(len(idx)).
func Gather[T any](in []T, idx []int) ([]T, error) {
	out := make([]T, len(idx))
	for k, i := range idx {
		if i < 0 || i >= len(in) {
			return nil, fmt.Errorf("Gather: index[%d]=%d outside [0,%d): %w", k, i, len(in), ErrOutOfRange)
		}
		out[k] = in[i]
	}
	return out, nil
}
