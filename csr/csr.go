// SPDX-License-Identifier: MIT
// Package: lvstream/csr
//
// csr.go — compressed-sparse-row polyline topology and the scan/filter
// primitives the filter and compaction stages are composed from.
//
// Contract:
//   • Lines.Offsets has length NumLines()+1; Offsets[NumLines()] == len(Connectivity).
//   • Line i is Connectivity[Offsets[i]:Offsets[i+1]], in traversal order.
//   • Every helper returns freshly allocated slices; inputs are never mutated.

package csr

import "fmt"

// Lines is a polyline cell set in CSR form.
//
// Offsets is sentinel-terminated: len(Offsets) == NumLines()+1 and
// Offsets[i+1] == Offsets[i] + Count(i). Connectivity indexes a coordinate
// buffer owned by the caller.
type Lines struct {
	Offsets      []int
	Connectivity []int
}

// Empty returns a topology with zero lines: Offsets = [0], Connectivity = [].
func Empty() Lines {
	return Lines{Offsets: []int{0}, Connectivity: []int{}}
}

// NumLines returns the number of polylines.
// Complexity: O(1).
func (l Lines) NumLines() int {
	if len(l.Offsets) == 0 {
		return 0
	}
	return len(l.Offsets) - 1
}

// Count returns the number of points in line i.
// Complexity: O(1).
func (l Lines) Count(i int) int {
	return l.Offsets[i+1] - l.Offsets[i]
}

// Line returns the connectivity slice of line i. The result aliases
// l.Connectivity and must be treated as read-only.
// Complexity: O(1).
func (l Lines) Line(i int) []int {
	return l.Connectivity[l.Offsets[i]:l.Offsets[i+1]]
}

// Counts returns the per-line point counts (adjacent differences of Offsets).
// Complexity: O(n).
func (l Lines) Counts() []int {
	n := l.NumLines()
	counts := make([]int, n)
	for i := 0; i < n; i++ {
		counts[i] = l.Offsets[i+1] - l.Offsets[i]
	}
	return counts
}

// Validate checks the CSR invariants of l and, when numPoints >= 0, that every
// connectivity entry is a valid index into a buffer of numPoints coordinates.
//
// Errors:
//   - ErrBadSentinel   — missing/incorrect sentinel or decreasing offsets.
//   - ErrOutOfRange    — connectivity entry outside [0, numPoints).
//
// Complexity: O(n + len(Connectivity)).
func (l Lines) Validate(numPoints int) error {
	if len(l.Offsets) == 0 {
		return fmt.Errorf("Validate: empty offsets (want at least the sentinel 0): %w", ErrBadSentinel)
	}
	if l.Offsets[0] != 0 {
		return fmt.Errorf("Validate: offsets[0]=%d, want 0: %w", l.Offsets[0], ErrBadSentinel)
	}
	for i := 1; i < len(l.Offsets); i++ {
		if l.Offsets[i] < l.Offsets[i-1] {
			return fmt.Errorf("Validate: offsets[%d]=%d < offsets[%d]=%d: %w",
				i, l.Offsets[i], i-1, l.Offsets[i-1], ErrBadSentinel)
		}
	}
	if last := l.Offsets[len(l.Offsets)-1]; last != len(l.Connectivity) {
		return fmt.Errorf("Validate: sentinel=%d, connectivity length=%d: %w",
			last, len(l.Connectivity), ErrBadSentinel)
	}
	if numPoints < 0 {
		return nil
	}
	return ValidateIndices(l.Connectivity, numPoints)
}

// ValidateIndices checks that every entry of idx lies in [0, numPoints).
// Complexity: O(len(idx)).
func ValidateIndices(idx []int, numPoints int) error {
	for k, v := range idx {
		if v < 0 || v >= numPoints {
			return fmt.Errorf("connectivity[%d]=%d outside [0,%d): %w", k, v, numPoints, ErrOutOfRange)
		}
	}
	return nil
}

// FromCounts builds a contiguous topology over connectivity from per-line
// counts. It is the shape the external advection stage produces: line i owns
// the next counts[i] entries of connectivity.
//
// Errors: ErrNegativeCount, ErrLengthMismatch (Σcounts != len(connectivity)),
// ErrBadSentinel when Σcounts overflows.
// Complexity: O(n).
func FromCounts(counts, connectivity []int) (Lines, error) {
	offsets, err := OffsetsFromCounts(counts)
	if err != nil {
		return Lines{}, err
	}
	if total := offsets[len(offsets)-1]; total != len(connectivity) {
		return Lines{}, fmt.Errorf("FromCounts: Σcounts=%d, connectivity length=%d: %w",
			total, len(connectivity), ErrLengthMismatch)
	}
	conn := make([]int, len(connectivity))
	copy(conn, connectivity)
	l := Lines{Offsets: offsets, Connectivity: conn}
	// Counts whose sum wraps around can still hit len(connectivity).
	if err := l.Validate(-1); err != nil {
		return Lines{}, fmt.Errorf("FromCounts: %w", err)
	}
	return l, nil
}
