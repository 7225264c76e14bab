// SPDX-License-Identifier: MIT
// Package: lvstream/compact
//
// compact.go — stream compaction of a polyline topology and its coordinates.
//
// Algorithm (two dependent stages, full barrier between them):
//   1. Line compaction: stable-select the (offset, count) pairs whose mask is
//      set, exclusive-scan the surviving counts into new offsets, and copy each
//      surviving connectivity slice to its new offset.
//   2. Coordinate compaction: sort a copy of the new connectivity, drop
//      duplicates, gather those coordinates, and remap every connectivity entry
//      to its lower-bound position in the sorted-unique list.
//
// Guarantees:
//   • Survivors keep their relative order.
//   • Every output coordinate is referenced; no index appears twice in the
//     point map. Deduplication is by original index, never by value.
//   • Outputs are freshly allocated; inputs are never written or aliased.
//
// Complexity: O(L + P log P) where L is the number of lines and P the total
// surviving connectivity length.

package compact

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/lvstream/csr"
	"github.com/katalvlaran/lvstream/geom"
)

// methodCompact prefixes wrapped errors.
const methodCompact = "Compact"

// Result is a compacted topology over its own coordinate buffer.
//
// PointMap[k] is the original coordinate index that became output index k;
// it is sorted ascending and free of duplicates. Use it to carry per-point
// attributes through compaction.
type Result struct {
	Lines       csr.Lines
	Coordinates []geom.Point
	PointMap    []int
}

// Compact keeps the lines whose mask entry is true and rebuilds a contiguous,
// renumbered topology over only the coordinates those lines reference.
//
// Inputs:
//   - offsets: start of each line in connectivity; length numLines, or
//     numLines+1 when it carries a trailing sentinel (ignored).
//   - counts: points per line, length numLines, each >= 0.
//   - connectivity: flat indices into coords.
//   - coords: the shared coordinate buffer.
//   - mask: keep flags, length numLines.
//
// Errors:
//   - csr.ErrLengthMismatch — offsets/counts/mask disagree on numLines.
//   - csr.ErrNegativeCount  — a negative count.
//   - csr.ErrOutOfRange     — a line reaching outside connectivity, or a
//     surviving connectivity entry outside coords.
//
// Zero surviving lines yield Offsets=[0] and empty (non-nil) slices.
func Compact(offsets, counts, connectivity []int, coords []geom.Point, mask []bool) (Result, error) {
	n := len(counts)
	if len(offsets) != n && len(offsets) != n+1 {
		return Result{}, fmt.Errorf("%s: %d offsets for %d counts: %w", methodCompact, len(offsets), n, csr.ErrLengthMismatch)
	}
	if len(mask) != n {
		return Result{}, fmt.Errorf("%s: %d mask entries for %d lines: %w", methodCompact, len(mask), n, csr.ErrLengthMismatch)
	}
	for i := 0; i < n; i++ {
		if counts[i] < 0 {
			return Result{}, fmt.Errorf("%s: count[%d]=%d: %w", methodCompact, i, counts[i], csr.ErrNegativeCount)
		}
		if offsets[i] < 0 || offsets[i] > len(connectivity) || counts[i] > len(connectivity)-offsets[i] {
			return Result{}, fmt.Errorf("%s: line %d has %d points at offset %d of %d: %w",
				methodCompact, i, counts[i], offsets[i], len(connectivity), csr.ErrOutOfRange)
		}
	}

	lines, err := compactLines(offsets[:n], counts, connectivity, mask)
	if err != nil {
		return Result{}, err
	}
	if err := csr.ValidateIndices(lines.Connectivity, len(coords)); err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodCompact, err)
	}
	return compactPoints(lines, coords), nil
}

// CompactLines is Compact for a sentinel-terminated csr.Lines.
func CompactLines(lines csr.Lines, coords []geom.Point, mask []bool) (Result, error) {
	if err := lines.Validate(-1); err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodCompact, err)
	}
	return Compact(lines.Offsets, lines.Counts(), lines.Connectivity, coords, mask)
}

// compactLines is stage 1. The connectivity of the result still indexes the
// original coordinate buffer.
func compactLines(offsets, counts, connectivity []int, mask []bool) (csr.Lines, error) {
	keptOffsets, err := csr.Select(offsets, mask)
	if err != nil {
		return csr.Lines{}, fmt.Errorf("%s: %w", methodCompact, err)
	}
	keptCounts, err := csr.Select(counts, mask)
	if err != nil {
		return csr.Lines{}, fmt.Errorf("%s: %w", methodCompact, err)
	}

	newOffsets, err := csr.OffsetsFromCounts(keptCounts)
	if err != nil {
		return csr.Lines{}, fmt.Errorf("%s: %w", methodCompact, err)
	}
	total := newOffsets[len(keptCounts)]

	conn := make([]int, total)
	for k, src := range keptOffsets {
		copy(conn[newOffsets[k]:newOffsets[k+1]], connectivity[src:src+keptCounts[k]])
	}
	return csr.Lines{Offsets: newOffsets, Connectivity: conn}, nil
}

// compactPoints is stage 2: sorted-unique gather plus lower-bound remap.
// The remap is derived from the same sorted-unique slice used for the
// gather, so connectivity and coordinates stay consistent.
func compactPoints(lines csr.Lines, coords []geom.Point) Result {
	pointMap := slices.Clone(lines.Connectivity)
	slices.Sort(pointMap)
	pointMap = slices.Compact(pointMap)
	pointMap = slices.Clip(pointMap)

	out := make([]geom.Point, len(pointMap))
	for k, src := range pointMap {
		out[k] = coords[src]
	}

	for k, src := range lines.Connectivity {
		lines.Connectivity[k] = sort.SearchInts(pointMap, src)
	}
	return Result{Lines: lines, Coordinates: out, PointMap: pointMap}
}
