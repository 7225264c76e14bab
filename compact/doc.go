// SPDX-License-Identifier: MIT

// Package compact rebuilds a smaller polyline topology after filtering.
//
// 🚀 What does it do?
//
//	Given a CSR topology (offsets, counts, connectivity), its coordinate
//	buffer and a keep-mask, Compact returns a new topology that contains only
//	the kept lines, laid out contiguously, and a new coordinate buffer that
//	contains only the points those lines reference, each exactly once.
//
// ✨ Guarantees:
//   - stable: surviving lines keep their relative order
//   - conservative: Σcount(kept) connectivity entries, Σmask lines
//   - no orphans: every output coordinate is referenced
//   - dedup by index identity, not by value
//   - idempotent: compacting a compacted result with an all-ones mask is a no-op
//   - owned outputs: nothing aliases the inputs
//
// ⚙️ Usage:
//
//	res, err := compact.CompactLines(lines, coords, mask)
//	// res.Lines, res.Coordinates, res.PointMap
//
// Performance:
//
//   - Time:   O(L + P log P), P = surviving connectivity length
//   - Memory: O(L + P)
package compact
