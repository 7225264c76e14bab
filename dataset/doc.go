// SPDX-License-Identifier: MIT

// Package dataset provides the two dataset shapes the pipeline consumes:
// Uniform (a regular lattice described by dims, origin and spacing) and
// PolyData (explicit points with optional CSR polylines). Both carry named
// per-point Fields and both can act as a seeding source.
//
// PolyData.Compact applies a line keep-mask and carries every point field
// through the compaction point map.
package dataset
