// SPDX-License-Identifier: MIT

// Package vtkio reads and writes the legacy ASCII VTK format for the two
// dataset shapes lvstream handles: STRUCTURED_POINTS (dataset.Uniform) and
// POLYDATA (dataset.PolyData).
//
// Only what the pipeline needs is supported: points, polyline cells, and
// per-point SCALARS/VECTORS/FIELD arrays. Binary files, cell data and other
// cell types fail with ErrFormat.
package vtkio
