// SPDX-License-Identifier: MIT
// Package: lvstream/dataset
//
// polydata.go — explicit points plus polyline topology.

package dataset

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvstream/compact"
	"github.com/katalvlaran/lvstream/csr"
	"github.com/katalvlaran/lvstream/geom"
)

// PolyData is an explicit point buffer with optional polyline cells and
// per-point attributes. A PolyData with no lines is a plain point cloud.
type PolyData struct {
	Points    []geom.Point
	Lines     csr.Lines
	PointData Fields
}

// Validate checks the line topology against the point buffer and every field
// length against len(Points). A nil Offsets slice means "no lines".
func (pd *PolyData) Validate() error {
	if len(pd.Lines.Offsets) > 0 {
		if err := pd.Lines.Validate(len(pd.Points)); err != nil {
			return fmt.Errorf("PolyData: %w", err)
		}
	}
	if err := pd.PointData.validate(len(pd.Points)); err != nil {
		return fmt.Errorf("PolyData: %w", err)
	}
	return nil
}

// Bounds returns the box around all points.
func (pd *PolyData) Bounds() geom.Bounds { return geom.BoundsOf(pd.Points) }

// PointDims reports that explicit point sets carry no structured resolution.
func (pd *PolyData) PointDims() ([3]int, bool) { return [3]int{}, false }

// Coordinates returns the point buffer itself (shared, read-only).
func (pd *PolyData) Coordinates() []geom.Point { return pd.Points }

// ScalarField looks up a per-point scalar array.
func (pd *PolyData) ScalarField(name string) ([]float64, bool) { return pd.PointData.Scalar(name) }

// VectorField looks up a per-point vector array.
func (pd *PolyData) VectorField(name string) ([]geom.Point, bool) { return pd.PointData.Vector(name) }

// Compact keeps the lines selected by mask and returns a new PolyData holding
// only the points they reference. Point fields are carried through the
// compaction point map, so attribute j of the result belongs to output point j.
// The receiver is not modified.
//
// Complexity: O(L + P log P + P·F), F = number of point fields.
func (pd *PolyData) Compact(mask []bool) (*PolyData, compact.Result, error) {
	lines := pd.Lines
	if len(lines.Offsets) == 0 {
		lines = csr.Empty()
	}
	res, err := compact.CompactLines(lines, pd.Points, mask)
	if err != nil {
		return nil, compact.Result{}, err
	}
	fields, err := pd.PointData.Gather(res.PointMap)
	if err != nil {
		return nil, compact.Result{}, fmt.Errorf("Compact: %w", err)
	}
	out := &PolyData{
		Points:    res.Coordinates,
		Lines:     res.Lines,
		PointData: fields,
	}
	return out, res, nil
}

// Clone returns a deep copy.
func (pd *PolyData) Clone() *PolyData {
	out := &PolyData{
		Points: slices.Clone(pd.Points),
		Lines: csr.Lines{
			Offsets:      slices.Clone(pd.Lines.Offsets),
			Connectivity: slices.Clone(pd.Lines.Connectivity),
		},
	}
	for _, name := range pd.PointData.ScalarNames() {
		v, _ := pd.PointData.Scalar(name)
		out.PointData.SetScalar(name, v)
	}
	for _, name := range pd.PointData.VectorNames() {
		v, _ := pd.PointData.Vector(name)
		out.PointData.SetVector(name, v)
	}
	return out
}
