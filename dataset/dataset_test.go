// SPDX-License-Identifier: MIT

package dataset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstream/csr"
	"github.com/katalvlaran/lvstream/dataset"
	"github.com/katalvlaran/lvstream/geom"
)

func TestUniform_Coordinates(t *testing.T) {
	u, err := dataset.NewUniform([3]int{2, 3, 1}, geom.Point{X: 1, Y: 2}, geom.Point{X: 0.5, Y: 1, Z: 1})
	require.NoError(t, err)
	assert.Equal(t, 6, u.NumPoints())

	got := u.Coordinates()
	want := []geom.Point{
		{X: 1, Y: 2}, {X: 1.5, Y: 2},
		{X: 1, Y: 3}, {X: 1.5, Y: 3},
		{X: 1, Y: 4}, {X: 1.5, Y: 4},
	}
	assert.Equal(t, want, got)

	b := u.Bounds()
	assert.Equal(t, geom.Range{Min: 1, Max: 1.5}, b.X)
	assert.Equal(t, geom.Range{Min: 2, Max: 4}, b.Y)
	assert.Equal(t, geom.Range{Min: 0, Max: 0}, b.Z)

	dims, ok := u.PointDims()
	assert.True(t, ok)
	assert.Equal(t, [3]int{2, 3, 1}, dims)
}

func TestNewUniform_BadDims(t *testing.T) {
	_, err := dataset.NewUniform([3]int{2, 0, 1}, geom.Point{}, geom.Point{X: 1, Y: 1, Z: 1})
	assert.ErrorIs(t, err, dataset.ErrBadDims)

	_, err = dataset.NewUniform([3]int{1 << 31, 1 << 31, 3}, geom.Point{}, geom.Point{X: 1, Y: 1, Z: 1})
	assert.ErrorIs(t, err, dataset.ErrBadDims, "product overflows")

	_, err = dataset.NewUniform([3]int{dataset.MaxPoints, 1, 1}, geom.Point{}, geom.Point{X: 1, Y: 1, Z: 1})
	assert.NoError(t, err, "exactly MaxPoints")

	u := &dataset.Uniform{Dims: [3]int{1 << 20, 1 << 20, 1}}
	assert.ErrorIs(t, u.Validate(), dataset.ErrBadDims)
}

func TestFields_Validate(t *testing.T) {
	u, err := dataset.NewUniform([3]int{2, 2, 1}, geom.Point{}, geom.Point{X: 1, Y: 1, Z: 1})
	require.NoError(t, err)
	u.PointData.SetScalar("mass", []float64{1, 2, 3, 4})
	require.NoError(t, u.Validate())

	u.PointData.SetVector("ux", []geom.Point{{X: 1}})
	assert.ErrorIs(t, u.Validate(), dataset.ErrFieldLength)

	v, ok := u.ScalarField("mass")
	assert.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3, 4}, v)
	_, ok = u.VectorField("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"mass"}, u.PointData.ScalarNames())
	assert.Equal(t, []string{"ux"}, u.PointData.VectorNames())
	assert.Equal(t, 2, u.PointData.Len())
}

func TestFields_SetCopies(t *testing.T) {
	var f dataset.Fields
	src := []float64{1, 2}
	f.SetScalar("a", src)
	src[0] = 99
	got, _ := f.Scalar("a")
	assert.Equal(t, []float64{1, 2}, got)
}

func TestPolyData_Compact(t *testing.T) {
	pd := &dataset.PolyData{
		Points: []geom.Point{{X: 0}, {X: 1}, {X: 2}, {X: 3}, {X: 4}, {X: 5}, {X: 6}},
	}
	var err error
	pd.Lines, err = csr.FromCounts([]int{3, 2, 3}, []int{0, 1, 2, 3, 4, 2, 5, 6})
	require.NoError(t, err)
	pd.PointData.SetScalar("id", []float64{0, 1, 2, 3, 4, 5, 6})
	pd.PointData.SetVector("pos", pd.Points)
	require.NoError(t, pd.Validate())

	out, res, err := pd.Compact([]bool{true, false, true})
	require.NoError(t, err)
	require.NoError(t, out.Validate())

	assert.Equal(t, []int{0, 1, 2, 5, 6}, res.PointMap)
	assert.Equal(t, []int{0, 3, 6}, out.Lines.Offsets)
	ids, ok := out.PointData.Scalar("id")
	require.True(t, ok)
	assert.Equal(t, []float64{0, 1, 2, 5, 6}, ids)

	// The "pos" field travels with its point.
	pos, ok := out.PointData.Vector("pos")
	require.True(t, ok)
	assert.Equal(t, out.Points, pos)

	// Receiver untouched.
	assert.Len(t, pd.Points, 7)
	assert.Equal(t, 3, pd.Lines.NumLines())
}

func TestPolyData_NoLines(t *testing.T) {
	pd := &dataset.PolyData{Points: []geom.Point{{X: 1}, {X: 2}}}
	require.NoError(t, pd.Validate())
	_, ok := pd.PointDims()
	assert.False(t, ok)
	assert.Equal(t, geom.Range{Min: 1, Max: 2}, pd.Bounds().X)

	out, _, err := pd.Compact([]bool{})
	require.NoError(t, err)
	assert.Empty(t, out.Points)
	assert.Equal(t, []int{0}, out.Lines.Offsets)
}

func TestPolyData_Clone(t *testing.T) {
	pd := &dataset.PolyData{Points: []geom.Point{{X: 1}}, Lines: csr.Empty()}
	pd.PointData.SetScalar("w", []float64{3})
	c := pd.Clone()
	c.Points[0].X = 7
	assert.Equal(t, 1.0, pd.Points[0].X)
	w, _ := c.PointData.Scalar("w")
	assert.Equal(t, []float64{3}, w)
}

func TestCFLStepLength(t *testing.T) {
	dt, err := dataset.CFLStepLength(geom.Point{X: 1, Y: 1, Z: 1})
	require.NoError(t, err)
	assert.InDelta(t, 1/(dataset.SpeedOfLight*math.Sqrt(3)), dt, 1e-24)

	dt, err = dataset.CFLStepLength(geom.Point{X: 1, Y: 2, Z: 2})
	require.NoError(t, err)
	// 1/1 + 1/4 + 1/4 = 1.5
	assert.InDelta(t, 1/(dataset.SpeedOfLight*math.Sqrt(1.5)), dt, 1e-24)

	_, err = dataset.CFLStepLength(geom.Point{X: 1, Y: 0, Z: 1})
	assert.ErrorIs(t, err, dataset.ErrBadSpacing)
}
