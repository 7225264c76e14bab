// SPDX-License-Identifier: MIT

package linefilter_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstream/csr"
	"github.com/katalvlaran/lvstream/geom"
	"github.com/katalvlaran/lvstream/linefilter"
)

// fixture returns four lines over a shared coordinate buffer:
//
//	0: right-angle corner (max=√2, sum=√2)
//	1: straight segment   (0, 0)
//	2: two points         (0, 0)
//	3: two right angles   (max=√2, sum=2√2)
func fixture(t *testing.T) (csr.Lines, []geom.Point) {
	t.Helper()
	coords := []geom.Point{
		{}, {X: 1}, {X: 1, Y: 1}, // 0..2 corner
		{X: 2}, {X: 3}, {X: 4}, // 3..5 straight
		{X: 0, Y: 1}, // 6
	}
	lines, err := csr.FromCounts(
		[]int{3, 3, 2, 4},
		[]int{0, 1, 2, 3, 4, 5, 0, 1, 0, 1, 2, 6},
	)
	require.NoError(t, err)
	return lines, coords
}

// TestFilter_Features checks per-line max and sum values.
func TestFilter_Features(t *testing.T) {
	lines, coords := fixture(t)

	res, err := linefilter.Filter(context.Background(), lines, coords, linefilter.Options{Feature: linefilter.MaxCurvature})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{math.Sqrt2, 0, 0, math.Sqrt2}, res.Features, 1e-12)
	assert.Equal(t, []bool{true, false, false, true}, res.Mask)
	assert.Equal(t, 2, res.Kept)

	res, err = linefilter.Filter(context.Background(), lines, coords, linefilter.Options{Feature: linefilter.SumCurvature, Threshold: 2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{math.Sqrt2, 0, 0, 2 * math.Sqrt2}, res.Features, 1e-12)
	assert.Equal(t, []bool{false, false, false, true}, res.Mask)
}

// TestFilter_StrictThreshold: a feature exactly equal to the threshold is discarded.
func TestFilter_StrictThreshold(t *testing.T) {
	lines, coords := fixture(t)
	first, err := linefilter.Filter(context.Background(), lines, coords, linefilter.DefaultOptions())
	require.NoError(t, err)

	for _, thr := range append([]float64{-1, 0, 1e9}, first.Features...) {
		res, err := linefilter.Filter(context.Background(), lines, coords, linefilter.Options{Threshold: thr})
		require.NoError(t, err)
		for i, f := range res.Features {
			assert.Equal(t, f > thr, res.Mask[i], "line %d threshold %v", i, thr)
		}
	}
}

// TestFilter_WorkersAgree: the mask must not depend on the degree of parallelism.
func TestFilter_WorkersAgree(t *testing.T) {
	lines, coords := randomLines(t, 500, 20)
	base, err := linefilter.Filter(context.Background(), lines, coords, linefilter.Options{Workers: 1, Threshold: 0.5})
	require.NoError(t, err)
	for _, w := range []int{2, 3, 16, 0} {
		res, err := linefilter.Filter(context.Background(), lines, coords, linefilter.Options{Workers: w, Threshold: 0.5})
		require.NoError(t, err)
		assert.Equal(t, base, res, "workers=%d", w)
	}
}

// TestFilter_Empty: zero lines is valid input.
func TestFilter_Empty(t *testing.T) {
	res, err := linefilter.Filter(context.Background(), csr.Empty(), nil, linefilter.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, res.Mask)
	assert.Empty(t, res.Features)
	assert.Equal(t, 0, res.Kept)
}

// TestFilter_Errors covers option and topology validation and cancellation.
func TestFilter_Errors(t *testing.T) {
	lines, coords := fixture(t)
	ctx := context.Background()

	_, err := linefilter.Filter(ctx, lines, coords, linefilter.Options{Feature: linefilter.Feature(7)})
	assert.ErrorIs(t, err, linefilter.ErrUnknownFeature)

	_, err = linefilter.Filter(ctx, lines, coords, linefilter.Options{Workers: -1})
	assert.ErrorIs(t, err, linefilter.ErrBadWorkers)

	_, err = linefilter.Filter(ctx, lines, coords[:3], linefilter.DefaultOptions())
	assert.ErrorIs(t, err, csr.ErrOutOfRange)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = linefilter.Filter(cancelled, lines, coords, linefilter.DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestParseFeature round-trips the textual forms used in configuration.
func TestParseFeature(t *testing.T) {
	f, err := linefilter.ParseFeature(" SUM ")
	require.NoError(t, err)
	assert.Equal(t, linefilter.SumCurvature, f)

	var g linefilter.Feature
	require.NoError(t, g.UnmarshalText([]byte("max")))
	assert.Equal(t, linefilter.MaxCurvature, g)

	b, err := linefilter.SumCurvature.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "sum", string(b))

	_, err = linefilter.ParseFeature("entropy")
	assert.ErrorIs(t, err, linefilter.ErrUnknownFeature)
}
