// SPDX-License-Identifier: MIT

package seed_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstream/dataset"
	"github.com/katalvlaran/lvstream/geom"
	"github.com/katalvlaran/lvstream/seed"
)

func box(lo, hi float64) seed.AxisBounds {
	return seed.AxisBounds{
		X: &geom.Range{Min: lo, Max: hi},
		Y: &geom.Range{Min: lo, Max: hi},
		Z: &geom.Range{Min: lo, Max: hi},
	}
}

func positions(ps []seed.Particle) []geom.Point {
	out := make([]geom.Point, len(ps))
	for i, p := range ps {
		out[i] = p.Pos
	}
	return out
}

func assertDenseIDs(t *testing.T, ps []seed.Particle) {
	t.Helper()
	for i, p := range ps {
		assert.Equal(t, i, p.ID, "particle %d", i)
	}
}

// TestGenerate_UniformCorners places a 2×2×2 lattice on the corners of a box.
func TestGenerate_UniformCorners(t *testing.T) {
	cfg := seed.Config{Strategy: seed.Uniform, Dimensions: [3]int{2, 2, 2}, Bounds: box(0, 10)}
	ps, err := seed.Generate(cfg, nil)
	require.NoError(t, err)
	require.Len(t, ps, 8)
	assertDenseIDs(t, ps)

	want := []geom.Point{
		{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0},
		{X: 0, Y: 10, Z: 0}, {X: 10, Y: 10, Z: 0},
		{X: 0, Y: 0, Z: 10}, {X: 10, Y: 0, Z: 10},
		{X: 0, Y: 10, Z: 10}, {X: 10, Y: 10, Z: 10},
	}
	assert.Equal(t, want, positions(ps))
}

func TestGenerate_UniformNativeResolution(t *testing.T) {
	u, err := dataset.NewUniform([3]int{3, 2, 1}, geom.Point{X: 1, Y: 1, Z: 1}, geom.Point{X: 0.5, Y: 1, Z: 1})
	require.NoError(t, err)

	ps, err := seed.Generate(seed.DefaultConfig(), u)
	require.NoError(t, err)
	assertDenseIDs(t, ps)
	assert.Equal(t, u.Coordinates(), positions(ps))
}

func TestGenerate_UniformSingleSampleAxis(t *testing.T) {
	cfg := seed.Config{
		Strategy:   seed.Uniform,
		Dimensions: [3]int{1, 1, 1},
		Bounds: seed.AxisBounds{
			X: &geom.Range{Min: 2, Max: 5},
			Y: &geom.Range{Min: -3, Max: 3},
			Z: &geom.Range{Min: 7, Max: 7},
		},
	}
	ps, err := seed.Generate(cfg, nil)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, geom.Point{X: 2, Y: -3, Z: 7}, ps[0].Pos)
}

func TestGenerate_UniformPartialOverride(t *testing.T) {
	u, err := dataset.NewUniform([3]int{2, 2, 1}, geom.Point{X: 0, Y: 1, Z: 1}, geom.Point{X: 1, Y: 1, Z: 1})
	require.NoError(t, err)
	cfg := seed.Config{
		Strategy:   seed.Uniform,
		Dimensions: [3]int{2, 1, 1},
		Bounds:     seed.AxisBounds{X: &geom.Range{Min: 5, Max: 6}},
	}
	ps, err := seed.Generate(cfg, u)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{X: 5, Y: 1, Z: 1}, {X: 6, Y: 1, Z: 1}}, positions(ps))
}

func TestGenerate_UniformErrors(t *testing.T) {
	cloud := &dataset.PolyData{Points: []geom.Point{{X: 1}, {X: 2}}}

	_, err := seed.Generate(seed.DefaultConfig(), cloud)
	assert.ErrorIs(t, err, seed.ErrData, "point cloud has no native resolution")

	_, err = seed.Generate(seed.DefaultConfig(), nil)
	assert.ErrorIs(t, err, seed.ErrData, "native resolution without a source")

	cfg := seed.Config{Strategy: seed.Uniform, Dimensions: [3]int{2, 2, 2}}
	_, err = seed.Generate(cfg, nil)
	assert.ErrorIs(t, err, seed.ErrConfiguration, "bounds without a source")

	_, err = seed.Generate(cfg, &dataset.PolyData{})
	assert.ErrorIs(t, err, seed.ErrData, "empty source bounds")
}

func TestGenerate_Random(t *testing.T) {
	cfg := seed.Config{
		Strategy: seed.Random,
		Count:    100,
		Bounds: seed.AxisBounds{
			X: &geom.Range{Min: 0, Max: 1},
			Y: &geom.Range{Min: -1, Max: 1},
			Z: &geom.Range{Min: 5, Max: 6},
		},
	}
	ps, err := seed.Generate(cfg, nil)
	require.NoError(t, err)
	require.Len(t, ps, 100)
	assertDenseIDs(t, ps)
	for _, p := range ps {
		assert.True(t, p.Pos.X >= 0 && p.Pos.X < 1)
		assert.True(t, p.Pos.Y >= -1 && p.Pos.Y < 1)
		assert.True(t, p.Pos.Z >= 5 && p.Pos.Z < 6)
	}

	again, err := seed.Generate(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, ps, again, "same config, same particles")

	cfg.RandomSeed = seed.DefaultRandomSeed
	explicit, err := seed.Generate(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, ps, explicit, "zero seed means the default seed")

	viaOption, err := seed.Generate(cfg, nil, seed.WithSeed(seed.DefaultRandomSeed))
	require.NoError(t, err)
	assert.Equal(t, ps, viaOption)

	other, err := seed.Generate(cfg, nil, seed.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	assert.NotEqual(t, ps, other)
}

func TestGenerate_RandomInheritsBounds(t *testing.T) {
	u, err := dataset.NewUniform([3]int{2, 2, 2}, geom.Point{X: 10, Y: 20, Z: 30}, geom.Point{X: 1, Y: 1, Z: 1})
	require.NoError(t, err)
	cfg := seed.Config{Strategy: seed.Random, Count: 50}
	ps, err := seed.Generate(cfg, u)
	require.NoError(t, err)
	b := u.Bounds()
	for _, p := range ps {
		assert.True(t, b.Contains(p.Pos), "%v outside %v", p.Pos, b)
	}
}

func TestGenerate_SingleAndCopies(t *testing.T) {
	pt := geom.Point{X: 1, Y: 2, Z: 3}

	ps, err := seed.Generate(seed.Config{Strategy: seed.Single, Point: &pt}, nil)
	require.NoError(t, err)
	assert.Equal(t, []seed.Particle{{ID: 0, Pos: pt}}, ps)

	ps, err = seed.Generate(seed.Config{Strategy: seed.SingleCopies, Point: &pt, Count: 4}, nil)
	require.NoError(t, err)
	require.Len(t, ps, 4)
	assertDenseIDs(t, ps)
	for _, p := range ps {
		assert.Equal(t, pt, p.Pos)
	}
}

func TestGenerate_FromCoordinates(t *testing.T) {
	cloud := &dataset.PolyData{Points: []geom.Point{{X: 3}, {Y: 4}, {Z: 5}}}
	ps, err := seed.Generate(seed.Config{Strategy: seed.FromCoordinates}, cloud)
	require.NoError(t, err)
	assertDenseIDs(t, ps)
	assert.Equal(t, cloud.Points, positions(ps))

	_, err = seed.Generate(seed.Config{Strategy: seed.FromCoordinates}, nil)
	assert.ErrorIs(t, err, seed.ErrData)
}

func TestGenerate_Subsample(t *testing.T) {
	pt := geom.Point{X: 1}
	cfg := seed.Config{Strategy: seed.SingleCopies, Point: &pt, Count: 3, Subsample: 5}
	ps, err := seed.Generate(cfg, nil)
	require.NoError(t, err)
	require.Len(t, ps, 5)
	assertDenseIDs(t, ps)
}

func TestConfig_Validate(t *testing.T) {
	pt := geom.Point{}
	cases := []struct {
		name string
		cfg  seed.Config
	}{
		{"unset strategy", seed.Config{}},
		{"unknown strategy", seed.Config{Strategy: seed.Strategy(99)}},
		{"negative count", seed.Config{Strategy: seed.Random, Count: -1}},
		{"random without count", seed.Config{Strategy: seed.Random}},
		{"single without point", seed.Config{Strategy: seed.Single}},
		{"copies without point", seed.Config{Strategy: seed.SingleCopies, Count: 2}},
		{"copies without count", seed.Config{Strategy: seed.SingleCopies, Point: &pt}},
		{"zero dimension", seed.Config{Strategy: seed.Uniform, Dimensions: [3]int{2, 0, 2}}},
		{"negative subsample", seed.Config{Strategy: seed.Single, Point: &pt, Subsample: -1}},
		{"empty bounds", seed.Config{Strategy: seed.Random, Count: 1, Bounds: seed.AxisBounds{Y: &geom.Range{Min: 1, Max: 0}}}},
		{"lattice overflow", seed.Config{Strategy: seed.Uniform, Dimensions: [3]int{1 << 31, 1 << 31, 3}, Bounds: box(0, 1)}},
		{"lattice too large", seed.Config{Strategy: seed.Uniform, Dimensions: [3]int{seed.MaxParticles, 2, 1}, Bounds: box(0, 1)}},
		{"huge count", seed.Config{Strategy: seed.Random, Count: seed.MaxParticles + 1, Bounds: box(0, 1)}},
		{"huge subsample", seed.Config{Strategy: seed.Single, Point: &pt, Subsample: seed.MaxParticles + 1}},
		{"sparse without density", seed.Config{Strategy: seed.UniformSparse}},
		{"sparse zero density", seed.Config{Strategy: seed.UniformSparse, Density: &[3]int{2, 0, 2}}},
		{"empty sample box", seed.Config{Strategy: seed.Single, Point: &pt, SampleBounds: &geom.Bounds{X: geom.Range{Min: 1, Max: 0}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.cfg.Validate(), seed.ErrConfiguration)
			_, err := seed.Generate(tc.cfg, nil)
			assert.ErrorIs(t, err, seed.ErrConfiguration)
		})
	}

	assert.NoError(t, seed.DefaultConfig().Validate())
}

func TestGenerate_UniformSparseNotImplemented(t *testing.T) {
	cfg := seed.Config{Strategy: seed.UniformSparse, Density: &[3]int{2, 2, 2}}
	require.NoError(t, cfg.Validate())
	_, err := seed.Generate(cfg, nil)
	assert.ErrorIs(t, err, seed.ErrConfiguration)
	assert.ErrorContains(t, err, "not implemented")

	s, err := seed.ParseStrategy("uniformsparse")
	require.NoError(t, err)
	assert.Equal(t, seed.UniformSparse, s)
}

// nativeGrid reports a huge native resolution without holding any points.
type nativeGrid struct{ dims [3]int }

func (g nativeGrid) Bounds() geom.Bounds {
	return geom.Bounds{X: geom.Range{Max: 1}, Y: geom.Range{Max: 1}, Z: geom.Range{Max: 1}}
}

func (g nativeGrid) PointDims() ([3]int, bool) { return g.dims, true }

func (g nativeGrid) Coordinates() []geom.Point { return nil }

func (g nativeGrid) ScalarField(string) ([]float64, bool) { return nil, false }

func (g nativeGrid) VectorField(string) ([]geom.Point, bool) { return nil, false }

func TestGenerate_NativeLatticeTooLarge(t *testing.T) {
	_, err := seed.Generate(seed.DefaultConfig(), nativeGrid{dims: [3]int{1 << 31, 1 << 31, 3}})
	assert.ErrorIs(t, err, seed.ErrConfiguration)
}

func TestStrategy_Text(t *testing.T) {
	s, err := seed.ParseStrategy("SINGLECOPIES")
	require.NoError(t, err)
	assert.Equal(t, seed.SingleCopies, s)

	b, err := seed.FromCoordinates.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "fromCoordinates", string(b))

	var got seed.Strategy
	require.NoError(t, got.UnmarshalText([]byte("random")))
	assert.Equal(t, seed.Random, got)

	assert.ErrorIs(t, got.UnmarshalText([]byte("density")), seed.ErrConfiguration)
	_, err = seed.Strategy(0).MarshalText()
	assert.ErrorIs(t, err, seed.ErrConfiguration)
	assert.Equal(t, "Strategy(0)", seed.Strategy(0).String())
}
