// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstream/config"
	"github.com/katalvlaran/lvstream/geom"
	"github.com/katalvlaran/lvstream/linefilter"
	"github.com/katalvlaran/lvstream/seed"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, seed.Uniform, cfg.Seeding.Strategy)
	assert.Equal(t, [3]int{-1, -1, -1}, cfg.Seeding.Dimensions)
	assert.Equal(t, seed.DefaultRandomSeed, cfg.Seeding.RandomSeed)
	assert.Equal(t, linefilter.MaxCurvature, cfg.Filter.Feature)
	assert.Equal(t, 0.0, cfg.Filter.Threshold)
	assert.Equal(t, []float64{5, 25, 50, 75, 95}, cfg.Filter.Percentiles)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoad_File(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "lvstream.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "grid.vtk", cfg.Data)
	assert.Equal(t, "seeds.vtk", cfg.Output)
	assert.Equal(t, 1000, cfg.Steps)

	s := cfg.Seeding
	assert.Equal(t, seed.Random, s.Strategy)
	assert.Equal(t, 64, s.Count)
	assert.Equal(t, int64(7), s.RandomSeed)
	require.NotNil(t, s.Bounds.X)
	assert.Equal(t, geom.Range{Min: 0, Max: 1}, *s.Bounds.X)
	assert.Nil(t, s.Bounds.Y, "unset axis is inherited from the dataset")
	require.NotNil(t, s.Bounds.Z)
	assert.Equal(t, geom.Range{Min: -2, Max: 2}, *s.Bounds.Z)
	assert.Equal(t, [3]int{-1, -1, -1}, s.Dimensions, "defaults survive the overlay")

	opts := cfg.Filter.Options()
	assert.Equal(t, linefilter.SumCurvature, opts.Feature)
	assert.Equal(t, 0.25, opts.Threshold)
	assert.Equal(t, 4, opts.Workers)
	assert.Equal(t, []float64{10, 50, 90}, cfg.Filter.Percentiles)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvThreshold, "1.5")
	t.Setenv(config.EnvFeature, "max")
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvWorkers, "2")

	cfg, err := config.Load(filepath.Join("testdata", "lvstream.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.Filter.Threshold)
	assert.Equal(t, linefilter.MaxCurvature, cfg.Filter.Feature)
	assert.Equal(t, 2, cfg.Filter.Workers)
	assert.Equal(t, slog.LevelWarn, cfg.Log.SlogLevel())

	t.Setenv(config.EnvThreshold, "high")
	_, err = config.Load("")
	assert.ErrorIs(t, err, seed.ErrConfiguration)
}

func TestLoad_NoPathIsDefault(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown key":        "colour: blue\n",
		"unknown strategy":   "seeding: {strategy: density}\n",
		"unknown feature":    "filter: {feature: mean}\n",
		"bad log level":      "log: {level: loud}\n",
		"bad log format":     "log: {format: xml}\n",
		"percentile > 100":   "filter: {percentiles: [50, 120]}\n",
		"negative workers":   "filter: {workers: -1}\n",
		"negative steps":     "steps: -3\n",
		"random no count":    "seeding: {strategy: random}\n",
		"single no point":    "seeding: {strategy: single}\n",
		"dimension below -1": "seeding: {dimensions: [2, -2, 2]}\n",
		"short dimensions":   "seeding: {dimensions: [2, 2]}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, seed.ErrConfiguration)
		})
	}
}

func TestParse_SinglePointAndCharged(t *testing.T) {
	cfg, err := config.Parse([]byte("seeding:\n  strategy: singleCopies\n  count: 3\n  point: {x: 1, y: 2, z: 3}\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg.Seeding.Point)
	assert.Equal(t, geom.Point{X: 1, Y: 2, Z: 3}, *cfg.Seeding.Point)

	doc := `charged: true
seeding:
  strategy: single
  physical: {mass: m, charge: q, momentum: p, convertMomentum: true}
  sampleBounds:
    x: {min: 0, max: 1}
    y: {min: 0, max: 1}
    z: {min: 0, max: 1}
`
	cfg, err = config.Parse([]byte(doc))
	require.NoError(t, err, "charged seeding does not need the strategy's point")
	require.NotNil(t, cfg.Seeding.Physical)
	assert.Equal(t, "m", cfg.Seeding.Physical.Mass)
	assert.True(t, cfg.Seeding.Physical.ConvertMomentum)
	require.NotNil(t, cfg.Seeding.SampleBounds)
	assert.Equal(t, 1.0, cfg.Seeding.SampleBounds.Z.Max)
}

func TestLog_NewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := config.Log{Level: "debug", Format: "json"}.NewLogger(&buf)
	logger.Debug("hello", "lines", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, float64(3), rec["lines"])

	buf.Reset()
	config.Log{Level: "error", Format: "text"}.NewLogger(&buf).Info("dropped")
	assert.Empty(t, buf.String())
}
