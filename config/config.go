// SPDX-License-Identifier: MIT
// Package: lvstream/config
//
// config.go — run configuration: file paths, seeding, filter and logging.

// Package config loads the lvstream run configuration from YAML, applies
// environment overrides and validates the result.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/lvstream/linefilter"
	"github.com/katalvlaran/lvstream/seed"
)

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = validator.New()

// Config is one lvstream run.
type Config struct {
	// Data is the source dataset (seeding bounds/resolution, or streamlines
	// for the filter command).
	Data string `yaml:"data"`
	// SeedData is an optional point cloud used instead of Data for
	// fromCoordinates and charged seeding.
	SeedData string `yaml:"seedData"`
	// Output is the path written by the seed and filter commands.
	Output string `yaml:"output"`
	// Steps and Length parameterize the external advection stage. Length 0
	// means "use the CFL step length of the source grid".
	Steps  int     `yaml:"steps" validate:"gte=0"`
	Length float64 `yaml:"length" validate:"gte=0"`

	// Charged selects seed.GenerateCharged instead of seed.Generate.
	Charged bool        `yaml:"charged"`
	Seeding seed.Config `yaml:"seeding"`
	Filter  Filter      `yaml:"filter"`
	Log     Log         `yaml:"log"`
}

// Filter configures the curvature filter stage.
type Filter struct {
	Feature     linefilter.Feature `yaml:"feature"`
	Threshold   float64            `yaml:"threshold"`
	Percentiles []float64          `yaml:"percentiles" validate:"dive,gte=0,lte=100"`
	Workers     int                `yaml:"workers" validate:"gte=0"`
}

// Options converts the filter section into linefilter.Options.
func (f Filter) Options() linefilter.Options {
	return linefilter.Options{Feature: f.Feature, Threshold: f.Threshold, Workers: f.Workers}
}

// Log configures the slog handler built by the CLI.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// SlogLevel maps Level onto slog; unknown spellings fall back to Info.
func (l Log) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// NewLogger builds a text or JSON logger writing to w.
func (l Log) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Default returns the configuration used when no file is given: uniform
// seeding at native resolution, max-curvature filter at threshold 0 with the
// default percentiles, info-level text logs.
func Default() Config {
	return Config{
		Seeding: seed.DefaultConfig(),
		Filter: Filter{
			Feature:     linefilter.MaxCurvature,
			Percentiles: append([]float64(nil), linefilter.DefaultPercentiles...),
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Validate checks struct tags, then the strategy-specific seeding rules.
// Every failure wraps seed.ErrConfiguration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w: %w", seed.ErrConfiguration, err)
	}
	if c.Charged {
		return nil
	}
	if err := c.Seeding.Validate(); err != nil {
		return fmt.Errorf("config: seeding: %w", err)
	}
	return nil
}
