// SPDX-License-Identifier: MIT
// Package: lvstream/config

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvstream/linefilter"
	"github.com/katalvlaran/lvstream/seed"
)

// Environment overrides, applied after the file.
const (
	EnvLogLevel  = "LVSTREAM_LOG_LEVEL"
	EnvLogFormat = "LVSTREAM_LOG_FORMAT"
	EnvFeature   = "LVSTREAM_FEATURE"
	EnvThreshold = "LVSTREAM_THRESHOLD"
	EnvWorkers   = "LVSTREAM_WORKERS"
)

// Load starts from Default, overlays the YAML file at path (skipped when
// path is empty), applies environment overrides and validates.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg, os.Getenv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse is Load for an in-memory document, without environment overrides.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// decode overlays data onto cfg and rejects unknown keys.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", seed.ErrConfiguration, err)
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	if v := getenv(EnvFeature); v != "" {
		f, err := linefilter.ParseFeature(v)
		if err != nil {
			return fmt.Errorf("%s: %w: %w", EnvFeature, seed.ErrConfiguration, err)
		}
		cfg.Filter.Feature = f
	}
	if v := getenv(EnvThreshold); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvThreshold, v, seed.ErrConfiguration)
		}
		cfg.Filter.Threshold = t
	}
	if v := getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvWorkers, v, seed.ErrConfiguration)
		}
		cfg.Filter.Workers = n
	}
	return nil
}
