// SPDX-License-Identifier: MIT
// Package: lvstream/linefilter
//
// types.go — feature selection, options and sentinel errors.

package linefilter

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var (
	// ErrUnknownFeature indicates a Feature value outside the closed set.
	ErrUnknownFeature = errors.New("linefilter: unknown feature")

	// ErrBadPercentile indicates a requested percentile outside [0, 100].
	ErrBadPercentile = errors.New("linefilter: percentile out of range")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("linefilter: workers must be >= 0")
)

// Feature selects which curvature aggregate drives the keep test.
type Feature int

const (
	// MaxCurvature keeps a line when its sharpest bend exceeds the threshold.
	MaxCurvature Feature = iota
	// SumCurvature keeps a line when its total bending exceeds the threshold.
	SumCurvature
)

// String returns "max" or "sum".
func (f Feature) String() string {
	switch f {
	case MaxCurvature:
		return "max"
	case SumCurvature:
		return "sum"
	default:
		return fmt.Sprintf("Feature(%d)", int(f))
	}
}

// ParseFeature maps "max"/"sum" (case-insensitive) to a Feature.
func ParseFeature(s string) (Feature, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max":
		return MaxCurvature, nil
	case "sum":
		return SumCurvature, nil
	default:
		return 0, fmt.Errorf("ParseFeature(%q): %w", s, ErrUnknownFeature)
	}
}

// MarshalText implements encoding.TextMarshaler (used by YAML config).
func (f Feature) MarshalText() ([]byte, error) {
	if f != MaxCurvature && f != SumCurvature {
		return nil, fmt.Errorf("MarshalText: %d: %w", int(f), ErrUnknownFeature)
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Feature) UnmarshalText(b []byte) error {
	v, err := ParseFeature(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Options configures Filter.
//
// Fields:
//   - Feature   — aggregate compared against Threshold (max or sum).
//   - Threshold — a line is kept iff feature > Threshold (strict).
//   - Workers   — goroutines for the per-line map; 0 means GOMAXPROCS.
type Options struct {
	Feature   Feature
	Threshold float64
	Workers   int
}

// DefaultOptions returns Feature=MaxCurvature, Threshold=0, Workers=0.
func DefaultOptions() Options {
	return Options{Feature: MaxCurvature}
}

// workers resolves the effective worker count.
func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Result is the output of Filter. Mask and Features are aligned 1:1 with
// the input lines and are never mutated afterwards.
type Result struct {
	Mask     []bool
	Features []float64
	Kept     int
}
