// SPDX-License-Identifier: MIT
// Package: lvstream/pipeline
//
// options.go — functional options for New. Constructors panic on
// meaningless values; Run itself never panics.

package pipeline

import (
	"log/slog"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvstream/linefilter"
)

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}
	return func(p *Pipeline) {
		p.logger = l
	}
}

// WithRegisterer registers the pipeline metrics with reg. Without it the
// metrics are still collected but not exported.
func WithRegisterer(reg prometheus.Registerer) Option {
	if reg == nil {
		panic("pipeline: WithRegisterer(nil)")
	}
	return func(p *Pipeline) {
		p.registerer = reg
	}
}

// WithTracerProvider sets the span source. Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("pipeline: WithTracerProvider(nil)")
	}
	return func(p *Pipeline) {
		p.tracerProvider = tp
	}
}

// WithFeature selects the curvature aggregate compared against the threshold.
func WithFeature(f linefilter.Feature) Option {
	if f != linefilter.MaxCurvature && f != linefilter.SumCurvature {
		panic("pipeline: WithFeature: unknown feature " + f.String())
	}
	return func(p *Pipeline) {
		p.filter.Feature = f
	}
}

// WithThreshold sets the strict keep threshold (feature > threshold).
func WithThreshold(t float64) Option {
	return func(p *Pipeline) {
		p.filter.Threshold = t
	}
}

// WithWorkers bounds the filter goroutines; 0 means GOMAXPROCS. Panics on n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("pipeline: WithWorkers(n < 0)")
	}
	return func(p *Pipeline) {
		p.filter.Workers = n
	}
}

// WithPercentiles sets the percentiles reported for the feature
// distribution. Panics on values outside [0, 100] and on NaN.
func WithPercentiles(ps ...float64) Option {
	for _, v := range ps {
		if !(v >= 0 && v <= 100) {
			panic("pipeline: WithPercentiles: value outside [0,100]")
		}
	}
	ps = slices.Clone(ps)
	return func(p *Pipeline) {
		p.percentiles = ps
	}
}

// WithAdvector sets the integrator used by RunFromSeeds. Panics on nil.
func WithAdvector(a Advector) Option {
	if a == nil {
		panic("pipeline: WithAdvector(nil)")
	}
	return func(p *Pipeline) {
		p.advector = a
	}
}

// WithSteps sets the number of integration steps passed to the advector.
// Panics on n < 0.
func WithSteps(n int) Option {
	if n < 0 {
		panic("pipeline: WithSteps(n < 0)")
	}
	return func(p *Pipeline) {
		p.steps = n
	}
}
