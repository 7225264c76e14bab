// SPDX-License-Identifier: MIT
// Package: lvstream/pipeline

package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics are per Pipeline so several pipelines can share a process, each
// registered (or not) with its own registry.
type metrics struct {
	runs          *prometheus.CounterVec
	lines         *prometheus.CounterVec
	points        *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
}

// newMetrics creates the collectors; reg may be nil (unregistered).
func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvstream_pipeline_runs_total",
			Help: "Pipeline runs by result",
		}, []string{"result"}),
		lines: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvstream_pipeline_lines_total",
			Help: "Streamlines entering the filter and surviving it",
		}, []string{"stage"}), // "in" or "kept"
		points: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lvstream_pipeline_points_total",
			Help: "Coordinates before and after compaction",
		}, []string{"stage"}), // "in" or "out"
		stageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lvstream_pipeline_stage_duration_seconds",
			Help:    "Stage duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"stage"}),
	}
}
