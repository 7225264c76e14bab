// SPDX-License-Identifier: MIT
// Package: lvstream/pipeline
//
// pipeline.go — Filter → Compact orchestration with logging, metrics and
// tracing. Stages are separated by a full barrier: compaction sizes depend on
// the global keep count produced by the filter.

// Package pipeline runs the streamline post-processing stages end to end:
// optional advection of seeds through an external Advector, the parallel
// curvature filter, and topology compaction carrying point fields along.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvstream/dataset"
	"github.com/katalvlaran/lvstream/linefilter"
	"github.com/katalvlaran/lvstream/seed"
)

const tracerName = "github.com/katalvlaran/lvstream/pipeline"

// Stage names used in spans, metrics and Report.
const (
	StageAdvect  = "advect"
	StageFilter  = "filter"
	StageCompact = "compact"
)

var (
	// ErrNoAdvector is returned by RunFromSeeds when no Advector was given.
	ErrNoAdvector = errors.New("pipeline: no advector configured")

	// ErrNilDataset is returned when Run receives a nil dataset or the
	// advector returns one.
	ErrNilDataset = errors.New("pipeline: nil dataset")
)

// Advector integrates seeds into streamlines. Implementations return one
// polyline per seed (possibly empty) over a shared point buffer.
type Advector interface {
	Advect(ctx context.Context, seeds []seed.Particle, steps int) (*dataset.PolyData, error)
}

// Report summarizes one run.
type Report struct {
	RunID     string
	Feature   linefilter.Feature
	Threshold float64

	LinesIn   int
	LinesKept int
	PointsIn  int
	PointsOut int

	// Summary is the distribution of the filter feature over all input lines.
	Summary linefilter.Summary
	// Durations holds wall time per executed stage.
	Durations map[string]time.Duration
}

// Pipeline is safe for concurrent Run calls; it holds configuration and
// collectors only.
type Pipeline struct {
	logger         *slog.Logger
	registerer     prometheus.Registerer
	tracerProvider trace.TracerProvider
	tracer         trace.Tracer
	metrics        *metrics

	filter      linefilter.Options
	percentiles []float64
	advector    Advector
	steps       int
}

// New builds a Pipeline. Defaults: max-curvature feature, threshold 0,
// GOMAXPROCS workers, linefilter.DefaultPercentiles, slog.Default(), the
// global tracer provider and unregistered metrics.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		filter:      linefilter.DefaultOptions(),
		percentiles: linefilter.DefaultPercentiles,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.tracerProvider == nil {
		p.tracerProvider = otel.GetTracerProvider()
	}
	p.tracer = p.tracerProvider.Tracer(tracerName)
	p.metrics = newMetrics(p.registerer)
	return p
}

// Run filters pd's lines by curvature and compacts the survivors. pd is not
// modified; the result owns all of its buffers.
//
// Errors: ErrNilDataset, topology errors from csr (wrapped), linefilter
// errors, and ctx.Err() when cancelled.
func (p *Pipeline) Run(ctx context.Context, pd *dataset.PolyData) (*dataset.PolyData, Report, error) {
	rep := p.newReport()
	ctx, span := p.tracer.Start(ctx, "pipeline.Run",
		trace.WithAttributes(attribute.String("run.id", rep.RunID)))
	defer span.End()

	out, err := p.run(ctx, pd, &rep)
	p.finish(span, rep, err)
	return out, rep, err
}

// RunFromSeeds advects seeds with the configured Advector, then runs the
// filter and compaction stages on the result.
func (p *Pipeline) RunFromSeeds(ctx context.Context, seeds []seed.Particle) (*dataset.PolyData, Report, error) {
	rep := p.newReport()
	if p.advector == nil {
		p.metrics.runs.WithLabelValues("error").Inc()
		return nil, rep, ErrNoAdvector
	}
	ctx, span := p.tracer.Start(ctx, "pipeline.RunFromSeeds",
		trace.WithAttributes(
			attribute.String("run.id", rep.RunID),
			attribute.Int("seeds", len(seeds)),
			attribute.Int("steps", p.steps),
		))
	defer span.End()

	p.logger.Info("advecting seeds", "run_id", rep.RunID, "seeds", len(seeds), "steps", p.steps)
	var lines *dataset.PolyData
	err := p.stage(ctx, StageAdvect, &rep, func(ctx context.Context) error {
		var err error
		lines, err = p.advector.Advect(ctx, seeds, p.steps)
		if err == nil && lines == nil {
			err = ErrNilDataset
		}
		return err
	})
	if err != nil {
		err = fmt.Errorf("RunFromSeeds: advect: %w", err)
		p.finish(span, rep, err)
		return nil, rep, err
	}

	out, err := p.run(ctx, lines, &rep)
	p.finish(span, rep, err)
	return out, rep, err
}

func (p *Pipeline) newReport() Report {
	return Report{
		RunID:     uuid.NewString(),
		Feature:   p.filter.Feature,
		Threshold: p.filter.Threshold,
		Durations: make(map[string]time.Duration, 3),
	}
}

// run executes filter and compact, filling rep as it goes.
func (p *Pipeline) run(ctx context.Context, pd *dataset.PolyData, rep *Report) (*dataset.PolyData, error) {
	if pd == nil {
		return nil, ErrNilDataset
	}
	if err := pd.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	logger := p.logger.With("run_id", rep.RunID)
	rep.LinesIn = pd.Lines.NumLines()
	rep.PointsIn = len(pd.Points)
	logger.Info("filtering streamlines",
		"lines", rep.LinesIn, "points", rep.PointsIn,
		"feature", p.filter.Feature.String(), "threshold", p.filter.Threshold)

	var res linefilter.Result
	err := p.stage(ctx, StageFilter, rep, func(ctx context.Context) error {
		var err error
		res, err = linefilter.Filter(ctx, pd.Lines, pd.Points, p.filter)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	rep.LinesKept = res.Kept

	if rep.Summary, err = linefilter.Summarize(res.Features, p.percentiles); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	logSummary(logger, rep.Summary)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out *dataset.PolyData
	err = p.stage(ctx, StageCompact, rep, func(context.Context) error {
		var err error
		out, _, err = pd.Compact(res.Mask)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	rep.PointsOut = len(out.Points)

	p.metrics.lines.WithLabelValues("in").Add(float64(rep.LinesIn))
	p.metrics.lines.WithLabelValues("kept").Add(float64(rep.LinesKept))
	p.metrics.points.WithLabelValues("in").Add(float64(rep.PointsIn))
	p.metrics.points.WithLabelValues("out").Add(float64(rep.PointsOut))

	logger.Info("compacted streamlines",
		"lines_kept", rep.LinesKept, "lines_in", rep.LinesIn,
		"points_out", rep.PointsOut, "points_in", rep.PointsIn)
	return out, nil
}

// stage runs fn inside a child span and records its duration.
func (p *Pipeline) stage(ctx context.Context, name string, rep *Report, fn func(context.Context) error) error {
	ctx, span := p.tracer.Start(ctx, "pipeline."+name)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	d := time.Since(start)
	rep.Durations[name] = d
	p.metrics.stageDuration.WithLabelValues(name).Observe(d.Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}

// finish closes the run: status on the root span, run counter, final log.
func (p *Pipeline) finish(span trace.Span, rep Report, err error) {
	span.SetAttributes(
		attribute.Int("lines.in", rep.LinesIn),
		attribute.Int("lines.kept", rep.LinesKept),
		attribute.Int("points.out", rep.PointsOut),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.metrics.runs.WithLabelValues("error").Inc()
		p.logger.Error("pipeline run failed", "run_id", rep.RunID, "error", err)
		return
	}
	span.SetStatus(codes.Ok, "")
	p.metrics.runs.WithLabelValues("ok").Inc()
}

func logSummary(logger *slog.Logger, s linefilter.Summary) {
	attrs := []any{"count", s.Count, "min", s.Min, "max", s.Max, "mean", s.Mean}
	for _, pc := range s.Percentiles {
		attrs = append(attrs, fmt.Sprintf("p%g", pc.P), pc.Value)
	}
	logger.Info("feature distribution", attrs...)
}
