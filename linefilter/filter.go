// SPDX-License-Identifier: MIT
// Package: lvstream/linefilter
//
// filter.go — per-line curvature feature and keep-mask.

// Package linefilter decides which streamlines survive: it computes one
// curvature feature per polyline and keeps the line iff the feature is
// strictly greater than a threshold.
//
// The per-line work is an embarrassingly parallel map; Filter splits the
// lines into contiguous blocks and evaluates them on an errgroup bounded by
// Options.Workers. Each block writes only its own slots of the output
// slices, so no synchronization is needed beyond the final Wait.
package linefilter

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvstream/csr"
	"github.com/katalvlaran/lvstream/curvature"
	"github.com/katalvlaran/lvstream/geom"
)

// blocksPerWorker oversubscribes blocks so that uneven line lengths balance out.
const blocksPerWorker = 4

// Filter evaluates every line of lines against opts and returns the keep-mask
// and the selected feature per line.
//
// Contract:
//   - mask[i] == (feature[i] > opts.Threshold) for every i.
//   - Lines with fewer than three points have feature 0.
//   - lines and coords are only read.
//
// Errors:
//   - ErrUnknownFeature, ErrBadWorkers for invalid options.
//   - csr.ErrBadSentinel / csr.ErrOutOfRange for a malformed topology.
//   - ctx.Err() if ctx is cancelled before all blocks finish.
//
// Complexity: O(len(Connectivity)) work, spread over Workers goroutines.
func Filter(ctx context.Context, lines csr.Lines, coords []geom.Point, opts Options) (Result, error) {
	if opts.Feature != MaxCurvature && opts.Feature != SumCurvature {
		return Result{}, fmt.Errorf("Filter: %v: %w", opts.Feature, ErrUnknownFeature)
	}
	if opts.Workers < 0 {
		return Result{}, fmt.Errorf("Filter: workers=%d: %w", opts.Workers, ErrBadWorkers)
	}
	if err := lines.Validate(len(coords)); err != nil {
		return Result{}, fmt.Errorf("Filter: %w", err)
	}

	n := lines.NumLines()
	res := Result{
		Mask:     make([]bool, n),
		Features: make([]float64, n),
	}
	if n == 0 {
		return res, nil
	}

	workers := opts.workers()
	block := (n + workers*blocksPerWorker - 1) / (workers * blocksPerWorker)
	if block < 1 {
		block = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += block {
		hi := min(lo+block, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				f := feature(coords, lines.Line(i), opts.Feature)
				res.Features[i] = f
				res.Mask[i] = f > opts.Threshold
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("Filter: %w", err)
	}

	res.Kept = csr.CountMask(res.Mask)
	return res, nil
}

// feature computes the selected curvature aggregate of one line.
func feature(coords []geom.Point, line []int, f Feature) float64 {
	maxK, sumK := curvature.EstimateLine(coords, line)
	if f == SumCurvature {
		return sumK
	}
	return maxK
}
