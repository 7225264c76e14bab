// SPDX-License-Identifier: MIT
// Package: lvstream/linefilter
//
// summary.go — diagnostic distribution of the feature across lines.
//
// The summary is for threshold tuning only; nothing in Filter reads it.

package linefilter

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultPercentiles are reported when the caller does not ask for any.
var DefaultPercentiles = []float64{5, 25, 50, 75, 95}

// Percentile is one point of the empirical distribution.
type Percentile struct {
	P     float64 // in [0, 100]
	Value float64
}

// Summary describes the feature distribution over all lines.
// For Count == 0 every statistic is zero and Percentiles is empty.
type Summary struct {
	Count       int
	Min, Max    float64
	Mean        float64
	Percentiles []Percentile
}

// Summarize computes min, max, mean and the requested percentiles of
// features using the empirical (inverse-CDF) quantile. features is not
// modified.
//
// Errors: ErrBadPercentile for a percentile outside [0, 100] or NaN.
// Complexity: O(n log n) for the sorted copy.
func Summarize(features []float64, percentiles []float64) (Summary, error) {
	for _, p := range percentiles {
		if !(p >= 0 && p <= 100) {
			return Summary{}, fmt.Errorf("Summarize: %v: %w", p, ErrBadPercentile)
		}
	}
	s := Summary{Count: len(features), Percentiles: []Percentile{}}
	if len(features) == 0 {
		return s, nil
	}

	sorted := slices.Clone(features)
	slices.Sort(sorted)

	s.Min = floats.Min(sorted)
	s.Max = floats.Max(sorted)
	s.Mean = floats.Sum(sorted) / float64(len(sorted))
	for _, p := range percentiles {
		s.Percentiles = append(s.Percentiles, Percentile{
			P:     p,
			Value: stat.Quantile(p/100, stat.Empirical, sorted, nil),
		})
	}
	return s, nil
}
