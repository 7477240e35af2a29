// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// DefaultPercentiles are the percentiles reported by Describe when
// the caller has no preference.
var DefaultPercentiles = []float64{1, 5, 25, 50, 75, 95, 99}

// Description summarizes a Sample.
type Description struct {
	// Count is the number of values in the sample.
	Count int

	Sum, Mean, Median float64

	// Mode is the most frequent value in the sample. If several
	// values are equally frequent, Mode is the smallest of them.
	// ModeCount is the number of times Mode occurs.
	Mode      float64
	ModeCount int

	Min, Max, Range float64

	// Percentiles holds the requested percentiles in ascending
	// order without duplicates.
	Percentiles []PercentileValue

	// Spread describes the dispersion of the sample. It is nil if
	// the sample has fewer than two values.
	Spread *Spread

	// Shape describes the shape of the sample's distribution. It
	// is nil if the sample has fewer than two values or zero
	// variance.
	Shape *Shape
}

// PercentileValue is the value of a sample at percentile P.
type PercentileValue struct {
	P     float64
	Value float64
}

// Spread holds the dispersion statistics of a sample. Variance and
// StdDev use the unbiased n-1 divisor.
type Spread struct {
	// StdErr is the standard error of the mean, StdDev/√n.
	StdErr   float64
	StdDev   float64
	Variance float64
}

// Shape holds the standardized moments of a sample.
//
// These are the Fisher-Pearson moment coefficients without bias
// correction: Skewness is m₃/m₂^(3/2) and ExcessKurtosis is
// m₄/m₂² - 3, where mₖ is the k'th central moment with divisor n. A
// normal distribution has zero skewness and zero excess kurtosis.
type Shape struct {
	Skewness       float64
	ExcessKurtosis float64
}

// Percentile returns the value recorded for percentile p and whether
// p was among the requested percentiles.
func (d Description) Percentile(p float64) (float64, bool) {
	for _, pv := range d.Percentiles {
		if pv.P == p {
			return pv.Value, true
		}
	}
	return 0, false
}

// Describe computes descriptive statistics of s, including the value
// of s at each of the given percentiles (in [0, 100]).
//
// Describe fails with ErrEmptyPopulation if s is empty and with
// ErrInvalidPercentile if a percentile is out of range. For a single
// value it returns a Description with a nil Spread and Shape together
// with ErrInsufficientSample, and for a sample whose values are all
// equal it returns a Description with a nil Shape together with
// ErrDegenerateSample. In both of those cases the remaining fields of
// the Description are valid.
func Describe(s Sample, percentiles []float64) (Description, error) {
	ps, err := normPercentiles(percentiles, ErrInvalidPercentile)
	if err != nil {
		return Description{}, err
	}
	if len(s.Xs) == 0 {
		return Description{}, ErrEmptyPopulation
	}

	s = s.sorted()
	n := len(s.Xs)
	d := Description{
		Count:  n,
		Sum:    s.Sum(),
		Mean:   s.Mean(),
		Median: s.Quantile(0.5),
	}
	d.Min, d.Max = s.Bounds()
	d.Range = d.Max - d.Min
	d.Mode, d.ModeCount = sortedMode(s.Xs)
	d.Percentiles = make([]PercentileValue, len(ps))
	for i, p := range ps {
		d.Percentiles[i] = PercentileValue{p, s.Percentile(p)}
	}

	if n < 2 {
		return d, ErrInsufficientSample
	}

	variance := s.Variance()
	if d.Range == 0 {
		// Avoid rounding noise from the mean of identical values.
		variance = 0
	}
	stddev := math.Sqrt(variance)
	d.Spread = &Spread{
		StdErr:   stat.StdErr(stddev, float64(n)),
		StdDev:   stddev,
		Variance: variance,
	}

	if variance == 0 {
		return d, ErrDegenerateSample
	}
	m2 := stat.Moment(2, s.Xs, nil)
	m3 := stat.Moment(3, s.Xs, nil)
	m4 := stat.Moment(4, s.Xs, nil)
	d.Shape = &Shape{
		Skewness:       m3 / math.Pow(m2, 1.5),
		ExcessKurtosis: m4/(m2*m2) - 3,
	}
	return d, nil
}

// sortedMode returns the most frequent value in the sorted slice xs
// and its frequency. Ties go to the smallest value.
func sortedMode(xs []float64) (mode float64, count int) {
	for i := 0; i < len(xs); {
		i1, v1 := i, xs[i]
		for ; i < len(xs) && xs[i] == v1; i++ {
		}
		// Strictly greater keeps the earliest (smallest) run.
		if run := i - i1; run > count {
			mode, count = v1, run
		}
	}
	return
}

// normPercentiles validates ps against [0, 100] and returns a sorted
// copy without duplicates. Out-of-range values are reported as bad.
func normPercentiles(ps []float64, bad error) ([]float64, error) {
	out := make([]float64, 0, len(ps))
	for _, p := range ps {
		if math.IsNaN(p) || p < 0 || p > 100 {
			return nil, fmt.Errorf("%w: %v", bad, p)
		}
		out = append(out, p)
	}
	sort.Float64s(out)
	j := 0
	for i, p := range out {
		if i == 0 || p != out[j-1] {
			out[j] = p
			j++
		}
	}
	return out[:j], nil
}
