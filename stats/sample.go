// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of finite observations.
//
// The order of Xs carries no meaning. If Sorted is true, Xs is known
// to be in ascending order and methods that need order statistics use
// it directly; otherwise they work on a sorted copy.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Prepare returns a Sample containing the finite values of raw.
//
// NaN and infinite values (which loaders use to represent missing
// entries) are dropped. The result may be empty. raw is not modified.
func Prepare(raw []float64) Sample {
	s, _ := PrepareCount(raw)
	return s
}

// PrepareCount is like Prepare, but also returns the number of values
// that were dropped.
func PrepareCount(raw []float64) (s Sample, dropped int) {
	xs := make([]float64, 0, len(raw))
	for _, x := range raw {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			dropped++
			continue
		}
		xs = append(xs, x)
	}
	return Sample{Xs: xs}, dropped
}

// Len returns the number of values in the sample.
func (s Sample) Len() int {
	return len(s.Xs)
}

// Bounds returns the minimum and maximum values of the Sample.
//
// If the Sample is empty, Bounds returns NaN, NaN.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Sum returns the sum of the Sample.
func (s Sample) Sum() float64 {
	return floats.Sum(s.Xs)
}

// Mean returns the arithmetic mean of the Sample, or NaN if the
// Sample is empty.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, nil)
}

// Variance returns the sample variance of the Sample, using the
// unbiased n-1 divisor. It returns NaN if the Sample has fewer than
// two values.
func (s Sample) Variance() float64 {
	if len(s.Xs) < 2 {
		return nan
	}
	return stat.Variance(s.Xs, nil)
}

// StdDev returns the sample standard deviation of the Sample. It
// returns NaN if the Sample has fewer than two values.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Quantile returns the q'th quantile of the Sample, for q in [0, 1].
// Values of q outside that range are clamped.
//
// This linearly interpolates between the two order statistics that
// bracket rank position q*(n-1) (the "linear" method, R type 7). It
// returns NaN if the Sample is empty.
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 || math.IsNaN(q) {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	n := len(s.Xs)
	if q <= 0 {
		return s.Xs[0]
	} else if q >= 1 {
		return s.Xs[n-1]
	}

	pos := q * float64(n-1)
	lo := math.Floor(pos)
	i := int(lo)
	if i+1 >= n {
		return s.Xs[n-1]
	}
	frac := pos - lo
	if frac == 0 {
		return s.Xs[i]
	}
	return s.Xs[i] + frac*(s.Xs[i+1]-s.Xs[i])
}

// Percentile returns the p'th percentile of the Sample, for p in
// [0, 100]. It is equivalent to Quantile(p/100).
func (s Sample) Percentile(p float64) float64 {
	return s.Quantile(p / 100)
}

// Sort sorts the samples in place in s and returns s.
//
// A sorted sample improves the performance of some algorithms.
func (s *Sample) Sort() *Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		// All set
	} else {
		sort.Float64s(s.Xs)
	}
	s.Sorted = true
	return s
}

// Copy returns a copy of the Sample.
//
// The returned Sample shares no data with the original, so they can
// be modified (for example, sorted) independently.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{xs, s.Sorted}
}

// sorted returns s if it is known to be sorted and a sorted copy
// otherwise.
func (s Sample) sorted() Sample {
	if s.Sorted {
		return s
	}
	return *s.Copy().Sort()
}
