// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// NormalityAlpha is the significance level of NormalityTest.
const NormalityAlpha = 0.05

// ksCoefficient is the large-sample Kolmogorov critical coefficient
// for NormalityAlpha. The critical value is ksCoefficient/√n.
const ksCoefficient = 1.36

// Verdict is the outcome of a normality test.
type Verdict int

const (
	// Normal means the test failed to reject normality.
	Normal Verdict = iota
	// NotNormal means the test rejected normality.
	NotNormal
)

func (v Verdict) String() string {
	switch v {
	case Normal:
		return "Normal"
	case NotNormal:
		return "NotNormal"
	}
	return fmt.Sprintf("Verdict(%d)", int(v))
}

// NormalityTestResult is the result of a Kolmogorov-Smirnov test of a
// standardized sample against the standard normal distribution.
type NormalityTestResult struct {
	// N is the sample size.
	N int

	// Statistic is the KS statistic D, the largest absolute
	// difference between the empirical CDF of the standardized
	// sample and the standard normal CDF.
	Statistic float64

	// Alpha is the significance level, NormalityAlpha.
	Alpha float64

	// CriticalValue is 1.36/√N, the approximate critical value of
	// D at Alpha.
	CriticalValue float64

	// P is the asymptotic p-value of Statistic. It is reported for
	// information only; Verdict is decided by CriticalValue.
	P float64

	// Verdict is NotNormal if Statistic > CriticalValue.
	Verdict Verdict
}

// NormalityTest tests whether s plausibly comes from a normal
// distribution.
//
// The sample is standardized as z = (x - mean)/stddev using the
// sample standard deviation, and compared to the standard normal
// distribution with a one-sample Kolmogorov-Smirnov test. The critical
// value is fixed at significance level 0.05.
//
// NormalityTest fails with ErrEmptyPopulation if s is empty,
// ErrInsufficientSample if s has one value, and ErrDegenerateSample if
// all values of s are equal.
func NormalityTest(s Sample) (NormalityTestResult, error) {
	n := len(s.Xs)
	switch {
	case n == 0:
		return NormalityTestResult{}, ErrEmptyPopulation
	case n == 1:
		return NormalityTestResult{}, ErrInsufficientSample
	}
	if lo, hi := s.Bounds(); lo == hi {
		return NormalityTestResult{}, ErrDegenerateSample
	}
	mean, stddev := s.Mean(), s.StdDev()
	if stddev == 0 || math.IsNaN(stddev) {
		return NormalityTestResult{}, ErrDegenerateSample
	}

	z := make([]float64, n)
	for i, x := range s.Xs {
		z[i] = (x - mean) / stddev
	}
	d := KSTest(Sample{Xs: z}, StdNormal)

	res := NormalityTestResult{
		N:             n,
		Statistic:     d,
		Alpha:         NormalityAlpha,
		CriticalValue: ksCoefficient / math.Sqrt(float64(n)),
		P:             kolmogorovP(d, n),
		Verdict:       Normal,
	}
	if res.Statistic > res.CriticalValue {
		res.Verdict = NotNormal
	}
	return res, nil
}

// KSTest returns the one-sample Kolmogorov-Smirnov statistic of s
// against dist: the supremum over x of |F̂(x) - F(x)|, where F̂ is the
// empirical CDF of s and F is dist's CDF.
//
// KSTest returns NaN if s is empty.
func KSTest(s Sample, dist Dist) float64 {
	n := len(s.Xs)
	if n == 0 {
		return nan
	}
	s = s.sorted()

	// The empirical CDF steps from i/n to (i+1)/n at s.Xs[i], so the
	// supremum is attained just before or at one of the samples.
	// With ties, only the outer steps of each run matter, and the
	// inner steps never exceed them.
	fn := float64(n)
	d := 0.0
	for i, x := range s.Xs {
		cdf := dist.CDF(x)
		if dPlus := float64(i+1)/fn - cdf; dPlus > d {
			d = dPlus
		}
		if dMinus := cdf - float64(i)/fn; dMinus > d {
			d = dMinus
		}
	}
	return d
}

// kolmogorovP returns the asymptotic p-value of KS statistic d for a
// sample of size n, using Stephens' small-sample adjustment
//
//	λ = (√n + 0.12 + 0.11/√n) d
//	Q(λ) = 2 Σ_{k≥1} (-1)^(k-1) exp(-2k²λ²)
func kolmogorovP(d float64, n int) float64 {
	sqrtN := math.Sqrt(float64(n))
	lambda := (sqrtN + 0.12 + 0.11/sqrtN) * d
	if lambda < 0.2 {
		// The series converges too slowly here, and Q is 1 to
		// well within float64 precision.
		return 1
	}

	const (
		maxTerms = 100
		eps1     = 1e-6
		eps2     = 1e-16
	)
	a2 := -2 * lambda * lambda
	sign := 2.0
	sum, prev := 0.0, 0.0
	for k := 1; k <= maxTerms; k++ {
		fk := float64(k)
		term := sign * math.Exp(a2*fk*fk)
		sum += term
		if math.Abs(term) <= eps1*prev || math.Abs(term) <= eps2*sum {
			return math.Max(0, math.Min(1, sum))
		}
		sign = -sign
		prev = math.Abs(term)
	}
	// Failed to converge.
	return 1
}
