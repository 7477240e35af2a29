// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats characterizes a numeric population and ranks single
// scores within it.
//
// The entry points are Prepare, which turns raw values into a finite
// Sample; Describe and NormalityTest, which summarize the sample; and
// PercentileRank and GoalSeek, which place a score in the sample and
// compute the values needed to reach percentile milestones. Analyze
// combines all of these into one Report.
//
// Every function is a pure computation over its arguments. None of
// them modify the sample they are given.
package stats // import "github.com/aclements/standings/stats"

import (
	"errors"
	"math"
)

var inf = math.Inf(1)
var nan = math.NaN()

var (
	// ErrEmptyPopulation is returned when a sample has no finite
	// values to analyze.
	ErrEmptyPopulation = errors.New("stats: empty population")

	// ErrInsufficientSample is returned when a statistic needs at
	// least two values and the sample has one.
	ErrInsufficientSample = errors.New("stats: sample needs at least two values")

	// ErrDegenerateSample is returned when a statistic needs a
	// sample with non-zero variance and all values are identical.
	ErrDegenerateSample = errors.New("stats: sample has zero variance")

	// ErrInvalidTiePolicy is returned for a TiePolicy that is not
	// one of Strict, Weak, or Mean.
	ErrInvalidTiePolicy = errors.New("stats: invalid tie policy")

	// ErrInvalidTarget is returned for a goal target percentile
	// that is NaN or outside [0, 100], or for an empty target set.
	ErrInvalidTarget = errors.New("stats: invalid target percentile")

	// ErrInvalidPercentile is returned for a requested report
	// percentile that is NaN or outside [0, 100].
	ErrInvalidPercentile = errors.New("stats: invalid percentile")

	// ErrInvalidScore is returned when a score is NaN or infinite.
	ErrInvalidScore = errors.New("stats: score is not a finite number")
)
