// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Options configures Analyze.
type Options struct {
	// Percentiles are the percentiles (in [0, 100]) reported in
	// the Description.
	Percentiles []float64

	// Score, if non-nil, is ranked within the population and used
	// for goal seeking.
	Score *float64

	// TiePolicy is the tie policy for the Rank of Score. The goal
	// report always ranks by Mean.
	TiePolicy TiePolicy

	// Targets are the goal target percentiles (in [0, 100]).
	Targets []float64

	// Decimals is the number of decimal places a renderer should
	// show. It does not affect any computed value.
	Decimals int
}

// DefaultOptions returns the default Options: DefaultPercentiles,
// DefaultTiePolicy, DefaultTargets, and 4 decimal places. The Score is
// unset.
func DefaultOptions() Options {
	return Options{
		Percentiles: append([]float64(nil), DefaultPercentiles...),
		TiePolicy:   DefaultTiePolicy,
		Targets:     append([]float64(nil), DefaultTargets...),
		Decimals:    4,
	}
}

// Validate checks o for caller errors. It returns an error wrapping
// ErrInvalidPercentile, ErrInvalidTarget, ErrInvalidTiePolicy, or
// ErrInvalidScore.
func (o Options) Validate() error {
	if _, err := normPercentiles(o.Percentiles, ErrInvalidPercentile); err != nil {
		return err
	}
	if !o.TiePolicy.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidTiePolicy, o.TiePolicy)
	}
	if o.Score == nil {
		return nil
	}
	if err := checkScore(*o.Score); err != nil {
		return err
	}
	_, err := normTargets(o.Targets)
	return err
}

// Report is the complete analysis of a population and, optionally, a
// score within it.
type Report struct {
	// Dropped is the number of non-finite input values that were
	// removed before analysis.
	Dropped int

	Description Description

	// Normality is nil if the normality test could not be
	// computed. The reason is recorded in Omitted.
	Normality *NormalityTestResult

	// Rank and Goal are nil if no score was given.
	Rank *PercentileRankResult
	Goal *GoalReport

	// Omitted lists the recoverable errors (ErrInsufficientSample,
	// ErrDegenerateSample) that caused parts of the report to be
	// left out.
	Omitted []error

	// Decimals is the rendering precision from Options.
	Decimals int
}

// Analyze prepares population and computes its Description, a
// normality test, and, if opts.Score is set, the score's rank and goal
// report.
//
// Caller errors in opts are returned before any computation. An empty
// population fails with ErrEmptyPopulation. Samples too small or too
// uniform for some statistics produce a partial Report instead of an
// error; see Report.Omitted.
func Analyze(population []float64, opts Options) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s, dropped := PrepareCount(population)
	if len(s.Xs) == 0 {
		return nil, ErrEmptyPopulation
	}
	s.Sort()

	r := &Report{Dropped: dropped, Decimals: opts.Decimals}

	// The sample is sorted and never written below, so the
	// computations can share it.
	var (
		g                     errgroup.Group
		descErr, normalityErr error
	)
	g.Go(func() error {
		r.Description, descErr = Describe(s, opts.Percentiles)
		if isPartial(descErr) {
			return nil
		}
		return descErr
	})
	g.Go(func() error {
		res, err := NormalityTest(s)
		if err != nil {
			normalityErr = err
			if isPartial(err) {
				return nil
			}
			return err
		}
		r.Normality = &res
		return nil
	})
	if opts.Score != nil {
		score := *opts.Score
		g.Go(func() error {
			rank, err := PercentileRank(score, s, opts.TiePolicy)
			if err != nil {
				return err
			}
			r.Rank = &rank
			return nil
		})
		g.Go(func() error {
			goal, err := GoalSeek(score, s, opts.Targets)
			if err != nil {
				return err
			}
			r.Goal = &goal
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, err := range []error{descErr, normalityErr} {
		if err != nil && !containsErr(r.Omitted, err) {
			r.Omitted = append(r.Omitted, err)
		}
	}
	return r, nil
}

// isPartial reports whether err leaves a usable partial result.
func isPartial(err error) bool {
	return errors.Is(err, ErrInsufficientSample) || errors.Is(err, ErrDegenerateSample)
}

func containsErr(errs []error, err error) bool {
	for _, e := range errs {
		if errors.Is(e, err) {
			return true
		}
	}
	return false
}
