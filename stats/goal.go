// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "fmt"

// DefaultTargets are the goal percentiles used when the caller has no
// preference.
var DefaultTargets = []float64{80, 90, 95, 99}

// MilestoneState describes where a score stands relative to the next
// goal target.
type MilestoneState int

const (
	// MilestoneNext means the score is below the threshold of the
	// next target, and Gap is the (positive) distance to it.
	MilestoneNext MilestoneState = iota

	// MilestoneAchieved means the next target by rank is already
	// met by value: the score is at or above the target's
	// threshold even though its rank is below the target. This
	// happens around runs of tied values.
	MilestoneAchieved

	// MilestoneAtOrAboveHighestTarget means no target is above the
	// score's rank. Target names the highest target.
	MilestoneAtOrAboveHighestTarget
)

func (m MilestoneState) String() string {
	switch m {
	case MilestoneNext:
		return "Next"
	case MilestoneAchieved:
		return "Achieved"
	case MilestoneAtOrAboveHighestTarget:
		return "AtOrAboveHighestTarget"
	}
	return fmt.Sprintf("MilestoneState(%d)", int(m))
}

// Milestone is the next goal for a score.
type Milestone struct {
	State MilestoneState

	// Target is the target percentile of this milestone.
	Target float64

	// Threshold is the population value at Target.
	Threshold float64

	// Gap is Threshold minus the score. It is positive for
	// MilestoneNext and zero or negative for MilestoneAchieved.
	// For MilestoneAtOrAboveHighestTarget it refers to the highest
	// target and carries no recommendation.
	Gap float64
}

// GoalReport relates a score to a set of target percentiles of a
// population.
type GoalReport struct {
	// N is the population size.
	N int

	Score float64

	// Rank is the percentile rank of Score under Policy.
	Rank   float64
	Policy TiePolicy

	// Thresholds holds the population value at each target
	// percentile, in ascending order of target without duplicates.
	Thresholds []PercentileValue

	// Milestone is the smallest target strictly above Rank, or the
	// highest target if there is none or Score is past its
	// threshold.
	Milestone Milestone
}

// GoalSeek ranks score within population s and computes the values
// needed to reach each of the target percentiles (in [0, 100]).
//
// The score's rank uses the Mean tie policy. Thresholds use the same
// interpolation as Describe, so they agree with the percentiles of a
// Description of s.
//
// GoalSeek fails with ErrEmptyPopulation if s is empty,
// ErrInvalidTarget if targets is empty or contains a value outside
// [0, 100], and ErrInvalidScore if score is not finite.
func GoalSeek(score float64, s Sample, targets []float64) (GoalReport, error) {
	return GoalSeekPolicy(score, s, targets, DefaultTiePolicy)
}

// GoalSeekPolicy is like GoalSeek, but ranks score under the given tie
// policy.
func GoalSeekPolicy(score float64, s Sample, targets []float64, policy TiePolicy) (GoalReport, error) {
	ts, err := normTargets(targets)
	if err != nil {
		return GoalReport{}, err
	}
	s = s.sorted()
	rank, err := PercentileRank(score, s, policy)
	if err != nil {
		return GoalReport{}, err
	}

	g := GoalReport{
		N:          rank.N,
		Score:      score,
		Rank:       rank.Rank,
		Policy:     policy,
		Thresholds: make([]PercentileValue, len(ts)),
	}
	for i, t := range ts {
		g.Thresholds[i] = PercentileValue{t, s.Percentile(t)}
	}

	g.Milestone.State = MilestoneAtOrAboveHighestTarget
	next := g.Thresholds[len(g.Thresholds)-1]
	// A score past the highest threshold is above every target,
	// even when ties or a small population keep its rank lower.
	if score <= next.Value {
		for _, pv := range g.Thresholds {
			if pv.P > g.Rank {
				next = pv
				g.Milestone.State = MilestoneNext
				break
			}
		}
	}
	g.Milestone.Target = next.P
	g.Milestone.Threshold = next.Value
	g.Milestone.Gap = next.Value - score
	if g.Milestone.State == MilestoneNext && g.Milestone.Gap <= 0 {
		g.Milestone.State = MilestoneAchieved
	}
	return g, nil
}

func normTargets(targets []float64) ([]float64, error) {
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: no targets", ErrInvalidTarget)
	}
	return normPercentiles(targets, ErrInvalidTarget)
}
