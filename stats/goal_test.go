// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"testing"
)

func TestGoalSeek(t *testing.T) {
	pop := seq(1, 100)
	check := func(score, wrank float64, wstate MilestoneState, wtarget, wthreshold, wgap float64) {
		t.Helper()
		g, err := GoalSeek(score, pop, DefaultTargets)
		if err != nil {
			t.Fatal(err)
		}
		m := g.Milestone
		if !aeq(wrank, g.Rank) || m.State != wstate || m.Target != wtarget || !aeq(wthreshold, m.Threshold) || !aeq(wgap, m.Gap) {
			t.Errorf("score %v: want rank %v, %v %v@%v gap %v; got rank %v, %+v",
				score, wrank, wstate, wtarget, wthreshold, wgap, g.Rank, m)
		}
		if g.Policy != Mean || g.N != 100 || g.Score != score {
			t.Errorf("score %v: unexpected report header %+v", score, g)
		}
	}

	// 94 values lie below 95 and 95 at or below it.
	check(95, 94.5, MilestoneNext, 95, 95.05, 0.05)
	check(96, 95.5, MilestoneNext, 99, 99.01, 3.01)
	check(50, 49.5, MilestoneNext, 80, 80.2, 30.2)
	check(80.5, 80, MilestoneNext, 90, 90.1, 9.6)

	// Past the highest target.
	check(100, 99.5, MilestoneAtOrAboveHighestTarget, 99, 99.01, -0.99)
	check(1000, 100, MilestoneAtOrAboveHighestTarget, 99, 99.01, 99.01-1000)
}

func TestGoalSeekThresholds(t *testing.T) {
	g, err := GoalSeek(50, seq(1, 100), []float64{99, 80, 95, 90, 95})
	if err != nil {
		t.Fatal(err)
	}
	want := []PercentileValue{{80, 80.2}, {90, 90.1}, {95, 95.05}, {99, 99.01}}
	if len(g.Thresholds) != len(want) {
		t.Fatalf("want %v, got %v", want, g.Thresholds)
	}
	for i := range want {
		if g.Thresholds[i].P != want[i].P || !aeq(want[i].Value, g.Thresholds[i].Value) {
			t.Errorf("want %v, got %v", want[i], g.Thresholds[i])
		}
	}

	// Thresholds never decrease with the target.
	for name, s := range testPopulations() {
		var targets []float64
		for p := 0.0; p <= 100; p += 2.5 {
			targets = append(targets, p)
		}
		g, err := GoalSeek(0, s, targets)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		for i := 1; i < len(g.Thresholds); i++ {
			if g.Thresholds[i].Value < g.Thresholds[i-1].Value {
				t.Errorf("%s: threshold %v < %v", name, g.Thresholds[i], g.Thresholds[i-1])
			}
		}
	}
}

func TestGoalSeekAchieved(t *testing.T) {
	// The score sits in a run of ties, so its mean rank (50) is
	// below the 60th percentile even though it equals the
	// threshold value there.
	pop := Sample{Xs: []float64{1, 2, 2, 2, 2, 2, 2, 2, 2, 3}}
	g, err := GoalSeek(2, pop, []float64{60, 99})
	if err != nil {
		t.Fatal(err)
	}
	if g.Rank != 50 {
		t.Errorf("want rank 50, got %v", g.Rank)
	}
	m := g.Milestone
	if m.State != MilestoneAchieved || m.Target != 60 || m.Threshold != 2 || m.Gap != 0 {
		t.Errorf("want achieved 60@2, got %+v", m)
	}
}

func TestGoalSeekAboveHighestThreshold(t *testing.T) {
	check := func(score float64, pop Sample, targets []float64, wrank, wtarget, wthreshold float64) {
		t.Helper()
		g, err := GoalSeek(score, pop, targets)
		if err != nil {
			t.Fatal(err)
		}
		if !aeq(wrank, g.Rank) {
			t.Errorf("score %v: want rank %v, got %v", score, wrank, g.Rank)
		}
		m := g.Milestone
		if m.State != MilestoneAtOrAboveHighestTarget || m.Target != wtarget || !aeq(wthreshold, m.Threshold) || !aeq(wthreshold-score, m.Gap) {
			t.Errorf("score %v: want at/above highest target %v@%v, got %+v", score, wtarget, wthreshold, m)
		}
	}

	// The rank stays below the highest target, but the score is
	// already past its threshold.
	check(49.8, Sample{Xs: []float64{10, 20, 30, 40, 50}}, DefaultTargets, 80, 99, 49.6)
	check(0.995, Sample{Xs: []float64{0, 1}}, []float64{99}, 50, 99, 0.99)

	// Equal to the highest threshold is not past it.
	pop := Sample{Xs: []float64{10, 20, 30, 40, 50}}
	g, err := GoalSeek(0, pop, DefaultTargets)
	if err != nil {
		t.Fatal(err)
	}
	top := g.Thresholds[len(g.Thresholds)-1].Value
	if g, err = GoalSeek(top, pop, DefaultTargets); err != nil {
		t.Fatal(err)
	}
	if g.Milestone.State != MilestoneAchieved || g.Milestone.Target != 90 {
		t.Errorf("score %v at the highest threshold: want achieved 90, got %+v", top, g.Milestone)
	}
}

func TestGoalSeekPolicy(t *testing.T) {
	pop := Sample{Xs: []float64{1, 2, 2, 2, 3}}
	g, err := GoalSeekPolicy(2, pop, []float64{50, 90}, Weak)
	if err != nil {
		t.Fatal(err)
	}
	if g.Rank != 80 || g.Policy != Weak {
		t.Errorf("want weak rank 80, got %v (%v)", g.Rank, g.Policy)
	}
	if g.Milestone.Target != 90 || g.Milestone.State != MilestoneNext {
		t.Errorf("want next milestone 90, got %+v", g.Milestone)
	}
	if _, err := GoalSeekPolicy(2, pop, []float64{50}, TiePolicy(9)); !errors.Is(err, ErrInvalidTiePolicy) {
		t.Errorf("want ErrInvalidTiePolicy, got %v", err)
	}
}

func TestGoalSeekErrors(t *testing.T) {
	pop := seq(1, 10)
	if _, err := GoalSeek(1, Sample{}, DefaultTargets); !errors.Is(err, ErrEmptyPopulation) {
		t.Errorf("want ErrEmptyPopulation, got %v", err)
	}
	for _, targets := range [][]float64{nil, {}, {-0.1}, {80, 100.5}, {math.NaN()}} {
		if _, err := GoalSeek(1, pop, targets); !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("targets %v: want ErrInvalidTarget, got %v", targets, err)
		}
	}
	if _, err := GoalSeek(math.NaN(), pop, DefaultTargets); !errors.Is(err, ErrInvalidScore) {
		t.Errorf("want ErrInvalidScore, got %v", err)
	}
}
