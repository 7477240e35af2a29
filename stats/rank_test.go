// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"testing"
)

func TestPercentileRank(t *testing.T) {
	s := Sample{Xs: []float64{50, 10, 40, 30, 20}}
	check := func(score float64, policy TiePolicy, want float64) {
		t.Helper()
		res, err := PercentileRank(score, s, policy)
		if err != nil {
			t.Fatal(err)
		}
		if !aeq(want, res.Rank) || res.Policy != policy || res.N != 5 || res.Score != score {
			t.Errorf("rank of %v (%v): want %v, got %+v", score, policy, want, res)
		}
	}
	check(30, Strict, 40)
	check(30, Weak, 60)
	check(30, Mean, 50)
	check(5, Mean, 0)
	check(55, Mean, 100)
	check(35, Strict, 60)
	check(35, Weak, 60)
	check(35, Mean, 60)

	// Ties.
	s = Sample{Xs: []float64{1, 2, 2, 2, 3}}
	check(2, Strict, 20)
	check(2, Weak, 80)
	check(2, Mean, 50)

	res, _ := PercentileRank(2, s, Mean)
	if res.Below != 1 || res.AtOrBelow != 4 {
		t.Errorf("want counts 1/4, got %d/%d", res.Below, res.AtOrBelow)
	}
}

func TestPercentileRankErrors(t *testing.T) {
	s := Sample{Xs: []float64{1, 2, 3}}
	if _, err := PercentileRank(1, Sample{}, Mean); !errors.Is(err, ErrEmptyPopulation) {
		t.Errorf("want ErrEmptyPopulation, got %v", err)
	}
	for _, policy := range []TiePolicy{0, -1, Mean + 1} {
		if _, err := PercentileRank(1, s, policy); !errors.Is(err, ErrInvalidTiePolicy) {
			t.Errorf("policy %v: want ErrInvalidTiePolicy, got %v", policy, err)
		}
	}
	for _, score := range []float64{nan, inf, -inf} {
		if _, err := PercentileRank(score, s, Mean); !errors.Is(err, ErrInvalidScore) {
			t.Errorf("score %v: want ErrInvalidScore, got %v", score, err)
		}
	}
}

func TestPercentileRankOrdering(t *testing.T) {
	for name, s := range testPopulations() {
		lo, hi := s.Bounds()
		scores := append([]float64{lo - 1, hi + 1}, s.Xs...)
		for _, x := range s.Xs {
			scores = append(scores, x+0.5, x-0.5)
		}
		for _, score := range scores {
			strict, _ := PercentileRank(score, s, Strict)
			mean, _ := PercentileRank(score, s, Mean)
			weak, _ := PercentileRank(score, s, Weak)
			if !(strict.Rank <= mean.Rank && mean.Rank <= weak.Rank) {
				t.Errorf("%s: score %v: strict %v, mean %v, weak %v", name, score, strict.Rank, mean.Rank, weak.Rank)
			}
		}

		if r, _ := PercentileRank(hi, s, Weak); r.Rank != 100 {
			t.Errorf("%s: weak rank of max = %v", name, r.Rank)
		}
		if r, _ := PercentileRank(lo, s, Strict); r.Rank != 0 {
			t.Errorf("%s: strict rank of min = %v", name, r.Rank)
		}
	}
}

func TestPercentileRankRoundTrip(t *testing.T) {
	// At percentiles that land exactly on an order statistic,
	// the threshold's weak rank is at least p and its strict rank
	// at most p. Between order statistics, interpolated thresholds
	// can rank on either side of p.
	for name, s := range testPopulations() {
		n := s.Len()
		if n < 2 {
			continue
		}
		sorted := s.Copy().Sort()
		for i := 0; i < n; i++ {
			p := 100 * float64(i) / float64(n-1)
			th := sorted.Xs[i]
			if got := s.Percentile(p); !aeq(th, got) {
				t.Errorf("%s: threshold(%v) = %v, want order statistic %v", name, p, got, th)
			}
			weak, _ := PercentileRank(th, s, Weak)
			strict, _ := PercentileRank(th, s, Strict)
			if weak.Rank < p-1e-9 {
				t.Errorf("%s: weak rank of threshold(%v)=%v is %v", name, p, th, weak.Rank)
			}
			if strict.Rank > p+1e-9 {
				t.Errorf("%s: strict rank of threshold(%v)=%v is %v", name, p, th, strict.Rank)
			}
		}
	}
}

func TestParseTiePolicy(t *testing.T) {
	for in, want := range map[string]TiePolicy{
		"strict": Strict,
		"Weak":   Weak,
		" MEAN ": Mean,
	} {
		got, err := ParseTiePolicy(in)
		if err != nil || got != want {
			t.Errorf("ParseTiePolicy(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	for _, in := range []string{"", "average", "rank"} {
		if _, err := ParseTiePolicy(in); !errors.Is(err, ErrInvalidTiePolicy) {
			t.Errorf("ParseTiePolicy(%q): want ErrInvalidTiePolicy, got %v", in, err)
		}
	}
	for _, p := range []TiePolicy{Strict, Weak, Mean} {
		if got, err := ParseTiePolicy(p.String()); err != nil || got != p {
			t.Errorf("ParseTiePolicy(%v.String()) = %v, %v", p, got, err)
		}
	}
	if s := TiePolicy(0).String(); s != "TiePolicy(0)" {
		t.Errorf("want TiePolicy(0), got %s", s)
	}
}
