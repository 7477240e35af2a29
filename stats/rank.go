// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// TiePolicy selects how population values equal to a score count
// toward the score's percentile rank.
//
// The zero TiePolicy is invalid, so an unset policy is reported
// rather than silently defaulted.
type TiePolicy int

const (
	_ TiePolicy = iota

	// Strict counts only values strictly below the score.
	Strict

	// Weak counts values at or below the score.
	Weak

	// Mean averages the Strict and Weak counts. This treats ties
	// symmetrically and is the default.
	Mean
)

// DefaultTiePolicy is the policy used when none is specified.
const DefaultTiePolicy = Mean

var tiePolicyNames = map[TiePolicy]string{
	Strict: "strict",
	Weak:   "weak",
	Mean:   "mean",
}

func (p TiePolicy) String() string {
	if name, ok := tiePolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("TiePolicy(%d)", int(p))
}

// Valid reports whether p is one of Strict, Weak, or Mean.
func (p TiePolicy) Valid() bool {
	_, ok := tiePolicyNames[p]
	return ok
}

// ParseTiePolicy returns the TiePolicy named by s ("strict", "weak",
// or "mean", in any case).
func ParseTiePolicy(s string) (TiePolicy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, pname := range tiePolicyNames {
		if name == pname {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTiePolicy, s)
}

// PercentileRankResult is the percentile rank of a score within a
// population.
type PercentileRankResult struct {
	// N is the population size.
	N int

	// Score is the ranked score.
	Score float64

	// Below is the number of population values strictly less than
	// Score, and AtOrBelow is the number less than or equal to it.
	Below, AtOrBelow int

	// Rank is the percentile rank of Score in [0, 100] under
	// Policy.
	Rank float64

	Policy TiePolicy
}

// PercentileRank returns the percentile rank of score within
// population s.
//
// With lt values of s below score, le values at or below it, and n
// values in total, the rank is 100·lt/n under Strict, 100·le/n under
// Weak, and the average of the two under Mean. Hence for any score,
// the Strict rank ≤ the Mean rank ≤ the Weak rank.
//
// PercentileRank fails with ErrEmptyPopulation if s is empty,
// ErrInvalidTiePolicy if policy is not valid, and ErrInvalidScore if
// score is not finite.
func PercentileRank(score float64, s Sample, policy TiePolicy) (PercentileRankResult, error) {
	if !policy.Valid() {
		return PercentileRankResult{}, fmt.Errorf("%w: %v", ErrInvalidTiePolicy, policy)
	}
	if err := checkScore(score); err != nil {
		return PercentileRankResult{}, err
	}
	if len(s.Xs) == 0 {
		return PercentileRankResult{}, ErrEmptyPopulation
	}
	return rankSorted(score, s.sorted(), policy), nil
}

// rankSorted computes the rank of score in sorted sample s. policy
// must be valid and s must be non-empty.
func rankSorted(score float64, s Sample, policy TiePolicy) PercentileRankResult {
	xs := s.Xs
	lt := sort.SearchFloat64s(xs, score)
	le := lt + sort.Search(len(xs)-lt, func(i int) bool { return xs[lt+i] > score })

	n := float64(len(xs))
	var rank float64
	switch policy {
	case Strict:
		rank = 100 * float64(lt) / n
	case Weak:
		rank = 100 * float64(le) / n
	case Mean:
		rank = 100 * (float64(lt+le) / 2) / n
	default:
		panic("unknown tie policy " + policy.String())
	}
	return PercentileRankResult{
		N:         len(xs),
		Score:     score,
		Below:     lt,
		AtOrBelow: le,
		Rank:      rank,
		Policy:    policy,
	}
}

func checkScore(score float64) error {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScore, score)
	}
	return nil
}
