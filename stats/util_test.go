// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) || aeq(want, got) {
			continue
		}
		t.Errorf("want %s(%v)=%v, got %v", name, x, want, got)
	}
}

// seq returns the sample [lo, lo+1, ..., hi].
func seq(lo, hi int) Sample {
	var s Sample
	for i := lo; i <= hi; i++ {
		s.Xs = append(s.Xs, float64(i))
	}
	return s
}

// testPopulations returns a set of populations with varied sizes,
// shapes, and ties, for property tests.
func testPopulations() map[string]Sample {
	pops := map[string]Sample{
		"single":  {Xs: []float64{7}},
		"pair":    {Xs: []float64{3, -1}},
		"ties":    {Xs: []float64{1, 2, 2, 2, 3, 3, 9}},
		"allsame": {Xs: []float64{5, 5, 5, 5}},
		"seq100":  seq(1, 100),
	}
	// A deterministic skewed population with many repeated values.
	var skewed []float64
	for i := 0; i < 200; i++ {
		skewed = append(skewed, math.Floor(math.Exp(float64(i%37)/9)))
	}
	pops["skewed"] = Sample{Xs: skewed}
	return pops
}
