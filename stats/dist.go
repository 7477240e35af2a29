// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A Dist is a continuous statistical distribution that a sample can
// be compared against.
type Dist interface {
	// CDF returns the value of the cumulative distribution
	// function for this distribution at x.
	CDF(x float64) float64
}
