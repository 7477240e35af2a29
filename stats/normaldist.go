// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/stat/distuv"

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = NormalDist{0, 1}

func (n NormalDist) CDF(x float64) float64 {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma}.CDF(x)
}
