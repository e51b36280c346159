// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distcalc/distcalc/mathx"
)

// GeometricDist is the distribution of the number of Bernoulli
// trials up to and including the first success. Its support is
// k >= 1.
type GeometricDist struct {
	// P is the probability of success in each trial. 0 < P <= 1.
	P float64
}

func (d GeometricDist) Valid() bool {
	return mathx.IsFinite(d.P) && d.P > 0 && d.P <= 1
}

func (d GeometricDist) PMF(k float64) float64 {
	if !d.Valid() {
		return nan
	}
	k, ok, isNaN := discreteArg(k)
	if isNaN {
		return nan
	} else if !ok || k < 1 {
		return 0
	}
	if d.P == 1 {
		if k == 1 {
			return 1
		}
		return 0
	}
	return d.P * math.Exp((k-1)*math.Log1p(-d.P))
}

func (d GeometricDist) CDF(k float64) float64 {
	if !d.Valid() || math.IsNaN(k) {
		return nan
	}
	k = math.Floor(k)
	switch {
	case k < 1:
		return 0
	case d.P == 1 || math.IsInf(k, 1):
		return 1
	}
	return -math.Expm1(k * math.Log1p(-d.P))
}

func (d GeometricDist) Bounds() (float64, float64) {
	return 1, math.Max(1, math.Ceil(-tailLog/math.Log1p(-d.P)))
}

func (d GeometricDist) Step() float64 {
	return 1
}

func (d GeometricDist) Mean() float64 {
	return 1 / d.P
}

func (d GeometricDist) Variance() float64 {
	return (1 - d.P) / (d.P * d.P)
}
