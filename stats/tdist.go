// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distcalc/distcalc/mathx"
)

// TDist is a Student's t-distribution with V degrees of freedom.
type TDist struct {
	V float64
}

// tNormalDF is the degrees of freedom above which the t CDF is
// approximated by the standard normal CDF.
const tNormalDF = 100

func (t TDist) Valid() bool {
	return mathx.IsFinite(t.V) && t.V > 0
}

func (t TDist) PDF(x float64) float64 {
	switch {
	case !t.Valid() || math.IsNaN(x):
		return nan
	case math.IsInf(x, 0):
		return 0
	}
	lp := mathx.Lgamma((t.V+1)/2) - mathx.Lgamma(t.V/2) - math.Log(t.V*math.Pi)/2 -
		(t.V+1)/2*math.Log1p(x*x/t.V)
	return math.Exp(lp)
}

func (t TDist) CDF(x float64) float64 {
	switch {
	case !t.Valid() || math.IsNaN(x):
		return nan
	case x == 0:
		return 0.5
	case math.IsInf(x, -1):
		return 0
	case math.IsInf(x, 1):
		return 1
	case t.V > tNormalDF:
		return StdNormal.CDF(x)
	}
	tail := 0.5 * mathx.BetaInc(t.V/(t.V+x*x), t.V/2, 0.5)
	if x > 0 {
		return 1 - tail
	}
	return tail
}

func (t TDist) Bounds() (float64, float64) {
	// The tails decay like |x|^(-V-1).
	b := 40.0
	if t.V < 8 {
		b = math.Pow(10, 16/(t.V+1))
	}
	return -b, b
}
