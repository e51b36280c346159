// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distcalc/distcalc/mathx"
)

// FDist is an F-distribution with D1 numerator and D2 denominator
// degrees of freedom.
type FDist struct {
	D1, D2 float64
}

func (d FDist) Valid() bool {
	return mathx.IsFinite(d.D1) && d.D1 > 0 &&
		mathx.IsFinite(d.D2) && d.D2 > 0
}

func (d FDist) PDF(x float64) float64 {
	switch {
	case !d.Valid() || math.IsNaN(x):
		return nan
	case x < 0 || math.IsInf(x, 1):
		return 0
	case x == 0:
		switch {
		case d.D1 < 2:
			return inf
		case d.D1 == 2:
			return 1
		}
		return 0
	}
	d1x := d.D1 * x
	lp := (d.D1*math.Log(d1x)+d.D2*math.Log(d.D2)-(d.D1+d.D2)*math.Log(d1x+d.D2))/2 -
		math.Log(x) - mathx.Lbeta(d.D1/2, d.D2/2)
	return mathx.SafeExp(lp)
}

func (d FDist) CDF(x float64) float64 {
	switch {
	case !d.Valid() || math.IsNaN(x):
		return nan
	case x <= 0:
		return 0
	case math.IsInf(x, 1):
		return 1
	}
	d1x := d.D1 * x
	return mathx.BetaInc(d1x/(d1x+d.D2), d.D1/2, d.D2/2)
}

func (d FDist) Bounds() (float64, float64) {
	// The right tail decays like x^(-D2/2-1), so heavy tails
	// need a much larger window.
	hi := 100.0
	if d.D2 < 10 {
		hi = math.Pow(10, 16/(d.D2/2+1))
	}
	return 0, math.Max(hi, 10)
}

// Mean returns the mean of d, which is +Inf for D2 <= 2.
func (d FDist) Mean() float64 {
	if d.D2 <= 2 {
		return inf
	}
	return d.D2 / (d.D2 - 2)
}
