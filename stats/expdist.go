// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distcalc/distcalc/mathx"
)

// ExponentialDist is an exponential distribution with rate Rate.
type ExponentialDist struct {
	// Rate is the event rate λ. Rate > 0.
	Rate float64
}

func (d ExponentialDist) Valid() bool {
	return mathx.IsFinite(d.Rate) && d.Rate > 0
}

func (d ExponentialDist) PDF(x float64) float64 {
	switch {
	case !d.Valid() || math.IsNaN(x):
		return nan
	case x < 0 || math.IsInf(x, 1):
		return 0
	}
	return d.Rate * math.Exp(-d.Rate*x)
}

func (d ExponentialDist) CDF(x float64) float64 {
	switch {
	case !d.Valid() || math.IsNaN(x):
		return nan
	case x <= 0:
		return 0
	}
	return -math.Expm1(-d.Rate * x)
}

// InvCDF returns the p-quantile of d.
func (d ExponentialDist) InvCDF(p float64) float64 {
	if !d.Valid() || !(p >= 0 && p < 1) {
		return nan
	}
	return -math.Log1p(-p) / d.Rate
}

func (d ExponentialDist) Bounds() (float64, float64) {
	return 0, tailLog / d.Rate
}

func (d ExponentialDist) Mean() float64 {
	return 1 / d.Rate
}

func (d ExponentialDist) Variance() float64 {
	return 1 / (d.Rate * d.Rate)
}
