// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distcalc/distcalc/mathx"
)

// GammaDist is a gamma distribution in the shape/scale
// parameterization.
type GammaDist struct {
	// Shape is the shape parameter k. Shape > 0.
	Shape float64

	// Scale is the scale parameter θ. Scale > 0.
	Scale float64
}

func (d GammaDist) Valid() bool {
	return mathx.IsFinite(d.Shape) && d.Shape > 0 &&
		mathx.IsFinite(d.Scale) && d.Scale > 0
}

func (d GammaDist) PDF(x float64) float64 {
	switch {
	case !d.Valid() || math.IsNaN(x):
		return nan
	case x < 0 || math.IsInf(x, 1):
		return 0
	case x == 0:
		switch {
		case d.Shape == 1:
			return 1 / d.Scale
		case d.Shape > 1:
			return 0
		}
		return inf
	}
	return mathx.SafeExp((d.Shape-1)*math.Log(x) - x/d.Scale -
		mathx.Lgamma(d.Shape) - d.Shape*math.Log(d.Scale))
}

func (d GammaDist) CDF(x float64) float64 {
	switch {
	case !d.Valid() || math.IsNaN(x):
		return nan
	case x <= 0:
		return 0
	}
	return mathx.GammaIncP(d.Shape, x/d.Scale)
}

func (d GammaDist) Bounds() (float64, float64) {
	return 0, d.Scale * (d.Shape + 50*math.Max(1, math.Sqrt(d.Shape)))
}

func (d GammaDist) Mean() float64 {
	return d.Shape * d.Scale
}

func (d GammaDist) Variance() float64 {
	return d.Shape * d.Scale * d.Scale
}

// ChiSquaredDist is a χ² distribution with K degrees of freedom.
//
// It is the gamma distribution with shape K/2 and scale 2.
type ChiSquaredDist struct {
	// K is the degrees of freedom. K > 0.
	K float64
}

func (d ChiSquaredDist) gamma() GammaDist {
	return GammaDist{Shape: d.K / 2, Scale: 2}
}

func (d ChiSquaredDist) Valid() bool {
	return d.gamma().Valid()
}

// PDF returns the density of d at x. At x = 0 it is +Inf for K < 2,
// 0.5 for K = 2 and 0 for K > 2.
func (d ChiSquaredDist) PDF(x float64) float64 {
	return d.gamma().PDF(x)
}

func (d ChiSquaredDist) CDF(x float64) float64 {
	return d.gamma().CDF(x)
}

func (d ChiSquaredDist) Bounds() (float64, float64) {
	return d.gamma().Bounds()
}

func (d ChiSquaredDist) Mean() float64 {
	return d.K
}

func (d ChiSquaredDist) Variance() float64 {
	return 2 * d.K
}
