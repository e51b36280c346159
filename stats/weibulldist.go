// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distcalc/distcalc/mathx"
)

// WeibullDist is a Weibull distribution with shape K and scale
// Lambda.
type WeibullDist struct {
	K, Lambda float64
}

func (d WeibullDist) Valid() bool {
	return mathx.IsFinite(d.K) && d.K > 0 &&
		mathx.IsFinite(d.Lambda) && d.Lambda > 0
}

func (d WeibullDist) PDF(x float64) float64 {
	switch {
	case !d.Valid() || math.IsNaN(x):
		return nan
	case x < 0 || math.IsInf(x, 1):
		return 0
	case x == 0:
		switch {
		case d.K == 1:
			return 1 / d.Lambda
		case d.K > 1:
			return 0
		}
		return inf
	}
	z := x / d.Lambda
	zk := math.Pow(z, d.K)
	return mathx.SafeExp(math.Log(d.K/d.Lambda) + (d.K-1)*math.Log(z) - zk)
}

func (d WeibullDist) CDF(x float64) float64 {
	switch {
	case !d.Valid() || math.IsNaN(x):
		return nan
	case x <= 0:
		return 0
	}
	return -math.Expm1(-math.Pow(x/d.Lambda, d.K))
}

func (d WeibullDist) Bounds() (float64, float64) {
	return 0, d.Lambda * math.Pow(tailLog, 1/d.K)
}

func (d WeibullDist) Mean() float64 {
	return d.Lambda * mathx.Gamma(1+1/d.K)
}

// RayleighDist is a Rayleigh distribution with scale Sigma.
type RayleighDist struct {
	Sigma float64
}

func (d RayleighDist) Valid() bool {
	return mathx.IsFinite(d.Sigma) && d.Sigma > 0
}

func (d RayleighDist) PDF(x float64) float64 {
	switch {
	case !d.Valid() || math.IsNaN(x):
		return nan
	case x < 0 || math.IsInf(x, 1):
		return 0
	}
	s2 := d.Sigma * d.Sigma
	return x / s2 * math.Exp(-x*x/(2*s2))
}

func (d RayleighDist) CDF(x float64) float64 {
	switch {
	case !d.Valid() || math.IsNaN(x):
		return nan
	case x <= 0:
		return 0
	}
	return -math.Expm1(-x * x / (2 * d.Sigma * d.Sigma))
}

func (d RayleighDist) Bounds() (float64, float64) {
	return 0, d.Sigma * math.Sqrt(2*tailLog)
}

func (d RayleighDist) Mean() float64 {
	return d.Sigma * math.Sqrt(math.Pi/2)
}

func (d RayleighDist) Variance() float64 {
	return (4 - math.Pi) / 2 * d.Sigma * d.Sigma
}
