// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distcalc/distcalc/mathx"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1)
var StdNormal = NormalDist{0, 1}

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

func (d NormalDist) Valid() bool {
	return mathx.IsFinite(d.Mu) && mathx.IsFinite(d.Sigma) && d.Sigma > 0
}

func (d NormalDist) PDF(x float64) float64 {
	if !d.Valid() || math.IsNaN(x) {
		return nan
	}
	z := (x - d.Mu) / d.Sigma
	return math.Exp(-z*z/2) * invSqrt2Pi / d.Sigma
}

func (d NormalDist) CDF(x float64) float64 {
	switch {
	case !d.Valid() || math.IsNaN(x):
		return nan
	case math.IsInf(x, -1):
		return 0
	case math.IsInf(x, 1):
		return 1
	}
	return (1 + mathx.Erf((x-d.Mu)/(d.Sigma*math.Sqrt2))) / 2
}

// InvCDF returns the value x such that d.CDF(x) = p. It returns NaN
// unless 0 < p < 1.
func (d NormalDist) InvCDF(p float64) float64 {
	if !d.Valid() {
		return nan
	}
	return d.Mu + d.Sigma*mathx.NormalQuantile(p)
}

func (d NormalDist) Bounds() (float64, float64) {
	const stddevs = 8
	return d.Mu - stddevs*d.Sigma, d.Mu + stddevs*d.Sigma
}

func (d NormalDist) Mean() float64 {
	return d.Mu
}

func (d NormalDist) Variance() float64 {
	return d.Sigma * d.Sigma
}
