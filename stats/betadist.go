// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distcalc/distcalc/mathx"
)

// BetaDist is a beta distribution on [0, 1].
type BetaDist struct {
	// Alpha and Beta are the shape parameters. Both must be > 0.
	Alpha, Beta float64
}

func (d BetaDist) Valid() bool {
	return mathx.IsFinite(d.Alpha) && d.Alpha > 0 &&
		mathx.IsFinite(d.Beta) && d.Beta > 0
}

// PDF returns the density of d at x. At the endpoints of [0, 1] the
// density is the one-sided limit: +Inf if the shape parameter of
// that endpoint is below 1, the other shape parameter if it is 1,
// and 0 otherwise.
func (d BetaDist) PDF(x float64) float64 {
	switch {
	case !d.Valid() || math.IsNaN(x):
		return nan
	case x < 0 || x > 1:
		return 0
	case x == 0:
		return betaEdge(d.Alpha, d.Beta)
	case x == 1:
		return betaEdge(d.Beta, d.Alpha)
	}
	lp := (d.Alpha-1)*math.Log(x) + (d.Beta-1)*math.Log1p(-x) - mathx.Lbeta(d.Alpha, d.Beta)
	return mathx.SafeExp(lp)
}

// betaEdge returns the limit of the beta density at an endpoint.
// near is the shape parameter whose exponent vanishes there.
func betaEdge(near, other float64) float64 {
	switch {
	case near < 1:
		return inf
	case near == 1:
		return other
	}
	return 0
}

func (d BetaDist) CDF(x float64) float64 {
	if !d.Valid() || math.IsNaN(x) {
		return nan
	}
	return mathx.BetaInc(x, d.Alpha, d.Beta)
}

func (d BetaDist) Bounds() (float64, float64) {
	return 0, 1
}

func (d BetaDist) Mean() float64 {
	return d.Alpha / (d.Alpha + d.Beta)
}

func (d BetaDist) Variance() float64 {
	s := d.Alpha + d.Beta
	return d.Alpha * d.Beta / (s * s * (s + 1))
}
