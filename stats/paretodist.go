// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distcalc/distcalc/mathx"
)

// ParetoDist is a Pareto (type I) distribution with minimum Xm and
// tail index Alpha.
type ParetoDist struct {
	Xm, Alpha float64
}

func (d ParetoDist) Valid() bool {
	return mathx.IsFinite(d.Xm) && d.Xm > 0 &&
		mathx.IsFinite(d.Alpha) && d.Alpha > 0
}

func (d ParetoDist) PDF(x float64) float64 {
	switch {
	case !d.Valid() || math.IsNaN(x):
		return nan
	case x < d.Xm || math.IsInf(x, 1):
		return 0
	}
	return mathx.SafeExp(math.Log(d.Alpha) + d.Alpha*math.Log(d.Xm) - (d.Alpha+1)*math.Log(x))
}

func (d ParetoDist) CDF(x float64) float64 {
	switch {
	case !d.Valid() || math.IsNaN(x):
		return nan
	case x <= d.Xm:
		return 0
	}
	return -math.Expm1(d.Alpha * math.Log(d.Xm/x))
}

func (d ParetoDist) Bounds() (float64, float64) {
	return d.Xm, d.Xm * math.Exp(tailLog/d.Alpha)
}

// Mean returns the mean of d, which is +Inf for Alpha <= 1.
func (d ParetoDist) Mean() float64 {
	if d.Alpha <= 1 {
		return inf
	}
	return d.Alpha * d.Xm / (d.Alpha - 1)
}
