// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distcalc/distcalc/mathx"
)

// UniformDist is a continuous uniform distribution on [A, B].
type UniformDist struct {
	A, B float64
}

func (d UniformDist) Valid() bool {
	return mathx.IsFinite(d.A) && mathx.IsFinite(d.B) && d.A < d.B
}

func (d UniformDist) PDF(x float64) float64 {
	switch {
	case !d.Valid() || math.IsNaN(x):
		return nan
	case x < d.A || x > d.B:
		return 0
	}
	return 1 / (d.B - d.A)
}

func (d UniformDist) CDF(x float64) float64 {
	switch {
	case !d.Valid() || math.IsNaN(x):
		return nan
	case x <= d.A:
		return 0
	case x >= d.B:
		return 1
	}
	return (x - d.A) / (d.B - d.A)
}

func (d UniformDist) Bounds() (float64, float64) {
	return d.A, d.B
}

func (d UniformDist) Mean() float64 {
	return (d.A + d.B) / 2
}

func (d UniformDist) Variance() float64 {
	w := d.B - d.A
	return w * w / 12
}
