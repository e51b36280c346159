// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"math"

	"github.com/distcalc/distcalc/mathx"
	"github.com/distcalc/distcalc/stats"
)

// A Formula evaluates one family of distributions for parameters
// given as a vector.
//
// PDF and CDF return NaN if Validate(params) is false. For discrete
// families PDF is the probability mass function.
type Formula interface {
	PDF(x float64, params []float64) float64
	CDF(x float64, params []float64) float64

	// Validate reports whether params has the family's arity and
	// lies inside its mathematical domain.
	Validate(params []float64) bool
}

// continuous adapts a stats.Dist constructor to a Formula.
type continuous[D stats.Dist] struct {
	arity int
	build func(p []float64) (D, bool)
}

func (f continuous[D]) dist(params []float64) (d D, ok bool) {
	if len(params) != f.arity {
		return d, false
	}
	d, ok = f.build(params)
	return d, ok && d.Valid()
}

func (f continuous[D]) PDF(x float64, params []float64) float64 {
	d, ok := f.dist(params)
	if !ok {
		return math.NaN()
	}
	return d.PDF(x)
}

func (f continuous[D]) CDF(x float64, params []float64) float64 {
	d, ok := f.dist(params)
	if !ok {
		return math.NaN()
	}
	return d.CDF(x)
}

func (f continuous[D]) Validate(params []float64) bool {
	_, ok := f.dist(params)
	return ok
}

// discrete adapts a stats.DiscreteDist constructor to a Formula.
type discrete[D stats.DiscreteDist] struct {
	arity int
	build func(p []float64) (D, bool)
}

func (f discrete[D]) dist(params []float64) (d D, ok bool) {
	if len(params) != f.arity {
		return d, false
	}
	d, ok = f.build(params)
	return d, ok && d.Valid()
}

func (f discrete[D]) PDF(x float64, params []float64) float64 {
	d, ok := f.dist(params)
	if !ok {
		return math.NaN()
	}
	return d.PMF(x)
}

func (f discrete[D]) CDF(x float64, params []float64) float64 {
	d, ok := f.dist(params)
	if !ok {
		return math.NaN()
	}
	return d.CDF(x)
}

func (f discrete[D]) Validate(params []float64) bool {
	_, ok := f.dist(params)
	return ok
}

// maxIntParam bounds integer parameters so conversions to int
// cannot overflow.
const maxIntParam = math.MaxInt32

// intParam converts an integer-valued parameter to an int.
func intParam(v float64) (int, bool) {
	if !mathx.IsInteger(v) || math.Abs(v) > maxIntParam {
		return 0, false
	}
	return int(v), true
}

func intParams(vs ...float64) ([]int, bool) {
	out := make([]int, len(vs))
	for i, v := range vs {
		n, ok := intParam(v)
		if !ok {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}
