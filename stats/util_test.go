// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"testing"

	"gonum.org/v1/gonum/integrate/quad"
)

func aeq(expect, got float64) bool {
	if expect == got {
		return true
	}
	return math.Abs(expect-got) < 0.00001
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) || aeq(want, got) {
			continue
		}
		t.Errorf("%s(%v) = %v; want %v", name, x, got, want)
	}
}

// testDiscreteCDF checks that dist.CDF agrees with the running sum
// of dist.PMF over dist's bounds, both at and between points of the
// support.
func testDiscreteCDF(t *testing.T, name string, dist DiscreteDist) {
	t.Helper()
	l, h := dist.Bounds()
	s := dist.Step()
	want := map[float64]float64{l - 0.1: 0, h: 1}
	sum := 0.0
	for x := l; x < h; x += s {
		sum += dist.PMF(x)
		want[x] = sum
		want[x+s/2] = sum
	}
	testFunc(t, name, dist.CDF, want)
}

// testMonotoneCDF checks that CDF is non-decreasing over n points of
// [lo, hi] and reaches 0 and 1 at the infinities.
func testMonotoneCDF(t *testing.T, name string, cdf func(float64) float64, lo, hi float64) {
	t.Helper()
	const n = 2000
	prev := cdf(math.Inf(-1))
	if math.Abs(prev) > 1e-9 {
		t.Errorf("%s(-Inf) = %v; want 0", name, prev)
	}
	for i := 0; i <= n; i++ {
		x := lo + (hi-lo)*float64(i)/n
		y := cdf(x)
		if y < prev {
			t.Errorf("%s not monotone: %s(%v) = %v < %v", name, name, x, y, prev)
			return
		}
		if y < 0 || y > 1 {
			t.Errorf("%s(%v) = %v; want value in [0, 1]", name, x, y)
		}
		prev = y
	}
	if y := cdf(math.Inf(1)); math.Abs(y-1) > 1e-9 {
		t.Errorf("%s(+Inf) = %v; want 1", name, y)
	}
}

// integrate returns the integral of f over [lo, hi] computed with a
// composite Gauss-Legendre rule.
func integrate(f func(float64) float64, lo, hi float64) float64 {
	const (
		panels = 1000
		points = 20
	)
	w := (hi - lo) / panels
	sum := 0.0
	for i := 0; i < panels; i++ {
		a := lo + float64(i)*w
		sum += quad.Fixed(f, a, a+w, points, nil, 0)
	}
	return sum
}
