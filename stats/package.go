// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements the probability density, mass and
// cumulative distribution functions of common distributions.
//
// Each distribution is a small value type. Methods of a distribution
// whose parameters are outside its mathematical domain (see Valid)
// return NaN.
package stats // import "github.com/distcalc/distcalc/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

const (
	// maxSumTerms bounds the number of terms added by any
	// discrete CDF summation.
	maxSumTerms = 1 << 20

	// sumTolerance ends a discrete CDF summation once the terms
	// are past the mode and fall below it.
	sumTolerance = 1e-15

	// tailLog is the log of the tail mass left outside Bounds.
	tailLog = 37
)

// discreteArg classifies the argument of a PMF. It returns the
// integer value of k and ok=true if k is an integer, and otherwise
// reports ok=false. NaN is reported through isNaN.
func discreteArg(k float64) (ki float64, ok, isNaN bool) {
	if math.IsNaN(k) {
		return 0, false, true
	}
	if math.IsInf(k, 0) || math.Floor(k) != k {
		return 0, false, false
	}
	return k, true, false
}

// unimodalCDF returns P(X <= k) for a unimodal distribution on the
// integers [lo, hi] with mass function pmf and mode, where
// lo <= k < hi.
//
// It sums the tail on k's side of the mode, starting next to k and
// moving away from the mode so the terms decrease. Below the mode
// that is the CDF itself. Above it, it is the upper tail and the
// result is 1 minus the tail.
func unimodalCDF(pmf func(int) float64, k, mode, lo, hi int) float64 {
	if k <= mode {
		return math.Min(sumTail(pmf, k, -1, lo, hi), 1)
	}
	return math.Max(1-sumTail(pmf, k+1, 1, lo, hi), 0)
}

// sumTail adds pmf(i) for i = start, start+step, ... while i stays
// in [lo, hi]. The terms must not increase along the way. The sum
// stops once a term is at most sumTolerance times the total or after
// maxSumTerms terms.
func sumTail(pmf func(int) float64, start, step, lo, hi int) float64 {
	sum := 0.0
	for i, n := start, 0; lo <= i && i <= hi && n < maxSumTerms; i, n = i+step, n+1 {
		term := pmf(i)
		sum += term
		if term <= sumTolerance*sum {
			break
		}
	}
	return sum
}

// clampInt converts the integral value x to an int, saturating at
// the bounds of [lo, hi].
func clampInt(x float64, lo, hi int) int {
	if x <= float64(lo) {
		return lo
	}
	if x >= float64(hi) {
		return hi
	}
	return int(x)
}

func maxint(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minint(a, b int) int {
	if a < b {
		return a
	}
	return b
}
