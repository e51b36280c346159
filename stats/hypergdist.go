// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distcalc/distcalc/mathx"
)

// HypergeometricDist is a hypergeometric distribution.
type HypergeometricDist struct {
	// N is the size of the population. N >= 1.
	N int

	// K is the number of successes in the population. 0 <= K <= N.
	K int

	// Draws is the number of draws from the population. This is
	// usually written "n", but is called Draws here because of
	// limitations on Go identifier naming. 0 <= Draws <= N.
	Draws int
}

func (d HypergeometricDist) Valid() bool {
	return d.N >= 1 && d.K >= 0 && d.K <= d.N && d.Draws >= 0 && d.Draws <= d.N
}

// PMF is the probability of getting exactly k successes in d.Draws
// draws without replacement from a population of size d.N that
// contains exactly d.K successes.
func (d HypergeometricDist) PMF(k float64) float64 {
	if !d.Valid() {
		return nan
	}
	k, ok, isNaN := discreteArg(k)
	if isNaN {
		return nan
	}
	l, h := d.bounds()
	if !ok || k < float64(l) || k > float64(h) {
		return 0
	}
	return d.pmf(int(k))
}

func (d HypergeometricDist) pmf(k int) float64 {
	return math.Exp(mathx.Lchoose(d.K, k) + mathx.Lchoose(d.N-d.K, d.Draws-k) - mathx.Lchoose(d.N, d.Draws))
}

// CDF is the probability of getting floor(k) or fewer successes in
// d.Draws draws without replacement from a population of size d.N
// that contains exactly d.K successes.
//
// CDF sums the PMF over the tail on k's side of the mode, so the
// number of terms grows with the standard deviation rather than
// with d.N.
func (d HypergeometricDist) CDF(k float64) float64 {
	if !d.Valid() || math.IsNaN(k) {
		return nan
	}
	k = math.Floor(k)
	l, h := d.bounds()
	if k < float64(l) {
		return 0
	} else if k >= float64(h) {
		return 1
	}
	mode := math.Floor(float64(d.Draws+1) * float64(d.K+1) / float64(d.N+2))
	return unimodalCDF(d.pmf, int(k), clampInt(mode, l, h), l, h)
}

func (d HypergeometricDist) bounds() (int, int) {
	return maxint(0, d.Draws+d.K-d.N), minint(d.Draws, d.K)
}

func (d HypergeometricDist) Bounds() (float64, float64) {
	l, h := d.bounds()
	return float64(l), float64(h)
}

func (d HypergeometricDist) Step() float64 {
	return 1
}

func (d HypergeometricDist) Mean() float64 {
	return float64(d.Draws) * float64(d.K) / float64(d.N)
}

func (d HypergeometricDist) Variance() float64 {
	n, k, draws := float64(d.N), float64(d.K), float64(d.Draws)
	if d.N == 1 {
		return 0
	}
	return draws * k * (n - k) * (n - draws) / (n * n * (n - 1))
}
