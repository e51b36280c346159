// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distcalc/distcalc/mathx"
)

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

func (d BinomialDist) Valid() bool {
	return d.N >= 0 && mathx.IsProbability(d.P)
}

// PMF is the probability of getting exactly k successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) PMF(k float64) float64 {
	if !d.Valid() {
		return nan
	}
	k, ok, isNaN := discreteArg(k)
	if isNaN {
		return nan
	} else if !ok || k < 0 || k > float64(d.N) {
		return 0
	}
	return d.pmf(int(k))
}

func (d BinomialDist) pmf(k int) float64 {
	switch d.P {
	case 0:
		if k == 0 {
			return 1
		}
		return 0
	case 1:
		if k == d.N {
			return 1
		}
		return 0
	}
	return math.Exp(mathx.Lchoose(d.N, k) + float64(k)*math.Log(d.P) + float64(d.N-k)*math.Log1p(-d.P))
}

// CDF is the probability of getting int(k) or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
//
// For large N with P away from 0 and 1 this uses the continuity
// corrected normal approximation. Otherwise it sums the PMF over the
// tail on k's side of the mode.
func (d BinomialDist) CDF(k float64) float64 {
	if !d.Valid() || math.IsNaN(k) {
		return nan
	}
	k = math.Floor(k)
	if k < 0 {
		return 0
	} else if k >= float64(d.N) {
		return 1
	}

	if d.useNormalApprox() {
		return d.NormalApprox().CDF(k + 0.5)
	}

	mode := clampInt(math.Floor(float64(d.N+1)*d.P), 0, d.N)
	return unimodalCDF(d.pmf, int(k), mode, 0, d.N)
}

func (d BinomialDist) useNormalApprox() bool {
	n := float64(d.N)
	return d.N >= 30 && n*d.P*(1-d.P) >= 9 && n*d.P >= 5 && n*(1-d.P) >= 5
}

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d BinomialDist) Step() float64 {
	return 1
}

func (d BinomialDist) Mean() float64 {
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() NormalDist {
	return NormalDist{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance())}
}
