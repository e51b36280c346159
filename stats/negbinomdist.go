// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distcalc/distcalc/mathx"
)

// NegBinomialDist is the distribution of the number of failures
// before the R'th success in independent Bernoulli trials. Its
// support is k >= 0.
type NegBinomialDist struct {
	// R is the number of successes. R >= 1.
	R int

	// P is the probability of success in each trial. 0 < P <= 1.
	P float64
}

func (d NegBinomialDist) Valid() bool {
	return d.R >= 1 && mathx.IsFinite(d.P) && d.P > 0 && d.P <= 1
}

func (d NegBinomialDist) PMF(k float64) float64 {
	if !d.Valid() {
		return nan
	}
	k, ok, isNaN := discreteArg(k)
	if isNaN {
		return nan
	} else if !ok || k < 0 {
		return 0
	}
	if d.P == 1 {
		if k == 0 {
			return 1
		}
		return 0
	}
	if k > math.MaxInt32 {
		return 0
	}
	ki := int(k)
	return mathx.SafeExp(mathx.Lchoose(ki+d.R-1, ki) +
		float64(d.R)*math.Log(d.P) + k*math.Log1p(-d.P))
}

// CDF is the probability of at most floor(k) failures before the
// R'th success.
func (d NegBinomialDist) CDF(k float64) float64 {
	if !d.Valid() || math.IsNaN(k) {
		return nan
	}
	k = math.Floor(k)
	switch {
	case k < 0:
		return 0
	case d.P == 1 || math.IsInf(k, 1):
		return 1
	}

	// Terms follow the recurrence
	//   f(i+1) = f(i) * (i+R)/(i+1) * (1-P)
	// starting from f(0) = P^R.
	logTerm := float64(d.R) * math.Log(d.P)
	if logTerm < -700 || k >= maxSumTerms {
		// P^R underflows, so the recurrence would never leave
		// zero. Use the closed form instead.
		return mathx.BetaInc(d.P, float64(d.R), k+1)
	}
	q := 1 - d.P
	mode := float64(d.R-1) * q / d.P
	term := math.Exp(logTerm)
	sum := term
	ki := int(k)
	for i := 0; i < ki; i++ {
		term *= float64(i+d.R) / float64(i+1) * q
		sum += term
		if float64(i) > mode && term < sumTolerance {
			break
		}
	}
	return math.Min(sum, 1)
}

func (d NegBinomialDist) Bounds() (float64, float64) {
	return 0, math.Ceil(d.Mean() + 20*math.Sqrt(d.Variance()) + tailLog)
}

func (d NegBinomialDist) Step() float64 {
	return 1
}

func (d NegBinomialDist) Mean() float64 {
	return float64(d.R) * (1 - d.P) / d.P
}

func (d NegBinomialDist) Variance() float64 {
	return float64(d.R) * (1 - d.P) / (d.P * d.P)
}
