// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distcalc/distcalc/mathx"
)

// PoissonDist is a Poisson distribution with mean Lambda.
type PoissonDist struct {
	// Lambda is the expected number of events. Lambda > 0.
	Lambda float64
}

// poissonNormalLambda is the mean at or above which the Poisson CDF
// is approximated by a continuity corrected normal CDF.
const poissonNormalLambda = 30

func (d PoissonDist) Valid() bool {
	return mathx.IsFinite(d.Lambda) && d.Lambda > 0
}

func (d PoissonDist) PMF(k float64) float64 {
	if !d.Valid() {
		return nan
	}
	k, ok, isNaN := discreteArg(k)
	if isNaN {
		return nan
	} else if !ok || k < 0 {
		return 0
	}
	if k > math.MaxInt32 {
		return 0
	}
	return mathx.SafeExp(k*math.Log(d.Lambda) - d.Lambda - mathx.Lfactorial(int(k)))
}

// CDF is the probability of at most floor(k) events.
func (d PoissonDist) CDF(k float64) float64 {
	if !d.Valid() || math.IsNaN(k) {
		return nan
	}
	k = math.Floor(k)
	switch {
	case k < 0:
		return 0
	case math.IsInf(k, 1):
		return 1
	case d.Lambda >= poissonNormalLambda:
		return d.NormalApprox().CDF(k + 0.5)
	}

	// f(i) = f(i-1) * λ/i starting from f(0) = e^-λ.
	term := math.Exp(-d.Lambda)
	sum := term
	ki := clampInt(k, 0, maxSumTerms)
	for i := 1; i <= ki; i++ {
		term *= d.Lambda / float64(i)
		sum += term
		if float64(i) > d.Lambda && term < sumTolerance {
			break
		}
	}
	return math.Min(sum, 1)
}

func (d PoissonDist) Bounds() (float64, float64) {
	return 0, math.Ceil(d.Lambda + 20*math.Sqrt(d.Lambda) + tailLog)
}

func (d PoissonDist) Step() float64 {
	return 1
}

func (d PoissonDist) Mean() float64 {
	return d.Lambda
}

func (d PoissonDist) Variance() float64 {
	return d.Lambda
}

// NormalApprox returns the normal distribution with the mean and
// variance of d. See BinomialDist.NormalApprox for how to apply
// the continuity correction.
func (d PoissonDist) NormalApprox() NormalDist {
	return NormalDist{Mu: d.Lambda, Sigma: math.Sqrt(d.Lambda)}
}
