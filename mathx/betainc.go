// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// BetaInc returns the value of the regularized incomplete beta
// function Iₓ(a, b).
//
// BetaInc returns 0 for x <= 0, 1 for x >= 1, and NaN if a <= 0 or
// b <= 0 or if the continued fraction does not converge.
//
// Note that the "incomplete beta function" can be computed as
// BetaInc(x, a, b)*Beta(a, b).
func BetaInc(x, a, b float64) float64 {
	// Based on Numerical Recipes in C, section 6.4. This uses the
	// continued fraction definition of I:
	//
	//  (xᵃ*(1-x)ᵇ)/(a*B(a,b)) * (1/(1+(d₁/(1+(d₂/(1+...))))))
	//
	// where B(a,b) is the beta function and
	//
	//  d_{2m+1} = -(a+m)(a+b+m)x/((a+2m)(a+2m+1))
	//  d_{2m}   = m(b-m)x/((a+2m-1)(a+2m))
	switch {
	case math.IsNaN(x) || math.IsNaN(a) || math.IsNaN(b):
		return nan
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	case a <= 0 || b <= 0:
		return nan
	}

	// Compute the coefficient before the continued fraction.
	bt := SafeExp(Lgamma(a+b) - Lgamma(a) - Lgamma(b) +
		a*math.Log(x) + b*math.Log(1-x))

	if x < (a+1)/(a+b+2) {
		// Compute continued fraction directly.
		return clamp01(bt * betacf(x, a, b) / a)
	}
	// Compute continued fraction after symmetry transform.
	return clamp01(1 - bt*betacf(1-x, b, a)/b)
}

// betacf is the continued fraction component of the regularized
// incomplete beta function Iₓ(a, b). It returns NaN if the fraction
// has not converged after iterations(max(a, b)) steps.
func betacf(x, a, b float64) float64 {
	raiseZero := func(z float64) float64 {
		if math.Abs(z) < tiny {
			return tiny
		}
		return z
	}

	c := 1.0
	d := 1 / raiseZero(1-(a+b)*x/(a+1))
	h := d
	for m, limit := 1, iterations(math.Max(a, b)); m <= limit; m++ {
		mf := float64(m)

		// Even step of the recurrence.
		numer := mf * (b - mf) * x / ((a + 2*mf - 1) * (a + 2*mf))
		d = 1 / raiseZero(1+numer*d)
		c = raiseZero(1 + numer/c)
		h *= d * c

		// Odd step of the recurrence.
		numer = -(a + mf) * (a + b + mf) * x / ((a + 2*mf) * (a + 2*mf + 1))
		d = 1 / raiseZero(1+numer*d)
		c = raiseZero(1 + numer/c)
		hfac := d * c
		h *= hfac

		if math.Abs(hfac-1) < epsilon {
			return h
		}
	}
	return nan
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	} else if p > 1 {
		return 1
	}
	return p
}
