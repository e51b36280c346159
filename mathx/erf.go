// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Erf returns the error function of x.
//
// This uses the rational approximation from Abramowitz and Stegun,
// formula 7.1.26, which has a maximum absolute error of about
// 1.5e-7.
func Erf(x float64) float64 {
	const (
		a1 = 0.254829592
		a2 = -0.284496736
		a3 = 1.421413741
		a4 = -1.453152027
		a5 = 1.061405429
		p  = 0.3275911
	)
	switch {
	case math.IsNaN(x):
		return nan
	case x == 0:
		return 0
	}
	sign := 1.0
	if x < 0 {
		sign = -1
	}
	x = math.Abs(x)
	t := 1 / (1 + p*x)
	y := 1 - ((((a5*t+a4)*t+a3)*t+a2)*t+a1)*t*math.Exp(-x*x)
	return sign * y
}

// Erfc returns the complementary error function 1 - Erf(x).
func Erfc(x float64) float64 {
	return 1 - Erf(x)
}

// ErfInv returns the inverse of the error function.
//
// ErfInv returns NaN for |x| >= 1. It uses the single-precision
// polynomial approximation of Giles (2010), "Approximating the erfinv
// function", which has a relative error of about 1e-7.
func ErfInv(x float64) float64 {
	if !(math.Abs(x) < 1) {
		return nan
	}
	if x == 0 {
		return 0
	}
	w := -math.Log((1 - x) * (1 + x))
	var p float64
	if w < 5 {
		w -= 2.5
		p = 2.81022636e-08
		p = 3.43273939e-07 + p*w
		p = -3.5233877e-06 + p*w
		p = -4.39150654e-06 + p*w
		p = 0.00021858087 + p*w
		p = -0.00125372503 + p*w
		p = -0.00417768164 + p*w
		p = 0.246640727 + p*w
		p = 1.50140941 + p*w
	} else {
		w = math.Sqrt(w) - 3
		p = -0.000200214257
		p = 0.000100950558 + p*w
		p = 0.00134934322 + p*w
		p = -0.00367342844 + p*w
		p = 0.00573950773 + p*w
		p = -0.0076224613 + p*w
		p = 0.00943887047 + p*w
		p = 1.00167406 + p*w
		p = 2.83297682 + p*w
	}
	return p * x
}
