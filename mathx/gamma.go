// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Lanczos approximation with g=7 and n=9.
var lanczosCoef = [...]float64{
	0.99999999999980993,
	676.5203681218851,
	-1259.1392167224028,
	771.32342877765313,
	-176.61502916214059,
	12.507343278686905,
	-0.13857109526572012,
	9.9843695780195716e-6,
	1.5056327351493116e-7,
}

const (
	lanczosG  = 7
	sqrt2Pi   = 2.5066282746310005024157652848110452530069867406099
	lnSqrt2Pi = 0.91893853320467274178032973640561763986139747363778
)

// lanczosSum returns the Lanczos series a(x) for the shifted
// argument x (that is, Γ(x+1)).
func lanczosSum(x float64) float64 {
	a := lanczosCoef[0]
	for i := 1; i < len(lanczosCoef); i++ {
		a += lanczosCoef[i] / (x + float64(i))
	}
	return a
}

// Gamma returns the gamma function Γ(x).
//
// For x < 0.5 this uses the reflection formula
// Γ(x)Γ(1-x) = π/sin(πx), so Gamma has poles at the non-positive
// integers.
func Gamma(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	if x < 0.5 {
		return math.Pi / (math.Sin(math.Pi*x) * Gamma(1-x))
	}
	x -= 1
	a := lanczosSum(x)
	t := x + lanczosG + 0.5
	// Split t^(x+0.5) so the intermediate does not overflow
	// before exp(-t) brings it back into range.
	p := math.Pow(t, (x+0.5)/2)
	return sqrt2Pi * p * (p * math.Exp(-t)) * a
}

// Lgamma returns the natural logarithm of Γ(x).
//
// Unlike math.Lgamma, Lgamma does not return the sign of Γ(x). For
// x < 0.5 where Γ(x) is negative the result is NaN.
func Lgamma(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	if x < 0.5 {
		return math.Log(math.Pi) - math.Log(math.Sin(math.Pi*x)) - Lgamma(1-x)
	}
	x -= 1
	a := lanczosSum(x)
	t := x + lanczosG + 0.5
	return lnSqrt2Pi + (x+0.5)*math.Log(t) - t + math.Log(a)
}

var smallFactorials = [...]float64{
	1,         // 0!
	1,         // 1!
	2,         // 2!
	6,         // 3!
	24,        // 4!
	120,       // 5!
	720,       // 6!
	5040,      // 7!
	40320,     // 8!
	362880,    // 9!
	3628800,   // 10!
	39916800,  // 11!
	479001600, // 12!
}

// maxFactorial is the largest n for which n! is representable as a
// float64.
const maxFactorial = 170

// Factorial returns n!.
//
// Factorial returns NaN for n < 0 and +Inf for n > 170, where n!
// overflows a float64.
func Factorial(n int) float64 {
	switch {
	case n < 0:
		return nan
	case n < len(smallFactorials):
		return smallFactorials[n]
	case n <= maxFactorial:
		return math.Round(Gamma(float64(n) + 1))
	}
	return inf
}

// Lfactorial returns log(n!).
//
// For n >= 20 this uses Stirling's series
//
//	n ln n - n + ½ln(2πn) + 1/(12n) - 1/(360n³) + 1/(1260n⁵)
//
// whose truncation error is below 1e-12 for n in that range.
func Lfactorial(n int) float64 {
	switch {
	case n < 0:
		return nan
	case n < len(smallFactorials):
		return math.Log(smallFactorials[n])
	case n < 20:
		return Lgamma(float64(n) + 1)
	}
	x := float64(n)
	x2 := x * x
	return x*math.Log(x) - x + 0.5*math.Log(2*math.Pi*x) + (1/12.0-(1/360.0-1/(1260*x2))/x2)/x
}

// Choose returns the binomial coefficient n choose k.
//
// Choose returns 0 if k < 0, k > n, or n < 0.
func Choose(n, k int) float64 {
	if k < 0 || k > n || n < 0 {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	c := math.Exp(Lchoose(n, k))
	if c < 1<<53 {
		// Small coefficients are exact integers.
		c = math.Round(c)
	}
	return c
}

// Lchoose returns log(n choose k).
//
// Lchoose returns -Inf if k < 0, k > n, or n < 0.
//
// For min(k, n-k) below lchooseDirect the result is summed term by
// term, which avoids cancelling two large log-factorials.
func Lchoose(n, k int) float64 {
	if k < 0 || k > n || n < 0 {
		return math.Inf(-1)
	}
	if k == 0 || k == n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	if k < lchooseDirect {
		sum := 0.0
		for i := 0; i < k; i++ {
			sum += math.Log(float64(n-i) / float64(k-i))
		}
		return sum
	}
	return Lfactorial(n) - Lfactorial(k) - Lfactorial(n-k)
}

const lchooseDirect = 64

// Beta returns the complete beta function B(a, b) = Γ(a)Γ(b)/Γ(a+b).
func Beta(a, b float64) float64 {
	if a <= 0 || b <= 0 {
		return nan
	}
	return math.Exp(Lbeta(a, b))
}

// Lbeta returns log(B(a, b)).
func Lbeta(a, b float64) float64 {
	if a <= 0 || b <= 0 {
		return nan
	}
	return Lgamma(a) + Lgamma(b) - Lgamma(a+b)
}
