// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. This is the integral
	// of the PDF from -∞ to x.
	CDF(x float64) float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)

	// Valid reports whether the parameters of this distribution
	// are inside its mathematical domain.
	Valid() bool
}

// A DiscreteDist is a discrete statistical distribution.
type DiscreteDist interface {
	// PMF returns the probability that the random variable is
	// exactly k. PMF is 0 at non-integer k.
	PMF(k float64) float64

	// CDF returns the probability that the random variable is
	// at most k. It is a right-continuous step function of
	// floor(k).
	CDF(k float64) float64

	// Bounds returns reasonable bounds for this distribution's
	// PMF and CDF.
	Bounds() (float64, float64)

	// Step returns the distance between successive points of the
	// support.
	Step() float64

	// Valid reports whether the parameters of this distribution
	// are inside its mathematical domain.
	Valid() bool
}

// PDFEach returns d.PDF(xs[i]) for each i.
func PDFEach(d Dist, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.PDF(x)
	}
	return res
}

// CDFEach returns d.CDF(xs[i]) for each i.
func CDFEach(d Dist, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.CDF(x)
	}
	return res
}
