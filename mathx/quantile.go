// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// NormalQuantile returns the inverse of the standard normal CDF.
//
// NormalQuantile returns NaN unless 0 < p < 1.
//
// The central region uses the rational approximation of Beasley and
// Springer (1977), "Percentage Points of the Normal Distribution",
// Applied Statistics 26: 118-121. The tails use the rational
// approximations from Wichura (1988), "Algorithm AS 241: The
// Percentage Points of the Normal Distribution", Applied Statistics
// 37: 477-484.
func NormalQuantile(p float64) float64 {
	if !(p > 0 && p < 1) {
		return nan
	}
	if p == 0.5 {
		return 0
	}

	// The distribution is symmetric around 0.5. The central
	// region is odd in q; the tails are computed on the smaller
	// tail probability so it keeps full precision.
	q := p - 0.5
	if math.Abs(q) < 0.42 {
		r := q * q
		return q * (((-25.44106049637*r+41.39119773534)*r-18.61500062529)*r + 2.50662823884) /
			((((3.13082909833*r-21.06224101826)*r+23.08336743743)*r-8.47351093090)*r + 1)
	}

	lower := q < 0
	tail := p
	if !lower {
		tail = 1 - p
	}
	var z float64
	r := math.Sqrt(-math.Log(tail))
	if r <= 5 {
		r -= 1.6
		z = (((((((7.7454501427834140764e-4*r+0.0227238449892691845833)*r+0.24178072517745061177)*r+
			1.27045825245236838258)*r+3.64784832476320460504)*r+5.7694972214606914055)*r+
			4.6303378461565452959)*r + 1.42343711074968357734) /
			(((((((1.05075007164441684324e-9*r+5.475938084995344946e-4)*r+0.0151986665636164571966)*r+
				0.14810397642748007459)*r+0.68976733498510000455)*r+1.6763848301838038494)*r+
				2.05319162663775882187)*r + 1)
	} else {
		r -= 5
		z = (((((((2.01033439929228813265e-7*r+2.71155556874348757815e-5)*r+0.0012426609473880784386)*r+
			0.026532189526576123093)*r+0.29656057182850489123)*r+1.7848265399172913358)*r+
			5.4637849111641143699)*r + 6.6579046435011037772) /
			(((((((2.04426310338993978564e-15*r+1.4215117583164458887e-7)*r+1.8463183175100546818e-5)*r+
				7.868691311456132591e-4)*r+0.0148753612908506148525)*r+0.13692988092273580531)*r+
				0.59983220655588793769)*r + 1)
	}

	if lower {
		return -z
	}
	return z
}
