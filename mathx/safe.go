// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// smallestNormal is the smallest positive normal float64.
const smallestNormal = 0x1p-1022

// SafeExp returns e**x, saturating to +Inf for x > 700 and to 0 for
// x < -700.
func SafeExp(x float64) float64 {
	switch {
	case x > expCutoff:
		return inf
	case x < -expCutoff:
		return 0
	}
	return math.Exp(x)
}

// SafeLog returns the natural logarithm of x.
//
// SafeLog returns NaN for x <= 0 and -Inf for subnormal x.
func SafeLog(x float64) float64 {
	switch {
	case math.IsNaN(x) || x <= 0:
		return nan
	case x < smallestNormal:
		return math.Inf(-1)
	}
	return math.Log(x)
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// IsProbability reports whether p is a finite value in [0, 1].
func IsProbability(p float64) bool {
	return IsFinite(p) && p >= 0 && p <= 1
}

// IsInteger reports whether x is a finite integral value.
func IsInteger(x float64) bool {
	return IsFinite(x) && math.Floor(x) == x
}

// IsPositiveInteger reports whether x is a finite integer > 0.
func IsPositiveInteger(x float64) bool {
	return IsInteger(x) && x > 0
}

// IsNonNegativeInteger reports whether x is a finite integer >= 0.
func IsNonNegativeInteger(x float64) bool {
	return IsInteger(x) && x >= 0
}
