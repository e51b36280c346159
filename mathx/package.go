// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions used to evaluate
// probability distributions.
//
// All functions are pure. Domain errors are reported by returning
// NaN unless a function documents a limiting value instead.
package mathx // import "github.com/distcalc/distcalc/mathx"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
