// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"math"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidParameters is reported by Evaluate when the
	// parameters have the wrong arity or are outside the
	// distribution's mathematical domain.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrInvalidInput is reported by Evaluate when x is NaN.
	ErrInvalidInput = errors.New("invalid input value")

	// ErrPDFFailed and ErrCDFFailed are reported by Evaluate when
	// the formula produced NaN.
	ErrPDFFailed = errors.New("PDF calculation failed")
	ErrCDFFailed = errors.New("CDF calculation failed")
)

// Result is the outcome of evaluating one distribution at one point.
type Result struct {
	// PDF is the density, or mass for discrete distributions.
	// It may be +Inf at a boundary where the density diverges.
	PDF float64

	// CDF is the cumulative probability.
	CDF float64

	// OK reports whether both values were computed.
	OK bool

	// Err describes why the evaluation failed. It is nil if OK.
	Err error
}

// Evaluate computes the PDF and CDF of distribution id with the
// given parameters at x.
//
// Evaluate checks only the mathematical domain of params. Use the
// validate package to also enforce the practical ranges.
func (c *Catalog) Evaluate(id ID, x float64, params []float64) Result {
	d, ok := c.Lookup(id)
	if !ok {
		return Result{PDF: math.NaN(), CDF: math.NaN(),
			Err: errors.Wrapf(ErrUnknownDistribution, "id %d", int(id))}
	}
	fail := func(err error) Result {
		return Result{PDF: math.NaN(), CDF: math.NaN(), Err: err}
	}
	if len(params) != d.ParamCount() {
		return fail(errors.Wrapf(ErrInvalidParameters,
			"%s takes %d parameters, got %d", d.name, d.ParamCount(), len(params)))
	}
	if !d.Validate(params) {
		return fail(errors.Wrapf(ErrInvalidParameters, "%s %v", d.name, params))
	}
	if math.IsNaN(x) {
		return fail(ErrInvalidInput)
	}

	pdf := d.PDF(x, params)
	if math.IsNaN(pdf) {
		return fail(errors.Wrapf(ErrPDFFailed, "%s at x=%v", d.name, x))
	}
	cdf := d.CDF(x, params)
	if math.IsNaN(cdf) {
		return fail(errors.Wrapf(ErrCDFFailed, "%s at x=%v", d.name, x))
	}
	return Result{PDF: pdf, CDF: cdf, OK: true}
}
