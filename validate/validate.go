// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validate checks distribution parameters against the
// practical ranges and mathematical constraints recorded in a
// catalog.
//
// Validation never fails the process: every problem is reported as
// an Outcome with a Code, a message and, where one exists, a
// suggested replacement value.
package validate // import "github.com/distcalc/distcalc/validate"

import (
	"fmt"
	"math"

	"github.com/distcalc/distcalc/catalog"
	"github.com/distcalc/distcalc/mathx"
)

// A Validator checks parameters for the distributions of a catalog.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	cat *catalog.Catalog
}

// New returns a Validator driven by cat.
func New(cat *catalog.Catalog) *Validator {
	return &Validator{cat: cat}
}

func (v *Validator) lookup(id catalog.ID) (catalog.Descriptor, Outcome) {
	d, ok := v.cat.Lookup(id)
	if !ok {
		return d, failure(UnknownDistribution, fmt.Sprintf("Unknown distribution type: %d", int(id)))
	}
	return d, success()
}

// ValidateCount checks that n parameters is the arity of id.
func (v *Validator) ValidateCount(id catalog.ID, n int) Outcome {
	d, o := v.lookup(id)
	if !o.OK() {
		return o
	}
	if want := d.ParamCount(); n != want {
		return failure(CountMismatch, fmt.Sprintf("%s distribution requires %d parameters, but %d provided",
			d.Name(), want, n))
	}
	return success()
}

// ValidateRange checks parameter i of id against its practical
// range. Out-of-range values get a suggestion clamped to the range.
func (v *Validator) ValidateRange(id catalog.ID, i int, value float64) Outcome {
	d, o := v.lookup(id)
	if !o.OK() {
		return o
	}
	if _, ok := d.Range(i); !ok {
		return failure(NonFiniteOrOutOfRange, fmt.Sprintf("%s has no parameter %d", d.Name(), i)).at(i)
	}
	return checkRange(d, i, value)
}

// checkRange checks value against the range of parameter i of d,
// which must exist.
func checkRange(d catalog.Descriptor, i int, value float64) Outcome {
	if !mathx.IsFinite(value) {
		return failure(NonFiniteOrOutOfRange, "Parameter value must be a finite number").at(i)
	}
	r, _ := d.Range(i)
	if !r.Contains(value) {
		name, _ := d.ParamName(i)
		msg := fmt.Sprintf("%s parameter '%s' (%.3f) must be between %.3f and %.3f",
			d.Name(), name, value, r.Min, r.Max)
		return failure(NonFiniteOrOutOfRange, msg).at(i).suggest(suggest(r, value))
	}
	return success()
}

// suggest returns the bound of r nearest to value, or the midpoint
// of r if value is already inside it.
func suggest(r catalog.Range, value float64) float64 {
	if r.Contains(value) {
		return r.Mid()
	}
	return r.Clamp(value)
}

// ValidateSingle checks one parameter of id in isolation. An index
// beyond the arity of id is a CountMismatch.
func (v *Validator) ValidateSingle(id catalog.ID, i int, value float64) Outcome {
	d, o := v.lookup(id)
	if !o.OK() {
		return o
	}
	if i < 0 || i >= d.ParamCount() {
		return failure(CountMismatch, fmt.Sprintf("Parameter index %d is invalid for distribution with %d parameters",
			i, d.ParamCount())).at(i)
	}
	return checkRange(d, i, value)
}

// InRange reports whether value is inside the practical range of
// parameter i of id.
func (v *Validator) InRange(id catalog.ID, i int, value float64) bool {
	r, ok := v.cat.ParamRange(id, i)
	return ok && r.Contains(value)
}

// Suggest returns a replacement for an unacceptable value of
// parameter i of id. The result is the nearest bound of the
// practical range, or its midpoint if value is inside it. If id or
// i is unknown, value is returned unchanged.
func (v *Validator) Suggest(id catalog.ID, i int, value float64) float64 {
	r, ok := v.cat.ParamRange(id, i)
	if !ok {
		return value
	}
	return suggest(r, value)
}

// HasSuggestion reports whether Suggest can propose a value for
// parameter i of id.
func (v *Validator) HasSuggestion(id catalog.ID, i int) bool {
	_, ok := v.cat.ParamRange(id, i)
	return ok
}

// ValidateConstraints checks the cross-parameter rules of id that
// simple ranges cannot express. It assumes params has the arity of
// id; shorter vectors are only checked as far as they go.
func (v *Validator) ValidateConstraints(id catalog.ID, params []float64) Outcome {
	d, o := v.lookup(id)
	if !o.OK() {
		return o
	}
	violation := func(i int, s float64, text string) Outcome {
		return failure(MathConstraintViolation, d.Name()+": "+text).at(i).suggest(s)
	}

	switch id {
	case catalog.Hypergeometric:
		if len(params) < 3 {
			break
		}
		for i, p := range params[:3] {
			if !mathx.IsNonNegativeInteger(p) {
				return violation(i, math.Round(math.Max(0, p)), "Parameters must be non-negative integers")
			}
		}
		population, successes, sample := params[0], params[1], params[2]
		if successes > population {
			return violation(1, population, "Success states cannot exceed population size")
		}
		if sample > population {
			return violation(2, population, "Sample size cannot exceed population size")
		}

	case catalog.F:
		if len(params) < 2 {
			break
		}
		if params[0] < 1 || params[1] < 1 {
			i := 1
			if params[0] < 1 {
				i = 0
			}
			return violation(i, 1, "Degrees of freedom must be at least 1")
		}

	case catalog.Binomial:
		if len(params) < 1 {
			break
		}
		if n := params[0]; !mathx.IsNonNegativeInteger(n) {
			return violation(0, math.Round(math.Max(1, n)), "Number of trials must be a non-negative integer")
		}

	case catalog.NegativeBinomial:
		if len(params) < 1 {
			break
		}
		if r := params[0]; !mathx.IsPositiveInteger(r) {
			return violation(0, math.Round(math.Max(1, r)), "Number of successes must be a positive integer")
		}

	case catalog.Uniform:
		if len(params) < 2 {
			break
		}
		if a, b := params[0], params[1]; !(b > a) {
			return violation(1, a+1, "Upper bound must exceed lower bound")
		}
	}
	return success()
}

// ValidateAll runs every check on params for id: the nil check, the
// count, each parameter's practical range in order, and finally the
// mathematical constraints. It returns the first failure.
func (v *Validator) ValidateAll(id catalog.ID, params []float64) Outcome {
	if params == nil {
		return failure(NullInput, "Parameters array cannot be null")
	}
	d, o := v.lookup(id)
	if !o.OK() {
		return o
	}
	if o := v.ValidateCount(id, len(params)); !o.OK() {
		return o
	}
	for i, p := range params {
		if o := checkRange(d, i, p); !o.OK() {
			return o
		}
	}
	return v.ValidateConstraints(id, params)
}

// ValidateDomain checks params against the mathematical domain of
// id only, ignoring the practical ranges. It accepts parameters such
// as an exponential rate of 1e6 that ValidateAll rejects as
// impractical.
func (v *Validator) ValidateDomain(id catalog.ID, params []float64) Outcome {
	if params == nil {
		return failure(NullInput, "Parameters array cannot be null")
	}
	d, o := v.lookup(id)
	if !o.OK() {
		return o
	}
	if o := v.ValidateCount(id, len(params)); !o.OK() {
		return o
	}
	for i, p := range params {
		if !mathx.IsFinite(p) {
			return failure(NonFiniteOrOutOfRange, "Parameter value must be a finite number").at(i)
		}
	}
	if o := v.ValidateConstraints(id, params); !o.OK() {
		return o
	}
	if !d.Validate(params) {
		return failure(MathConstraintViolation,
			fmt.Sprintf("%s: parameters %v are outside the mathematical domain", d.Name(), params))
	}
	return success()
}
