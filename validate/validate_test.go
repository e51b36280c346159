// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distcalc/distcalc/catalog"
)

func newValidator() *Validator {
	return New(catalog.Default())
}

func TestValidateAll(t *testing.T) {
	v := newValidator()
	type test struct {
		name          string
		id            catalog.ID
		params        []float64
		code          Code
		index         int
		hasIndex      bool
		suggested     float64
		hasSuggestion bool
	}
	for _, test := range []test{
		{"normal ok", catalog.Normal, []float64{0, 1}, Success, 0, false, 0, false},
		{"hypergeometric ok", catalog.Hypergeometric, []float64{10, 5, 4}, Success, 0, false, 0, false},
		{"hypergeometric K>N", catalog.Hypergeometric, []float64{5, 10, 2}, MathConstraintViolation, 1, true, 5, true},
		{"hypergeometric n>N", catalog.Hypergeometric, []float64{5, 3, 7}, MathConstraintViolation, 2, true, 5, true},
		{"hypergeometric fractional", catalog.Hypergeometric, []float64{10, 2.5, 3}, MathConstraintViolation, 1, true, 3, true},
		{"nil params", catalog.Normal, nil, NullInput, 0, false, 0, false},
		{"unknown id", catalog.ID(40), []float64{1}, UnknownDistribution, 0, false, 0, false},
		{"too few", catalog.Normal, []float64{0}, CountMismatch, 0, false, 0, false},
		{"too many", catalog.Poisson, []float64{1, 2}, CountMismatch, 0, false, 0, false},
		{"below range", catalog.Exponential, []float64{0}, NonFiniteOrOutOfRange, 0, true, 0.001, true},
		{"above range", catalog.Exponential, []float64{5000}, NonFiniteOrOutOfRange, 0, true, 1000, true},
		{"second param", catalog.Normal, []float64{0, -2}, NonFiniteOrOutOfRange, 1, true, 0.001, true},
		{"NaN", catalog.Normal, []float64{math.NaN(), 1}, NonFiniteOrOutOfRange, 0, true, 0, false},
		{"Inf", catalog.Poisson, []float64{math.Inf(1)}, NonFiniteOrOutOfRange, 0, true, 0, false},
		{"binomial fractional", catalog.Binomial, []float64{10.5, 0.5}, MathConstraintViolation, 0, true, 11, true},
		{"negative binomial fractional", catalog.NegativeBinomial, []float64{2.2, 0.5}, MathConstraintViolation, 0, true, 2, true},
		{"uniform reversed", catalog.Uniform, []float64{3, 1}, MathConstraintViolation, 1, true, 4, true},
		{"uniform empty", catalog.Uniform, []float64{2, 2}, MathConstraintViolation, 1, true, 3, true},
	} {
		t.Run(test.name, func(t *testing.T) {
			o := v.ValidateAll(test.id, test.params)
			assert.Equal(t, test.code, o.Code, o.Message)
			assert.Equal(t, test.hasIndex, o.HasIndex)
			if test.hasIndex {
				assert.Equal(t, test.index, o.Index)
			}
			assert.Equal(t, test.hasSuggestion, o.HasSuggestion)
			if test.hasSuggestion {
				assert.Equal(t, test.suggested, o.Suggested)
			}
			assert.Equal(t, test.code == Success, o.OK())
			if o.OK() {
				assert.Empty(t, o.Message)
				assert.NoError(t, o.Err())
			} else {
				assert.NotEmpty(t, o.Message)
				assert.Error(t, o.Err())
			}
		})
	}
}

func TestMessages(t *testing.T) {
	v := newValidator()
	o := v.ValidateAll(catalog.Normal, []float64{0})
	assert.Equal(t, "Normal distribution requires 2 parameters, but 1 provided", o.Message)

	o = v.ValidateAll(catalog.Exponential, []float64{5000})
	assert.Equal(t, "Exponential parameter 'lambda' (5000.000) must be between 0.001 and 1000.000", o.Message)

	o = v.ValidateAll(catalog.Hypergeometric, []float64{5, 10, 2})
	assert.Equal(t, "Hypergeometric: Success states cannot exceed population size", o.Message)

	o = v.ValidateAll(catalog.ID(99), []float64{1})
	assert.Equal(t, "Unknown distribution type: 99", o.Message)

	o = v.ValidateAll(catalog.Normal, []float64{math.Inf(-1), 1})
	assert.Equal(t, "Parameter value must be a finite number", o.Message)

	o = v.ValidateAll(catalog.Normal, nil)
	assert.Equal(t, "Parameters array cannot be null", o.Message)
}

func TestValidateRange(t *testing.T) {
	v := newValidator()
	assert.True(t, v.ValidateRange(catalog.Geometric, 0, 0.5).OK())

	o := v.ValidateRange(catalog.Geometric, 0, 1)
	assert.Equal(t, NonFiniteOrOutOfRange, o.Code)
	assert.Equal(t, 0.999, o.Suggested)

	o = v.ValidateRange(catalog.Geometric, 3, 0.5)
	assert.Equal(t, NonFiniteOrOutOfRange, o.Code)

	o = v.ValidateRange(catalog.ID(-1), 0, 0.5)
	assert.Equal(t, UnknownDistribution, o.Code)
}

func TestValidateSingle(t *testing.T) {
	v := newValidator()
	assert.True(t, v.ValidateSingle(catalog.F, 1, 20).OK())

	o := v.ValidateSingle(catalog.F, 2, 20)
	assert.Equal(t, CountMismatch, o.Code)
	assert.Equal(t, "Parameter index 2 is invalid for distribution with 2 parameters", o.Message)

	o = v.ValidateSingle(catalog.F, 0, 0.5)
	assert.Equal(t, NonFiniteOrOutOfRange, o.Code)
	assert.True(t, o.HasSuggestion)
	assert.Equal(t, 1.0, o.Suggested)

	assert.Equal(t, UnknownDistribution, v.ValidateSingle(catalog.ID(77), 0, 1).Code)
}

func TestValidateCount(t *testing.T) {
	v := newValidator()
	assert.True(t, v.ValidateCount(catalog.Hypergeometric, 3).OK())
	assert.Equal(t, CountMismatch, v.ValidateCount(catalog.Hypergeometric, 2).Code)
	assert.Equal(t, UnknownDistribution, v.ValidateCount(catalog.ID(16), 1).Code)
}

func TestValidateConstraints(t *testing.T) {
	v := newValidator()
	o := v.ValidateConstraints(catalog.F, []float64{0.5, 3})
	assert.Equal(t, MathConstraintViolation, o.Code)
	assert.Equal(t, 0, o.Index)
	assert.Equal(t, 1.0, o.Suggested)

	o = v.ValidateConstraints(catalog.F, []float64{3, 0.2})
	assert.Equal(t, MathConstraintViolation, o.Code)
	assert.Equal(t, 1, o.Index)

	o = v.ValidateConstraints(catalog.Binomial, []float64{-3, 0.5})
	assert.Equal(t, MathConstraintViolation, o.Code)
	assert.Equal(t, 1.0, o.Suggested)

	assert.True(t, v.ValidateConstraints(catalog.Binomial, []float64{0, 0.5}).OK())
	assert.True(t, v.ValidateConstraints(catalog.Normal, []float64{0, -1}).OK())
	assert.True(t, v.ValidateConstraints(catalog.Hypergeometric, []float64{5}).OK())
}

func TestValidateDomain(t *testing.T) {
	v := newValidator()
	// Mathematically valid but outside the practical range.
	assert.True(t, v.ValidateDomain(catalog.Exponential, []float64{1e6}).OK())
	assert.False(t, v.ValidateAll(catalog.Exponential, []float64{1e6}).OK())

	o := v.ValidateDomain(catalog.Exponential, []float64{-1})
	assert.Equal(t, MathConstraintViolation, o.Code)

	o = v.ValidateDomain(catalog.Hypergeometric, []float64{5, 10, 2})
	assert.Equal(t, MathConstraintViolation, o.Code)
	assert.Equal(t, 1, o.Index)

	assert.Equal(t, NullInput, v.ValidateDomain(catalog.Normal, nil).Code)
	assert.Equal(t, NonFiniteOrOutOfRange, v.ValidateDomain(catalog.Normal, []float64{0, math.NaN()}).Code)
	assert.Equal(t, CountMismatch, v.ValidateDomain(catalog.Normal, []float64{}).Code)
}

func TestSuggest(t *testing.T) {
	v := newValidator()
	assert.Equal(t, 0.001, v.Suggest(catalog.Poisson, 0, -5))
	assert.Equal(t, 1000.0, v.Suggest(catalog.Poisson, 0, 1e9))
	assert.InDelta(t, 500.0005, v.Suggest(catalog.Poisson, 0, 3), 1e-9)
	assert.Equal(t, 42.0, v.Suggest(catalog.Poisson, 1, 42))
	assert.True(t, v.HasSuggestion(catalog.Poisson, 0))
	assert.False(t, v.HasSuggestion(catalog.Poisson, 1))
	assert.False(t, v.HasSuggestion(catalog.ID(50), 0))

	assert.True(t, v.InRange(catalog.Binomial, 1, 0.5))
	assert.False(t, v.InRange(catalog.Binomial, 1, 1))
	assert.False(t, v.InRange(catalog.Binomial, 2, 0.5))
}

func TestErr(t *testing.T) {
	v := newValidator()
	err := v.ValidateAll(catalog.Hypergeometric, []float64{5, 10, 2}).Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConstraint))
	assert.False(t, errors.Is(err, ErrOutOfRange))

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 1, verr.Index)
	assert.Equal(t, 5.0, verr.Suggested)
	assert.Contains(t, err.Error(), "math constraint violation")

	err = v.ValidateAll(catalog.Normal, nil).Err()
	assert.True(t, errors.Is(err, ErrNullInput))
}

func TestCodeStrings(t *testing.T) {
	assert.Equal(t, "Validation successful", Success.Description())
	assert.Equal(t, "Mathematical constraint violation", MathConstraintViolation.Description())
	assert.Equal(t, "Unknown validation error", Code(12).Description())
	assert.Equal(t, "count mismatch", CountMismatch.String())
	assert.Equal(t, "Code(-1)", Code(-1).String())
}

// Every parameter vector that passes ValidateAll must evaluate.
func TestValidImpliesEvaluable(t *testing.T) {
	cat := catalog.Default()
	v := New(cat)
	for _, d := range cat.All() {
		params := make([]float64, d.ParamCount())
		for i, r := range d.Ranges() {
			params[i] = r.Min
		}
		if d.ID() == catalog.Uniform {
			params[1] = params[0] + 1
		}
		o := v.ValidateAll(d.ID(), params)
		require.True(t, o.OK(), "%s%v: %s", d.Name(), params, o.Message)
		r := cat.Evaluate(d.ID(), 1, params)
		assert.True(t, r.OK, "%s%v: %v", d.Name(), params, r.Err)
	}
}
