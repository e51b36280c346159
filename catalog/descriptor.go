// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

// A Descriptor describes one distribution in a Catalog. Descriptors
// are immutable; slices returned by their methods are copies.
type Descriptor struct {
	id          ID
	name        string
	description string
	category    Category
	paramNames  []string
	ranges      []Range
	formula     Formula
}

// ID returns the identifier of d.
func (d Descriptor) ID() ID { return d.id }

// Name returns the display name of d, such as "Negative Binomial".
func (d Descriptor) Name() string { return d.name }

// Ident returns the snake-case identifier of d, such as
// "negative_binomial".
func (d Descriptor) Ident() string { return d.id.String() }

// Description returns a one-line description of d.
func (d Descriptor) Description() string { return d.description }

// Category returns whether d is continuous or discrete.
func (d Descriptor) Category() Category { return d.category }

// ParamCount returns the number of parameters of d.
func (d Descriptor) ParamCount() int { return len(d.paramNames) }

// ParamNames returns the ordered parameter names of d.
func (d Descriptor) ParamNames() []string {
	return append([]string(nil), d.paramNames...)
}

// ParamName returns the name of parameter i.
func (d Descriptor) ParamName(i int) (string, bool) {
	if i < 0 || i >= len(d.paramNames) {
		return "", false
	}
	return d.paramNames[i], true
}

// Range returns the practical range of parameter i.
func (d Descriptor) Range(i int) (Range, bool) {
	if i < 0 || i >= len(d.ranges) {
		return Range{}, false
	}
	return d.ranges[i], true
}

// Ranges returns the practical ranges of all parameters in order.
func (d Descriptor) Ranges() []Range {
	return append([]Range(nil), d.ranges...)
}

// Formula returns the formula that evaluates d.
func (d Descriptor) Formula() Formula { return d.formula }

// PDF returns the density (or mass, for discrete distributions) of
// d with the given parameters at x.
func (d Descriptor) PDF(x float64, params []float64) float64 {
	return d.formula.PDF(x, params)
}

// CDF returns the cumulative probability of d with the given
// parameters at x.
func (d Descriptor) CDF(x float64, params []float64) float64 {
	return d.formula.CDF(x, params)
}

// Validate reports whether params is inside the mathematical domain
// of d. It does not check the practical ranges.
func (d Descriptor) Validate(params []float64) bool {
	return d.formula.Validate(params)
}
