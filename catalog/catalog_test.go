// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"math"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleParams holds a valid parameter vector for every ID.
var sampleParams = map[ID][]float64{
	Normal:           {0, 1},
	Exponential:      {2},
	ChiSquare:        {4},
	StudentT:         {7},
	F:                {5, 10},
	Geometric:        {0.3},
	Hypergeometric:   {10, 5, 4},
	Binomial:         {10, 0.5},
	NegativeBinomial: {3, 0.4},
	Poisson:          {3.5},
	Gamma:            {2, 1.5},
	Beta:             {2, 3},
	Weibull:          {1.5, 2},
	Rayleigh:         {1},
	Pareto:           {1, 3},
	Uniform:          {-1, 2},
}

func TestRegistry(t *testing.T) {
	c := New()
	require.Equal(t, 16, c.Len())
	assert.Equal(t, 11, c.CategoryCount(Continuous))
	assert.Equal(t, 5, c.CategoryCount(Discrete))
	assert.Len(t, c.All(), c.Len())

	for i, d := range c.All() {
		assert.Equal(t, ID(i), d.ID())
		assert.NotEmpty(t, d.Name())
		assert.NotEmpty(t, d.Description())
		assert.Equal(t, d.ParamCount(), len(d.Ranges()), d.Name())
		assert.True(t, d.ParamCount() >= 1 && d.ParamCount() <= 3, d.Name())
		for j, r := range d.Ranges() {
			assert.Less(t, r.Min, r.Max, "%s range %d", d.Name(), j)
		}
		p, ok := sampleParams[d.ID()]
		require.True(t, ok, "no sample parameters for %s", d.Name())
		assert.True(t, d.Validate(p), "%s%v", d.Name(), p)

		bi, ok := c.ByIndex(i)
		require.True(t, ok)
		assert.Equal(t, d.ID(), bi.ID())
	}
	_, ok := c.ByIndex(c.Len())
	assert.False(t, ok)
}

func TestStableIDs(t *testing.T) {
	// The first ten IDs are fixed by existing callers.
	want := []string{"Normal", "Exponential", "Chi-Square", "t-Distribution", "F-Distribution",
		"Geometric", "Hypergeometric", "Binomial", "Negative Binomial", "Poisson"}
	c := Default()
	for i, name := range want {
		got, ok := c.Name(ID(i))
		require.True(t, ok)
		assert.Equal(t, name, got)
	}
}

func TestLookup(t *testing.T) {
	c := Default()
	d, ok := c.Lookup(Hypergeometric)
	require.True(t, ok)
	assert.Equal(t, "hypergeometric", d.Ident())
	assert.Equal(t, Discrete, d.Category())
	assert.Equal(t, []string{"population_size", "success_states", "sample_size"}, d.ParamNames())

	name, ok := d.ParamName(1)
	assert.True(t, ok)
	assert.Equal(t, "success_states", name)
	_, ok = d.ParamName(3)
	assert.False(t, ok)

	// Returned slices are copies.
	names := d.ParamNames()
	names[0] = "changed"
	assert.Equal(t, "population_size", d.ParamNames()[0])

	for _, id := range []ID{-1, 16, 255} {
		_, ok := c.Lookup(id)
		assert.False(t, ok, "Lookup(%d)", id)
		_, ok = c.Name(id)
		assert.False(t, ok)
		_, ok = c.ParamRange(id, 0)
		assert.False(t, ok)
		assert.False(t, c.Contains(id))
	}
}

func TestAccessors(t *testing.T) {
	c := Default()
	n, ok := c.ParamCount(F)
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	r, ok := c.ParamRange(Exponential, 0)
	assert.True(t, ok)
	assert.Equal(t, Range{0.001, 1000}, r)
	_, ok = c.ParamRange(Exponential, 1)
	assert.False(t, ok)

	cat, ok := c.Category(Poisson)
	assert.True(t, ok)
	assert.Equal(t, "discrete", cat.String())

	desc, ok := c.Description(StudentT)
	assert.True(t, ok)
	assert.Equal(t, "Student's t-distribution", desc)

	names, ok := c.ParamNames(Normal)
	assert.True(t, ok)
	assert.Equal(t, []string{"mean", "std_dev"}, names)
}

func TestByName(t *testing.T) {
	c := Default()
	for name, want := range map[string]ID{
		"Normal":            Normal,
		"normal":            Normal,
		"Negative Binomial": NegativeBinomial,
		"negative_binomial": NegativeBinomial,
		"chi-square":        ChiSquare,
		"t":                 StudentT,
		"T-Distribution":    StudentT,
		"f":                 F,
		"UNIFORM":           Uniform,
	} {
		d, err := c.ByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, d.ID(), name)
	}

	_, err := c.ByName("cauchy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownDistribution))
	assert.Contains(t, err.Error(), "cauchy")
}

func TestByCategory(t *testing.T) {
	c := Default()
	var ids []ID
	for _, d := range c.ByCategory(Discrete) {
		assert.Equal(t, Discrete, d.Category())
		ids = append(ids, d.ID())
	}
	assert.Equal(t, []ID{Geometric, Hypergeometric, Binomial, NegativeBinomial, Poisson}, ids)
	assert.Len(t, c.ByCategory(Category(7)), 0)
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "negative_binomial", NegativeBinomial.String())
	assert.Equal(t, "ID(42)", ID(42).String())
	assert.Equal(t, "Category(9)", Category(9).String())
}

func TestRange(t *testing.T) {
	r := Range{1, 5}
	assert.True(t, r.Contains(1))
	assert.True(t, r.Contains(5))
	assert.False(t, r.Contains(5.5))
	assert.False(t, r.Contains(math.NaN()))
	assert.Equal(t, 1.0, r.Clamp(-3))
	assert.Equal(t, 5.0, r.Clamp(9))
	assert.Equal(t, 2.5, r.Clamp(2.5))
	assert.Equal(t, 3.0, r.Mid())
}

func TestDefaultOnce(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]*Catalog, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Default()
		}(i)
	}
	wg.Wait()
	for _, c := range got {
		assert.Same(t, got[0], c)
	}
}

func TestInvalidParamsYieldNaN(t *testing.T) {
	c := Default()
	bad := map[ID][][]float64{
		Normal:           {{0, 0}, {0, -1}, {math.NaN(), 1}, {0}},
		Exponential:      {{0}, {-2}, {1, 2}},
		ChiSquare:        {{0}, {math.Inf(1)}},
		StudentT:         {{-1}},
		F:                {{0, 1}, {1, 0}},
		Geometric:        {{0}, {1.5}},
		Hypergeometric:   {{5, 10, 2}, {10, 5, 11}, {10.5, 5, 2}, {10, 5}},
		Binomial:         {{-1, 0.5}, {10.5, 0.5}, {10, 1.5}},
		NegativeBinomial: {{0, 0.5}, {2.5, 0.5}, {3, 0}},
		Poisson:          {{0}, {-1}},
		Gamma:            {{0, 1}, {1, 0}},
		Beta:             {{0, 1}, {1, -1}},
		Weibull:          {{0, 1}},
		Rayleigh:         {{0}},
		Pareto:           {{0, 1}, {1, 0}},
		Uniform:          {{2, 2}, {3, 1}},
	}
	for id, vectors := range bad {
		d, ok := c.Lookup(id)
		require.True(t, ok)
		for _, p := range vectors {
			assert.False(t, d.Validate(p), "%s%v", d.Name(), p)
			for _, x := range []float64{-1, 0, 0.5, 1, 3} {
				assert.True(t, math.IsNaN(d.PDF(x, p)), "%s%v.PDF(%v)", d.Name(), p, x)
				assert.True(t, math.IsNaN(d.CDF(x, p)), "%s%v.CDF(%v)", d.Name(), p, x)
			}
		}
	}
	assert.False(t, c.entries[Normal].Validate(nil))
}

func TestCDFProperties(t *testing.T) {
	c := Default()
	for _, d := range c.All() {
		p := sampleParams[d.ID()]
		assert.InDelta(t, 0, d.CDF(math.Inf(-1), p), 1e-9, d.Name())
		assert.InDelta(t, 1, d.CDF(math.Inf(1), p), 1e-9, d.Name())
		prev := 0.0
		for x := -20.0; x <= 60; x += 0.05 {
			y := d.CDF(x, p)
			require.False(t, math.IsNaN(y), "%s.CDF(%v)", d.Name(), x)
			require.GreaterOrEqual(t, y, prev, "%s.CDF(%v) decreased", d.Name(), x)
			prev = y
		}
		assert.True(t, math.IsNaN(d.PDF(math.NaN(), p)), d.Name())
		assert.Equal(t, 0.0, d.PDF(math.Inf(1), p), d.Name())
		assert.Equal(t, 0.0, d.PDF(math.Inf(-1), p), d.Name())
	}
}

func TestEvaluate(t *testing.T) {
	c := Default()
	type test struct {
		id       ID
		x        float64
		params   []float64
		pdf, cdf float64
	}
	for _, test := range []test{
		{Normal, 0, []float64{0, 1}, 1 / math.Sqrt(2*math.Pi), 0.5},
		{Exponential, 1, []float64{2}, 2 * math.Exp(-2), 1 - math.Exp(-2)},
		{Binomial, 5, []float64{10, 0.5}, 252.0 / 1024, 638.0 / 1024},
		{ChiSquare, 0, []float64{2}, 0.5, 0},
		{Hypergeometric, 2, []float64{10, 5, 4}, 100.0 / 210, 155.0 / 210},
		{Uniform, 0.5, []float64{0, 2}, 0.5, 0.25},
	} {
		r := c.Evaluate(test.id, test.x, test.params)
		require.True(t, r.OK, "%v: %v", test.id, r.Err)
		assert.NoError(t, r.Err)
		assert.InDelta(t, test.pdf, r.PDF, 1e-6, "%v.PDF", test.id)
		assert.InDelta(t, test.cdf, r.CDF, 1e-6, "%v.CDF", test.id)
	}
}

func TestEvaluateLargeDiscrete(t *testing.T) {
	c := Default()

	// Accepted by the mathematical domain with the mass above the
	// summation ceiling.
	r := c.Evaluate(Binomial, 1999999, []float64{2e6, 0.999999})
	require.True(t, r.OK, "%v", r.Err)
	assert.InDelta(t, 1-math.Pow(0.999999, 2e6), r.CDF, 1e-9)
	assert.InDelta(t, 0.864664852, r.CDF, 1e-9)

	r = c.Evaluate(Hypergeometric, 5e7, []float64{2e8, 1e8, 1e8})
	require.True(t, r.OK, "%v", r.Err)
	assert.InDelta(t, (1+r.PDF)/2, r.CDF, 1e-5)
}

func TestEvaluateErrors(t *testing.T) {
	c := Default()
	type test struct {
		id     ID
		x      float64
		params []float64
		want   error
	}
	for _, test := range []test{
		{ID(99), 0, []float64{1}, ErrUnknownDistribution},
		{Normal, 0, []float64{1}, ErrInvalidParameters},
		{Normal, 0, []float64{0, -1}, ErrInvalidParameters},
		{Binomial, 1, []float64{4.5, 0.5}, ErrInvalidParameters},
		{Poisson, math.NaN(), []float64{2}, ErrInvalidInput},
	} {
		r := c.Evaluate(test.id, test.x, test.params)
		assert.False(t, r.OK)
		assert.True(t, errors.Is(r.Err, test.want), "%v%v: got %v, want %v", test.id, test.params, r.Err, test.want)
		assert.True(t, math.IsNaN(r.PDF))
		assert.True(t, math.IsNaN(r.CDF))
	}

	// A diverging density is a valid result.
	r := c.Evaluate(Beta, 0, []float64{0.5, 2})
	assert.True(t, r.OK)
	assert.True(t, math.IsInf(r.PDF, 1))
	assert.Equal(t, 0.0, r.CDF)
}
