// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog is the table of supported probability
// distributions.
//
// A Catalog maps each distribution ID to an immutable Descriptor
// holding its name, category, parameter metadata, practical
// parameter ranges and the Formula that evaluates it. Catalogs are
// built once by New and are safe for concurrent use.
package catalog // import "github.com/distcalc/distcalc/catalog"

import (
	"strconv"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

// ErrUnknownDistribution is returned when a distribution ID or name
// is not in the catalog.
var ErrUnknownDistribution = errors.New("unknown distribution")

// ID identifies a distribution in the catalog.
type ID int

const (
	Normal ID = iota
	Exponential
	ChiSquare
	StudentT
	F
	Geometric
	Hypergeometric
	Binomial
	NegativeBinomial
	Poisson
	Gamma
	Beta
	Weibull
	Rayleigh
	Pareto
	Uniform

	numIDs = iota
)

var idNames = [numIDs]string{
	Normal:           "normal",
	Exponential:      "exponential",
	ChiSquare:        "chi_square",
	StudentT:         "t",
	F:                "f",
	Geometric:        "geometric",
	Hypergeometric:   "hypergeometric",
	Binomial:         "binomial",
	NegativeBinomial: "negative_binomial",
	Poisson:          "poisson",
	Gamma:            "gamma",
	Beta:             "beta",
	Weibull:          "weibull",
	Rayleigh:         "rayleigh",
	Pareto:           "pareto",
	Uniform:          "uniform",
}

// String returns the snake-case identifier of id.
func (id ID) String() string {
	if id < 0 || id >= numIDs {
		return "ID(" + strconv.Itoa(int(id)) + ")"
	}
	return idNames[id]
}

// Category distinguishes continuous from discrete distributions.
type Category int

const (
	Continuous Category = iota
	Discrete
)

func (c Category) String() string {
	switch c {
	case Continuous:
		return "continuous"
	case Discrete:
		return "discrete"
	}
	return "Category(" + strconv.Itoa(int(c)) + ")"
}

// A Range is a closed interval [Min, Max] of parameter values.
//
// Ranges in the catalog are practical ranges: bounds on the inputs
// the engine is expected to handle well. They are policy, and are
// narrower than the mathematical domain checked by
// Descriptor.Validate.
type Range struct {
	Min, Max float64
}

// Contains reports whether v is in r. NaN is never contained.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp returns the value of r nearest to v.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	} else if v > r.Max {
		return r.Max
	}
	return v
}

// Mid returns the midpoint of r.
func (r Range) Mid() float64 {
	return r.Min + (r.Max-r.Min)/2
}

// A Catalog is an immutable table of distribution descriptors.
type Catalog struct {
	entries []Descriptor
	byName  map[string]ID
}

// New builds a catalog of every supported distribution.
func New() *Catalog {
	entries := registry()
	c := &Catalog{
		entries: entries,
		byName:  make(map[string]ID, 2*len(entries)),
	}
	for _, d := range entries {
		c.byName[normalizeName(d.name)] = d.id
		c.byName[normalizeName(d.id.String())] = d.id
	}
	return c
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns a process-wide catalog, building it on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New()
	})
	return defaultCatalog
}

// Len returns the number of distributions in c.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Contains reports whether id is in c.
func (c *Catalog) Contains(id ID) bool {
	return id >= 0 && int(id) < len(c.entries)
}

// Lookup returns the descriptor of id.
func (c *Catalog) Lookup(id ID) (Descriptor, bool) {
	if !c.Contains(id) {
		return Descriptor{}, false
	}
	return c.entries[id], true
}

// ByIndex returns the i'th descriptor in registration order.
func (c *Catalog) ByIndex(i int) (Descriptor, bool) {
	if i < 0 || i >= len(c.entries) {
		return Descriptor{}, false
	}
	return c.entries[i], true
}

// ByName returns the descriptor whose display name or identifier
// matches name, ignoring case, spaces, hyphens and underscores.
func (c *Catalog) ByName(name string) (Descriptor, error) {
	id, ok := c.byName[normalizeName(name)]
	if !ok {
		return Descriptor{}, errors.Wrapf(ErrUnknownDistribution, "%q", name)
	}
	return c.entries[id], nil
}

// All returns every descriptor in registration order.
func (c *Catalog) All() []Descriptor {
	return append([]Descriptor(nil), c.entries...)
}

// ByCategory returns the descriptors of category cat in
// registration order.
func (c *Catalog) ByCategory(cat Category) []Descriptor {
	var out []Descriptor
	for _, d := range c.entries {
		if d.category == cat {
			out = append(out, d)
		}
	}
	return out
}

// CategoryCount returns the number of distributions of category cat.
func (c *Catalog) CategoryCount(cat Category) int {
	n := 0
	for _, d := range c.entries {
		if d.category == cat {
			n++
		}
	}
	return n
}

// Name returns the display name of id.
func (c *Catalog) Name(id ID) (string, bool) {
	d, ok := c.Lookup(id)
	return d.name, ok
}

// Description returns a one-line description of id.
func (c *Catalog) Description(id ID) (string, bool) {
	d, ok := c.Lookup(id)
	return d.description, ok
}

// Category returns the category of id.
func (c *Catalog) Category(id ID) (Category, bool) {
	d, ok := c.Lookup(id)
	return d.category, ok
}

// ParamCount returns the number of parameters of id.
func (c *Catalog) ParamCount(id ID) (int, bool) {
	d, ok := c.Lookup(id)
	return d.ParamCount(), ok
}

// ParamNames returns the ordered parameter names of id.
func (c *Catalog) ParamNames(id ID) ([]string, bool) {
	d, ok := c.Lookup(id)
	if !ok {
		return nil, false
	}
	return d.ParamNames(), true
}

// ParamRange returns the practical range of parameter i of id.
func (c *Catalog) ParamRange(id ID, i int) (Range, bool) {
	d, ok := c.Lookup(id)
	if !ok {
		return Range{}, false
	}
	return d.Range(i)
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '\'':
			return -1
		}
		return r
	}, strings.ToLower(s))
}
