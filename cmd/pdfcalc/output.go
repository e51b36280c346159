// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-yaml"

	"github.com/distcalc/distcalc/catalog"
	"github.com/distcalc/distcalc/internal/config"
)

// number is a float64 that encodes non-finite values as JSON
// strings. YAML encodes them natively as .inf and .nan.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return json.Marshal(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// round rounds v to prec significant digits.
func round(v float64, prec int) number {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return number(v)
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', prec, 64), 64)
	if err != nil {
		return number(v)
	}
	return number(r)
}

func (a *app) num(v float64) number {
	return round(v, a.cfg.Precision)
}

func (a *app) fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'g', a.cfg.Precision, 64)
}

func (a *app) nums(vs []float64) []number {
	out := make([]number, len(vs))
	for i, v := range vs {
		out[i] = a.num(v)
	}
	return out
}

// paramInfo describes one distribution parameter.
type paramInfo struct {
	Name string `json:"name"`
	Min  number `json:"min"`
	Max  number `json:"max"`
}

// distInfo describes a catalog entry.
type distInfo struct {
	Index       int         `json:"index"`
	Ident       string      `json:"ident"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Description string      `json:"description,omitempty"`
	Params      []paramInfo `json:"params,omitempty"`
}

func (a *app) info(d catalog.Descriptor, detailed bool) distInfo {
	info := distInfo{
		Index:    int(d.ID()),
		Ident:    d.Ident(),
		Name:     d.Name(),
		Category: d.Category().String(),
	}
	if !detailed {
		return info
	}
	info.Description = d.Description()
	for i, name := range d.ParamNames() {
		r, _ := d.Range(i)
		info.Params = append(info.Params, paramInfo{name, a.num(r.Min), a.num(r.Max)})
	}
	return info
}

// evalRecord is the result of evaluating a distribution at one point.
type evalRecord struct {
	Dist   string   `json:"dist"`
	Params []number `json:"params"`
	X      number   `json:"x"`
	PDF    number   `json:"pdf"`
	CDF    number   `json:"cdf"`
	Error  string   `json:"error,omitempty"`
}

// outcomeRecord is a validation outcome.
type outcomeRecord struct {
	Dist       string  `json:"dist"`
	Code       string  `json:"code"`
	Valid      bool    `json:"valid"`
	Message    string  `json:"message,omitempty"`
	Index      *int    `json:"index,omitempty"`
	Suggestion *number `json:"suggestion,omitempty"`
}

// write encodes v in the configured format. In text format it calls
// text instead.
func (a *app) write(w io.Writer, v any, text func(w io.Writer) error) error {
	switch a.cfg.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "encoding JSON")
	case config.FormatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		_, err = w.Write(b)
		return err
	}
	return text(w)
}

// signature formats d and its parameter values, such as
// "Normal(mean=0, std_dev=1)".
func (a *app) signature(d catalog.Descriptor, params []float64) string {
	s := d.Name() + "("
	for i, v := range params {
		if i > 0 {
			s += ", "
		}
		if name, ok := d.ParamName(i); ok {
			s += name + "="
		}
		s += a.fmtNum(v)
	}
	return s + ")"
}

func fprintRow(w io.Writer, cols ...string) error {
	for i, c := range cols {
		sep := "\t"
		if i == len(cols)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprint(w, c, sep); err != nil {
			return err
		}
	}
	return nil
}
