// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/distcalc/distcalc/catalog"
	"github.com/distcalc/distcalc/validate"
)

func (a *app) validateCmd() *cobra.Command {
	var (
		domainOnly bool
		index      int
	)
	cmd := &cobra.Command{
		Use:   "validate <dist> [params...]",
		Short: "Check distribution parameters",
		Long: `Check parameters against the practical range and the mathematical
constraints of <dist>. On failure the offending parameter and, where
one exists, a suggested replacement value are reported.

With --index, a single value is checked as parameter <index>.

Examples:
  pdfcalc validate hypergeometric 5 10 2
  pdfcalc validate --index 1 normal 0`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			params, err := parseFloats(args[1:])
			if err != nil {
				return err
			}

			var o validate.Outcome
			switch {
			case cmd.Flags().Changed("index"):
				if len(params) != 1 {
					return errors.Newf("--index takes exactly one value, got %d", len(params))
				}
				o = a.val.ValidateSingle(d.ID(), index, params[0])
			case domainOnly:
				o = a.val.ValidateDomain(d.ID(), params)
			default:
				o = a.val.ValidateAll(d.ID(), params)
			}
			a.log.Debug("validate",
				zap.String("dist", d.Ident()),
				zap.Float64s("params", params),
				zap.Stringer("code", o.Code))

			rec := a.outcome(d, o)
			if err := a.write(cmd.OutOrStdout(), rec, func(w io.Writer) error {
				return a.printOutcome(w, d, rec)
			}); err != nil {
				return err
			}
			return o.Err()
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVar(&domainOnly, "domain-only", false, "check only the mathematical domain")
	cmd.Flags().IntVar(&index, "index", 0, "check a single value as this parameter")
	return cmd
}

func (a *app) outcome(d catalog.Descriptor, o validate.Outcome) outcomeRecord {
	rec := outcomeRecord{
		Dist:    d.Ident(),
		Code:    o.Code.String(),
		Valid:   o.OK(),
		Message: o.Message,
	}
	if o.HasIndex {
		i := o.Index
		rec.Index = &i
	}
	if o.HasSuggestion {
		s := a.num(o.Suggested)
		rec.Suggestion = &s
	}
	return rec
}

func (a *app) printOutcome(w io.Writer, d catalog.Descriptor, rec outcomeRecord) error {
	if rec.Valid {
		_, err := fmt.Fprintf(w, "%s: parameters valid\n", d.Name())
		return err
	}
	fmt.Fprintf(w, "%s: %s\n", d.Name(), rec.Code)
	if rec.Message != "" {
		fmt.Fprintf(w, "  %s\n", rec.Message)
	}
	if rec.Index != nil {
		param := strconv.Itoa(*rec.Index)
		if name, ok := d.ParamName(*rec.Index); ok {
			param = name
		}
		fmt.Fprintf(w, "  parameter %s", param)
		if rec.Suggestion != nil {
			fmt.Fprintf(w, ", try %s", a.fmtNum(float64(*rec.Suggestion)))
		}
		fmt.Fprintln(w)
	}
	return nil
}
