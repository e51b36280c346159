// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) tableCmd() *cobra.Command {
	var (
		domainOnly bool
		from, to   float64
		steps      int
	)
	cmd := &cobra.Command{
		Use:   "table <dist> [params...]",
		Short: "Evaluate the PDF and CDF at many points",
		Long: `Evaluate <dist> at every x read from stdin, one number per line.
With --steps, evaluate instead at steps+1 evenly spaced points from
--from to --to.

Examples:
  seq 0 10 | pdfcalc table poisson 3
  pdfcalc table --from -3 --to 3 --steps 12 normal 0 1`,
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
			if err := a.checkParams(d, params, domainOnly); err != nil {
				return err
			}

			var xs []float64
			if steps > 0 {
				xs = grid(from, to, steps)
			} else if xs, err = readInput(cmd.InOrStdin()); err != nil {
				return err
			}

			recs := make([]evalRecord, len(xs))
			failed := 0
			for i, x := range xs {
				if recs[i], err = a.evaluate(d, x, params); err != nil {
					failed++
				}
			}
			if failed > 0 {
				a.log.Warn("some points failed to evaluate",
					zap.String("dist", d.Ident()),
					zap.Int("failed", failed),
					zap.Int("points", len(xs)))
			}

			return a.write(cmd.OutOrStdout(), recs, func(w io.Writer) error {
				fmt.Fprintln(w, a.signature(d, params))
				tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
				fprintRow(tw, "x", "pdf", "cdf", "")
				for _, rec := range recs {
					if rec.Error != "" {
						fprintRow(tw, a.fmtNum(float64(rec.X)), "error", rec.Error, "")
						continue
					}
					fprintRow(tw, a.fmtNum(float64(rec.X)), a.fmtNum(float64(rec.PDF)), a.fmtNum(float64(rec.CDF)), "")
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVar(&domainOnly, "domain-only", false, "skip practical range checks")
	cmd.Flags().Float64Var(&from, "from", 0, "first grid point")
	cmd.Flags().Float64Var(&to, "to", 1, "last grid point")
	cmd.Flags().IntVar(&steps, "steps", 0, "number of grid intervals; 0 reads points from stdin")
	return cmd
}

// grid returns steps+1 evenly spaced points from lo to hi.
func grid(lo, hi float64, steps int) []float64 {
	xs := make([]float64, steps+1)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(steps)
	}
	xs[steps] = hi
	return xs
}

// readInput reads newline-separated numbers from r. Blank lines are
// ignored.
func readInput(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return xs, nil
}
