// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/distcalc/distcalc/catalog"
)

func (a *app) listCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available distributions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds := a.cat.All()
			switch strings.ToLower(category) {
			case "":
			case "continuous":
				ds = a.cat.ByCategory(catalog.Continuous)
			case "discrete":
				ds = a.cat.ByCategory(catalog.Discrete)
			default:
				return errors.Newf("unknown category %q", category)
			}

			infos := make([]distInfo, len(ds))
			for i, d := range ds {
				infos[i] = a.info(d, false)
			}
			return a.write(cmd.OutOrStdout(), infos, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
				for _, info := range infos {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", info.Index, info.Ident, info.Name, info.Category)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only list continuous or discrete distributions")
	return cmd
}

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <dist>",
		Short: "Show a distribution's parameters and their ranges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			info := a.info(d, true)
			return a.write(cmd.OutOrStdout(), info, func(w io.Writer) error {
				fmt.Fprintf(w, "%s (%s, %s)\n%s\n\n", info.Name, info.Ident, info.Category, info.Description)
				tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
				fmt.Fprintf(tw, "parameter\tmin\tmax\n")
				for _, p := range info.Params {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, a.fmtNum(float64(p.Min)), a.fmtNum(float64(p.Max)))
				}
				return tw.Flush()
			})
		},
	}
}
