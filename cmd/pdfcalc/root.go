// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/distcalc/distcalc/catalog"
	"github.com/distcalc/distcalc/internal/config"
	"github.com/distcalc/distcalc/internal/logging"
	"github.com/distcalc/distcalc/validate"
)

// app holds the state shared by every subcommand.
type app struct {
	cat *catalog.Catalog
	val *validate.Validator
	cfg *config.Config
	log *zap.Logger

	// Flag values. They override cfg only when set.
	format    string
	precision int
	logLevel  string
	logDev    bool
}

func newRootCmd() *cobra.Command {
	cat := catalog.Default()
	a := &app{
		cat: cat,
		val: validate.New(cat),
		cfg: config.Default(),
		log: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:   "pdfcalc",
		Short: "Probability density and distribution calculator",
		Long: `pdfcalc evaluates the probability density (or mass) and the
cumulative distribution of 16 continuous and discrete distributions.

Distributions may be named by display name, identifier or index:
  pdfcalc eval normal 1.5 0 1
  pdfcalc eval "Negative Binomial" 3 5 0.5
  pdfcalc eval 9 4 2.5`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.format, "format", "f", config.FormatText, "output format: text, json or yaml")
	pf.IntVarP(&a.precision, "precision", "p", 6, "significant digits of printed values")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	pf.BoolVar(&a.logDev, "log-dev", false, "human-readable development logging")

	root.AddCommand(
		a.listCmd(),
		a.describeCmd(),
		a.evalCmd(),
		a.validateCmd(),
		a.tableCmd(),
	)
	return root
}

// setup merges the environment configuration with explicitly set
// flags and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("precision") {
		cfg.Precision = a.precision
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-dev") {
		cfg.Log.Development = a.logDev
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(logging.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
	if err != nil {
		return errors.Wrap(err, "invalid log configuration")
	}
	a.cfg = cfg
	a.log = log.Named("pdfcalc")
	return nil
}

// lookup resolves a distribution by name, identifier or index.
func (a *app) lookup(arg string) (catalog.Descriptor, error) {
	d, err := a.cat.ByName(arg)
	if err == nil {
		return d, nil
	}
	if i, perr := strconv.Atoi(arg); perr == nil {
		if d, ok := a.cat.ByIndex(i); ok {
			return d, nil
		}
	}
	return catalog.Descriptor{}, err
}

// parseFloats parses every element of args as a float64.
func parseFloats(args []string) ([]float64, error) {
	vs := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		vs[i] = v
	}
	return vs, nil
}
