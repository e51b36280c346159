// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pdfcalc evaluates the density and cumulative distribution of the
// distributions in the catalog.
//
// Usage:
//
//	pdfcalc list [--category continuous|discrete]
//	pdfcalc describe <dist>
//	pdfcalc eval <dist> <x> <params...>
//	pdfcalc validate <dist> <params...>
//	pdfcalc table <dist> <params...> < xs
//
// <dist> is a catalog name ("Negative Binomial"), identifier
// ("negative_binomial") or index. Environment variables PDFCALC_FORMAT,
// PDFCALC_PRECISION, PDFCALC_LOG_LEVEL and PDFCALC_LOG_DEV set
// defaults for the corresponding flags.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
