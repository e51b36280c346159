// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import "github.com/distcalc/distcalc/stats"

// registry returns the descriptor of every distribution, indexed by
// ID.
func registry() []Descriptor {
	entries := []Descriptor{
		{
			id:          Normal,
			name:        "Normal",
			description: "Normal (Gaussian) distribution",
			category:    Continuous,
			paramNames:  []string{"mean", "std_dev"},
			ranges:      []Range{{-1000, 1000}, {0.001, 1000}},
			formula: continuous[stats.NormalDist]{2, func(p []float64) (stats.NormalDist, bool) {
				return stats.NormalDist{Mu: p[0], Sigma: p[1]}, true
			}},
		},
		{
			id:          Exponential,
			name:        "Exponential",
			description: "Exponential distribution",
			category:    Continuous,
			paramNames:  []string{"lambda"},
			ranges:      []Range{{0.001, 1000}},
			formula: continuous[stats.ExponentialDist]{1, func(p []float64) (stats.ExponentialDist, bool) {
				return stats.ExponentialDist{Rate: p[0]}, true
			}},
		},
		{
			id:          ChiSquare,
			name:        "Chi-Square",
			description: "Chi-square distribution",
			category:    Continuous,
			paramNames:  []string{"degrees_of_freedom"},
			ranges:      []Range{{1, 1000}},
			formula: continuous[stats.ChiSquaredDist]{1, func(p []float64) (stats.ChiSquaredDist, bool) {
				return stats.ChiSquaredDist{K: p[0]}, true
			}},
		},
		{
			id:          StudentT,
			name:        "t-Distribution",
			description: "Student's t-distribution",
			category:    Continuous,
			paramNames:  []string{"degrees_of_freedom"},
			ranges:      []Range{{1, 1000}},
			formula: continuous[stats.TDist]{1, func(p []float64) (stats.TDist, bool) {
				return stats.TDist{V: p[0]}, true
			}},
		},
		{
			id:          F,
			name:        "F-Distribution",
			description: "F-distribution",
			category:    Continuous,
			paramNames:  []string{"df_numerator", "df_denominator"},
			ranges:      []Range{{1, 1000}, {1, 1000}},
			formula: continuous[stats.FDist]{2, func(p []float64) (stats.FDist, bool) {
				return stats.FDist{D1: p[0], D2: p[1]}, true
			}},
		},
		{
			id:          Geometric,
			name:        "Geometric",
			description: "Geometric distribution",
			category:    Discrete,
			paramNames:  []string{"probability"},
			ranges:      []Range{{0.001, 0.999}},
			formula: discrete[stats.GeometricDist]{1, func(p []float64) (stats.GeometricDist, bool) {
				return stats.GeometricDist{P: p[0]}, true
			}},
		},
		{
			id:          Hypergeometric,
			name:        "Hypergeometric",
			description: "Hypergeometric distribution",
			category:    Discrete,
			paramNames:  []string{"population_size", "success_states", "sample_size"},
			ranges:      []Range{{1, 10000}, {0, 10000}, {1, 10000}},
			formula: discrete[stats.HypergeometricDist]{3, func(p []float64) (stats.HypergeometricDist, bool) {
				n, ok := intParams(p...)
				if !ok {
					return stats.HypergeometricDist{}, false
				}
				return stats.HypergeometricDist{N: n[0], K: n[1], Draws: n[2]}, true
			}},
		},
		{
			id:          Binomial,
			name:        "Binomial",
			description: "Binomial distribution",
			category:    Discrete,
			paramNames:  []string{"trials", "probability"},
			ranges:      []Range{{1, 10000}, {0.001, 0.999}},
			formula: discrete[stats.BinomialDist]{2, func(p []float64) (stats.BinomialDist, bool) {
				n, ok := intParam(p[0])
				return stats.BinomialDist{N: n, P: p[1]}, ok
			}},
		},
		{
			id:          NegativeBinomial,
			name:        "Negative Binomial",
			description: "Negative binomial distribution",
			category:    Discrete,
			paramNames:  []string{"successes", "probability"},
			ranges:      []Range{{1, 10000}, {0.001, 0.999}},
			formula: discrete[stats.NegBinomialDist]{2, func(p []float64) (stats.NegBinomialDist, bool) {
				r, ok := intParam(p[0])
				return stats.NegBinomialDist{R: r, P: p[1]}, ok
			}},
		},
		{
			id:          Poisson,
			name:        "Poisson",
			description: "Poisson distribution",
			category:    Discrete,
			paramNames:  []string{"lambda"},
			ranges:      []Range{{0.001, 1000}},
			formula: discrete[stats.PoissonDist]{1, func(p []float64) (stats.PoissonDist, bool) {
				return stats.PoissonDist{Lambda: p[0]}, true
			}},
		},
		{
			id:          Gamma,
			name:        "Gamma",
			description: "Gamma distribution (shape/scale)",
			category:    Continuous,
			paramNames:  []string{"shape", "scale"},
			ranges:      []Range{{0.01, 100}, {0.01, 1000}},
			formula: continuous[stats.GammaDist]{2, func(p []float64) (stats.GammaDist, bool) {
				return stats.GammaDist{Shape: p[0], Scale: p[1]}, true
			}},
		},
		{
			id:          Beta,
			name:        "Beta",
			description: "Beta distribution on [0, 1]",
			category:    Continuous,
			paramNames:  []string{"alpha", "beta"},
			ranges:      []Range{{0.001, 1000}, {0.001, 1000}},
			formula: continuous[stats.BetaDist]{2, func(p []float64) (stats.BetaDist, bool) {
				return stats.BetaDist{Alpha: p[0], Beta: p[1]}, true
			}},
		},
		{
			id:          Weibull,
			name:        "Weibull",
			description: "Weibull distribution",
			category:    Continuous,
			paramNames:  []string{"shape", "scale"},
			ranges:      []Range{{0.001, 1000}, {0.001, 1000}},
			formula: continuous[stats.WeibullDist]{2, func(p []float64) (stats.WeibullDist, bool) {
				return stats.WeibullDist{K: p[0], Lambda: p[1]}, true
			}},
		},
		{
			id:          Rayleigh,
			name:        "Rayleigh",
			description: "Rayleigh distribution",
			category:    Continuous,
			paramNames:  []string{"sigma"},
			ranges:      []Range{{0.001, 1000}},
			formula: continuous[stats.RayleighDist]{1, func(p []float64) (stats.RayleighDist, bool) {
				return stats.RayleighDist{Sigma: p[0]}, true
			}},
		},
		{
			id:          Pareto,
			name:        "Pareto",
			description: "Pareto (type I) distribution",
			category:    Continuous,
			paramNames:  []string{"scale", "shape"},
			ranges:      []Range{{0.001, 1000}, {0.001, 1000}},
			formula: continuous[stats.ParetoDist]{2, func(p []float64) (stats.ParetoDist, bool) {
				return stats.ParetoDist{Xm: p[0], Alpha: p[1]}, true
			}},
		},
		{
			id:          Uniform,
			name:        "Uniform",
			description: "Continuous uniform distribution on [a, b]",
			category:    Continuous,
			paramNames:  []string{"a", "b"},
			ranges:      []Range{{-1000, 1000}, {-1000, 1000}},
			formula: continuous[stats.UniformDist]{2, func(p []float64) (stats.UniformDist, bool) {
				return stats.UniformDist{A: p[0], B: p[1]}, true
			}},
		},
	}
	for i, e := range entries {
		if e.id != ID(i) {
			panic("catalog: registry out of order at " + e.name)
		}
	}
	return entries
}
