// Copyright 2024 The Dew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solvent implements the g solvent function of Shock et al. (1992)
// with the high-temperature recalibration used for deep crustal and upper
// mantle conditions, and the effective Born coefficient ω(T,P) built on it.
package solvent

import (
	"math"

	"github.com/stanroozen/dew/eos"
	"github.com/stanroozen/dew/psat"
)

// Options holds settings for the g function
type Options struct {
	Sat bool // evaluate along the liquid-vapour saturation curve
}

// agbg computes the temperature coefficients of the g function. TC is in °C.
func agbg(TC float64) (ag, bg float64) {
	ag = -2.037662 + 0.005747*TC - 6.557892e-6*TC*TC
	bg = 6.107361 - 0.01074377*TC + 1.268348e-5*TC*TC
	return
}

// fcorr computes the low-pressure correction f. It is nonzero only for
// 155 ≤ TC ≤ 355 °C and P ≤ 1000 bar.
func fcorr(TC, Pbar float64) float64 {
	if Pbar > 1000.0 || TC < 155.0 || TC > 355.0 {
		return 0
	}
	x := (TC - 155.0) / 300.0
	xa := math.Pow(x, 4.8)
	xb := math.Pow(x, 16.0)
	d := 1000.0 - Pbar
	return (xa + 36.66666*xb) * (-1.504956e-10*d*d*d + 5.017997e-14*d*d*d*d)
}

// dfcorrDP computes ∂f/∂P [1/bar] inside the correction window
func dfcorrDP(TC, Pbar float64) float64 {
	if Pbar > 1000.0 || TC < 155.0 || TC > 355.0 {
		return 0
	}
	x := (TC - 155.0) / 300.0
	xa := math.Pow(x, 4.8)
	xb := math.Pow(x, 16.0)
	d := 1000.0 - Pbar
	return -(xa + 36.66666*xb) * (3.0*-1.504956e-10*d*d + 4.0*5.017997e-14*d*d*d)
}

// G computes the solvent function g [Å] at T [K] and P [Pa], with the water
// state s from the equation of state. For liquid-like densities ρ ≥ 1 g/cm³
// the function is exactly zero.
func G(T, P float64, s eos.State, o Options) float64 {
	TC := T - 273.15
	ρ := s.D / 1000.0  // g/cm³
	Pbar := P * 1e-5
	if o.Sat {
		ρ = psat.Density(T) / 1000.0
		Pbar = psat.Pressure(T) * 1e-5
	}
	if ρ >= 1.0 {
		return 0
	}
	ag, bg := agbg(TC)
	f := fcorr(TC, Pbar)
	return ag*math.Pow(1.0-ρ, bg) - f
}

// DgDP computes (∂g/∂P)T [1/Pa] given g previously computed by G
func DgDP(T, P float64, s eos.State, g float64, o Options) float64 {
	if o.Sat {
		return psat.DgDP(T)
	}
	TC := T - 273.15
	ρ := s.D / 1000.0
	Pbar := P * 1e-5
	if ρ >= 1.0 {
		return 0
	}
	_, bg := agbg(TC)
	dρdPbar := s.DP * 100.0 // (kg/m³)/Pa to (g/cm³)/bar
	dgdPbar := -bg*dρdPbar*g/(1.0-ρ) - dfcorrDP(TC, Pbar)
	return dgdPbar * 1e-5
}
