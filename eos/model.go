// Copyright 2024 The Dew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eos implements equations of state for the density of pure water at
// high temperature and pressure. Each model provides a closed-form forward
// relation P(ρ,T) which is inverted by bisection, and the analytic density
// derivative (∂ρ/∂P)_T obtained by implicit differentiation of the same
// forward relation.
//  References:
//   [1] Zhang Z and Duan Z (2005) Prediction of the PVT properties of water over
//       wide range of temperatures and pressures from molecular dynamics
//       simulation, Physics of the Earth and Planetary Interiors, 149, 335-354
//   [2] Zhang C and Duan Z (2009) A model for C-O-H fluid in the Earth's mantle,
//       Geochimica et Cosmochimica Acta, 73, 2089-2102
package eos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/stanroozen/dew/psat"
)

// MolarMass is the molar mass of water [g/mol]
const MolarMass = 18.01528

// State holds the water density and its partial derivatives at one (T,P)
// point, in SI units. Derivatives that the selected model does not define
// are exactly zero, never estimated.
type State struct {
	D   float64 // density ρ [kg/m³]
	DP  float64 // (∂ρ/∂P)_T [kg/(m³・Pa)]
	DT  float64 // (∂ρ/∂T)_P [kg/(m³・K)]
	DTT float64 // ∂²ρ/∂T² [kg/(m³・K²)]
	DTP float64 // ∂²ρ/(∂T∂P)
	DPP float64 // ∂²ρ/∂P²
}

// Model defines a water density equation of state. The empirical relations
// are calibrated in g/cm³, bar and K; the conversion to SI happens in Calc.
type Model interface {
	Init(prms dbf.Params) error              // initialises model parameters
	GetPrms(example bool) dbf.Params         // gets (an example of) parameters
	Pressure(ρ, T float64) float64         // forward relation: P [bar] from ρ [g/cm³] and T [K]
	Density(T, P, tol float64) float64     // inverse relation: ρ [g/cm³] from T [K] and P [bar], |Pcalc-P| ≤ tol [bar]
	DRhoDP(ρ, T float64) float64           // analytic (∂ρ/∂P)_T [g/(cm³・bar)] at ρ [g/cm³], T [K]
}

// allocators maps model names to allocators
var allocators = map[string]func() Model{}

// New returns a new equation-of-state model
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("eos model %q is not available", name)
	}
	return allocator(), nil
}

// bisect inverts the forward relation for density. The bracket [ρmin,ρmax]
// is model specific. The search accepts as soon as |P(ρ)-Ptarget| ≤ tol and
// otherwise returns the last iterate after maxit steps; a degraded estimate
// is preferred over a hard failure since callers set their own tolerance.
func bisect(mdl Model, T, Ptarget, tol, ρmin, ρmax float64) float64 {
	const maxit = 50
	ρ := ρmin
	for it := 0; it < maxit; it++ {
		diff := mdl.Pressure(ρ, T) - Ptarget
		if diff <= tol && diff >= -tol {
			return ρ
		}
		if diff > 0 {
			ρmax = ρ
			ρ = 0.5 * (ρ + ρmin)
		} else {
			ρmin = ρ
			ρ = 0.5 * (ρ + ρmax)
		}
	}
	return ρ
}

// Options holds settings for the SI-level density computation
type Options struct {
	Tol         float64 // bisection pressure tolerance [bar]
	UsePsatPoly bool    // override density with the saturation-curve fit near saturation
	PsatRelTol  float64 // relative proximity tolerance for the override
}

// DefaultOptions returns production-quality settings
func DefaultOptions() Options {
	return Options{Tol: 0.01, PsatRelTol: 1e-3}
}

// Calc computes the water state at temperature T [K] and pressure P [Pa].
// When the saturation override is enabled and (T,P) is near the saturation
// curve, the density comes from the dedicated saturated-liquid fit; that fit
// carries no consistent P or T slope, so all derivatives are zeroed there
// instead of mixing mismatched values from the bulk model.
func Calc(mdl Model, T, P float64, o Options) (s State) {
	if o.UsePsatPoly && psat.Near(T, P, o.PsatRelTol) {
		s.D = psat.Density(T)
		return
	}
	Pbar := P * 1e-5
	ρ := mdl.Density(T, Pbar, o.Tol)         // [g/cm³]
	dρdP := mdl.DRhoDP(ρ, T)                 // [g/(cm³・bar)]
	s.D = ρ * 1000.0                         // → kg/m³
	s.DP = dρdP * 0.01                       // (1000 kg/m³ per g/cm³)/(1e5 Pa per bar)
	return
}
