// Copyright 2024 The Dew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dielec implements dielectric-constant models for water and the
// Born coefficients derived from them. Four models are available:
//  "jn91"  -- Johnson & Norton (1991)
//  "fr90"  -- Franck et al. (1990)
//  "fe97"  -- Fernandez et al. (1997)
//  "power" -- power-function fit ε = exp(B(T))・ρ^A(T)
// All models compute ε and (∂ε/∂ρ)T from temperature and density; pressure
// derivatives follow by the chain rule through (∂ρ/∂P)T of the equation of
// state.
package dielec

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/stanroozen/dew/eos"
	"github.com/stanroozen/dew/psat"
)

// Model defines the interface for dielectric-constant models.
// Temperature is given in K and density in g/cm³.
type Model interface {
	Init(prms dbf.Params) error           // initialises model
	GetPrms(example bool) dbf.Params      // gets parameters
	Epsilon(T, ρ float64) float64       // dielectric constant [-]
	DEpsDRho(T, ρ float64) float64      // (∂ε/∂ρ)T [cm³/g]
}

// Electro holds the dielectric constant, its pressure derivative, and the
// Born coefficients of water. Pressure derivatives are per Pa.
type Electro struct {
	Epsilon  float64 // dielectric constant [-]
	EpsilonP float64 // (∂ε/∂P)T [1/Pa]
	BornZ    float64 // Z = -1/ε [-]
	BornQ    float64 // Q = (∂ε/∂P)T/ε² [1/Pa]
	BornY    float64 // Y = (∂ε/∂T)P/ε² [1/K]
	BornX    float64 // X = (∂Y/∂T)P [1/K²]
	BornN    float64 // N = (∂Q/∂P)T [1/Pa²]
	BornU    float64 // U = (∂Q/∂T)P [1/(Pa・K)]
}

// SatMode selects how properties along the liquid-vapour saturation curve
// replace the primary model output.
type SatMode int

const (
	SatNone     SatMode = iota // primary model stands everywhere
	SatWhenNear                // polynomial fits replace ε, Z (and Q) near Psat(T)
	SatForce                   // polynomial fits always replace ε, Z (and Q)
)

// Options holds settings for Calc
type Options struct {
	Mode      SatMode // saturation-curve handling
	RelTol    float64 // relative proximity |P-Psat| ≤ RelTol・Psat for SatWhenNear
	OverrideQ bool    // also replace Q with the saturation-curve fit
}

// DefaultOptions returns default settings for Calc
func DefaultOptions() Options {
	return Options{
		Mode:   SatNone,
		RelTol: 1e-3,
	}
}

// allocators holds all available dielectric models
var allocators = map[string]func() Model{}

// New returns a new dielectric model; e.g. "jn91", "fr90", "fe97", "power"
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot find dielectric model named %q", name)
	}
	return allocator(), nil
}

// Calc computes the dielectric constant and Born coefficients from the water
// state s produced by the equation of state. T is in K.
func Calc(mdl Model, T, P float64, s eos.State, o Options) (e Electro) {

	// primary model
	ρ := s.D / 1000.0 // kg/m³ to g/cm³
	e.Epsilon = mdl.Epsilon(T, ρ)
	e.EpsilonP = mdl.DEpsDRho(T, ρ) * s.DP / 1000.0
	if e.Epsilon != 0 {
		e.BornZ = -1.0 / e.Epsilon
		e.BornQ = e.EpsilonP / (e.Epsilon * e.Epsilon)
	}

	// saturation-curve overrides
	switch o.Mode {
	case SatWhenNear:
		if psat.Near(T, P, o.RelTol) {
			applySatOverrides(T, o, &e)
		}
	case SatForce:
		applySatOverrides(T, o, &e)
	}
	return
}

// applySatOverrides replaces ε, Z (and optionally Q) with the polynomial fits
// along Psat(T). The fits define only the T-dependence, so the pressure
// derivative of ε is cleared.
func applySatOverrides(T float64, o Options, e *Electro) {
	e.Epsilon = psat.Epsilon(T)
	e.EpsilonP = 0
	e.BornZ = 0
	if e.Epsilon != 0 {
		e.BornZ = -1.0 / e.Epsilon
	}
	if o.OverrideQ {
		e.BornQ = psat.BornQ(T)
	}
	e.BornY, e.BornX, e.BornN, e.BornU = 0, 0, 0, 0
}
