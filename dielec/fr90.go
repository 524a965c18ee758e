// Copyright 2024 The Dew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dielec

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Franck90 implements the Franck et al. (1990) dielectric-constant model,
// a Kirkwood-type expansion in the reduced dipolar density.
type Franck90 struct{}

// cgs constants
const (
	fr90Omega = 2.68e-8     // Lennard-Jones distance [cm]
	fr90KB    = 1.380648e-16 // Boltzmann constant [erg/K]
	fr90Na    = 6.022e23    // Avogadro's number [1/mol]
	fr90Mu    = 2.33e-18    // dipole moment [statC・cm]
)

// add model to factory
func init() {
	allocators["fr90"] = func() Model { return new(Franck90) }
}

// Init initialises model
func (o *Franck90) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		return chk.Err("fr90: parameter named %q is incorrect", p.N)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Franck90) GetPrms(example bool) dbf.Params {
	return dbf.Params{}
}

// reduced computes the reduced density, dipolar strength and expansion
// coefficients
func (o Franck90) reduced(T, ρ float64) (ρs, y, f1, f2, f3 float64) {
	cc := fr90Omega * fr90Omega * fr90Omega * fr90Na
	ρs = ρ * 0.055508 * cc // [mol/cm³] scaled by ω³・Na
	μ2 := fr90Mu * fr90Mu
	mustar := μ2 / (fr90KB * T * fr90Omega * fr90Omega * fr90Omega)
	y = (4.0 * math.Pi / 9.0) * ρs * mustar
	f1 = 0.4341 * ρs * ρs
	f2 = -(0.05 + 0.75*ρs*ρs*ρs)
	f3 = -0.026*ρs*ρs + 0.173*ρs*ρs*ρs*ρs
	return
}

// Epsilon computes ε from T [K] and ρ [g/cm³]
func (o Franck90) Epsilon(T, ρ float64) float64 {
	_, y, f1, f2, f3 := o.reduced(T, ρ)
	term := 1.0 + (1.0-f1)*y + f2*y*y + f3*y*y*y
	return (3.0*y/(1.0-f1*y))*term + 1.0
}

// DEpsDRho computes (∂ε/∂ρ)T [cm³/g]. The truncated conversion factor
// 0.05508 is retained from the source calibration.
func (o Franck90) DEpsDRho(T, ρ float64) float64 {
	_, y, f1, f2, f3 := o.reduced(T, ρ)
	cc := fr90Omega * fr90Omega * fr90Omega * fr90Na
	ρmol := ρ * 0.055508
	μ2 := fr90Mu * fr90Mu
	mustar := μ2 / (fr90KB * T * fr90Omega * fr90Omega * fr90Omega)

	dydρ := (4.0 * math.Pi / 9.0) * mustar * cc
	df1dρ := 2.0 * 0.4341 * cc * cc * ρmol
	df2dρ := -3.0 * 0.75 * cc * cc * cc * ρmol * ρmol
	df3dρ := -2.0*0.026*cc*cc*ρmol + 4.0*0.173*math.Pow(cc, 4.0)*ρmol*ρmol*ρmol

	ε := o.Epsilon(T, ρ)
	d := 1.0 - f1*y
	term1 := (dydρ + y*y*df1dρ) / d * (ε - 1.0) / y
	term2 := (3.0 * y / d) * (-df1dρ*y + df2dρ*y*y + df3dρ*y*y*y +
		(1.0-f1+2.0*f2*y+3.0*f3*y*y)*dydρ)
	return 0.05508 * (term1 + term2)
}
