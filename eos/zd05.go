// Copyright 2024 The Dew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ZhangDuan05 implements the Zhang & Duan (2005) virial-type equation of
// state, the standard density model of the DEW calibration range
// (25-1000 °C, up to 60 kbar)
type ZhangDuan05 struct {

	// parameters
	ρmin float64 // lower bisection bracket [g/cm³]
	ρmax float64 // upper bisection bracket [g/cm³]
}

// constants of the reduced-variable expansion
const (
	zd05R  = 83.144      // gas constant [cm³・bar/(mol・K)]
	zd05Vc = 55.9480373  // critical molar volume [cm³/mol]
	zd05Tc = 647.25      // critical temperature [K]
)

// add model to factory
func init() {
	allocators["zd05"] = func() Model { return new(ZhangDuan05) }
}

// Init initialises model
func (o *ZhangDuan05) Init(prms dbf.Params) (err error) {
	o.ρmin = 1e-5
	o.ρmax = 2.5
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "rhomin":
			o.ρmin = p.V
		case "rhomax":
			o.ρmax = p.V
		default:
			return chk.Err("zd05: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example of) parameters
func (o ZhangDuan05) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "rhomin", V: 1e-5},
			&dbf.P{N: "rhomax", V: 2.5},
		}
	}
	return dbf.Params{
		&dbf.P{N: "rhomin", V: o.ρmin},
		&dbf.P{N: "rhomax", V: o.ρmax},
	}
}

// virial computes the temperature coefficients of the expansion
func (o ZhangDuan05) virial(Tr float64) (B, C, D, E, f, g float64) {
	Tr2 := Tr * Tr
	Tr3 := Tr2 * Tr
	B = 0.349824207 - 2.91046273/Tr2 + 2.00914688/Tr3
	C = 0.112819964 + 0.748997714/Tr2 - 0.87320704/Tr3
	D = 0.0170609505 - 0.0146355822/Tr2 + 0.0579768283/Tr3
	E = -0.000841246372 + 0.00495186474/Tr2 - 0.00916248538/Tr3
	f = -0.100358152 / Tr
	g = -0.00182674744 * Tr
	return
}

// Pressure computes P [bar] from ρ [g/cm³] and T [K]
func (o ZhangDuan05) Pressure(ρ, T float64) float64 {
	Vr := MolarMass / (ρ * zd05Vc)
	Tr := T / zd05Tc
	B, C, D, E, f, g := o.virial(Tr)
	Vr2 := Vr * Vr
	Vr4 := Vr2 * Vr2
	Vr5 := Vr4 * Vr
	δ := 1.0 + B/Vr + C/Vr2 + D/Vr4 + E/Vr5 +
		(f/Vr2+g/Vr4)*math.Exp(-0.0105999998/Vr2)
	return zd05R * T * ρ * δ / MolarMass
}

// Density computes ρ [g/cm³] from T [K] and P [bar] by bisection
func (o *ZhangDuan05) Density(T, P, tol float64) float64 {
	return bisect(o, T, P, tol, o.ρmin, o.ρmax)
}

// DRhoDP computes the analytic (∂ρ/∂P)_T [g/(cm³・bar)] by implicit
// differentiation of the forward relation. Note that the exponential
// prefactor g differs from the one in Pressure: it absorbs the inner
// derivative of the exp(-c/Vr²) term.
func (o ZhangDuan05) DRhoDP(ρ, T float64) float64 {
	Tr := T / zd05Tc
	cc := zd05Vc / MolarMass
	Vr := MolarMass / (ρ * zd05Vc)
	B, C, D, E, f, _ := o.virial(Tr)
	g := 0.0105999998 * Tr
	Vr2 := Vr * Vr
	Vr4 := Vr2 * Vr2
	Vr5 := Vr4 * Vr
	ex := math.Exp(-0.0105999998 / Vr2)
	δ := 1.0 + B/Vr + C/Vr2 + D/Vr4 + E/Vr5 + (f/Vr2+g/Vr4)*ex
	cc2 := cc * cc
	cc4 := cc2 * cc2
	ρ3 := ρ * ρ * ρ
	ρ4 := ρ3 * ρ
	κ := B*cc + 2.0*C*cc2*ρ + 4.0*D*cc4*ρ3 + 5.0*E*cc4*cc*ρ4 +
		(2.0*f*cc2*ρ+4.0*g*cc4*ρ3-(f/Vr2+g/Vr4)*(2.0*0.0105999998*cc2*ρ))*ex
	return MolarMass / (zd05R * T * (δ + ρ*κ))
}
