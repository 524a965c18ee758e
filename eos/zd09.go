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

// ZhangDuan09 implements the Zhang & Duan (2009) mantle-fluid equation of
// state. The relation is written in corresponding-state variables scaled by
// the Lennard-Jones parameters of water.
type ZhangDuan09 struct {

	// parameters
	ρmin float64 // lower bisection bracket [g/cm³]
	ρmax float64 // upper bisection bracket [g/cm³]
}

// constants of the scaled expansion
const (
	zd09R  = 0.083145    // gas constant [dm³・bar/(mol・K)]
	zd09C1 = 6.971118009 // pressure scaling ε/(3.0626・σ³)
	zd09Cd = 475.05656886
	zd09Cv = 0.0021050125
	zd09Ct = 0.3019607843
	zd09Ce = 0.015483335997
	zd09Cf = 0.73226726041
)

// add model to factory
func init() {
	allocators["zd09"] = func() Model { return new(ZhangDuan09) }
}

// Init initialises model
func (o *ZhangDuan09) Init(prms dbf.Params) (err error) {
	o.ρmin = 1e-5
	o.ρmax = 10.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "rhomin":
			o.ρmin = p.V
		case "rhomax":
			o.ρmax = p.V
		default:
			return chk.Err("zd09: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example of) parameters
func (o ZhangDuan09) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "rhomin", V: 1e-5},
			&dbf.P{N: "rhomax", V: 10.0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "rhomin", V: o.ρmin},
		&dbf.P{N: "rhomax", V: o.ρmax},
	}
}

// virial computes the temperature coefficients of the scaled expansion
func (o ZhangDuan09) virial(Tm float64) (B, C, D, E, f float64) {
	Tm2 := Tm * Tm
	Tm3 := Tm2 * Tm
	B = 0.029517729893 - 6337.56452413/Tm2 - 275265.428882/Tm3
	C = 0.00129128089283 - 145.797416153/Tm2 + 76593.8947237/Tm3
	D = 2.58661493537e-06 + 0.52126532146/Tm2 - 139.839523753/Tm3
	E = -2.36335007175e-08 + 0.00535026383543/Tm2 - 0.27110649951/Tm3
	f = 25038.7836486 / Tm3
	return
}

// Pressure computes P [bar] from ρ [g/cm³] and T [K]
func (o ZhangDuan09) Pressure(ρ, T float64) float64 {
	Vm := zd09Cv * (MolarMass / ρ)
	Tm := zd09Ct * T
	B, C, D, E, f := o.virial(Tm)
	Vm2 := Vm * Vm
	Vm4 := Vm2 * Vm2
	Vm5 := Vm4 * Vm
	ex := math.Exp(-zd09Ce / Vm2)
	δ := 1.0 + B/Vm + C/Vm2 + D/Vm4 + E/Vm5 +
		f/Vm2*(zd09Cf+zd09Ce/Vm2)*ex
	return zd09R * Tm * δ / Vm * zd09C1
}

// Density computes ρ [g/cm³] from T [K] and P [bar] by bisection
func (o *ZhangDuan09) Density(T, P, tol float64) float64 {
	return bisect(o, T, P, tol, o.ρmin, o.ρmax)
}

// DRhoDP computes the analytic (∂ρ/∂P)_T [g/(cm³・bar)]
func (o ZhangDuan09) DRhoDP(ρ, T float64) float64 {
	m := MolarMass
	dm := zd09Cd * ρ
	Vm := zd09Cv * (m / ρ)
	Tm := zd09Ct * T
	B, C, D, E, f := o.virial(Tm)
	Vm2 := Vm * Vm
	Vm4 := Vm2 * Vm2
	Vm5 := Vm4 * Vm
	ex := math.Exp(-zd09Ce / Vm2)
	δ := 1.0 + B/Vm + C/Vm2 + D/Vm4 + E/Vm5 +
		f/Vm2*(zd09Cf+zd09Ce/Vm2)*ex
	m2 := m * m
	dm3 := dm * dm * dm
	dm4 := dm3 * dm
	κ := B/m + 2.0*C*dm/m2 + 4.0*D*dm3/math.Pow(m, 4.0) + 5.0*E*dm4/math.Pow(m, 5.0) +
		(2.0*f*dm/m2*(zd09Cf+zd09Ce/Vm2)+
			f/Vm2*(1.0-zd09Cf-zd09Ce/Vm2)*(2.0*zd09Ce*dm/m2))*ex
	return zd09C1 * m / (zd09R * Tm * (δ + dm*κ))
}
