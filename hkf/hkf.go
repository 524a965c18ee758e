// Copyright 2024 The Dew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hkf evaluates the standard-state thermodynamic properties of
// aqueous species with the revised Helgeson-Kirkham-Flowers equations,
// using the deep-water solvent models for the Born terms.
package hkf

import (
	"math"

	"github.com/stanroozen/dew/inp"
	"github.com/stanroozen/dew/solvent"
	"github.com/stanroozen/dew/water"
)

// reference state constants
const (
	Tr    = 298.15          // reference temperature [K]
	Pr    = 1.0e5           // reference pressure [Pa]
	Zr    = -1.278055636e-02 // Born Z at Tr, Pr [-]
	Yr    = -5.795424563e-05 // Born Y at Tr, Pr [1/K]
	theta = 228.0           // solvent characteristic θ [K]
	psi   = 2600.0e5        // solvent characteristic ψ [Pa]
)

// Result holds the standard-state properties of one species
type Result struct {
	G0  float64 // standard molar Gibbs energy [J/mol]
	H0  float64 // standard molar enthalpy [J/mol]
	V0  float64 // standard molar volume [m³/mol]
	Cp0 float64 // standard molar isobaric heat capacity [J/(mol・K)]
	VT0 float64 // (∂V0/∂T)P [m³/(mol・K)]
	VP0 float64 // (∂V0/∂P)T [m³/(mol・Pa)]
}

// Options holds settings for Calc
type Options struct {
	Water    water.Options        // water model selections
	Omega    solvent.OmegaOptions // Born coefficient settings
	SkipBorn bool                 // disable the solvation contribution entirely
}

// DefaultOptions returns default settings for Calc
func DefaultOptions() Options {
	return Options{
		Water: water.DefaultOptions(),
		Omega: solvent.DefaultOmegaOptions(),
	}
}

// Calc evaluates the standard-state properties of species sp at T [K] and
// P [Pa]. The solvation terms use the effective Born coefficient ω(T,P);
// its temperature derivatives are approximated through the Born functions
// of the dielectric model.
func Calc(sp *inp.Species, T, P float64, o Options) (res Result, err error) {

	// water state, with the ω stage bound to this species
	wo := o.Water
	if !o.SkipBorn {
		wo.WithOmega = true
		wo.Born = solvent.BornPrms{Wref: sp.Wref, Z: sp.Charge, Pinned: sp.Pinned}
		wo.Omega = o.Omega
	}
	ws, err := water.Calc(T, P, wo)
	if err != nil {
		return
	}
	we := ws.Electro

	// Born coefficient and derivatives
	var w, wP, wT, wTT, wTP, wPP float64
	if !o.SkipBorn {
		w = ws.Omega
		wP = ws.DOmegaDP
		if we.BornZ != 0 {
			wT = -w * we.BornY / we.BornZ
			wTT = -w * we.BornX / we.BornZ
		}
	}

	// non-solvation contributions
	Tth := T - theta
	Tth2 := Tth * Tth
	Tth3 := Tth2 * Tth
	psiP := psi + P
	psiPr := psi + Pr
	lnψ := math.Log(psiP / psiPr)

	res.V0 = sp.A1 + sp.A2/psiP + (sp.A3+sp.A4/psiP)/Tth -
		w*we.BornQ - (we.BornZ+1.0)*wP

	res.VT0 = -(sp.A3+sp.A4/psiP)/Tth2 - wT*we.BornQ - w*we.BornU -
		we.BornY*wP - (we.BornZ+1.0)*wTP

	res.VP0 = -sp.A2/(psiP*psiP) - sp.A4/(psiP*psiP*Tth) -
		2.0*wP*we.BornQ - w*we.BornN - (we.BornZ+1.0)*wPP

	res.G0 = sp.Gf - sp.Sr*(T-Tr) - sp.C1*(T*math.Log(T/Tr)-T+Tr) +
		sp.A1*(P-Pr) + sp.A2*lnψ -
		sp.C2*((1.0/Tth-1.0/(Tr-theta))*(theta-T)/theta-
			T/(theta*theta)*math.Log(Tr/T*Tth/(Tr-theta))) +
		(sp.A3*(P-Pr)+sp.A4*lnψ)/Tth -
		w*(we.BornZ+1.0) + sp.Wref*(Zr+1.0) + sp.Wref*Yr*(T-Tr)

	res.H0 = sp.Hf + sp.C1*(T-Tr) - sp.C2*(1.0/Tth-1.0/(Tr-theta)) +
		sp.A1*(P-Pr) + sp.A2*lnψ +
		(2.0*T-theta)/Tth2*(sp.A3*(P-Pr)+sp.A4*lnψ) -
		w*(we.BornZ+1.0) + w*T*we.BornY + T*(we.BornZ+1.0)*wT +
		sp.Wref*(Zr+1.0) - sp.Wref*Tr*Yr

	res.Cp0 = sp.C1 + sp.C2/Tth2 - 2.0*T/Tth3*(sp.A3*(P-Pr)+sp.A4*lnψ) +
		w*T*we.BornX + 2.0*T*we.BornY*wT + T*(we.BornZ+1.0)*wTT

	return
}
