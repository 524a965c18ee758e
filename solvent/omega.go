// Copyright 2024 The Dew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solvent

import (
	"math"

	"github.com/stanroozen/dew/eos"
)

// Eta is the Born constant η [cal・Å/mol]
const Eta = 166027.0

// BornPrms holds the species constants of the effective Born coefficient
type BornPrms struct {
	Wref   float64 // reference ω at 25 °C, 1 bar [J/mol]
	Z      float64 // ionic charge [-]
	Pinned bool    // ω held fixed at Wref (hydrogen convention)
}

// OmegaOptions holds settings for Omega and DOmegaDP
type OmegaOptions struct {
	MaxPressure float64 // above this pressure ω is held at Wref [Pa]
	Solvent     Options // settings for the underlying g function
}

// DefaultOmegaOptions returns default settings: pressure variation of ω is
// suppressed above 6 kbar, where g is effectively zero.
func DefaultOmegaOptions() OmegaOptions {
	return OmegaOptions{
		MaxPressure: 6000e5,
	}
}

// reref computes the reference electrostatic radius [Å] from Wref and Z.
// The second return value reports whether the algebra is degenerate.
func reref(wrefCal, Z float64) (float64, bool) {
	denom := wrefCal/Eta + Z/3.082
	if denom == 0 {
		return 0, false
	}
	return Z * Z / denom, true
}

// Omega computes the effective Born coefficient ω(T,P) [J/mol]. Neutral
// species, pinned species, and pressures above the cutoff all return Wref.
func Omega(T, P float64, s eos.State, bp BornPrms, o OmegaOptions) float64 {
	if bp.Z == 0 || bp.Pinned || P > o.MaxPressure {
		return bp.Wref
	}
	wrefCal := bp.Wref / 4.184
	re0, ok := reref(wrefCal, bp.Z)
	if !ok {
		return bp.Wref
	}
	g := G(T, P, s, o.Solvent)
	re := re0 + math.Abs(bp.Z)*g
	if re <= 0 {
		return bp.Wref
	}
	ωcal := Eta * (bp.Z*bp.Z/re - bp.Z/(3.082+g))
	return ωcal * 4.184
}

// DOmegaDP computes (∂ω/∂P)T [J/(mol・Pa)]. It vanishes whenever Omega
// returns the constant Wref.
func DOmegaDP(T, P float64, s eos.State, bp BornPrms, o OmegaOptions) float64 {
	if bp.Z == 0 || bp.Pinned || P > o.MaxPressure {
		return 0
	}
	wrefCal := bp.Wref / 4.184
	re0, ok := reref(wrefCal, bp.Z)
	if !ok {
		return 0
	}
	g := G(T, P, s, o.Solvent)
	dgdP := DgDP(T, P, s, g, o.Solvent)
	re := re0 + math.Abs(bp.Z)*g
	if re <= 0 {
		return 0
	}
	az := math.Abs(bp.Z)
	term := az*az*az/(re*re) - bp.Z/((3.082+g)*(3.082+g))
	return -Eta * term * dgdP * 4.184
}
