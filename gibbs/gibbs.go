// Copyright 2024 The Dew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gibbs computes the Gibbs free energy of water. Two strategies are
// available: the Delaney & Helgeson (1978) two-dimensional polynomial, and
// the volume-integral model that anchors G at 1 kbar with a temperature
// polynomial and integrates ∫Vm dP above it.
package gibbs

import (
	"math"

	"github.com/stanroozen/dew/eos"
	"github.com/stanroozen/dew/psat"
	"github.com/stanroozen/dew/quad"
)

// Strategy selects the Gibbs free energy model
type Strategy int

const (
	DelaneyHelgeson Strategy = iota // polynomial in T and P, calibrated to 5 kbar
	VolumeIntegral                  // G(1 kbar) anchor + ∫Vm dP, for P ≥ 1 kbar
)

// Options holds settings for Calc
type Options struct {
	Strategy   Strategy    // Gibbs model
	Method     quad.Method // quadrature rule for the volume integral
	Quad       quad.Config // quadrature settings
	EOS        eos.Options // density solver settings for the integrand
	UsePsat    bool        // override with the saturation-curve fit near Psat(T)
	PsatRelTol float64     // proximity |P-Psat| ≤ PsatRelTol・Psat
}

// DefaultOptions returns default settings for Calc
func DefaultOptions() Options {
	return Options{
		Strategy:   VolumeIntegral,
		Method:     quad.GaussLegendre,
		Quad:       quad.DefaultConfig(),
		EOS:        eos.DefaultOptions(),
		PsatRelTol: 1e-3,
	}
}

// Delaney & Helgeson (1978) coefficients; G in cal/mol with T in °C, P in bar
var dhc = []float64{
	-56130.073,
	0.38101798,
	-2.1167697e-6,
	2.0266445e-11,
	-8.3225572e-17,
	-15.285559,
	1.375239e-4,
	-1.5586868e-9,
	6.6329577e-15,
	-0.026092451,
	3.5988857e-8,
	-2.7916588e-14,
	1.7140501e-5,
	-1.6860893e-11,
	-6.0126987e-9,
}

// DelaneyHelgeson78 computes G [J/mol] from the two-dimensional polynomial
func DelaneyHelgeson78(T, P float64) float64 {
	TC := T - 273.15
	Pbar := P * 1e-5
	G := 0.0
	idx := 0
	for j := 0; j <= 4; j++ {
		Tj := math.Pow(TC, float64(j))
		for k := 0; k <= 4-j; k++ {
			G += dhc[idx] * Tj * math.Pow(Pbar, float64(k))
			idx++
		}
	}
	return G * 4.184
}

// GAtOneKb computes the 1 kbar anchor G [cal/mol] as a polynomial in TC [°C],
// calibrated for 100-1000 °C
func GAtOneKb(TC float64) float64 {
	return 2.6880734e-9*math.Pow(TC, 4.0) +
		6.3163061e-7*math.Pow(TC, 3.0) -
		1.9372355e-2*TC*TC -
		16.945093*TC -
		55769.287
}

// IntegrateVolume computes ∫Vm dP [J/mol] from 1 kbar to P [Pa] with the
// molar volume from the given equation of state. For P ≤ 1 kbar the result
// is exactly zero.
func IntegrateVolume(mdl eos.Model, T, P float64, o Options) (float64, error) {
	const Panchor = 1000e5
	if P <= Panchor {
		return 0, nil
	}
	vm := func(p float64) float64 {
		s := eos.Calc(mdl, T, p, o.EOS)
		if s.D <= 0 {
			return 0
		}
		return eos.MolarMass * 1e-3 / s.D // [m³/mol]
	}
	return quad.Integrate(vm, Panchor, P, o.Method, o.Quad)
}

// Calc computes the Gibbs free energy of water G [J/mol] at T [K] and
// P [Pa]. With the VolumeIntegral strategy, pressures at or below 1 kbar
// return the anchor polynomial alone.
func Calc(mdl eos.Model, T, P float64, o Options) (G float64, err error) {
	switch o.Strategy {
	case DelaneyHelgeson:
		G = DelaneyHelgeson78(T, P)
	case VolumeIntegral:
		G = GAtOneKb(T-273.15) * 4.184
		var dG float64
		dG, err = IntegrateVolume(mdl, T, P, o)
		if err != nil {
			return
		}
		G += dG
	}
	if o.UsePsat && psat.Near(T, P, o.PsatRelTol) {
		G = psat.Gibbs(T)
	}
	return
}
