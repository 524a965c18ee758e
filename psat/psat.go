// Copyright 2024 The Dew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package psat implements the liquid-vapour saturation curve of water: the
// Wagner-Pruss auxiliary correlation for the saturation pressure Psat(T) and
// the DEW closed-form fits of water properties evaluated along the curve.
//  References:
//   [1] Wagner W and Pruss A (1993) International equations for the saturation
//       properties of ordinary water substance, J Phys Chem Ref Data, 22, 783-787
//   [2] Sverjensky DA, Harrison B and Azzolini D (2014) Water in the deep Earth:
//       the dielectric constant and the solubilities of quartz and corundum to
//       60 kb and 1200 °C, Geochimica et Cosmochimica Acta, 129, 125-145
package psat

import "math"

// critical point of water
const (
	Tcrit = 647.096  // [K]
	Pcrit = 22.064e6 // [Pa]
)

// celsius converts temperature from Kelvin
func celsius(T float64) float64 { return T - 273.15 }

// Pressure computes the saturation pressure Psat [Pa] at temperature T [K]
// using the Wagner-Pruss auxiliary equation [1]. Valid from the triple point
// up to the critical point; above Tcrit the curve does not exist and zero is
// returned.
func Pressure(T float64) float64 {
	if T <= 0 || T >= Tcrit {
		return 0
	}
	τ := 1.0 - T/Tcrit
	τ3 := τ * τ * τ
	s := -7.85951783*τ +
		1.84408259*τ*math.Sqrt(τ) +
		-11.7866497*τ3 +
		22.6807411*τ3*math.Sqrt(τ) +
		-15.9618719*τ3*τ +
		1.80122502*τ3*τ3*math.Sqrt(τ3)
	return Pcrit * math.Exp(Tcrit/T*s)
}

// Near tells whether (T,P) lies within the relative tolerance reltol of the
// saturation curve; i.e. |P - Psat(T)| ≤ reltol・Psat(T). T is in K, P in Pa.
// A non-positive reltol disables the proximity test.
func Near(T, P, reltol float64) bool {
	if reltol <= 0 {
		return false
	}
	Ps := Pressure(T)
	if !(Ps > 0) {
		return false
	}
	return math.Abs(P-Ps) <= reltol*Ps
}

// Density returns the saturated-liquid density [kg/m³] at T [K] from the DEW
// polynomial fit in Celsius temperature [2]
func Density(T float64) float64 {
	t := celsius(T)
	t2 := t * t
	t3 := t2 * t
	t4 := t2 * t2
	t10 := math.Pow(t, 10.0)
	t40 := math.Pow(t, 40.0)
	ρ := -1.01023381581205e-104*t40 +
		-1.1368599785953e-27*t10 +
		-2.11689207168779e-11*t4 +
		1.26878850169523e-08*t3 +
		-4.92010672693621e-06*t2 +
		-3.2666598612692e-05*t +
		1.00046144613017 // [g/cm³]
	return ρ * 1000.0
}

// Epsilon returns the dielectric constant of the saturated liquid at T [K]
func Epsilon(T float64) float64 {
	t := celsius(T)
	t2 := t * t
	t3 := t2 * t
	t30 := math.Pow(t, 30.0)
	return -1.66686763214295e-77*t30 +
		-9.02887020379887e-07*t3 +
		8.4590281449009e-04*t2 +
		-0.396542037778945*t +
		87.605024245432
}

// Gibbs returns the Gibbs free energy of the saturated liquid [J/mol] at T [K]
func Gibbs(T float64) float64 {
	t := celsius(T)
	t2 := t * t
	t3 := t2 * t
	t4 := t2 * t2
	t10 := math.Pow(t, 10.0)
	t40 := math.Pow(t, 40.0)
	G := -2.72980941772081e-103*t40 +
		2.88918186300446e-25*t10 +
		-2.21891314234246e-08*t4 +
		3.0912103873633e-05*t3 +
		-3.20873264480928e-02*t2 +
		-15.169458452209*t +
		-56289.0379433809 // [cal/mol]
	return G * 4.184
}

// BornQ returns the Born Q coefficient [1/Pa] along the saturation curve
func BornQ(T float64) float64 {
	t := celsius(T)
	t2 := t * t
	t3 := t2 * t
	t4 := t2 * t2
	t5 := t4 * t
	t6 := t3 * t3
	t20 := math.Pow(t, 20.0)
	poly := 1.99258688758345e-49*t20 +
		-4.43690270750774e-14*t6 +
		4.29110215680165e-11*t5 +
		-1.07146606081182e-08*t4 +
		1.09982931856694e-06*t3 +
		9.60705240954956e-06*t2 +
		0.642579832259358
	return poly * 1.0e-6 * 1.0e-5 // [1/bar]・1e-6 → [1/Pa]
}

// DgDP returns ∂g/∂P [1/Pa] of the solvent Born-g function along the
// saturation curve. Zero below 0.01 °C where the fit is undefined.
func DgDP(T float64) float64 {
	t := celsius(T)
	if t < 0.01 {
		return 0
	}
	lnt := math.Log(t)
	expo := 1.37105493109451e-10*math.Pow(lnt, 15.0) -
		1.43605469318795e-06*math.Pow(lnt, 10.0) +
		26.2649453651117*lnt -
		125.108856715714
	return math.Exp(expo) * 1.0e-6 * 1.0e-5 // [Å/bar] → per Pa
}
