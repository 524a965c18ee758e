// Copyright 2024 The Dew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dielec

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Fernandez97 implements the Fernandez et al. (1997) dielectric-constant
// formulation, a Harris-Alder g-factor model in SI units.
type Fernandez97 struct{}

// SI constants
const (
	fe97Na    = 6.0221367e23     // Avogadro's number [1/mol]
	fe97Mu    = 6.138e-30        // dipole moment [C・m]
	fe97Eps0  = 8.8541878176204e-12 // vacuum permittivity [C²/(J・m)]
	fe97KB    = 1.380658e-23     // Boltzmann constant [J/K]
	fe97Alpha = 1.636e-40        // molecular polarisability [C²/(J・m²)]
	fe97Dc    = 17873.728        // critical density [mol/m³]
	fe97Tc    = 647.096          // critical temperature [K]
)

// g-factor expansion coefficients
var (
	fe97N = []float64{
		0.978224486826, -0.957771379375, 0.237511794148, 0.714692224396,
		-0.298217036956, -0.108863472196, 0.0949327488264, -0.00980469816509,
		0.000016516763497, 0.0000937359795772, -1.2317921872e-10,
		0.00196096504426,
	}
	fe97I = []float64{1, 1, 1, 2, 3, 3, 4, 5, 6, 7, 10}
	fe97J = []float64{0.25, 1, 2.5, 1.5, 1.5, 2.5, 2, 2, 5, 0.5, 10}
)

// add model to factory
func init() {
	allocators["fe97"] = func() Model { return new(Fernandez97) }
}

// Init initialises model
func (o *Fernandez97) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		return chk.Err("fe97: parameter named %q is incorrect", p.N)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Fernandez97) GetPrms(example bool) dbf.Params {
	return dbf.Params{}
}

// gfactor computes the Harris-Alder g factor and its density derivative.
// d is the molar density [mol/m³]
func (o Fernandez97) gfactor(T, d float64) (g, dgdd float64) {
	x := d / fe97Dc
	tr := fe97Tc / T
	g = 1.0
	for i := 0; i < 11; i++ {
		g += fe97N[i] * math.Pow(x, fe97I[i]) * math.Pow(tr, fe97J[i])
		dgdd += fe97I[i] * fe97N[i] * math.Pow(d, fe97I[i]-1.0) /
			math.Pow(fe97Dc, fe97I[i]) * math.Pow(tr, fe97J[i])
	}
	u := math.Pow(T/228.0-1.0, -1.2)
	g += fe97N[11] * x * u
	dgdd += fe97N[11] / fe97Dc * u
	return
}

// abc computes the A, B, C auxiliary quantities of the closed-form solution
func (o Fernandez97) abc(T, d, g float64) (A, B, C float64) {
	A = fe97Na * fe97Mu * fe97Mu * d * g / (fe97Eps0 * fe97KB * T)
	B = fe97Na * fe97Alpha * d / (3.0 * fe97Eps0)
	C = 9.0 + 2.0*A + 18.0*B + A*A + 10.0*A*B + 9.0*B*B
	return
}

// Epsilon computes ε from T [K] and ρ [g/cm³]
func (o Fernandez97) Epsilon(T, ρ float64) float64 {
	d := ρ * 0.055508 * 1e6 // molar density [mol/m³]
	g, _ := o.gfactor(T, d)
	A, B, C := o.abc(T, d, g)
	return (1.0 + A + 5.0*B + math.Sqrt(C)) / (4.0 - 4.0*B)
}

// DEpsDRho computes (∂ε/∂ρ)T [cm³/g]
func (o Fernandez97) DEpsDRho(T, ρ float64) float64 {
	d := ρ * 0.055508 * 1e6
	g, dgdd := o.gfactor(T, d)
	A, B, C := o.abc(T, d, g)
	ε := (1.0 + A + 5.0*B + math.Sqrt(C)) / (4.0 - 4.0*B)
	dA := A/d + A/g*dgdd
	dB := B / d
	dC := 2.0*dA + 18.0*dB + 2.0*A*dA + 10.0*(dA*B+A*dB) + 18.0*B*dB
	return 55508.0 / (4.0 - 4.0*B) *
		(4.0*dB*ε + dA + 5.0*dB + 0.5*dC/math.Sqrt(C))
}
