// Copyright 2024 The Dew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dielec

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// PowerFn implements the power-function dielectric fit ε = exp(B(T))・ρ^A(T)
// with A and B quadratic in sqrt of the Celsius temperature.
type PowerFn struct{}

// fit coefficients (T in °C)
const (
	pwA1 = -1.57637700752506e-03
	pwA2 = 6.81028783422197e-02
	pwA3 = 0.754875480393944
	pwB1 = -8.01665106535394e-05
	pwB2 = -6.87161761831994e-02
	pwB3 = 4.74797272182151
)

// add model to factory
func init() {
	allocators["power"] = func() Model { return new(PowerFn) }
}

// Init initialises model
func (o *PowerFn) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		return chk.Err("power: parameter named %q is incorrect", p.N)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o PowerFn) GetPrms(example bool) dbf.Params {
	return dbf.Params{}
}

// exponents computes A(T) and B(T). The fit is calibrated above 0 °C.
func (o PowerFn) exponents(T float64) (A, B float64) {
	TC := T - 273.15
	sq := 0.0
	if TC > 0 {
		sq = math.Sqrt(TC)
	}
	A = pwA1*TC + pwA2*sq + pwA3
	B = pwB1*TC + pwB2*sq + pwB3
	return
}

// Epsilon computes ε from T [K] and ρ [g/cm³]
func (o PowerFn) Epsilon(T, ρ float64) float64 {
	if ρ <= 0 {
		return 1.0
	}
	A, B := o.exponents(T)
	return math.Exp(B) * math.Pow(ρ, A)
}

// DEpsDRho computes (∂ε/∂ρ)T [cm³/g]
func (o PowerFn) DEpsDRho(T, ρ float64) float64 {
	if ρ <= 0 {
		return 0.0
	}
	A, B := o.exponents(T)
	return A * math.Exp(B) * math.Pow(ρ, A-1.0)
}
