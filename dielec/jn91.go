// Copyright 2024 The Dew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dielec

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// JohnsonNorton91 implements the Johnson & Norton (1991) dielectric-constant
// equation, a polynomial in reduced temperature T/298.15 K and density.
type JohnsonNorton91 struct{}

// coefficients of the k-polynomials
const (
	jn91A1  = 14.70333593
	jn91A2  = 212.8462733
	jn91A3  = -115.4445173
	jn91A4  = 19.55210915
	jn91A5  = -83.30347980
	jn91A6  = 32.13240048
	jn91A7  = -6.694098645
	jn91A8  = -37.86202045
	jn91A9  = 68.87359646
	jn91A10 = -27.29401652
	jn91Tr  = 298.15 // reference temperature [K]
)

// add model to factory
func init() {
	allocators["jn91"] = func() Model { return new(JohnsonNorton91) }
}

// Init initialises model
func (o *JohnsonNorton91) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		return chk.Err("jn91: parameter named %q is incorrect", p.N)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o JohnsonNorton91) GetPrms(example bool) dbf.Params {
	return dbf.Params{}
}

// kcoefs computes the temperature coefficients k1..k4
func (o JohnsonNorton91) kcoefs(T float64) (k1, k2, k3, k4 float64) {
	t := T / jn91Tr
	k1 = jn91A1 / t
	k2 = jn91A2/t + jn91A3 + jn91A4*t
	k3 = jn91A5/t + jn91A6*t + jn91A7*t*t
	k4 = jn91A8/(t*t) + jn91A9/t + jn91A10
	return
}

// Epsilon computes ε from T [K] and ρ [g/cm³]
func (o JohnsonNorton91) Epsilon(T, ρ float64) float64 {
	k1, k2, k3, k4 := o.kcoefs(T)
	ρ2 := ρ * ρ
	return 1.0 + k1*ρ + k2*ρ2 + k3*ρ2*ρ + k4*ρ2*ρ2
}

// DEpsDRho computes (∂ε/∂ρ)T [cm³/g]
func (o JohnsonNorton91) DEpsDRho(T, ρ float64) float64 {
	k1, k2, k3, k4 := o.kcoefs(T)
	ρ2 := ρ * ρ
	return k1 + 2.0*k2*ρ + 3.0*k3*ρ2 + 4.0*k4*ρ2*ρ
}
