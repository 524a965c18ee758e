// Copyright 2024 The Dew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psat

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_psat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("psat01. saturation pressure")

	// known points of the Wagner-Pruss correlation
	chk.Float64(tst, "Psat(573.15K)", 1.0, Pressure(573.15), 8.587867486373652e6)
	chk.Float64(tst, "Psat(373.1243K)", 0.1, Pressure(373.1243), 1.013250151696129e5)

	// outside the curve
	chk.Float64(tst, "Psat(T>Tcrit)", 1e-17, Pressure(650.0), 0)
	chk.Float64(tst, "Psat(T=0)", 1e-17, Pressure(0), 0)

	// proximity test
	Ps := Pressure(573.15)
	if !Near(573.15, Ps, 1e-3) {
		tst.Errorf("point on the curve must be near the curve\n")
		return
	}
	if !Near(573.15, Ps*1.0009, 1e-3) {
		tst.Errorf("point within reltol must be near the curve\n")
		return
	}
	if Near(573.15, Ps*1.1, 1e-3) {
		tst.Errorf("point off the curve cannot be near the curve\n")
		return
	}
	if Near(573.15, Ps, 0) {
		tst.Errorf("reltol=0 must disable the proximity test\n")
		return
	}
	if Near(650.0, 1e5, 1e-3) {
		tst.Errorf("no proximity above the critical temperature\n")
		return
	}
}

func Test_psat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("psat02. properties along the curve")

	T := 573.15 // 300 °C

	ρ := Density(T)
	ε := Epsilon(T)
	G := Gibbs(T)
	Q := BornQ(T)
	d := DgDP(T)
	if chk.Verbose {
		io.Pf("ρ = %v  ε = %v  G = %v  Q = %v  dgdP = %v\n", ρ, ε, G, Q, d)
	}

	chk.Float64(tst, "ρsat(300°C)", 1e-9, ρ, 712.2311722007291)
	chk.Float64(tst, "εsat(300°C)", 1e-11, ε, 20.39228473296133)
	chk.Float64(tst, "Gsat(300°C)", 1e-7, G, -63071.13431819641*4.184)
	chk.Float64(tst, "Qsat(300°C)", 1e-22, Q, 2.3290337774480554e-10)
	chk.Float64(tst, "dgdPsat(300°C)", 1e-22, d, 1.254584783788057e-10)

	// dgdP fit is undefined below 0.01 °C
	chk.Float64(tst, "dgdPsat(0°C)", 1e-17, DgDP(273.15), 0)
}
