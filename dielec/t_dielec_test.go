// Copyright 2024 The Dew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dielec

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/stanroozen/dew/eos"
	"github.com/stanroozen/dew/psat"
)

// state of water at 300 °C and 5 kbar (Zhang & Duan 2005)
var refState = eos.State{
	D:  993.3227218273284,
	DP: 2.1243393734142674e-07,
}

func Test_diel01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diel01. dielectric constants at 300 °C, 5 kbar")

	T := 573.15
	ρ := refState.D / 1000.0

	for name, correct := range map[string]float64{
		"jn91":  33.18023191454171,
		"fr90":  38.57823293698619,
		"fe97":  33.36067618326271,
		"power": 33.91752542133989,
	} {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}
		if err := mdl.Init(nil); err != nil {
			tst.Errorf("Init failed: %v\n", err)
			return
		}
		ε := mdl.Epsilon(T, ρ)
		if chk.Verbose {
			io.Pf("%-6s ε = %v\n", name, ε)
		}
		chk.Float64(tst, "ε("+name+")", 1e-10, ε, correct)
	}

	// density derivatives
	jn, _ := New("jn91")
	jn.Init(nil)
	chk.Float64(tst, "∂ε/∂ρ(jn91)", 1e-10, jn.DEpsDRho(T, ρ), 47.57084590459145)
	pw, _ := New("power")
	pw.Init(nil)
	chk.Float64(tst, "∂ε/∂ρ(power)", 1e-10, pw.DEpsDRho(T, ρ), 49.905010138480456)
}

func Test_diel02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diel02. analytic vs numerical ∂ε/∂ρ")

	T := 573.15
	ρ := 0.85
	for _, name := range []string{"jn91", "fe97", "power"} {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}
		mdl.Init(nil)
		dana := mdl.DEpsDRho(T, ρ)
		chk.DerivScaSca(tst, "∂ε/∂ρ "+name, 1e-6, dana, ρ, 1e-4, chk.Verbose, func(x float64) float64 {
			return mdl.Epsilon(T, x)
		})
	}
}

func Test_diel03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diel03. Born coefficients and saturation overrides")

	T := 573.15
	mdl, err := New("jn91")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	mdl.Init(nil)

	// primary model
	o := DefaultOptions()
	e := Calc(mdl, T, 5000e5, refState, o)
	chk.Float64(tst, "ε", 1e-10, e.Epsilon, 33.18023191454171)
	chk.Float64(tst, "ε_P", 1e-22, e.EpsilonP, 47.57084590459145*2.1243393734142674e-10)
	chk.Float64(tst, "Z", 1e-14, e.BornZ, -1.0/e.Epsilon)
	chk.Float64(tst, "Q", 1e-22, e.BornQ, e.EpsilonP/(e.Epsilon*e.Epsilon))
	chk.Float64(tst, "Y", 1e-17, e.BornY, 0)

	// forced override
	o.Mode = SatForce
	o.OverrideQ = true
	e = Calc(mdl, T, 5000e5, refState, o)
	chk.Float64(tst, "ε forced", 1e-11, e.Epsilon, 20.39228473296133)
	chk.Float64(tst, "Z forced", 1e-14, e.BornZ, -1.0/20.39228473296133)
	chk.Float64(tst, "Q forced", 1e-22, e.BornQ, 2.3290337774480554e-10)
	chk.Float64(tst, "ε_P forced", 1e-17, e.EpsilonP, 0)

	// near-curve override triggers only close to Psat(T)
	o.Mode = SatWhenNear
	e = Calc(mdl, T, psat.Pressure(T), refState, o)
	chk.Float64(tst, "ε near", 1e-11, e.Epsilon, 20.39228473296133)
	e = Calc(mdl, T, 5000e5, refState, o)
	chk.Float64(tst, "ε far", 1e-10, e.Epsilon, 33.18023191454171)
}

func Test_diel04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("diel04. saturation fit tracks the bulk model at 300 °C")

	T := 573.15
	Ps := psat.Pressure(T)

	emdl, err := eos.New("zd05")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	emdl.Init(nil)
	eo := eos.DefaultOptions()
	eo.Tol = 0.001
	s := eos.Calc(emdl, T, Ps, eo)

	jn, _ := New("jn91")
	jn.Init(nil)
	εBulk := jn.Epsilon(T, s.D/1000.0)
	εSat := psat.Epsilon(T)
	if chk.Verbose {
		io.Pf("ε bulk = %v  ε sat = %v\n", εBulk, εSat)
	}
	chk.Float64(tst, "ε bulk", 1e-10, εBulk, 20.73531027228703)
	chk.Float64(tst, "ε continuity", 0.5, εSat, εBulk)
}
