// Copyright 2024 The Dew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gibbs

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/stanroozen/dew/eos"
	"github.com/stanroozen/dew/psat"
	"github.com/stanroozen/dew/quad"
)

func Test_gibbs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gibbs01. 1 kbar anchor polynomial")

	chk.Float64(tst, "G1kb(100°C)", 1e-8, GAtOneKb(100), -57656.61941204999)
	chk.Float64(tst, "G1kb(300°C)", 1e-8, GAtOneKb(300), -62557.49942899)
	chk.Float64(tst, "G1kb(650°C)", 1e-8, GAtOneKb(650), -74315.11797887)
	chk.Float64(tst, "G1kb(1000°C)", 1e-7, GAtOneKb(1000), -88767.03099)
}

func Test_gibbs02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gibbs02. Delaney & Helgeson polynomial")

	chk.Float64(tst, "G(100°C,500bar)", 1e-7, DelaneyHelgeson78(373.15, 500e5), -57706.02309840196*4.184)
	chk.Float64(tst, "G(25°C,1bar)", 1e-7, DelaneyHelgeson78(298.15, 1e5), -56527.869809105956*4.184)
}

func Test_gibbs03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gibbs03. volume integral at 650 °C, 15 kbar")

	mdl, err := eos.New("zd05")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if err := mdl.Init(nil); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	T, P := 923.15, 15000e5
	correct := -66740.19263005895 * 4.184 // Gauss-Legendre reference

	o := DefaultOptions()
	o.Quad.Steps = 32
	G, err := Calc(mdl, T, P, o)
	if err != nil {
		tst.Errorf("Calc failed: %v\n", err)
		return
	}
	if chk.Verbose {
		io.Pf("G (GL16x32) = %v\n", G)
	}
	chk.Float64(tst, "G GL16", 1e-2, G, correct)

	// the other rules agree within a tenth of a J/mol
	for _, m := range []quad.Method{quad.Trapezoidal, quad.Simpson, quad.AdaptiveSimpson} {
		o = DefaultOptions()
		o.Method = m
		Gm, err := Calc(mdl, T, P, o)
		if err != nil {
			tst.Errorf("Calc failed: %v\n", err)
			return
		}
		if chk.Verbose {
			io.Pf("method %d: G = %v  diff = %v\n", m, Gm, Gm-correct)
		}
		if diff := math.Abs(Gm - correct); diff > 0.1 {
			tst.Errorf("method %d deviates by %v J/mol\n", m, diff)
			return
		}
	}
}

func Test_gibbs04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gibbs04. behaviour at and below the anchor")

	mdl, err := eos.New("zd05")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if err := mdl.Init(nil); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// the integral vanishes exactly at and below 1 kbar
	o := DefaultOptions()
	for _, P := range []float64{500e5, 1000e5} {
		dG, err := IntegrateVolume(mdl, 573.15, P, o)
		if err != nil {
			tst.Errorf("IntegrateVolume failed: %v\n", err)
			return
		}
		chk.Float64(tst, "∫Vm dP", 1e-17, dG, 0)
	}

	// below the anchor the polynomial alone remains
	G, err := Calc(mdl, 573.15, 500e5, o)
	if err != nil {
		tst.Errorf("Calc failed: %v\n", err)
		return
	}
	chk.Float64(tst, "G below anchor", 1e-8, G, GAtOneKb(300)*4.184)

	// saturation-curve override
	T := 573.15
	o.UsePsat = true
	o.PsatRelTol = 1e-3
	G, err = Calc(mdl, T, psat.Pressure(T), o)
	if err != nil {
		tst.Errorf("Calc failed: %v\n", err)
		return
	}
	chk.Float64(tst, "G on curve", 1e-8, G, psat.Gibbs(T))
}

func Test_gibbs05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gibbs05. volume integral at 1000 °C, 60 kbar")

	mdl, err := eos.New("zd05")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	if err := mdl.Init(nil); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// upper corner of the calibrated domain
	T, P := 1273.15, 60000e5
	correct := -259680.9774311212 // Gauss-Legendre reference

	G, err := Calc(mdl, T, P, DefaultOptions())
	if err != nil {
		tst.Errorf("Calc failed: %v\n", err)
		return
	}
	if chk.Verbose {
		io.Pf("G = %v\n", G)
	}
	chk.Float64(tst, "G GL16", 1e-2, G, correct)

	// the other rules stay within half a J/mol over the 59 kbar span
	for _, m := range []quad.Method{quad.Trapezoidal, quad.Simpson, quad.AdaptiveSimpson} {
		o := DefaultOptions()
		o.Method = m
		Gm, err := Calc(mdl, T, P, o)
		if err != nil {
			tst.Errorf("Calc failed: %v\n", err)
			return
		}
		if chk.Verbose {
			io.Pf("method %d: G = %v  diff = %v\n", m, Gm, Gm-correct)
		}
		if diff := math.Abs(Gm - correct); diff > 0.5 {
			tst.Errorf("method %d deviates by %v J/mol\n", m, diff)
			return
		}
	}
}
