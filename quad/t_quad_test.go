// Copyright 2024 The Dew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_quad01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quad01. polynomials and smooth integrands")

	cfg := DefaultConfig()
	cfg.Steps = 100

	// ∫x² over [0,1] = 1/3
	sq := func(x float64) float64 { return x * x }
	res, err := Integrate(sq, 0, 1, Simpson, cfg)
	if err != nil {
		tst.Errorf("Simpson failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Simpson x²", 1e-15, res, 1.0/3.0)

	res, err = Integrate(sq, 0, 1, GaussLegendre, cfg)
	if err != nil {
		tst.Errorf("GaussLegendre failed: %v\n", err)
		return
	}
	chk.Float64(tst, "GL16 x²", 1e-14, res, 1.0/3.0)

	res, err = Integrate(sq, 0, 1, AdaptiveSimpson, cfg)
	if err != nil {
		tst.Errorf("AdaptiveSimpson failed: %v\n", err)
		return
	}
	chk.Float64(tst, "adaptive x²", 1e-12, res, 1.0/3.0)

	// ∫sin over [0,π] = 2
	for _, m := range []Method{Trapezoidal, Simpson, GaussLegendre, AdaptiveSimpson} {
		c := DefaultConfig()
		c.Steps = 1000
		c.Tol = 1e-10
		res, err = Integrate(math.Sin, 0, math.Pi, m, c)
		if err != nil {
			tst.Errorf("method %d failed: %v\n", m, err)
			return
		}
		if chk.Verbose {
			io.Pf("method %d: ∫sin = %v\n", m, res)
		}
		tol := 1e-6
		if m == Trapezoidal {
			tol = 1e-5 // second-order rule: error ≈ 1.6e-6 at n = 1000
		}
		chk.Float64(tst, "∫sin", tol, res, 2.0)
	}
}

func Test_quad02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quad02. trapezoidal convergence")

	f := func(x float64) float64 { return math.Exp(x) }
	exact := math.E - 1.0

	errPrev := math.Inf(1)
	for _, n := range []int{50, 100, 200, 400} {
		cfg := Config{Steps: n}
		res, err := Integrate(f, 0, 1, Trapezoidal, cfg)
		if err != nil {
			tst.Errorf("Trapezoidal failed: %v\n", err)
			return
		}
		e := math.Abs(res - exact)
		if chk.Verbose {
			io.Pf("n = %4d  err = %v\n", n, e)
		}
		if e >= errPrev {
			tst.Errorf("error must decrease with refinement: %v ≥ %v\n", e, errPrev)
			return
		}
		errPrev = e
	}
}

func Test_quad03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("quad03. edge cases")

	f := func(x float64) float64 { return 1.0 / (1.0 + x*x) }

	// empty interval is exactly zero for every method
	for _, m := range []Method{Trapezoidal, Simpson, GaussLegendre, AdaptiveSimpson} {
		res, err := Integrate(f, 2.0, 2.0, m, DefaultConfig())
		if err != nil {
			tst.Errorf("method %d failed: %v\n", m, err)
			return
		}
		chk.Float64(tst, "empty interval", 1e-17, res, 0)
	}

	// an odd Simpson step count is rounded up to even
	odd, err := Integrate(f, 0, 1, Simpson, Config{Steps: 101})
	if err != nil {
		tst.Errorf("Simpson failed: %v\n", err)
		return
	}
	even, err := Integrate(f, 0, 1, Simpson, Config{Steps: 102})
	if err != nil {
		tst.Errorf("Simpson failed: %v\n", err)
		return
	}
	chk.Float64(tst, "odd rounded up", 1e-17, odd, even)

	// unknown method
	if _, err := Integrate(f, 0, 1, Method(99), DefaultConfig()); err == nil {
		tst.Errorf("unknown method must fail\n")
		return
	}

	// adaptive depth cap still returns a finite estimate
	cfg := Config{Tol: 1e-300, MaxDepth: 3}
	res, err := Integrate(f, 0, 1, AdaptiveSimpson, cfg)
	if err != nil {
		tst.Errorf("AdaptiveSimpson failed: %v\n", err)
		return
	}
	chk.Float64(tst, "depth-capped atan", 1e-6, res, math.Atan(1.0))
}
