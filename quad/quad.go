// Copyright 2024 The Dew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quad implements one-dimensional quadrature over finite intervals.
// Four methods are available: composite trapezoidal, composite Simpson,
// segmented 16-point Gauss-Legendre, and adaptive Simpson with an absolute
// error tolerance.
package quad

import (
	"github.com/cpmech/gosl/chk"
)

// Method selects the quadrature rule
type Method int

const (
	Trapezoidal    Method = iota // composite trapezoidal rule
	Simpson                      // composite Simpson rule (even number of steps)
	GaussLegendre                // 16-point Gauss-Legendre per segment
	AdaptiveSimpson              // adaptive Simpson with error control
)

// Config holds settings for Integrate. Note that Steps counts function
// evaluations for the step rules but 16-evaluation segments for
// GaussLegendre, so the same Steps buys 16x the work there.
type Config struct {
	Steps    int     // number of steps (Trapezoidal/Simpson) or segments (GaussLegendre)
	Tol      float64 // absolute tolerance (AdaptiveSimpson)
	MaxDepth int     // recursion depth limit (AdaptiveSimpson)
}

// DefaultConfig returns default quadrature settings
func DefaultConfig() Config {
	return Config{
		Steps:    5000,
		Tol:      0.1,
		MaxDepth: 20,
	}
}

// 16-point Gauss-Legendre nodes and weights on [-1,1]
var (
	glx = []float64{
		-0.989400934991649932596, -0.944575023073232576078,
		-0.865631202387831743880, -0.755404408355003033895,
		-0.617876244402643748447, -0.458016777657227386342,
		-0.281603550779258913230, -0.095012509837637440185,
		0.095012509837637440185, 0.281603550779258913230,
		0.458016777657227386342, 0.617876244402643748447,
		0.755404408355003033895, 0.865631202387831743880,
		0.944575023073232576078, 0.989400934991649932596,
	}
	glw = []float64{
		0.027152459411754094852, 0.062253523938647892863,
		0.095158511682492784810, 0.124628971255533872052,
		0.149595988816576732081, 0.169156519395002538189,
		0.182603415044923588867, 0.189450610455068496285,
		0.189450610455068496285, 0.182603415044923588867,
		0.169156519395002538189, 0.149595988816576732081,
		0.124628971255533872052, 0.095158511682492784810,
		0.062253523938647892863, 0.027152459411754094852,
	}
)

// Integrate computes ∫f(x)dx over [a,b] with the given method. For
// a == b the result is exactly zero regardless of method.
func Integrate(f func(x float64) float64, a, b float64, method Method, cfg Config) (res float64, err error) {
	if b == a {
		return 0, nil
	}
	switch method {
	case Trapezoidal:
		return trapz(f, a, b, cfg.Steps), nil
	case Simpson:
		return simpson(f, a, b, cfg.Steps), nil
	case GaussLegendre:
		return gauss16(f, a, b, cfg.Steps), nil
	case AdaptiveSimpson:
		return adaptive(f, a, b, cfg.Tol, cfg.MaxDepth), nil
	}
	return 0, chk.Err("quadrature method %d is not available", method)
}

// trapz computes the composite trapezoidal rule with n steps
func trapz(f func(x float64) float64, a, b float64, n int) float64 {
	if n < 1 {
		n = 1
	}
	h := (b - a) / float64(n)
	sum := 0.5 * (f(a) + f(b))
	for i := 1; i < n; i++ {
		sum += f(a + float64(i)*h)
	}
	return sum * h
}

// simpson computes the composite Simpson rule; an odd step count is rounded
// up to the next even number
func simpson(f func(x float64) float64, a, b float64, n int) float64 {
	if n < 2 {
		n = 2
	}
	if n%2 != 0 {
		n++
	}
	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			sum += 4.0 * f(x)
		} else {
			sum += 2.0 * f(x)
		}
	}
	return sum * h / 3.0
}

// gauss16 applies the 16-point Gauss-Legendre rule on nseg equal segments
func gauss16(f func(x float64) float64, a, b float64, nseg int) float64 {
	if nseg < 1 {
		nseg = 1
	}
	h := (b - a) / float64(nseg)
	sum := 0.0
	for s := 0; s < nseg; s++ {
		xa := a + float64(s)*h
		c := xa + 0.5*h
		for i := 0; i < 16; i++ {
			sum += glw[i] * f(c+0.5*h*glx[i])
		}
	}
	return sum * 0.5 * h
}

// adaptive computes the adaptive Simpson rule. The interval estimate S1 is
// compared against the two-half refinement S2; when |S2-S1| ≤ tol the
// refinement is accepted, otherwise both halves recurse with tol/2 until
// the depth limit.
func adaptive(f func(x float64) float64, a, b, tol float64, depth int) float64 {
	c := 0.5 * (a + b)
	fa, fb, fc := f(a), f(b), f(c)
	s1 := (b - a) / 6.0 * (fa + 4.0*fc + fb)
	return adaptiveAux(f, a, b, c, fa, fb, fc, s1, tol, depth)
}

func adaptiveAux(f func(x float64) float64, a, b, c, fa, fb, fc, s1, tol float64, depth int) float64 {
	l := 0.5 * (a + c)
	r := 0.5 * (c + b)
	fl, fr := f(l), f(r)
	sl := (c - a) / 6.0 * (fa + 4.0*fl + fc)
	sr := (b - c) / 6.0 * (fc + 4.0*fr + fb)
	s2 := sl + sr
	diff := s2 - s1
	if diff < 0 {
		diff = -diff
	}
	if diff <= tol || depth <= 0 {
		return s2
	}
	return adaptiveAux(f, a, c, l, fa, fc, fl, sl, 0.5*tol, depth-1) +
		adaptiveAux(f, c, b, r, fc, fb, fr, sr, 0.5*tol, depth-1)
}
