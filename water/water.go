// Copyright 2024 The Dew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package water bundles the density, dielectric, Gibbs free energy and
// solvent-function models into a single evaluation of the thermodynamic
// state of water at a given temperature and pressure.
package water

import (
	"github.com/cpmech/gosl/chk"

	"github.com/stanroozen/dew/dielec"
	"github.com/stanroozen/dew/eos"
	"github.com/stanroozen/dew/gibbs"
	"github.com/stanroozen/dew/solvent"
)

// State holds the computed state of water. The Gibbs and solvent entries are
// filled only when requested through Options.
type State struct {
	T       float64       // temperature [K]
	P       float64       // pressure [Pa]
	Thermo  eos.State     // density and derivatives
	Electro dielec.Electro // dielectric constant and Born coefficients
	G       float64       // Gibbs free energy [J/mol]
	HasG    bool          // G was computed
	Gsolv   float64       // solvent function g [Å]
	DgDP    float64       // (∂g/∂P)T [1/Pa]
	HasSolv bool          // Gsolv and DgDP were computed
	Omega    float64      // effective Born coefficient ω [J/mol]
	DOmegaDP float64      // (∂ω/∂P)T [J/(mol・Pa)]
	HasOmega bool         // Omega and DOmegaDP were computed
}

// Options holds model selections and settings for Calc
type Options struct {
	EOSModel    string         // "zd05" or "zd09"
	EOS         eos.Options    // density solver settings
	DielecModel string         // "jn91", "fr90", "fe97" or "power"
	Dielec      dielec.Options // dielectric settings
	WithGibbs   bool           // also compute the Gibbs free energy
	Gibbs       gibbs.Options  // Gibbs model settings
	WithSolvent bool           // also compute g and dgdP
	Solvent     solvent.Options // solvent function settings
	WithOmega   bool           // also compute ω and ∂ω/∂P for one species
	Born        solvent.BornPrms     // species constants for the ω stage
	Omega       solvent.OmegaOptions // Born coefficient settings
}

// DefaultOptions returns default settings for Calc
func DefaultOptions() Options {
	return Options{
		EOSModel:    "zd05",
		EOS:         eos.DefaultOptions(),
		DielecModel: "jn91",
		Dielec:      dielec.DefaultOptions(),
		Gibbs:       gibbs.DefaultOptions(),
		Omega:       solvent.DefaultOmegaOptions(),
	}
}

// Calc computes the state of water at T [K] and P [Pa]. The equation of
// state runs first; the dielectric model consumes its density and pressure
// derivative; the Gibbs and solvent computations follow on demand.
func Calc(T, P float64, o Options) (s State, err error) {
	s.T, s.P = T, P

	emdl, err := eos.New(o.EOSModel)
	if err != nil {
		return s, err
	}
	if err = emdl.Init(nil); err != nil {
		return s, chk.Err("cannot initialise EOS model %q: %v", o.EOSModel, err)
	}
	s.Thermo = eos.Calc(emdl, T, P, o.EOS)

	dmdl, err := dielec.New(o.DielecModel)
	if err != nil {
		return s, err
	}
	if err = dmdl.Init(nil); err != nil {
		return s, chk.Err("cannot initialise dielectric model %q: %v", o.DielecModel, err)
	}
	s.Electro = dielec.Calc(dmdl, T, P, s.Thermo, o.Dielec)

	if o.WithGibbs {
		s.G, err = gibbs.Calc(emdl, T, P, o.Gibbs)
		if err != nil {
			return s, err
		}
		s.HasG = true
	}

	if o.WithSolvent {
		s.Gsolv = solvent.G(T, P, s.Thermo, o.Solvent)
		s.DgDP = solvent.DgDP(T, P, s.Thermo, s.Gsolv, o.Solvent)
		s.HasSolv = true
	}

	if o.WithOmega {
		s.Omega = solvent.Omega(T, P, s.Thermo, o.Born, o.Omega)
		s.DOmegaDP = solvent.DOmegaDP(T, P, s.Thermo, o.Born, o.Omega)
		s.HasOmega = true
	}
	return
}
