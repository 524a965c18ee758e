// Copyright 2024 The Dew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/stanroozen/dew/hkf"
	"github.com/stanroozen/dew/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "data/species", ".json", true)
	name := io.ArgToString(1, "Na+")
	TC := io.ArgToFloat(2, 300)  // temperature [°C]
	Pkb := io.ArgToFloat(3, 5)   // pressure [kbar]
	verbose := io.ArgToBool(4, true)

	// message
	if verbose {
		io.PfWhite("\nDew -- thermodynamic properties of water and aqueous species\n")
		io.Pf("Copyright 2024 The Dew Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"species database path", "fnamepath", fnamepath,
			"species name", "name", name,
			"temperature [°C]", "TC", TC,
			"pressure [kbar]", "Pkb", Pkb,
			"show messages", "verbose", verbose,
		))
	}

	// load database
	sdb, err := inp.ReadSpecies("", fnamepath)
	if err != nil {
		chk.Panic("cannot read species database:\n%v", err)
	}
	sp, err := sdb.Get(name)
	if err != nil {
		chk.Panic("%v", err)
	}

	// evaluate standard-state properties
	T := TC + 273.15 // [K]
	P := Pkb * 1e8   // [Pa]
	res, err := hkf.Calc(sp, T, P, hkf.DefaultOptions())
	if err != nil {
		chk.Panic("evaluation failed:\n%v", err)
	}

	// results
	io.Pf("\nstandard-state properties of %q at %g °C, %g kbar:\n", name, TC, Pkb)
	io.Pf("  G0  = %23.6f J/mol\n", res.G0)
	io.Pf("  H0  = %23.6f J/mol\n", res.H0)
	io.Pf("  V0  = %23.6e m³/mol\n", res.V0)
	io.Pf("  Cp0 = %23.6f J/(mol・K)\n", res.Cp0)
}
