// Copyright 2024 The Dew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dewtab generates a spreadsheet with water properties over a
// temperature-pressure grid.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/xuri/excelize/v2"

	"github.com/stanroozen/dew/water"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnkey := io.ArgToString(0, "dewtab")
	TCmin := io.ArgToFloat(1, 100)  // smallest temperature [°C]
	TCmax := io.ArgToFloat(2, 1000) // largest temperature [°C]
	nT := io.ArgToInt(3, 10)        // number of temperature points
	Pkbmin := io.ArgToFloat(4, 1)   // smallest pressure [kbar]
	Pkbmax := io.ArgToFloat(5, 30)  // largest pressure [kbar]
	nP := io.ArgToInt(6, 30)        // number of pressure points

	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"output filename key", "fnkey", fnkey,
		"smallest temperature [°C]", "TCmin", TCmin,
		"largest temperature [°C]", "TCmax", TCmax,
		"number of temperature points", "nT", nT,
		"smallest pressure [kbar]", "Pkbmin", Pkbmin,
		"largest pressure [kbar]", "Pkbmax", Pkbmax,
		"number of pressure points", "nP", nP,
	))

	// grids
	TC := utl.LinSpace(TCmin, TCmax, nT)
	Pkb := utl.LinSpace(Pkbmin, Pkbmax, nP)

	// water model
	opts := water.DefaultOptions()
	opts.WithGibbs = true
	opts.WithSolvent = true

	// spreadsheet
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Water"
	if _, err := f.NewSheet(sheet); err != nil {
		chk.Panic("cannot create sheet: %v", err)
	}
	f.DeleteSheet("Sheet1")

	// header
	header := []interface{}{"T [°C]", "P [kbar]", "rho [kg/m³]", "epsilon [-]", "Q [1/Pa]", "G [J/mol]", "g [Å]"}
	for j, h := range header {
		cell, _ := excelize.CoordinatesToCellName(j+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	// property rows
	row := 2
	for _, t := range TC {
		for _, p := range Pkb {
			ws, err := water.Calc(t+273.15, p*1e8, opts)
			if err != nil {
				chk.Panic("water state failed at T=%g °C, P=%g kbar:\n%v", t, p, err)
			}
			vals := []interface{}{t, p, ws.Thermo.D, ws.Electro.Epsilon, ws.Electro.BornQ, ws.G, ws.Gsolv}
			for j, v := range vals {
				cell, _ := excelize.CoordinatesToCellName(j+1, row)
				f.SetCellValue(sheet, cell, v)
			}
			row++
		}
	}

	// save
	fn := fnkey + ".xlsx"
	if err := f.SaveAs(fn); err != nil {
		chk.Panic("cannot save %q: %v", fn, err)
	}
	io.Pf("file <%s> written\n", fn)
}
