// Copyright 2024 The Dew Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the input database of aqueous species. Species
// records carry the revised HKF equation-of-state parameters in SI units.
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Species holds the standard-state parameters of one aqueous species.
// All values are in SI units: J, mol, K, Pa.
type Species struct {
	Name    string  `json:"name"`    // name of species; e.g. "HCO3-"
	Formula string  `json:"formula"` // chemical formula
	Charge  float64 `json:"charge"`  // ionic charge [-]
	Gf      float64 `json:"gf"`      // formation Gibbs energy at 25 °C, 1 bar [J/mol]
	Hf      float64 `json:"hf"`      // formation enthalpy at 25 °C, 1 bar [J/mol]
	Sr      float64 `json:"sr"`      // reference entropy [J/(mol・K)]
	A1      float64 `json:"a1"`      // HKF a1 [J/(mol・Pa)]
	A2      float64 `json:"a2"`      // HKF a2 [J/mol]
	A3      float64 `json:"a3"`      // HKF a3 [J・K/(mol・Pa)]
	A4      float64 `json:"a4"`      // HKF a4 [J・K/mol]
	C1      float64 `json:"c1"`      // HKF c1 [J/(mol・K)]
	C2      float64 `json:"c2"`      // HKF c2 [J・K/mol]
	Wref    float64 `json:"wref"`    // Born coefficient at 25 °C, 1 bar [J/mol]
	Pinned  bool    `json:"pinned"`  // ω held at Wref (hydrogen convention)
	Tmax    float64 `json:"tmax"`    // upper calibration temperature [K]
}

// SpeciesData holds species records
type SpeciesData []*Species

// SpeciesDb implements a database of aqueous species
type SpeciesDb struct {

	// input
	Species SpeciesData `json:"species"` // all species

	// derived
	byname map[string]*Species // name lookup
}

// ReadSpecies reads a species database from a JSON file
func ReadSpecies(dir, fn string) (sdb *SpeciesDb, err error) {

	// new database
	sdb = new(SpeciesDb)

	// read file
	b := io.ReadFile(filepath.Join(dir, fn))

	// decode
	err = json.Unmarshal(b, sdb)
	if err != nil {
		return nil, err
	}
	return sdb, sdb.index()
}

// FromJSON decodes a species database from JSON contents
func FromJSON(b []byte) (sdb *SpeciesDb, err error) {
	sdb = new(SpeciesDb)
	err = json.Unmarshal(b, sdb)
	if err != nil {
		return nil, err
	}
	return sdb, sdb.index()
}

// index builds the name lookup map
func (o *SpeciesDb) index() (err error) {
	o.byname = make(map[string]*Species)
	for _, s := range o.Species {
		if _, ok := o.byname[s.Name]; ok {
			return chk.Err("species %q is duplicated in database", s.Name)
		}
		o.byname[s.Name] = s
	}
	return
}

// Get returns a species by name. A missing species is an error.
func (o *SpeciesDb) Get(name string) (*Species, error) {
	s, ok := o.byname[name]
	if !ok {
		return nil, chk.Err("cannot find species named %q in database", name)
	}
	return s, nil
}

// String prints one species
func (o *Species) String() string {
	return io.Sf("    {\"name\":%q, \"formula\":%q, \"charge\":%g, \"gf\":%g, \"hf\":%g, \"sr\":%g, \"a1\":%g, \"a2\":%g, \"a3\":%g, \"a4\":%g, \"c1\":%g, \"c2\":%g, \"wref\":%g, \"pinned\":%v, \"tmax\":%g}",
		o.Name, o.Formula, o.Charge, o.Gf, o.Hf, o.Sr, o.A1, o.A2, o.A3, o.A4, o.C1, o.C2, o.Wref, o.Pinned, o.Tmax)
}

// String prints species records
func (o SpeciesData) String() string {
	l := "  \"species\" : [\n"
	for i, s := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", s)
	}
	l += "\n  ]"
	return l
}

// String outputs the database
func (o SpeciesDb) String() string {
	return io.Sf("{\n%v\n}", o.Species)
}
