// Copyright 2017 The Rocketsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim implements the orchestration of one burst-prediction analysis:
// external forcing engine → system-dynamics integrator → detailed stress
// analysis → safety report
package sim

import (
	"encoding/json"

	"github.com/philippoertle/rocket-simulator-sub000/mat"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Config holds all data to run one analysis, readable from a .sim JSON file
type Config struct {

	// global information
	Desc    string `json:"desc"`    // description of the analysis
	Matfile string `json:"matfile"` // materials file; "" means the built-in database
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/rocketsim
	Encoder string `json:"encoder"` // encoder name for saved results: "gob" or "json"

	// vessel
	Material string      `json:"material"` // material name; e.g. "PET"
	Vessel   mat.Geometry `json:"vessel"`  // vessel geometry

	// forcing
	Forcefile string `json:"forcefile"` // file with a pre-computed forcing curve (TableEngine)

	// analysis options
	Criterion  string  `json:"criterion"`  // failure criterion: "yield" or "ultimate"
	Tf         float64 `json:"tf"`         // end time; 0 means the forcing end time
	MaxStp     float64 `json:"maxstp"`     // maximum integration step size
	NpLame     int     `json:"nplame"`     // through-thickness sampling points
	Deform     bool    `json:"deform"`     // account for elastic volume change
	Transition bool    `json:"transition"` // consider the neck transition concentration
}

// SetDefaults fills unset options
func (o *Config) SetDefaults() {
	if o.Criterion == "" {
		o.Criterion = "yield"
	}
	if o.MaxStp <= 0 {
		o.MaxStp = 1e-4
	}
	if o.NpLame < 2 {
		o.NpLame = 50
	}
	if o.Encoder == "" {
		o.Encoder = "json"
	}
	if o.DirOut == "" {
		o.DirOut = "/tmp/rocketsim"
	}
}

// Validate checks the configuration before running
func (o *Config) Validate() (err error) {
	if o.Material == "" {
		return chk.Err("material name must be given")
	}
	err = o.Vessel.Validate()
	if err != nil {
		return
	}
	switch o.Criterion {
	case "yield", "ultimate":
	default:
		return chk.Err("failure criterion %q is invalid; options are \"yield\" and \"ultimate\"", o.Criterion)
	}
	return
}

// ReadConfig reads an analysis configuration from a JSON file. io.ReadFile
// panics on missing files; the panic is converted to an error here.
func ReadConfig(path string) (o *Config, err error) {
	defer func() {
		if r := recover(); r != nil {
			o, err = nil, chk.Err("cannot read configuration file %q:\n%v", path, r)
		}
	}()
	b := io.ReadFile(path)
	o = new(Config)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse configuration file %q:\n%v", path, err)
	}
	o.SetDefaults()
	err = o.Validate()
	if err != nil {
		return nil, err
	}
	return
}
