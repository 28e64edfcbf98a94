// Copyright 2017 The Rocketsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"encoding/json"

	"github.com/philippoertle/rocket-simulator-sub000/dyn"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ForcingEngine produces the raw pressure/temperature history that drives
// the integrator. The thermochemical model behind the curve is an external
// collaborator; the core only requires strictly increasing time and finite,
// positive samples, which dyn.NewForcing enforces.
type ForcingEngine interface {
	ProduceForcing() (*dyn.Forcing, error)
}

// TableEngine serves a pre-computed forcing curve; e.g. one exported by a
// combustion code or measured in a test
type TableEngine struct {
	Time []float64 `json:"time"`        // time [s]
	P    []float64 `json:"pressure"`    // pressure [Pa]
	Tmp  []float64 `json:"temperature"` // temperature [K]
}

// ProduceForcing validates the table and fits the interpolants
func (o *TableEngine) ProduceForcing() (*dyn.Forcing, error) {
	return dyn.NewForcing(o.Time, o.P, o.Tmp)
}

// ReadTable reads a forcing table from a JSON file. io.ReadFile panics on
// missing files; the panic is converted to an error here.
func ReadTable(path string) (o *TableEngine, err error) {
	defer func() {
		if r := recover(); r != nil {
			o, err = nil, chk.Err("cannot read forcing file %q:\n%v", path, r)
		}
	}()
	b := io.ReadFile(path)
	o = new(TableEngine)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse forcing file %q:\n%v", path, err)
	}
	return
}
