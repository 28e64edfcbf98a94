// Copyright 2017 The Rocketsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mat implements the database of vessel materials and the vessel geometry
package mat

import (
	"encoding/json"
	"math"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Material holds mechanical properties of one vessel material
type Material struct {
	Name   string  `json:"name"`   // identifier; e.g. "PET"
	Desc   string  `json:"desc"`   // long description; e.g. "Polyethylene Terephthalate (PET)"
	Sy     float64 `json:"sy"`     // yield strength [Pa]
	Su     float64 `json:"su"`     // ultimate tensile strength [Pa]
	E      float64 `json:"E"`      // Young's modulus [Pa]
	Nu     float64 `json:"nu"`     // Poisson's coefficient [-]
	Rho    float64 `json:"rho"`    // density [kg/m³]
	Tmax   float64 `json:"tmax"`   // maximum service temperature [K]
	Source string  `json:"source"` // reference for property values
}

// NotFoundError indicates that a material name is not available in the database
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return io.Sf("material %q is not available in database", e.Name)
}

// Validate checks physical admissibility of material data
func (o *Material) Validate() (err error) {
	if o.Sy <= 0 || o.Su <= 0 || o.E <= 0 {
		return chk.Err("material %q: strengths and modulus must be positive: sy=%g, su=%g, E=%g", o.Name, o.Sy, o.Su, o.E)
	}
	if o.Sy > o.Su {
		return chk.Err("material %q: yield strength (%g) must not exceed ultimate strength (%g)", o.Name, o.Sy, o.Su)
	}
	if o.Nu <= 0 || o.Nu >= 0.5 {
		return chk.Err("material %q: Poisson's coefficient must be within (0, 0.5): nu=%g", o.Name, o.Nu)
	}
	return
}

// Strength returns the allowable stress corresponding to the failure criterion
//  Input:
//   criterion -- "yield" or "ultimate"
func (o *Material) Strength(criterion string) (s float64, err error) {
	switch criterion {
	case "yield":
		return o.Sy, nil
	case "ultimate":
		return o.Su, nil
	}
	return 0, chk.Err("failure criterion %q is invalid; options are \"yield\" and \"ultimate\"", criterion)
}

// Db implements a database of materials
type Db struct {
	Materials []*Material `json:"materials"` // all materials
}

// NewDb returns the built-in database with reference vessel materials.
// Values are conservative estimates from literature.
func NewDb() (o *Db) {
	o = &Db{Materials: []*Material{
		{
			Name:   "PET",
			Desc:   "Polyethylene Terephthalate (PET)",
			Sy:     55e6,
			Su:     70e6,
			E:      2.8e9,
			Nu:     0.38,
			Rho:    1380.0,
			Tmax:   343.15, // glass transition ~80°C
			Source: "Osswald et al., Materials Science of Polymers (2012)",
		},
		{
			Name:   "HDPE",
			Desc:   "High-Density Polyethylene (HDPE)",
			Sy:     26e6,
			Su:     37e6,
			E:      1.1e9,
			Nu:     0.42,
			Rho:    960.0,
			Tmax:   353.15,
			Source: "ASTM D638 standard testing data",
		},
		{
			Name:   "PP",
			Desc:   "Polypropylene (PP)",
			Sy:     32e6,
			Su:     38e6,
			E:      1.6e9,
			Nu:     0.40,
			Rho:    905.0,
			Tmax:   373.15,
			Source: "MatWeb polymer database",
		},
		{
			Name:   "Aluminum_6061_T6",
			Desc:   "Aluminum 6061-T6",
			Sy:     276e6,
			Su:     310e6,
			E:      68.9e9,
			Nu:     0.33,
			Rho:    2700.0,
			Tmax:   473.15, // before annealing
			Source: "ASM Metals Handbook",
		},
		{
			Name:   "Steel_304",
			Desc:   "Stainless Steel 304",
			Sy:     215e6,
			Su:     505e6,
			E:      193e9,
			Nu:     0.29,
			Rho:    8000.0,
			Tmax:   923.15,
			Source: "ASTM A240 specification",
		},
	}}
	return
}

// ReadMat reads a database of materials from a JSON file. io.ReadFile
// panics on missing files; the panic is converted to an error here.
func ReadMat(dir, fn string) (o *Db, err error) {
	defer func() {
		if r := recover(); r != nil {
			o, err = nil, chk.Err("cannot read materials file %q:\n%v", fn, r)
		}
	}()
	b := io.ReadFile(filepath.Join(dir, fn))
	o = new(Db)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse materials file %q:\n%v", fn, err)
	}
	for _, m := range o.Materials {
		err = m.Validate()
		if err != nil {
			return nil, err
		}
	}
	return
}

// normkey normalises a material name for lookup
func normkey(name string) string {
	s := strings.TrimSpace(name)
	s = strings.Replace(s, " ", "_", -1)
	s = strings.Replace(s, "-", "_", -1)
	return strings.ToLower(s)
}

// Get returns a material by name. The match is attempted first with the
// exact name and then with a normalised, case-insensitive key.
func (o *Db) Get(name string) (m *Material, err error) {
	for _, mm := range o.Materials {
		if mm.Name == name {
			return mm, nil
		}
	}
	key := normkey(name)
	for _, mm := range o.Materials {
		if normkey(mm.Name) == key {
			return mm, nil
		}
	}
	return nil, &NotFoundError{name}
}

// Names returns the names of all materials in the database
func (o *Db) Names() (res []string) {
	res = make([]string, len(o.Materials))
	for i, m := range o.Materials {
		res[i] = m.Name
	}
	return
}

// String prints one material
func (o *Material) String() string {
	return io.Sf("    {\"name\":%q, \"sy\":%g, \"su\":%g, \"E\":%g, \"nu\":%g, \"rho\":%g, \"tmax\":%g}",
		o.Name, o.Sy, o.Su, o.E, o.Nu, o.Rho, o.Tmax)
}

// String prints the database
func (o *Db) String() string {
	l := "{\n  \"materials\" : [\n"
	for i, m := range o.Materials {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]\n}"
	return l
}

// CelsiusToKelvin converts temperature units
func CelsiusToKelvin(c float64) float64 { return c + 273.15 }

// check for finite properties during JSON reading
func (o *Material) UnmarshalJSON(b []byte) (err error) {
	type alias Material
	var a alias
	err = json.Unmarshal(b, &a)
	if err != nil {
		return
	}
	*o = Material(a)
	for _, v := range []float64{o.Sy, o.Su, o.E, o.Nu, o.Rho, o.Tmax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return chk.Err("material %q has non-finite properties", o.Name)
		}
	}
	return
}
