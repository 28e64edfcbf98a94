// Copyright 2017 The Rocketsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CapKind defines the end-cap geometry of a cylindrical vessel
type CapKind int

// end-cap kinds
const (
	CapHemispherical CapKind = iota // ideal hemispherical cap; membrane stress only
	CapElliptical                   // 2:1 elliptical head
	CapTorispherical                // torispherical (ASME F&D) head
	CapConical                      // 60-degree cone
	CapFlat                         // flat plate; high bending stress
)

// capnames maps kinds to names; keep in sync with the constants above
var capnames = []string{"hemispherical", "elliptical", "torispherical", "conical", "flat"}

// ParseCap returns the cap kind corresponding to a name
func ParseCap(name string) (kind CapKind, err error) {
	for i, n := range capnames {
		if n == name {
			return CapKind(i), nil
		}
	}
	return 0, chk.Err("cap type %q is invalid; options are %q, %q, %q, %q, and %q",
		name, capnames[0], capnames[1], capnames[2], capnames[3], capnames[4])
}

// String returns the name of the cap kind
func (o CapKind) String() string {
	if o < 0 || int(o) >= len(capnames) {
		chk.Panic("cap kind %d is out of range", int(o))
	}
	return capnames[o]
}

// MarshalJSON encodes the cap kind by name
func (o CapKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON decodes the cap kind from its name
func (o *CapKind) UnmarshalJSON(b []byte) (err error) {
	var name string
	err = json.Unmarshal(b, &name)
	if err != nil {
		return
	}
	*o, err = ParseCap(name)
	return
}

// InvalidGeometryError indicates non-physical vessel dimensions
type InvalidGeometryError struct {
	Msg string
}

func (e *InvalidGeometryError) Error() string {
	return io.Sf("invalid vessel geometry: %s", e.Msg)
}

// Geometry holds the dimensions of a cylindrical pressure vessel.
// The structure is a value object: create it, call Validate, never mutate.
type Geometry struct {
	Din      float64 `json:"din"`      // inner diameter [m]
	Tw       float64 `json:"tw"`       // wall thickness [m]
	L        float64 `json:"L"`        // cylindrical length [m]
	Cap      CapKind `json:"cap"`      // end-cap kind
	Threaded bool    `json:"threaded"` // vessel has a threaded neck/closure
}

// Validate checks that the dimensions describe a non-degenerate annulus
func (o *Geometry) Validate() (err error) {
	for _, v := range []float64{o.Din, o.Tw, o.L} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &InvalidGeometryError{io.Sf("non-finite dimension: din=%g, tw=%g, L=%g", o.Din, o.Tw, o.L)}
		}
	}
	if o.Din <= 0 {
		return &InvalidGeometryError{io.Sf("inner diameter must be positive: din=%g", o.Din)}
	}
	if o.Tw <= 0 {
		return &InvalidGeometryError{io.Sf("wall thickness must be positive: tw=%g", o.Tw)}
	}
	if o.Tw >= o.Din/2.0 {
		return &InvalidGeometryError{io.Sf("wall thickness (%g) must be smaller than inner radius (%g)", o.Tw, o.Din/2.0)}
	}
	if o.L <= 0 {
		return &InvalidGeometryError{io.Sf("length must be positive: L=%g", o.L)}
	}
	return
}

// Ri returns the inner radius
func (o *Geometry) Ri() float64 { return o.Din / 2.0 }

// Ro returns the outer radius
func (o *Geometry) Ro() float64 { return o.Din/2.0 + o.Tw }

// TwByD returns the thickness-to-diameter ratio
func (o *Geometry) TwByD() float64 { return o.Tw / o.Din }

// ThinWall tells whether the thin-wall (membrane) assumption holds; i.e. tw/din < 0.1
func (o *Geometry) ThinWall() bool { return o.TwByD() < 0.1 }

// Volume returns the internal volume of the cylindrical section
func (o *Geometry) Volume() float64 {
	return math.Pi * o.Din * o.Din / 4.0 * o.L
}

// BurstPressureThin computes the burst pressure with Barlow's formula
//   P = 2・σallow・tw / din
// valid for thin walls only
func (o *Geometry) BurstPressureThin(sallow float64) float64 {
	return 2.0 * sallow * o.Tw / o.Din
}

// BurstPressureThick computes the burst pressure from the Lamé solution;
// the maximum hoop stress occurs at the inner surface:
//   σθmax = P・(ro² + ri²) / (ro² - ri²)   ⇒   P = σallow・(ro² - ri²) / (ro² + ri²)
func (o *Geometry) BurstPressureThick(sallow float64) float64 {
	ri2 := o.Ri() * o.Ri()
	ro2 := o.Ro() * o.Ro()
	return sallow * (ro2 - ri2) / (ro2 + ri2)
}

// SafeOperatingPressure estimates the operating pressure corresponding to a
// target safety factor
func (o *Geometry) SafeOperatingPressure(sallow, targetSF float64) float64 {
	if o.ThinWall() {
		return o.BurstPressureThin(sallow) / targetSF
	}
	return o.BurstPressureThick(sallow) / targetSF
}

// String returns a summary of the geometry
func (o *Geometry) String() string {
	return io.Sf("{\"din\":%g, \"tw\":%g, \"L\":%g, \"cap\":%q, \"threaded\":%v}",
		o.Din, o.Tw, o.L, o.Cap.String(), o.Threaded)
}
