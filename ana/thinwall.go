// Copyright 2017 The Rocketsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical stress solutions for cylindrical pressure vessels
package ana

import (
	"math"

	"github.com/philippoertle/rocket-simulator-sub000/mat"

	"github.com/cpmech/gosl/io"
)

// StressState holds the stress components at one pressure instant [Pa]
type StressState struct {
	Hoop   float64 `json:"hoop"`   // circumferential stress
	Axial  float64 `json:"axial"`  // longitudinal stress (closed ends)
	Radial float64 `json:"radial"` // radial stress; ≈0 for thin walls
	Vm     float64 `json:"vm"`     // von Mises equivalent stress
}

// VonMises computes the von Mises equivalent stress from three principal stresses
func VonMises(s1, s2, s3 float64) float64 {
	d12 := s1 - s2
	d23 := s2 - s3
	d31 := s3 - s1
	return math.Sqrt((d12*d12 + d23*d23 + d31*d31) / 2.0)
}

// ThinWall implements the thin-wall (membrane) solution for a closed
// cylindrical vessel under internal pressure:
//
//           σθ = P・D / (2・tw)        hoop
//           σz = P・D / (4・tw)        axial (exactly half the hoop stress)
//           σr ≈ 0
//
// The solution is valid for tw/D < 0.1 only. Calc never fails outside this
// range; use ValidityWarning and prefer the Lamé solution for decisions.
type ThinWall struct {
	D     float64 // inner diameter
	Tw    float64 // wall thickness
	Valid bool    // thin-wall assumption satisfied
}

// Init initialises the solution for a given geometry
func (o *ThinWall) Init(geo *mat.Geometry) {
	o.D = geo.Din
	o.Tw = geo.Tw
	o.Valid = geo.ThinWall()
}

// Calc computes the membrane stress state for an internal pressure
func (o *ThinWall) Calc(p float64) (s StressState) {
	s.Hoop = p * o.D / (2.0 * o.Tw)
	s.Axial = p * o.D / (4.0 * o.Tw)
	s.Radial = 0.0
	s.Vm = VonMises(s.Hoop, s.Axial, s.Radial)
	return
}

// ValidityWarning returns a warning message when the solution is applied
// outside the thin-wall range; it returns "" when the assumption holds
func (o *ThinWall) ValidityWarning() string {
	ratio := o.Tw / o.D
	if ratio >= 0.1 {
		return io.Sf("thin-wall assumption violated: tw/din = %.3f ≥ 0.1; thick-wall (Lamé) results govern", ratio)
	}
	if ratio > 0.05 {
		return io.Sf("thin-wall assumption marginal: tw/din = %.3f; results may have ~%.1f%% error", ratio, (ratio-0.05)*100)
	}
	return ""
}

// SafetyFactor computes the ratio of allowable strength to peak stress.
// It fails closed: a non-positive or non-finite peak stress gives SF = 0
// (unsafe) rather than an unbounded factor.
func SafetyFactor(strength, peak float64) float64 {
	if peak <= 0 || math.IsNaN(peak) || math.IsInf(peak, 0) {
		return 0
	}
	return strength / peak
}
