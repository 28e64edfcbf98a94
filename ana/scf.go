// Copyright 2017 The Rocketsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/philippoertle/rocket-simulator-sub000/mat"

	"github.com/cpmech/gosl/chk"
)

// Stress concentration factors for geometric discontinuities in pressure
// vessels. Values follow Roark's Formulas for Stress and Strain (8th ed.)
// and Peterson's Stress Concentration Factors.

// capfactors maps cap kinds to concentration factors; indexed by mat.CapKind
var capfactors = []float64{
	1.0, // hemispherical: membrane stress only
	1.5, // elliptical 2:1 head
	1.8, // torispherical (ASME F&D) head
	1.5, // conical, 60°
	2.5, // flat plate: high bending stress
}

// CapFactor returns the stress concentration factor of an end cap
func CapFactor(kind mat.CapKind) float64 {
	if kind < 0 || int(kind) >= len(capfactors) {
		chk.Panic("cap kind %d is out of range", int(kind))
	}
	return capfactors[kind]
}

// ThreadFactor computes the concentration factor of a threaded neck/closure.
// Peterson's sharp-notch estimate K = 1 + 2・√(h/r) clamped to the range
// reported for threads in pressure vessels, [2.0, 4.5].
//  Input:
//   geo    -- vessel geometry
//   depth  -- thread depth; ≤0 means tw/2
//   radius -- root radius; ≤0 means depth/4 (sharp threads)
func ThreadFactor(geo *mat.Geometry, depth, radius float64) (K float64) {
	if depth <= 0 {
		depth = geo.Tw / 2.0
	}
	if radius <= 0 {
		radius = depth / 4.0
	}
	K = 1.0 + 2.0*math.Sqrt(depth/radius)
	if K < 2.0 {
		K = 2.0
	}
	if K > 4.5 {
		K = 4.5
	}
	return
}

// TransitionFactor computes the concentration factor of a diameter
// transition with fillet; e.g. a neck-to-body transition. Approximation of
// Peterson's chart 2.2 for a stepped bar in tension, adjusted for the
// diameter ratio and clamped to [1.0, 3.5].
func TransitionFactor(majorDiam, minorDiam, filletRadius float64) (K float64) {
	dratio := minorDiam / majorDiam
	rratio := filletRadius / minorDiam
	if rratio > 0 {
		K = 1.0 + 0.5/math.Sqrt(rratio)
	} else {
		K = 3.0 // sharp corner
	}
	K *= 1.0 + (1.0 - dratio)
	if K < 1.0 {
		K = 1.0
	}
	if K > 3.5 {
		K = 3.5
	}
	return
}
