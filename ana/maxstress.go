// Copyright 2017 The Rocketsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/philippoertle/rocket-simulator-sub000/mat"
)

// failure locations
const (
	LocBody       = "body"       // cylindrical section (uniform stress)
	LocCap        = "cap"        // end cap
	LocThread     = "thread"     // thread root
	LocTransition = "transition" // neck-to-body transition
)

// reltol for treating two candidate peak stresses as tied
const tieTol = 1e-3

// MaxStress holds the concentration-adjusted peak stress and the governing
// failure location. Nominal stress comes from the Lamé solution at the inner
// radius; the thick-wall route is used regardless of thin-wall validity so
// the decision quantities never depend on the membrane approximation.
type MaxStress struct {
	Nominal float64 // nominal hoop stress at the inner radius [Pa]
	Kcap    float64 // end-cap factor
	Kthread float64 // thread factor; 1 when threads are absent
	Ktrans  float64 // transition factor; 1 when not considered
	K       float64 // factor of the governing feature
	Peak    float64 // K・nominal [Pa]
	Loc     string  // governing failure location
}

// transition geometry defaults for a typical bottle: 28mm neck on the body
// diameter with a 5mm fillet
const (
	defaultNeckDiam   = 0.028
	defaultNeckFillet = 0.005
)

// CalcMaxStress evaluates the nominal stress and every concentration
// candidate present in the geometry, returning the feature with the highest
// adjusted peak stress.
//
// Features within 0.1% of the highest peak are tied; the tie goes to the
// structurally less redundant feature (thread, then transition, then cap,
// then body) to bias the verdict towards earlier failure.
func CalcMaxStress(p float64, geo *mat.Geometry, m *mat.Material, includeTransition bool) (res MaxStress, err error) {

	// nominal stress via the exact solution
	var lc LameCylinder
	err = lc.InitGeo(geo, m)
	if err != nil {
		return
	}
	res.Nominal = lc.HoopInner(p, 0)

	// concentration factors of present features
	res.Kcap = CapFactor(geo.Cap)
	res.Kthread = 1.0
	if geo.Threaded {
		res.Kthread = ThreadFactor(geo, 0, 0)
	}
	res.Ktrans = 1.0
	if includeTransition {
		res.Ktrans = TransitionFactor(geo.Din, defaultNeckDiam, defaultNeckFillet)
	}

	// candidates ordered from least to most structurally redundant. The cap
	// is a candidate only when it concentrates stress; an ideal hemispherical
	// cap (K=1) carries membrane stress and the body governs instead.
	type candidate struct {
		loc string
		K   float64
	}
	var cands []candidate
	if geo.Threaded {
		cands = append(cands, candidate{LocThread, res.Kthread})
	}
	if includeTransition {
		cands = append(cands, candidate{LocTransition, res.Ktrans})
	}
	if res.Kcap > 1.0 {
		cands = append(cands, candidate{LocCap, res.Kcap})
	}
	cands = append(cands, candidate{LocBody, 1.0})

	// governing feature: highest peak; ties resolved by candidate order
	best := 0.0
	for _, c := range cands {
		if c.K > best {
			best = c.K
		}
	}
	for _, c := range cands {
		if c.K >= best*(1.0-tieTol) {
			res.K = c.K
			res.Loc = c.loc
			break
		}
	}
	res.Peak = res.K * res.Nominal
	return
}

// SafetyFactorK computes the concentration-adjusted safety factor
//  Input:
//   criterion -- "yield" or "ultimate"
func (o *MaxStress) SafetyFactorK(m *mat.Material, criterion string) (sf float64, err error) {
	strength, err := m.Strength(criterion)
	if err != nil {
		return
	}
	return SafetyFactor(strength, o.Peak), nil
}
