// Copyright 2017 The Rocketsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/philippoertle/rocket-simulator-sub000/mat"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// LameCylinder implements the exact elasticity (Lamé) solution for a
// thick-walled cylinder under internal and external pressure
//
//               , - - ,
//           , '         ' ,
//         ,                 ,
//        ,      .-'''-.      ,
//       ,      / ↖ ↑ ↗ \      ,
//       ,     |  ← Pi →  |     ,
//       ,      \ ↙ ↓ ↘ /      ,
//        ,      `-...-'      ,
//         ,                 ,      σr(r) = A - B/r²
//           ,            , '       σθ(r) = A + B/r²
//             ' - , ,  '
type LameCylinder struct {

	// input
	Ri float64 // inner radius
	Ro float64 // outer radius
	E  float64 // Young's modulus
	Nu float64 // Poisson's coefficient

	// derived
	k float64 // ro² - ri²
}

// LameSolution holds the through-thickness profiles sampled at Np radii.
// A solution belongs to the caller of Solve and is never cached.
type LameSolution struct {
	A, B float64   // the two Lamé constants
	R    []float64 // radial positions, from ri to ro
	Sr   []float64 // radial stress
	Sh   []float64 // hoop stress
	Sa   []float64 // axial stress (constant; plane-strain)
	Svm  []float64 // von Mises equivalent stress
	Ur   []float64 // radial displacement
	Er   []float64 // radial strain
	Eh   []float64 // hoop strain
	Ea   []float64 // axial strain
}

// Init initialises the solution for a given annulus and material
func (o *LameCylinder) Init(ri, ro float64, m *mat.Material) (err error) {
	if !(ro > ri) || ri <= 0 {
		return chk.Err("Lamé solution requires 0 < ri < ro: ri=%g, ro=%g", ri, ro)
	}
	o.Ri, o.Ro = ri, ro
	o.E, o.Nu = m.E, m.Nu
	o.k = ro*ro - ri*ri
	return
}

// InitGeo initialises the solution from a vessel geometry
func (o *LameCylinder) InitGeo(geo *mat.Geometry, m *mat.Material) error {
	return o.Init(geo.Ri(), geo.Ro(), m)
}

// InitPrms initialises the solution from a parameters list
func (o *LameCylinder) InitPrms(prms dbf.Params) (err error) {

	// default values
	o.Ri = 0.04
	o.Ro = 0.05
	o.E = 2.8e9
	o.Nu = 0.38

	// parameters
	for _, p := range prms {
		switch p.N {
		case "ri":
			o.Ri = p.V
		case "ro":
			o.Ro = p.V
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		}
	}

	// derived
	if !(o.Ro > o.Ri) || o.Ri <= 0 {
		return chk.Err("Lamé solution requires 0 < ri < ro: ri=%g, ro=%g", o.Ri, o.Ro)
	}
	o.k = o.Ro*o.Ro - o.Ri*o.Ri
	return
}

// Constants computes the two Lamé constants from the pressure boundary conditions
//   σr(ri) = -pi   and   σr(ro) = -po
func (o *LameCylinder) Constants(pi, po float64) (A, B float64) {
	ri2 := o.Ri * o.Ri
	ro2 := o.Ro * o.Ro
	A = (pi*ri2 - po*ro2) / o.k
	B = (pi - po) * ri2 * ro2 / o.k
	return
}

// Stresses computes radial and hoop stress at radius r
func (o *LameCylinder) Stresses(pi, po, r float64) (sr, sh float64) {
	A, B := o.Constants(pi, po)
	sr = A - B/(r*r)
	sh = A + B/(r*r)
	return
}

// SigmaAxial computes the (constant) axial stress for a closed-end cylinder
func (o *LameCylinder) SigmaAxial(pi float64) float64 {
	return pi * o.Ri * o.Ri / o.k
}

// HoopInner computes the hoop stress at the inner radius, where it is
// maximal for internal-pressure-dominated loading
func (o *LameCylinder) HoopInner(pi, po float64) float64 {
	_, sh := o.Stresses(pi, po, o.Ri)
	return sh
}

// VmInner computes the von Mises stress at the inner radius
func (o *LameCylinder) VmInner(pi, po float64) float64 {
	sr, sh := o.Stresses(pi, po, o.Ri)
	return VonMises(sr, sh, o.SigmaAxial(pi))
}

// Solve evaluates the solution at np linearly spaced radii from ri to ro.
//  Note: the radial stress honours the boundary conditions to machine
//  precision: σr(ri) = -pi and σr(ro) = -po
func (o *LameCylinder) Solve(pi, po float64, np int) (sol *LameSolution, err error) {
	if np < 2 {
		return nil, chk.Err("at least two sampling points are required: np=%d", np)
	}
	sol = &LameSolution{
		R:   utl.LinSpace(o.Ri, o.Ro, np),
		Sr:  make([]float64, np),
		Sh:  make([]float64, np),
		Sa:  make([]float64, np),
		Svm: make([]float64, np),
		Ur:  make([]float64, np),
		Er:  make([]float64, np),
		Eh:  make([]float64, np),
		Ea:  make([]float64, np),
	}
	sol.A, sol.B = o.Constants(pi, po)
	A, B := sol.A, sol.B
	sa := o.SigmaAxial(pi)
	for i, r := range sol.R {
		r2 := r * r
		sol.Sr[i] = A - B/r2
		sol.Sh[i] = A + B/r2
		sol.Sa[i] = sa
		sol.Svm[i] = VonMises(sol.Sr[i], sol.Sh[i], sa)
		sol.Ur[i] = ((1.0-o.Nu)*A*r + (1.0+o.Nu)*B/r) / o.E
		sol.Er[i] = (sol.Sr[i] - o.Nu*(sol.Sh[i]+sa)) / o.E
		sol.Eh[i] = (sol.Sh[i] - o.Nu*(sol.Sr[i]+sa)) / o.E
		sol.Ea[i] = (sa - o.Nu*(sol.Sr[i]+sol.Sh[i])) / o.E
	}
	return
}

// MaxHoop returns the maximum hoop stress in the profile
func (o *LameSolution) MaxHoop() (res float64) {
	res = o.Sh[0]
	for _, v := range o.Sh {
		res = math.Max(res, v)
	}
	return
}

// MaxVm returns the maximum von Mises stress in the profile
func (o *LameSolution) MaxVm() (res float64) {
	res = o.Svm[0]
	for _, v := range o.Svm {
		res = math.Max(res, v)
	}
	return
}

// CalcStressTable evaluates hoop and radial stress profiles for a set of
// internal pressures; e.g. for plotting a pressure sweep
func (o *LameCylinder) CalcStressTable(pvals []float64, nr int) (R []float64, Sr, Sh [][]float64) {
	R = utl.LinSpace(o.Ri, o.Ro, nr)
	np := len(pvals)
	Sr = utl.Alloc(np, nr)
	Sh = utl.Alloc(np, nr)
	for i, p := range pvals {
		for j, r := range R {
			Sr[i][j], Sh[i][j] = o.Stresses(p, 0, r)
		}
	}
	return
}

// Compare holds a comparison between the thin-wall and Lamé solutions
type Compare struct {
	TwByD    float64 // thickness-to-diameter ratio
	Valid    bool    // thin-wall assumption valid
	HoopThin float64 // thin-wall hoop stress
	HoopMax  float64 // maximum (inner) Lamé hoop stress
	ErrPct   float64 // thin-wall approximation error [%]
}

// CompareThinThick quantifies the thin-wall approximation error for a
// geometry under internal pressure p
func CompareThinThick(geo *mat.Geometry, m *mat.Material, p float64) (c Compare, err error) {
	var tw ThinWall
	tw.Init(geo)
	var lc LameCylinder
	err = lc.InitGeo(geo, m)
	if err != nil {
		return
	}
	c.TwByD = geo.TwByD()
	c.Valid = geo.ThinWall()
	c.HoopThin = tw.Calc(p).Hoop
	c.HoopMax = lc.HoopInner(p, 0)
	c.ErrPct = math.Abs(c.HoopMax-c.HoopThin) / c.HoopMax * 100.0
	return
}
