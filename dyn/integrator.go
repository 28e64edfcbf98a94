// Copyright 2017 The Rocketsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dyn

import (
	"math"

	"github.com/philippoertle/rocket-simulator-sub000/ana"
	"github.com/philippoertle/rocket-simulator-sub000/mat"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/ode"
)

// SystemState holds the integrated time series. Arrays are time-ordered and
// of equal length. When Failed is true, the series is truncated at the
// failure event: the last sample has SF == 1 and FailureTime holds its time.
type SystemState struct {
	Time []float64 `json:"time"`          // time [s]
	P    []float64 `json:"pressure"`      // internal pressure [Pa]
	Tmp  []float64 `json:"temperature"`   // gas temperature [K]
	V    []float64 `json:"volume"`        // internal volume [m³]
	Sh   []float64 `json:"hoop_stress"`   // hoop stress [Pa]
	Sa   []float64 `json:"axial_stress"`  // axial stress [Pa]
	Svm  []float64 `json:"vm_stress"`     // von Mises stress [Pa]
	SF   []float64 `json:"safety_factor"` // safety factor [-]
	Eh   []float64 `json:"hoop_strain"`   // elastic hoop strain [-]

	Failed      bool    `json:"failed"`       // safety factor crossed 1
	FailureTime float64 `json:"failure_time"` // time of failure [s]; meaningful when Failed
	FailureMode string  `json:"failure_mode"` // criterion that fired: "yield" or "ultimate"; "" if intact
}

// MinSF returns the minimum safety factor of the series
func (o *SystemState) MinSF() (res float64) {
	res = o.SF[0]
	for _, v := range o.SF {
		res = math.Min(res, v)
	}
	return
}

// PeakPressure returns the maximum pressure of the series and its time
func (o *SystemState) PeakPressure() (t, p float64) {
	t, p = o.Time[0], o.P[0]
	for i := 1; i < len(o.P); i++ {
		if o.P[i] > p {
			t, p = o.Time[i], o.P[i]
		}
	}
	return
}

// PeakTemperature returns the maximum temperature of the series
func (o *SystemState) PeakTemperature() (res float64) {
	res = o.Tmp[0]
	for _, v := range o.Tmp {
		res = math.Max(res, v)
	}
	return
}

// Integrator advances the vessel state over an externally forced
// pressure/temperature history, evaluating the nominal stress state and
// safety factor at every accepted step and stopping exactly where the
// safety factor crosses 1. The in-loop check uses the cheap nominal
// (thin- or thick-wall) stress; the detailed concentration analysis is
// a separate pass run by the orchestrator.
type Integrator struct {

	// input
	Frc       *Forcing      // forcing history (owned by the caller)
	Geo       *mat.Geometry // vessel geometry
	Mat       *mat.Material // vessel material
	Criterion string        // failure criterion: "yield" or "ultimate"
	Tf        float64       // end time; ≤0 means the forcing end time
	MaxStp    float64       // maximum step size; ≤0 means 1e-4
	Deform    bool          // account for elastic volume change

	// derived
	strength float64          // allowable stress per criterion
	thin     bool             // use membrane solution in the loop
	tws      ana.ThinWall     // membrane solution
	lcs      ana.LameCylinder // exact solution (thick-wall route)
	choop    float64          // dσθ/dP at the governing fibre
	v0       float64          // undeformed internal volume
	sol      *ode.Solver      // strain sub-stepping
	ta, tb   float64          // physical interval of the active sub-step
}

// Init validates input data and prepares the solvers. The end time must lie
// within the forcing sample range; covering more time than the external
// engine provided would require extrapolation, which is a hard error.
func (o *Integrator) Init() (err error) {

	// input checks
	err = o.Geo.Validate()
	if err != nil {
		return
	}
	o.strength, err = o.Mat.Strength(o.Criterion)
	if err != nil {
		return
	}
	if o.Tf <= 0 {
		o.Tf = o.Frc.Tend()
	}
	if o.Tf < o.Frc.Tini() || o.Tf > o.Frc.Tend() {
		return &ForcingRangeError{o.Tf, o.Frc.Tini(), o.Frc.Tend()}
	}
	if o.MaxStp <= 0 {
		o.MaxStp = 1e-4
	}

	// stress route
	o.thin = o.Geo.ThinWall()
	o.tws.Init(o.Geo)
	err = o.lcs.InitGeo(o.Geo, o.Mat)
	if err != nil {
		return
	}
	if o.thin {
		o.choop = o.Geo.Din / (2.0 * o.Geo.Tw)
	} else {
		ri2 := o.lcs.Ri * o.lcs.Ri
		ro2 := o.lcs.Ro * o.lcs.Ro
		o.choop = (ri2 + ro2) / (ro2 - ri2)
	}
	o.v0 = o.Geo.Volume()

	// ODE solver for the strain state ξ := {εθ} driven by the pressure rate
	// over the pseudo-time T in [0,1] of the active interval [ta, tb].
	// dopri5: the right-hand side is explicit and non-stiff
	conf := ode.NewConfig("dopri5", "", nil)
	conf.SetTols(1e-9, 1e-6)
	o.sol = ode.NewSolver(1, conf, func(f la.Vector, h, T float64, ξ la.Vector) {
		t := o.ta + T*(o.tb-o.ta)
		f[0] = o.choop * o.Frc.psp.G(t) * (o.tb - o.ta) / o.Mat.E // dεθ/dT
	}, nil, nil)
	return
}

// Free releases the ODE solver workspace. Callers that Init must Free.
func (o *Integrator) Free() {
	if o.sol != nil {
		o.sol.Free()
	}
}

// stresses computes the nominal stress state at pressure p
func (o *Integrator) stresses(p float64) (s ana.StressState) {
	if o.thin {
		return o.tws.Calc(p)
	}
	sr, sh := o.lcs.Stresses(p, 0, o.lcs.Ri)
	s.Radial = sr
	s.Hoop = sh
	s.Axial = o.lcs.SigmaAxial(p)
	s.Vm = ana.VonMises(sr, sh, s.Axial)
	return
}

// sf computes the safety factor at pressure p. The governing nominal stress
// is the hoop stress, maximal among the components.
func (o *Integrator) sf(p float64) float64 {
	s := o.stresses(p)
	return ana.SafetyFactor(o.strength, s.Hoop)
}

// append evaluates all derived quantities at time t and appends one sample
func (o *Integrator) append(res *SystemState, t, eh float64) {
	p := o.Frc.psp.F(t)
	tmp := o.Frc.tsp.F(t)
	s := o.stresses(p)
	v := o.v0
	if o.Deform {
		ea := s.Axial / o.Mat.E
		v = o.v0 * (1.0 + 2.0*eh + ea)
	}
	res.Time = append(res.Time, t)
	res.P = append(res.P, p)
	res.Tmp = append(res.Tmp, tmp)
	res.V = append(res.V, v)
	res.Sh = append(res.Sh, s.Hoop)
	res.Sa = append(res.Sa, s.Axial)
	res.Svm = append(res.Svm, s.Vm)
	res.SF = append(res.SF, ana.SafetyFactor(o.strength, s.Hoop))
	res.Eh = append(res.Eh, eh)
}

// advance integrates the strain state from ta to tb. The solver panics on
// divergence; the panic is converted to a typed error here.
func (o *Integrator) advance(eh *float64, ta, tb float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &IntegrationDivergedError{io.Sf("%v", r)}
		}
	}()
	o.ta, o.tb = ta, tb
	ξ := la.Vector{*eh}
	o.sol.Solve(ξ, 0, 1)
	*eh = ξ[0]
	return
}

// locate finds the root of (SF - 1) within the bracketing interval [ta, tb]
func (o *Integrator) locate(ta, tb float64) (troot float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &IntegrationDivergedError{io.Sf("%v", r)}
		}
	}()
	brn := num.NewBrent(func(τ float64) float64 {
		return o.sf(o.Frc.psp.F(τ)) - 1.0
	}, nil)
	troot = brn.Root(ta, tb)
	return
}

// Run integrates from the first forcing sample to Tf, or to the failure
// event, whichever comes first
func (o *Integrator) Run() (res *SystemState, err error) {

	// output grid bounded by the maximum step size
	t0 := o.Frc.Tini()
	nstp := int(math.Ceil((o.Tf - t0) / o.MaxStp))
	if nstp < 1 {
		nstp = 1
	}
	Δt := (o.Tf - t0) / float64(nstp)

	// initial sample; the wall is already stressed by the initial pressure
	res = new(SystemState)
	eh := o.stresses(o.Frc.psp.F(t0)).Hoop / o.Mat.E
	o.append(res, t0, eh)
	if res.SF[0] <= 1.0 {
		// unsafe before the transient even starts
		res.Failed = true
		res.FailureTime = t0
		res.FailureMode = o.Criterion
		return
	}

	// step loop
	tprev := t0
	for i := 1; i <= nstp; i++ {
		t := t0 + float64(i)*Δt
		if i == nstp {
			t = o.Tf
		}
		sfcur := o.sf(o.Frc.psp.F(t))

		// failure event: locate the root of (SF - 1) in [tprev, t]
		if sfcur <= 1.0 {
			troot := t
			if sfcur < 1.0 {
				troot, err = o.locate(tprev, t)
				if err != nil {
					return nil, err
				}
			}
			err = o.advance(&eh, tprev, troot)
			if err != nil {
				return nil, err
			}
			o.append(res, troot, eh)
			n := len(res.SF)
			res.SF[n-1] = 1.0 // the sample sits exactly on the event root
			res.Failed = true
			res.FailureTime = troot
			res.FailureMode = o.Criterion
			return
		}

		// accept step
		err = o.advance(&eh, tprev, t)
		if err != nil {
			return nil, err
		}
		o.append(res, t, eh)
		tprev = t
	}
	return
}
