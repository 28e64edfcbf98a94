// Copyright 2017 The Rocketsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"time"

	"github.com/philippoertle/rocket-simulator-sub000/ana"
	"github.com/philippoertle/rocket-simulator-sub000/dyn"
	"github.com/philippoertle/rocket-simulator-sub000/mat"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// minimum recommended safety factor for pre-test screening
const recommendedSF = 2.0

// Results holds everything produced by one analysis. The Report is the
// externally visible part; the rest feeds plotting and file output.
type Results struct {
	Report   *SafetyReport     // final aggregate
	State    *dyn.SystemState  // integrated time series
	Lame     *ana.LameSolution // through-thickness profiles at the decisive instant
	MaxS     ana.MaxStress     // concentration analysis at the decisive instant
	MaxSPeak ana.MaxStress     // concentration analysis at the peak-pressure instant
	Cmp      ana.Compare       // thin- vs thick-wall comparison
}

// Analyse runs the full pipeline. Every dependency failure aborts the run;
// no partial report is ever produced.
//  Sequence:
//   1. engine produces the forcing curve
//   2. integrator computes the time series and the early failure verdict
//   3. detailed concentration analysis at the peak-pressure instant (and,
//      if failed, at the failure instant)
//   4. warnings and report assembly
func Analyse(cfg *Config, engine ForcingEngine) (res *Results, err error) {

	// timing
	cputime := time.Now()

	// configuration
	cfg.SetDefaults()
	err = cfg.Validate()
	if err != nil {
		return
	}

	// material
	var db *mat.Db
	if cfg.Matfile == "" {
		db = mat.NewDb()
	} else {
		db, err = mat.ReadMat("", cfg.Matfile)
		if err != nil {
			return
		}
	}
	m, err := db.Get(cfg.Material)
	if err != nil {
		return
	}
	err = m.Validate()
	if err != nil {
		return
	}

	// forcing curve from the external engine
	frc, err := engine.ProduceForcing()
	if err != nil {
		return nil, chk.Err("forcing engine failed:\n%v", err)
	}

	// system dynamics with failure-event detection
	ode := dyn.Integrator{
		Frc:       frc,
		Geo:       &cfg.Vessel,
		Mat:       m,
		Criterion: cfg.Criterion,
		Tf:        cfg.Tf,
		MaxStp:    cfg.MaxStp,
		Deform:    cfg.Deform,
	}
	err = ode.Init()
	if err != nil {
		return
	}
	defer ode.Free()
	state, err := ode.Run()
	if err != nil {
		return
	}

	// decisive instant: the failure instant when failed, else peak pressure
	tpk, ppk := state.PeakPressure()
	tdec, pdec := tpk, ppk
	if state.Failed {
		n := len(state.P)
		tdec, pdec = state.Time[n-1], state.P[n-1]
	}

	// detailed pass: concentration-adjusted peak stress and governing
	// location, at the peak-pressure instant and, when the run failed, at
	// the failure instant (which then governs the report)
	maxsPeak, err := ana.CalcMaxStress(ppk, &cfg.Vessel, m, cfg.Transition)
	if err != nil {
		return
	}
	maxs := maxsPeak
	if state.Failed {
		maxs, err = ana.CalcMaxStress(pdec, &cfg.Vessel, m, cfg.Transition)
		if err != nil {
			return
		}
	}
	sfk, err := maxs.SafetyFactorK(m, cfg.Criterion)
	if err != nil {
		return
	}

	// through-thickness profiles for output
	var lc ana.LameCylinder
	err = lc.InitGeo(&cfg.Vessel, m)
	if err != nil {
		return
	}
	lsol, err := lc.Solve(pdec, 0, cfg.NpLame)
	if err != nil {
		return
	}

	// thin- vs thick-wall comparison
	cmp, err := ana.CompareThinThick(&cfg.Vessel, m, pdec)
	if err != nil {
		return
	}

	// warnings
	var warnings []string
	var tw ana.ThinWall
	tw.Init(&cfg.Vessel)
	if w := tw.ValidityWarning(); w != "" {
		warnings = append(warnings, w)
	}
	if state.MinSF() < recommendedSF || sfk < recommendedSF {
		warnings = append(warnings, io.Sf("safety factor below recommended minimum of %.1f: nominal %.2f, with concentration %.2f", recommendedSF, state.MinSF(), sfk))
	}
	if maxs.K >= 2.0 {
		warnings = append(warnings, io.Sf("high stress concentration (K = %.2f) at governing feature %q", maxs.K, maxs.Loc))
	}
	if cfg.Vessel.Cap == mat.CapFlat {
		warnings = append(warnings, "flat caps carry high bending stress; consider a hemispherical or elliptical head")
	}
	if state.PeakTemperature() > m.Tmax {
		warnings = append(warnings, io.Sf("peak temperature %.0f K exceeds maximum service temperature %.0f K of %s", state.PeakTemperature(), m.Tmax, m.Name))
	}

	// verdict: the event verdict governs; the concentration-adjusted margin
	// can also condemn a vessel the nominal check passes
	failed := state.Failed || sfk < 1.0
	loc := maxs.Loc
	failTime := state.FailureTime
	failMode := state.FailureMode
	if failed && !state.Failed {
		// condemned by the concentrated stress at the decisive instant
		failTime = tdec
		failMode = cfg.Criterion
	}
	if state.Failed && maxs.K == 1.0 {
		loc = ana.LocBody
	}

	// report
	res = &Results{
		State:    state,
		Lame:     lsol,
		MaxS:     maxs,
		MaxSPeak: maxsPeak,
		Cmp:      cmp,
		Report: &SafetyReport{
			Desc:      cfg.Desc,
			PeakP:     maxP(state),
			PeakTmp:   state.PeakTemperature(),
			MinSF:     state.MinSF(),
			MinSFK:    sfk,
			MaxStress: maxs.Peak,
			K:         maxs.K,
			Location:  loc,
			Failed:    failed,
			FailTime:  failTime,
			FailMode:  failMode,
			Warnings:  warnings,
			CpuTime:   time.Now().Sub(cputime).Seconds(),
		},
	}
	return
}

// Run runs the full pipeline and returns the safety report only
func Run(cfg *Config, engine ForcingEngine) (rep *SafetyReport, err error) {
	res, err := Analyse(cfg, engine)
	if err != nil {
		return
	}
	return res.Report, nil
}

// maxP returns the peak pressure of the series
func maxP(state *dyn.SystemState) float64 {
	_, p := state.PeakPressure()
	return p
}
