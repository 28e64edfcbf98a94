// Copyright 2017 The Rocketsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"strings"
	"testing"

	"github.com/philippoertle/rocket-simulator-sub000/ana"
	"github.com/philippoertle/rocket-simulator-sub000/mat"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// rampEngine builds a TableEngine with a linear pressure ramp
func rampEngine(p0, p1, tf float64, n int) *TableEngine {
	e := &TableEngine{
		Time: utl.LinSpace(0, tf, n),
		P:    make([]float64, n),
		Tmp:  make([]float64, n),
	}
	for i, t := range e.Time {
		e.P[i] = p0 + (p1-p0)*t/tf
		e.Tmp[i] = 300.0
	}
	return e
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. full analysis of a surviving bottle")

	cfg := &Config{
		Desc:     "2L PET bottle, mild ramp",
		Material: "PET",
		Vessel:   mat.Geometry{Din: 0.095, Tw: 0.0003, L: 0.25, Cap: mat.CapHemispherical},
		NpLame:   11,
	}
	engine := rampEngine(1e5, 2e5, 0.01, 5)

	res, err := Analyse(cfg, engine)
	if err != nil {
		tst.Errorf("Analyse failed:\n%v", err)
		return
	}
	rep := res.Report
	if chk.Verbose {
		rep.Print()
	}

	if rep.Failed {
		tst.Errorf("mild ramp should not burst the vessel\n")
		return
	}
	chk.Float64(tst, "peak P  ", 1e-6, rep.PeakP, 2e5)
	chk.Float64(tst, "peak T  ", 1e-9, rep.PeakTmp, 300.0)
	chk.String(tst, rep.Location, ana.LocBody)
	chk.Float64(tst, "K       ", 1e-17, rep.K, 1.0)
	chk.AnaNum(tst, "min SF  ", 1e-5, rep.MinSF, 55e6/(2e5*0.095/(2.0*0.0003)), chk.Verbose)
	if rep.MinSFK >= rep.MinSF {
		tst.Errorf("exact-solution SF should be below the membrane SF: %g vs %g\n", rep.MinSFK, rep.MinSF)
		return
	}
	if rep.CpuTime < 0 {
		tst.Errorf("cpu time should be non-negative\n")
		return
	}

	// both SFs are below the recommended minimum of 2
	found := false
	for _, w := range rep.Warnings {
		if strings.Contains(w, "recommended minimum") {
			found = true
		}
	}
	if !found {
		tst.Errorf("report should warn about SF below the recommended minimum: %v\n", rep.Warnings)
		return
	}

	// through-thickness profile honours the boundary conditions
	chk.IntAssert(len(res.Lame.R), 11)
	chk.AnaNum(tst, "σr(ri)", 2e5*1e-10, res.Lame.Sr[0], -2e5, chk.Verbose)
	chk.Float64(tst, "σr(ro)", 2e5*1e-10, res.Lame.Sr[10], 0)

	// membrane approximation is excellent for this bottle
	if !res.Cmp.Valid || res.Cmp.ErrPct > 1.0 {
		tst.Errorf("thin-wall approximation should hold: valid=%v err=%g%%\n", res.Cmp.Valid, res.Cmp.ErrPct)
	}

	// for an intact run the peak-pressure instant is the decisive instant
	chk.Float64(tst, "peak analysis", 1e-17, res.MaxSPeak.Peak, res.MaxS.Peak)
	chk.String(tst, res.MaxSPeak.Loc, res.MaxS.Loc)
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. full analysis of a bursting bottle")

	cfg := &Config{
		Desc:     "2L PET bottle, burst ramp",
		Material: "pet", // lookup is case-insensitive
		Vessel:   mat.Geometry{Din: 0.095, Tw: 0.0003, L: 0.25, Cap: mat.CapHemispherical},
	}
	engine := rampEngine(1e5, 5e5, 0.01, 5)

	res, err := Analyse(cfg, engine)
	if err != nil {
		tst.Errorf("Analyse failed:\n%v", err)
		return
	}
	rep := res.Report
	if chk.Verbose {
		rep.Print()
	}

	if !rep.Failed {
		tst.Errorf("ramp should burst the vessel\n")
		return
	}
	chk.String(tst, rep.FailMode, "yield")
	chk.String(tst, rep.Location, ana.LocBody)
	chk.Float64(tst, "min SF = 1", 1e-17, rep.MinSF, 1.0)

	// failure when the membrane hoop stress reaches yield
	pstar := 2.0 * 55e6 * 0.0003 / 0.095
	tstar := (pstar - 1e5) / 4e7
	chk.AnaNum(tst, "t(failure)", 1e-7, rep.FailTime, tstar, chk.Verbose)

	// the detailed pass runs at both the peak-pressure and the failure
	// instants; the truncated series peaks exactly at the failure sample,
	// so the two analyses see the same pressure
	n := len(res.State.P)
	_, ppk := res.State.PeakPressure()
	chk.Float64(tst, "peak pressure = p(failure)", 1e-9*ppk, ppk, res.State.P[n-1])
	chk.Float64(tst, "peak analysis nominal", 1e-9*res.MaxS.Nominal, res.MaxSPeak.Nominal, res.MaxS.Nominal)
	chk.String(tst, res.MaxSPeak.Loc, res.MaxS.Loc)
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. flat cap governs the verdict")

	cfg := &Config{
		Desc:     "flat-capped vessel",
		Material: "PET",
		Vessel:   mat.Geometry{Din: 0.095, Tw: 0.0003, L: 0.25, Cap: mat.CapFlat},
	}
	engine := rampEngine(1e5, 2.5e5, 0.01, 5)

	rep, err := Run(cfg, engine)
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	if chk.Verbose {
		rep.Print()
	}

	// nominal SF stays above 1 but the cap concentration (K=2.5) condemns it
	if rep.MinSF <= 1.0 {
		tst.Errorf("nominal SF should stay above 1: %g\n", rep.MinSF)
		return
	}
	if !rep.Failed {
		tst.Errorf("concentration-adjusted stress should condemn the vessel\n")
		return
	}
	chk.String(tst, rep.Location, ana.LocCap)
	chk.Float64(tst, "K", 1e-17, rep.K, 2.5)
	if rep.MinSFK >= 1.0 {
		tst.Errorf("adjusted SF should be below 1: %g\n", rep.MinSFK)
		return
	}

	// high concentration warning
	found := false
	for _, w := range rep.Warnings {
		if strings.Contains(w, "concentration") {
			found = true
		}
	}
	if !found {
		tst.Errorf("report should warn about the high concentration: %v\n", rep.Warnings)
	}
}

func Test_sim04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim04. report round-trips")

	rep := &SafetyReport{
		Desc:      "round-trip",
		PeakP:     2.345e5,
		PeakTmp:   312.75,
		MinSF:     1.736842105263158,
		MinSFK:    1.731234567890123,
		MaxStress: 3.1766981233e7,
		K:         1.0,
		Location:  "body",
		Failed:    false,
		Warnings:  []string{"safety factor below recommended minimum of 2.0"},
		CpuTime:   0.0123,
	}

	for _, enctype := range []string{"json", "gob"} {
		err := rep.Save("/tmp/rocketsim", "report01_"+enctype, enctype)
		if err != nil {
			tst.Errorf("Save failed:\n%v", err)
			return
		}
		back, err := ReadReport("/tmp/rocketsim", "report01_"+enctype, enctype)
		if err != nil {
			tst.Errorf("ReadReport failed:\n%v", err)
			return
		}
		chk.String(tst, back.Desc, rep.Desc)
		chk.String(tst, back.Location, rep.Location)
		chk.Float64(tst, enctype+": peak P   ", 1e-9*rep.PeakP, back.PeakP, rep.PeakP)
		chk.Float64(tst, enctype+": min SF   ", 1e-9*rep.MinSF, back.MinSF, rep.MinSF)
		chk.Float64(tst, enctype+": min SF(K)", 1e-9*rep.MinSFK, back.MinSFK, rep.MinSFK)
		chk.Float64(tst, enctype+": max σ    ", 1e-9*rep.MaxStress, back.MaxStress, rep.MaxStress)
		chk.IntAssert(len(back.Warnings), 1)
		io.Pf("%s round-trip ok\n", enctype)
	}
}

func Test_sim05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim05. configuration errors abort the run")

	// missing material
	cfg := &Config{Vessel: mat.Geometry{Din: 0.095, Tw: 0.0003, L: 0.25}}
	_, err := Run(cfg, rampEngine(1e5, 2e5, 0.01, 5))
	if err == nil {
		tst.Errorf("Run should have failed: no material\n")
		return
	}
	io.Pf("err = %v\n", err)

	// unknown material
	cfg = &Config{Material: "unobtainium", Vessel: mat.Geometry{Din: 0.095, Tw: 0.0003, L: 0.25}}
	_, err = Run(cfg, rampEngine(1e5, 2e5, 0.01, 5))
	if err == nil {
		tst.Errorf("Run should have failed: unknown material\n")
		return
	}
	if _, ok := err.(*mat.NotFoundError); !ok {
		tst.Errorf("error should be *mat.NotFoundError: %v\n", err)
		return
	}

	// bad criterion
	cfg = &Config{Material: "PET", Criterion: "vonmises", Vessel: mat.Geometry{Din: 0.095, Tw: 0.0003, L: 0.25}}
	_, err = Run(cfg, rampEngine(1e5, 2e5, 0.01, 5))
	if err == nil {
		tst.Errorf("Run should have failed: bad criterion\n")
		return
	}

	// degenerate geometry
	cfg = &Config{Material: "PET", Vessel: mat.Geometry{Din: 0.095, Tw: 0.05, L: 0.25}}
	_, err = Run(cfg, rampEngine(1e5, 2e5, 0.01, 5))
	if err == nil {
		tst.Errorf("Run should have failed: wall thicker than inner radius\n")
		return
	}
	if _, ok := err.(*mat.InvalidGeometryError); !ok {
		tst.Errorf("error should be *mat.InvalidGeometryError: %v\n", err)
		return
	}
	io.Pf("err = %v\n", err)
}
