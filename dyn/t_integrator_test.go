// Copyright 2017 The Rocketsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dyn

import (
	"testing"

	"github.com/philippoertle/rocket-simulator-sub000/mat"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// ramp builds a linear pressure ramp from p0 to p1 over [0, tf]
func ramp(p0, p1, tf float64, n int) (time, p, tmp []float64) {
	time = utl.LinSpace(0, tf, n)
	p = make([]float64, n)
	tmp = make([]float64, n)
	for i, t := range time {
		p[i] = p0 + (p1-p0)*t/tf
		tmp[i] = 300.0
	}
	return
}

func Test_integ01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integ01. failure event on a linear ramp")

	pet := &mat.Material{Name: "PET", Sy: 55e6, Su: 70e6, E: 2.8e9, Nu: 0.38}
	geo := mat.Geometry{Din: 0.095, Tw: 0.0003, L: 0.25, Cap: mat.CapHemispherical}

	// ramp from 1 to 5 bar in 10 ms; rate = 4e7 Pa/s
	time, p, tmp := ramp(1e5, 5e5, 0.01, 5)
	frc, err := NewForcing(time, p, tmp)
	if err != nil {
		tst.Errorf("NewForcing failed:\n%v", err)
		return
	}

	ode := Integrator{Frc: frc, Geo: &geo, Mat: pet, Criterion: "yield"}
	err = ode.Init()
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	defer ode.Free()
	res, err := ode.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	// the membrane hoop stress reaches the yield strength at
	//   p* = 2・sy・tw/din,  t* = (p* - p0)/rate
	pstar := 2.0 * 55e6 * 0.0003 / 0.095
	tstar := (pstar - 1e5) / 4e7
	io.Pforan("t* = %v (analytic %v)\n", res.FailureTime, tstar)

	if !res.Failed {
		tst.Errorf("ramp should burst the vessel\n")
		return
	}
	chk.String(tst, res.FailureMode, "yield")
	chk.AnaNum(tst, "t(failure)", 1e-7, res.FailureTime, tstar, chk.Verbose)

	// the last sample sits exactly on the event
	n := len(res.SF)
	chk.Float64(tst, "SF(last) = 1", 1e-17, res.SF[n-1], 1.0)
	chk.Float64(tst, "min SF = 1  ", 1e-17, res.MinSF(), 1.0)
	chk.AnaNum(tst, "σθ(last)    ", 1.0, res.Sh[n-1], 55e6, chk.Verbose)

	// elastic hoop strain tracks σθ/E through the sub-stepped ODE
	chk.AnaNum(tst, "εθ(last)", 1e-6, res.Eh[n-1], 55e6/2.8e9, chk.Verbose)

	// series is truncated at the event and time-ordered
	if res.Time[n-1] > 0.01 {
		tst.Errorf("series should be truncated at the failure time\n")
		return
	}
	for i := 1; i < n; i++ {
		if res.Time[i] <= res.Time[i-1] {
			tst.Errorf("time must be strictly increasing at sample %d\n", i)
			return
		}
	}
}

func Test_integ02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integ02. vessel survives a mild ramp")

	pet := &mat.Material{Name: "PET", Sy: 55e6, Su: 70e6, E: 2.8e9, Nu: 0.38}
	geo := mat.Geometry{Din: 0.095, Tw: 0.0003, L: 0.25, Cap: mat.CapHemispherical}

	time, p, tmp := ramp(1e5, 2e5, 0.01, 5)
	frc, err := NewForcing(time, p, tmp)
	if err != nil {
		tst.Errorf("NewForcing failed:\n%v", err)
		return
	}

	ode := Integrator{Frc: frc, Geo: &geo, Mat: pet, Criterion: "yield", MaxStp: 1e-4}
	err = ode.Init()
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	defer ode.Free()
	res, err := ode.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	if res.Failed {
		tst.Errorf("mild ramp should not burst the vessel\n")
		return
	}
	chk.IntAssert(len(res.Time), 101)
	chk.Float64(tst, "t(end)", 1e-15, res.Time[len(res.Time)-1], 0.01)

	// minimum SF occurs at the peak pressure
	chk.AnaNum(tst, "min SF", 1e-5, res.MinSF(), 55e6/(2e5*0.095/(2.0*0.0003)), chk.Verbose)

	// temperature history is the constant input
	chk.Float64(tst, "T(peak)", 1e-10, res.PeakTemperature(), 300.0)
}

func Test_integ03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integ03. unsafe before the transient starts")

	pet := &mat.Material{Name: "PET", Sy: 55e6, Su: 70e6, E: 2.8e9, Nu: 0.38}
	geo := mat.Geometry{Din: 0.095, Tw: 0.0003, L: 0.25, Cap: mat.CapHemispherical}

	// initial pressure already above the burst pressure
	time, p, tmp := ramp(4e5, 5e5, 0.01, 5)
	frc, err := NewForcing(time, p, tmp)
	if err != nil {
		tst.Errorf("NewForcing failed:\n%v", err)
		return
	}

	ode := Integrator{Frc: frc, Geo: &geo, Mat: pet, Criterion: "yield"}
	err = ode.Init()
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	defer ode.Free()
	res, err := ode.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}

	if !res.Failed {
		tst.Errorf("vessel should fail at the initial sample\n")
		return
	}
	chk.IntAssert(len(res.Time), 1)
	chk.Float64(tst, "t(failure)", 1e-17, res.FailureTime, 0)
	if res.SF[0] > 1.0 {
		tst.Errorf("initial SF should not exceed 1: %g\n", res.SF[0])
	}
}

func Test_integ04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integ04. end time beyond the forcing range")

	pet := &mat.Material{Name: "PET", Sy: 55e6, Su: 70e6, E: 2.8e9, Nu: 0.38}
	geo := mat.Geometry{Din: 0.095, Tw: 0.0003, L: 0.25, Cap: mat.CapHemispherical}

	time, p, tmp := ramp(1e5, 2e5, 0.01, 5)
	frc, err := NewForcing(time, p, tmp)
	if err != nil {
		tst.Errorf("NewForcing failed:\n%v", err)
		return
	}

	ode := Integrator{Frc: frc, Geo: &geo, Mat: pet, Criterion: "yield", Tf: 0.02}
	err = ode.Init()
	if err == nil {
		tst.Errorf("Init should have failed: Tf beyond the forcing range\n")
		return
	}
	if _, ok := err.(*ForcingRangeError); !ok {
		tst.Errorf("error should be *ForcingRangeError: %v\n", err)
		return
	}
	io.Pf("err = %v\n", err)
}

func Test_integ05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("integ05. end time before the first forcing sample")

	pet := &mat.Material{Name: "PET", Sy: 55e6, Su: 70e6, E: 2.8e9, Nu: 0.38}
	geo := mat.Geometry{Din: 0.095, Tw: 0.0003, L: 0.25, Cap: mat.CapHemispherical}

	// forcing samples start at t = 0.05 s
	time := utl.LinSpace(0.05, 0.06, 5)
	p := make([]float64, 5)
	tmp := make([]float64, 5)
	for i, t := range time {
		p[i] = 1e5 + 1e7*(t-0.05)
		tmp[i] = 300.0
	}
	frc, err := NewForcing(time, p, tmp)
	if err != nil {
		tst.Errorf("NewForcing failed:\n%v", err)
		return
	}

	// a positive Tf below Tini would require evaluating the splines left of
	// the first knot; Init must reject it
	ode := Integrator{Frc: frc, Geo: &geo, Mat: pet, Criterion: "yield", Tf: 0.01}
	err = ode.Init()
	if err == nil {
		tst.Errorf("Init should have failed: Tf before the forcing range\n")
		return
	}
	fre, ok := err.(*ForcingRangeError)
	if !ok {
		tst.Errorf("error should be *ForcingRangeError: %v\n", err)
		return
	}
	chk.Float64(tst, "t   ", 1e-17, fre.T, 0.01)
	chk.Float64(tst, "tmin", 1e-17, fre.Tmin, 0.05)
	chk.Float64(tst, "tmax", 1e-17, fre.Tmax, 0.06)
	io.Pf("err = %v\n", err)
}
