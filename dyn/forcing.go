// Copyright 2017 The Rocketsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dyn implements the transient system-dynamics integrator with
// failure-event detection
package dyn

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Spline implements a natural cubic spline through data points. F returns
// the interpolated value and G its first derivative, following the F/G
// naming of gosl's function types.
type Spline struct {
	X []float64 // abscissae (strictly increasing)
	Y []float64 // ordinates
	m []float64 // second derivatives at the knots
}

// Init fits the spline. X must be strictly increasing with at least 3 points.
func (o *Spline) Init(x, y []float64) (err error) {
	n := len(x)
	if n < 3 {
		return chk.Err("cubic spline requires at least 3 points: n=%d", n)
	}
	if len(y) != n {
		return chk.Err("x and y must have the same length: %d != %d", n, len(y))
	}
	o.X, o.Y = x, y
	o.m = make([]float64, n)

	// tridiagonal system for the interior second derivatives (natural ends)
	a := make([]float64, n) // sub-diagonal
	b := make([]float64, n) // diagonal
	c := make([]float64, n) // super-diagonal
	d := make([]float64, n) // right-hand side
	b[0], b[n-1] = 1.0, 1.0
	for i := 1; i < n-1; i++ {
		hm := x[i] - x[i-1]
		hp := x[i+1] - x[i]
		a[i] = hm
		b[i] = 2.0 * (hm + hp)
		c[i] = hp
		d[i] = 6.0 * ((y[i+1]-y[i])/hp - (y[i]-y[i-1])/hm)
	}

	// Thomas algorithm
	for i := 1; i < n; i++ {
		w := a[i] / b[i-1]
		b[i] -= w * c[i-1]
		d[i] -= w * d[i-1]
	}
	o.m[n-1] = d[n-1] / b[n-1]
	for i := n - 2; i >= 0; i-- {
		o.m[i] = (d[i] - c[i]*o.m[i+1]) / b[i]
	}
	return
}

// segment finds the knot interval containing t (binary search)
func (o *Spline) segment(t float64) int {
	lo, hi := 0, len(o.X)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if o.X[mid] > t {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}

// F returns the interpolated value at t
func (o *Spline) F(t float64) float64 {
	i := o.segment(t)
	h := o.X[i+1] - o.X[i]
	u := (o.X[i+1] - t) / h
	v := (t - o.X[i]) / h
	return u*o.Y[i] + v*o.Y[i+1] +
		((u*u*u-u)*o.m[i]+(v*v*v-v)*o.m[i+1])*h*h/6.0
}

// G returns the first derivative at t
func (o *Spline) G(t float64) float64 {
	i := o.segment(t)
	h := o.X[i+1] - o.X[i]
	u := (o.X[i+1] - t) / h
	v := (t - o.X[i]) / h
	return (o.Y[i+1]-o.Y[i])/h +
		((3.0*v*v-1.0)*o.m[i+1]-(3.0*u*u-1.0)*o.m[i])*h/6.0
}

// Forcing holds the pressure/temperature history produced by the external
// thermochemical engine, with smooth (cubic) interpolation over the samples
type Forcing struct {

	// input
	Time []float64 `json:"time"`        // time [s]; strictly increasing
	P    []float64 `json:"pressure"`    // pressure [Pa]; positive
	Tmp  []float64 `json:"temperature"` // temperature [K]; positive

	// derived
	psp Spline // pressure interpolant
	tsp Spline // temperature interpolant
}

// NewForcing validates the raw samples and fits the interpolants. Malformed
// data gives *InvalidForcingError.
func NewForcing(time, p, tmp []float64) (o *Forcing, err error) {
	n := len(time)
	if n < 3 {
		return nil, &InvalidForcingError{io.Sf("at least 3 samples are required: n=%d", n)}
	}
	if len(p) != n || len(tmp) != n {
		return nil, &InvalidForcingError{io.Sf("arrays must have the same length: nt=%d, np=%d, ntmp=%d", n, len(p), len(tmp))}
	}
	for i := 0; i < n; i++ {
		if math.IsNaN(time[i]) || math.IsInf(time[i], 0) ||
			math.IsNaN(p[i]) || math.IsInf(p[i], 0) ||
			math.IsNaN(tmp[i]) || math.IsInf(tmp[i], 0) {
			return nil, &InvalidForcingError{io.Sf("non-finite sample at index %d", i)}
		}
		if i > 0 && time[i] <= time[i-1] {
			return nil, &InvalidForcingError{io.Sf("time must be strictly increasing: t[%d]=%g ≤ t[%d]=%g", i, time[i], i-1, time[i-1])}
		}
		if p[i] <= 0 {
			return nil, &InvalidForcingError{io.Sf("pressure must be positive: p[%d]=%g", i, p[i])}
		}
		if tmp[i] <= 0 {
			return nil, &InvalidForcingError{io.Sf("temperature must be positive: T[%d]=%g", i, tmp[i])}
		}
	}
	o = &Forcing{Time: time, P: p, Tmp: tmp}
	err = o.psp.Init(time, p)
	if err != nil {
		return nil, err
	}
	err = o.tsp.Init(time, tmp)
	if err != nil {
		return nil, err
	}
	return
}

// Tini returns the first sample time
func (o *Forcing) Tini() float64 { return o.Time[0] }

// Tend returns the last sample time
func (o *Forcing) Tend() float64 { return o.Time[len(o.Time)-1] }

// check returns *ForcingRangeError when t is outside the sample range
func (o *Forcing) check(t float64) error {
	if t < o.Tini() || t > o.Tend() {
		return &ForcingRangeError{t, o.Tini(), o.Tend()}
	}
	return nil
}

// At returns pressure and temperature at time t
func (o *Forcing) At(t float64) (p, tmp float64, err error) {
	err = o.check(t)
	if err != nil {
		return
	}
	return o.psp.F(t), o.tsp.F(t), nil
}

// Pressure returns the pressure at time t
func (o *Forcing) Pressure(t float64) (p float64, err error) {
	err = o.check(t)
	if err != nil {
		return
	}
	return o.psp.F(t), nil
}

// PressureRate returns dP/dt at time t
func (o *Forcing) PressureRate(t float64) (rate float64, err error) {
	err = o.check(t)
	if err != nil {
		return
	}
	return o.psp.G(t), nil
}

// PeakPressure returns the maximum sampled pressure and its time
func (o *Forcing) PeakPressure() (t, p float64) {
	t, p = o.Time[0], o.P[0]
	for i := 1; i < len(o.P); i++ {
		if o.P[i] > p {
			t, p = o.Time[i], o.P[i]
		}
	}
	return
}
