// Copyright 2017 The Rocketsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements plotting of analysis results
package out

import (
	"github.com/philippoertle/rocket-simulator-sub000/ana"
	"github.com/philippoertle/rocket-simulator-sub000/dyn"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// scaled returns a copy of v multiplied by m
func scaled(v []float64, m float64) (res []float64) {
	res = make([]float64, len(v))
	for i, x := range v {
		res[i] = x * m
	}
	return
}

// PlotHistory plots the integrated time series: pressure, temperature,
// stress components and safety factor versus time
func PlotHistory(state *dyn.SystemState, dirout, fnkey string) {

	T := state.Time

	plt.Reset(false, nil)

	plt.Subplot(2, 2, 1)
	plt.Plot(T, scaled(state.P, 1e-5), &plt.A{C: "b", Ls: "-"})
	plt.Gll("$t$ [s]", "$P$ [bar]", nil)

	plt.Subplot(2, 2, 2)
	plt.Plot(T, state.Tmp, &plt.A{C: "r", Ls: "-"})
	plt.Gll("$t$ [s]", "$T$ [K]", nil)

	plt.Subplot(2, 2, 3)
	plt.Plot(T, scaled(state.Sh, 1e-6), &plt.A{C: "k", Ls: "-", L: "$\\sigma_\\theta$"})
	plt.Plot(T, scaled(state.Sa, 1e-6), &plt.A{C: "g", Ls: "--", L: "$\\sigma_z$"})
	plt.Plot(T, scaled(state.Svm, 1e-6), &plt.A{C: "m", Ls: ":", L: "$\\sigma_{vm}$"})
	plt.Gll("$t$ [s]", "$\\sigma$ [MPa]", nil)

	plt.Subplot(2, 2, 4)
	plt.Plot(T, state.SF, &plt.A{C: "b", Ls: "-", L: "SF"})
	plt.Plot([]float64{T[0], T[len(T)-1]}, []float64{1, 1}, &plt.A{C: "r", Ls: "--", L: "failure"})
	plt.Gll("$t$ [s]", "$SF$", nil)
	plt.SetTicksNormal()

	plt.Save(dirout, fnkey+"_history")
}

// PlotLame plots the through-thickness stress and displacement profiles
func PlotLame(sol *ana.LameSolution, dirout, fnkey string) {

	R := scaled(sol.R, 1e3)

	plt.Reset(false, nil)

	plt.Subplot(2, 1, 1)
	plt.Plot(R, scaled(sol.Sr, 1e-6), &plt.A{C: "b", Ls: "-", L: "$\\sigma_r$"})
	plt.Plot(R, scaled(sol.Sh, 1e-6), &plt.A{C: "k", Ls: "-", L: "$\\sigma_\\theta$"})
	plt.Plot(R, scaled(sol.Svm, 1e-6), &plt.A{C: "m", Ls: "--", L: "$\\sigma_{vm}$"})
	plt.Gll("$r$ [mm]", "$\\sigma$ [MPa]", nil)

	plt.Subplot(2, 1, 2)
	plt.Plot(R, scaled(sol.Ur, 1e6), &plt.A{C: "r", Ls: "-"})
	plt.Gll("$r$ [mm]", "$u_r$ [$\\mu$m]", nil)
	plt.SetTicksNormal()

	plt.Save(dirout, fnkey+"_lame")
}

// PlotSweep plots hoop stress profiles for a sweep of internal pressures
func PlotSweep(lc *ana.LameCylinder, pvals []float64, nr int, dirout, fnkey string) {

	R, _, Sh := lc.CalcStressTable(pvals, nr)
	Rmm := scaled(R, 1e3)

	plt.Reset(false, nil)
	colors := []string{"b", "g", "r", "m", "k", "c"}
	for i, p := range pvals {
		c := colors[i%len(colors)]
		plt.Plot(Rmm, scaled(Sh[i], 1e-6), &plt.A{C: c, Ls: "-", L: io.Sf("$P=%g$ bar", p/1e5)})
	}
	plt.Gll("$r$ [mm]", "$\\sigma_\\theta$ [MPa]", nil)
	plt.SetTicksNormal()

	plt.Save(dirout, fnkey+"_sweep")
}
