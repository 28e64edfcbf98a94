// Copyright 2017 The Rocketsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/philippoertle/rocket-simulator-sub000/out"
	"github.com/philippoertle/rocket-simulator-sub000/sim"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nRocketsim -- Transient Burst Prediction for Pressure Vessels\n")
		io.Pf("Copyright 2017 The Rocketsim Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"save plots", "doplot", doplot,
		))
	}

	// configuration
	cfg, err := sim.ReadConfig(fnamepath)
	if err != nil {
		chk.Panic("cannot read configuration:\n%v", err)
	}

	// forcing engine
	if cfg.Forcefile == "" {
		chk.Panic("configuration must set a forcing file")
	}
	engine, err := sim.ReadTable(cfg.Forcefile)
	if err != nil {
		chk.Panic("cannot read forcing table:\n%v", err)
	}

	// run analysis
	res, err := sim.Analyse(cfg, engine)
	if err != nil {
		chk.Panic("analysis failed:\n%v", err)
	}

	// report
	if verbose {
		res.Report.Print()
	}
	err = res.Report.Save(cfg.DirOut, fnkey, cfg.Encoder)
	if err != nil {
		chk.Panic("cannot save report:\n%v", err)
	}
	if verbose {
		io.Pf("\nreport saved to %s\n", cfg.DirOut)
	}

	// plots
	if doplot {
		out.PlotHistory(res.State, cfg.DirOut, fnkey)
		out.PlotLame(res.Lame, cfg.DirOut, fnkey)
	}
}
