// Copyright 2017 The Rocketsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SafetyReport is the externally visible result of one analysis. Field
// names are stable for downstream serialisation.
type SafetyReport struct {
	Desc      string  `json:"desc"`            // description from the configuration
	PeakP     float64 `json:"peak_pressure"`   // maximum pressure reached [Pa]
	PeakTmp   float64 `json:"peak_temperature"` // maximum temperature reached [K]
	MinSF     float64 `json:"min_safety_factor"` // minimum nominal safety factor
	MinSFK    float64 `json:"min_safety_factor_k"` // concentration-adjusted safety factor at the decisive instant
	MaxStress float64 `json:"max_stress"`      // concentration-adjusted peak stress [Pa]
	K         float64 `json:"k_factor"`        // concentration factor of the governing feature
	Location  string  `json:"location"`        // governing failure location
	Failed    bool    `json:"failed"`          // failure verdict
	FailTime  float64 `json:"failure_time"`    // time of failure [s]; meaningful when Failed
	FailMode  string  `json:"failure_mode"`    // criterion that fired; "" if intact
	Warnings  []string `json:"warnings"`       // accumulated warnings
	CpuTime   float64 `json:"cputime"`         // wall-clock execution time [s]
}

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// Save writes the report to dirout/fnkey.rpt. io.WriteFileD panics on
// filesystem failure; the panic is converted to an error here.
func (o *SafetyReport) Save(dirout, fnkey, enctype string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot write report %q:\n%v", fnkey, r)
		}
	}()
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)
	err = enc.Encode(o)
	if err != nil {
		return chk.Err("cannot encode report:\n%v", err)
	}
	io.WriteFileD(dirout, fnkey+".rpt", &buf)
	return
}

// ReadReport reads a report written by Save
func ReadReport(dirout, fnkey, enctype string) (o *SafetyReport, err error) {
	defer func() {
		if r := recover(); r != nil {
			o, err = nil, chk.Err("cannot read report %q:\n%v", fnkey, r)
		}
	}()
	b := io.ReadFile(filepath.Join(dirout, fnkey+".rpt"))
	o = new(SafetyReport)
	dec := GetDecoder(bytes.NewBuffer(b), enctype)
	err = dec.Decode(o)
	if err != nil {
		return nil, chk.Err("cannot decode report:\n%v", err)
	}
	return
}

// Print writes a human-readable summary
func (o *SafetyReport) Print() {
	io.Pf("\nSAFETY REPORT: %s\n", o.Desc)
	io.Pf("  peak pressure     = %.2f bar\n", o.PeakP/1e5)
	io.Pf("  peak temperature  = %.0f K\n", o.PeakTmp)
	io.Pf("  min safety factor = %.3f (nominal) / %.3f (with concentration)\n", o.MinSF, o.MinSFK)
	io.Pf("  max stress        = %.1f MPa (K = %.2f at %s)\n", o.MaxStress/1e6, o.K, o.Location)
	if o.Failed {
		io.PfRed("  VESSEL FAILS at t = %g s (%s criterion) at the %s\n", o.FailTime, o.FailMode, o.Location)
	} else {
		io.Pfgreen("  vessel intact (SF > 1)\n")
	}
	for _, w := range o.Warnings {
		io.PfYel("  warning: %s\n", w)
	}
	io.Pf("  cpu time = %v s\n", o.CpuTime)
}
