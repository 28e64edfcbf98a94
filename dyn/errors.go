// Copyright 2017 The Rocketsim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dyn

import "github.com/cpmech/gosl/io"

// InvalidForcingError indicates malformed external forcing data; e.g.
// non-finite samples, non-increasing time, or non-physical values.
// Integration never starts from such data.
type InvalidForcingError struct {
	Msg string
}

func (e *InvalidForcingError) Error() string {
	return io.Sf("invalid forcing data: %s", e.Msg)
}

// ForcingRangeError indicates an evaluation outside the forcing sample
// range. Extrapolating would fabricate physics, hence the hard error.
type ForcingRangeError struct {
	T, Tmin, Tmax float64
}

func (e *ForcingRangeError) Error() string {
	return io.Sf("time %g is outside the forcing range [%g, %g]; extrapolation is not allowed", e.T, e.Tmin, e.Tmax)
}

// IntegrationDivergedError indicates that the step loop or the failure-event
// root search could not be resolved. The error is surfaced, never retried:
// retrying with different tolerances would silently change the answer.
type IntegrationDivergedError struct {
	Msg string
}

func (e *IntegrationDivergedError) Error() string {
	return io.Sf("integration diverged: %s", e.Msg)
}
