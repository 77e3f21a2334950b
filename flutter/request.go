// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flutter

import (
	"github.com/cpmech/gosl/chk"

	"github.com/giderb/goflutter/aero"
	"github.com/giderb/goflutter/flow"
	"github.com/giderb/goflutter/mat"
	"github.com/giderb/goflutter/panel"
)

// method flags accepted by Request.Method
const (
	MethodAuto    = "auto"    // select by flow regime
	MethodDoublet = "doublet" // force doublet-lattice
	MethodPiston  = "piston"  // force piston theory
)

// Request holds all inputs of one flutter analysis. Every field is explicit:
// there are no ambient defaults that could diverge between call sites, and in
// particular ApplyCorrections must be set deliberately by every caller.
type Request struct {
	Panel    panel.Panel    // geometry + boundary condition
	Material mat.Model      // shared, read-only material reference
	Flow     flow.Condition // flow condition built by flow.NewCondition

	Method           string // "auto", "doublet" or "piston"
	ApplyCorrections bool   // blend transonic/temperature corrections in-band
	Validate         bool   // re-assert input ranges at analyze time

	VMin      float64 // sweep lower bound [m/s]
	VMax      float64 // sweep upper bound [m/s]
	NumPoints int     // sweep samples (> 1); bounds worst-case latency

	// Corr overrides the empirical correction coefficients; nil selects
	// DefaultCorrections(). BetaMin clamps sqrt(M²−1); zero selects
	// aero.DefaultBetaMin.
	Corr    *Corrections
	BetaMin float64
}

// resolveMethod applies the method flag, invoking the regime selector for
// "auto". The returned warning is non-empty for reduced-confidence choices.
func (o Request) resolveMethod() (method aero.Method, warning string, err error) {
	switch o.Method {
	case MethodAuto:
		method, warning = aero.SelectMethod(o.Flow.Mach)
	case MethodDoublet:
		method = aero.DoubletLattice
		if o.Flow.Mach >= 1.0 {
			err = chk.Err("doublet-lattice cannot be forced at M=%g (M must be < 1)", o.Flow.Mach)
		}
	case MethodPiston:
		method = aero.PistonTheory
		if o.Flow.Mach < 1.0 {
			warning = CaveatSubsonicPiston
		}
	default:
		err = chk.Err("method flag %q is unavailable; options are %q, %q and %q",
			o.Method, MethodAuto, MethodDoublet, MethodPiston)
	}
	return
}

// check asserts the hard failure conditions (always) and, with full=true,
// the solver-range assertions enabled by the Validate flag
func (o Request) check(full bool) error {
	if o.Flow.Mach <= 0 {
		return &flow.InvalidFlowConditionError{Mach: o.Flow.Mach, Altitude: o.Flow.Altitude,
			Msg: "Mach number must be positive"}
	}
	if o.Flow.Rho <= 0 || o.Flow.Temp <= 0 {
		return &flow.InvalidFlowConditionError{Mach: o.Flow.Mach, Altitude: o.Flow.Altitude,
			Msg: "flow condition yields non-physical density or temperature; build it with flow.NewCondition"}
	}
	if err := o.Panel.Validate(); err != nil {
		return err
	}
	if o.Material == nil {
		return chk.Err("material reference must be given")
	}
	if !full {
		return nil
	}
	if o.NumPoints < 2 {
		return chk.Err("velocity sweep needs at least 2 points. npoints=%d is invalid", o.NumPoints)
	}
	if o.VMin <= 0 || o.VMax <= o.VMin {
		return chk.Err("velocity range must satisfy 0 < vmin < vmax. (%g, %g) is invalid", o.VMin, o.VMax)
	}
	return nil
}
