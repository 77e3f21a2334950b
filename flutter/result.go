// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flutter implements the coupled aeroelastic instability solver:
// modal plate frequencies, the critical-speed sweep with its analytical
// fallback, regime corrections and the exact-analysis capability boundary
package flutter

import "github.com/cpmech/gosl/io"

// Provenance tells how the critical speed was obtained
type Provenance int

// solution provenances
const (
	Numerical          Provenance = iota // sign change found by the velocity sweep
	AnalyticalFallback                   // closed-form estimate; designed degraded mode
)

// String returns the provenance name
func (p Provenance) String() string {
	if p == AnalyticalFallback {
		return "analytical-fallback"
	}
	return "numerical"
}

// caveats attached to reduced-confidence results. Silent approximation is
// the one defect this solver must never reproduce: every approximation
// surfaces one of these human-readable strings on the result.
const (
	CaveatEquivIsotropic     = "equivalent-isotropic approximation used for non-isotropic material; expected error band 20-50%"
	CaveatAnalyticalFallback = "no instability bracket in the velocity sweep; analytical closed-form estimate used"
	CaveatSubsonicPiston     = "piston theory forced at M < 1, reduced confidence"
)

// Result holds the outcome of one flutter analysis
type Result struct {
	Method           string     // aerodynamic theory used
	Speed            float64    // predicted critical speed [m/s]
	Frequency        float64    // first modal frequency [Hz]
	TransonicApplied bool       // transonic correction blended in
	TransonicFactor  float64    // speed multiplier applied (1 when not applied)
	TempApplied      bool       // temperature modulus correction blended in
	TempFactor       float64    // speed multiplier applied (1 when not applied)
	Provenance       Provenance // how the critical speed was obtained
	Caveats          []string   // human-readable warnings; empty means full confidence
}

// AddCaveat appends one warning string
func (o *Result) AddCaveat(msg string) {
	o.Caveats = append(o.Caveats, msg)
}

// Report returns a human-readable summary
func (o *Result) Report() string {
	l := io.Sf("method          = %s\n", o.Method)
	l += io.Sf("critical speed  = %.1f m/s\n", o.Speed)
	l += io.Sf("first frequency = %.2f Hz\n", o.Frequency)
	l += io.Sf("provenance      = %s\n", o.Provenance)
	if o.TransonicApplied {
		l += io.Sf("transonic correction applied (factor = %g)\n", o.TransonicFactor)
	}
	if o.TempApplied {
		l += io.Sf("temperature correction applied (factor = %g)\n", o.TempFactor)
	}
	for _, c := range o.Caveats {
		l += io.Sf("WARNING: %s\n", c)
	}
	return l
}
