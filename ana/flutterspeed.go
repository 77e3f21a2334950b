// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form (analytical) flutter estimates used to
// cross-check the numerical sweep and as its degraded-mode fallback
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/giderb/goflutter/aero"
)

// LamCr is the critical dynamic-pressure parameter λ = 2·q·a³/(β·D) of the
// two-mode coalescence of a pinned streamwise strip: λcr = 45·π⁴/16
var LamCr = 45.0 * math.Pow(math.Pi, 4) / 16.0

// DynPressParam computes the non-dimensional dynamic-pressure parameter
// λ = 2·q·a³ / (β·D)
func DynPressParam(q, length, beta, D float64) float64 {
	return 2.0 * q * length * length * length / (beta * D)
}

// FlutterSpeed returns the closed-form critical speed of the two-mode
// coalescence model. Setting λ = λcr and q = ½·ρ·V² gives
//
//   V = sqrt( λcr · β · D / (ρ · a³) )
//
// where β is the compressibility factor of the selected aerodynamic theory.
// The panel mass per area cancels out of the closed form.
//
//   D      : equivalent flexural rigidity [N·m]
//   length : streamwise panel dimension a [m]
//   rhoAir : air density [kg/m³]
//   mach   : Mach number
//   method : aerodynamic theory
//   betaMin: lower clamp for sqrt(M²−1); use aero.DefaultBetaMin
func FlutterSpeed(D, length, rhoAir, mach float64, method aero.Method, betaMin float64) (float64, error) {
	if D <= 0 || length <= 0 || rhoAir <= 0 {
		return 0, chk.Err("flutter closed form needs positive D, length and air density. D=%g, a=%g, rho=%g is invalid", D, length, rhoAir)
	}
	var beta float64
	switch method {
	case aero.DoubletLattice:
		if mach >= 1.0 {
			return 0, chk.Err("doublet-lattice closed form is invalid at M=%g (M must be < 1)", mach)
		}
		beta = math.Sqrt(1.0 - mach*mach)
	case aero.PistonTheory:
		beta = aero.Beta(mach, betaMin)
	default:
		return 0, chk.Err("aerodynamic method %d is unavailable", method)
	}
	a3 := length * length * length
	return math.Sqrt(LamCr * beta * D / (rhoAir * a3)), nil
}
