// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aero

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// DefaultBetaMin bounds the compressibility factor √(M²−1) away from zero so
// the piston-theory branch stays finite when forced near M = 1
const DefaultBetaMin = 0.35

// CouplingCoef returns the quasi-steady aerodynamic stiffness coefficient
// C such that the local pressure perturbation is Δp = C · ∂w/∂x:
//
//   doublet-lattice :  C = 2·q / sqrt(1−M²)   (Prandtl–Glauert)
//   piston-theory   :  C = 2·q / sqrt(M²−1)   (Ackeret/first-order piston)
//
// q is the dynamic pressure [Pa]. betaMin clamps sqrt(M²−1) from below;
// pass DefaultBetaMin unless calibrating.
func CouplingCoef(method Method, q, mach, betaMin float64) (float64, error) {
	if q < 0 {
		return 0, chk.Err("dynamic pressure must be non-negative. q=%g is invalid", q)
	}
	switch method {
	case DoubletLattice:
		if mach >= 1.0 {
			return 0, chk.Err("doublet-lattice is invalid at M=%g (M must be < 1)", mach)
		}
		return 2.0 * q / math.Sqrt(1.0-mach*mach), nil
	case PistonTheory:
		beta := math.Sqrt(math.Max(mach*mach-1.0, 0))
		if beta < betaMin {
			beta = betaMin
		}
		return 2.0 * q / beta, nil
	}
	return 0, chk.Err("aerodynamic method %d is unavailable", method)
}

// Beta returns the supersonic compressibility factor max(√(M²−1), betaMin)
func Beta(mach, betaMin float64) float64 {
	beta := math.Sqrt(math.Max(mach*mach-1.0, 0))
	if beta < betaMin {
		beta = betaMin
	}
	return beta
}
