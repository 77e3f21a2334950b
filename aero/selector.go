// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package aero implements aerodynamic theory selection and the quasi-steady
// aerodynamic coupling coefficients used by the flutter determinant
package aero

// Method is the aerodynamic theory tag
type Method int

// available aerodynamic theories
const (
	DoubletLattice Method = iota // subsonic/transonic lattice method
	PistonTheory                 // supersonic approximate theory
)

// String returns the method name
func (m Method) String() string {
	if m == PistonTheory {
		return "piston-theory"
	}
	return "doublet-lattice"
}

// WarnTransonicGap is attached to selections in the 1.0 ≤ M < 1.2 band,
// where piston theory is used below its formal validity limit because the
// doublet-lattice method is invalid above M ≈ 1
const WarnTransonicGap = "transonic gap (1.0 <= M < 1.2): piston theory used below its validity limit, reduced confidence"

// SelectMethod maps a flow regime to an aerodynamic theory. It is total over
// M > 0 and side-effect free; the returned warning is empty except in the
// transonic gap. The doublet-lattice method is never selected at M >= 1:
// using it past its validity range underestimates flutter speeds by 2-3x.
func SelectMethod(mach float64) (method Method, warning string) {
	switch {
	case mach < 1.0:
		return DoubletLattice, ""
	case mach < 1.2:
		return PistonTheory, WarnTransonicGap
	}
	return PistonTheory, ""
}
