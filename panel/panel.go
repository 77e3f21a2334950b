// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package panel implements the panel geometry value object and its
// boundary-condition tags
package panel

import "github.com/cpmech/gosl/io"

// boundary-condition tags
const (
	SimplySupported = "simply-supported"
	Clamped         = "clamped"
)

// InvalidGeometryError indicates a panel with non-physical dimensions or an
// unknown boundary condition. It is recoverable by the caller.
type InvalidGeometryError struct {
	Msg string
}

// Error returns a human-readable message
func (e *InvalidGeometryError) Error() string {
	return io.Sf("invalid panel geometry: %s", e.Msg)
}

// Panel holds the geometry of one rectangular panel. The flow runs along
// Length. The material is shared and referenced alongside the panel in the
// analysis request; the panel never mutates it.
//
//        Width ^
//              |
//              o------------------o
//              |                  |
//    flow -->  |                  |  Thickness (out of plane)
//              |                  |
//              o------------------o-----> Length
//
type Panel struct {
	Length    float64 // streamwise dimension a [m]
	Width     float64 // spanwise dimension b [m]
	Thickness float64 // thickness h [m]
	BC        string  // boundary-condition tag
}

// Validate checks dimensions and boundary condition
func (o Panel) Validate() error {
	if o.Length <= 0 {
		return &InvalidGeometryError{Msg: io.Sf("length must be positive. a=%g is invalid", o.Length)}
	}
	if o.Width <= 0 {
		return &InvalidGeometryError{Msg: io.Sf("width must be positive. b=%g is invalid", o.Width)}
	}
	if o.Thickness <= 0 {
		return &InvalidGeometryError{Msg: io.Sf("thickness must be positive. h=%g is invalid", o.Thickness)}
	}
	switch o.BC {
	case SimplySupported, Clamped:
	default:
		return &InvalidGeometryError{Msg: io.Sf("boundary condition %q is unavailable", o.BC)}
	}
	return nil
}

// FreqCoef returns the first-mode frequency multiplier of the boundary
// condition relative to the simply-supported closed form (Leissa)
func (o Panel) FreqCoef() float64 {
	if o.BC == Clamped {
		return 35.99 / 19.74 // clamped vs simply-supported square-plate eigenvalue
	}
	return 1.0
}
