// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import "github.com/cpmech/gosl/io"

// InvalidFlowConditionError indicates a flow condition outside the physical
// or tabulated range. It is recoverable by the caller.
type InvalidFlowConditionError struct {
	Mach     float64
	Altitude float64
	Msg      string
}

// Error returns a human-readable message
func (e *InvalidFlowConditionError) Error() string {
	return io.Sf("invalid flow condition (M=%g, altitude=%g m): %s", e.Mach, e.Altitude, e.Msg)
}

// Condition holds one flow condition. Values are derived once by
// NewCondition and must not be mutated afterwards.
type Condition struct {

	// input
	Mach     float64 // Mach number
	Altitude float64 // geopotential altitude [m]

	// derived
	Temp       float64 // static temperature [K]
	Press      float64 // static pressure [Pa]
	Rho        float64 // air density [kg/m³]
	SoundSpeed float64 // speed of sound [m/s]
	Speed      float64 // flow speed M·a [m/s]
	DynPress   float64 // dynamic pressure ½·ρ·(M·a)² [Pa]
}

// NewCondition builds a flow condition from Mach number and altitude
func NewCondition(mach, altitude float64) (Condition, error) {
	var c Condition
	if mach <= 0 {
		return c, &InvalidFlowConditionError{Mach: mach, Altitude: altitude,
			Msg: "Mach number must be positive"}
	}
	T, p, rho, a, err := Atmosphere(altitude)
	if err != nil {
		if e, ok := err.(*InvalidFlowConditionError); ok {
			e.Mach = mach
		}
		return c, err
	}
	c.Mach = mach
	c.Altitude = altitude
	c.Temp = T
	c.Press = p
	c.Rho = rho
	c.SoundSpeed = a
	c.Speed = mach * a
	c.DynPress = 0.5 * rho * c.Speed * c.Speed
	return c, nil
}

// DynPressAt returns the dynamic pressure ½·ρ·V² of this condition's air at
// an arbitrary speed V [m/s]; used by the flutter sweep
func (o Condition) DynPressAt(v float64) float64 {
	return 0.5 * o.Rho * v * v
}
