// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flow implements flow-condition value objects with properties
// derived from the International Standard Atmosphere
package flow

import "math"

// ISA constants
const (
	Rair  = 287.058  // specific gas constant for dry air [J/(kg·K)]
	Gamma = 1.4      // adiabatic index
	Grav  = 9.80665  // gravity [m/s²]
	T0    = 288.15   // sea-level temperature [K]
	P0    = 101325.0 // sea-level pressure [Pa]

	// altitude range covered by the layer table below
	AltMin = -2000.0 // [m]
	AltMax = 47000.0 // [m]
)

// isaLayer holds one layer of the standard atmosphere
type isaLayer struct {
	hBase float64 // base geopotential altitude [m]
	hTop  float64 // top altitude [m]
	lapse float64 // temperature lapse rate [K/m]; positive = cooling with altitude
}

// layer bases; temperatures and pressures at each base are derived once in init()
var isaLayers = []isaLayer{
	{AltMin, 11000.0, 0.0065},  // troposphere (extended slightly below sea level)
	{11000.0, 20000.0, 0.0},    // tropopause, isothermal at 216.65 K
	{20000.0, 32000.0, -0.001}, // lower stratosphere, inversion
	{32000.0, AltMax, -0.0028}, // upper stratosphere, inversion
}

var (
	isaTBase []float64 // temperature at each layer base [K]
	isaPBase []float64 // pressure at each layer base [Pa]
)

func init() {
	n := len(isaLayers)
	isaTBase = make([]float64, n)
	isaPBase = make([]float64, n)
	// the first layer base sits below sea level; walk down from the
	// sea-level datum with the troposphere lapse rate
	isaTBase[0] = T0 + isaLayers[0].lapse*(0.0-isaLayers[0].hBase)
	isaPBase[0] = P0 * math.Pow(isaTBase[0]/T0, Grav/(Rair*isaLayers[0].lapse))
	for i := 1; i < n; i++ {
		prev := isaLayers[i-1]
		t, p := layerTp(prev, isaTBase[i-1], isaPBase[i-1], prev.hTop)
		isaTBase[i] = t
		isaPBase[i] = p
	}
}

// layerTp computes temperature and pressure within one layer
func layerTp(l isaLayer, tBase, pBase, h float64) (T, p float64) {
	dh := h - l.hBase
	if l.lapse == 0 {
		T = tBase
		p = pBase * math.Exp(-Grav*dh/(Rair*tBase))
		return
	}
	T = tBase - l.lapse*dh
	p = pBase * math.Pow(T/tBase, Grav/(Rair*l.lapse))
	return
}

// Atmosphere returns standard-atmosphere properties at a given geopotential
// altitude [m]: temperature [K], pressure [Pa], density [kg/m³] and speed of
// sound [m/s]. The altitude must lie within [AltMin, AltMax].
func Atmosphere(altitude float64) (T, p, rho, a float64, err error) {
	if altitude < AltMin || altitude > AltMax {
		err = &InvalidFlowConditionError{Altitude: altitude,
			Msg: "altitude is outside the standard-atmosphere table"}
		return
	}
	for i, l := range isaLayers {
		if altitude <= l.hTop || i == len(isaLayers)-1 {
			T, p = layerTp(l, isaTBase[i], isaPBase[i], altitude)
			break
		}
	}
	rho = p / (Rair * T)
	a = math.Sqrt(Gamma * Rair * T)
	return
}
