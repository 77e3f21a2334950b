// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flutter

import "math"

// Corrections holds the empirical correction coefficients. Only the Mach
// band of the transonic correction is documented from tests; the magnitudes
// are calibration constants and therefore configurable rather than fixed
// numbers inside the formulas.
type Corrections struct {
	TransonicMachMin float64 // lower bound of the transonic band
	TransonicMachMax float64 // upper bound of the transonic band
	TransonicFactor  float64 // speed multiplier blended in within the band
	TempModulusCoef  float64 // relative modulus gain per relative temperature drop
	TempRef          float64 // reference temperature for the modulus [K]
}

// DefaultCorrections returns the default coefficients
func DefaultCorrections() Corrections {
	return Corrections{
		TransonicMachMin: 0.85,
		TransonicMachMax: 1.15,
		TransonicFactor:  0.85,
		TempModulusCoef:  0.04,
		TempRef:          288.15,
	}
}

// InBand tells whether the Mach number falls inside the transonic band
func (o Corrections) InBand(mach float64) bool {
	return mach > o.TransonicMachMin && mach < o.TransonicMachMax
}

// TempFactor returns the speed multiplier of the temperature-dependent
// modulus correction at static temperature T [K]. Flutter speed scales with
// sqrt(E), so the multiplier is sqrt(E(T)/E(TempRef)).
func (o Corrections) TempFactor(T float64) float64 {
	return math.Sqrt(1.0 + o.TempModulusCoef*(o.TempRef-T)/o.TempRef)
}
