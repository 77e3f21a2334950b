// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flutter

import (
	"math"

	"github.com/giderb/goflutter/mat"
	"github.com/giderb/goflutter/panel"
)

// modalOmega2 returns ω² of plate mode (m,n) from the Leissa-type series
// with per-direction bending stiffnesses:
//
//   ω² = π⁴/μ · [ D11·(m/a)⁴ + 2·(D12+2·D66)·(m/a)²·(n/b)² + D22·(n/b)⁴ ]
//
// μ is the mass per area [kg/m²]. The boundary-condition coefficient of the
// panel scales the frequency (not ω²) relative to the simply-supported
// closed form.
func modalOmega2(p panel.Panel, D mat.Stiffness, mu float64, m, n int) float64 {
	ra := float64(m) / p.Length
	rb := float64(n) / p.Width
	term := D.D11*ra*ra*ra*ra + 2.0*(D.D12+2.0*D.D66)*ra*ra*rb*rb + D.D22*rb*rb*rb*rb
	pi4 := math.Pow(math.Pi, 4)
	c := p.FreqCoef()
	return pi4 * term / mu * c * c
}

// stripOmega2 returns ω² of the m-th mode of the streamwise strip model
// used by the coalescence determinant: ω² = (m·π)⁴·D/(μ·a⁴)
func stripOmega2(p panel.Panel, D, mu float64, m int) float64 {
	mpi := float64(m) * math.Pi
	a := p.Length
	c := p.FreqCoef()
	return mpi * mpi * mpi * mpi * D / (mu * a * a * a * a) * c * c
}

// FirstFrequency returns the first natural frequency [Hz] of the panel
func FirstFrequency(p panel.Panel, m mat.Model) float64 {
	D, _ := m.Bending(p.Thickness)
	mu := m.Density() * p.Thickness
	return math.Sqrt(modalOmega2(p, D, mu, 1, 1)) / (2.0 * math.Pi)
}
