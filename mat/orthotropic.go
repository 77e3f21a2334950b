// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Orthotropic implements a linear elastic orthotropic panel material with
// in-plane principal directions aligned with the panel edges
type Orthotropic struct {
	E1   float64 // modulus along fibers [Pa]
	E2   float64 // modulus across fibers [Pa]
	G12  float64 // in-plane shear modulus [Pa]
	Nu12 float64 // major Poisson's ratio
	Rho  float64 // density [kg/m³]
}

// add model to factory
func init() {
	allocators["ortho-elast"] = func() Model { return new(Orthotropic) }
}

// Init initialises model
func (o *Orthotropic) Init(prms dbf.Params) error {
	for _, p := range prms {
		switch p.N {
		case "E1":
			o.E1 = p.V
		case "E2":
			o.E2 = p.V
		case "G12":
			o.G12 = p.V
		case "nu12":
			o.Nu12 = p.V
		case "rho":
			o.Rho = p.V
		default:
			return chk.Err("ortho-elast: parameter %q is unknown", p.N)
		}
	}
	return o.Check()
}

// GetPrms gets (an example) of parameters
func (o Orthotropic) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E1", V: 1.3800e+11},
		&dbf.P{N: "E2", V: 8.9600e+09},
		&dbf.P{N: "G12", V: 7.1000e+09},
		&dbf.P{N: "nu12", V: 3.0000e-01},
		&dbf.P{N: "rho", V: 1.6000e+03},
	}
}

// Nu21 returns the minor Poisson's ratio: ν21 = ν12·E2/E1
func (o Orthotropic) Nu21() float64 {
	return o.Nu12 * o.E2 / o.E1
}

// Check verifies the parameter ranges
func (o Orthotropic) Check() error {
	if o.E1 <= 0 || o.E2 <= 0 || o.G12 <= 0 {
		return chk.Err("ortho-elast: moduli must be positive. E1=%g, E2=%g, G12=%g is invalid", o.E1, o.E2, o.G12)
	}
	if o.Rho <= 0 {
		return chk.Err("ortho-elast: density must be positive. rho=%g is invalid", o.Rho)
	}
	if o.Nu12 <= 0 {
		return chk.Err("ortho-elast: Poisson's ratio must be positive. nu12=%g is invalid", o.Nu12)
	}
	if 1.0-o.Nu12*o.Nu21() <= 0 {
		return chk.Err("ortho-elast: 1 − ν12·ν21 must be positive. nu12=%g, nu21=%g is invalid", o.Nu12, o.Nu21())
	}
	return nil
}

// Density returns the material density
func (o Orthotropic) Density() float64 { return o.Rho }

// IsIsotropic returns false
func (o Orthotropic) IsIsotropic() bool { return false }

// EquivIsotropic projects the orthotropic constants onto an equivalent
// isotropic pair using geometric means:
//
//   E_eq = sqrt(E1·E2)    ν_eq = sqrt(ν12·ν21)
//
// The projection carries an expected error band of 20 to 50 %.
func (o Orthotropic) EquivIsotropic() (E, nu float64, err error) {
	E = math.Sqrt(o.E1 * o.E2)
	nu = math.Sqrt(o.Nu12 * o.Nu21())
	if nu <= 0 || nu >= 0.5 {
		return 0, 0, chk.Err("ortho-elast: equivalent Poisson's ratio %g is outside (0, 0.5); no isotropic projection exists", nu)
	}
	return E, nu, nil
}

// Bending computes the orthotropic plate bending stiffnesses for thickness h
func (o Orthotropic) Bending(h float64) (D Stiffness, approx bool) {
	h3 := h * h * h
	den := 12.0 * (1.0 - o.Nu12*o.Nu21())
	D.D11 = o.E1 * h3 / den
	D.D22 = o.E2 * h3 / den
	D.D12 = o.Nu12 * o.E2 * h3 / den
	D.D66 = o.G12 * h3 / 12.0
	return D, true
}
