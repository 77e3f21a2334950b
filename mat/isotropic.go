// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Isotropic implements a linear elastic isotropic panel material
type Isotropic struct {
	E   float64 // Young's modulus [Pa]
	Nu  float64 // Poisson's ratio
	Rho float64 // density [kg/m³]
}

// add model to factory
func init() {
	allocators["iso-elast"] = func() Model { return new(Isotropic) }
}

// Init initialises model
func (o *Isotropic) Init(prms dbf.Params) error {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "rho":
			o.Rho = p.V
		default:
			return chk.Err("iso-elast: parameter %q is unknown", p.N)
		}
	}
	return o.Check()
}

// GetPrms gets (an example) of parameters
func (o Isotropic) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 7.1700e+10},
		&dbf.P{N: "nu", V: 3.3000e-01},
		&dbf.P{N: "rho", V: 2.8100e+03},
	}
}

// Check verifies the parameter ranges
func (o Isotropic) Check() error {
	if o.E <= 0 {
		return chk.Err("iso-elast: Young's modulus must be positive. E=%g is invalid", o.E)
	}
	if o.Nu <= 0 || o.Nu >= 0.5 {
		return chk.Err("iso-elast: Poisson's ratio must be within (0, 0.5). nu=%g is invalid", o.Nu)
	}
	if o.Rho <= 0 {
		return chk.Err("iso-elast: density must be positive. rho=%g is invalid", o.Rho)
	}
	return nil
}

// Density returns the material density
func (o Isotropic) Density() float64 { return o.Rho }

// IsIsotropic returns true
func (o Isotropic) IsIsotropic() bool { return true }

// EquivIsotropic returns E and nu directly; the projection is exact here
func (o Isotropic) EquivIsotropic() (E, nu float64, err error) {
	return o.E, o.Nu, nil
}

// Bending computes the bending stiffnesses of an isotropic plate of
// thickness h:  D = E·h³ / (12·(1−ν²))
func (o Isotropic) Bending(h float64) (D Stiffness, approx bool) {
	d := o.E * h * h * h / (12.0 * (1.0 - o.Nu*o.Nu))
	D.D11 = d
	D.D22 = d
	D.D12 = o.Nu * d
	D.D66 = (1.0 - o.Nu) * d / 2.0
	return D, false
}
