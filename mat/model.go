// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mat implements panel material models: isotropic metals,
// orthotropic single-layer composites and laminates with bending
// stiffnesses derived from classical laminate theory
package mat

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Stiffness holds the per-direction bending stiffnesses of a panel section
//
//   D11 : bending about the spanwise axis (streamwise stiffness)
//   D22 : bending about the streamwise axis (spanwise stiffness)
//   D12 : Poisson coupling
//   D66 : twisting stiffness
//
// For an isotropic plate D11 = D22 = D, D12 = ν·D and D66 = (1−ν)·D/2,
// hence D12 + 2·D66 = D.
type Stiffness struct {
	D11 float64
	D22 float64
	D12 float64
	D66 float64
}

// Equiv returns the equivalent scalar rigidity sqrt(D11·D22) used by the
// simplified coupling model. For an isotropic plate this equals D exactly.
func (o Stiffness) Equiv() float64 {
	return math.Sqrt(o.D11 * o.D22)
}

// Model defines the interface for panel materials. Every variant must
// implement the equivalent-isotropic projection explicitly; a variant that
// cannot project must return an error rather than fall back to constants of
// an unrelated material.
type Model interface {

	// Init initialises the model with a set of named parameters
	Init(prms dbf.Params) error

	// GetPrms gets (an example of) parameters
	GetPrms() dbf.Params

	// Density returns the material density [kg/m³]
	Density() float64

	// IsIsotropic tells whether the variant is exactly isotropic
	IsIsotropic() bool

	// EquivIsotropic returns the equivalent isotropic Young's modulus [Pa]
	// and Poisson's ratio. For non-isotropic variants the projection is an
	// approximation with an expected error band of 20 to 50 %.
	EquivIsotropic() (E, nu float64, err error)

	// Bending computes the per-direction bending stiffnesses for a panel of
	// thickness h [m]. approx is true when the stiffnesses derive from an
	// approximate projection of a non-isotropic layup.
	Bending(h float64) (D Stiffness, approx bool)
}

// allocators holds all available material models
var allocators = make(map[string]func() Model)

// New allocates a material model by name; e.g. "iso-elast", "ortho-elast",
// "laminate"
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("material model %q is unavailable", name)
	}
	return allocator(), nil
}
