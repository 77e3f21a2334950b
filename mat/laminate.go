// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Ply holds one layer of a laminate
type Ply struct {
	Mat       *Orthotropic // ply material (shared, read-only)
	Thickness float64      // ply thickness [m]
	Angle     float64      // fiber orientation from the streamwise axis [deg]
}

// Laminate implements a layered composite panel material. Bending
// stiffnesses D11, D22, D12 and D66 follow classical laminate theory:
// reduced stiffnesses Q of each ply are rotated by the fiber angle and
// integrated through the thickness with weight z².
type Laminate struct {
	Plies []Ply
}

// add model to factory
func init() {
	allocators["laminate"] = func() Model { return new(Laminate) }
}

// Init initialises model. A laminate has no scalar parameters: the layup
// must be supplied with AddPly (or via the "plies" block of a .mat file).
func (o *Laminate) Init(prms dbf.Params) error {
	if len(prms) > 0 {
		return chk.Err("laminate: scalar parameters are not accepted; define a \"plies\" layup instead")
	}
	return nil
}

// GetPrms gets (an example) of parameters; empty for laminates
func (o Laminate) GetPrms() dbf.Params { return nil }

// AddPly appends one layer to the stack
func (o *Laminate) AddPly(m *Orthotropic, thickness, angle float64) error {
	if m == nil {
		return chk.Err("laminate: ply material must be given")
	}
	if thickness <= 0 {
		return chk.Err("laminate: ply thickness must be positive. t=%g is invalid", thickness)
	}
	if err := m.Check(); err != nil {
		return err
	}
	o.Plies = append(o.Plies, Ply{Mat: m, Thickness: thickness, Angle: angle})
	return nil
}

// Thickness returns the total stack thickness
func (o Laminate) Thickness() (t float64) {
	for _, p := range o.Plies {
		t += p.Thickness
	}
	return
}

// Density returns the thickness-averaged density of the stack
func (o Laminate) Density() float64 {
	t := o.Thickness()
	if t <= 0 {
		return 0
	}
	m := 0.0
	for _, p := range o.Plies {
		m += p.Mat.Rho * p.Thickness
	}
	return m / t
}

// IsIsotropic returns false
func (o Laminate) IsIsotropic() bool { return false }

// qbar returns the rotated reduced stiffnesses of one ply
func qbar(p Ply) (q11, q22, q12, q66 float64) {
	m := p.Mat
	den := 1.0 - m.Nu12*m.Nu21()
	Q11 := m.E1 / den
	Q22 := m.E2 / den
	Q12 := m.Nu12 * m.E2 / den
	Q66 := m.G12
	θ := p.Angle * math.Pi / 180.0
	c, s := math.Cos(θ), math.Sin(θ)
	c2, s2 := c*c, s*s
	c4, s4 := c2*c2, s2*s2
	q11 = Q11*c4 + 2.0*(Q12+2.0*Q66)*s2*c2 + Q22*s4
	q22 = Q11*s4 + 2.0*(Q12+2.0*Q66)*s2*c2 + Q22*c4
	q12 = (Q11+Q22-4.0*Q66)*s2*c2 + Q12*(s4+c4)
	q66 = (Q11+Q22-2.0*Q12-2.0*Q66)*s2*c2 + Q66*(s4+c4)
	return
}

// clt integrates the rotated ply stiffnesses through the stack:
// D_ij = Σ Q̄_ij · (z_k³ − z_{k−1}³) / 3   with z measured from mid-plane
func (o Laminate) clt() (D Stiffness) {
	z := -o.Thickness() / 2.0
	for _, p := range o.Plies {
		q11, q22, q12, q66 := qbar(p)
		zb, zt := z, z+p.Thickness
		w := (zt*zt*zt - zb*zb*zb) / 3.0
		D.D11 += q11 * w
		D.D22 += q22 * w
		D.D12 += q12 * w
		D.D66 += q66 * w
		z = zt
	}
	return
}

// EquivIsotropic projects the laminate stiffnesses onto an equivalent
// isotropic pair:
//
//   ν_eq = D12 / sqrt(D11·D22)    E_eq = 12·sqrt(D11·D22)·(1−ν_eq²) / h³
//
// The projection carries an expected error band of 20 to 50 %.
func (o Laminate) EquivIsotropic() (E, nu float64, err error) {
	if len(o.Plies) == 0 {
		return 0, 0, chk.Err("laminate: layup is empty; no isotropic projection exists")
	}
	D := o.clt()
	dm := math.Sqrt(D.D11 * D.D22)
	nu = D.D12 / dm
	if nu <= 0 || nu >= 0.5 {
		return 0, 0, chk.Err("laminate: equivalent Poisson's ratio %g is outside (0, 0.5); no isotropic projection exists", nu)
	}
	h := o.Thickness()
	E = 12.0 * dm * (1.0 - nu*nu) / (h * h * h)
	return E, nu, nil
}

// Bending computes the laminate bending stiffnesses. When the requested
// thickness h differs from the stack thickness, the stiffnesses scale with
// (h/h_stack)³, which amounts to scaling every ply proportionally.
func (o Laminate) Bending(h float64) (D Stiffness, approx bool) {
	D = o.clt()
	hl := o.Thickness()
	if hl > 0 && math.Abs(h-hl) > 1e-12 {
		f := h / hl
		f3 := f * f * f
		D.D11 *= f3
		D.D22 *= f3
		D.D12 *= f3
		D.D66 *= f3
	}
	return D, true
}
