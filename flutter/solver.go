// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flutter

import (
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"

	"github.com/giderb/goflutter/aero"
	"github.com/giderb/goflutter/ana"
)

// Analyze computes the critical flutter speed of one panel under one flow
// condition.
//
// The instability model couples the first two streamwise modes of the panel
// under the quasi-steady aerodynamic stiffness of the selected theory. The
// determinant
//
//   F(V) = g(V) − (ω₂² − ω₁²)/2 ,   g(V) = 8·C(½ρV²) / (3·μ·a)
//
// crosses zero at the coalescence speed; the sweep scans ascending
// velocities so the lowest (first, critical) root always wins, and the
// bracketing interval is refined with Brent's method. When the sweep finds
// no bracket the closed-form estimate takes over with provenance
// AnalyticalFallback; that is the designed degraded mode, not an error.
func Analyze(req Request) (*Result, error) {

	// hard failure conditions always; solver-range assertions with Validate
	if err := req.check(req.Validate); err != nil {
		return nil, err
	}
	if req.NumPoints < 2 || req.VMax <= req.VMin {
		// without these the sweep cannot run regardless of Validate
		if err := req.check(true); err != nil {
			return nil, err
		}
	}

	method, warning, err := req.resolveMethod()
	if err != nil {
		return nil, err
	}

	betaMin := req.BetaMin
	if betaMin == 0 {
		betaMin = aero.DefaultBetaMin
	}
	corr := DefaultCorrections()
	if req.Corr != nil {
		corr = *req.Corr
	}

	// structural quantities
	D, approx := req.Material.Bending(req.Panel.Thickness)
	mu := req.Material.Density() * req.Panel.Thickness
	deq := D.Equiv()
	w1 := stripOmega2(req.Panel, deq, mu, 1)
	w2 := stripOmega2(req.Panel, deq, mu, 2)
	half := (w2 - w1) / 2.0

	// flutter determinant
	a := req.Panel.Length
	fdet := func(v float64) (float64, error) {
		c, e := aero.CouplingCoef(method, req.Flow.DynPressAt(v), req.Flow.Mach, betaMin)
		if e != nil {
			return 0, e
		}
		return 8.0*c/(3.0*mu*a) - half, nil
	}

	res := &Result{
		Method:          method.String(),
		Provenance:      Numerical,
		TransonicFactor: 1.0,
		TempFactor:      1.0,
	}
	if warning != "" {
		res.AddCaveat(warning)
	}
	if approx {
		res.AddCaveat(CaveatEquivIsotropic)
	}

	// sweep: first bracketing interval wins
	speed, found, err := sweep(fdet, req.VMin, req.VMax, req.NumPoints)
	if err != nil {
		return nil, err
	}
	if !found {
		speed, err = ana.FlutterSpeed(deq, a, req.Flow.Rho, req.Flow.Mach, method, betaMin)
		if err != nil {
			return nil, err
		}
		res.Provenance = AnalyticalFallback
		res.AddCaveat(CaveatAnalyticalFallback)
	}

	// regime corrections: deterministic, in-band only, caller-toggled
	if req.ApplyCorrections && corr.InBand(req.Flow.Mach) {
		res.TransonicApplied = true
		res.TransonicFactor = corr.TransonicFactor
		speed *= corr.TransonicFactor
		res.TempApplied = true
		res.TempFactor = corr.TempFactor(req.Flow.Temp)
		speed *= res.TempFactor
	}

	res.Speed = speed
	res.Frequency = FirstFrequency(req.Panel, req.Material)
	return res, nil
}

// sweep samples the determinant at evenly spaced speeds and refines the
// first sign change with Brent's method
func sweep(fdet func(float64) (float64, error), vmin, vmax float64, npoints int) (root float64, found bool, err error) {
	vs := utl.LinSpace(vmin, vmax, npoints)
	fprev, err := fdet(vs[0])
	if err != nil {
		return 0, false, err
	}
	for i := 1; i < len(vs); i++ {
		fcur, e := fdet(vs[i])
		if e != nil {
			return 0, false, e
		}
		if fprev == 0 {
			return vs[i-1], true, nil
		}
		if fprev < 0 && fcur >= 0 {
			var brent num.Brent
			brent.Init(fdet)
			root, e = brent.Solve(vs[i-1], vs[i], true)
			if e != nil {
				// refinement failure degrades to the fallback path
				return 0, false, nil
			}
			return root, true, nil
		}
		fprev = fcur
	}
	return 0, false, nil
}
