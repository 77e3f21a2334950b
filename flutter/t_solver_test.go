// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flutter

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/giderb/goflutter/ana"
	"github.com/giderb/goflutter/aero"
	"github.com/giderb/goflutter/flow"
	"github.com/giderb/goflutter/mat"
	"github.com/giderb/goflutter/panel"
)

// alup returns the reference aluminum panel: 455 x 175 x 5.65 mm, 7075-T6
func alup() (panel.Panel, mat.Model) {
	p := panel.Panel{Length: 0.455, Width: 0.175, Thickness: 0.00565, BC: panel.SimplySupported}
	m := &mat.Isotropic{E: 71.7e9, Nu: 0.33, Rho: 2810}
	return p, m
}

// alureq returns the reference supersonic request at sea level
func alureq(tst *testing.T, mach float64) Request {
	p, m := alup()
	cnd, err := flow.NewCondition(mach, 0)
	if err != nil {
		tst.Fatalf("NewCondition failed: %v", err)
	}
	return Request{
		Panel:            p,
		Material:         m,
		Flow:             cnd,
		Method:           MethodAuto,
		ApplyCorrections: false,
		Validate:         true,
		VMin:             100,
		VMax:             2000,
		NumPoints:        96,
	}
}

func Test_flutter01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flutter01. supersonic aluminum panel at sea level")

	req := alureq(tst, 1.27)
	res, err := Analyze(req)
	if err != nil {
		tst.Errorf("Analyze failed: %v", err)
		return
	}
	io.Pforan("%v", res.Report())

	if res.Method != "piston-theory" {
		tst.Errorf("M=1.27 must use piston theory, got %q", res.Method)
	}
	if res.Provenance != Numerical {
		tst.Errorf("root lies within the sweep; provenance must be numerical, got %v", res.Provenance)
	}
	if res.Speed < 1100 || res.Speed > 1500 {
		tst.Errorf("critical speed %g m/s is outside the accepted band [1100, 1500]", res.Speed)
	}
	if len(res.Caveats) != 0 {
		tst.Errorf("isotropic panel at M=1.27 must carry no caveats, got %v", res.Caveats)
	}
	if res.TransonicApplied || res.TempApplied {
		tst.Errorf("corrections were not requested and must not be applied")
	}

	// the sweep refines onto the closed form of the same model
	D, _ := req.Material.Bending(req.Panel.Thickness)
	vana, err := ana.FlutterSpeed(D.Equiv(), req.Panel.Length, req.Flow.Rho, req.Flow.Mach,
		aero.PistonTheory, aero.DefaultBetaMin)
	if err != nil {
		tst.Errorf("FlutterSpeed failed: %v", err)
		return
	}
	chk.Scalar(tst, "V numerical vs closed form", 1e-3, res.Speed, vana)

	// first natural frequency of the plate
	chk.Scalar(tst, "f11", 1.0, res.Frequency, 513.9)
}

func Test_flutter02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flutter02. provenance: fallback when the sweep has no bracket")

	// the root sits near 1499 m/s; a sweep capped at 500 m/s cannot bracket it
	req := alureq(tst, 1.27)
	req.VMax = 500
	res, err := Analyze(req)
	if err != nil {
		tst.Errorf("Analyze failed: %v", err)
		return
	}
	if res.Provenance != AnalyticalFallback {
		tst.Errorf("sweep without bracket must degrade to analytical fallback, got %v", res.Provenance)
	}
	found := false
	for _, c := range res.Caveats {
		if c == CaveatAnalyticalFallback {
			found = true
		}
	}
	if !found {
		tst.Errorf("fallback result must carry the fallback caveat, got %v", res.Caveats)
	}

	// the fallback reports the closed-form speed, even outside the range
	D, _ := req.Material.Bending(req.Panel.Thickness)
	vana, _ := ana.FlutterSpeed(D.Equiv(), req.Panel.Length, req.Flow.Rho, req.Flow.Mach,
		aero.PistonTheory, aero.DefaultBetaMin)
	chk.Scalar(tst, "V fallback", 1e-8, res.Speed, vana)
}

func Test_flutter03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flutter03. flutter speed grows strictly with thickness")

	prev := 0.0
	for _, h := range []float64{0.004, 0.005, 0.00565, 0.007, 0.008} {
		req := alureq(tst, 1.27)
		req.Panel.Thickness = h
		res, err := Analyze(req)
		if err != nil {
			tst.Errorf("Analyze failed at h=%g: %v", h, err)
			return
		}
		io.Pf("h = %5.2f mm  =>  Vf = %7.1f m/s (%v)\n", h*1e3, res.Speed, res.Provenance)
		if res.Speed <= prev {
			tst.Errorf("speed must grow with thickness: h=%g gave %g after %g", h, res.Speed, prev)
		}
		prev = res.Speed
	}
}

func Test_flutter04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flutter04. transonic corrections are explicit and in-band only")

	// M=1.05 sits in the transonic band and in the selector's gap
	off := alureq(tst, 1.05)
	on := alureq(tst, 1.05)
	on.ApplyCorrections = true

	roff, err := Analyze(off)
	if err != nil {
		tst.Errorf("Analyze failed: %v", err)
		return
	}
	ron, err := Analyze(on)
	if err != nil {
		tst.Errorf("Analyze failed: %v", err)
		return
	}
	if roff.TransonicApplied || roff.TempApplied {
		tst.Errorf("corrections must stay off when not requested")
	}
	if !ron.TransonicApplied || !ron.TempApplied {
		tst.Errorf("corrections must be applied in the transonic band when requested")
	}
	// at sea level the temperature matches the modulus reference: factor 1
	chk.Scalar(tst, "temp factor", 1e-12, ron.TempFactor, 1.0)
	chk.Scalar(tst, "correction ratio", 1e-9, ron.Speed/roff.Speed, DefaultCorrections().TransonicFactor)

	// both carry the transonic-gap warning of the selector
	if len(roff.Caveats) == 0 || len(ron.Caveats) == 0 {
		tst.Errorf("transonic-gap selections must warn")
	}

	// outside the band the flags stay off even when requested
	sup := alureq(tst, 1.27)
	sup.ApplyCorrections = true
	rsup, err := Analyze(sup)
	if err != nil {
		tst.Errorf("Analyze failed: %v", err)
		return
	}
	if rsup.TransonicApplied || rsup.TempApplied {
		tst.Errorf("corrections must not fire outside the transonic band")
	}
	chk.Scalar(tst, "factors outside band", 1e-17, rsup.TransonicFactor*rsup.TempFactor, 1.0)

	// at altitude the colder air stiffens the modulus: factor above 1
	cold, err := flow.NewCondition(1.05, 11000)
	if err != nil {
		tst.Errorf("NewCondition failed: %v", err)
		return
	}
	alt := alureq(tst, 1.05)
	alt.Flow = cold
	alt.ApplyCorrections = true
	ralt, err := Analyze(alt)
	if err != nil {
		tst.Errorf("Analyze failed: %v", err)
		return
	}
	if !ralt.TempApplied || ralt.TempFactor <= 1.0 {
		tst.Errorf("temperature factor at 11 km must exceed 1, got %g", ralt.TempFactor)
	}
	chk.Scalar(tst, "temp factor 11 km", 1e-12, ralt.TempFactor, DefaultCorrections().TempFactor(cold.Temp))
}

func Test_flutter05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flutter05. laminate panel carries the approximation caveat")

	ortho := &mat.Orthotropic{E1: 138e9, E2: 8.96e9, G12: 7.1e9, Nu12: 0.30, Rho: 1600}
	lam := new(mat.Laminate)
	for _, angle := range []float64{0, 90, 90, 0} {
		if err := lam.AddPly(ortho, 0.0014125, angle); err != nil {
			tst.Errorf("AddPly failed: %v", err)
			return
		}
	}

	req := alureq(tst, 1.27)
	req.Material = lam
	req.ApplyCorrections = true
	res, err := Analyze(req)
	if err != nil {
		tst.Errorf("Analyze failed: %v", err)
		return
	}
	io.Pforan("%v", res.Report())
	found := false
	for _, c := range res.Caveats {
		if c == CaveatEquivIsotropic {
			found = true
		}
	}
	if !found {
		tst.Errorf("non-isotropic material must carry the equivalent-isotropic caveat, got %v", res.Caveats)
	}
	if res.Speed <= 0 {
		tst.Errorf("speed must be positive, got %g", res.Speed)
	}

	// capability boundary
	if SupportsExactAnalysis(lam) {
		tst.Errorf("exact analysis must be unsupported for laminates")
	}
	_, iso := alup()
	if !SupportsExactAnalysis(iso) {
		tst.Errorf("exact analysis must be supported for isotropic materials")
	}

	_, err = AnalyzeExact(req, nil)
	if err == nil {
		tst.Errorf("exact analysis of a laminate without external solver must fail")
		return
	}
	var uerr *UnsupportedMaterialError
	if !errors.As(err, &uerr) {
		tst.Errorf("error must be *UnsupportedMaterialError, got %T", err)
	}

	// with an external solver configured the request is routed, not blocked
	ext := stubSolver{speed: 1234.5}
	res, err = AnalyzeExact(req, ext)
	if err != nil {
		tst.Errorf("routed exact analysis failed: %v", err)
		return
	}
	chk.Scalar(tst, "routed speed", 1e-17, res.Speed, 1234.5)
}

// stubSolver stands in for an external finite-element integration
type stubSolver struct{ speed float64 }

func (o stubSolver) Analyze(req Request) (*Result, error) {
	return &Result{Speed: o.speed, Provenance: Numerical}, nil
}

func Test_flutter06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flutter06. failure conditions")

	// bad geometry
	req := alureq(tst, 1.27)
	req.Panel.Thickness = 0
	_, err := Analyze(req)
	if err == nil {
		tst.Errorf("zero thickness must fail")
		return
	}
	var gerr *panel.InvalidGeometryError
	if !errors.As(err, &gerr) {
		tst.Errorf("error must be *panel.InvalidGeometryError, got %T", err)
	}

	// bad flow (bypassing the constructor)
	req = alureq(tst, 1.27)
	req.Flow = flow.Condition{Mach: 1.27}
	_, err = Analyze(req)
	if err == nil {
		tst.Errorf("non-physical flow must fail")
		return
	}
	var ferr *flow.InvalidFlowConditionError
	if !errors.As(err, &ferr) {
		tst.Errorf("error must be *flow.InvalidFlowConditionError, got %T", err)
	}

	// forcing the subsonic method into the supersonic regime
	req = alureq(tst, 1.27)
	req.Method = MethodDoublet
	if _, err := Analyze(req); err == nil {
		tst.Errorf("doublet-lattice forced at M=1.27 must fail")
	}

	// unusable sweep configuration
	req = alureq(tst, 1.27)
	req.NumPoints = 1
	if _, err := Analyze(req); err == nil {
		tst.Errorf("single-point sweep must fail")
	}

	// unknown method flag
	req = alureq(tst, 1.27)
	req.Method = "vortex"
	if _, err := Analyze(req); err == nil {
		tst.Errorf("unknown method flag must fail")
	}
}

func Test_flutter07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flutter07. forced methods at subsonic conditions")

	// subsonic auto selects doublet-lattice
	req := alureq(tst, 0.8)
	res, err := Analyze(req)
	if err != nil {
		tst.Errorf("Analyze failed: %v", err)
		return
	}
	if res.Method != "doublet-lattice" {
		tst.Errorf("M=0.8 must use doublet-lattice, got %q", res.Method)
	}

	// forcing piston theory below M=1 is allowed but flagged
	req.Method = MethodPiston
	res, err = Analyze(req)
	if err != nil {
		tst.Errorf("Analyze failed: %v", err)
		return
	}
	found := false
	for _, c := range res.Caveats {
		if c == CaveatSubsonicPiston {
			found = true
		}
	}
	if !found {
		tst.Errorf("forced subsonic piston theory must carry a caveat, got %v", res.Caveats)
	}
}

func Test_flutter08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flutter08. concurrent batch matches serial analyses")

	reqs := []Request{
		alureq(tst, 1.27),
		alureq(tst, 0.8),
		alureq(tst, 1.05),
		alureq(tst, 2.0),
		alureq(tst, 1.5),
	}
	reqs[2].ApplyCorrections = true
	reqs[3].Panel.Thickness = 0 // deliberately invalid

	out := Batch(reqs, 3)
	chk.IntAssert(len(out), len(reqs))
	for i, req := range reqs {
		res, err := Analyze(req)
		if (err == nil) != (out[i].Err == nil) {
			tst.Errorf("request %d: batch and serial disagree on failure", i)
			continue
		}
		if err != nil {
			continue
		}
		chk.Scalar(tst, io.Sf("speed %d", i), 1e-15, out[i].Res.Speed, res.Speed)
		chk.Scalar(tst, io.Sf("freq %d", i), 1e-15, out[i].Res.Frequency, res.Frequency)
	}
}
