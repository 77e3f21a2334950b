// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/giderb/goflutter/aero"
)

func Test_lamcr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lamcr01. critical dynamic-pressure parameter")

	chk.Scalar(tst, "lamcr", 1e-3, LamCr, 273.963)

	// λ at the closed-form speed recovers λcr
	D, a, rho, mach := 1209.36, 0.455, 1.225, 1.27
	v, err := FlutterSpeed(D, a, rho, mach, aero.PistonTheory, aero.DefaultBetaMin)
	if err != nil {
		tst.Errorf("FlutterSpeed failed: %v", err)
		return
	}
	beta := math.Sqrt(mach*mach - 1.0)
	lam := DynPressParam(0.5*rho*v*v, a, beta, D)
	chk.Scalar(tst, "lambda(Vf)", 1e-8, lam, LamCr)
}

func Test_speed01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("speed01. closed-form speed of the reference aluminum panel")

	// 455 x 175 x 5.65 mm aluminum 7075 panel at sea level, M = 1.27:
	// D = 71.7e9·h³/(12·(1−0.33²)) ≈ 1209.4 N·m
	D := 71.7e9 * math.Pow(0.00565, 3) / (12.0 * (1.0 - 0.33*0.33))
	chk.Scalar(tst, "D", 1e-2, D, 1209.36)

	v, err := FlutterSpeed(D, 0.455, 1.224978, 1.27, aero.PistonTheory, aero.DefaultBetaMin)
	if err != nil {
		tst.Errorf("FlutterSpeed failed: %v", err)
		return
	}
	io.Pforan("Vf = %g m/s\n", v)
	chk.Scalar(tst, "Vf", 2.0, v, 1499.3)
	if v < 1100 || v > 1500 {
		tst.Errorf("closed-form speed %g m/s is outside the accepted band [1100, 1500]", v)
	}

	// thicker panels flutter faster: Vf ~ sqrt(D) ~ h^(3/2)
	v2, err := FlutterSpeed(8.0*D, 0.455, 1.224978, 1.27, aero.PistonTheory, aero.DefaultBetaMin)
	if err != nil {
		tst.Errorf("FlutterSpeed failed: %v", err)
		return
	}
	chk.Scalar(tst, "Vf(8D)", 1e-8, v2, v*math.Sqrt(8.0))
}

func Test_speed02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("speed02. invalid closed-form inputs")

	if _, err := FlutterSpeed(-1, 0.455, 1.225, 1.27, aero.PistonTheory, aero.DefaultBetaMin); err == nil {
		tst.Errorf("negative rigidity must fail")
	}
	if _, err := FlutterSpeed(1209.36, 0.455, 1.225, 1.27, aero.DoubletLattice, aero.DefaultBetaMin); err == nil {
		tst.Errorf("doublet-lattice closed form at M=1.27 must fail")
	}
}
