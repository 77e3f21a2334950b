// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/giderb/goflutter/advisor"
	"github.com/giderb/goflutter/flutter"
	"github.com/giderb/goflutter/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "panel", ".sim", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nGoflutter -- panel flutter analysis\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// read analysis case
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read analysis case:\n%v", err)
	}
	if verbose && sim.Desc != "" {
		io.Pf("%s\n\n", sim.Desc)
	}

	// run flutter analysis
	req, err := sim.Request()
	if err != nil {
		chk.Panic("cannot build analysis request:\n%v", err)
	}
	res, err := flutter.Analyze(req)
	if err != nil {
		chk.Panic("flutter analysis failed:\n%v", err)
	}
	io.Pf("%v", res.Report())

	// thickness recommendation
	if sim.Advisor != nil {
		rec, err := advisor.Recommend(req.Panel.Thickness, res.Speed, sim.Advisor.TargetSpeed)
		if err != nil {
			chk.Panic("thickness recommendation failed:\n%v", err)
		}
		io.Pf("\ntarget speed       = %.1f m/s (ratio = %.2f)\n", sim.Advisor.TargetSpeed, rec.SpeedRatio)
		io.Pf("required thickness = %.3f mm\n", rec.Base*1e3)
		io.Pf("with safety margin = %.3f mm\n", rec.Margined*1e3)
		io.Pf("reliability        = %s\n", rec.Reliability)
		if rec.Warning != "" {
			io.Pforan("WARNING: %s\n", rec.Warning)
		}
		for _, s := range rec.Suggestions {
			io.Pforan("  consider: %s\n", s)
		}
	}
}
