// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim) and (.mat) JSON
// files and maps them onto the core analysis value objects
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/giderb/goflutter/flow"
	"github.com/giderb/goflutter/flutter"
	"github.com/giderb/goflutter/panel"
)

// PanelData holds panel geometry input
type PanelData struct {
	Length    float64 `json:"length"`    // streamwise dimension [m]
	Width     float64 `json:"width"`     // spanwise dimension [m]
	Thickness float64 `json:"thickness"` // thickness [m]
	BC        string  `json:"bc"`        // "simply-supported" or "clamped"
}

// FlowData holds flow condition input
type FlowData struct {
	Mach     float64 `json:"mach"`     // Mach number
	Altitude float64 `json:"altitude"` // geopotential altitude [m]
}

// SolverData holds flutter solver flags. ApplyCorrections is a pointer on
// purpose: the field is mandatory in the file and its absence is an input
// error, never an implicit default.
type SolverData struct {
	Method           string  `json:"method"`            // "auto", "doublet" or "piston"
	ApplyCorrections *bool   `json:"apply_corrections"` // REQUIRED
	Validate         bool    `json:"validate"`          // input-range assertions
	VMin             float64 `json:"vmin"`              // sweep lower bound [m/s]
	VMax             float64 `json:"vmax"`              // sweep upper bound [m/s]
	NumPoints        int     `json:"npoints"`           // sweep samples (> 1)
}

// AdvisorData holds the optional thickness-advisor input
type AdvisorData struct {
	TargetSpeed float64 `json:"target_speed"` // target flutter speed [m/s]
}

// Sim holds one analysis case read from a .sim JSON file
type Sim struct {

	// input
	Desc     string       `json:"desc"`     // description of the case
	MatFile  string       `json:"matfile"`  // materials file path, relative to the .sim file
	Material string       `json:"material"` // material name within MatFile
	Panel    PanelData    `json:"panel"`    // panel geometry
	Flow     FlowData     `json:"flow"`     // flow condition
	Solver   SolverData   `json:"solver"`   // solver flags
	Advisor  *AdvisorData `json:"advisor"`  // optional advisor block

	// derived
	Dir string // directory of the .sim file
	Mdb *MatDb // materials database
}

// ReadSim reads one analysis case from a .sim JSON file
func ReadSim(simfilepath string) (*Sim, error) {

	// read and decode
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, err
	}
	sim := new(Sim)
	if err := json.Unmarshal(b, sim); err != nil {
		return nil, err
	}
	sim.Dir = filepath.Dir(simfilepath)

	// flags
	if sim.Solver.ApplyCorrections == nil {
		return nil, chk.Err("%q is missing solver.apply_corrections; the flag must be set explicitly at every call site", simfilepath)
	}
	switch sim.Solver.Method {
	case flutter.MethodAuto, flutter.MethodDoublet, flutter.MethodPiston:
	default:
		return nil, chk.Err("solver.method %q is unavailable; options are %q, %q and %q",
			sim.Solver.Method, flutter.MethodAuto, flutter.MethodDoublet, flutter.MethodPiston)
	}

	// materials
	sim.Mdb, err = ReadMat(sim.Dir, sim.MatFile)
	if err != nil {
		return nil, err
	}
	if _, err := sim.Mdb.Get(sim.Material); err != nil {
		return nil, err
	}
	return sim, nil
}

// Request maps the case onto a flutter analysis request
func (o *Sim) Request() (flutter.Request, error) {
	var req flutter.Request
	cnd, err := flow.NewCondition(o.Flow.Mach, o.Flow.Altitude)
	if err != nil {
		return req, err
	}
	mdl, err := o.Mdb.Get(o.Material)
	if err != nil {
		return req, err
	}
	req = flutter.Request{
		Panel: panel.Panel{
			Length:    o.Panel.Length,
			Width:     o.Panel.Width,
			Thickness: o.Panel.Thickness,
			BC:        o.Panel.BC,
		},
		Material:         mdl,
		Flow:             cnd,
		Method:           o.Solver.Method,
		ApplyCorrections: *o.Solver.ApplyCorrections,
		Validate:         o.Solver.Validate,
		VMin:             o.Solver.VMin,
		VMax:             o.Solver.VMax,
		NumPoints:        o.Solver.NumPoints,
	}
	if err := req.Panel.Validate(); err != nil {
		return req, err
	}
	return req, nil
}
