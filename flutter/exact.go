// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flutter

import (
	"github.com/cpmech/gosl/io"

	"github.com/giderb/goflutter/mat"
)

// UnsupportedMaterialError indicates a certified-grade analysis demanded on
// a non-isotropic material with no external exact solver configured. It is
// recoverable by the caller.
type UnsupportedMaterialError struct {
	Msg string
}

// Error returns a human-readable message
func (e *UnsupportedMaterialError) Error() string {
	return io.Sf("unsupported material for exact analysis: %s", e.Msg)
}

// ExactSolver is implemented by external finite-element integrations able to
// run certified-grade flutter analyses of non-isotropic panels. This engine
// never generates or parses the external solver's file formats itself.
type ExactSolver interface {
	Analyze(req Request) (*Result, error)
}

// SupportsExactAnalysis tells whether the internal engine can analyze the
// material without the equivalent-isotropic approximation. It is false for
// any non-isotropic material: such requests should be routed to an external
// exact solver.
func SupportsExactAnalysis(m mat.Model) bool {
	return m != nil && m.IsIsotropic()
}

// AnalyzeExact runs a certified-grade analysis: isotropic materials go
// through the internal engine, non-isotropic ones through the external
// solver. With no external solver configured a non-isotropic material is a
// mandatory block, not a silent approximation.
func AnalyzeExact(req Request, external ExactSolver) (*Result, error) {
	if SupportsExactAnalysis(req.Material) {
		return Analyze(req)
	}
	if external != nil {
		return external.Analyze(req)
	}
	return nil, &UnsupportedMaterialError{
		Msg: "material is non-isotropic and no external exact solver is configured",
	}
}
