// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package advisor derives recommended panel thickness changes from a target
// flutter speed via a validated linear-scaling law with an explicit
// validity envelope
package advisor

import "github.com/cpmech/gosl/io"

// validity envelope of the linear thickness/speed scaling law and the
// safety margins applied inside and outside of it
const (
	RatioMin       = 0.67 // lower bound of the reliable band (−50 % change)
	RatioMax       = 1.5  // upper bound of the reliable band (+50 % change)
	MarginReliable = 1.10
	MarginOutside  = 1.25
)

// reliability classifications
const (
	Reliable   = "reliable"
	Unreliable = "unreliable"
)

// InvalidInputError indicates degenerate advisor inputs. It is recoverable
// by the caller.
type InvalidInputError struct {
	Msg string
}

// Error returns a human-readable message
func (e *InvalidInputError) Error() string {
	return io.Sf("invalid thickness-advisor input: %s", e.Msg)
}

// Recommendation holds a thickness recommendation. Outside the validity
// envelope the linear law ignores second-order effects (buckling,
// manufacturability, mass penalty) and the recommendation is flagged
// Unreliable with alternative designs to consider instead.
type Recommendation struct {
	SpeedRatio  float64  // target / current flutter speed
	Base        float64  // required thickness from linear scaling [m]
	Margined    float64  // base with safety margin applied [m]
	Reliability string   // Reliable or Unreliable
	Suggestions []string // alternatives; populated only when Unreliable
	Warning     string   // human-readable note; empty when Reliable
}

// fixed advisory alternatives for out-of-envelope targets
var alternatives = []string{
	"add structural stiffening (ribs or stringers) instead of thickness alone",
	"change layup or material to raise bending stiffness at equal mass",
	"reduce unsupported panel dimensions",
	"consider sandwich construction",
}

// Recommend derives a thickness recommendation from the current flutter
// speed and a target speed. Linear scaling of flutter speed with thickness
// holds only locally; ratios outside [0.67, 1.5] are flagged Unreliable
// rather than presented as actionable targets.
func Recommend(currentThickness, currentSpeed, targetSpeed float64) (*Recommendation, error) {
	if currentSpeed <= 0 {
		return nil, &InvalidInputError{Msg: io.Sf("current speed must be positive. v=%g is invalid", currentSpeed)}
	}
	if currentThickness <= 0 {
		return nil, &InvalidInputError{Msg: io.Sf("current thickness must be positive. h=%g is invalid", currentThickness)}
	}
	if targetSpeed <= 0 {
		return nil, &InvalidInputError{Msg: io.Sf("target speed must be positive. v=%g is invalid", targetSpeed)}
	}
	r := targetSpeed / currentSpeed
	rec := &Recommendation{
		SpeedRatio: r,
		Base:       currentThickness * r,
	}
	if r >= RatioMin && r <= RatioMax {
		rec.Margined = rec.Base * MarginReliable
		rec.Reliability = Reliable
		return rec, nil
	}
	rec.Margined = rec.Base * MarginOutside
	rec.Reliability = Unreliable
	rec.Suggestions = append(rec.Suggestions, alternatives...)
	rec.Warning = io.Sf("speed ratio %.2f is outside the validated band [%.2f, %.2f]; linear thickness scaling is unreliable here", r, RatioMin, RatioMax)
	return rec, nil
}
