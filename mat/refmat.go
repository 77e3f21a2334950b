// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import "github.com/cpmech/gosl/chk"

// Reference returns a model of some reference aerospace materials
//
//   typ : "aluminum-7075"   Aluminum 7075-T6
//         "aluminum-2024"   Aluminum 2024-T3
//         "steel-4130"      Steel AISI 4130
//         "titanium-6al4v"  Titanium Ti-6Al-4V
//         "carbon-epoxy"    Carbon/epoxy unidirectional ply (AS4/3501-6)
func Reference(typ string) (Model, error) {
	switch typ {
	case "aluminum-7075":
		return &Isotropic{E: 71.7e9, Nu: 0.33, Rho: 2810}, nil
	case "aluminum-2024":
		return &Isotropic{E: 73.1e9, Nu: 0.33, Rho: 2780}, nil
	case "steel-4130":
		return &Isotropic{E: 205.0e9, Nu: 0.29, Rho: 7850}, nil
	case "titanium-6al4v":
		return &Isotropic{E: 113.8e9, Nu: 0.342, Rho: 4430}, nil
	case "carbon-epoxy":
		return &Orthotropic{E1: 138.0e9, E2: 8.96e9, G12: 7.1e9, Nu12: 0.30, Rho: 1600}, nil
	}
	return nil, chk.Err("reference material %q is unavailable", typ)
}
