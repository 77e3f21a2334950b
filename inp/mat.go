// Copyright 2026 The Goflutter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/giderb/goflutter/mat"
)

// PlyData holds one layer of a laminate material entry
type PlyData struct {
	Mat       string  `json:"mat"`       // name of an ortho-elast entry in the same file
	Thickness float64 `json:"thickness"` // ply thickness [m]
	Angle     float64 `json:"angle"`     // fiber orientation [deg]
}

// Material holds material data
type Material struct {

	// input
	Name  string    `json:"name"`  // name of material
	Model string    `json:"model"` // model name; e.g. "iso-elast", "ortho-elast", "laminate"
	Desc  string    `json:"desc"`  // description
	Prms  dbf.Params  `json:"prms"`  // scalar model parameters
	Plies []PlyData `json:"plies"` // layup; laminates only

	// derived
	Mdl mat.Model // pointer to the allocated model
}

// MatDb implements a database of materials read from a .mat JSON file
type MatDb struct {

	// input
	Materials []*Material `json:"materials"`

	// derived
	byName map[string]*Material
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (*MatDb, error) {

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	mdb := new(MatDb)
	if err := json.Unmarshal(b, mdb); err != nil {
		return nil, err
	}
	mdb.byName = make(map[string]*Material)
	for _, m := range mdb.Materials {
		if _, ok := mdb.byName[m.Name]; ok {
			return nil, chk.Err("material %q is defined twice", m.Name)
		}
		mdb.byName[m.Name] = m
	}

	// alloc/init: scalar models first so laminates can reference their plies
	for _, m := range mdb.Materials {
		if m.Model == "laminate" {
			continue
		}
		mdl, err := mat.New(m.Model)
		if err != nil {
			return nil, err
		}
		if err := mdl.Init(m.Prms); err != nil {
			return nil, err
		}
		m.Mdl = mdl
	}
	for _, m := range mdb.Materials {
		if m.Model != "laminate" {
			continue
		}
		if len(m.Plies) == 0 {
			return nil, chk.Err("laminate %q needs a non-empty \"plies\" layup", m.Name)
		}
		lam := new(mat.Laminate)
		for _, p := range m.Plies {
			ref, ok := mdb.byName[p.Mat]
			if !ok || ref.Mdl == nil {
				return nil, chk.Err("laminate %q references unknown ply material %q", m.Name, p.Mat)
			}
			ortho, ok := ref.Mdl.(*mat.Orthotropic)
			if !ok {
				return nil, chk.Err("laminate %q ply material %q must be ortho-elast", m.Name, p.Mat)
			}
			if err := lam.AddPly(ortho, p.Thickness, p.Angle); err != nil {
				return nil, err
			}
		}
		m.Mdl = lam
	}

	// the equivalent-isotropic projection is mandatory for every variant;
	// a missing projection is a construction-time error, never a silent
	// fallback to constants of an unrelated material
	for _, m := range mdb.Materials {
		if _, _, err := m.Mdl.EquivIsotropic(); err != nil {
			return nil, err
		}
	}
	return mdb, nil
}

// Get returns a material model by name
func (o *MatDb) Get(name string) (mat.Model, error) {
	m, ok := o.byName[name]
	if !ok {
		return nil, chk.Err("material %q is not in the database", name)
	}
	return m.Mdl, nil
}
