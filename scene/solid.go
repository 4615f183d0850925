// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/core/tree"
)

// NewSolid returns a new [Solid] under the given optional parent.
func NewSolid(parent ...tree.Node) *Solid {
	return tree.New[Solid](parent...)
}

// Solid represents an individual renderable element. It has its own
// unique spatial transform and material properties, and points to a
// mesh structure defining its shape.
type Solid struct {
	NodeBase

	// Mesh is the shape of this solid. Mesh data is immutable once
	// built, so solids may share a mesh.
	Mesh Mesh `set:"-" copier:"-"`

	// Material contains the material properties of the surface.
	Material Material
}

func (sld *Solid) Init() {
	sld.NodeBase.Init()
	sld.Material.Defaults()
}

func (sld *Solid) IsSolid() bool {
	return true
}

func (sld *Solid) AsSolid() *Solid {
	return sld
}

// SetMesh sets the solid's mesh and updates the local bounding box.
func (sld *Solid) SetMesh(ms Mesh) *Solid {
	sld.Mesh = ms
	sld.UpdateMeshBBox()
	return sld
}

// SetColor sets the [Material.Color].
func (sld *Solid) SetColor(clr color.RGBA) *Solid {
	sld.Material.Color = clr
	return sld
}

// SetTexture sets the material texture.
func (sld *Solid) SetTexture(tex *Texture) *Solid {
	sld.Material.Texture = tex
	return sld
}

func (sld *Solid) UpdateMeshBBox() {
	if sld.Mesh == nil {
		sld.MeshBBox.SetEmpty()
		return
	}
	sld.MeshBBox = sld.Mesh.AsMeshBase().BBox
}

// CopyFieldsFrom manually copies the mesh reference, which the automatic
// deep copy cannot handle as an interface value. Mesh data is immutable,
// so sharing it between the source and the copy is safe.
func (sld *Solid) CopyFieldsFrom(from tree.Node) {
	sld.NodeBase.CopyFieldsFrom(from)
	fs, ok := from.(*Solid)
	if !ok {
		return
	}
	sld.Mesh = fs.Mesh
	sld.Material = fs.Material
	sld.Pose.CopyFrom(&fs.Pose)
	sld.UpdateMeshBBox()
}

var _ Node = (*Solid)(nil)
