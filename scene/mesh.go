// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/core/math32"

// Mesh is an indexed triangle mesh used for rendering a [Solid].
// Only indexed triangle meshes are supported.
type Mesh interface {

	// AsMeshBase returns the [MeshBase] for this mesh, which provides
	// the core mesh data.
	AsMeshBase() *MeshBase
}

// MeshBase provides the core implementation of the [Mesh] interface:
// triangle geometry with per-vertex normals and texture coordinates.
type MeshBase struct {

	// Name is the name of the mesh.
	Name string

	// Vertex are the vertex positions, in mesh coordinates.
	Vertex []math32.Vector3

	// Normal are the per-vertex normals, same length as Vertex.
	Normal []math32.Vector3

	// TexCoord are the per-vertex texture coordinates, same length
	// as Vertex, optional.
	TexCoord []math32.Vector2

	// Index are triangle indexes into Vertex, three per triangle.
	Index []uint32

	// BBox is the bounding box of the vertex positions, computed
	// by [MeshBase.UpdateBBox].
	BBox math32.Box3
}

func (ms *MeshBase) AsMeshBase() *MeshBase {
	return ms
}

// NumTriangles returns the number of triangles in the mesh.
func (ms *MeshBase) NumTriangles() int {
	return len(ms.Index) / 3
}

// UpdateBBox (re)computes the bounding box from the vertex positions.
func (ms *MeshBase) UpdateBBox() {
	ms.BBox.SetEmpty()
	ms.BBox.ExpandByPoints(ms.Vertex)
}

// AddTriangle appends one triangle over existing vertex indexes.
func (ms *MeshBase) AddTriangle(a, b, c uint32) {
	ms.Index = append(ms.Index, a, b, c)
}

// AddQuad appends two triangles over existing vertex indexes,
// in counter-clockwise order: a, b, c and a, c, d.
func (ms *MeshBase) AddQuad(a, b, c, d uint32) {
	ms.Index = append(ms.Index, a, b, c, a, c, d)
}

var _ Mesh = (*MeshBase)(nil)
