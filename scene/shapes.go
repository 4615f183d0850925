// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/core/math32"

// NewBox returns a box mesh of the given size, centered at the origin,
// with per-face normals.
func NewBox(name string, sizeX, sizeY, sizeZ float32) *MeshBase {
	ms := &MeshBase{Name: name}
	hx, hy, hz := sizeX/2, sizeY/2, sizeZ/2

	// 6 faces, 4 vertices each; corners ordered counter-clockwise
	// viewed from outside.
	faces := [6][4]math32.Vector3{
		{math32.Vec3(-hx, -hy, hz), math32.Vec3(hx, -hy, hz), math32.Vec3(hx, hy, hz), math32.Vec3(-hx, hy, hz)},     // +z
		{math32.Vec3(hx, -hy, -hz), math32.Vec3(-hx, -hy, -hz), math32.Vec3(-hx, hy, -hz), math32.Vec3(hx, hy, -hz)}, // -z
		{math32.Vec3(hx, -hy, hz), math32.Vec3(hx, -hy, -hz), math32.Vec3(hx, hy, -hz), math32.Vec3(hx, hy, hz)},     // +x
		{math32.Vec3(-hx, -hy, -hz), math32.Vec3(-hx, -hy, hz), math32.Vec3(-hx, hy, hz), math32.Vec3(-hx, hy, -hz)}, // -x
		{math32.Vec3(-hx, hy, hz), math32.Vec3(hx, hy, hz), math32.Vec3(hx, hy, -hz), math32.Vec3(-hx, hy, -hz)},     // +y
		{math32.Vec3(-hx, -hy, -hz), math32.Vec3(hx, -hy, -hz), math32.Vec3(hx, -hy, hz), math32.Vec3(-hx, -hy, hz)}, // -y
	}
	norms := [6]math32.Vector3{
		math32.Vec3(0, 0, 1), math32.Vec3(0, 0, -1), math32.Vec3(1, 0, 0),
		math32.Vec3(-1, 0, 0), math32.Vec3(0, 1, 0), math32.Vec3(0, -1, 0),
	}
	uvs := [4]math32.Vector2{math32.Vec2(0, 1), math32.Vec2(1, 1), math32.Vec2(1, 0), math32.Vec2(0, 0)}

	for fi := range faces {
		vo := uint32(len(ms.Vertex))
		for vi := range 4 {
			ms.Vertex = append(ms.Vertex, faces[fi][vi])
			ms.Normal = append(ms.Normal, norms[fi])
			ms.TexCoord = append(ms.TexCoord, uvs[vi])
		}
		ms.AddQuad(vo, vo+1, vo+2, vo+3)
	}
	ms.UpdateBBox()
	return ms
}

// NewSphere returns a UV sphere mesh of the given radius, centered at
// the origin, with the given number of longitude and latitude segments
// (minimum 3 and 2).
func NewSphere(name string, radius float32, segs int) *MeshBase {
	ms := &MeshBase{Name: name}
	wsegs := max(segs, 3)
	hsegs := max(segs/2, 2)

	for h := 0; h <= hsegs; h++ {
		v := float32(h) / float32(hsegs)
		theta := v * math32.Pi
		for w := 0; w <= wsegs; w++ {
			u := float32(w) / float32(wsegs)
			phi := u * 2 * math32.Pi
			nrm := math32.Vec3(
				math32.Sin(theta)*math32.Cos(phi),
				math32.Cos(theta),
				math32.Sin(theta)*math32.Sin(phi),
			)
			ms.Vertex = append(ms.Vertex, nrm.MulScalar(radius))
			ms.Normal = append(ms.Normal, nrm)
			ms.TexCoord = append(ms.TexCoord, math32.Vec2(u, v))
		}
	}
	stride := uint32(wsegs + 1)
	for h := 0; h < hsegs; h++ {
		for w := 0; w < wsegs; w++ {
			a := uint32(h)*stride + uint32(w)
			b := a + 1
			c := a + stride
			d := c + 1
			if h > 0 {
				ms.AddTriangle(a, c, b)
			}
			if h < hsegs-1 {
				ms.AddTriangle(b, c, d)
			}
		}
	}
	ms.UpdateBBox()
	return ms
}

// NewQuad returns a flat billboard quad of the given width and height,
// centered at the origin, facing +z.
func NewQuad(name string, width, height float32) *MeshBase {
	ms := &MeshBase{Name: name}
	hw, hh := width/2, height/2
	ms.Vertex = []math32.Vector3{
		math32.Vec3(-hw, -hh, 0), math32.Vec3(hw, -hh, 0),
		math32.Vec3(hw, hh, 0), math32.Vec3(-hw, hh, 0),
	}
	nrm := math32.Vec3(0, 0, 1)
	ms.Normal = []math32.Vector3{nrm, nrm, nrm, nrm}
	ms.TexCoord = []math32.Vector2{math32.Vec2(0, 1), math32.Vec2(1, 1), math32.Vec2(1, 0), math32.Vec2(0, 0)}
	ms.AddQuad(0, 1, 2, 3)
	ms.UpdateBBox()
	return ms
}
