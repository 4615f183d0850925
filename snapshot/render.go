// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package snapshot renders a scene to an image on the CPU, for try-on
// result sharing and for headless batch use. It is a small orthographic
// flat-shaded rasterizer with a z-buffer; it reads the scene's world
// matrices and bounds, so call [scene.Scene.UpdateWorld] (or
// [viewer.Session.Update]) first.
package snapshot

import (
	"image"

	"cogentcore.org/core/math32"
	"golang.org/x/image/draw"

	"github.com/fitroom/fitroom/scene"
)

// Renderer renders front-view orthographic snapshots of a scene.
type Renderer struct {

	// Size is the output image size in pixels (square).
	Size int

	// Supersample is the oversampling factor; the scene renders at
	// Size*Supersample and is filtered down. 0 means 2.
	Supersample int

	// Light is the directional light direction. Zero means the default
	// over-the-shoulder key light.
	Light math32.Vector3

	// Ambient is the minimum light factor. 0 means 0.35.
	Ambient float32

	// Margin is the fraction of the frame left empty around the scene
	// bounds. 0 means 0.05.
	Margin float32
}

// NewRenderer returns a renderer with the given output size and
// default lighting.
func NewRenderer(size int) *Renderer {
	return &Renderer{Size: size}
}

func (rd *Renderer) defaults() (ss int, light math32.Vector3, ambient, margin float32) {
	ss = rd.Supersample
	if ss <= 0 {
		ss = 2
	}
	light = rd.Light
	if light == (math32.Vector3{}) {
		light = math32.Vec3(-0.4, 0.6, 1)
	}
	light = light.Normal()
	ambient = rd.Ambient
	if ambient == 0 {
		ambient = 0.35
	}
	margin = rd.Margin
	if margin == 0 {
		margin = 0.05
	}
	return
}

// Render renders the scene front-on (+z toward the viewer) into a new
// image of the configured size.
func (rd *Renderer) Render(sc *scene.Scene) *image.RGBA {
	ss, light, ambient, margin := rd.defaults()
	size := rd.Size * ss
	fb := newFrameBuffer(size, size)
	bg := sc.Background
	fb.Fill(bg.R, bg.G, bg.B, bg.A)

	bb := sc.WorldBounds()
	if bb.IsEmpty() {
		return downsample(fb.Image(), rd.Size)
	}
	bsz := bb.Size()
	ext := math32.Max(bsz.X, bsz.Y)
	if ext == 0 {
		ext = 1
	}
	scale := float32(size) * (1 - 2*margin) / ext
	ctr := bb.Center()
	half := float32(size) / 2

	// world point to screen: x right, y up, z toward the viewer
	project := func(p math32.Vector3) vert {
		return vert{
			X: half + (p.X-ctr.X)*scale,
			Y: half - (p.Y-ctr.Y)*scale,
			Z: p.Z,
		}
	}

	sc.Solids(func(sld *scene.Solid) {
		rd.renderSolid(fb, sld, project, light, ambient)
	})
	return downsample(fb.Image(), rd.Size)
}

func (rd *Renderer) renderSolid(fb *frameBuffer, sld *scene.Solid, project func(p math32.Vector3) vert, light math32.Vector3, ambient float32) {
	if sld.Mesh == nil {
		return
	}
	mb := sld.Mesh.AsMeshBase()
	mat := &sld.Pose.WorldMatrix

	var tex *image.RGBA
	if sld.Material.Texture != nil && sld.Material.Texture.Image != nil {
		tex = asRGBA(sld.Material.Texture.Image)
	}
	cr, cg, cb, ca := sld.Material.Color.R, sld.Material.Color.G, sld.Material.Color.B, sld.Material.Color.A

	nt := len(mb.Index) / 3
	for ti := 0; ti < nt; ti++ {
		i0, i1, i2 := mb.Index[ti*3], mb.Index[ti*3+1], mb.Index[ti*3+2]
		p0 := mb.Vertex[i0].MulMatrix4AsVector4(mat, 1)
		p1 := mb.Vertex[i1].MulMatrix4AsVector4(mat, 1)
		p2 := mb.Vertex[i2].MulMatrix4AsVector4(mat, 1)

		// per-face normal in world space, for flat shading
		norm := p1.Sub(p0).Cross(p2.Sub(p0))
		if norm == (math32.Vector3{}) {
			continue
		}
		norm = norm.Normal()
		shade := ambient + (1-ambient)*math32.Abs(norm.Dot(light))*sld.Material.Bright

		v0, v1, v2 := project(p0), project(p1), project(p2)
		if tex != nil && len(mb.TexCoord) > int(max(i0, max(i1, i2))) {
			v0.U, v0.V = mb.TexCoord[i0].X, mb.TexCoord[i0].Y
			v1.U, v1.V = mb.TexCoord[i1].X, mb.TexCoord[i1].Y
			v2.U, v2.V = mb.TexCoord[i2].X, mb.TexCoord[i2].Y
			rasterTriangle(fb, v0, v1, v2, cr, cg, cb, ca, shade, tex)
		} else {
			rasterTriangle(fb, v0, v1, v2, cr, cg, cb, ca, shade, nil)
		}
	}
}

// downsample filters the supersampled render down to the target size.
func downsample(img *image.RGBA, target int) *image.RGBA {
	if img.Bounds().Dx() <= target {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, target, target))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

func asRGBA(img image.Image) *image.RGBA {
	if ri, ok := img.(*image.RGBA); ok {
		return ri
	}
	b := img.Bounds()
	ri := image.NewRGBA(b)
	draw.Draw(ri, b, img, b.Min, draw.Src)
	return ri
}
