// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"image"

	"cogentcore.org/core/math32"
)

// vert is one projected vertex: screen x, y, view-space depth z
// (larger is closer), and texture coordinates.
type vert struct {
	X, Y, Z float32
	U, V    float32
}

// rasterTriangle rasterizes a flat-shaded triangle into the frame
// buffer with a z-buffer test. This is the hot path; the inner loop
// does not allocate. shade is the precomputed per-face light factor,
// tex is nil for untextured faces.
func rasterTriangle(fb *frameBuffer, v0, v1, v2 vert, cr, cg, cb, ca uint8, shade float32, tex *image.RGBA) {
	minX := int(math32.Min(math32.Min(v0.X, v1.X), v2.X))
	maxX := int(math32.Max(math32.Max(v0.X, v1.X), v2.X)) + 1
	minY := int(math32.Min(math32.Min(v0.Y, v1.Y), v2.Y))
	maxY := int(math32.Max(math32.Max(v0.Y, v1.Y), v2.Y)) + 1
	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	det := (v1.Y-v2.Y)*(v0.X-v2.X) + (v2.X-v1.X)*(v0.Y-v2.Y)
	if det > -1e-6 && det < 1e-6 {
		return
	}
	invDet := 1 / det
	dy12 := v1.Y - v2.Y
	dx21 := v2.X - v1.X
	dy20 := v2.Y - v0.Y
	dx02 := v0.X - v2.X

	for sy := minY; sy <= maxY; sy++ {
		dsy := float32(sy) - v2.Y
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float32(sx) - v2.X
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*v0.Z + w1*v1.Z + w2*v2.Z
			zi := rowOff + sx
			if z <= fb.ZBuf[zi] {
				continue
			}

			pr, pg, pb, pa := cr, cg, cb, ca
			if tex != nil {
				u := w0*v0.U + w1*v1.U + w2*v2.U
				v := w0*v0.V + w1*v1.V + w2*v2.V
				pr, pg, pb, pa = sampleTexture(tex, u, v)
			}
			if pa < 8 {
				continue // transparent texel, leave depth open
			}
			fb.ZBuf[zi] = z

			pi := zi * 4
			fb.Color[pi] = mulShade(pr, shade)
			fb.Color[pi+1] = mulShade(pg, shade)
			fb.Color[pi+2] = mulShade(pb, shade)
			fb.Color[pi+3] = pa
		}
	}
}

// sampleTexture does nearest sampling with uv clamped to [0,1].
// v follows image convention: 0 at the top row, matching the mesh
// generators.
func sampleTexture(tex *image.RGBA, u, v float32) (r, g, b, a uint8) {
	b2 := tex.Bounds()
	u = math32.Min(math32.Max(u, 0), 1)
	v = math32.Min(math32.Max(v, 0), 1)
	x := b2.Min.X + int(u*float32(b2.Dx()-1))
	y := b2.Min.Y + int(v*float32(b2.Dy()-1))
	c := tex.RGBAAt(x, y)
	return c.R, c.G, c.B, c.A
}

func mulShade(c uint8, shade float32) uint8 {
	v := float32(c) * shade
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
