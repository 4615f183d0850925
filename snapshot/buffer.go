// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"image"

	"cogentcore.org/core/math32"
)

// frameBuffer holds the rendering target as flat slices for cache
// locality: interleaved RGBA color and a per-pixel depth buffer
// initialized to -inf (larger z is closer to the viewer).
type frameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float32 // depth per pixel, len = W*H
}

func newFrameBuffer(w, h int) *frameBuffer {
	n := w * h
	zbuf := make([]float32, n)
	for i := range zbuf {
		zbuf[i] = float32(math32.Inf(-1))
	}
	return &frameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   zbuf,
	}
}

// Fill sets every pixel to the given color, leaving depth untouched.
func (fb *frameBuffer) Fill(r, g, b, a uint8) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = r
		fb.Color[i+1] = g
		fb.Color[i+2] = b
		fb.Color[i+3] = a
	}
}

// Image copies the color buffer into an image.
func (fb *frameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
