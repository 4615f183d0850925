// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"image"
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/clone"
)

// ErrImageProcessing indicates a failure in client-side image
// processing, such as background removal on an empty image.
var ErrImageProcessing = errors.New("assets: image processing failed")

// RemoveBackground chroma-keys the background out of an image, making
// pixels within tolerance of the key color transparent. A nil key
// samples the image corners and uses their average as the background
// color. Tolerance is a normalized color distance in [0, 1]; 0.15 is a
// reasonable default. The mask edge is blurred slightly to soften the
// cutout.
func RemoveBackground(src image.Image, key color.Color, tolerance float32) (*image.RGBA, error) {
	if src == nil {
		return nil, ErrImageProcessing
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, ErrImageProcessing
	}
	img := clone.AsRGBA(src)
	if key == nil {
		key = cornerColor(img)
	}
	kr, kg, kb, _ := key.RGBA()

	// build a hard mask, then soften its edges
	mask := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if colorDistance(r, g, bl, kr, kg, kb) <= tolerance {
				mask.SetGray(x, y, color.Gray{0})
			} else {
				mask.SetGray(x, y, color.Gray{255})
			}
		}
	}
	soft := blur.Gaussian(mask, 1.5)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := soft.RGBAAt(x, y).R
			px := img.RGBAAt(x, y)
			px.R = uint8(uint32(px.R) * uint32(a) / 255)
			px.G = uint8(uint32(px.G) * uint32(a) / 255)
			px.B = uint8(uint32(px.B) * uint32(a) / 255)
			px.A = a
			img.SetRGBA(x, y, px)
		}
	}
	return img, nil
}

// cornerColor averages the four corner pixels, the usual location of
// the backdrop in a selfie or product shot.
func cornerColor(img *image.RGBA) color.Color {
	b := img.Bounds()
	pts := []image.Point{
		{b.Min.X, b.Min.Y},
		{b.Max.X - 1, b.Min.Y},
		{b.Min.X, b.Max.Y - 1},
		{b.Max.X - 1, b.Max.Y - 1},
	}
	var r, g, bl uint32
	for _, p := range pts {
		pr, pg, pb, _ := img.At(p.X, p.Y).RGBA()
		r += pr
		g += pg
		bl += pb
	}
	n := uint32(len(pts))
	return color.RGBA64{R: uint16(r / n), G: uint16(g / n), B: uint16(bl / n), A: 0xffff}
}

// colorDistance is the normalized euclidean RGB distance between two
// colors given as 16-bit premultiplied channel values.
func colorDistance(r1, g1, b1, r2, g2, b2 uint32) float32 {
	dr := float32(r1) - float32(r2)
	dg := float32(g1) - float32(g2)
	db := float32(b1) - float32(b2)
	return math32.Sqrt(dr*dr+dg*dg+db*db) / (0xffff * math32.Sqrt(3))
}
