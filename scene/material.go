// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image"
	"image/color"
)

// Material describes the surface properties of a [Solid]: its color,
// an optional texture, and overall brightness tuning.
type Material struct {

	// Color is the main color of the surface, used for both ambient and
	// diffuse color; alpha component determines transparency.
	Color color.RGBA

	// Bright is an overall multiplier on the final computed color value,
	// to tune surfaces relative to each other under fixed lighting.
	Bright float32

	// Texture is an optional texture image applied to the surface.
	Texture *Texture
}

// Defaults sets default material parameters: mid gray, full brightness.
func (mt *Material) Defaults() {
	mt.Color = color.RGBA{128, 128, 128, 255}
	mt.Bright = 1
}

// IsTransparent returns true if the material has an alpha below opaque.
func (mt *Material) IsTransparent() bool {
	return mt.Color.A < 255
}

// Texture is a named texture image.
type Texture struct {
	Name  string
	Image image.Image
}
