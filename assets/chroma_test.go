// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// greenScreen builds an image with a green backdrop and a red square
// in the middle.
func greenScreen(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	green := color.RGBA{0, 255, 0, 255}
	red := color.RGBA{200, 30, 30, 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, green)
		}
	}
	q := size / 4
	for y := q; y < 3*q; y++ {
		for x := q; x < 3*q; x++ {
			img.SetRGBA(x, y, red)
		}
	}
	return img
}

func TestRemoveBackgroundExplicitKey(t *testing.T) {
	src := greenScreen(64)
	out, err := RemoveBackground(src, color.RGBA{0, 255, 0, 255}, 0.15)
	require.NoError(t, err)

	// backdrop went transparent, subject kept opaque
	assert.Equal(t, uint8(0), out.RGBAAt(2, 2).A)
	assert.Equal(t, uint8(255), out.RGBAAt(32, 32).A)
	// subject color survives
	assert.Greater(t, out.RGBAAt(32, 32).R, uint8(150))
}

func TestRemoveBackgroundCornerSampling(t *testing.T) {
	src := greenScreen(64)
	out, err := RemoveBackground(src, nil, 0.15)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), out.RGBAAt(2, 2).A)
	assert.Equal(t, uint8(255), out.RGBAAt(32, 32).A)
}

func TestRemoveBackgroundErrors(t *testing.T) {
	_, err := RemoveBackground(nil, nil, 0.1)
	assert.ErrorIs(t, err, ErrImageProcessing)

	_, err = RemoveBackground(image.NewRGBA(image.Rect(0, 0, 0, 0)), nil, 0.1)
	assert.ErrorIs(t, err, ErrImageProcessing)
}
