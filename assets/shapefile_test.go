// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitroom/fitroom/scene"
)

const testShape = `
[[part]]
name = "torso"
shape = "box"
size = [0.4, 0.6, 0.2]
pos = [0, 1.2, 0]
color = "#aa2020"

[[part]]
name = "head"
shape = "sphere"
radius = 0.12
pos = [0, 1.6, 0]
`

func TestShapeDecoderLoad(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "demo.shape")
	require.NoError(t, os.WriteFile(fname, []byte(testShape), 0o644))

	ld := NewURLLoader()
	gp, err := ld.Load(context.Background(), "file://"+fname)
	require.NoError(t, err)
	assert.Equal(t, "demo", gp.Name)
	require.Equal(t, 2, len(gp.Children))

	torso := gp.Children[0].(*scene.Solid)
	assert.Equal(t, "torso", torso.Name)
	assert.Equal(t, color.RGBA{0xaa, 0x20, 0x20, 0xff}, torso.Material.Color)
	assert.InDelta(t, 1.2, torso.Pose.Pos.Y, 1e-6)

	gp.UpdateMeshBBox()
	bb := gp.BoundsInParent()
	require.False(t, bb.IsEmpty())
	assert.InDelta(t, 1.72, bb.Max.Y, 1e-4)
}

func TestShapeDecoderErrors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.shape")
	require.NoError(t, os.WriteFile(empty, []byte(""), 0o644))
	ld := NewURLLoader()
	_, err := ld.Load(context.Background(), empty)
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.shape")
	require.NoError(t, os.WriteFile(bad, []byte(`[[part]]`+"\n"+`shape = "cone"`), 0o644))
	_, err = ld.Load(context.Background(), bad)
	assert.Error(t, err)
}

func TestHexColor(t *testing.T) {
	c, err := HexColor("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xff, 0x80, 0, 0xff}, c)

	c, err = HexColor("#f80")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xff, 0x88, 0, 0xff}, c)

	c, err = HexColor("#11223344")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x44), c.A)

	_, err = HexColor("red")
	assert.Error(t, err)
}
