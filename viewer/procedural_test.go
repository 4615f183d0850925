// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitroom/fitroom/scene"
)

func TestMannequinShape(t *testing.T) {
	gp := Mannequin()
	updateSubtreeBounds(gp)
	bb := gp.BoundsInParent()
	require.False(t, bb.IsEmpty())
	// roughly human proportions
	assert.InDelta(t, 1.7, bb.Size().Y, 0.1)
	assert.Less(t, bb.Size().X, bb.Size().Y)
}

func TestCloneWithMaterial(t *testing.T) {
	body := Mannequin()
	tint := color.RGBA{180, 40, 40, 255}
	cl := CloneWithMaterial(body, "overlay", tint, 1.02)

	// every solid in the clone wears the replacement material
	n := 0
	eachSolid(cl, func(sld *scene.Solid) {
		n++
		assert.Equal(t, tint, sld.Material.Color)
	})
	assert.Greater(t, n, 0)

	// the source body is untouched
	eachSolid(body, func(sld *scene.Solid) {
		assert.Equal(t, mannequinColor, sld.Material.Color)
	})
}

func TestCloneInflateKeepsCenter(t *testing.T) {
	body := Mannequin()
	updateSubtreeBounds(body)
	src := body.BoundsInParent()

	cl := CloneWithMaterial(body, "coat", color.RGBA{0, 0, 0, 255}, 1.1)
	updateSubtreeBounds(cl)
	got := cl.BoundsInParent()

	assert.InDelta(t, src.Size().Y*1.1, got.Size().Y, 1e-3)
	assert.InDelta(t, src.Center().Y, got.Center().Y, 1e-3)
	assert.InDelta(t, src.Center().X, got.Center().X, 1e-3)
}

func TestProceduralOutfitRebuildsOnBodySwap(t *testing.T) {
	ss, _ := testSession(t)
	ss.SelectOutfit(Outfit{Name: "overlay", Kind: Overlay, Tint: color.RGBA{20, 20, 120, 255}})
	require.Equal(t, Attached, ss.Outfit.Phase)
	first := ss.Outfit.Node

	ss.LoadBody("body.glb")
	require.Equal(t, Attached, ss.Outfit.Phase)
	assert.NotSame(t, first, ss.Outfit.Node)
	require.NotNil(t, ss.Selection)
	assert.Equal(t, Overlay, ss.Selection.Kind)
}

func TestProceduralOutfitNeedsBody(t *testing.T) {
	ss, _ := testSession(t)
	ss.Body.Node.Delete()
	ss.Body = Slot{}

	var got *LoadError
	ss.OnError = func(le *LoadError) { got = le }
	ss.SelectOutfit(Outfit{Name: "overlay", Kind: Overlay})
	require.NotNil(t, got)
	assert.Equal(t, NotReady, got.Kind)
	assert.Equal(t, Empty, ss.Outfit.Phase)
}
