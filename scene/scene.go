// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
)

// Scene is the overall scene graph, containing nodes as children.
// It holds no GPU state; renderers read the current poses, world
// matrices and bounding boxes on their own clock, after calling
// [Scene.UpdateWorld].
type Scene struct {
	Group

	// Background is the background color used by renderers.
	Background color.RGBA

	// Environment is an optional environment lighting texture.
	// It is best-effort: a nil environment only disables reflective
	// lighting, it never blocks rendering.
	Environment *Texture
}

// NewScene creates a new root scene.
func NewScene(name ...string) *Scene {
	sc := tree.New[Scene]()
	if len(name) > 0 {
		sc.SetName(name[0])
	}
	sc.Background = color.RGBA{250, 250, 250, 255}
	return sc
}

// UpdateWorld updates all mesh bounding boxes (bottom-up) and then all
// world matrices and world bounding boxes (top-down). Call after any
// pose or structural change, before reading bounds.
func (sc *Scene) UpdateWorld() {
	sc.WalkDownPost(func(n tree.Node) bool {
		ni, _ := AsNode(n)
		return ni != nil
	}, func(n tree.Node) bool {
		ni, _ := AsNode(n)
		if ni == nil {
			return false
		}
		ni.UpdateMeshBBox()
		return true
	})
	sc.NodeBase.UpdateWorldMatrix(nil)
}

// WorldBounds returns the bounding box of everything in the scene,
// in world coordinates. Only valid after [Scene.UpdateWorld].
func (sc *Scene) WorldBounds() math32.Box3 {
	bb := math32.B3Empty()
	sc.WalkDown(func(n tree.Node) bool {
		ni, nb := AsNode(n)
		if ni == nil {
			return tree.Break
		}
		if ni.IsSolid() && !nb.WorldBBox.IsEmpty() {
			bb.ExpandByBox(nb.WorldBBox)
		}
		return tree.Continue
	})
	return bb
}

// Solids calls the given function on every [Solid] in the scene.
func (sc *Scene) Solids(fun func(sld *Solid)) {
	sc.WalkDown(func(n tree.Node) bool {
		ni, _ := AsNode(n)
		if ni == nil {
			return tree.Break
		}
		if sld := ni.AsSolid(); sld != nil {
			fun(sld)
		}
		return tree.Continue
	})
}
