// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"image/color"

	"cogentcore.org/core/tree"

	"github.com/fitroom/fitroom/scene"
)

// CloneWithMaterial builds a procedural outfit shell from the body: a
// deep clone of the body's subtree with every solid's material replaced
// by the given tint, inflated around the body's center by the given
// factor. The source body is not modified.
func CloneWithMaterial(body *scene.Group, name string, tint color.RGBA, inflate float32) *scene.Group {
	cl := body.Clone().(*scene.Group)
	cl.SetName(name)
	if tint.A == 0 {
		tint = color.RGBA{128, 128, 128, 255}
	}
	eachSolid(cl, func(sld *scene.Solid) {
		sld.Material.Defaults()
		sld.Material.Color = tint
		sld.Material.Texture = nil
	})
	if inflate != 1 {
		updateSubtreeBounds(cl)
		before := cl.BoundsInParent()
		cl.Pose.Scale = cl.Pose.Scale.MulScalar(inflate)
		after := cl.BoundsInParent()
		if !before.IsEmpty() && !after.IsEmpty() {
			cl.Pose.Pos.SetAdd(before.Center().Sub(after.Center()))
		}
	}
	return cl
}

// eachSolid calls the given function on every solid under the group.
func eachSolid(gp *scene.Group, fun func(sld *scene.Solid)) {
	gp.WalkDown(func(n tree.Node) bool {
		ni, _ := scene.AsNode(n)
		if ni == nil {
			return tree.Break
		}
		if sld := ni.AsSolid(); sld != nil {
			fun(sld)
		}
		return tree.Continue
	})
}

// updateSubtreeBounds refreshes mesh bounding boxes bottom-up under the
// group, for subtrees not (yet) attached to a scene.
func updateSubtreeBounds(gp *scene.Group) {
	gp.WalkDownPost(func(n tree.Node) bool {
		ni, _ := scene.AsNode(n)
		return ni != nil
	}, func(n tree.Node) bool {
		ni, _ := scene.AsNode(n)
		if ni == nil {
			return false
		}
		ni.UpdateMeshBBox()
		return true
	})
}
