// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"image/color"

	"github.com/fitroom/fitroom/scene"
)

// mannequinColor is the neutral tone for the built-in body.
var mannequinColor = color.RGBA{205, 197, 188, 255}

// Mannequin builds the built-in procedural body: a simple humanoid
// about 1.7 units tall, standing on the origin. It is used until a real
// avatar is loaded, and as the fallback when no default body asset is
// configured.
func Mannequin() *scene.Group {
	gp := scene.NewGroup()
	gp.SetName("mannequin")

	part := func(name string, ms scene.Mesh, x, y, z float32) {
		sld := scene.NewSolid(gp)
		sld.SetName(name)
		sld.SetMesh(ms)
		sld.SetColor(mannequinColor)
		sld.Pose.Pos.Set(x, y, z)
	}

	part("head", scene.NewSphere("head", 0.11, 16), 0, 1.59, 0)
	part("neck", scene.NewBox("neck", 0.08, 0.06, 0.08), 0, 1.45, 0)
	part("torso", scene.NewBox("torso", 0.34, 0.52, 0.20), 0, 1.16, 0)
	part("pelvis", scene.NewBox("pelvis", 0.32, 0.18, 0.20), 0, 0.81, 0)
	part("arm-l", scene.NewBox("arm-l", 0.08, 0.55, 0.08), -0.24, 1.14, 0)
	part("arm-r", scene.NewBox("arm-r", 0.08, 0.55, 0.08), 0.24, 1.14, 0)
	part("leg-l", scene.NewBox("leg-l", 0.12, 0.72, 0.12), -0.09, 0.36, 0)
	part("leg-r", scene.NewBox("leg-r", 0.12, 0.72, 0.12), 0.09, 0.36, 0)

	return gp
}
