// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"

	"github.com/fitroom/fitroom/scene"
)

// ErrNotReady is returned when a fitting operation is requested before
// both the avatar and the outfit exist.
var ErrNotReady = errors.New("fit: avatar and outfit must both be loaded")

// Shrink is the factor applied to the auto-fit scale so the outfit's
// silhouette stays just inside the avatar's.
const Shrink = 0.95

// AutoFit scales and centers the outfit node so its bounding box matches
// the avatar's bounding box, both expressed in the same (avatar root)
// coordinate space. The uniform scale is the minimum per-axis extent
// ratio times [Shrink]; axes where the outfit extent is zero or
// non-finite contribute a ratio of 1. The outfit's live pose is mutated
// in place, and the resulting transform is returned for capture as the
// new base transform.
func AutoFit(avatar math32.Box3, outfit scene.Node) (Transform, error) {
	if outfit == nil || avatar.IsEmpty() {
		return Transform{}, ErrNotReady
	}
	nb := outfit.AsNodeBase()
	ob := nb.BoundsInParent()
	if ob.IsEmpty() {
		return Transform{}, ErrNotReady
	}

	asz := avatar.Size()
	osz := ob.Size()
	scale := math32.Min(axisRatio(asz.X, osz.X),
		math32.Min(axisRatio(asz.Y, osz.Y), axisRatio(asz.Z, osz.Z)))
	scale *= Shrink

	nb.Pose.Scale = nb.Pose.Scale.MulScalar(scale)

	ob = nb.BoundsInParent() // post-scale
	delta := avatar.Center().Sub(ob.Center())
	nb.Pose.Pos.SetAdd(delta)
	nb.Pose.UpdateMatrix()

	return Capture(outfit), nil
}

// axisRatio returns avatar/outfit extent for one axis, substituting 1
// when the outfit extent is zero or non-finite, so a flat or degenerate
// outfit never produces an infinite or NaN scale.
func axisRatio(avatar, outfit float32) float32 {
	if outfit == 0 || math32.IsNaN(outfit) || math32.IsInf(outfit, 0) {
		return 1
	}
	r := avatar / outfit
	if math32.IsNaN(r) || math32.IsInf(r, 0) {
		return 1
	}
	return r
}
