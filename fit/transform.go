// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fit implements the outfit-fitting transform pipeline: capturing
// a base transform from a scene node, composing user-driven offsets on
// top of it, and auto-fitting one object's bounding volume onto another.
package fit

import (
	"cogentcore.org/core/math32"

	"github.com/fitroom/fitroom/scene"
)

// Transform is an immutable snapshot of a node's local transform,
// captured at the moment an outfit is attached or auto-fitted. It is
// the zero-point that user offsets are applied against: it is replaced,
// never merged, whenever a new outfit is attached or auto-fit re-runs.
type Transform struct {

	// position relative to parent
	Pos math32.Vector3

	// per-axis scale relative to parent
	Scale math32.Vector3

	// rotation as Euler angles in radians
	Rot math32.Vector3
}

// Capture returns the current local transform of the given node.
func Capture(n scene.Node) Transform {
	nb := n.AsNodeBase()
	return Transform{
		Pos:   nb.Pose.Pos,
		Scale: nb.Pose.Scale,
		Rot:   nb.Pose.EulerRotationRad(),
	}
}

// Apply writes the transform onto the live node's pose and updates its
// local matrix.
func (t Transform) Apply(n scene.Node) {
	nb := n.AsNodeBase()
	nb.Pose.Pos = t.Pos
	nb.Pose.Scale = t.Scale
	nb.Pose.SetEulerRotationRad(t.Rot.X, t.Rot.Y, t.Rot.Z)
	nb.Pose.UpdateMatrix()
}

// Offset is the user-applied delta on top of a base [Transform].
// The identity offset is all-zero except Scale = 1.
type Offset struct {

	// per-axis additive position delta
	Pos math32.Vector3

	// uniform multiplicative scale factor
	Scale float32

	// per-axis additive rotation delta, in degrees
	Rot math32.Vector3
}

// IdentityOffset returns the identity [Offset].
func IdentityOffset() Offset {
	return Offset{Scale: 1}
}

// Reset resets the offset to the identity.
func (o *Offset) Reset() {
	*o = IdentityOffset()
}

// IsIdentity returns true if the offset is exactly the identity.
func (o Offset) IsIdentity() bool {
	return o == IdentityOffset()
}

// Recompose computes a node's final transform from its base transform
// and the current user offset. It is pure with respect to its inputs
// and has no memory of prior outputs, so it is safe to call on every
// offset mutation:
//   - position is additive, per-axis
//   - scale multiplies all three base axes by the uniform offset scale
//   - rotation starts from exactly the base rotation and adds the offset
//     angles, so repeated recompositions never accumulate drift
func Recompose(base Transform, off Offset) Transform {
	return Transform{
		Pos:   base.Pos.Add(off.Pos),
		Scale: base.Scale.MulScalar(off.Scale),
		Rot:   base.Rot.Add(off.Rot.MulScalar(math32.DegToRadFactor)),
	}
}
