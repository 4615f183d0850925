// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"

	"github.com/fitroom/fitroom/scene"
)

func TestRecomposeIdentity(t *testing.T) {
	base := Transform{
		Pos:   math32.Vec3(1, 2, 3),
		Scale: math32.Vec3(2, 2, 2),
		Rot:   math32.Vec3(0.1, 0.2, 0.3),
	}
	got := Recompose(base, IdentityOffset())
	assert.Equal(t, base, got)
}

func TestRecomposePure(t *testing.T) {
	base := Transform{
		Pos:   math32.Vec3(0, 1, 0),
		Scale: math32.Vec3(1, 1, 1),
	}
	off := Offset{Pos: math32.Vec3(0.1, 0, 0), Scale: 1.5, Rot: math32.Vec3(0, 45, 0)}

	first := Recompose(base, off)
	// recomposing repeatedly with the same inputs must not drift
	for range 100 {
		assert.Equal(t, first, Recompose(base, off))
	}

	assert.InDelta(t, 0.1, first.Pos.X, 1e-6)
	assert.InDelta(t, 1.5, first.Scale.Y, 1e-6)
	assert.InDelta(t, math32.DegToRad(45), first.Rot.Y, 1e-6)
}

func TestRecomposeScaleUniform(t *testing.T) {
	base := Transform{Scale: math32.Vec3(1, 2, 4)}
	got := Recompose(base, Offset{Scale: 0.5})
	assert.Equal(t, math32.Vec3(0.5, 1, 2), got.Scale)
}

func TestOffsetIdentity(t *testing.T) {
	o := IdentityOffset()
	assert.True(t, o.IsIdentity())
	o.Exec(NudgePos{X: 0.1})
	assert.False(t, o.IsIdentity())
	o.Exec(Reset{})
	assert.True(t, o.IsIdentity())
}

func TestCommands(t *testing.T) {
	o := IdentityOffset()
	o.Exec(SetPosX(1), SetPosY(2), SetPosZ(3), SetScale(2), SetRotY(90))
	assert.Equal(t, math32.Vec3(1, 2, 3), o.Pos)
	assert.Equal(t, float32(2), o.Scale)
	assert.Equal(t, float32(90), o.Rot.Y)

	o.Exec(NudgePos{X: -1}, NudgeScale(-0.5), NudgeRot{Y: -45})
	assert.Equal(t, float32(0), o.Pos.X)
	assert.Equal(t, float32(1.5), o.Scale)
	assert.Equal(t, float32(45), o.Rot.Y)
}

func TestStepFactor(t *testing.T) {
	assert.Equal(t, float32(10), Coarse.Factor())
	assert.Equal(t, float32(1), Normal.Factor())
	assert.InDelta(t, 0.1, Fine.Factor(), 1e-6)
}

func TestCaptureApplyRoundTrip(t *testing.T) {
	sld := scene.NewSolid()
	sld.SetMesh(scene.NewBox("bx", 1, 1, 1))
	sld.Pose.Pos.Set(1, 2, 3)
	sld.Pose.Scale.Set(2, 2, 2)
	sld.Pose.SetEulerRotation(0, 90, 0)

	tr := Capture(sld)
	assert.Equal(t, math32.Vec3(1, 2, 3), tr.Pos)
	assert.InDelta(t, math32.DegToRad(90), tr.Rot.Y, 1e-5)

	other := scene.NewSolid()
	other.SetMesh(scene.NewBox("bx2", 1, 1, 1))
	tr.Apply(other)
	got := Capture(other)
	assert.InDelta(t, tr.Pos.X, got.Pos.X, 1e-6)
	assert.InDelta(t, tr.Rot.Y, got.Rot.Y, 1e-5)
	assert.InDelta(t, tr.Scale.Z, got.Scale.Z, 1e-6)
}
