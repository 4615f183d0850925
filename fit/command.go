// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

// Command is a single mutation of a [Offset], decoupling UI event
// wiring (sliders, nudge buttons, reset) from the transform math.
// Commands are applied with [Offset.Exec] and the result recomposed
// with [Recompose].
type Command interface {
	update(o *Offset)
}

// Exec applies the given commands to the offset, in order.
func (o *Offset) Exec(cmds ...Command) {
	for _, c := range cmds {
		c.update(o)
	}
}

// SetPosX sets the absolute x position offset.
type SetPosX float32

// SetPosY sets the absolute y position offset.
type SetPosY float32

// SetPosZ sets the absolute z position offset.
type SetPosZ float32

// SetScale sets the absolute uniform scale offset.
type SetScale float32

// SetRotX sets the absolute x rotation offset, in degrees.
type SetRotX float32

// SetRotY sets the absolute y rotation offset, in degrees.
type SetRotY float32

// SetRotZ sets the absolute z rotation offset, in degrees.
type SetRotZ float32

func (c SetPosX) update(o *Offset)  { o.Pos.X = float32(c) }
func (c SetPosY) update(o *Offset)  { o.Pos.Y = float32(c) }
func (c SetPosZ) update(o *Offset)  { o.Pos.Z = float32(c) }
func (c SetScale) update(o *Offset) { o.Scale = float32(c) }
func (c SetRotX) update(o *Offset)  { o.Rot.X = float32(c) }
func (c SetRotY) update(o *Offset)  { o.Rot.Y = float32(c) }
func (c SetRotZ) update(o *Offset)  { o.Rot.Z = float32(c) }

// NudgePos adds a position delta, per-axis.
type NudgePos struct {
	X, Y, Z float32
}

func (c NudgePos) update(o *Offset) {
	o.Pos.X += c.X
	o.Pos.Y += c.Y
	o.Pos.Z += c.Z
}

// NudgeScale adds a delta to the uniform scale offset.
type NudgeScale float32

func (c NudgeScale) update(o *Offset) { o.Scale += float32(c) }

// NudgeRot adds a rotation delta, per-axis, in degrees.
type NudgeRot struct {
	X, Y, Z float32
}

func (c NudgeRot) update(o *Offset) {
	o.Rot.X += c.X
	o.Rot.Y += c.Y
	o.Rot.Z += c.Z
}

// Reset resets the offset to the identity.
type Reset struct{}

func (c Reset) update(o *Offset) { o.Reset() }
