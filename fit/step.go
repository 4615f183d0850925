// Copyright (c) 2026, Fitroom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fit

// StepMode is the UI sensitivity for nudge operations. It is purely a
// multiplier on nudge deltas and is not part of the transform state.
type StepMode int32

const (
	// Coarse multiplies nudge deltas by 10.
	Coarse StepMode = iota

	// Normal applies nudge deltas as given.
	Normal

	// Fine multiplies nudge deltas by 0.1.
	Fine
)

// Factor returns the delta multiplier for this step mode.
func (sm StepMode) Factor() float32 {
	switch sm {
	case Coarse:
		return 10
	case Fine:
		return 0.1
	default:
		return 1
	}
}

func (sm StepMode) String() string {
	switch sm {
	case Coarse:
		return "coarse"
	case Fine:
		return "fine"
	default:
		return "normal"
	}
}
