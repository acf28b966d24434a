// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package standard is the concrete keymap for a single, non-split 2x2
// board: a base layer and a function layer reachable by holding a layer
// modifier, matching the default board's layout (§9 supplemented
// feature — the original firmware compiled one keymap per board target;
// here every keymap is a selectable package instead).
package standard

import (
	"github.com/kbcore/kbfw/conn/key"
	"github.com/kbcore/kbfw/conn/rotary"
	"github.com/kbcore/kbfw/processor"
)

// Layer indices for this keymap.
const (
	LayerBase key.LayerIndex = iota
	LayerFunction1

	LayerCount
)

// Rows and Cols give this keymap's matrix dimensions, matching the
// board it targets.
const (
	Rows = 2
	Cols = 2
)

// InputMap returns the compile-time keymap for the standard board.
func InputMap() processor.InputMap {
	km := make([][][]key.Action, LayerCount)
	for l := range km {
		km[l] = make([][]key.Action, Rows)
		for i := range km[l] {
			km[l][i] = make([]key.Action, Cols)
		}
	}

	km[LayerBase][0][0] = key.OfKey(key.KeyA)
	km[LayerBase][0][1] = key.OfKey(key.KeyB)
	km[LayerBase][1][0] = key.Pass()
	km[LayerBase][1][1] = key.OfLayerModifier(LayerFunction1)

	km[LayerFunction1][0][0] = key.OfKey(key.KeyC)
	km[LayerFunction1][0][1] = key.OfKey(key.KeyD)
	km[LayerFunction1][1][0] = key.OfControl(key.ControlRGBAnimationNext)
	km[LayerFunction1][1][1] = key.Pass()

	re := make([][3]key.Action, LayerCount)
	re[LayerBase][rotary.DirectionClockwise] = key.OfControl(key.ControlRGBBrightnessUp)
	re[LayerBase][rotary.DirectionCounterClockwise] = key.OfControl(key.ControlRGBBrightnessDown)
	re[LayerFunction1][rotary.DirectionClockwise] = key.OfControl(key.ControlRGBSpeedUp)
	re[LayerFunction1][rotary.DirectionCounterClockwise] = key.OfControl(key.ControlRGBSpeedDown)

	return processor.InputMap{KeyMatrix: km, RotaryEncoder: re}
}
