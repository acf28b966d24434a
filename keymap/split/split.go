// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package split is the concrete keymap for a 5x14 split board: a QWERTY
// base layer plus Symbol, Number, Navigation and System layers reached
// through held layer modifiers on the two thumb clusters (§9
// supplemented feature, ported from the richest of the original
// firmware's board layouts).
package split

import (
	"github.com/kbcore/kbfw/conn/key"
	"github.com/kbcore/kbfw/conn/rotary"
	"github.com/kbcore/kbfw/processor"
)

// Layer indices for this keymap.
const (
	LayerBase key.LayerIndex = iota
	LayerSymbol
	LayerNumber
	LayerNavigation
	LayerSystem

	LayerCount
)

// Rows and Cols give this keymap's merged matrix dimensions.
const (
	Rows = 5
	Cols = 14
)

var pass = key.Pass()

func shifted(k key.Key) key.Action {
	return key.OfModifiedKey(key.NewModifiedKey(k, key.ModifierLeftShift))
}

// InputMap returns the compile-time keymap for the split board.
func InputMap() processor.InputMap {
	km := make([][][]key.Action, LayerCount)

	km[LayerBase] = [][]key.Action{
		{key.OfKey(key.KeyEscape), key.OfKey(key.Key1), key.OfKey(key.Key2), key.OfKey(key.Key3), key.OfKey(key.Key4), key.OfKey(key.Key5), pass, pass, key.OfKey(key.Key6), key.OfKey(key.Key7), key.OfKey(key.Key8), key.OfKey(key.Key9), key.OfKey(key.Key0), key.OfKey(key.KeyDeleteBackspace)},
		{key.OfKey(key.KeyTab), key.OfKey(key.KeyQ), key.OfKey(key.KeyW), key.OfKey(key.KeyE), key.OfKey(key.KeyR), key.OfKey(key.KeyT), pass, pass, key.OfKey(key.KeyY), key.OfKey(key.KeyU), key.OfKey(key.KeyI), key.OfKey(key.KeyO), key.OfKey(key.KeyP), key.OfKey(key.KeyDeleteForward)},
		{key.OfKey(key.KeyLeftControl), key.OfKey(key.KeyA), key.OfKey(key.KeyS), key.OfKey(key.KeyD), key.OfKey(key.KeyF), key.OfKey(key.KeyG), pass, pass, key.OfKey(key.KeyH), key.OfKey(key.KeyJ), key.OfKey(key.KeyK), key.OfKey(key.KeyL), key.OfKey(key.KeySemicolon), key.OfKey(key.KeyReturnEnter)},
		{key.OfKey(key.KeyLeftShift), key.OfKey(key.KeyZ), key.OfKey(key.KeyX), key.OfKey(key.KeyC), key.OfKey(key.KeyV), key.OfKey(key.KeyB), key.OfLayerModifier(LayerNumber), pass, key.OfKey(key.KeyN), key.OfKey(key.KeyM), key.OfKey(key.KeyComma), key.OfKey(key.KeyDot), shifted(key.KeyForwardSlash), key.OfKey(key.KeyRightShift)},
		{key.OfLayerModifier(LayerSystem), key.OfKey(key.KeyLeftControl), key.OfKey(key.KeyLeftAlt), key.OfKey(key.KeyLeftGUI), key.OfLayerModifier(LayerSymbol), key.OfKey(key.KeySpace), pass, pass, key.OfKey(key.KeySpace), key.OfLayerModifier(LayerNavigation), key.OfKey(key.KeyRightGUI), key.OfKey(key.KeyRightAlt), key.OfKey(key.KeyRightControl), pass},
	}

	km[LayerSymbol] = [][]key.Action{
		{key.OfKey(key.KeyEscape), shifted(key.Key1), shifted(key.Key2), shifted(key.Key3), shifted(key.Key4), pass, pass, pass, pass, pass, pass, pass, pass, key.OfKey(key.KeyDeleteBackspace)},
		{pass, shifted(key.KeyLeftBrace), key.OfKey(key.KeyLeftBrace), key.OfKey(key.KeyApostrophe), key.OfKey(key.KeyRightBrace), shifted(key.KeyRightBrace), pass, pass, shifted(key.KeyComma), shifted(key.KeyDot), pass, pass, pass, pass},
		{key.OfKey(key.KeyLeftControl), key.OfKey(key.KeyBackslash), shifted(key.Key9), shifted(key.KeyApostrophe), shifted(key.Key0), key.OfKey(key.KeyForwardSlash), pass, pass, shifted(key.KeyMinus), shifted(key.KeyBackslash), shifted(key.Key7), shifted(key.Key6), key.OfKey(key.KeyEqual), pass},
		{key.OfKey(key.KeyLeftShift), pass, shifted(key.KeyComma), key.OfKey(key.KeyGrave), shifted(key.KeyDot), pass, key.OfLayerModifier(LayerNumber), pass, shifted(key.KeyEqual), key.OfKey(key.KeyMinus), shifted(key.Key8), shifted(key.KeyGrave), shifted(key.Key5), key.OfKey(key.KeyRightShift)},
		{pass, key.OfKey(key.KeyLeftControl), key.OfKey(key.KeyLeftAlt), key.OfKey(key.KeyLeftGUI), pass, key.OfKey(key.KeySpace), pass, pass, key.OfKey(key.KeySpace), pass, key.OfKey(key.KeyRightGUI), key.OfKey(key.KeyRightAlt), key.OfKey(key.KeyRightControl), pass},
	}

	km[LayerNumber] = [][]key.Action{
		{key.OfKey(key.KeyEscape), pass, pass, pass, pass, pass, pass, pass, pass, pass, pass, pass, pass, key.OfKey(key.KeyDeleteBackspace)},
		{pass, pass, pass, pass, pass, pass, pass, pass, key.OfKey(key.Key0), key.OfKey(key.Key1), key.OfKey(key.Key2), key.OfKey(key.Key3), pass, pass},
		{key.OfKey(key.KeyLeftControl), pass, pass, pass, pass, pass, pass, pass, pass, key.OfKey(key.Key4), key.OfKey(key.Key5), key.OfKey(key.Key6), pass, pass},
		{key.OfKey(key.KeyLeftShift), pass, pass, pass, pass, pass, pass, pass, pass, key.OfKey(key.Key7), key.OfKey(key.Key8), key.OfKey(key.Key9), pass, key.OfKey(key.KeyRightShift)},
		{pass, key.OfKey(key.KeyLeftControl), key.OfKey(key.KeyLeftAlt), key.OfKey(key.KeyLeftGUI), pass, key.OfKey(key.KeySpace), pass, pass, key.OfKey(key.KeySpace), pass, key.OfKey(key.KeyRightGUI), key.OfKey(key.KeyRightAlt), key.OfKey(key.KeyRightControl), pass},
	}

	km[LayerNavigation] = [][]key.Action{
		{key.OfKey(key.KeyEscape), pass, pass, pass, pass, pass, pass, pass, pass, pass, pass, pass, pass, key.OfKey(key.KeyDeleteBackspace)},
		{pass, pass, pass, pass, pass, pass, pass, pass, key.OfKey(key.KeyHome), key.OfKey(key.KeyPageDown), key.OfKey(key.KeyPageUp), key.OfKey(key.KeyEnd), pass, pass},
		{key.OfKey(key.KeyLeftControl), pass, pass, pass, pass, pass, pass, pass, key.OfKey(key.KeyLeftArrow), key.OfKey(key.KeyDownArrow), key.OfKey(key.KeyUpArrow), key.OfKey(key.KeyRightArrow), pass, pass},
		{key.OfKey(key.KeyLeftShift), pass, pass, pass, pass, pass, pass, pass, pass, pass, pass, pass, pass, key.OfKey(key.KeyRightShift)},
		{pass, key.OfKey(key.KeyLeftControl), key.OfKey(key.KeyLeftAlt), key.OfKey(key.KeyLeftGUI), pass, key.OfKey(key.KeySpace), pass, pass, key.OfKey(key.KeySpace), pass, key.OfKey(key.KeyRightGUI), key.OfKey(key.KeyRightAlt), key.OfKey(key.KeyRightControl), pass},
	}

	km[LayerSystem] = [][]key.Action{
		{key.OfKey(key.KeyEscape), pass, pass, pass, pass, pass, pass, pass, pass, pass, pass, pass, pass, key.OfKey(key.KeyDeleteBackspace)},
		{pass, key.OfControl(key.ControlRGBAnimationNext), key.OfControl(key.ControlRGBSpeedUp), key.OfControl(key.ControlRGBBrightnessUp), pass, pass, pass, pass, key.OfKey(key.KeyF10), key.OfKey(key.KeyF1), key.OfKey(key.KeyF2), key.OfKey(key.KeyF3), pass, pass},
		{key.OfKey(key.KeyLeftControl), key.OfControl(key.ControlRGBAnimationPrevious), key.OfControl(key.ControlRGBSpeedDown), key.OfControl(key.ControlRGBBrightnessDown), pass, pass, pass, pass, key.OfKey(key.KeyF11), key.OfKey(key.KeyF4), key.OfKey(key.KeyF5), key.OfKey(key.KeyF6), pass, pass},
		{key.OfKey(key.KeyLeftShift), key.OfControl(key.ControlBootloaderJump), pass, pass, pass, pass, pass, pass, key.OfKey(key.KeyF12), key.OfKey(key.KeyF7), key.OfKey(key.KeyF8), key.OfKey(key.KeyF9), pass, key.OfKey(key.KeyRightShift)},
		{pass, key.OfKey(key.KeyLeftControl), key.OfKey(key.KeyLeftAlt), key.OfKey(key.KeyLeftGUI), pass, key.OfKey(key.KeySpace), pass, pass, key.OfKey(key.KeySpace), pass, key.OfKey(key.KeyRightGUI), key.OfKey(key.KeyRightAlt), key.OfKey(key.KeyRightControl), pass},
	}

	re := make([][3]key.Action, LayerCount)
	re[LayerBase][rotary.DirectionClockwise] = key.OfKey(key.KeyVolumeUp)
	re[LayerBase][rotary.DirectionCounterClockwise] = key.OfKey(key.KeyVolumeDown)
	re[LayerSymbol][rotary.DirectionClockwise] = key.OfControl(key.ControlRGBBrightnessUp)
	re[LayerSymbol][rotary.DirectionCounterClockwise] = key.OfControl(key.ControlRGBBrightnessDown)
	re[LayerNumber][rotary.DirectionClockwise] = key.OfControl(key.ControlRGBBrightnessUp)
	re[LayerNumber][rotary.DirectionCounterClockwise] = key.OfControl(key.ControlRGBBrightnessDown)
	re[LayerNavigation][rotary.DirectionClockwise] = key.OfControl(key.ControlRGBSpeedUp)
	re[LayerNavigation][rotary.DirectionCounterClockwise] = key.OfControl(key.ControlRGBSpeedDown)

	return processor.InputMap{KeyMatrix: km, RotaryEncoder: re}
}
