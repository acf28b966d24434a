// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package key defines the closed vocabulary the input pipeline resolves
// cells into: HID key usages, modifiers, firmware-internal controls, and
// the tagged Action a keymap cell ultimately produces.
package key

// Edge is a cell's transition relative to its previous sampled state.
// It mirrors the vocabulary of periph's conn/gpio.Edge but is derived by
// the scanner/debouncer from two consecutive pressed samples rather than
// delivered by a hardware interrupt.
type Edge uint8

const (
	// EdgeNone means pressed state did not change between samples.
	EdgeNone Edge = iota
	// EdgeRising means the cell went from released to pressed.
	EdgeRising
	// EdgeFalling means the cell went from pressed to released.
	EdgeFalling
)

func (e Edge) String() string {
	switch e {
	case EdgeRising:
		return "Rising"
	case EdgeFalling:
		return "Falling"
	default:
		return "None"
	}
}

// EdgeFrom derives the edge for a previous->current pressed transition.
// EdgeFrom(a, b) == Rising  iff  !a && b
// EdgeFrom(a, b) == Falling iff  a && !b
// else None.
func EdgeFrom(previousPressed, pressed bool) Edge {
	switch {
	case !previousPressed && pressed:
		return EdgeRising
	case previousPressed && !pressed:
		return EdgeFalling
	default:
		return EdgeNone
	}
}
