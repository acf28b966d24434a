// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package key

// Modifier is an 8-bit bitflag covering the eight HID modifier bits.
type Modifier uint8

const (
	ModifierNone         Modifier = 0
	ModifierLeftShift    Modifier = 1 << 0
	ModifierLeftControl  Modifier = 1 << 1
	ModifierLeftAlt      Modifier = 1 << 2
	ModifierLeftGUI      Modifier = 1 << 3
	ModifierRightShift   Modifier = 1 << 4
	ModifierRightControl Modifier = 1 << 5
	ModifierRightAlt     Modifier = 1 << 6
	ModifierRightGUI     Modifier = 1 << 7
)

// modifierKey maps a single modifier bit to the Key it is held with.
var modifierKey = map[Modifier]Key{
	ModifierLeftShift:    KeyLeftShift,
	ModifierLeftControl:  KeyLeftControl,
	ModifierLeftAlt:      KeyLeftAlt,
	ModifierLeftGUI:      KeyLeftGUI,
	ModifierRightShift:   KeyRightShift,
	ModifierRightControl: KeyRightControl,
	ModifierRightAlt:     KeyRightAlt,
	ModifierRightGUI:     KeyRightGUI,
}

// Key returns the Key held down to assert this single modifier bit, or
// (KeyNone, false) if m is not exactly one set bit.
func (m Modifier) Key() (Key, bool) {
	k, ok := modifierKey[m]
	return k, ok
}

// Bits returns each individual set modifier bit in m, low bit first.
func (m Modifier) Bits() []Modifier {
	var bits []Modifier
	for shift := 0; shift < 8; shift++ {
		b := Modifier(1 << shift)
		if m&b != 0 {
			bits = append(bits, b)
		}
	}
	return bits
}

// ModifiedKey is a 16-bit composite: the low byte is a Key ordinal, the
// high byte a Modifier mask.
type ModifiedKey uint16

// NewModifiedKey packs a key with the given modifier mask.
func NewModifiedKey(k Key, m Modifier) ModifiedKey {
	return ModifiedKey(uint16(k&0xFF) | uint16(m)<<8)
}

// Key returns the base key, ignoring the modifier mask.
func (mk ModifiedKey) Key() Key {
	return Key(mk & 0xFF)
}

// Modifiers returns the modifier mask.
func (mk ModifiedKey) Modifiers() Modifier {
	return Modifier(mk >> 8)
}
