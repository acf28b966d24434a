// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package key

// Key is a closed enumeration of HID keyboard usages. It is a superset
// large enough to cover letters, digits, F1-F12, navigation, modifiers
// and media keys, matching spec.md §3.
type Key uint16

// HID usages. Ordinal values are firmware-internal; the mapping to the
// actual USB HID usage page happens in hidif, the out-of-scope HID class
// driver boundary.
const (
	KeyNone Key = iota
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyInsert
	KeyDeleteForward
	KeyGrave
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyMinus
	KeyEqual
	KeyDeleteBackspace
	KeyPageUp
	KeyTab
	KeyQ
	KeyW
	KeyE
	KeyR
	KeyT
	KeyY
	KeyU
	KeyI
	KeyO
	KeyP
	KeyLeftBrace
	KeyRightBrace
	KeyBackslash
	KeyPageDown
	KeyCapsLock
	KeyA
	KeyS
	KeyD
	KeyF
	KeyG
	KeyH
	KeyJ
	KeyK
	KeyL
	KeySemicolon
	KeyApostrophe
	KeyReturnEnter
	KeyHome
	KeyLeftShift
	KeyZ
	KeyX
	KeyC
	KeyV
	KeyB
	KeyN
	KeyM
	KeyComma
	KeyDot
	KeyForwardSlash
	KeyRightShift
	KeyUpArrow
	KeyEnd
	KeyLeftControl
	KeyLeftAlt
	KeyLeftGUI
	KeySpace
	KeyRightGUI
	KeyRightAlt
	KeyRightControl
	KeyLeftArrow
	KeyDownArrow
	KeyRightArrow
	KeyVolumeUp
	KeyVolumeDown
	keyCount // sentinel; not a valid Key
)

var keyNames = [...]string{
	"None", "Escape", "F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9",
	"F10", "F11", "F12", "Insert", "DeleteForward", "Grave", "1", "2", "3",
	"4", "5", "6", "7", "8", "9", "0", "Minus", "Equal", "DeleteBackspace",
	"PageUp", "Tab", "Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P",
	"LeftBrace", "RightBrace", "Backslash", "PageDown", "CapsLock", "A",
	"S", "D", "F", "G", "H", "J", "K", "L", "Semicolon", "Apostrophe",
	"ReturnEnter", "Home", "LeftShift", "Z", "X", "C", "V", "B", "N", "M",
	"Comma", "Dot", "ForwardSlash", "RightShift", "UpArrow", "End",
	"LeftControl", "LeftAlt", "LeftGUI", "Space", "RightGUI", "RightAlt",
	"RightControl", "LeftArrow", "DownArrow", "RightArrow", "VolumeUp",
	"VolumeDown",
}

func (k Key) String() string {
	if int(k) < 0 || int(k) >= len(keyNames) {
		return "Unknown"
	}
	return keyNames[k]
}

// Valid reports whether k is a known HID usage ordinal.
func (k Key) Valid() bool {
	return k < keyCount
}
