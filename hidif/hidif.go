// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package hidif describes the USB HID boundary this firmware drives:
// the boot-protocol keyboard report format and the Device collaborator
// that actually owns the USB stack. Device itself is out of scope
// (§4.6 Non-goals) — it is described only by the signatures the rest of
// the system calls, the same convention conn/rgb.Writer and
// conn/matrix.Pin use for their hardware collaborators.
package hidif

import (
	"context"

	"github.com/kbcore/kbfw/conn/key"
)

// maxRolloverKeys is the boot-protocol keyboard report's fixed key
// slot count (§6).
const maxRolloverKeys = 6

// Report is a single USB HID boot-protocol keyboard report: one
// modifier byte, a reserved byte, and up to six simultaneously
// non-modifier pressed keys.
type Report struct {
	Modifiers key.Modifier
	Keys      [maxRolloverKeys]key.Key
}

// LEDState is the host-driven indicator state read back from the HID
// device (caps lock, num lock, scroll lock).
type LEDState struct {
	CapsLock   bool
	NumLock    bool
	ScrollLock bool
}

// Device is the USB HID keyboard class driver collaborator (§4.6,
// §9). WriteReport sends one report; Tick lets the underlying USB
// stack service its endpoints at the HID poll rate; Poll drains any
// pending OUT report (host-to-device, typically LED state); ReadLEDs
// returns the most recently polled LED state.
type Device interface {
	WriteReport(ctx context.Context, report Report) error
	Tick(ctx context.Context) error
	Poll(ctx context.Context) error
	ReadLEDs() LEDState
}
