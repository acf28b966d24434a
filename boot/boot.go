// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package boot holds the two one-shot, write-once-read-many globals the
// firmware needs before any task starts: which physical half of a split
// board this binary is running on, and whether it is the USB-connected
// master or the link-serving slave (§6, §9 "no global mutable singletons
// besides... the side/mode detection word").
package boot

import (
	"context"
	"sync"
	"time"
)

// Side is the physical left/right identity of a split-keyboard half.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "Right"
	}
	return "Left"
}

// Mode is whether this half originates HID reports (Master) or serves
// scan RPCs over the link (Slave).
type Mode uint8

const (
	ModeMaster Mode = iota
	ModeSlave
)

func (m Mode) String() string {
	if m == ModeSlave {
		return "Slave"
	}
	return "Master"
}

// detect is the one-shot guard around the side/mode words, following the
// teacher's periph.go registry pattern of a package-level sync.Once
// guarding mutable global state.
var detect struct {
	once     sync.Once
	side     Side
	modeOnce sync.Once
	mode     Mode
}

// DetectSide samples a pull-down GPIO once at boot: high reads as Right,
// low as Left (§6). Subsequent calls are idempotent and return the first
// reading.
func DetectSide(read func() (bool, error)) (Side, error) {
	var err error
	detect.once.Do(func() {
		var high bool
		high, err = read()
		if high {
			detect.side = SideRight
		} else {
			detect.side = SideLeft
		}
	})
	return detect.side, err
}

// DetectMode waits up to window for usbEnumerated to report true; if it
// does, this half is Master, otherwise Slave (§6). Subsequent calls are
// idempotent and return the first result.
func DetectMode(ctx context.Context, window time.Duration, usbEnumerated func() bool) Mode {
	detect.modeOnce.Do(func() {
		detect.mode = ModeSlave
		deadline := time.Now().Add(window)
		for time.Now().Before(deadline) {
			if usbEnumerated() {
				detect.mode = ModeMaster
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(10 * time.Millisecond):
			}
		}
	})
	return detect.mode
}
