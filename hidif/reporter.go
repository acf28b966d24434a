// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hidif

import (
	"context"

	"github.com/kbcore/kbfw/conn/key"
	"github.com/kbcore/kbfw/processor"
)

// Reporter tracks currently-held keys across polls and turns them into
// USB HID boot-protocol reports, consuming key.ActionKey events'
// Rising/Falling edges to maintain that held set; events of any other
// action kind are ignored (§4.6).
type Reporter struct {
	device  Device
	held    map[key.Key]bool
	heldMod key.Modifier
}

// NewReporter constructs a Reporter over the Device it writes to.
func NewReporter(device Device) *Reporter {
	return &Reporter{device: device, held: make(map[key.Key]bool)}
}

// Process implements processor.EventsProcessor: it updates the held-key
// set from Rising/Falling key events and passes events through
// unchanged so downstream processors (e.g. the RGB engine) still see
// them.
func (r *Reporter) Process(events []processor.Event) []processor.Event {
	for _, ev := range events {
		if ev.Action.Kind != key.ActionKey {
			continue
		}
		switch ev.Edge {
		case key.EdgeRising:
			if mod, ok := isModifierKey(ev.Action.Key); ok {
				r.heldMod |= mod
			} else {
				r.held[ev.Action.Key] = true
			}
		case key.EdgeFalling:
			if mod, ok := isModifierKey(ev.Action.Key); ok {
				r.heldMod &^= mod
			} else {
				delete(r.held, ev.Action.Key)
			}
		}
	}
	return events
}

func isModifierKey(k key.Key) (key.Modifier, bool) {
	for shift := 0; shift < 8; shift++ {
		mod := key.Modifier(1 << shift)
		if mk, ok := mod.Key(); ok && mk == k {
			return mod, true
		}
	}
	return key.ModifierNone, false
}

// Report builds the current HID report from the held-key set, truncated
// to six keys (boot-protocol rollover limit, §6). Slot order, and which
// keys are kept when more than six are held, is not defined and not
// stable across calls, since map iteration is unordered; the original
// firmware has the same rollover-truncation ambiguity for a 7th
// simultaneous key.
func (r *Reporter) Report() Report {
	rep := Report{Modifiers: r.heldMod}
	i := 0
	for k := range r.held {
		if i >= maxRolloverKeys {
			break
		}
		rep.Keys[i] = k
		i++
	}
	return rep
}

// Flush writes the current report to the device.
func (r *Reporter) Flush(ctx context.Context) error {
	return r.device.WriteReport(ctx, r.Report())
}
