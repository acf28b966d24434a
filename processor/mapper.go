// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package processor

import (
	"github.com/kbcore/kbfw/conn/key"
	"github.com/kbcore/kbfw/conn/matrix"
	"github.com/kbcore/kbfw/conn/rotary"
	"github.com/kbcore/kbfw/internal/config"
)

// Event is the unit the rest of the pipeline (RGB engine, HID key
// extraction) consumes (§3).
type Event struct {
	TimeTicks uint64
	I, J      int
	Edge      key.Edge
	Action    key.Action
}

// EventsProcessor consumes and may replace the event slice for a single
// poll. The RGB engine implements this interface; events pass through
// unchanged unless a processor explicitly replaces the slice.
type EventsProcessor interface {
	Process(events []Event) []Event
}

// Input bundles a key matrix scan result and the rotary encoder's latest
// result for one poll (§3).
type Input struct {
	KeyMatrixResult matrix.Result
	RotaryResult    rotary.Result
}

// InputMap is the immutable, compile-time keymap: one Action per
// (layer, row, col) cell, plus one Action per (layer, direction) for the
// rotary encoder (§3). It never changes after construction.
type InputMap struct {
	KeyMatrix     [][][]key.Action // [layer][row][col]
	RotaryEncoder [][3]key.Action  // [layer][direction], indexed by rotary.Direction
}

// Mapper resolves a per-poll Input into the Event stream, per the
// layer-resolution algorithm in spec.md §4.5.
type Mapper struct {
	mapping InputMap
}

// NewMapper constructs a Mapper over an immutable keymap.
func NewMapper(mapping InputMap) *Mapper {
	return &Mapper{mapping: mapping}
}

// Map resolves input into events, reusing buf's backing array when it
// has enough capacity (§3 "pre-reserved capacity", no steady-state
// allocation).
func (m *Mapper) Map(input Input, buf []Event) []Event {
	events := buf[:0]
	if cap(events) == 0 {
		events = make([]Event, 0, config.EventCapacity)
	}

	layer := key.Base
	result := input.KeyMatrixResult
	restart := true
	for restart {
		restart = false
		events = events[:0]
		for i := 0; i < result.Rows; i++ {
			for j := 0; j < result.Cols; j++ {
				bit := result.Matrix[i][j]
				action := m.mapping.KeyMatrix[layer][i][j]

				if bit.Pressed && action.Kind == key.ActionLayerModifier && action.Layer > layer {
					layer = action.Layer
					restart = true
					break
				}

				if bit.Edge == key.EdgeNone && !bit.Pressed {
					continue
				}

				if action.Kind == key.ActionModifiedKey {
					for _, mb := range action.ModifiedKey.Modifiers().Bits() {
						if mk, ok := mb.Key(); ok {
							events = append(events, Event{
								TimeTicks: result.ScanTimeTicks,
								I:         i, J: j,
								Edge:   bit.Edge,
								Action: key.OfKey(mk),
							})
						}
					}
					events = append(events, Event{
						TimeTicks: result.ScanTimeTicks,
						I:         i, J: j,
						Edge:   bit.Edge,
						Action: key.OfKey(action.ModifiedKey.Key()),
					})
					continue
				}

				events = append(events, Event{
					TimeTicks: result.ScanTimeTicks,
					I:         i, J: j,
					Edge:   bit.Edge,
					Action: action,
				})
			}
			if restart {
				break
			}
		}
	}

	rr := input.RotaryResult
	if !(rr.Edge == key.EdgeNone && rr.Direction == rotary.DirectionNone) {
		events = append(events, Event{
			TimeTicks: rr.ScanTimeTicks,
			Edge:      rr.Edge,
			Action:    m.mapping.RotaryEncoder[layer][rr.Direction],
		})
	}

	return events
}
