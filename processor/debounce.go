// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package processor turns a debounced MatrixResult into the Event stream
// the rest of the firmware consumes: per-cell edge suppression (§4.4)
// and layer-aware action resolution (§4.5).
package processor

import (
	"github.com/kbcore/kbfw/conn/key"
	"github.com/kbcore/kbfw/conn/matrix"
	"github.com/kbcore/kbfw/internal/config"
)

type cellState struct {
	lastTransitionTicks uint64
	stablePressed       bool
	transitioned        bool
}

// Debouncer suppresses spurious edges within a configurable window per
// cell (§4.4). It mutates the MatrixResult passed to Process in place.
type Debouncer struct {
	window uint64 // in the same tick units as ScanTimeTicks
	cells  [][]cellState
}

// NewDebouncer constructs a debouncer for an rows x cols matrix with the
// given window expressed in ticks (callers typically derive this from
// config.DebounceWindow and their tick-per-second rate).
func NewDebouncer(rows, cols int, windowTicks uint64) *Debouncer {
	cells := make([][]cellState, rows)
	for i := range cells {
		cells[i] = make([]cellState, cols)
	}
	return &Debouncer{window: windowTicks, cells: cells}
}

// DefaultWindowTicks converts config.DebounceWindow into tick units given
// ticksPerSecond, the scanner's monotonic clock rate.
func DefaultWindowTicks(ticksPerSecond uint64) uint64 {
	return uint64(config.DebounceWindow.Seconds() * float64(ticksPerSecond))
}

// Process applies the debounce rule to every cell of r in place (§4.4):
// transitions within the window are suppressed (edge forced to None,
// pressed forced to the last stable value); transitions outside the
// window are accepted and become the new stable state. A cell that has
// not yet accepted a transition has no window. Running Process
// twice on the same sequence yields the same output (§8 invariant 4),
// since an already-suppressed edge is already None and therefore never
// re-accepted.
func (d *Debouncer) Process(r *matrix.Result) {
	for i := 0; i < r.Rows; i++ {
		for j := 0; j < r.Cols; j++ {
			bit := &r.Matrix[i][j]
			cell := &d.cells[i][j]
			elapsed := r.ScanTimeTicks - cell.lastTransitionTicks
			if cell.transitioned && elapsed <= d.window {
				bit.Edge = key.EdgeNone
				bit.Pressed = cell.stablePressed
				continue
			}
			if bit.Edge == key.EdgeRising || bit.Edge == key.EdgeFalling {
				cell.lastTransitionTicks = r.ScanTimeTicks
				cell.stablePressed = bit.Pressed
				cell.transitioned = true
			}
		}
	}
}
