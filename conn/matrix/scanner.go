// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package matrix

import (
	"context"
	"time"

	"github.com/kbcore/kbfw/conn/key"
)

// Clock abstracts the monotonic tick source and the settle-time delay so
// scanners are deterministically testable without real hardware timing.
// Production code binds NowTicks to a monotonic tick counter (e.g. a hardware
// timer's microsecond count) and Sleep to a real delay.
type Clock interface {
	NowTicks() uint64
	Sleep(ctx context.Context, d time.Duration)
}

// SettleDelay is the minimum time a driven line is held before it is
// sampled, per spec.md §4.2 step 1 ("yield for >=1us to let the hardware
// settle").
const SettleDelay = time.Microsecond

// Scanner produces exactly one Result per Scan call and is monotonic in
// ScanTimeTicks (§4.2 contract, §8 invariant 2).
type Scanner interface {
	Scan(ctx context.Context) (Result, error)
}

// Vertical drives columns as outputs and samples rows as inputs.
type Vertical struct {
	Rows, Cols []Pin
	Clock      Clock

	previous Result
}

// NewVertical constructs a scanner over the given row/column pins. The
// scanner owns these pins exclusively for its lifetime (§3 ownership).
func NewVertical(rows, cols []Pin, clock Clock) *Vertical {
	return &Vertical{Rows: rows, Cols: cols, Clock: clock, previous: NewResult(len(rows), len(cols))}
}

// Scan implements Scanner. Peripheral bus errors are returned, not
// swallowed — per §7 they are fatal and the caller is expected to panic,
// since they indicate a hardware wiring fault rather than a recoverable
// condition.
func (v *Vertical) Scan(ctx context.Context) (Result, error) {
	result := NewResult(len(v.Rows), len(v.Cols))
	for j, col := range v.Cols {
		if err := col.SetHigh(); err != nil {
			return Result{}, err
		}
		for i, row := range v.Rows {
			pressed, err := row.IsHigh()
			if err != nil {
				return Result{}, err
			}
			result.Matrix[i][j] = Bit{
				Edge:    key.EdgeFrom(v.previous.Matrix[i][j].Pressed, pressed),
				Pressed: pressed,
			}
		}
		if err := col.SetLow(); err != nil {
			return Result{}, err
		}
		v.Clock.Sleep(ctx, SettleDelay)
	}
	result.ScanTimeTicks = v.Clock.NowTicks()
	v.previous = result
	return result, nil
}

// Horizontal drives rows as outputs and samples columns as inputs — the
// mirror image of Vertical (§4.2).
type Horizontal struct {
	Rows, Cols []Pin
	Clock      Clock

	previous Result
}

// NewHorizontal constructs a scanner over the given row/column pins.
func NewHorizontal(rows, cols []Pin, clock Clock) *Horizontal {
	return &Horizontal{Rows: rows, Cols: cols, Clock: clock, previous: NewResult(len(rows), len(cols))}
}

// Scan implements Scanner.
func (h *Horizontal) Scan(ctx context.Context) (Result, error) {
	result := NewResult(len(h.Rows), len(h.Cols))
	for i, row := range h.Rows {
		if err := row.SetHigh(); err != nil {
			return Result{}, err
		}
		for j, col := range h.Cols {
			pressed, err := col.IsHigh()
			if err != nil {
				return Result{}, err
			}
			result.Matrix[i][j] = Bit{
				Edge:    key.EdgeFrom(h.previous.Matrix[i][j].Pressed, pressed),
				Pressed: pressed,
			}
		}
		if err := row.SetLow(); err != nil {
			return Result{}, err
		}
		h.Clock.Sleep(ctx, SettleDelay)
	}
	result.ScanTimeTicks = h.Clock.NowTicks()
	h.previous = result
	return result, nil
}
