// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package clock provides the monotonic tick source conn/matrix.Clock
// and conn/rotary's encoder need. On the original RP2040 firmware this
// was a hardware timer's microsecond counter; here it is the Go
// runtime's monotonic clock, exposed as microsecond ticks so wire
// timestamps keep the same units.
package clock

import (
	"context"
	"time"
)

// Monotonic implements conn/matrix.Clock, wrapping time.Now's monotonic
// reading as a microsecond tick counter anchored at construction.
type Monotonic struct {
	epoch time.Time
}

// New constructs a Monotonic clock anchored to the current instant.
func New() *Monotonic {
	return &Monotonic{epoch: time.Now()}
}

// NowTicks returns microseconds elapsed since the clock was
// constructed.
func (m *Monotonic) NowTicks() uint64 {
	return uint64(time.Since(m.epoch).Microseconds())
}

// Sleep blocks for d or until ctx is done, whichever comes first.
func (m *Monotonic) Sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
