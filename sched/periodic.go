// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sched

import (
	"context"
	"time"
)

// PeriodicTask runs fn on a self-correcting period: each iteration's
// deadline is computed from the previous deadline rather than from
// time.Now after fn returns, so a slow iteration does not accumulate
// drift across the run (mirrors the original firmware's delayUntil-based
// scan loops rather than a plain time.Sleep between iterations).
type PeriodicTask struct {
	Period time.Duration
	Fn     func(ctx context.Context) error
}

// Run blocks until ctx is done or Fn returns an error, which it
// propagates to the caller (typically an errgroup.Group).
func (t PeriodicTask) Run(ctx context.Context) error {
	deadline := time.Now().Add(t.Period)
	for {
		if err := t.Fn(ctx); err != nil {
			return err
		}

		sleep := time.Until(deadline)
		if sleep > 0 {
			timer := time.NewTimer(sleep)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil
			case <-timer.C:
			}
		}
		deadline = deadline.Add(t.Period)

		// A sufficiently long stall (debugger halt, GC pause) can push
		// the deadline into the past by more than one period; resync
		// rather than spin through a burst of immediate iterations.
		if now := time.Now(); deadline.Before(now) {
			deadline = now.Add(t.Period)
		}
	}
}
