// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package transport

import "context"

// ring is a fixed-capacity FIFO of decoded frame bodies, backed by a
// buffered channel. Under overrun it drops the oldest entry rather than
// the newest: a stale frame is worse than losing one, since the sender
// is already moving on to its next poll tick (§4.8 back-pressure
// policy; the input channels in package sched instead drop the new
// value when full).
type ring struct {
	ch chan []byte
}

func newRing(capacity int) *ring {
	return &ring{ch: make(chan []byte, capacity)}
}

func (r *ring) push(frame []byte) {
	for {
		select {
		case r.ch <- frame:
			return
		default:
		}
		select {
		case <-r.ch:
		default:
		}
	}
}

// pop blocks until a frame is available or ctx is done.
func (r *ring) pop(ctx context.Context) ([]byte, bool) {
	select {
	case frame := <-r.ch:
		return frame, true
	case <-ctx.Done():
		return nil, false
	}
}
