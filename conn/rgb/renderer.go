// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rgb

import "context"

// FrameReceiver is the consuming half of the channel the Engine
// publishes to.
type FrameReceiver interface {
	Recv(ctx context.Context) (Frame, bool)
}

// Renderer pulls frames off the channel and hands them to the strip
// driver. It is its own task (§5): a tight loop with no polling period
// of its own, blocking on Recv until a frame or cancellation arrives.
type Renderer struct {
	recv   FrameReceiver
	writer Writer
}

// NewRenderer constructs a Renderer over a receiver and the strip
// driver collaborator.
func NewRenderer(recv FrameReceiver, writer Writer) *Renderer {
	return &Renderer{recv: recv, writer: writer}
}

// Run blocks until ctx is done, writing every frame it receives. A
// write error is not fatal: a single bad frame must not kill the
// render loop, so the error is swallowed here and left to the writer's
// own diagnostics.
func (r *Renderer) Run(ctx context.Context) {
	for {
		frame, ok := r.recv.Recv(ctx)
		if !ok {
			return
		}
		_ = r.writer.Write(frame)
	}
}
