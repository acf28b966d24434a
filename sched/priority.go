// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package sched provides the concurrency primitives the firmware's task
// graph is built from: a bounded single-slot channel with lossy
// back-pressure, a mutex-guarded arbiter for shared resources, and a
// self-correcting periodic task runner. Go has no fixed task priorities
// the way the original RTIC scheduler did; Priority below is carried
// purely as documentation so each task's relative urgency survives the
// port; no task is tagged with a Priority and no scheduling hint is
// derived from it.
package sched

// Priority documents a task's relative urgency, mirroring the RTIC
// #[task(priority = N)] declarations this system was ported from. Go's
// scheduler is cooperative and has no equivalent mechanism; tasks run
// as ordinary goroutines regardless of Priority. The constant exists so
// cmd/* can state, and tests can assert, the intended ordering.
type Priority uint8

const (
	// PriorityIdle is the HID/metrics background work: lowest urgency.
	PriorityIdle Priority = iota
	// PriorityInput is matrix/rotary scanning and debouncing.
	PriorityInput
	// PriorityMapping is layer resolution and event generation.
	PriorityMapping
	// PriorityRPC is the split-link transport and service dispatch.
	PriorityRPC
	// PriorityRender is RGB frame pacing and strip output.
	PriorityRender
)

func (p Priority) String() string {
	switch p {
	case PriorityIdle:
		return "Idle"
	case PriorityInput:
		return "Input"
	case PriorityMapping:
		return "Mapping"
	case PriorityRPC:
		return "RPC"
	case PriorityRender:
		return "Render"
	default:
		return "Unknown"
	}
}
