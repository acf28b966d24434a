// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rgb

import (
	"time"

	"github.com/kbcore/kbfw/conn/key"
	"github.com/kbcore/kbfw/processor"
)

const (
	FrameTimeMinMicros     = 1_000
	FrameTimeDefaultMicros = 20_000
	FrameTimeMaxMicros     = 1_000_000

	defaultBrightness = 255
)

// FrameSender is the bounded try-send sink the engine publishes frames
// to; production code binds this to a sched.TryChannel[Frame] (§4.1/5).
type FrameSender interface {
	TrySend(Frame) bool
}

// Now abstracts wall-clock time so engine pacing is deterministically
// testable.
type Now func() time.Time

// Engine is the event-consuming animation state machine (§4.9). It
// implements processor.EventsProcessor: events pass through unchanged,
// it only observes them to drive animation selection and speed.
type Engine struct {
	animations []Animation
	index      int

	frameTimeMicros int64
	brightness      uint8
	lastRender      time.Time

	sender FrameSender
	now    Now
}

// NewEngine constructs the engine with the fixed four-animation set from
// spec.md §4.9, in the order Wheel, Breathe, Scan, None.
func NewEngine(ledCount int, sender FrameSender, now Now) *Engine {
	return &Engine{
		animations:      []Animation{NewWheel(ledCount), NewBreathe(ledCount), NewScan(ledCount), NewNone(ledCount)},
		frameTimeMicros: FrameTimeDefaultMicros,
		brightness:      defaultBrightness,
		sender:          sender,
		now:             now,
	}
}

// Process implements processor.EventsProcessor (§4.9 processing
// contract): Rising Control events mutate engine state; if the frame
// period has elapsed, the engine advances the current animation, scales
// it by brightness, and try-sends it (dropping on a full channel, per
// the system's core back-pressure policy).
func (e *Engine) Process(events []processor.Event) []processor.Event {
	for _, ev := range events {
		if ev.Edge != key.EdgeRising || ev.Action.Kind != key.ActionControl {
			continue
		}
		switch ev.Action.Control {
		case key.ControlRGBAnimationNext:
			e.index = (e.index + 1) % len(e.animations)
		case key.ControlRGBAnimationPrevious:
			e.index = (e.index - 1 + len(e.animations)) % len(e.animations)
		case key.ControlRGBSpeedUp:
			e.frameTimeMicros = max64(e.frameTimeMicros/2, FrameTimeMinMicros)
		case key.ControlRGBSpeedDown:
			e.frameTimeMicros = min64(e.frameTimeMicros*2, FrameTimeMaxMicros)
		case key.ControlRGBBrightnessUp:
			e.brightness = saturatingAdd(e.brightness, 16)
		case key.ControlRGBBrightnessDown:
			e.brightness = saturatingSub(e.brightness, 16)
		}
	}

	now := e.now()
	if now.Sub(e.lastRender) >= time.Duration(e.frameTimeMicros)*time.Microsecond {
		frame := e.animations[e.index].Next().Scale(e.brightness)
		e.sender.TrySend(frame)
		e.lastRender = now
	}

	return events
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func saturatingAdd(v, delta uint8) uint8 {
	if int(v)+int(delta) > 255 {
		return 255
	}
	return v + delta
}

func saturatingSub(v, delta uint8) uint8 {
	if int(v)-int(delta) < 0 {
		return 0
	}
	return v - delta
}
