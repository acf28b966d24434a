// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rgb

import (
	"testing"
	"time"

	"github.com/kbcore/kbfw/conn/key"
	"github.com/kbcore/kbfw/processor"
)

type fakeSender struct {
	frames []Frame
}

func (s *fakeSender) TrySend(f Frame) bool {
	s.frames = append(s.frames, f)
	return true
}

func controlEvent(c key.Control) processor.Event {
	return processor.Event{Edge: key.EdgeRising, Action: key.OfControl(c)}
}

func TestEngineAdvancesAnimationOnCycleControl(t *testing.T) {
	sender := &fakeSender{}
	tick := time.Unix(0, 0)
	now := func() time.Time { return tick }
	e := NewEngine(3, sender, now)

	if e.index != 0 {
		t.Fatalf("initial index = %d, want 0", e.index)
	}
	e.Process([]processor.Event{controlEvent(key.ControlRGBAnimationNext)})
	if e.index != 1 {
		t.Fatalf("index after next = %d, want 1", e.index)
	}
	e.Process([]processor.Event{controlEvent(key.ControlRGBAnimationPrevious)})
	if e.index != 0 {
		t.Fatalf("index after previous = %d, want 0", e.index)
	}
}

func TestEngineBrightnessSaturates(t *testing.T) {
	sender := &fakeSender{}
	now := func() time.Time { return time.Unix(0, 0) }
	e := NewEngine(1, sender, now)
	e.brightness = 250

	e.Process([]processor.Event{controlEvent(key.ControlRGBBrightnessUp)})
	if e.brightness != 255 {
		t.Fatalf("brightness = %d, want saturated 255", e.brightness)
	}

	e.brightness = 5
	e.Process([]processor.Event{controlEvent(key.ControlRGBBrightnessDown)})
	if e.brightness != 0 {
		t.Fatalf("brightness = %d, want saturated 0", e.brightness)
	}
}

func TestEngineSpeedBounds(t *testing.T) {
	sender := &fakeSender{}
	now := func() time.Time { return time.Unix(0, 0) }
	e := NewEngine(1, sender, now)

	e.frameTimeMicros = FrameTimeMinMicros
	e.Process([]processor.Event{controlEvent(key.ControlRGBSpeedUp)})
	if e.frameTimeMicros != FrameTimeMinMicros {
		t.Fatalf("frameTimeMicros = %d, want floor %d", e.frameTimeMicros, FrameTimeMinMicros)
	}

	e.frameTimeMicros = FrameTimeMaxMicros
	e.Process([]processor.Event{controlEvent(key.ControlRGBSpeedDown)})
	if e.frameTimeMicros != FrameTimeMaxMicros {
		t.Fatalf("frameTimeMicros = %d, want ceiling %d", e.frameTimeMicros, FrameTimeMaxMicros)
	}
}

func TestEnginePacesFrameProduction(t *testing.T) {
	sender := &fakeSender{}
	tick := time.Unix(0, 0)
	now := func() time.Time { return tick }
	e := NewEngine(2, sender, now)
	e.frameTimeMicros = 1000

	e.Process(nil)
	if len(sender.frames) != 1 {
		t.Fatalf("expected one frame at t0, got %d", len(sender.frames))
	}

	e.Process(nil)
	if len(sender.frames) != 1 {
		t.Fatalf("expected no new frame before frame period elapses, got %d", len(sender.frames))
	}

	tick = tick.Add(2 * time.Millisecond)
	e.Process(nil)
	if len(sender.frames) != 2 {
		t.Fatalf("expected a new frame once the period elapsed, got %d", len(sender.frames))
	}
}
