// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package rgb implements the event-driven RGB animation state machine
// (§4.9): a fixed set of animations, an engine that selects among them
// and paces frame production, and a renderer that writes frames to the
// LED strip driver.
package rgb

// RGB is one LED's color. A plain struct (rather than importing
// image/color) keeps the 0-255 channel semantics explicit for brightness
// scaling.
type RGB struct {
	R, G, B uint8
}

// Frame is an ordered sequence of LED_COUNT RGB triples (§3).
type Frame []RGB

// Scale multiplies every channel in f by brightness/255, matching
// smart_leds::brightness's saturating scale used by the teacher's
// original animation renderer.
func (f Frame) Scale(brightness uint8) Frame {
	out := make(Frame, len(f))
	for i, c := range f {
		out[i] = RGB{
			R: scaleChannel(c.R, brightness),
			G: scaleChannel(c.G, brightness),
			B: scaleChannel(c.B, brightness),
		}
	}
	return out
}

func scaleChannel(v, brightness uint8) uint8 {
	return uint8(uint16(v) * uint16(brightness) / 255)
}

// Writer is the out-of-scope LED strip driver collaborator: it takes a
// scaled Frame and pushes it out over the PIO-driven WS2812 serializer.
type Writer interface {
	Write(f Frame) error
}
