// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rgb

// Animation produces successive frames. Each animation owns its own
// tick counter t and phase n, both wrapping on overflow (§4.9).
type Animation interface {
	Next() Frame
}

type animState struct {
	t     uint64
	n     uint8
	frame Frame
}

func newAnimState(ledCount int) animState {
	return animState{frame: make(Frame, ledCount)}
}

func (s *animState) step() {
	s.t++ // wraps on overflow per Go's unsigned-int semantics
	s.n++
}

// None turns every LED off.
type None struct {
	state animState
}

// NewNone constructs the all-off animation.
func NewNone(ledCount int) *None { return &None{state: newAnimState(ledCount)} }

// Next implements Animation.
func (a *None) Next() Frame {
	for i := range a.state.frame {
		a.state.frame[i] = RGB{}
	}
	return a.state.frame
}

// Scan lights a single cell that sweeps across the strip.
type Scan struct {
	state animState
}

// NewScan constructs the sweeping single-LED animation.
func NewScan(ledCount int) *Scan { return &Scan{state: newAnimState(ledCount)} }

// Next implements Animation.
func (a *Scan) Next() Frame {
	a.state.step()
	lit := int(a.state.t) % len(a.state.frame)
	for i := range a.state.frame {
		if i == lit {
			a.state.frame[i] = RGB{255, 255, 255}
		} else {
			a.state.frame[i] = RGB{}
		}
	}
	return a.state.frame
}

// Breathe pulses global brightness sinusoidally (approximated with a
// triangle wave, matching the teacher's integer-only breathe curve).
type Breathe struct {
	state animState
}

// NewBreathe constructs the breathing animation.
func NewBreathe(ledCount int) *Breathe { return &Breathe{state: newAnimState(ledCount)} }

func breatheCurve(t uint8) RGB {
	var v uint8
	if t < 128 {
		v = t * 2
	} else {
		v = (255 - t) * 2
	}
	return RGB{v, v, v}
}

// Next implements Animation.
func (a *Breathe) Next() Frame {
	a.state.step()
	c := breatheCurve(a.state.n)
	for i := range a.state.frame {
		a.state.frame[i] = c
	}
	return a.state.frame
}

// Wheel rotates an HSV hue wheel across the strip.
type Wheel struct {
	state animState
}

// NewWheel constructs the hue-rotation animation.
func NewWheel(ledCount int) *Wheel { return &Wheel{state: newAnimState(ledCount)} }

func wheelColor(rot uint8) RGB {
	switch {
	case rot < 85:
		return RGB{0, 255 - rot*3, rot * 3}
	case rot < 170:
		rot -= 85
		return RGB{rot * 3, 0, 255 - rot*3}
	default:
		rot -= 170
		return RGB{255 - rot*3, rot * 3, 0}
	}
}

// Next implements Animation.
func (a *Wheel) Next() Frame {
	a.state.step()
	n := len(a.state.frame)
	for i := range a.state.frame {
		phase := a.state.n + uint8(i*255/n)
		a.state.frame[i] = wheelColor(phase)
	}
	return a.state.frame
}
