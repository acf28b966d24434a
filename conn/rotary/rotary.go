// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package rotary decodes a quadrature rotary encoder's two phase pins A/B
// into a direction and edge per poll (§4.6). The encoder's push switch is
// not read by this package.
package rotary

import "github.com/kbcore/kbfw/conn/key"

// Direction is the decoded step direction for one poll.
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionClockwise
	DirectionCounterClockwise
)

// DentMode controls how many quadrature edges make up one reported step.
type DentMode uint8

const (
	// DentHighPrecision counts every quadrature edge.
	DentHighPrecision DentMode = iota
	// DentLowPrecision counts one full mechanical detent (4 edges).
	DentLowPrecision
)

// Result is the rotary's latest direction, edge and timestamp, bundled
// with a MatrixResult to form processor.Input (§3).
type Result struct {
	ScanTimeTicks uint64
	Direction     Direction
	Edge          key.Edge
}

// Pin reads a single digital line (A or B).
type Pin interface {
	IsHigh() (bool, error)
}

// quadratureStep maps (prevA,prevB,a,b) packed as a 4-bit index to a
// direction delta in {-1,0,+1}, the standard Gray-code transition table.
var quadratureStep = [16]int{
	0: 0, 1: -1, 2: 1, 3: 0,
	4: 1, 5: 0, 6: 0, 7: -1,
	8: -1, 9: 0, 10: 0, 11: 1,
	12: 0, 13: 1, 14: -1, 15: 0,
}

// Encoder is a stateful quadrature decoder.
type Encoder struct {
	A, B  Pin
	Clock interface{ NowTicks() uint64 }
	Mode  DentMode

	prevA, prevB bool
	subCount     int
	wasStepping  bool
}

// NewEncoder constructs a decoder over pins a/b in the given dent mode.
func NewEncoder(a, b Pin, clock interface{ NowTicks() uint64 }, mode DentMode) *Encoder {
	return &Encoder{A: a, B: b, Clock: clock, Mode: mode}
}

// Scan decodes the current (a, b) pair against the previous one and
// returns the resulting direction and edge for this poll (§4.6). It is
// synchronous, unlike matrix.Scanner.Scan.
func (e *Encoder) Scan() (Result, error) {
	a, err := e.A.IsHigh()
	if err != nil {
		return Result{}, err
	}
	b, err := e.B.IsHigh()
	if err != nil {
		return Result{}, err
	}

	idx := boolBit(e.prevA)<<3 | boolBit(e.prevB)<<2 | boolBit(a)<<1 | boolBit(b)
	step := quadratureStep[idx]
	e.prevA, e.prevB = a, b

	threshold := 1
	if e.Mode == DentLowPrecision {
		threshold = 4
	}

	direction := DirectionNone
	if step != 0 {
		e.subCount += step
		if e.subCount >= threshold {
			direction = DirectionClockwise
			e.subCount -= threshold
		} else if e.subCount <= -threshold {
			direction = DirectionCounterClockwise
			e.subCount += threshold
		}
	}

	stepping := direction != DirectionNone
	edge := key.EdgeNone
	switch {
	case stepping && !e.wasStepping:
		edge = key.EdgeRising
	case !stepping && e.wasStepping:
		edge = key.EdgeFalling
	}
	e.wasStepping = stepping

	return Result{
		ScanTimeTicks: e.Clock.NowTicks(),
		Direction:     direction,
		Edge:          edge,
	}, nil
}

func boolBit(b bool) int {
	if b {
		return 1
	}
	return 0
}
