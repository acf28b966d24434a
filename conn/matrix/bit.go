// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package matrix drives a key switch matrix: output columns (or rows),
// sampled input rows (or columns), and produces a per-cell edge+pressed
// snapshot stamped with a monotonic tick. It also implements the
// split-keyboard half-matrix merge (§4.3) and the compact wire packing
// used to carry a remote scan result over the RPC link (§6).
package matrix

import "github.com/kbcore/kbfw/conn/key"

// Bit is one cell's instantaneous state: whether it is pressed, and its
// edge relative to the previous scan. The invariant
// edge == EdgeFrom(previous.Pressed, Pressed) holds by construction —
// see Edge in conn/key and the Scanner implementations below.
type Bit struct {
	Edge    key.Edge
	Pressed bool
}

// pack encodes a Bit into the three-bit (edge_hi edge_lo pressed) form
// used by the wire format in spec.md §6.
func (b Bit) pack() byte {
	return byte(b.Edge)<<1 | boolBit(b.Pressed)
}

func unpackBit(v byte) Bit {
	edge := key.Edge((v >> 1) & 0b11)
	if edge > key.EdgeFalling {
		edge = key.EdgeNone
	}
	return Bit{Edge: edge, Pressed: v&1 != 0}
}

func boolBit(b bool) byte {
	if b {
		return 1
	}
	return 0
}
