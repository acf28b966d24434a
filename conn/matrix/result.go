// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package matrix

import "fmt"

// Result is a snapshot of every cell's pressed state and edge, stamped
// with the monotonic tick count at scan completion (§3). Rows/Cols
// record the runtime dimensions of Matrix; Go has no const generics, so
// unlike the Rust ROW_COUNT/COL_COUNT type parameters these are plain
// fields (spec.md §9's "fixed maxima plus runtime dimensions" note).
type Result struct {
	ScanTimeTicks uint64
	Rows, Cols    int
	Matrix        [][]Bit
}

// NewResult allocates a zeroed Result of the given dimensions.
func NewResult(rows, cols int) Result {
	m := make([][]Bit, rows)
	for i := range m {
		m[i] = make([]Bit, cols)
	}
	return Result{Rows: rows, Cols: cols, Matrix: m}
}

// Clone returns a deep copy, so a stored "previous" result is never
// aliased with the one a caller is about to mutate.
func (r Result) Clone() Result {
	out := NewResult(r.Rows, r.Cols)
	out.ScanTimeTicks = r.ScanTimeTicks
	for i := range r.Matrix {
		copy(out.Matrix[i], r.Matrix[i])
	}
	return out
}

// Pack serializes the matrix into the compact wire form from spec.md §6:
// each cell is three bits (edge_hi edge_lo pressed), concatenated
// row-major and padded to a byte boundary. For a 5x7 matrix this yields
// ceil(5*7*3/8) = 14 bytes.
func (r Result) Pack() []byte {
	out := make([]byte, 0, (r.Rows*r.Cols*3+7)/8)
	var acc uint32
	var bits uint
	for i := 0; i < r.Rows; i++ {
		for j := 0; j < r.Cols; j++ {
			acc = acc<<3 | uint32(r.Matrix[i][j].pack())
			bits += 3
			if bits >= 8 {
				bits -= 8
				out = append(out, byte(acc>>bits))
			}
		}
	}
	if bits > 0 {
		out = append(out, byte(acc<<(8-bits)))
	}
	return out
}

// Unpack decodes a buffer produced by Pack into a Result of the given
// dimensions and timestamp (§6, §8.5 round-trip invariant).
func Unpack(rows, cols int, scanTimeTicks uint64, packed []byte) (Result, error) {
	expected := (rows*cols*3 + 7) / 8
	if len(packed) != expected {
		return Result{}, fmt.Errorf("matrix: packed length %d, want %d", len(packed), expected)
	}
	r := NewResult(rows, cols)
	r.ScanTimeTicks = scanTimeTicks
	var acc uint32
	var bits uint
	idx := 0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			for bits < 3 {
				acc = acc<<8 | uint32(packed[idx])
				idx++
				bits += 8
			}
			r.Matrix[i][j] = unpackBit(byte(acc >> (bits - 3)))
			bits -= 3
		}
	}
	return r, nil
}
