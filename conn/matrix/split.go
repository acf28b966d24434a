// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package matrix

import (
	"context"

	"github.com/kbcore/kbfw/boot"
)

// RemoteScanner is the subset of the RPC client the split scanner needs:
// invoke the slave's key-matrix scan service and get back its local
// result. Defined here (rather than imported from rpc) to keep matrix
// free of a dependency on the RPC package; rpc/services binds the two.
type RemoteScanner interface {
	ScanRemote(ctx context.Context) (Result, error)
}

// Split wraps a local half-matrix of dimension rows x (cols/2) and an
// RPC client, and is invoked only by the master half (§4.3). On remote
// failure it falls back to the last-known remote half so local keys stay
// responsive — it never blocks indefinitely.
type Split struct {
	Local  Scanner
	Remote RemoteScanner
	Side   boot.Side
	Cols   int // total merged column count; must be even

	lastRemote Result
}

// NewSplit constructs a split scanner. cols is the full merged column
// count (local half has cols/2 columns).
func NewSplit(local Scanner, remote RemoteScanner, side boot.Side, cols int) *Split {
	return &Split{Local: local, Remote: remote, Side: side, Cols: cols}
}

// Scan concurrently awaits the local half-scan and the remote RPC scan,
// then merges them using column-mirrored assignment on the right half
// (§4.3, §8 invariant 8). The local scan_time_ticks is used as the
// merged timestamp; the remote bit edges are authoritative and are never
// recomputed.
func (s *Split) Scan(ctx context.Context) (Result, error) {
	type localOut struct {
		res Result
		err error
	}
	type remoteOut struct {
		res Result
		err error
	}
	localCh := make(chan localOut, 1)
	remoteCh := make(chan remoteOut, 1)

	go func() {
		r, err := s.Local.Scan(ctx)
		localCh <- localOut{r, err}
	}()
	go func() {
		r, err := s.Remote.ScanRemote(ctx)
		remoteCh <- remoteOut{r, err}
	}()

	lOut := <-localCh
	if lOut.err != nil {
		return Result{}, lOut.err
	}
	rOut := <-remoteCh
	remote := rOut.res
	if rOut.err != nil {
		// Timeout or link error: reuse the last-known remote half so
		// local keys remain responsive (§4.3 failure model, §7).
		remote = s.lastRemote
	} else {
		s.lastRemote = remote
	}

	halfCols := s.Cols / 2
	merged := NewResult(lOut.res.Rows, s.Cols)
	var left, right Result
	switch s.Side {
	case boot.SideLeft:
		left, right = lOut.res, remote
	default:
		left, right = remote, lOut.res
	}
	for i := 0; i < merged.Rows; i++ {
		for j := 0; j < halfCols; j++ {
			merged.Matrix[i][j] = at(left, i, j)
			merged.Matrix[i][s.Cols-1-j] = at(right, i, j)
		}
	}
	merged.ScanTimeTicks = lOut.res.ScanTimeTicks
	return merged, nil
}

// at returns the cell at (i, j), or a zero Bit if r has no data there
// (the boot-time zero-filled remote half, §3).
func at(r Result, i, j int) Bit {
	if i >= r.Rows || j >= r.Cols {
		return Bit{}
	}
	return r.Matrix[i][j]
}
