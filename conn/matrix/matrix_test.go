// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package matrix

import (
	"context"
	"testing"
	"time"

	"github.com/kbcore/kbfw/boot"
)

type fakePin struct {
	high bool
}

func (p *fakePin) SetHigh() error        { p.high = true; return nil }
func (p *fakePin) SetLow() error         { p.high = false; return nil }
func (p *fakePin) IsHigh() (bool, error) { return p.high, nil }

type fakeRowPin struct {
	pressed bool
}

func (p *fakeRowPin) SetHigh() error        { return nil }
func (p *fakeRowPin) SetLow() error         { return nil }
func (p *fakeRowPin) IsHigh() (bool, error) { return p.pressed, nil }

type fakeClock struct{ t uint64 }

func (c *fakeClock) NowTicks() uint64 { c.t++; return c.t }
func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) {}

func TestVerticalScanEdgeAndMonotonicTicks(t *testing.T) {
	row := &fakeRowPin{}
	col := &fakePin{}
	clock := &fakeClock{}
	v := NewVertical([]Pin{row}, []Pin{col}, clock)

	r1, err := v.Scan(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if r1.Matrix[0][0].Edge != 0 || r1.Matrix[0][0].Pressed {
		t.Fatalf("expected released/no-edge first scan, got %+v", r1.Matrix[0][0])
	}

	row.pressed = true
	r2, err := v.Scan(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if r2.Matrix[0][0].Edge != 1 /* Rising */ || !r2.Matrix[0][0].Pressed {
		t.Fatalf("expected rising edge pressed, got %+v", r2.Matrix[0][0])
	}
	if r2.ScanTimeTicks <= r1.ScanTimeTicks {
		t.Fatalf("scan_time_ticks must be strictly increasing: %d -> %d", r1.ScanTimeTicks, r2.ScanTimeTicks)
	}

	row.pressed = false
	r3, _ := v.Scan(context.Background())
	if r3.Matrix[0][0].Edge != 2 /* Falling */ || r3.Matrix[0][0].Pressed {
		t.Fatalf("expected falling edge released, got %+v", r3.Matrix[0][0])
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	r := NewResult(5, 7)
	r.ScanTimeTicks = 1234
	r.Matrix[0][0] = Bit{Edge: 1, Pressed: true}
	r.Matrix[4][6] = Bit{Edge: 2, Pressed: false}
	r.Matrix[2][3] = Bit{Edge: 0, Pressed: true}

	packed := r.Pack()
	if len(packed) != 14 {
		t.Fatalf("packed length = %d, want 14", len(packed))
	}

	got, err := Unpack(5, 7, r.ScanTimeTicks, packed)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 7; j++ {
			if got.Matrix[i][j] != r.Matrix[i][j] {
				t.Fatalf("cell (%d,%d) = %+v, want %+v", i, j, got.Matrix[i][j], r.Matrix[i][j])
			}
		}
	}
}

type fakeRemote struct {
	res Result
	err error
}

func (f *fakeRemote) ScanRemote(ctx context.Context) (Result, error) { return f.res, f.err }

type fakeLocal struct{ res Result }

func (f *fakeLocal) Scan(ctx context.Context) (Result, error) { return f.res, nil }

// TestSplitMergeLeftSide checks invariant 8 from spec.md §8: on side
// Left with local [[a,b,c]] and remote [[d,e,f]], the merged row equals
// [a,b,c,f,e,d].
func TestSplitMergeLeftSide(t *testing.T) {
	local := NewResult(1, 3)
	local.Matrix[0] = []Bit{{Pressed: true}, {Pressed: false}, {Pressed: true}} // a,b,c
	remote := NewResult(1, 3)
	remote.Matrix[0] = []Bit{{Pressed: false}, {Pressed: true}, {Pressed: false}} // d,e,f

	s := NewSplit(&fakeLocal{local}, &fakeRemote{res: remote}, boot.SideLeft, 6)
	merged, err := s.Scan(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := []bool{true, false, true, false, true, false} // a,b,c,f,e,d
	for j, w := range want {
		if merged.Matrix[0][j].Pressed != w {
			t.Errorf("col %d = %v, want %v", j, merged.Matrix[0][j].Pressed, w)
		}
	}
}

// TestSplitMergeRightSide checks the mirrored case: on side Right, row
// equals [d,e,f,c,b,a].
func TestSplitMergeRightSide(t *testing.T) {
	local := NewResult(1, 3)
	local.Matrix[0] = []Bit{{Pressed: true}, {Pressed: false}, {Pressed: true}} // a,b,c (this half's own)
	remote := NewResult(1, 3)
	remote.Matrix[0] = []Bit{{Pressed: false}, {Pressed: true}, {Pressed: false}} // d,e,f

	s := NewSplit(&fakeLocal{local}, &fakeRemote{res: remote}, boot.SideRight, 6)
	merged, err := s.Scan(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := []bool{false, true, false, true, false, true} // d,e,f,c,b,a
	for j, w := range want {
		if merged.Matrix[0][j].Pressed != w {
			t.Errorf("col %d = %v, want %v", j, merged.Matrix[0][j].Pressed, w)
		}
	}
}

func TestSplitTimeoutReusesLastRemote(t *testing.T) {
	local := NewResult(1, 3)
	remote := NewResult(1, 3)
	remote.Matrix[0][0] = Bit{Pressed: true}

	s := NewSplit(&fakeLocal{local}, &fakeRemote{res: remote}, boot.SideLeft, 6)
	if _, err := s.Scan(context.Background()); err != nil {
		t.Fatal(err)
	}

	failing := &fakeRemote{err: context.DeadlineExceeded}
	s.Remote = failing
	merged, err := s.Scan(context.Background())
	if err != nil {
		t.Fatalf("split scan must never surface a remote timeout: %v", err)
	}
	// On side Left the remote half is mirrored: remote col 0 lands at
	// merged col 5.
	if !merged.Matrix[0][5].Pressed {
		t.Fatalf("expected last-known remote half to be reused on timeout")
	}
}
