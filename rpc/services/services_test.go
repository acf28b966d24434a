// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbcore/kbfw/conn/key"
	"github.com/kbcore/kbfw/conn/matrix"
	"github.com/kbcore/kbfw/rpc"
)

type fakeScanner struct {
	result matrix.Result
}

func (f fakeScanner) Scan(ctx context.Context) (matrix.Result, error) { return f.result, nil }

func TestKeyMatrixServiceRoundTripsViaRemoteScanner(t *testing.T) {
	result := matrix.NewResult(2, 3)
	result.Matrix[0][0] = matrix.Bit{Edge: key.EdgeRising, Pressed: true}
	result.ScanTimeTicks = 42

	svc := NewKeyMatrixService(fakeScanner{result: result})

	payload, err := svc.Dispatch(context.Background(), MethodIDKeyMatrixScan, nil)
	require.NoError(t, err)

	var resp scanResponse
	require.NoError(t, rpc.Decode(payload, &resp))

	got, err := matrix.Unpack(resp.Rows, resp.Cols, resp.ScanTimeTicks, resp.Packed)
	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestKeyMatrixServiceRejectsUnknownMethod(t *testing.T) {
	svc := NewKeyMatrixService(fakeScanner{result: matrix.NewResult(1, 1)})
	_, err := svc.Dispatch(context.Background(), 0xFE, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rpc.ErrMethodUnimplemented),
		"unknown method must report rpc.ErrMethodUnimplemented so the server answers StatusMethodUnimplemented")
}

func TestServiceIDAndMethodIDMatchWireContract(t *testing.T) {
	assert.Equal(t, rpc.ServiceID(0x10), ServiceIDKeyMatrix)
	assert.Equal(t, rpc.MethodID(0x11), MethodIDKeyMatrixScan)
}
