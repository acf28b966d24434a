// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package transport

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kbcore/kbfw/internal/config"
	"github.com/kbcore/kbfw/rpc"
)

func TestFrameEncodeDecodeRoundTrip(t *testing.T) {
	body := []byte{0x01, config.FrameStart, config.FrameEnd, config.FrameEscape, 0xFF}
	encoded := Encode(body)

	require.Equal(t, byte(config.FrameStart), encoded[0])
	require.Equal(t, byte(config.FrameEnd), encoded[len(encoded)-1])

	decoded, err := Decode(encoded[1 : len(encoded)-1])
	require.NoError(t, err)
	assert.Equal(t, body, decoded)
}

func TestDecodeRejectsBadCRC(t *testing.T) {
	encoded := Encode([]byte{0x01, 0x02})
	inner := encoded[1 : len(encoded)-1]
	inner[len(inner)-1] ^= 0xFF // corrupt the CRC byte

	_, err := Decode(inner)
	assert.Error(t, err)
}

// pipeRW is a synchronous in-memory io.ReadWriter pair used to drive
// two Links against each other without a real UART.
type pipeRW struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (p *pipeRW) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.buf.Write(b)
}

func (p *pipeRW) Read(b []byte) (int, error) {
	for {
		p.mu.Lock()
		n, err := p.buf.Read(b)
		p.mu.Unlock()
		if n > 0 || err != nil && err != io.EOF {
			return n, err
		}
		time.Sleep(time.Millisecond)
	}
}

func TestLinkRoundTripsRequestAndResponse(t *testing.T) {
	rw := &pipeRW{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	link := NewLink(ctx, rw, zap.NewNop())

	req := rpc.Request{Sequence: 3, ServiceID: 0x10, MethodID: 0x11, Payload: []byte{1, 2, 3}}
	require.NoError(t, link.SendRequest(req))

	got, ok := link.RecvRequest(ctx)
	require.True(t, ok)
	assert.Equal(t, req, got)

	resp := rpc.Response{Sequence: 3, Status: rpc.StatusOK, Payload: []byte{9}}
	require.NoError(t, link.SendResponse(resp))

	gotResp, ok := link.RecvResponse(ctx)
	require.True(t, ok)
	assert.Equal(t, resp, gotResp)
}
