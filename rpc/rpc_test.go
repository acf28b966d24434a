// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// loopback wires a Client directly to a Server in-process: SendRequest
// dispatches synchronously through the Registry and pushes the
// Response onto a channel Run drains, standing in for the framed link.
type loopback struct {
	registry  *Registry
	responses chan Response
}

func newLoopback(registry *Registry) *loopback {
	return &loopback{registry: registry, responses: make(chan Response, 4)}
}

func (l *loopback) SendRequest(req Request) error {
	svc, ok := l.registry.Lookup(req.ServiceID)
	if !ok {
		l.responses <- Response{Sequence: req.Sequence, Status: StatusMethodUnimplemented}
		return nil
	}
	payload, err := svc.Dispatch(context.Background(), req.MethodID, req.Payload)
	if err != nil {
		status := StatusSerializationFailed
		if errors.Is(err, ErrMethodUnimplemented) {
			status = StatusMethodUnimplemented
		}
		l.responses <- Response{Sequence: req.Sequence, Status: status}
		return nil
	}
	l.responses <- Response{Sequence: req.Sequence, Status: StatusOK, Payload: payload}
	return nil
}

func (l *loopback) RecvResponse(ctx context.Context) (Response, bool) {
	select {
	case r := <-l.responses:
		return r, true
	case <-ctx.Done():
		return Response{}, false
	}
}

type echoService struct{}

func (echoService) ServiceID() ServiceID { return 0x10 }

func (echoService) Dispatch(ctx context.Context, methodID MethodID, request []byte) ([]byte, error) {
	if methodID != 0x11 {
		return nil, ErrMethodUnimplemented
	}
	var n int
	_ = Decode(request, &n)
	return Encode(n * 2)
}

func TestInvokeRoundTrip(t *testing.T) {
	registry := NewRegistry()
	registry.Register(echoService{})
	lb := newLoopback(registry)
	client := NewClient(lb)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Run(ctx, lb)

	result, err := Invoke[int, int](context.Background(), client, 0x10, 0x11, 21)
	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestServerRespondsMethodUnimplemented(t *testing.T) {
	registry := NewRegistry()
	log := zap.NewNop()

	reqCh := make(chan Request, 1)
	respCh := make(chan Response, 1)
	source := chanRequestSource{ch: reqCh}
	sink := chanResponseSink{ch: respCh}

	server := NewServer(registry, source, sink, log)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go server.Run(ctx)

	reqCh <- Request{Sequence: 1, ServiceID: 0x99, MethodID: 0x01}
	resp := <-respCh
	assert.Equal(t, StatusMethodUnimplemented, resp.Status)
}

// TestServerRespondsMethodUnimplementedForRegisteredServiceUnknownMethod
// covers a registered service given a MethodID it doesn't implement — as
// opposed to TestServerRespondsMethodUnimplemented's unregistered-service
// case above. A service reporting ErrMethodUnimplemented must still
// produce StatusMethodUnimplemented, not StatusSerializationFailed.
func TestServerRespondsMethodUnimplementedForRegisteredServiceUnknownMethod(t *testing.T) {
	registry := NewRegistry()
	registry.Register(echoService{})
	log := zap.NewNop()

	reqCh := make(chan Request, 1)
	respCh := make(chan Response, 1)
	source := chanRequestSource{ch: reqCh}
	sink := chanResponseSink{ch: respCh}

	server := NewServer(registry, source, sink, log)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go server.Run(ctx)

	reqCh <- Request{Sequence: 1, ServiceID: 0x10, MethodID: 0xFF}
	resp := <-respCh
	assert.Equal(t, StatusMethodUnimplemented, resp.Status)
}

type chanRequestSource struct{ ch chan Request }

func (s chanRequestSource) RecvRequest(ctx context.Context) (Request, bool) {
	select {
	case r := <-s.ch:
		return r, true
	case <-ctx.Done():
		return Request{}, false
	}
}

type chanResponseSink struct{ ch chan Response }

func (s chanResponseSink) SendResponse(r Response) error {
	s.ch <- r
	return nil
}

func TestInvokeTimesOutWhenNoResponse(t *testing.T) {
	registry := NewRegistry()
	lb := newLoopback(NewRegistry())
	_ = registry
	client := NewClient(discardSink{})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Invoke[int, int](ctx, client, 0x10, 0x11, 1)
	assert.Error(t, err)
	_ = lb
}

type discardSink struct{}

func (discardSink) SendRequest(Request) error { return nil }
