// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package transport

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/kbcore/kbfw/internal/config"
	"github.com/kbcore/kbfw/rpc"
)

// Link binds the framed wire protocol to a byte stream (a UART, in
// production github.com/tarm/serial). It implements rpc's
// RequestSource/RequestSink (server side) and ResponseSource/
// ResponseSink (client side) so one physical link carries both
// directions of traffic, matching the original firmware's single
// half-duplex UART between the two halves.
type Link struct {
	rw  io.ReadWriter
	log *zap.Logger

	requests  *ring
	responses *ring
}

// NewLink wraps rw, starting its background reader goroutine under ctx.
func NewLink(ctx context.Context, rw io.ReadWriter, log *zap.Logger) *Link {
	l := &Link{
		rw:        rw,
		log:       log,
		requests:  newRing(config.ReceiveRingSize),
		responses: newRing(config.ReceiveRingSize),
	}
	go l.readLoop(ctx)
	return l
}

func (l *Link) readLoop(ctx context.Context) {
	var current []byte
	inFrame := false
	buf := make([]byte, 1)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n, err := l.rw.Read(buf)
		if err != nil {
			if err != io.EOF {
				l.log.Warn("link read error", zap.Error(err))
			}
			continue
		}
		if n == 0 {
			continue
		}

		b := buf[0]
		switch {
		case b == config.FrameStart && !inFrame:
			inFrame = true
			current = current[:0]
		case b == config.FrameEnd && inFrame:
			inFrame = false
			l.handleFrame(current)
			current = nil
		case inFrame:
			current = append(current, b)
		}
	}
}

func (l *Link) handleFrame(inner []byte) {
	body, err := Decode(inner)
	if err != nil {
		l.log.Warn("dropping malformed frame", zap.Error(err))
		return
	}
	env, err := unmarshalEnvelope(body)
	if err != nil {
		l.log.Warn("dropping unparseable frame", zap.Error(err))
		return
	}
	switch env.Kind {
	case frameKindRequest:
		l.requests.push(env.Body)
	case frameKindResponse:
		l.responses.push(env.Body)
	}
}

// RecvRequest implements rpc.RequestSource.
func (l *Link) RecvRequest(ctx context.Context) (rpc.Request, bool) {
	body, ok := l.requests.pop(ctx)
	if !ok {
		return rpc.Request{}, false
	}
	var w requestWire
	if err := decodeCBOR(body, &w); err != nil {
		l.log.Warn("dropping malformed request", zap.Error(err))
		return rpc.Request{}, false
	}
	return rpc.Request{
		Sequence:  rpc.Sequence(w.Sequence),
		ServiceID: rpc.ServiceID(w.ServiceID),
		MethodID:  rpc.MethodID(w.MethodID),
		Payload:   w.Payload,
	}, true
}

// SendRequest implements rpc.RequestSink.
func (l *Link) SendRequest(req rpc.Request) error {
	frame, err := marshalEnvelope(frameKindRequest, requestWire{
		Sequence:  uint8(req.Sequence),
		ServiceID: uint8(req.ServiceID),
		MethodID:  uint8(req.MethodID),
		Payload:   req.Payload,
	})
	if err != nil {
		return err
	}
	_, err = l.rw.Write(Encode(frame))
	return err
}

// RecvResponse implements rpc.ResponseSource.
func (l *Link) RecvResponse(ctx context.Context) (rpc.Response, bool) {
	body, ok := l.responses.pop(ctx)
	if !ok {
		return rpc.Response{}, false
	}
	var w responseWire
	if err := decodeCBOR(body, &w); err != nil {
		l.log.Warn("dropping malformed response", zap.Error(err))
		return rpc.Response{}, false
	}
	return rpc.Response{
		Sequence: rpc.Sequence(w.Sequence),
		Status:   rpc.Status(w.Status),
		Payload:  w.Payload,
	}, true
}

// SendResponse implements rpc.ResponseSink.
func (l *Link) SendResponse(resp rpc.Response) error {
	frame, err := marshalEnvelope(frameKindResponse, responseWire{
		Sequence: uint8(resp.Sequence),
		Status:   uint8(resp.Status),
		Payload:  resp.Payload,
	})
	if err != nil {
		return err
	}
	_, err = l.rw.Write(Encode(frame))
	return err
}
