// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rpc

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// RequestSource yields inbound Requests as they arrive off the framed
// link. Production code binds this to a transport.Link.
type RequestSource interface {
	RecvRequest(ctx context.Context) (Request, bool)
}

// ResponseSink sends a dispatch's outcome back over the framed link.
type ResponseSink interface {
	SendResponse(Response) error
}

// Server receives Requests, dispatches them to a registered Service,
// and returns a Response, logging dispatch and send failures (§4.8, §7).
// It records no per-stage durations.
type Server struct {
	registry *Registry
	source   RequestSource
	sink     ResponseSink
	log      *zap.Logger
}

// NewServer constructs a Server over a Registry and a transport link.
func NewServer(registry *Registry, source RequestSource, sink ResponseSink, log *zap.Logger) *Server {
	return &Server{registry: registry, source: source, sink: sink, log: log}
}

// Run processes inbound requests until ctx is done.
func (s *Server) Run(ctx context.Context) {
	for {
		req, ok := s.source.RecvRequest(ctx)
		if !ok {
			return
		}
		s.handle(ctx, req)
	}
}

func (s *Server) handle(ctx context.Context, req Request) {
	svc, ok := s.registry.Lookup(req.ServiceID)
	if !ok {
		s.log.Warn("service not registered", zap.Uint8("service_id", uint8(req.ServiceID)))
		s.respond(Response{Sequence: req.Sequence, Status: StatusMethodUnimplemented})
		return
	}

	payload, err := svc.Dispatch(ctx, req.MethodID, req.Payload)
	if err != nil {
		status := StatusSerializationFailed
		if errors.Is(err, ErrMethodUnimplemented) {
			status = StatusMethodUnimplemented
		}
		s.log.Error("dispatch failed",
			zap.Uint8("service_id", uint8(req.ServiceID)),
			zap.Uint8("method_id", uint8(req.MethodID)),
			zap.Error(err))
		s.respond(Response{Sequence: req.Sequence, Status: status})
		return
	}

	s.respond(Response{Sequence: req.Sequence, Status: StatusOK, Payload: payload})
}

func (s *Server) respond(resp Response) {
	if err := s.sink.SendResponse(resp); err != nil {
		s.log.Error("failed to send response", zap.Uint8("sequence", uint8(resp.Sequence)), zap.Error(err))
	}
}
