// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package rpc implements the split-keyboard remote procedure call
// abstraction (§4.8): services registered by ID, a server that
// dispatches inbound requests to them, and a client that invokes a
// remote service and awaits a matching response by sequence number.
// Requests and responses travel over rpc/transport's framed link.
package rpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// ErrMethodUnimplemented is the sentinel a Service's Dispatch must return
// (wrapped or bare) when asked for a MethodID it doesn't implement, so the
// Server can answer StatusMethodUnimplemented instead of treating it as a
// generic dispatch failure — mirrors the original firmware's
// remote::Error::MethodUnimplemented default match arm.
var ErrMethodUnimplemented = errors.New("rpc: method unimplemented")

// ServiceID and MethodID identify a registered Service and one of its
// methods. u8-sized in the original firmware; kept narrow here for wire
// compatibility even though Go has no sub-byte-width documentation
// benefit.
type (
	ServiceID uint8
	MethodID  uint8
	Sequence  uint8
)

// Status reports the outcome of a dispatched request, carried back to
// the client in the Response frame.
type Status uint8

const (
	StatusOK Status = iota
	StatusMethodUnimplemented
	StatusSerializationFailed
	StatusTimeout
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusMethodUnimplemented:
		return "MethodUnimplemented"
	case StatusSerializationFailed:
		return "SerializationFailed"
	case StatusTimeout:
		return "Timeout"
	default:
		return "Unknown"
	}
}

// Request is one frame's worth of an invocation: the target service and
// method, a CBOR-encoded argument payload, and the sequence number the
// response must echo.
type Request struct {
	Sequence  Sequence
	ServiceID ServiceID
	MethodID  MethodID
	Payload   []byte
}

// Response carries a dispatch's outcome back to the invoking side.
type Response struct {
	Sequence Sequence
	Status   Status
	Payload  []byte
}

// Service is a single registered remote endpoint (§4.8), matching the
// original firmware's one-service-per-ServiceID registry.
type Service interface {
	ServiceID() ServiceID
	Dispatch(ctx context.Context, methodID MethodID, request []byte) ([]byte, error)
}

// Encode CBOR-serializes v for transmission as a Request or Response
// payload.
func Encode(v any) ([]byte, error) {
	b, err := cbor.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("rpc: encode: %w", err)
	}
	return b, nil
}

// Decode deserializes a Request or Response payload into v.
func Decode(payload []byte, v any) error {
	if err := cbor.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("rpc: decode: %w", err)
	}
	return nil
}
