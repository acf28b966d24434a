// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package transport

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// requestWire and responseWire are the CBOR-encoded frame bodies
// carried inside the byte-stuffed envelope; rpc.Request/rpc.Response
// are transport-agnostic, so the (de)serialization lives here rather
// than in package rpc.
type requestWire struct {
	Sequence  uint8  `cbor:"1,keyasint"`
	ServiceID uint8  `cbor:"2,keyasint"`
	MethodID  uint8  `cbor:"3,keyasint"`
	Payload   []byte `cbor:"4,keyasint"`
}

type responseWire struct {
	Sequence uint8  `cbor:"1,keyasint"`
	Status   uint8  `cbor:"2,keyasint"`
	Payload  []byte `cbor:"3,keyasint"`
}

const (
	frameKindRequest  = 0
	frameKindResponse = 1
)

type envelope struct {
	Kind uint8  `cbor:"0,keyasint"`
	Body []byte `cbor:"1,keyasint"`
}

func marshalEnvelope(kind uint8, v any) ([]byte, error) {
	body, err := cbor.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("transport: marshal body: %w", err)
	}
	return cbor.Marshal(envelope{Kind: kind, Body: body})
}

func unmarshalEnvelope(data []byte) (envelope, error) {
	var e envelope
	if err := cbor.Unmarshal(data, &e); err != nil {
		return envelope{}, fmt.Errorf("transport: unmarshal envelope: %w", err)
	}
	return e, nil
}

func decodeCBOR(data []byte, v any) error {
	if err := cbor.Unmarshal(data, v); err != nil {
		return fmt.Errorf("transport: decode: %w", err)
	}
	return nil
}
