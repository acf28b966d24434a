// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package services binds conn/matrix's Scanner abstraction to package
// rpc: KeyMatrixService lets the slave half answer a scan request as an
// rpc.Service, and RemoteScanner lets the master half issue one as a
// matrix.RemoteScanner, without either conn/matrix or rpc depending on
// the other directly.
package services

import (
	"context"
	"fmt"

	"github.com/kbcore/kbfw/conn/matrix"
	"github.com/kbcore/kbfw/rpc"
)

// Key matrix service and method identifiers, carried forward from the
// original firmware's split-link wire contract.
const (
	ServiceIDKeyMatrix    rpc.ServiceID = 0x10
	MethodIDKeyMatrixScan rpc.MethodID  = 0x11
)

// scanRequest and scanResponse are the CBOR payloads carried inside an
// rpc.Request/rpc.Response for the key matrix service.
type scanRequest struct{}

type scanResponse struct {
	ScanTimeTicks uint64 `cbor:"1,keyasint"`
	Rows          int    `cbor:"2,keyasint"`
	Cols          int    `cbor:"3,keyasint"`
	Packed        []byte `cbor:"4,keyasint"`
}

// KeyMatrixService answers scan requests from the other half by
// invoking a local matrix.Scanner and returning its packed Result
// (§4.3, §4.8).
type KeyMatrixService struct {
	scanner matrix.Scanner
}

// NewKeyMatrixService wraps the slave half's local scanner as an
// rpc.Service.
func NewKeyMatrixService(scanner matrix.Scanner) *KeyMatrixService {
	return &KeyMatrixService{scanner: scanner}
}

// ServiceID implements rpc.Service.
func (s *KeyMatrixService) ServiceID() rpc.ServiceID { return ServiceIDKeyMatrix }

// Dispatch implements rpc.Service.
func (s *KeyMatrixService) Dispatch(ctx context.Context, methodID rpc.MethodID, request []byte) ([]byte, error) {
	if methodID != MethodIDKeyMatrixScan {
		return nil, fmt.Errorf("services: key matrix: method 0x%02x: %w", methodID, rpc.ErrMethodUnimplemented)
	}

	result, err := s.scanner.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("services: key matrix scan: %w", err)
	}

	return rpc.Encode(scanResponse{
		ScanTimeTicks: result.ScanTimeTicks,
		Rows:          result.Rows,
		Cols:          result.Cols,
		Packed:        result.Pack(),
	})
}

// RemoteScanner implements matrix.RemoteScanner by invoking the other
// half's KeyMatrixService over an rpc.Client (§4.3).
type RemoteScanner struct {
	client *rpc.Client
}

// NewRemoteScanner binds an rpc.Client to the key matrix service.
func NewRemoteScanner(client *rpc.Client) *RemoteScanner {
	return &RemoteScanner{client: client}
}

// ScanRemote implements matrix.RemoteScanner.
func (r *RemoteScanner) ScanRemote(ctx context.Context) (matrix.Result, error) {
	resp, err := rpc.Invoke[scanRequest, scanResponse](ctx, r.client, ServiceIDKeyMatrix, MethodIDKeyMatrixScan, scanRequest{})
	if err != nil {
		return matrix.Result{}, err
	}
	return matrix.Unpack(resp.Rows, resp.Cols, resp.ScanTimeTicks, resp.Packed)
}
