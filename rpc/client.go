// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rpc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kbcore/kbfw/internal/config"
)

// RequestSink sends a Request over the framed link.
type RequestSink interface {
	SendRequest(Request) error
}

// ResponseSource yields inbound Responses as they arrive off the framed
// link, keyed by the Sequence the matching Request carried.
type ResponseSource interface {
	RecvResponse(ctx context.Context) (Response, bool)
}

// pendingState is PendingRequest's state machine (§4.8): a request is
// Awaiting from the moment it is registered, just before it is sent
// (there is no separate Idle state), and resolves to Completed or
// TimedOut exactly once.
type pendingState uint8

const (
	pendingAwaiting pendingState = iota
	pendingCompleted
	pendingTimedOut
)

type pendingRequest struct {
	state pendingState
	done  chan Response
}

// Client invokes remote services by sequence number, matching inbound
// Responses (delivered via Run) back to the waiting Invoke call.
type Client struct {
	sink RequestSink

	mu      sync.Mutex
	nextSeq Sequence
	pending map[Sequence]*pendingRequest
}

// NewClient constructs a Client over the framed link's request sink.
// Responses must be delivered to it by running Run against the link's
// ResponseSource in a separate goroutine.
func NewClient(sink RequestSink) *Client {
	return &Client{sink: sink, pending: make(map[Sequence]*pendingRequest)}
}

// Run delivers inbound Responses to their matching pending Invoke call
// until ctx is done. It must run concurrently with any Invoke calls.
func (c *Client) Run(ctx context.Context, source ResponseSource) {
	for {
		resp, ok := source.RecvResponse(ctx)
		if !ok {
			return
		}
		c.deliver(resp)
	}
}

func (c *Client) deliver(resp Response) {
	c.mu.Lock()
	p, ok := c.pending[resp.Sequence]
	if ok {
		delete(c.pending, resp.Sequence)
	}
	c.mu.Unlock()

	if !ok || p.state != pendingAwaiting {
		return
	}
	p.state = pendingCompleted
	p.done <- resp
}

func (c *Client) register() (Sequence, *pendingRequest) {
	c.mu.Lock()
	defer c.mu.Unlock()
	seq := c.nextSeq
	c.nextSeq++
	p := &pendingRequest{state: pendingAwaiting, done: make(chan Response, 1)}
	c.pending[seq] = p
	return seq, p
}

func (c *Client) expire(seq Sequence) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.pending[seq]; ok {
		p.state = pendingTimedOut
		delete(c.pending, seq)
	}
}

// Invoke serializes req, sends it to (serviceID, methodID), and blocks
// for at most one matrix-scan period (config.RPCInvokeTimeout) awaiting
// the matching Response, decoding its payload into an R. Go methods
// cannot carry their own type parameters, so Invoke is a free function
// over *Client rather than a method (§9 design note).
func Invoke[Q any, R any](ctx context.Context, c *Client, serviceID ServiceID, methodID MethodID, req Q) (R, error) {
	var zero R

	payload, err := Encode(req)
	if err != nil {
		return zero, err
	}

	seq, pending := c.register()
	if err := c.sink.SendRequest(Request{Sequence: seq, ServiceID: serviceID, MethodID: methodID, Payload: payload}); err != nil {
		c.expire(seq)
		return zero, fmt.Errorf("rpc: send request: %w", err)
	}

	timer := time.NewTimer(config.RPCInvokeTimeout)
	defer timer.Stop()

	select {
	case resp := <-pending.done:
		if resp.Status != StatusOK {
			return zero, fmt.Errorf("rpc: remote status %s", resp.Status)
		}
		if err := Decode(resp.Payload, &zero); err != nil {
			return zero, err
		}
		return zero, nil
	case <-timer.C:
		c.expire(seq)
		return zero, fmt.Errorf("rpc: invoke timed out after %s", config.RPCInvokeTimeout)
	case <-ctx.Done():
		c.expire(seq)
		return zero, ctx.Err()
	}
}
