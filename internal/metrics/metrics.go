// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package metrics provides sampled, zero-allocation-in-the-common-case
// diagnostic logging for the hot path: per-stage duration tracing and
// periodic heap stats, both rate-limited so they never dominate the
// actual work they're instrumenting (§7).
package metrics

import (
	"runtime"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Tag names a traced stage, mirroring the original firmware's
// LogDurationTag enumeration.
type Tag string

const (
	TagKeyMatrixScan         Tag = "key_matrix_scan"
	TagClientInputScan       Tag = "client_input_scan"
	TagServerListenRetrieve  Tag = "server_listen_retrieve"
	TagServerListenDispatch  Tag = "server_listen_dispatch"
	TagServerListenRespond   Tag = "server_listen_respond"
	TagServerListenFull      Tag = "server_listen_full"
	TagUARTSenderSerialize   Tag = "uart_sender_serialize"
	TagUARTSenderTransform   Tag = "uart_sender_transform"
	TagUARTSenderWrite       Tag = "uart_sender_write"
	TagUARTReceiverRead      Tag = "uart_receiver_read"
	TagUARTReceiverDecode    Tag = "uart_receiver_decode"
)

// DurationSampleRate logs one in every N calls per tag, matching the
// original LOG_DURATION_SAMPLING_RATE default.
const DurationSampleRate = 1000

// HeapSampleRate logs one in every N LogHeap calls.
const HeapSampleRate = 5000

// Recorder is a sampled duration/heap logger bound to a zap.Logger.
// Counters are per-Recorder, not global, so tests can construct their
// own without interfering with production sampling state.
type Recorder struct {
	log *zap.Logger

	durationCounters map[Tag]*atomic.Uint64
	heapCounter       atomic.Uint64
}

// NewRecorder constructs a Recorder over log.
func NewRecorder(log *zap.Logger) *Recorder {
	return &Recorder{log: log, durationCounters: make(map[Tag]*atomic.Uint64)}
}

// LogDuration records how long a stage took, emitting a trace-level log
// line every DurationSampleRate calls for that tag (§7, to avoid
// flooding the log from a 1kHz hot path).
func (r *Recorder) LogDuration(tag Tag, start, end time.Time) {
	counter, ok := r.durationCounters[tag]
	if !ok {
		counter = &atomic.Uint64{}
		r.durationCounters[tag] = counter
	}
	n := counter.Add(1)
	if n%DurationSampleRate != 0 {
		return
	}
	r.log.Debug("stage duration",
		zap.String("tag", string(tag)),
		zap.Uint64("sample", n),
		zap.Duration("duration", end.Sub(start)))
}

// LogHeap emits a sampled snapshot of the Go runtime's heap stats.
func (r *Recorder) LogHeap() {
	n := r.heapCounter.Add(1)
	if n%HeapSampleRate != 0 {
		return
	}
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	r.log.Debug("heap stat",
		zap.Uint64("sample", n),
		zap.Uint64("alloc_bytes", stats.Alloc),
		zap.Uint64("sys_bytes", stats.Sys))
}
