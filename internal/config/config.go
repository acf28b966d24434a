// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package config holds the compile-time constants that size the firmware:
// board dimensions, channel capacities, poll periods and USB identity.
// There is no runtime configuration surface and no persisted state — the
// keymap and every constant below are fixed at build time.
package config

import "time"

// Channel buffer sizes. All are single-slot: a try-send on a full channel
// drops the new value so a stalled consumer never blocks its producer.
const (
	InputChannelSize = 1
	KeysChannelSize  = 1
	FrameChannelSize = 1
)

// Poll cadences. Both the matrix scanner and the HID reporter target
// 1000 Hz; each task re-derives its next deadline from its own start
// time so jitter does not accumulate.
const (
	MatrixScanPollFreqHz = 1000
	HIDReportPollFreqHz  = 1000

	MatrixScanPollPeriod = time.Second / MatrixScanPollFreqHz
	HIDReportPollPeriod  = time.Second / HIDReportPollFreqHz
)

// DebounceWindow is the per-cell suppression window (§4.4).
const DebounceWindow = 10 * time.Millisecond

// RPC timeout, one poll period per spec §4.7/§5.
const RPCInvokeTimeout = MatrixScanPollPeriod

// USB HID identity (§6). Kept distinct from any shipped product's
// identity since this is reference firmware, not a redistribution of one.
const (
	USBVendorID     = 0x1209 // pid.codes shared testing VID
	USBProductID    = 0x0001
	USBManufacturer = "kbfw"
	USBProduct      = "kbfw core"
	USBSerial       = "0001"
)

// UART link parameters (§4.8).
const (
	UARTBaud        = 230400
	FrameStart      = 0x7E
	FrameEnd        = 0x7E
	FrameEscape     = 0x7D
	FrameEscapeXor  = 0x20
	ReceiveRingSize = 256
)

// EventCapacity is the pre-reserved capacity for a single poll's event
// slice; it is never reallocated once warmed up in the hot path.
const EventCapacity = 16

// HeartbeatStepCount / HeartbeatStepDelay parameterize the PWM ramp used
// by the heartbeat task.
const (
	HeartbeatStepCount = 200
	HeartbeatStepDelay = 10 * time.Millisecond
)

// BootModeDetectWindow is a USB-enumeration wait window sized for
// boot.DetectMode, after which it falls back to slave mode (§6). No
// cmd/* binary calls DetectMode.
const BootModeDetectWindow = 1 * time.Second
