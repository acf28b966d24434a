// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hidif

import (
	"context"

	"go.uber.org/zap"
)

// LoggingDevice is a Device that logs every report instead of driving a
// real USB stack, standing in for hardware during local development and
// tests (§9 Open Question: host-side stand-in).
type LoggingDevice struct {
	log  *zap.Logger
	leds LEDState
}

// NewLoggingDevice constructs a LoggingDevice over log.
func NewLoggingDevice(log *zap.Logger) *LoggingDevice {
	return &LoggingDevice{log: log}
}

// WriteReport implements Device.
func (d *LoggingDevice) WriteReport(ctx context.Context, report Report) error {
	d.log.Debug("hid report",
		zap.Uint8("modifiers", uint8(report.Modifiers)),
		zap.Any("keys", report.Keys))
	return nil
}

// Tick implements Device.
func (d *LoggingDevice) Tick(ctx context.Context) error { return nil }

// Poll implements Device.
func (d *LoggingDevice) Poll(ctx context.Context) error { return nil }

// ReadLEDs implements Device.
func (d *LoggingDevice) ReadLEDs() LEDState { return d.leds }

// SetLEDs lets tests simulate a host-driven LED state change.
func (d *LoggingDevice) SetLEDs(leds LEDState) {
	d.leds = leds
}
