// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rgb

import "go.uber.org/zap"

// LoggingWriter is a Writer that logs each frame instead of driving a
// real LED strip, standing in for the PIO-driven WS2812 serializer
// during local development and tests (§4.9 Non-goals: the strip driver
// itself is out of scope).
type LoggingWriter struct {
	log *zap.Logger
}

// NewLoggingWriter constructs a LoggingWriter over log.
func NewLoggingWriter(log *zap.Logger) *LoggingWriter {
	return &LoggingWriter{log: log}
}

// Write implements Writer.
func (w *LoggingWriter) Write(f Frame) error {
	w.log.Debug("rgb frame", zap.Int("led_count", len(f)))
	return nil
}
