// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hidif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/kbcore/kbfw/conn/key"
	"github.com/kbcore/kbfw/processor"
)

func TestReporterTracksHeldKeys(t *testing.T) {
	r := NewReporter(NewLoggingDevice(zap.NewNop()))

	r.Process([]processor.Event{{Edge: key.EdgeRising, Action: key.OfKey(key.KeyA)}})
	rep := r.Report()
	assert.Equal(t, key.KeyA, rep.Keys[0])

	r.Process([]processor.Event{{Edge: key.EdgeFalling, Action: key.OfKey(key.KeyA)}})
	rep = r.Report()
	assert.Equal(t, key.KeyNone, rep.Keys[0])
}

func TestReporterTracksModifiers(t *testing.T) {
	r := NewReporter(NewLoggingDevice(zap.NewNop()))
	r.Process([]processor.Event{{Edge: key.EdgeRising, Action: key.OfKey(key.KeyLeftShift)}})
	assert.Equal(t, key.ModifierLeftShift, r.Report().Modifiers)

	r.Process([]processor.Event{{Edge: key.EdgeFalling, Action: key.OfKey(key.KeyLeftShift)}})
	assert.Equal(t, key.ModifierNone, r.Report().Modifiers)
}
