// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hidif

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kbcore/kbfw/conn/key"
)

func TestLoggingDeviceWriteReport(t *testing.T) {
	d := NewLoggingDevice(zap.NewNop())
	report := Report{Modifiers: key.ModifierLeftShift, Keys: [maxRolloverKeys]key.Key{key.KeyA}}
	require.NoError(t, d.WriteReport(context.Background(), report))
}

func TestLoggingDeviceReadLEDsReflectsSet(t *testing.T) {
	d := NewLoggingDevice(zap.NewNop())
	d.SetLEDs(LEDState{CapsLock: true})
	assert.True(t, d.ReadLEDs().CapsLock)
}
