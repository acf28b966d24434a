// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package heartbeat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingPWM struct {
	duties []uint16
}

func (p *recordingPWM) SetDutyCycle(duty uint16) error {
	p.duties = append(p.duties, duty)
	return nil
}

func TestLerpRampsFromStartToEnd(t *testing.T) {
	pin := &recordingPWM{}
	err := lerp(context.Background(), pin, 0, 100, 4, time.Microsecond)
	assert.NoError(t, err)
	assert.Equal(t, []uint16{0, 25, 50, 75, 100}, pin.duties)
}

func TestLerpStopsOnCancel(t *testing.T) {
	pin := &recordingPWM{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := lerp(ctx, pin, 0, 100, 4, time.Millisecond)
	assert.NoError(t, err)
	assert.Equal(t, []uint16{0}, pin.duties)
}

func TestRunRampsUpAndDown(t *testing.T) {
	pin := &recordingPWM{}
	led := NewLED(pin)
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	_ = led.Run(ctx)
	assert.NotEmpty(t, pin.duties)
}
