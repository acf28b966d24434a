// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package heartbeat drives a single status LED through a breathing PWM
// ramp in its own goroutine, independent of every other task — its
// only job is to prove the firmware's main loop is still alive.
package heartbeat

import (
	"context"
	"time"

	"github.com/kbcore/kbfw/internal/config"
)

// MaxDutyCycle is the top of the ramp, matching the original firmware's
// 0x6000 duty value out of a 16-bit PWM counter.
const MaxDutyCycle uint16 = 0x6000

// PWMChannel is the single hardware collaborator this package needs: a
// channel whose duty cycle can be set, described only by its signature
// per the convention used throughout conn/* for out-of-scope drivers.
type PWMChannel interface {
	SetDutyCycle(duty uint16) error
}

// LED cycles a PWMChannel from off to MaxDutyCycle and back,
// config.HeartbeatStepCount steps each way, pausing
// config.HeartbeatStepDelay between steps.
type LED struct {
	pin PWMChannel
}

// NewLED wraps pin as a heartbeat LED.
func NewLED(pin PWMChannel) *LED {
	return &LED{pin: pin}
}

// Run ramps the LED up and down forever until ctx is done.
func (l *LED) Run(ctx context.Context) error {
	for {
		if err := lerp(ctx, l.pin, 0, MaxDutyCycle, config.HeartbeatStepCount, config.HeartbeatStepDelay); err != nil {
			return err
		}
		if err := lerp(ctx, l.pin, MaxDutyCycle, 0, config.HeartbeatStepCount, config.HeartbeatStepDelay); err != nil {
			return err
		}
	}
}

// lerp linearly interpolates the duty cycle from start to end over
// steps increments, sleeping delay between each (§5 supplemented task).
func lerp(ctx context.Context, pin PWMChannel, start, end uint16, steps int, delay time.Duration) error {
	if steps <= 0 {
		return pin.SetDutyCycle(end)
	}

	span := int(end) - int(start)
	for i := 0; i <= steps; i++ {
		duty := start + uint16(span*i/steps)
		if err := pin.SetDutyCycle(duty); err != nil {
			return err
		}

		if i == steps {
			break
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
	return nil
}
