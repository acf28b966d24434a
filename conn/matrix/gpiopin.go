// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package matrix

import "github.com/kbcore/kbfw/conn/gpio"

// GPIOPin adapts a periph.io gpio.PinIO to the narrow Pin interface the
// scanners need, so production wiring (cmd/*) can pass host/sysfs pins
// straight into NewVertical/NewHorizontal.
type GPIOPin struct {
	Pin gpio.PinIO
}

// SetHigh implements Pin.
func (p GPIOPin) SetHigh() error { return p.Pin.Out(gpio.High) }

// SetLow implements Pin.
func (p GPIOPin) SetLow() error { return p.Pin.Out(gpio.Low) }

// IsHigh implements Pin.
func (p GPIOPin) IsHigh() (bool, error) { return p.Pin.Read() == gpio.High, nil }
