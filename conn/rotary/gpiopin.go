// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rotary

import "github.com/kbcore/kbfw/conn/gpio"

// GPIOPin adapts a periph.io gpio.PinIn to the narrow Pin interface the
// Encoder needs.
type GPIOPin struct {
	Pin gpio.PinIn
}

// IsHigh implements Pin.
func (p GPIOPin) IsHigh() (bool, error) { return p.Pin.Read() == gpio.High, nil }
