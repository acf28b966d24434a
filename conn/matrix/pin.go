// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package matrix

// Pin is the capability set the scanner needs from a row or column line,
// generalizing the teacher's gpio.PinIO (conn/gpio) down to the three
// operations the scan algorithm actually drives. Concrete boards bind
// whichever GPIO type they expose — direct register access, a sysfs
// pin, or (for tests) an in-memory fake — behind this interface.
type Pin interface {
	SetHigh() error
	SetLow() error
	IsHigh() (bool, error)
}
