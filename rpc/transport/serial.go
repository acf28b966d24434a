// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package transport

import (
	"fmt"

	"github.com/tarm/serial"

	"github.com/kbcore/kbfw/internal/config"
)

// OpenSerial opens the UART device at path with the split-link's fixed
// baud rate, returning an io.ReadWriter suitable for NewLink.
func OpenSerial(devicePath string) (*serial.Port, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name: devicePath,
		Baud: config.UARTBaud,
	})
	if err != nil {
		return nil, fmt.Errorf("transport: open %s: %w", devicePath, err)
	}
	return port, nil
}
