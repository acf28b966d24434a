// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package transport implements the split-link wire framing (§4.8): a
// CRC-8, byte-stuffed envelope around Request/Response payloads, a
// bounded receive ring that drops the oldest frame under overrun, and a
// serial-backed Link binding it all to a real UART.
package transport

import (
	"fmt"

	"github.com/kbcore/kbfw/internal/config"
)

// crc8 computes the frame checksum using the same bit-by-bit
// polynomial (x^8 + x^2 + x + 1, poly 0x07) the original firmware's
// crc crate defaulted to for its UART frames.
func crc8(data []byte) byte {
	var crc byte
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = (crc << 1) ^ 0x07
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// Encode wraps body in a START/LENGTH/BODY/CRC/END envelope, escaping
// any byte within LENGTH..CRC that collides with the start/end marker
// or the escape byte itself.
func Encode(body []byte) []byte {
	if len(body) > 255 {
		panic("transport: frame body exceeds 255 bytes")
	}

	inner := make([]byte, 0, len(body)+2)
	inner = append(inner, byte(len(body)))
	inner = append(inner, body...)
	inner = append(inner, crc8(body))

	out := make([]byte, 0, len(inner)*2+2)
	out = append(out, config.FrameStart)
	for _, b := range inner {
		out = appendStuffed(out, b)
	}
	out = append(out, config.FrameEnd)
	return out
}

func appendStuffed(out []byte, b byte) []byte {
	switch b {
	case config.FrameStart, config.FrameEnd:
		return append(out, config.FrameEscape, b^config.FrameEscapeXor)
	case config.FrameEscape:
		return append(out, config.FrameEscape, b^config.FrameEscapeXor)
	default:
		return append(out, b)
	}
}

// Decode reverses Encode on a single de-stuffed frame's inner bytes
// (START/END already stripped by the caller) and validates its CRC.
func Decode(inner []byte) ([]byte, error) {
	unstuffed := make([]byte, 0, len(inner))
	for i := 0; i < len(inner); i++ {
		b := inner[i]
		if b == config.FrameEscape {
			i++
			if i >= len(inner) {
				return nil, fmt.Errorf("transport: truncated escape sequence")
			}
			unstuffed = append(unstuffed, inner[i]^config.FrameEscapeXor)
			continue
		}
		unstuffed = append(unstuffed, b)
	}

	if len(unstuffed) < 2 {
		return nil, fmt.Errorf("transport: frame too short: %d bytes", len(unstuffed))
	}
	length := int(unstuffed[0])
	body := unstuffed[1 : len(unstuffed)-1]
	wantCRC := unstuffed[len(unstuffed)-1]
	if length != len(body) {
		return nil, fmt.Errorf("transport: length field %d, body is %d bytes", length, len(body))
	}
	if got := crc8(body); got != wantCRC {
		return nil, fmt.Errorf("transport: crc mismatch: got 0x%02x want 0x%02x", got, wantCRC)
	}
	return body, nil
}
