// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package standard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputMapDimensions(t *testing.T) {
	m := InputMap()
	assert.Len(t, m.KeyMatrix, int(LayerCount))
	for _, layer := range m.KeyMatrix {
		assert.Len(t, layer, Rows)
		for _, row := range layer {
			assert.Len(t, row, Cols)
		}
	}
	assert.Len(t, m.RotaryEncoder, int(LayerCount))
}
