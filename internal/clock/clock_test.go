// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNowTicksIsMonotonicallyIncreasing(t *testing.T) {
	c := New()
	first := c.NowTicks()
	time.Sleep(time.Millisecond)
	second := c.NowTicks()
	assert.Greater(t, second, first)
}

func TestSleepRespectsCancellation(t *testing.T) {
	c := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	c.Sleep(ctx, time.Second)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}
