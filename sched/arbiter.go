// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sched

import "sync"

// Arbiter mediates exclusive access to a single shared resource across
// goroutines, the same role rtic_sync::arbiter::Arbiter plays across
// priority levels. Unlike a bare mutex, callers reach the resource only
// through With, so there is no path to lock it and forget to unlock.
type Arbiter[T any] struct {
	mu   sync.Mutex
	data T
}

// NewArbiter wraps v behind an Arbiter.
func NewArbiter[T any](v T) *Arbiter[T] {
	return &Arbiter[T]{data: v}
}

// With runs fn with exclusive access to the wrapped value.
func (a *Arbiter[T]) With(fn func(v *T)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn(&a.data)
}
