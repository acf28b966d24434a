// Copyright 2026 The Kbfw Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rpc

import (
	"github.com/kbcore/kbfw/sched"
)

// Registry holds the boot-time-populated table of Services, indexed by
// ServiceID, behind an Arbiter so registration (single-writer, at boot)
// and dispatch (single-reader, per request) never race (§4.8, §5).
type Registry struct {
	services *sched.Arbiter[map[ServiceID]Service]
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{services: sched.NewArbiter(make(map[ServiceID]Service))}
}

// Register adds svc under its own ServiceID, overwriting any prior
// registration for that ID.
func (r *Registry) Register(svc Service) {
	r.services.With(func(m *map[ServiceID]Service) {
		(*m)[svc.ServiceID()] = svc
	})
}

// Lookup returns the Service registered for id, if any.
func (r *Registry) Lookup(id ServiceID) (Service, bool) {
	var svc Service
	var ok bool
	r.services.With(func(m *map[ServiceID]Service) {
		svc, ok = (*m)[id]
	})
	return svc, ok
}
