// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

/*
Package store is the hub's in-memory entity store.

It owns the three shared mappings (aerocams, service requests and live
positions) and is the only place they are mutated. Every operation runs
under one mutex, and every successful mutation publishes the full snapshot
of the affected mapping to a Publisher before the lock is released. Listeners
therefore observe mutations in the order they were applied and never see a
torn snapshot.

# Operations

	UpsertAeroCam    merge over the existing record or defaults
	CreateRequest    "inmediata" starts "pendiente", anything else "programada"
	AcceptRequest    "pendiente" -> "aceptada", one direction only
	UpsertPosition   lenient telemetry; derives the aerocam for role AEROCAM
	ClearPosition    no-op for unknown keys
	ReleaseConnection  disconnect cleanup for one transport identifier

Lists return records in insertion order.

# Publishing

The Publisher is called synchronously while the store lock is held, so it
must not call back into the store. The websocket hub satisfies this: it
serializes once and queues frames without blocking.

	s := store.New(store.WithPublisher(hub))
	cam, err := s.UpsertAeroCam(models.AeroCamInput{ID: "cam1"})

WithSnapshot runs a function against a consistent view under the same lock;
the session layer uses it to send a new connection its catch-up snapshots
and register it for broadcasts in one atomic step.
*/
package store
