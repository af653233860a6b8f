// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

/*
Package models defines the shared entities of the AeroCam hub.

This package contains the three entity types held by the store, the input shapes
accepted by its mutating operations, the live-connection event names and the
typed errors surfaced to HTTP and websocket callers. It is the single source of
truth for the wire shape of every record.

Key Components:

  - AeroCam: A registered camera agent (id, name, lat/lon, radius, online)
  - Request: A service request from a human requester (pendiente -> aceptada)
  - Position: The latest location report of one live client
  - ValidationError, NotFoundError, ConflictError: the error taxonomy

Wire Shapes:

Every entity is serialized with exactly the fields listed on its struct. Optional
geometry payloads on Request are opaque and round-trip untouched; they serialize
as null when absent. Timestamps are Unix epoch milliseconds.

Numeric Coercion:

Telemetry is best-effort: CoerceFloat accepts JSON numbers, MessagePack integers
and numeric strings, and reports anything else as invalid instead of failing.
Callers decide the fallback (0 for coordinates, absent for radius).

Thread Safety:

Values in this package are plain data. The store hands out copies, so callers
may freely read and serialize them.
*/
package models
