// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

/*
Package logging provides the hub's global zerolog logger.

Every component logs through the package-level helpers so output format and
level are controlled in one place:

	logging.Init(logging.Config{Level: "info", Format: "json"})

	logging.Info().Str("addr", addr).Msg("HTTP server listening")
	logging.Error().Err(err).Msg("MQTT subscribe failed")

# Context

HTTP requests carry a request ID and live connections carry their connection
ID. Both travel in a context.Context and are added to every line logged via
Ctx:

	ctx = logging.ContextWithConnID(ctx, client.ID())
	logging.Ctx(ctx).Warn().Str("event", typ).Msg("Dropped inbound message")

# slog bridge

Libraries that only speak log/slog (suture's event hook) get a handler backed
by the same zerolog instance:

	hook := (&sutureslog.Handler{Logger: logging.NewSlogLogger()}).MustHook()

# Configuration

LOG_LEVEL (trace, debug, info, warn, error), LOG_FORMAT (json, console) and
LOG_CALLER are read by internal/config and passed to Init.
*/
package logging
