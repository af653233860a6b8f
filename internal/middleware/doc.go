// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

/*
Package middleware provides HTTP middleware components for the hub's router.

Key Components:

  - RequestID: reuses or generates an X-Request-ID and stores it in the
    logging context so every log line of the request carries it
  - PrometheusMetrics: request count, latency and in-flight gauge, labeled by
    chi route pattern to keep label cardinality bounded
  - AccessLog: one structured log line per request, raised to warn when the
    request is slower than the configured threshold

All components are chi-compatible func(http.Handler) http.Handler values and
preserve http.Hijacker so they can sit in front of the websocket upgrade.

Usage:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(500 * time.Millisecond))
	r.With(middleware.PrometheusMetrics).Get("/api/aerocam/list", h.ListAeroCams)
*/
package middleware
