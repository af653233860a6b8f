// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/aerocam-hub/internal/middleware"
	"github.com/tomtom215/aerocam-hub/internal/models"
)

// slowRequestThreshold raises access log lines to warn.
const slowRequestThreshold = 500 * time.Millisecond

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()
	h := router.handler

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)                       // X-Request-ID with logging context
	r.Use(chimiddleware.RealIP)                       // Extract real IP from X-Forwarded-For
	r.Use(middleware.AccessLog(slowRequestThreshold)) // One log line per request
	r.Use(chimiddleware.Recoverer)                    // Recover from panics
	r.Use(router.chiMiddleware.CORS())                // CORS must be global to handle OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, models.CodeNotFound, "no encontrado", nil)
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/live", h.HealthLive)
		r.Get("/ready", h.HealthReady)
	})

	// ========================
	// Entity API
	// ========================
	r.Route("/api", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		r.Route("/aerocam", func(r chi.Router) {
			r.Post("/upsert", h.UpsertAeroCam)
			r.Get("/list", h.ListAeroCams)
			r.Get("/{id}", h.GetAeroCam)
		})

		r.Route("/request", func(r chi.Router) {
			r.Post("/create", h.CreateRequest)
			r.Get("/list", h.ListRequests)
			r.Get("/{id}", h.GetRequest)
			r.Post("/{id}/accept", h.AcceptRequest)
		})

		r.Route("/position", func(r chi.Router) {
			r.Get("/list", h.ListPositions)
			r.Get("/{clientKey}", h.GetPosition)
			r.Delete("/{clientKey}", h.ClearPosition)
		})
	})

	// ========================
	// Live Connections
	// ========================
	r.With(router.chiMiddleware.RateLimitWebSocket()).Get("/ws", h.WebSocket)

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// Static Files
	// ========================
	// Must be last - catches all unmatched routes
	if router.staticDir != "" {
		r.Handle("/*", router.serveStatic())
	}

	return r
}
