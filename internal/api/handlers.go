// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/aerocam-hub/internal/config"
	"github.com/tomtom215/aerocam-hub/internal/logging"
	"github.com/tomtom215/aerocam-hub/internal/signaling"
	"github.com/tomtom215/aerocam-hub/internal/store"
	ws "github.com/tomtom215/aerocam-hub/internal/websocket"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct, constructor, websocket upgrade (this file)
//   - handlers_helpers.go: Response and body helpers
//   - handlers_health.go: Liveness and readiness probes
//   - handlers_aerocam.go: AeroCam endpoints
//   - handlers_request.go: Service request endpoints
//   - handlers_position.go: Position endpoints
type Handler struct {
	store     *store.Store
	wsHub     *ws.Hub
	relay     *signaling.Relay
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler := api.NewHandler(st, hub, relay, cfg)
//	router := api.NewRouter(handler, cfg)
func NewHandler(st *store.Store, wsHub *ws.Hub, relay *signaling.Relay, cfg *config.Config) *Handler {
	return &Handler{
		store:     st,
		wsHub:     wsHub,
		relay:     relay,
		config:    cfg,
		startTime: time.Now(),
	}
}

// getUpgrader creates a WebSocket upgrader with origin checking, subprotocol
// negotiation and a handshake timeout.
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		Subprotocols:     []string{ws.SubprotocolMsgpack, ws.SubprotocolJSON},
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin validates WebSocket connection origins against the
// CORS allow list. Requests without an Origin header come from non-browser
// clients (field devices, the simulator) and are accepted.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || h.config == nil {
		return true
	}

	for _, allowedOrigin := range h.config.Security.CORSOrigins {
		if allowedOrigin == "*" || allowedOrigin == origin {
			return true
		}
	}

	logging.Warn().Str("origin", logging.SanitizeField(origin)).Msg("WebSocket connection rejected from unauthorized origin")
	return false
}

// WebSocket upgrades the connection and hands it to the hub. The codec is
// chosen by the negotiated subprotocol and defaults to JSON.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil || !h.wsHub.Running() {
		respondError(w, r, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "servicio no disponible", ErrHubUnavailable)
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already written a 4xx response.
		logging.Ctx(r.Context()).Debug().Err(err).Msg("WebSocket upgrade error")
		return
	}

	client := ws.NewClient(h.wsHub, conn, ws.CodecFor(conn.Subprotocol()))
	if err := h.wsHub.Attach(r.Context(), client); err != nil {
		logging.Ctx(client.Context()).Warn().Err(err).Msg("WebSocket client could not be attached")
		_ = conn.Close()
	}
}
