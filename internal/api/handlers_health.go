// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/aerocam-hub/internal/store"
)

// LiveStatus is the liveness probe body.
type LiveStatus struct {
	Alive  bool    `json:"alive"`
	Uptime float64 `json:"uptime"`
}

// ReadyStatus is the readiness probe body.
type ReadyStatus struct {
	Ready      bool         `json:"ready"`
	HubRunning bool         `json:"hubRunning"`
	Clients    int          `json:"clients"`
	Rooms      int          `json:"rooms"`
	Entities   store.Counts `json:"entities"`
	Uptime     float64      `json:"uptime"`
}

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, LiveStatus{
		Alive:  true,
		Uptime: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 503 until the websocket hub is running.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := ReadyStatus{Uptime: time.Since(h.startTime).Seconds()}
	if h.wsHub != nil {
		status.HubRunning = h.wsHub.Running()
		status.Clients = h.wsHub.GetClientCount()
	}
	if h.relay != nil {
		status.Rooms = h.relay.RoomCount()
	}
	if h.store != nil {
		status.Entities = h.store.Counts()
	}
	status.Ready = status.HubRunning && h.store != nil

	code := http.StatusOK
	if !status.Ready {
		code = http.StatusServiceUnavailable
	}
	respondJSON(w, code, status)
}
