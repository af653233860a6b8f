// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/aerocam-hub/internal/models"
)

// CreateRequest stores a new service request.
// inmediata requests start pendiente; every other type starts programada.
func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var in models.RequestInput
	if !decodeOrRespond(w, r, &in) {
		return
	}

	req, err := h.store.CreateRequest(in)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

// ListRequests returns every request in creation order.
func (h *Handler) ListRequests(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.ListRequests())
}

// GetRequest returns one request.
func (h *Handler) GetRequest(w http.ResponseWriter, r *http.Request) {
	req, err := h.store.GetRequest(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

// AcceptRequest assigns a pending request to an aerocam.
func (h *Handler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	var in models.AcceptInput
	if !decodeOrRespond(w, r, &in) {
		return
	}

	req, err := h.store.AcceptRequest(chi.URLParam(r, "id"), in)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}
