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

// UpsertAeroCam creates or updates an aerocam.
//
// Absent fields keep their stored value; a new aerocam starts from the
// defaults (name AeroCam, radius 800, online).
func (h *Handler) UpsertAeroCam(w http.ResponseWriter, r *http.Request) {
	var in models.AeroCamInput
	if !decodeOrRespond(w, r, &in) {
		return
	}

	cam, err := h.store.UpsertAeroCam(in)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, cam)
}

// ListAeroCams returns every aerocam in registration order.
func (h *Handler) ListAeroCams(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.ListAeroCams())
}

// GetAeroCam returns one aerocam.
func (h *Handler) GetAeroCam(w http.ResponseWriter, r *http.Request) {
	cam, err := h.store.GetAeroCam(chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, cam)
}
