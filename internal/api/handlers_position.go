// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListPositions returns every live position in first-report order.
func (h *Handler) ListPositions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.ListPositions())
}

// GetPosition returns the position reported under clientKey.
func (h *Handler) GetPosition(w http.ResponseWriter, r *http.Request) {
	pos, err := h.store.GetPosition(chi.URLParam(r, "clientKey"))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, pos)
}

// ClearPosition drops the position reported under clientKey. Clearing an
// unknown key is not an error.
func (h *Handler) ClearPosition(w http.ResponseWriter, r *http.Request) {
	h.store.ClearPosition(chi.URLParam(r, "clientKey"))
	w.WriteHeader(http.StatusNoContent)
}
