// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/aerocam-hub/internal/models"
)

// Common API errors
var (
	// ErrHubUnavailable indicates the websocket hub is not running.
	ErrHubUnavailable = errors.New("websocket hub is not running")

	// ErrBodyTooLarge indicates the request body exceeded maxBodyBytes.
	ErrBodyTooLarge = errors.New("request body too large")
)

// writeStoreError maps a typed store error to its HTTP response.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr *models.ValidationError
		nerr *models.NotFoundError
		cerr *models.ConflictError
	)
	switch {
	case errors.As(err, &verr):
		respondError(w, r, http.StatusBadRequest, models.CodeValidation, verr.Message, nil)
	case errors.As(err, &nerr):
		respondError(w, r, http.StatusNotFound, models.CodeNotFound, nerr.Message, nil)
	case errors.As(err, &cerr):
		respondError(w, r, http.StatusBadRequest, models.CodeConflict, cerr.Message, nil)
	default:
		respondError(w, r, http.StatusInternalServerError, models.CodeInternal, "error interno", err)
	}
}
