// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package store

import (
	"strings"

	"github.com/tomtom215/aerocam-hub/internal/logging"
	"github.com/tomtom215/aerocam-hub/internal/models"
	"github.com/tomtom215/aerocam-hub/internal/validation"
)

func initialStatus(requestType string) string {
	if requestType == models.RequestTypeImmediate {
		return models.RequestStatusPending
	}
	return models.RequestStatusScheduled
}

// present reports whether an optional opaque field carries a value. Null,
// false, the empty string and zero count as absent.
func present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		f, ok := models.CoerceFloat(t)
		return !ok || f != 0
	default:
		return true
	}
}

func orNil(v any) any {
	if present(v) {
		return v
	}
	return nil
}

// CreateRequest stores a new request with a fresh identifier.
func (s *Store) CreateRequest(in models.RequestInput) (models.Request, error) {
	if verr := validation.ValidateStruct(&in); verr != nil {
		return models.Request{}, models.NewValidationError(strings.Join(verr.Fields(), "/"), "type/mode requeridos")
	}

	user := in.User
	if !present(user) {
		user = models.DefaultRequestUser()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req := models.Request{
		ID:       s.newID(),
		Type:     in.Type,
		Mode:     in.Mode,
		Status:   initialStatus(in.Type),
		User:     user,
		When:     orNil(in.When),
		Location: orNil(in.Location),
		Path:     orNil(in.Path),
	}
	s.requests.set(req.ID, req)
	s.publishRequests()

	logging.Debug().
		Str("request_id", req.ID).
		Str("type", logging.SanitizeField(req.Type)).
		Str("status", req.Status).
		Msg("Request created")
	return req, nil
}

// AcceptRequest moves a pending request to accepted by aerocamID.
//
// Checks run in order: unknown id (NotFoundError), not pending
// (ConflictError), empty aerocamID (ValidationError).
func (s *Store) AcceptRequest(id string, in models.AcceptInput) (models.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests.get(id)
	if !ok {
		return models.Request{}, models.NewNotFoundError("request", id, "request no existe")
	}
	if !req.IsPending() {
		return models.Request{}, models.NewConflictError("request", id, req.Status, "request no disponible")
	}
	if in.AeroCamID == "" {
		return models.Request{}, models.NewValidationError("aerocamId", "aerocamId requerido")
	}

	acceptedBy := in.AeroCamID
	req.Status = models.RequestStatusAccepted
	req.AcceptedBy = &acceptedBy
	s.requests.set(req.ID, req)

	s.publishRequests()
	s.pub.Broadcast(models.EventRequestAccepted, req)

	logging.Info().
		Str("request_id", req.ID).
		Str("aerocam_id", logging.SanitizeField(acceptedBy)).
		Msg("Request accepted")
	return req, nil
}

// GetRequest returns the request with the given id.
func (s *Store) GetRequest(id string) (models.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests.get(id)
	if !ok {
		return models.Request{}, models.NewNotFoundError("request", id, "request no existe")
	}
	return req, nil
}

// ListRequests returns all requests in insertion order.
func (s *Store) ListRequests() []models.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests.values()
}
