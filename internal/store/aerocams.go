// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package store

import (
	"github.com/tomtom215/aerocam-hub/internal/logging"
	"github.com/tomtom215/aerocam-hub/internal/models"
	"github.com/tomtom215/aerocam-hub/internal/validation"
)

func newAeroCam(id string) models.AeroCam {
	return models.AeroCam{
		ID:     id,
		Name:   models.DefaultAeroCamName,
		Radius: models.DefaultAeroCamRadius,
		Online: true,
	}
}

// coerceRadius returns a usable coverage radius. Radii must be positive.
func coerceRadius(v any) (float64, bool) {
	r, ok := models.CoerceFloat(v)
	if !ok || r <= 0 {
		return 0, false
	}
	return r, true
}

// UpsertAeroCam merges in over the existing record for in.ID, or over a
// fresh record seeded with defaults. Numeric fields that fail to coerce keep
// their previous value.
func (s *Store) UpsertAeroCam(in models.AeroCamInput) (models.AeroCam, error) {
	if verr := validation.ValidateStruct(&in); verr != nil {
		return models.AeroCam{}, models.NewValidationError("id", "id requerido")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cam, ok := s.aerocams.get(in.ID)
	if !ok {
		cam = newAeroCam(in.ID)
	}
	if in.Name != nil {
		cam.Name = *in.Name
	}
	cam.Lat = models.CoerceFloatOr(in.Lat, cam.Lat)
	cam.Lon = models.CoerceFloatOr(in.Lon, cam.Lon)
	if r, ok := coerceRadius(in.Radius); ok {
		cam.Radius = r
	}
	if in.Online != nil {
		cam.Online = *in.Online
	}
	cam.UpdatedAt = s.stamp(cam.UpdatedAt)

	s.aerocams.set(cam.ID, cam)
	s.publishAeroCams()

	logging.Debug().
		Str("aerocam_id", logging.SanitizeField(cam.ID)).
		Bool("created", !ok).
		Bool("online", cam.Online).
		Msg("AeroCam upserted")
	return cam, nil
}

// GetAeroCam returns the aerocam with the given id.
func (s *Store) GetAeroCam(id string) (models.AeroCam, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cam, ok := s.aerocams.get(id)
	if !ok {
		return models.AeroCam{}, models.NewNotFoundError("aerocam", id, "aerocam no existe")
	}
	return cam, nil
}

// ListAeroCams returns all aerocams in insertion order.
func (s *Store) ListAeroCams() []models.AeroCam {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aerocams.values()
}
