// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package store

import (
	"github.com/tomtom215/aerocam-hub/internal/models"
)

// clientKeyFor picks the position key: explicit key, then reported id,
// then the reporting connection's transport identifier.
func clientKeyFor(r *models.PositionReport, connID string) string {
	switch {
	case r.ClientKey != "":
		return r.ClientKey
	case r.ID != "":
		return r.ID
	default:
		return connID
	}
}

// UpsertPosition records the latest report for its client key. It never
// fails: unparsable coordinates become 0 and an unusable radius is dropped.
// A report with role AEROCAM also updates the aerocam named by its id.
func (s *Store) UpsertPosition(r models.PositionReport, connID string) models.Position {
	key := clientKeyFor(&r, connID)
	pos := models.Position{
		ClientKey: key,
		Role:      r.Role,
		ID:        r.ID,
		Lat:       models.CoerceFloatOr(r.Lat, 0),
		Lon:       models.CoerceFloatOr(r.Lon, 0),
	}
	if pos.Role == "" {
		pos.Role = models.RoleUnknown
	}
	if pos.ID == "" {
		pos.ID = key
	}
	if radius, ok := coerceRadius(r.Radius); ok {
		pos.Radius = &radius
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, _ := s.positions.get(key)
	pos.UpdatedAt = s.stamp(prev.UpdatedAt)
	s.positions.set(key, pos)
	s.publishPositions()

	if pos.IsAeroCam() {
		s.deriveAeroCam(&pos)
		s.publishAeroCams()
	}
	return pos
}

// ClearPosition removes the entry for clientKey. It reports whether an
// entry existed; clearing an unknown key is not an error.
func (s *Store) ClearPosition(clientKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.positions.delete(clientKey) {
		return false
	}
	s.publishPositions()
	return true
}

// GetPosition returns the position stored under clientKey.
func (s *Store) GetPosition(clientKey string) (models.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.positions.get(clientKey)
	if !ok {
		return models.Position{}, models.NewNotFoundError("position", clientKey, "position no existe")
	}
	return pos, nil
}

// ListPositions returns all positions in insertion order.
func (s *Store) ListPositions() []models.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.positions.values()
}
