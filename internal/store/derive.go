// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package store

import (
	"github.com/tomtom215/aerocam-hub/internal/models"
)

// deriveAeroCam folds an AEROCAM position into the aerocam with the same id.
// Location is copied, the radius comes from the position, else the existing
// record, else the default, and the aerocam is forced online.
//
// Must be called with s.mu held.
func (s *Store) deriveAeroCam(pos *models.Position) models.AeroCam {
	cam, ok := s.aerocams.get(pos.ID)
	if !ok {
		cam = newAeroCam(pos.ID)
	}
	cam.Lat = pos.Lat
	cam.Lon = pos.Lon
	if pos.Radius != nil {
		cam.Radius = *pos.Radius
	}
	cam.Online = true
	cam.UpdatedAt = s.stamp(cam.UpdatedAt)

	s.aerocams.set(cam.ID, cam)
	return cam
}
