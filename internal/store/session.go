// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package store

import (
	"github.com/tomtom215/aerocam-hub/internal/logging"
	"github.com/tomtom215/aerocam-hub/internal/metrics"
)

// Release describes what disconnect cleanup changed.
type Release struct {
	PositionsRemoved int
	AeroCamsOffline  int
}

// Changed reports whether cleanup mutated anything.
func (r Release) Changed() bool {
	return r.PositionsRemoved > 0 || r.AeroCamsOffline > 0
}

// ReleaseConnection drops the state owned by a closed connection.
//
// Ownership is matched narrowly on the transport identifier: positions whose
// clientKey or id equals connID are removed, and the aerocam whose id equals
// connID is set offline. Entries keyed by an application id are untouched.
func (s *Store) ReleaseConnection(connID string) Release {
	var rel Release
	if connID == "" {
		return rel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, pos := range s.positions.values() {
		if pos.ClientKey == connID || pos.ID == connID {
			s.positions.delete(pos.ClientKey)
			rel.PositionsRemoved++
		}
	}

	if cam, ok := s.aerocams.get(connID); ok && cam.Online {
		cam.Online = false
		cam.UpdatedAt = s.stamp(cam.UpdatedAt)
		s.aerocams.set(cam.ID, cam)
		rel.AeroCamsOffline++
	}

	if rel.PositionsRemoved > 0 {
		s.publishPositions()
	}
	if rel.AeroCamsOffline > 0 {
		s.publishAeroCams()
	}

	if rel.Changed() {
		metrics.RecordDisconnectCleanup(rel.PositionsRemoved, rel.AeroCamsOffline)
		logging.Debug().
			Str("conn_id", connID).
			Int("positions_removed", rel.PositionsRemoved).
			Int("aerocams_offline", rel.AeroCamsOffline).
			Msg("Released connection state")
	}
	return rel
}
