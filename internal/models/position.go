// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package models

// Position roles. Any other string is stored as reported.
const (
	RoleAeroCam = "AEROCAM"
	RoleUnknown = "UNKNOWN"
)

// Position is the most recent location report of one client.
type Position struct {
	ClientKey string   `json:"clientKey"`
	Role      string   `json:"role"`
	ID        string   `json:"id"`
	Lat       float64  `json:"lat"`
	Lon       float64  `json:"lon"`
	Radius    *float64 `json:"radius,omitempty"`
	UpdatedAt int64    `json:"updatedAt"`
}

// IsAeroCam reports whether the position feeds an aerocam record.
func (p *Position) IsAeroCam() bool {
	return p.Role == RoleAeroCam
}

// PositionReport is an inbound position update. Numeric fields are left
// untyped so that malformed telemetry can be normalized rather than rejected.
type PositionReport struct {
	ClientKey string `json:"clientKey,omitempty"`
	ID        string `json:"id,omitempty"`
	Role      string `json:"role,omitempty"`
	Lat       any    `json:"lat"`
	Lon       any    `json:"lon"`
	Radius    any    `json:"radius,omitempty"`
}

// PositionClear is an inbound request to drop a position entry.
type PositionClear struct {
	ClientKey string `json:"clientKey"`
}
