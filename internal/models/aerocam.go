// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package models

// Defaults applied to aerocams that have never reported a value.
const (
	DefaultAeroCamName   = "AeroCam"
	DefaultAeroCamRadius = 800.0
)

// AeroCam is a registered camera agent.
type AeroCam struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Radius    float64 `json:"radius"`
	Online    bool    `json:"online"`
	UpdatedAt int64   `json:"updatedAt"`
}

// AeroCamInput is the body of an aerocam upsert. Absent fields keep their
// previous value (or the default for a new aerocam).
type AeroCamInput struct {
	ID     string  `json:"id" validate:"required"`
	Name   *string `json:"name,omitempty"`
	Lat    any     `json:"lat,omitempty"`
	Lon    any     `json:"lon,omitempty"`
	Radius any     `json:"radius,omitempty"`
	Online *bool   `json:"online,omitempty"`
}
