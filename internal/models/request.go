// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package models

// Request types and statuses as they appear on the wire.
const (
	RequestTypeImmediate = "inmediata"

	RequestStatusPending   = "pendiente"
	RequestStatusScheduled = "programada"
	RequestStatusAccepted  = "aceptada"
)

// DefaultRequestUser returns the identity attached to anonymous requests.
func DefaultRequestUser() map[string]any {
	return map[string]any{"name": "Visionario"}
}

// Request is a service request raised by a human requester.
//
// Status moves one way only: pendiente -> aceptada. Requests created with any
// type other than inmediata start as programada and have no transition.
type Request struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	Mode       string  `json:"mode"`
	Status     string  `json:"status"`
	User       any     `json:"user"`
	When       any     `json:"when"`
	Location   any     `json:"location"`
	Path       any     `json:"path"`
	AcceptedBy *string `json:"acceptedBy"`
}

// IsPending reports whether the request can still be accepted.
func (r *Request) IsPending() bool {
	return r.Status == RequestStatusPending
}

// RequestInput is the body of a request creation.
type RequestInput struct {
	Type     string `json:"type" validate:"required"`
	Mode     string `json:"mode" validate:"required"`
	User     any    `json:"user,omitempty"`
	When     any    `json:"when,omitempty"`
	Location any    `json:"location,omitempty"`
	Path     any    `json:"path,omitempty"`
}

// AcceptInput is the body of a request acceptance.
type AcceptInput struct {
	AeroCamID string `json:"aerocamId"`
}
