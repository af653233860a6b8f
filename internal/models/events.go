// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub
package models

// Live-connection event names. Snapshot events carry the full mapping; the
// others carry a single record or a relayed signaling payload.
const (
	EventAeroCamsUpdate  = "aerocams:update"
	EventRequestsUpdate  = "requests:update"
	EventPositionsUpdate = "positions:update"
	EventRequestAccepted = "request:accepted"

	EventPositionUpdate = "position:update"
	EventPositionClear  = "position:clear"

	EventJoin       = "join"
	EventPeerJoined = "peer-joined"
	EventOffer      = "offer"
	EventAnswer     = "answer"
	EventICE        = "ice"

	EventHello = "hello"
	EventPing  = "ping"
	EventPong  = "pong"
	EventError = "error"
)

// PeerJoined is sent to the existing members of a room when a peer joins.
type PeerJoined struct {
	Role   string `json:"role"`
	PeerID string `json:"peerId"`
}

// Hello is the first message on every live connection. PeerID is the
// transport identifier used by disconnect cleanup.
type Hello struct {
	PeerID string `json:"peerId"`
}

// ErrorEvent reports a rejected live message back to its sender.
type ErrorEvent struct {
	Event   string `json:"event,omitempty"`
	Message string `json:"message"`
}

// JoinRequest is the inbound join payload.
type JoinRequest struct {
	Room string `json:"room"`
	Role string `json:"role"`
}

// SignalRequest is the inbound offer, answer or ice payload. SDP and
// Candidate are relayed without inspection.
type SignalRequest struct {
	Room      string `json:"room"`
	SDP       any    `json:"sdp,omitempty"`
	Candidate any    `json:"candidate,omitempty"`
}

// SDPPayload is the outbound offer and answer payload.
type SDPPayload struct {
	SDP any `json:"sdp"`
}

// ICEPayload is the outbound ice payload.
type ICEPayload struct {
	Candidate any `json:"candidate"`
}
