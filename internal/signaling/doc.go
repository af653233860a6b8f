// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

// Package signaling relays WebRTC handshake messages between peers that
// share a room. The relay keeps only room membership; SDP and ICE payloads
// pass through untouched and room size is left to the clients.
package signaling
