// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

/*
Command aerocam-sim simulates a field aerocam against a running hub.

It connects to the hub's WebSocket endpoint, reports a position that orbits
a center point, optionally joins a signaling room, and with --webrtc opens a
pion PeerConnection towards every peer that joins the room. The offer and
trickled ICE candidates travel through the hub's relay and the viewer's
answer is applied when it arrives.

Usage:

	aerocam-sim [flags]

Examples:

	# Report positions every second using the connection id as identity
	aerocam-sim --url ws://localhost:3000/ws

	# Fixed identity, MessagePack frames, offer video to viewers in room "r1"
	aerocam-sim --id cam-7 --codec msgpack --room r1 --webrtc

Positions reported with --id survive a reconnect; without it the hub
removes the position and marks the aerocam offline when the simulator
disconnects.
*/
package main
