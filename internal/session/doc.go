// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

/*
Package session binds live connections to the hub's shared state.

The Manager is the websocket hub's lifecycle handler:

  - On connect it sends hello{peerId} and the three entity snapshots
    privately, then joins the client to the broadcast set. Both happen under
    the store lock, so no mutation can slip between catch-up and join.
  - Inbound messages are routed to the signaling relay (join, offer, answer,
    ice) or to the store (position:update, position:clear).
  - On disconnect the peer leaves every room and the state keyed by its
    connection ID is released.
*/
package session
