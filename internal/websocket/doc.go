// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

/*
Package websocket carries the hub's live connections.

It uses gorilla/websocket with a hub-client architecture:

	┌──────────┐
	│   Hub    │ ← Broadcast fans out to every joined client
	└────┬─────┘
	     │
	┌────┴─────┬─────────┬─────────┐
	│ Client1  │ Client2 │ Client3 │ ...
	└──────────┴─────────┴─────────┘

Each client has two goroutines:
  - readPump: reads frames, rate limits them and dispatches to the Handler
  - writePump: writes queued frames and keeps the connection alive with pings

Every frame is an envelope:

	{"type": "positions:update", "data": [...]}

Clients pick the wire format with the websocket subprotocol: "json" (the
default) or "msgpack" for binary MessagePack frames. Broadcasts are encoded
once per format.

# Lifecycle

The run loop (RunWithContext) owns registration. A new client is handed to
Handler.OnConnect, which must call join to enter the broadcast set; the
session layer uses that hook to send catch-up state atomically with joining.
When a client's connection ends, OnDisconnect runs exactly once.

Broadcast is synchronous and never blocks: clients whose send buffer is full
are dropped rather than slowing everyone else down.

# Usage

	hub := websocket.NewHub(websocket.DefaultConfig())
	hub.SetHandler(sessions)
	go hub.RunWithContext(ctx)

	conn, _ := upgrader.Upgrade(w, r, nil)
	client := websocket.NewClient(hub, conn, websocket.CodecFor(conn.Subprotocol()))
	if err := hub.Attach(r.Context(), client); err != nil {
	    conn.Close()
	}
*/
package websocket
