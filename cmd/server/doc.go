// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

/*
Package main is the entry point for the AeroCam Hub server.

The hub keeps the live state of aerocams, capture requests and client
positions in memory, pushes every change to WebSocket clients, relays WebRTC
signaling between peers in a room, and serves a REST API plus the static web
client.

# Application Architecture

Services run under a suture v4 tree:

	RootSupervisor ("aerocam-hub")
	├── BridgeSupervisor ("bridge-layer")
	│   └── MQTT bridge (optional, MQTT_ENABLED=true)
	├── MessagingSupervisor ("messaging-layer")
	│   └── WebSocket hub
	└── APISupervisor ("api-layer")
	    └── HTTP server

Initialization order:

 1. Configuration: koanf v2 (defaults, config file, environment)
 2. Logging: zerolog, JSON or console
 3. Hub, store, signaling relay and session manager
 4. Chi router with middleware
 5. Supervisor tree, then signal handling

# Configuration

Priority: environment variables > config file > defaults.

	PORT=3000                 # HTTP port
	HTTP_HOST=0.0.0.0
	STATIC_DIR=public         # web client, empty to disable
	CORS_ORIGINS=*            # comma separated
	LOG_LEVEL=info            # trace, debug, info, warn, error
	LOG_FORMAT=json           # json or console
	MQTT_ENABLED=false
	MQTT_BROKER=tcp://localhost:1883

See internal/config for the full list.

# Signals

SIGINT and SIGTERM cancel the root context. The HTTP server drains for
SHUTDOWN_TIMEOUT, the hub notifies and closes every client, and the MQTT
bridge disconnects.
*/
package main
