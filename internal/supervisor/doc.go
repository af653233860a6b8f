// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

/*
Package supervisor runs the hub's long-lived services under a suture v4 tree.

The tree has three layers so that a failure in one does not tear down the
others:

	RootSupervisor ("aerocam-hub")
	├── BridgeSupervisor ("bridge-layer")
	│   └── MQTTBridgeService (if MQTT_ENABLED)
	├── MessagingSupervisor ("messaging-layer")
	│   └── WebSocketHubService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashed service is restarted with suture's backoff. A broker outage keeps
the bridge layer restarting while WebSocket clients and the REST API stay up.

Supervisor events are logged through sutureslog, backed by the global
zerolog logger via logging.NewSlogLogger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(),
	    supervisor.TreeConfigFrom(cfg.Supervisor))
	if err != nil {
	    return err
	}
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	errCh := tree.ServeBackground(ctx)

Service wrappers live in the services subpackage.
*/
package supervisor
