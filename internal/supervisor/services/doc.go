// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

/*
Package services adapts hub components to the suture v4 Service interface.

	type Service interface {
	    Serve(ctx context.Context) error
	}

Each wrapper translates one lifecycle pattern into Serve and names itself
through fmt.Stringer for supervisor logs:

  - HTTPServerService wraps ListenAndServe/Shutdown with a drain timeout.
  - WebSocketHubService delegates to Hub.RunWithContext.
  - MQTTBridgeService wraps a Start/Stop bridge and returns when the bridge
    reports a fatal error so that suture restarts it.

Components are reached through small interfaces (HTTPServer, ContextHub,
BridgeRunner) so tests can drive the wrappers without sockets or brokers.
*/
package services
