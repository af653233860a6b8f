// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

/*
Package metrics provides Prometheus metrics collection and export for the hub.

Collectors are registered with the default registry through promauto and are
exposed at /metrics in Prometheus text format:

	curl http://localhost:3000/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: requests by method, endpoint and status code (counter)
  - api_request_duration_seconds: request latency by method and endpoint (histogram)
  - api_active_requests: in-flight requests (gauge)
  - api_rate_limit_hits_total: requests rejected by the HTTP rate limiter (counter)

Live Connection Metrics:
  - websocket_connections: connected clients (gauge)
  - websocket_messages_sent_total / websocket_messages_received_total (counters)
    Labels: event
  - websocket_messages_dropped_total: frames dropped for slow clients (counter)
  - websocket_rate_limited_total: inbound frames dropped by the per-client limiter (counter)
  - websocket_errors_total: errors by type (counter)

State Metrics:
  - hub_broadcasts_total: snapshot and event broadcasts by event (counter)
  - hub_entities: stored entities by kind (gauge)
  - hub_aerocams_online: aerocams currently online (gauge)
  - hub_signaling_rooms: rooms with at least one member (gauge)
  - hub_signaling_forwards_total: relayed signaling messages by event (counter)
  - hub_disconnect_cleanups_total: positions removed and aerocams set offline on disconnect (counter)
    Labels: effect

Telemetry Bridge Metrics:
  - mqtt_messages_total: MQTT messages by topic kind and result (counter)
  - mqtt_connected: 1 while the bridge holds a broker connection (gauge)

# Usage

	metrics.RecordAPIRequest("GET", "/api/aerocam/list", "200", elapsed)
	metrics.UpdateEntityGauges(counts.AeroCams, counts.Requests, counts.Positions, counts.OnlineAeroCams)
*/
package metrics
