// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

/*
Package mqttbridge feeds position telemetry from field devices into the
store over MQTT.

Devices publish to two topics under the configured prefix:

	<prefix>/<device>/position   JSON position report
	<prefix>/<device>/status     "online" or "offline"

A position report is applied exactly like a WebSocket position:update whose
connection identity is "mqtt:<device>". Reports without a role are treated
as AEROCAM, so a device that only publishes coordinates still appears as an
online aerocam. An "offline" status runs the disconnect cleanup for the same
identity, which removes the device's position and takes its aerocam offline.

The bridge uses paho's auto-reconnect and subscribes again on every
(re)connection. A failed subscription is fatal and ends the bridge, so that
its supervisor restarts it.
*/
package mqttbridge
