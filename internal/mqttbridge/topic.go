// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package mqttbridge

import (
	"strings"
)

// Message kinds carried in the last topic level.
const (
	KindPosition = "position"
	KindStatus   = "status"
)

// IdentityPrefix is prepended to the device name to form its connection
// identity.
const IdentityPrefix = "mqtt:"

// Identity returns the connection identity used for a device.
func Identity(device string) string {
	return IdentityPrefix + device
}

// SubscriptionTopics returns the wildcard filters the bridge subscribes to.
func SubscriptionTopics(prefix string) []string {
	prefix = strings.Trim(prefix, "/")
	return []string{
		prefix + "/+/" + KindPosition,
		prefix + "/+/" + KindStatus,
	}
}

// ParseTopic splits "<prefix>/<device>/<kind>". ok is false for topics
// outside the prefix, with an empty device, or of an unknown kind.
func ParseTopic(prefix, topic string) (device, kind string, ok bool) {
	prefix = strings.Trim(prefix, "/")
	rest, found := strings.CutPrefix(topic, prefix+"/")
	if !found {
		return "", "", false
	}
	device, kind, found = strings.Cut(rest, "/")
	if !found || device == "" || strings.Contains(kind, "/") {
		return "", "", false
	}
	switch kind {
	case KindPosition, KindStatus:
		return device, kind, true
	default:
		return "", "", false
	}
}
