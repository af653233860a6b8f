// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of requests rejected by the HTTP rate limiter",
		},
		[]string{"endpoint"},
	)

	// WebSocket Metrics
	WSConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connections",
			Help: "Current number of active WebSocket connections",
		},
	)

	WSMessagesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_messages_sent_total",
			Help: "Total number of WebSocket messages queued for delivery",
		},
		[]string{"event"},
	)

	WSMessagesReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_messages_received_total",
			Help: "Total number of WebSocket messages received",
		},
		[]string{"event"},
	)

	WSMessagesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_messages_dropped_total",
			Help: "Total number of WebSocket messages dropped because a client buffer was full",
		},
	)

	WSRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_rate_limited_total",
			Help: "Total number of inbound WebSocket messages dropped by the per-client limiter",
		},
	)

	WSErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_errors_total",
			Help: "Total number of WebSocket errors",
		},
		[]string{"error_type"},
	)

	// Hub State Metrics
	Broadcasts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hub_broadcasts_total",
			Help: "Total number of broadcasts fanned out to connected clients",
		},
		[]string{"event"},
	)

	Entities = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hub_entities",
			Help: "Current number of stored entities",
		},
		[]string{"kind"}, // "aerocams", "requests", "positions"
	)

	AeroCamsOnline = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hub_aerocams_online",
			Help: "Current number of aerocams marked online",
		},
	)

	SignalingRooms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hub_signaling_rooms",
			Help: "Current number of signaling rooms with at least one member",
		},
	)

	SignalingForwards = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hub_signaling_forwards_total",
			Help: "Total number of signaling messages delivered to room members",
		},
		[]string{"event"},
	)

	DisconnectCleanups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hub_disconnect_cleanups_total",
			Help: "Total number of entities touched by disconnect cleanup",
		},
		[]string{"effect"}, // "position_removed", "aerocam_offline"
	)

	// MQTT Bridge Metrics
	MQTTMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mqtt_messages_total",
			Help: "Total number of MQTT telemetry messages handled",
		},
		[]string{"kind", "result"},
	)

	MQTTConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mqtt_connected",
			Help: "1 while the MQTT bridge holds a broker connection",
		},
	)

	// Application Info
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordBroadcast counts one fan-out of event and the frames it queued.
func RecordBroadcast(event string, delivered, dropped int) {
	Broadcasts.WithLabelValues(event).Inc()
	WSMessagesSent.WithLabelValues(event).Add(float64(delivered))
	WSMessagesDropped.Add(float64(dropped))
}

// UpdateEntityGauges publishes the current store sizes.
func UpdateEntityGauges(aerocams, requests, positions, online int) {
	Entities.WithLabelValues("aerocams").Set(float64(aerocams))
	Entities.WithLabelValues("requests").Set(float64(requests))
	Entities.WithLabelValues("positions").Set(float64(positions))
	AeroCamsOnline.Set(float64(online))
}

// RecordDisconnectCleanup counts the effects of one connection release.
func RecordDisconnectCleanup(positionsRemoved, aerocamsOffline int) {
	if positionsRemoved > 0 {
		DisconnectCleanups.WithLabelValues("position_removed").Add(float64(positionsRemoved))
	}
	if aerocamsOffline > 0 {
		DisconnectCleanups.WithLabelValues("aerocam_offline").Add(float64(aerocamsOffline))
	}
}

// RecordSignalingForward counts relayed signaling frames.
func RecordSignalingForward(event string, recipients int) {
	if recipients > 0 {
		SignalingForwards.WithLabelValues(event).Add(float64(recipients))
	}
}

// RecordMQTTMessage records one handled MQTT message.
func RecordMQTTMessage(kind string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	MQTTMessages.WithLabelValues(kind, result).Inc()
}
