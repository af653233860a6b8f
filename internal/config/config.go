// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional config file and environment variables.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Security   SecurityConfig   `koanf:"security"`
	WebSocket  WebSocketConfig  `koanf:"websocket"`
	MQTT       MQTTConfig       `koanf:"mqtt"`
	Logging    LoggingConfig    `koanf:"logging"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// StaticDir is served at / when it exists. Empty disables static files.
	StaticDir string `koanf:"static_dir"`
}

// SecurityConfig holds CORS and HTTP rate limiting settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// WebSocketConfig holds live connection limits.
type WebSocketConfig struct {
	SendBuffer        int           `koanf:"send_buffer"`
	MaxMessageSize    int64         `koanf:"max_message_size"`
	MessagesPerSecond float64       `koanf:"messages_per_second"`
	Burst             int           `koanf:"burst"`
	PingInterval      time.Duration `koanf:"ping_interval"`
	PongWait          time.Duration `koanf:"pong_wait"`
	WriteWait         time.Duration `koanf:"write_wait"`
}

// MQTTConfig holds the optional telemetry bridge settings.
//
// Devices publish to <topic_prefix>/<device>/position and
// <topic_prefix>/<device>/status.
type MQTTConfig struct {
	Enabled        bool          `koanf:"enabled"`
	Broker         string        `koanf:"broker"`
	ClientID       string        `koanf:"client_id"`
	Username       string        `koanf:"username"`
	Password       string        `koanf:"password"`
	TopicPrefix    string        `koanf:"topic_prefix"`
	QoS            int           `koanf:"qos"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json (production) or console (development).
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// SupervisorConfig tunes the service supervisor tree.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureDecay     float64       `koanf:"failure_decay"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the HTTP listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
