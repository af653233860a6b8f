// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

/*
Package config provides centralized configuration management for AeroCam Hub.

Configuration is layered with Koanf v2:
  1. Defaults from defaultConfig()
  2. Optional YAML file (CONFIG_PATH, config.yaml, /etc/aerocam-hub/config.yaml)
  3. Environment variables, which win over everything else

The merged result is validated before it is returned.

# Environment Variables

Server:
  - PORT or HTTP_PORT: Listen port (default: 3000)
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT
  - SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
  - STATIC_DIR: Directory served at / (default: public)

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Live connections:
  - WS_SEND_BUFFER, WS_MAX_MESSAGE_SIZE
  - WS_MESSAGES_PER_SECOND, WS_BURST
  - WS_PING_INTERVAL, WS_PONG_WAIT, WS_WRITE_WAIT

MQTT telemetry bridge:
  - MQTT_ENABLED (default: false)
  - MQTT_BROKER: e.g. tcp://localhost:1883
  - MQTT_CLIENT_ID, MQTT_USERNAME, MQTT_PASSWORD
  - MQTT_TOPIC_PREFIX (default: aerocam)
  - MQTT_QOS (0, 1 or 2)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include caller file:line (default: false)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
*/
package config
