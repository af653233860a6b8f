// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/tomtom215/aerocam-hub/internal/api"
	"github.com/tomtom215/aerocam-hub/internal/config"
	"github.com/tomtom215/aerocam-hub/internal/logging"
	"github.com/tomtom215/aerocam-hub/internal/metrics"
	"github.com/tomtom215/aerocam-hub/internal/mqttbridge"
	"github.com/tomtom215/aerocam-hub/internal/session"
	"github.com/tomtom215/aerocam-hub/internal/signaling"
	"github.com/tomtom215/aerocam-hub/internal/store"
	"github.com/tomtom215/aerocam-hub/internal/supervisor"
	"github.com/tomtom215/aerocam-hub/internal/supervisor/services"
	ws "github.com/tomtom215/aerocam-hub/internal/websocket"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app holds the wired components.
type app struct {
	cfg    *config.Config
	store  *store.Store
	hub    *ws.Hub
	relay  *signaling.Relay
	bridge *mqttbridge.Bridge
	router http.Handler
	server *http.Server
}

// newApp wires the components. The store publishes through the hub and the
// hub hands connections to the session manager.
func newApp(cfg *config.Config) *app {
	hub := ws.NewHub(ws.Config{
		SendBuffer:        cfg.WebSocket.SendBuffer,
		MaxMessageSize:    cfg.WebSocket.MaxMessageSize,
		MessagesPerSecond: cfg.WebSocket.MessagesPerSecond,
		Burst:             cfg.WebSocket.Burst,
		PingInterval:      cfg.WebSocket.PingInterval,
		PongWait:          cfg.WebSocket.PongWait,
		WriteWait:         cfg.WebSocket.WriteWait,
	})
	st := store.New(store.WithPublisher(hub))
	relay := signaling.NewRelay()
	hub.SetHandler(session.NewManager(st, relay))

	handler := api.NewHandler(st, hub, relay, cfg)
	router := api.NewRouter(handler, cfg).SetupChi()

	a := &app{
		cfg:    cfg,
		store:  st,
		hub:    hub,
		relay:  relay,
		router: router,
		server: services.NewHTTPServer(cfg.Server, router),
	}
	if cfg.MQTT.Enabled {
		a.bridge = mqttbridge.New(cfg.MQTT, st)
	}
	return a
}

// tree builds the supervisor tree for the app.
func (a *app) tree() (*supervisor.SupervisorTree, error) {
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfigFrom(a.cfg.Supervisor))
	if err != nil {
		return nil, err
	}

	if a.bridge != nil {
		tree.AddBridgeService(services.NewMQTTBridgeService(a.bridge, 0))
		logging.Info().Str("broker", a.cfg.MQTT.Broker).Msg("MQTT bridge added to supervisor tree")
	}
	tree.AddMessagingService(services.NewWebSocketHubService(a.hub))
	tree.AddAPIService(services.NewHTTPServerService(a.server, a.cfg.Server.ShutdownTimeout))
	return tree, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().Str("version", version).Msg("Starting AeroCam Hub with supervisor tree")
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*). Set explicit origins in production")
	}

	a := newApp(cfg)
	tree, err := a.tree()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logging.Info().Str("addr", a.server.Addr).Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
		treeErr = <-errCh
	case treeErr = <-errCh:
		cancel()
	}
	if treeErr != nil && !errors.Is(treeErr, context.Canceled) {
		logging.Error().Err(treeErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("AeroCam Hub stopped")
}
