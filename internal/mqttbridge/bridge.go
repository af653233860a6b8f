// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package mqttbridge

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/aerocam-hub/internal/config"
	"github.com/tomtom215/aerocam-hub/internal/logging"
	"github.com/tomtom215/aerocam-hub/internal/metrics"
	"github.com/tomtom215/aerocam-hub/internal/models"
	"github.com/tomtom215/aerocam-hub/internal/store"
)

var (
	// ErrUnknownTopic is returned for messages outside the bridge's topics.
	ErrUnknownTopic = errors.New("unknown topic")

	// ErrConnectTimeout is returned when the broker does not answer in time.
	ErrConnectTimeout = errors.New("mqtt connect timeout")
)

// Sink receives device state. Satisfied by *store.Store.
type Sink interface {
	UpsertPosition(r models.PositionReport, connID string) models.Position
	ReleaseConnection(connID string) store.Release
}

// Bridge subscribes to device telemetry and applies it to a Sink.
type Bridge struct {
	cfg    config.MQTTConfig
	sink   Sink
	logger zerolog.Logger

	mu     sync.Mutex
	client mqtt.Client
	done   chan struct{}
	err    error
}

// New creates a bridge. Nothing connects until Start.
func New(cfg config.MQTTConfig, sink Sink) *Bridge {
	return &Bridge{
		cfg:    cfg,
		sink:   sink,
		logger: logging.WithComponent("mqtt"),
		done:   make(chan struct{}),
	}
}

func (b *Bridge) clientOptions() *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions().
		AddBroker(b.cfg.Broker).
		SetClientID(b.cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(false).
		SetConnectTimeout(b.cfg.ConnectTimeout).
		SetOrderMatters(false).
		SetOnConnectHandler(b.onConnect).
		SetConnectionLostHandler(b.onConnectionLost)
	if b.cfg.Username != "" {
		opts = opts.SetUsername(b.cfg.Username).SetPassword(b.cfg.Password)
	}
	return opts
}

// Start connects to the broker. Subscriptions are made by the connect
// handler so that they survive reconnects. Start may be called again after
// Stop.
func (b *Bridge) Start(ctx context.Context) error {
	b.mu.Lock()
	select {
	case <-b.done:
		b.done = make(chan struct{})
		b.err = nil
	default:
	}
	client := mqtt.NewClient(b.clientOptions())
	b.client = client
	b.mu.Unlock()

	timeout := b.cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	token := client.Connect()
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return fmt.Errorf("connect %s: %w", b.cfg.Broker, err)
		}
	case <-timer.C:
		client.Disconnect(0)
		return fmt.Errorf("connect %s: %w", b.cfg.Broker, ErrConnectTimeout)
	case <-ctx.Done():
		client.Disconnect(0)
		return ctx.Err()
	}

	b.logger.Info().Str("broker", b.cfg.Broker).Str("client_id", b.cfg.ClientID).Msg("MQTT bridge connected")
	return nil
}

// Stop disconnects, waiting at most quiesce for in-flight work.
func (b *Bridge) Stop(quiesce time.Duration) {
	b.mu.Lock()
	client := b.client
	b.client = nil
	b.mu.Unlock()

	if client != nil {
		client.Disconnect(uint(quiesce.Milliseconds()))
	}
	metrics.MQTTConnected.Set(0)
	b.logger.Info().Msg("MQTT bridge stopped")
}

// Done is closed when the bridge hits a fatal error.
func (b *Bridge) Done() <-chan struct{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.done
}

// Err returns the fatal error, if any.
func (b *Bridge) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

func (b *Bridge) fail(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	select {
	case <-b.done:
		return
	default:
	}
	b.err = err
	close(b.done)
}

func (b *Bridge) onConnect(client mqtt.Client) {
	metrics.MQTTConnected.Set(1)
	qos := byte(b.cfg.QoS)
	for _, topic := range SubscriptionTopics(b.cfg.TopicPrefix) {
		token := client.Subscribe(topic, qos, b.onMessage)
		token.Wait()
		if err := token.Error(); err != nil {
			b.logger.Error().Err(err).Str("topic", topic).Msg("MQTT subscribe failed")
			b.fail(fmt.Errorf("subscribe %s: %w", topic, err))
			return
		}
		b.logger.Debug().Str("topic", topic).Msg("MQTT subscribed")
	}
}

func (b *Bridge) onConnectionLost(_ mqtt.Client, err error) {
	metrics.MQTTConnected.Set(0)
	b.logger.Warn().Err(err).Msg("MQTT connection lost, reconnecting")
}

func (b *Bridge) onMessage(_ mqtt.Client, msg mqtt.Message) {
	if err := b.Handle(msg.Topic(), msg.Payload()); err != nil {
		b.logger.Warn().Err(err).Str("topic", logging.SanitizeField(msg.Topic())).Msg("MQTT message dropped")
	}
}

// Handle applies one message. It is called from paho's delivery goroutines
// and is safe for concurrent use.
func (b *Bridge) Handle(topic string, payload []byte) error {
	device, kind, ok := ParseTopic(b.cfg.TopicPrefix, topic)
	if !ok {
		metrics.RecordMQTTMessage("unknown", ErrUnknownTopic)
		return fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}

	var err error
	switch kind {
	case KindPosition:
		err = b.handlePosition(device, payload)
	case KindStatus:
		b.handleStatus(device, payload)
	}
	metrics.RecordMQTTMessage(kind, err)
	return err
}

func (b *Bridge) handlePosition(device string, payload []byte) error {
	var report models.PositionReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return fmt.Errorf("decode position from %s: %w", device, err)
	}
	if report.Role == "" {
		report.Role = models.RoleAeroCam
	}
	pos := b.sink.UpsertPosition(report, Identity(device))
	b.logger.Debug().
		Str("device", device).
		Str("client_key", pos.ClientKey).
		Float64("lat", pos.Lat).
		Float64("lon", pos.Lon).
		Msg("MQTT position applied")
	return nil
}

func (b *Bridge) handleStatus(device string, payload []byte) {
	status := strings.ToLower(strings.TrimSpace(string(payload)))
	if status != "offline" {
		return
	}
	rel := b.sink.ReleaseConnection(Identity(device))
	b.logger.Info().
		Str("device", device).
		Int("positions_removed", rel.PositionsRemoved).
		Int("aerocams_offline", rel.AeroCamsOffline).
		Msg("MQTT device offline")
}
