// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package services

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var errBridgeStopped = errors.New("mqtt bridge stopped")

// BridgeRunner matches the *mqttbridge.Bridge lifecycle.
//
// Start connects and subscribes. Done is closed, and Err set, when the
// bridge gives up on its broker. Stop disconnects, waiting at most quiesce
// for in-flight work.
type BridgeRunner interface {
	Start(ctx context.Context) error
	Done() <-chan struct{}
	Err() error
	Stop(quiesce time.Duration)
}

// MQTTBridgeService runs the MQTT device bridge under supervision.
//
// A failed Start or a fatal broker error is returned so that suture backs
// off and restarts the bridge. Other layers keep running meanwhile.
type MQTTBridgeService struct {
	bridge  BridgeRunner
	quiesce time.Duration
	name    string
}

// NewMQTTBridgeService creates a new MQTT bridge service wrapper.
// A non-positive quiesce becomes 250ms.
func NewMQTTBridgeService(bridge BridgeRunner, quiesce time.Duration) *MQTTBridgeService {
	if quiesce <= 0 {
		quiesce = 250 * time.Millisecond
	}
	return &MQTTBridgeService{
		bridge:  bridge,
		quiesce: quiesce,
		name:    "mqtt-bridge",
	}
}

// Serve implements suture.Service.
func (s *MQTTBridgeService) Serve(ctx context.Context) error {
	if err := s.bridge.Start(ctx); err != nil {
		return fmt.Errorf("mqtt bridge start failed: %w", err)
	}
	defer s.bridge.Stop(s.quiesce)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.bridge.Done():
		if err := s.bridge.Err(); err != nil {
			return fmt.Errorf("mqtt bridge stopped: %w", err)
		}
		return errBridgeStopped
	}
}

// String implements fmt.Stringer for supervisor logs.
func (s *MQTTBridgeService) String() string {
	return s.name
}
