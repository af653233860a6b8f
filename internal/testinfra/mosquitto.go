// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultMosquittoImage is the official Eclipse Mosquitto image.
	DefaultMosquittoImage = "eclipse-mosquitto:2"

	// DefaultMosquittoPort is the plain MQTT listener.
	DefaultMosquittoPort = "1883"

	// mosquittoNoAuthConfig ships with the image: one listener on 1883,
	// anonymous clients allowed.
	mosquittoNoAuthConfig = "/mosquitto-no-auth.conf"
)

// MosquittoContainer is a running broker.
type MosquittoContainer struct {
	testcontainers.Container
	// BrokerURL is tcp://host:port, ready for paho's AddBroker.
	BrokerURL string
}

// MosquittoOption configures the broker container.
type MosquittoOption func(*mosquittoConfig)

type mosquittoConfig struct {
	image        string
	startTimeout time.Duration
}

// WithMosquittoImage sets a custom broker image.
func WithMosquittoImage(image string) MosquittoOption {
	return func(c *mosquittoConfig) {
		c.image = image
	}
}

// WithStartTimeout sets how long to wait for the broker to listen.
func WithStartTimeout(timeout time.Duration) MosquittoOption {
	return func(c *mosquittoConfig) {
		c.startTimeout = timeout
	}
}

// NewMosquittoContainer starts an anonymous MQTT broker.
func NewMosquittoContainer(ctx context.Context, opts ...MosquittoOption) (*MosquittoContainer, error) {
	cfg := &mosquittoConfig{
		image:        DefaultMosquittoImage,
		startTimeout: 60 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	req := testcontainers.ContainerRequest{
		Image:        cfg.image,
		ExposedPorts: []string{DefaultMosquittoPort + "/tcp"},
		Cmd:          []string{"mosquitto", "-c", mosquittoNoAuthConfig},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort(DefaultMosquittoPort+"/tcp"),
			wait.ForLog("running"),
		).WithStartupTimeout(cfg.startTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("create mosquitto container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, DefaultMosquittoPort)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	return &MosquittoContainer{
		Container: container,
		BrokerURL: fmt.Sprintf("tcp://%s:%s", host, port.Port()),
	}, nil
}
