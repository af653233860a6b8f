// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

// Package testinfra provides container-backed infrastructure for integration
// tests. It builds only with the integration tag:
//
//	go test -tags integration ./...
//
// # Mosquitto Container
//
// MosquittoContainer runs a real MQTT broker so the device bridge is tested
// against the same protocol implementation field devices talk to:
//
//	func TestBridge(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    broker, err := testinfra.NewMosquittoContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, broker.Container)
//
//	    cfg.MQTT.Broker = broker.BrokerURL
//	}
//
// Tests call SkipIfNoDocker first so that machines without a Docker daemon
// skip instead of failing.
package testinfra
