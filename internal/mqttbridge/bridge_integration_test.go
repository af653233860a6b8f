// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

//go:build integration

package mqttbridge

import (
	"context"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/tomtom215/aerocam-hub/internal/config"
	"github.com/tomtom215/aerocam-hub/internal/store"
	"github.com/tomtom215/aerocam-hub/internal/testinfra"
)

func TestBridge_Mosquitto(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	testinfra.SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	broker, err := testinfra.NewMosquittoContainer(ctx)
	if err != nil {
		t.Fatalf("Failed to start mosquitto: %v", err)
	}
	defer testinfra.CleanupContainer(t, ctx, broker.Container)

	st := store.New()
	bridge := New(config.MQTTConfig{
		Broker:         broker.BrokerURL,
		ClientID:       "aerocam-hub-it",
		TopicPrefix:    "aerocam",
		QoS:            1,
		ConnectTimeout: 10 * time.Second,
	}, st)
	if err := bridge.Start(ctx); err != nil {
		testinfra.DumpLogs(t, ctx, broker.Container)
		t.Fatalf("bridge start: %v", err)
	}
	defer bridge.Stop(250 * time.Millisecond)

	device := mqtt.NewClient(mqtt.NewClientOptions().AddBroker(broker.BrokerURL).SetClientID("drone-7"))
	if token := device.Connect(); token.Wait() && token.Error() != nil {
		t.Fatalf("device connect: %v", token.Error())
	}
	defer device.Disconnect(250)

	publish := func(topic, payload string) {
		t.Helper()
		token := device.Publish(topic, 1, false, payload)
		token.Wait()
		if err := token.Error(); err != nil {
			t.Fatalf("publish %s: %v", topic, err)
		}
	}

	// Subscriptions are made asynchronously after connect; publish until
	// the first report lands.
	deadline := time.Now().Add(15 * time.Second)
	for {
		publish("aerocam/drone-7/position", `{"lat":40.4,"lon":-3.7,"radius":500}`)
		if cam, err := st.GetAeroCam(Identity("drone-7")); err == nil && cam.Online {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("position never reached the store")
		}
		time.Sleep(200 * time.Millisecond)
	}

	publish("aerocam/drone-7/status", "offline")

	deadline = time.Now().Add(10 * time.Second)
	for {
		cam, err := st.GetAeroCam(Identity("drone-7"))
		if err == nil && !cam.Online && len(st.ListPositions()) == 0 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("device not released: cam=%+v positions=%d", cam, len(st.ListPositions()))
		}
		time.Sleep(100 * time.Millisecond)
	}
}
