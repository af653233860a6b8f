// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package main

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/tomtom215/aerocam-hub/internal/api"
	"github.com/tomtom215/aerocam-hub/internal/config"
	"github.com/tomtom215/aerocam-hub/internal/logging"
	"github.com/tomtom215/aerocam-hub/internal/models"
	"github.com/tomtom215/aerocam-hub/internal/session"
	"github.com/tomtom215/aerocam-hub/internal/signaling"
	"github.com/tomtom215/aerocam-hub/internal/store"
	ws "github.com/tomtom215/aerocam-hub/internal/websocket"
)

func init() {
	logging.Init(logging.Config{Level: "error", Output: io.Discard})
}

type testHub struct {
	store *store.Store
	relay *signaling.Relay
	url   string
}

func startHub(t *testing.T) *testHub {
	t.Helper()

	cfg := &config.Config{Security: config.SecurityConfig{CORSOrigins: []string{"*"}, RateLimitDisabled: true}}
	hub := ws.NewHub(ws.DefaultConfig())
	st := store.New(store.WithPublisher(hub))
	relay := signaling.NewRelay()
	hub.SetHandler(session.NewManager(st, relay))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hub.RunWithContext(ctx)
	}()
	waitFor(t, hub.Running, "hub running")

	srv := httptest.NewServer(api.NewRouter(api.NewHandler(st, hub, relay, cfg), cfg).SetupChi())
	t.Cleanup(func() {
		srv.Close()
		cancel()
		<-done
	})

	return &testHub{store: st, relay: relay, url: "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"}
}

func waitFor(t *testing.T, cond func() bool, what string) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func testOptions(url string) options {
	opts := defaultOptions()
	opts.URL = url
	opts.Interval = 10 * time.Millisecond
	opts.STUN = nil
	return opts
}

func TestSimulator_ReportsPositions(t *testing.T) {
	for _, codec := range []string{ws.SubprotocolJSON, ws.SubprotocolMsgpack} {
		t.Run(codec, func(t *testing.T) {
			h := startHub(t)
			opts := testOptions(h.url)
			opts.Codec = codec
			opts.Room = "r1"

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sim, err := dialSimulator(ctx, opts)
			if err != nil {
				t.Fatalf("dial: %v", err)
			}
			if sim.peerID == "" {
				t.Fatal("no peer id from hello")
			}

			runErr := make(chan error, 1)
			go func() { runErr <- sim.run(ctx) }()

			waitFor(t, func() bool {
				cam, err := h.store.GetAeroCam(sim.peerID)
				return err == nil && cam.Online && cam.Radius == opts.Radius
			}, "aerocam derived from simulator position")
			waitFor(t, func() bool { return len(h.relay.Members("r1")) == 1 }, "simulator in room")

			cancel()
			if err := <-runErr; err != nil {
				t.Errorf("run: %v", err)
			}
			sim.close()

			waitFor(t, func() bool {
				cam, err := h.store.GetAeroCam(sim.peerID)
				return err == nil && !cam.Online
			}, "aerocam offline after disconnect")
		})
	}
}

func TestSimulator_CountStops(t *testing.T) {
	h := startHub(t)
	opts := testOptions(h.url)
	opts.ID = "cam-fixed"
	opts.Count = 3

	sim, err := dialSimulator(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	defer sim.close()

	done := make(chan error, 1)
	go func() { done <- sim.run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("run did not stop after --count reports")
	}

	waitFor(t, func() bool {
		pos, err := h.store.GetPosition("cam-fixed")
		return err == nil && pos.Role == models.RoleAeroCam
	}, "position keyed by --id")
}

func TestSimulator_OffersToJoiningViewer(t *testing.T) {
	h := startHub(t)
	opts := testOptions(h.url)
	opts.Room = "r1"
	opts.WebRTC = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sim, err := dialSimulator(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	defer sim.close()
	go func() { _ = sim.run(ctx) }()
	waitFor(t, func() bool { return len(h.relay.Members("r1")) == 1 }, "simulator in room")

	viewer, _, err := (&websocket.Dialer{Subprotocols: []string{"json"}}).Dial(h.url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer viewer.Close()
	if err := viewer.WriteJSON(ws.Message{Type: models.EventJoin, Data: models.JoinRequest{Room: "r1", Role: "VIEWER"}}); err != nil {
		t.Fatal(err)
	}

	_ = viewer.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		var frame struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		}
		if err := viewer.ReadJSON(&frame); err != nil {
			t.Fatalf("no offer received: %v", err)
		}
		if frame.Type != models.EventOffer {
			continue
		}
		var payload struct {
			SDP sessionDescription `json:"sdp"`
		}
		if err := json.Unmarshal(frame.Data, &payload); err != nil {
			t.Fatalf("offer payload %s: %v", frame.Data, err)
		}
		if payload.SDP.Type != "offer" || !strings.HasPrefix(payload.SDP.SDP, "v=0") {
			t.Errorf("offer = %+v", payload.SDP)
		}
		return
	}
}

func TestOfferer_AnswerWithoutSession(t *testing.T) {
	o := newOfferer(&simulator{logger: logging.WithComponent("sim")}, nil)
	payload, _ := json.Marshal(map[string]any{"sdp": map[string]string{"type": "answer", "sdp": "v=0"}})
	in := ws.NewInbound(models.EventAnswer, payload, ws.JSONCodec{})

	if err := o.applyAnswer(in); err != errNoPeerConnection {
		t.Errorf("applyAnswer = %v, want errNoPeerConnection", err)
	}
	if err := o.addCandidate(ws.NewInbound(models.EventICE, []byte(`{"candidate":{"candidate":""}}`), ws.JSONCodec{})); err != errNoPeerConnection {
		t.Errorf("addCandidate = %v, want errNoPeerConnection", err)
	}
}
