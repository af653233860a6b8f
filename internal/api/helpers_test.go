// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

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

type testEnv struct {
	handler *Handler
	store   *store.Store
	hub     *ws.Hub
	relay   *signaling.Relay
	router  http.Handler
}

func testConfig() *config.Config {
	return &config.Config{
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitDisabled: true,
		},
	}
}

// newTestEnv wires store, hub, relay and session manager the way the server
// does. The hub runs only when run is true.
func newTestEnv(t *testing.T, cfg *config.Config, run bool) *testEnv {
	t.Helper()

	hub := ws.NewHub(ws.DefaultConfig())
	st := store.New(store.WithPublisher(hub))
	relay := signaling.NewRelay()
	hub.SetHandler(session.NewManager(st, relay))

	if run {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = hub.RunWithContext(ctx)
		}()
		t.Cleanup(func() {
			cancel()
			<-done
		})
		waitFor(t, hub.Running, "hub running")
	}

	h := NewHandler(st, hub, relay, cfg)
	return &testEnv{
		handler: h,
		store:   st,
		hub:     hub,
		relay:   relay,
		router:  NewRouter(h, cfg).SetupChi(),
	}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, code, message string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	got := decodeJSON[models.ErrorResponse](t, rec)
	if got.Code != code || got.Error != message {
		t.Errorf("error body = %+v, want {%q %q}", got, message, code)
	}
}

func waitFor(t *testing.T, cond func() bool, what string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}
