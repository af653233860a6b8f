// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package api

import (
	"net/http"
	"testing"
)

func TestHealthLive(t *testing.T) {
	env := newTestEnv(t, testConfig(), false)
	rec := env.do(t, http.MethodGet, "/health/live", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !decodeJSON[LiveStatus](t, rec).Alive {
		t.Error("alive = false")
	}
}

func TestHealthReady(t *testing.T) {
	t.Run("hub stopped", func(t *testing.T) {
		env := newTestEnv(t, testConfig(), false)
		rec := env.do(t, http.MethodGet, "/health/ready", "")
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", rec.Code)
		}
		if decodeJSON[ReadyStatus](t, rec).Ready {
			t.Error("ready = true with a stopped hub")
		}
	})

	t.Run("hub running", func(t *testing.T) {
		env := newTestEnv(t, testConfig(), true)
		env.do(t, http.MethodPost, "/api/aerocam/upsert", `{"id":"cam-1"}`)
		env.do(t, http.MethodPost, "/api/request/create", `{"type":"inmediata","mode":"video"}`)

		rec := env.do(t, http.MethodGet, "/health/ready", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		status := decodeJSON[ReadyStatus](t, rec)
		if !status.Ready || !status.HubRunning {
			t.Errorf("status = %+v", status)
		}
		if status.Entities.AeroCams != 1 || status.Entities.OnlineAeroCams != 1 || status.Entities.Requests != 1 {
			t.Errorf("entities = %+v", status.Entities)
		}
	})
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t, testConfig(), false)
	rec := env.do(t, http.MethodGet, "/api/nothing/here", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	env := newTestEnv(t, testConfig(), false)
	rec := env.do(t, http.MethodGet, "/api/aerocam/list", "")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("missing security headers on API response")
	}
}
