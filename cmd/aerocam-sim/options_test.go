// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package main

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestParseOptions(t *testing.T) {
	opts, _, err := parseOptions([]string{
		"--url", "wss://hub.example/ws",
		"--id", "cam-7",
		"--room", "r1",
		"--codec", "msgpack",
		"--interval", "250ms",
		"--count", "3",
		"--webrtc",
		"--stun", "stun:a.example:3478,stun:b.example:3478",
	})
	if err != nil {
		t.Fatalf("parseOptions: %v", err)
	}
	if opts.URL != "wss://hub.example/ws" || opts.ID != "cam-7" || opts.Room != "r1" {
		t.Errorf("opts = %+v", opts)
	}
	if opts.Codec != "msgpack" || opts.Interval != 250*time.Millisecond || opts.Count != 3 || !opts.WebRTC {
		t.Errorf("opts = %+v", opts)
	}
	wantSTUN := []string{"stun:a.example:3478", "stun:b.example:3478"}
	if !reflect.DeepEqual(opts.STUN, wantSTUN) {
		t.Errorf("STUN = %v, want %v", opts.STUN, wantSTUN)
	}
	if err := opts.validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestParseOptions_Defaults(t *testing.T) {
	opts, _, err := parseOptions(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(opts, defaultOptions()) {
		t.Errorf("opts = %+v, want defaults", opts)
	}
	if err := opts.validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestParseOptions_Errors(t *testing.T) {
	if _, _, err := parseOptions([]string{"--nope"}); err == nil {
		t.Error("unknown flag should fail")
	}
	if _, _, err := parseOptions([]string{"extra"}); err == nil || !strings.Contains(err.Error(), "unexpected argument") {
		t.Errorf("positional argument: err = %v", err)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*options)
		wantErr string
	}{
		{"http scheme", func(o *options) { o.URL = "http://localhost:3000/ws" }, "--url"},
		{"codec", func(o *options) { o.Codec = "xml" }, "--codec"},
		{"interval", func(o *options) { o.Interval = 0 }, "--interval"},
		{"steps", func(o *options) { o.Steps = 0 }, "--steps"},
		{"count", func(o *options) { o.Count = -1 }, "--count"},
		{"webrtc without room", func(o *options) { o.WebRTC = true }, "--room"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			tt.mutate(&opts)
			err := opts.validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validate() = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}
