// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub
package models

import (
	"encoding/json"
	"math"
	"testing"
)

func TestCoerceFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  any
		want   float64
		wantOK bool
	}{
		{"float64", 10.5, 10.5, true},
		{"float32", float32(2.5), 2.5, true},
		{"int", 7, 7, true},
		{"int8 from msgpack", int8(-3), -3, true},
		{"uint64", uint64(42), 42, true},
		{"numeric string", "12.25", 12.25, true},
		{"padded string", "  -4 ", -4, true},
		{"json number", json.Number("3.75"), 3.75, true},
		{"bad string", "bad", 0, false},
		{"empty string", "", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
		{"object", map[string]any{"x": 1}, 0, false},
		{"NaN", math.NaN(), 0, false},
		{"Inf string", "Inf", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := CoerceFloat(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("CoerceFloat(%v) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("CoerceFloat(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCoerceFloatOr(t *testing.T) {
	t.Parallel()

	if got := CoerceFloatOr("bad", 800); got != 800 {
		t.Errorf("CoerceFloatOr(bad, 800) = %v, want 800", got)
	}
	if got := CoerceFloatOr("250", 800); got != 250 {
		t.Errorf("CoerceFloatOr(250, 800) = %v, want 250", got)
	}
}
