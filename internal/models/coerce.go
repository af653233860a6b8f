// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub
package models

import (
	"math"
	"strconv"
	"strings"
)

// CoerceFloat converts a loosely typed telemetry value into a float64.
//
// Accepted inputs are Go numeric types (as produced by the JSON and MessagePack
// decoders), values exposing Float64() such as json.Number, and strings holding
// a decimal number. Everything else, including NaN and infinities, reports
// ok=false so the caller can apply its own fallback.
func CoerceFloat(v any) (f float64, ok bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case interface{ Float64() (float64, error) }:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// CoerceFloatOr returns CoerceFloat(v) or fallback when v is not numeric.
func CoerceFloatOr(v any, fallback float64) float64 {
	if f, ok := CoerceFloat(v); ok {
		return f
	}
	return fallback
}
