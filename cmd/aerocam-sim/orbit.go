// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package main

import (
	"math"
)

// metersPerDegree is the length of one degree of latitude.
const metersPerDegree = 111320.0

// orbitPoint returns the position at step of a circular path of radius
// meters around (lat, lon), split into steps points. Step 0 is due north.
func orbitPoint(lat, lon, radius float64, step, steps int) (float64, float64) {
	if radius <= 0 || steps < 1 {
		return lat, lon
	}
	theta := 2 * math.Pi * float64(step%steps) / float64(steps)
	dLat := radius * math.Cos(theta) / metersPerDegree
	dLon := radius * math.Sin(theta) / (metersPerDegree * math.Cos(lat*math.Pi/180))
	return lat + dLat, lon + dLon
}
