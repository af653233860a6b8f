// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package main

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/pflag"

	ws "github.com/tomtom215/aerocam-hub/internal/websocket"
)

type options struct {
	URL      string
	ID       string
	Room     string
	Codec    string
	Lat      float64
	Lon      float64
	Radius   float64
	Orbit    float64
	Steps    int
	Interval time.Duration
	Count    int
	WebRTC   bool
	STUN     []string
	LogLevel string
	Help     bool
}

func defaultOptions() options {
	return options{
		URL:      "ws://localhost:3000/ws",
		Codec:    ws.SubprotocolJSON,
		Lat:      40.4168,
		Lon:      -3.7038,
		Radius:   800,
		Orbit:    150,
		Steps:    36,
		Interval: time.Second,
		STUN:     []string{"stun:stun.l.google.com:19302"},
		LogLevel: "info",
	}
}

func newFlagSet(opts *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("aerocam-sim", pflag.ContinueOnError)
	fs.StringVar(&opts.URL, "url", opts.URL, "hub WebSocket URL")
	fs.StringVar(&opts.ID, "id", opts.ID, "aerocam id (default: the connection id assigned by the hub)")
	fs.StringVar(&opts.Room, "room", opts.Room, "signaling room to join")
	fs.StringVar(&opts.Codec, "codec", opts.Codec, "wire format: json or msgpack")
	fs.Float64Var(&opts.Lat, "lat", opts.Lat, "orbit center latitude")
	fs.Float64Var(&opts.Lon, "lon", opts.Lon, "orbit center longitude")
	fs.Float64Var(&opts.Radius, "radius", opts.Radius, "coverage radius in meters")
	fs.Float64Var(&opts.Orbit, "orbit", opts.Orbit, "orbit radius in meters, 0 to hover")
	fs.IntVar(&opts.Steps, "steps", opts.Steps, "reports per orbit")
	fs.DurationVar(&opts.Interval, "interval", opts.Interval, "time between position reports")
	fs.IntVar(&opts.Count, "count", opts.Count, "stop after this many reports, 0 runs until interrupted")
	fs.BoolVar(&opts.WebRTC, "webrtc", opts.WebRTC, "offer a WebRTC connection to peers joining the room")
	fs.StringSliceVar(&opts.STUN, "stun", opts.STUN, "STUN server URLs")
	fs.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "log level")
	fs.BoolVarP(&opts.Help, "help", "h", false, "show help")
	return fs
}

func parseOptions(args []string) (options, *pflag.FlagSet, error) {
	opts := defaultOptions()
	fs := newFlagSet(&opts)
	if err := fs.Parse(args); err != nil {
		return opts, fs, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return opts, fs, fmt.Errorf("unexpected argument: %s", rest[0])
	}
	return opts, fs, nil
}

func (o options) validate() error {
	u, err := url.Parse(o.URL)
	if err != nil {
		return fmt.Errorf("--url: %w", err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("--url must use ws:// or wss://, got %q", o.URL)
	}
	if o.Codec != ws.SubprotocolJSON && o.Codec != ws.SubprotocolMsgpack {
		return fmt.Errorf("--codec must be json or msgpack, got %q", o.Codec)
	}
	if o.Interval <= 0 {
		return errors.New("--interval must be positive")
	}
	if o.Steps < 1 {
		return errors.New("--steps must be at least 1")
	}
	if o.Count < 0 {
		return errors.New("--count must not be negative")
	}
	if o.WebRTC && o.Room == "" {
		return errors.New("--webrtc requires --room")
	}
	return nil
}
