// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package main

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pion/webrtc/v4"

	"github.com/tomtom215/aerocam-hub/internal/models"
	ws "github.com/tomtom215/aerocam-hub/internal/websocket"
)

var errNoPeerConnection = errors.New("no WebRTC session in progress")

// sessionDescription is the wire shape of an SDP, {"type": "offer", "sdp": "v=0..."}.
// webrtc.SessionDescription carries its type as an integer outside JSON.
type sessionDescription struct {
	Type string `json:"type"`
	SDP  string `json:"sdp"`
}

// offerer runs the offering side of one WebRTC session per joining viewer.
// A new viewer replaces the previous session.
type offerer struct {
	sim  *simulator
	stun []string

	mu      sync.Mutex
	room    string
	pc      *webrtc.PeerConnection
	remote  bool
	pending []webrtc.ICECandidateInit
}

func newOfferer(sim *simulator, stun []string) *offerer {
	return &offerer{sim: sim, stun: stun}
}

// offer starts a fresh session and sends its offer to the room. Local ICE
// candidates are trickled through the relay as they are gathered.
func (o *offerer) offer(room string) error {
	cfg := webrtc.Configuration{}
	if len(o.stun) > 0 {
		cfg.ICEServers = []webrtc.ICEServer{{URLs: o.stun}}
	}
	pc, err := webrtc.NewPeerConnection(cfg)
	if err != nil {
		return fmt.Errorf("create peer connection: %w", err)
	}

	o.mu.Lock()
	if o.pc != nil {
		_ = o.pc.Close()
	}
	o.pc = pc
	o.room = room
	o.remote = false
	o.pending = nil
	o.mu.Unlock()

	logger := o.sim.logger
	pc.OnICECandidate(func(c *webrtc.ICECandidate) {
		if c == nil {
			return
		}
		if err := o.sim.send(models.EventICE, models.SignalRequest{Room: room, Candidate: c.ToJSON()}); err != nil {
			logger.Warn().Err(err).Msg("Sending ICE candidate failed")
		}
	})
	pc.OnConnectionStateChange(func(state webrtc.PeerConnectionState) {
		logger.Info().Str("state", state.String()).Msg("WebRTC connection state changed")
	})

	// The data channel forces an application section into the offer.
	dc, err := pc.CreateDataChannel("telemetry", nil)
	if err != nil {
		return fmt.Errorf("create data channel: %w", err)
	}
	dc.OnOpen(func() {
		logger.Info().Str("label", dc.Label()).Msg("Data channel open")
	})

	offer, err := pc.CreateOffer(nil)
	if err != nil {
		return fmt.Errorf("create offer: %w", err)
	}
	if err := pc.SetLocalDescription(offer); err != nil {
		return fmt.Errorf("set local description: %w", err)
	}

	sdp := sessionDescription{Type: offer.Type.String(), SDP: offer.SDP}
	if err := o.sim.send(models.EventOffer, models.SignalRequest{Room: room, SDP: sdp}); err != nil {
		return fmt.Errorf("send offer: %w", err)
	}
	logger.Info().Str("room", room).Msg("WebRTC offer sent")
	return nil
}

func (o *offerer) applyAnswer(in ws.Inbound) error {
	var payload struct {
		SDP sessionDescription `json:"sdp"`
	}
	if err := in.Bind(&payload); err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.pc == nil {
		return errNoPeerConnection
	}
	answer := webrtc.SessionDescription{Type: webrtc.NewSDPType(payload.SDP.Type), SDP: payload.SDP.SDP}
	if answer.Type != webrtc.SDPTypeAnswer {
		return fmt.Errorf("expected an answer, got %q", payload.SDP.Type)
	}
	if err := o.pc.SetRemoteDescription(answer); err != nil {
		return fmt.Errorf("set remote description: %w", err)
	}
	o.remote = true

	for _, c := range o.pending {
		if err := o.pc.AddICECandidate(c); err != nil {
			o.sim.logger.Warn().Err(err).Msg("Buffered ICE candidate rejected")
		}
	}
	o.pending = nil
	o.sim.logger.Info().Msg("WebRTC answer applied")
	return nil
}

// addCandidate applies a remote candidate, buffering it until the answer
// has been applied.
func (o *offerer) addCandidate(in ws.Inbound) error {
	var payload struct {
		Candidate webrtc.ICECandidateInit `json:"candidate"`
	}
	if err := in.Bind(&payload); err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.pc == nil {
		return errNoPeerConnection
	}
	if !o.remote {
		o.pending = append(o.pending, payload.Candidate)
		return nil
	}
	return o.pc.AddICECandidate(payload.Candidate)
}

func (o *offerer) close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.pc != nil {
		_ = o.pc.Close()
		o.pc = nil
	}
}
