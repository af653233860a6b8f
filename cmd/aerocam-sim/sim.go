// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/tomtom215/aerocam-hub/internal/logging"
	"github.com/tomtom215/aerocam-hub/internal/models"
	ws "github.com/tomtom215/aerocam-hub/internal/websocket"
)

var errNoHello = errors.New("hub did not send hello")

// simulator is one simulated aerocam connection.
type simulator struct {
	opts   options
	codec  ws.Codec
	conn   *websocket.Conn
	logger zerolog.Logger
	peerID string

	writeMu sync.Mutex

	// offers is nil unless --webrtc is set.
	offers *offerer
}

func dialSimulator(ctx context.Context, opts options) (*simulator, error) {
	dialer := websocket.Dialer{
		Subprotocols:     []string{opts.Codec},
		HandshakeTimeout: 10 * time.Second,
	}
	conn, _, err := dialer.DialContext(ctx, opts.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", opts.URL, err)
	}

	s := &simulator{
		opts:   opts,
		codec:  ws.CodecFor(conn.Subprotocol()),
		conn:   conn,
		logger: logging.WithComponent("sim"),
	}

	in, err := s.read()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	var hello models.Hello
	if in.Type != models.EventHello {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: got %q", errNoHello, in.Type)
	}
	if err := in.Bind(&hello); err != nil {
		_ = conn.Close()
		return nil, err
	}
	s.peerID = hello.PeerID
	s.logger = s.logger.With().Str("peer_id", s.peerID).Logger()
	s.logger.Info().Str("url", opts.URL).Str("codec", s.codec.Name()).Msg("Connected to hub")

	if opts.WebRTC {
		s.offers = newOfferer(s, opts.STUN)
	}
	return s, nil
}

func (s *simulator) read() (ws.Inbound, error) {
	_, frame, err := s.conn.ReadMessage()
	if err != nil {
		return ws.Inbound{}, err
	}
	return s.codec.DecodeEnvelope(frame)
}

// send writes one frame. Safe for concurrent use.
func (s *simulator) send(event string, data any) error {
	frame, err := s.codec.Marshal(ws.Message{Type: event, Data: data})
	if err != nil {
		return fmt.Errorf("encode %s: %w", event, err)
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return s.conn.WriteMessage(s.codec.FrameType(), frame)
}

// run reports positions until ctx ends or --count reports were sent.
func (s *simulator) run(ctx context.Context) error {
	readErr := make(chan error, 1)
	go func() {
		readErr <- s.readLoop()
	}()

	if s.opts.Room != "" {
		if err := s.send(models.EventJoin, models.JoinRequest{Room: s.opts.Room, Role: models.RoleAeroCam}); err != nil {
			return err
		}
		s.logger.Info().Str("room", s.opts.Room).Msg("Joined room")
	}

	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()

	for step := 0; ; step++ {
		if err := s.report(step); err != nil {
			return err
		}
		if s.opts.Count > 0 && step+1 >= s.opts.Count {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			return fmt.Errorf("connection closed: %w", err)
		case <-ticker.C:
		}
	}
}

func (s *simulator) report(step int) error {
	lat, lon := orbitPoint(s.opts.Lat, s.opts.Lon, s.opts.Orbit, step, s.opts.Steps)
	report := models.PositionReport{
		ID:     s.opts.ID,
		Role:   models.RoleAeroCam,
		Lat:    lat,
		Lon:    lon,
		Radius: s.opts.Radius,
	}
	if err := s.send(models.EventPositionUpdate, report); err != nil {
		return err
	}
	s.logger.Debug().Int("step", step).Float64("lat", lat).Float64("lon", lon).Msg("Position reported")
	return nil
}

func (s *simulator) readLoop() error {
	for {
		_, frame, err := s.conn.ReadMessage()
		if err != nil {
			return err
		}
		in, err := s.codec.DecodeEnvelope(frame)
		if err != nil {
			s.logger.Warn().Err(err).Msg("Undecodable frame from hub")
			continue
		}
		s.dispatch(in)
	}
}

func (s *simulator) dispatch(in ws.Inbound) {
	switch in.Type {
	case models.EventPeerJoined:
		var joined models.PeerJoined
		if err := in.Bind(&joined); err != nil {
			s.logger.Warn().Err(err).Msg("Bad peer-joined payload")
			return
		}
		s.logger.Info().Str("peer", joined.PeerID).Str("role", joined.Role).Msg("Peer joined room")
		if s.offers != nil && joined.Role != models.RoleAeroCam {
			if err := s.offers.offer(s.opts.Room); err != nil {
				s.logger.Error().Err(err).Msg("WebRTC offer failed")
			}
		}
	case models.EventAnswer:
		if s.offers != nil {
			if err := s.offers.applyAnswer(in); err != nil {
				s.logger.Warn().Err(err).Msg("WebRTC answer rejected")
			}
		}
	case models.EventICE:
		if s.offers != nil {
			if err := s.offers.addCandidate(in); err != nil {
				s.logger.Warn().Err(err).Msg("Remote ICE candidate rejected")
			}
		}
	case models.EventError:
		var e models.ErrorEvent
		_ = in.Bind(&e)
		s.logger.Warn().Str("event", e.Event).Str("message", e.Message).Msg("Hub reported an error")
	default:
		s.logger.Trace().Str("type", in.Type).Msg("Ignoring frame")
	}
}

// close ends the WebRTC session and the WebSocket with a normal closure.
func (s *simulator) close() {
	if s.offers != nil {
		s.offers.close()
	}
	s.writeMu.Lock()
	_ = s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"),
		time.Now().Add(time.Second))
	s.writeMu.Unlock()
	_ = s.conn.Close()
}
