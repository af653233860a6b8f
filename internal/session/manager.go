// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package session

import (
	"errors"

	"github.com/tomtom215/aerocam-hub/internal/logging"
	"github.com/tomtom215/aerocam-hub/internal/models"
	"github.com/tomtom215/aerocam-hub/internal/signaling"
	"github.com/tomtom215/aerocam-hub/internal/store"
	"github.com/tomtom215/aerocam-hub/internal/websocket"
)

// Messages reported back to the sender of a rejected live message.
const (
	msgInvalidPayload = "payload inválido"
	msgUnknownEvent   = "evento desconocido"
)

// peer is the part of a websocket client the manager needs.
type peer interface {
	ID() string
	Send(event string, data any) bool
}

// binder decodes an inbound payload.
type binder interface {
	Bind(v any) error
}

// Manager implements websocket.Handler.
type Manager struct {
	store *store.Store
	relay *signaling.Relay
}

var _ websocket.Handler = (*Manager)(nil)

// NewManager creates a manager over the given store and relay.
func NewManager(st *store.Store, relay *signaling.Relay) *Manager {
	return &Manager{store: st, relay: relay}
}

// OnConnect implements websocket.Handler.
func (m *Manager) OnConnect(c *websocket.Client, join func()) {
	m.connect(c, join)
}

// OnMessage implements websocket.Handler.
func (m *Manager) OnMessage(c *websocket.Client, in websocket.Inbound) {
	m.handle(c, in.Type, in)
}

// OnDisconnect implements websocket.Handler.
func (m *Manager) OnDisconnect(c *websocket.Client) {
	m.release(c)
}

func (m *Manager) connect(p peer, join func()) {
	m.store.WithSnapshot(func(snap store.Snapshot) {
		p.Send(models.EventHello, models.Hello{PeerID: p.ID()})
		p.Send(models.EventAeroCamsUpdate, snap.AeroCams)
		p.Send(models.EventRequestsUpdate, snap.Requests)
		p.Send(models.EventPositionsUpdate, snap.Positions)
		join()
	})
}

func (m *Manager) handle(p peer, event string, in binder) {
	var err error
	switch event {
	case models.EventJoin:
		err = m.join(p, in)
	case models.EventOffer, models.EventAnswer, models.EventICE:
		err = m.forward(p, event, in)
	case models.EventPositionUpdate:
		err = m.updatePosition(p, in)
	case models.EventPositionClear:
		err = m.clearPosition(p, in)
	default:
		err = errUnknownEvent
	}
	if err == nil {
		return
	}

	logging.Debug().
		Str("conn_id", p.ID()).
		Str("event", logging.SanitizeField(event)).
		Err(err).
		Msg("Rejected live message")
	p.Send(models.EventError, models.ErrorEvent{Event: event, Message: userMessage(err)})
}

func (m *Manager) join(p peer, in binder) error {
	var req models.JoinRequest
	if err := in.Bind(&req); err != nil {
		return &payloadError{err}
	}
	_, err := m.relay.Join(req.Room, req.Role, p)
	return err
}

func (m *Manager) forward(p peer, event string, in binder) error {
	var req models.SignalRequest
	if err := in.Bind(&req); err != nil {
		return &payloadError{err}
	}

	var payload any
	if event == models.EventICE {
		payload = models.ICEPayload{Candidate: req.Candidate}
	} else {
		payload = models.SDPPayload{SDP: req.SDP}
	}
	_, err := m.relay.Forward(req.Room, p, event, payload)
	return err
}

func (m *Manager) updatePosition(p peer, in binder) error {
	var report models.PositionReport
	if err := in.Bind(&report); err != nil {
		return &payloadError{err}
	}
	m.store.UpsertPosition(report, p.ID())
	return nil
}

// clearPosition drops the named entry, or the sender's own entry when no
// clientKey is given.
func (m *Manager) clearPosition(p peer, in binder) error {
	var req models.PositionClear
	if err := in.Bind(&req); err != nil {
		return &payloadError{err}
	}
	key := req.ClientKey
	if key == "" {
		key = p.ID()
	}
	m.store.ClearPosition(key)
	return nil
}

func (m *Manager) release(p peer) {
	rooms := m.relay.Leave(p)
	rel := m.store.ReleaseConnection(p.ID())

	logging.Debug().
		Str("conn_id", p.ID()).
		Strs("rooms", rooms).
		Int("positions_removed", rel.PositionsRemoved).
		Int("aerocams_offline", rel.AeroCamsOffline).
		Msg("Session released")
}

var errUnknownEvent = errors.New(msgUnknownEvent)

type payloadError struct{ err error }

func (e *payloadError) Error() string { return msgInvalidPayload + ": " + e.err.Error() }
func (e *payloadError) Unwrap() error { return e.err }

// userMessage maps an internal error to the text sent to the client.
func userMessage(err error) string {
	var pe *payloadError
	if errors.As(err, &pe) {
		return msgInvalidPayload
	}
	return err.Error()
}
