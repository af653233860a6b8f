// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package session

import (
	"reflect"
	"sync"
	"testing"

	"github.com/tomtom215/aerocam-hub/internal/models"
	"github.com/tomtom215/aerocam-hub/internal/signaling"
	"github.com/tomtom215/aerocam-hub/internal/store"
	"github.com/tomtom215/aerocam-hub/internal/websocket"
)

type message struct {
	event string
	data  any
}

type fakePeer struct {
	id    string
	mu    sync.Mutex
	inbox []message
}

func (p *fakePeer) ID() string { return p.id }

func (p *fakePeer) Send(event string, data any) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inbox = append(p.inbox, message{event, data})
	return true
}

func (p *fakePeer) events() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.inbox))
	for i, m := range p.inbox {
		out[i] = m.event
	}
	return out
}

func (p *fakePeer) last(event string) (any, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := len(p.inbox) - 1; i >= 0; i-- {
		if p.inbox[i].event == event {
			return p.inbox[i].data, true
		}
	}
	return nil, false
}

func newTestManager(t *testing.T) (*Manager, *store.Store, *signaling.Relay) {
	t.Helper()
	st := store.New()
	relay := signaling.NewRelay()
	return NewManager(st, relay), st, relay
}

func jsonInbound(typ, payload string) websocket.Inbound {
	return websocket.NewInbound(typ, []byte(payload), websocket.JSONCodec{})
}

func TestConnect_CatchUpBeforeJoin(t *testing.T) {
	m, st, _ := newTestManager(t)
	if _, err := st.UpsertAeroCam(models.AeroCamInput{ID: "cam-1"}); err != nil {
		t.Fatalf("UpsertAeroCam() error = %v", err)
	}

	p := &fakePeer{id: "conn-1"}
	var atJoin []string
	joins := 0
	m.connect(p, func() {
		joins++
		atJoin = p.events()
	})

	if joins != 1 {
		t.Fatalf("join called %d times, want 1", joins)
	}
	want := []string{
		models.EventHello,
		models.EventAeroCamsUpdate,
		models.EventRequestsUpdate,
		models.EventPositionsUpdate,
	}
	if !reflect.DeepEqual(atJoin, want) {
		t.Errorf("messages before join = %v, want %v", atJoin, want)
	}

	hello, _ := p.last(models.EventHello)
	if hello != (models.Hello{PeerID: "conn-1"}) {
		t.Errorf("hello = %#v", hello)
	}
	cams, _ := p.last(models.EventAeroCamsUpdate)
	if list, ok := cams.([]models.AeroCam); !ok || len(list) != 1 || list[0].ID != "cam-1" {
		t.Errorf("aerocams snapshot = %#v", cams)
	}
}

func TestHandle_JoinNotifiesRoom(t *testing.T) {
	m, _, relay := newTestManager(t)
	viewer := &fakePeer{id: "viewer"}
	cam := &fakePeer{id: "cam"}

	m.handle(viewer, models.EventJoin, jsonInbound(models.EventJoin, `{"room":"r1","role":"VIEWER"}`))
	m.handle(cam, models.EventJoin, jsonInbound(models.EventJoin, `{"room":"r1","role":"AEROCAM"}`))

	got, ok := viewer.last(models.EventPeerJoined)
	if !ok {
		t.Fatal("viewer did not receive peer-joined")
	}
	if got != (models.PeerJoined{Role: "AEROCAM", PeerID: "cam"}) {
		t.Errorf("peer-joined = %#v", got)
	}
	if _, ok := cam.last(models.EventPeerJoined); ok {
		t.Error("joiner should not receive its own peer-joined")
	}
	if !reflect.DeepEqual(relay.Members("r1"), []string{"cam", "viewer"}) {
		t.Errorf("Members() = %v", relay.Members("r1"))
	}
}

func TestHandle_SignalingRelayed(t *testing.T) {
	tests := []struct {
		name    string
		event   string
		payload string
		want    any
	}{
		{
			name:    "offer",
			event:   models.EventOffer,
			payload: `{"room":"r","sdp":{"type":"offer","sdp":"v=0"}}`,
			want:    models.SDPPayload{SDP: map[string]any{"type": "offer", "sdp": "v=0"}},
		},
		{
			name:    "answer",
			event:   models.EventAnswer,
			payload: `{"room":"r","sdp":"raw-answer"}`,
			want:    models.SDPPayload{SDP: "raw-answer"},
		},
		{
			name:    "ice",
			event:   models.EventICE,
			payload: `{"room":"r","candidate":{"candidate":"candidate:1 1 udp 1 10.0.0.1 5000 typ host"}}`,
			want:    models.ICEPayload{Candidate: map[string]any{"candidate": "candidate:1 1 udp 1 10.0.0.1 5000 typ host"}},
		},
		{
			name:    "ice without candidate",
			event:   models.EventICE,
			payload: `{"room":"r"}`,
			want:    models.ICEPayload{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, relay := newTestManager(t)
			a := &fakePeer{id: "a"}
			b := &fakePeer{id: "b"}
			_, _ = relay.Join("r", "X", a)
			_, _ = relay.Join("r", "X", b)

			m.handle(a, tt.event, jsonInbound(tt.event, tt.payload))

			got, ok := b.last(tt.event)
			if !ok {
				t.Fatalf("b did not receive %s", tt.event)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("payload = %#v, want %#v", got, tt.want)
			}
			if _, ok := a.last(tt.event); ok {
				t.Errorf("sender received its own %s", tt.event)
			}
		})
	}
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		event   string
		payload string
		message string
	}{
		{"unknown event", "bogus", `{}`, msgUnknownEvent},
		{"join without room", models.EventJoin, `{"role":"VIEWER"}`, signaling.ErrEmptyRoom.Error()},
		{"offer without room", models.EventOffer, `{"sdp":"x"}`, signaling.ErrEmptyRoom.Error()},
		{"malformed join", models.EventJoin, `"not-an-object"`, msgInvalidPayload},
		{"malformed position", models.EventPositionUpdate, `[1,2]`, msgInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestManager(t)
			p := &fakePeer{id: "p"}

			m.handle(p, tt.event, jsonInbound(tt.event, tt.payload))

			got, ok := p.last(models.EventError)
			if !ok {
				t.Fatal("no error event sent")
			}
			want := models.ErrorEvent{Event: tt.event, Message: tt.message}
			if got != want {
				t.Errorf("error = %#v, want %#v", got, want)
			}
		})
	}
}

func TestHandle_PositionUpdateUsesConnID(t *testing.T) {
	m, st, _ := newTestManager(t)
	p := &fakePeer{id: "conn-7"}

	m.handle(p, models.EventPositionUpdate,
		jsonInbound(models.EventPositionUpdate, `{"role":"AEROCAM","lat":"40.4","lon":-3.7,"radius":250}`))

	pos, err := st.GetPosition("conn-7")
	if err != nil {
		t.Fatalf("GetPosition() error = %v", err)
	}
	if pos.ID != "conn-7" || pos.Lat != 40.4 || pos.Lon != -3.7 {
		t.Errorf("position = %+v", pos)
	}
	cam, err := st.GetAeroCam("conn-7")
	if err != nil {
		t.Fatalf("derived aerocam missing: %v", err)
	}
	if !cam.Online || cam.Radius != 250 {
		t.Errorf("aerocam = %+v", cam)
	}
	if _, ok := p.last(models.EventError); ok {
		t.Error("unexpected error event")
	}
}

func TestHandle_PositionClear(t *testing.T) {
	m, st, _ := newTestManager(t)
	p := &fakePeer{id: "conn-1"}
	st.UpsertPosition(models.PositionReport{Lat: 1, Lon: 2}, "conn-1")
	st.UpsertPosition(models.PositionReport{ClientKey: "other", Lat: 1, Lon: 2}, "conn-2")

	m.handle(p, models.EventPositionClear, jsonInbound(models.EventPositionClear, `{}`))
	if _, err := st.GetPosition("conn-1"); err == nil {
		t.Error("own position should be cleared when clientKey is omitted")
	}

	m.handle(p, models.EventPositionClear, jsonInbound(models.EventPositionClear, `{"clientKey":"other"}`))
	if len(st.ListPositions()) != 0 {
		t.Errorf("positions = %+v, want none", st.ListPositions())
	}
}

func TestRelease(t *testing.T) {
	m, st, relay := newTestManager(t)
	p := &fakePeer{id: "conn-9"}
	other := &fakePeer{id: "other"}

	_, _ = relay.Join("room", "AEROCAM", p)
	_, _ = relay.Join("room", "VIEWER", other)
	st.UpsertPosition(models.PositionReport{Role: models.RoleAeroCam, Lat: 1, Lon: 1}, p.ID())
	st.UpsertPosition(models.PositionReport{ID: "app-id", Lat: 1, Lon: 1}, p.ID())

	m.release(p)

	if got := relay.Members("room"); !reflect.DeepEqual(got, []string{"other"}) {
		t.Errorf("Members() = %v", got)
	}
	if _, err := st.GetPosition(p.ID()); err == nil {
		t.Error("position keyed by connection ID should be removed")
	}
	if _, err := st.GetPosition("app-id"); err != nil {
		t.Error("position keyed by application id must survive")
	}
	cam, err := st.GetAeroCam(p.ID())
	if err != nil {
		t.Fatalf("GetAeroCam() error = %v", err)
	}
	if cam.Online {
		t.Error("aerocam should be offline after release")
	}
}
