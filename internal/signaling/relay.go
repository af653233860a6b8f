// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package signaling

import (
	"errors"
	"sort"
	"sync"

	"github.com/tomtom215/aerocam-hub/internal/logging"
	"github.com/tomtom215/aerocam-hub/internal/metrics"
	"github.com/tomtom215/aerocam-hub/internal/models"
)

// ErrEmptyRoom rejects join and relay requests without a room.
var ErrEmptyRoom = errors.New("room requerido")

// Peer is one live connection that can take part in rooms.
type Peer interface {
	ID() string
	Send(event string, data any) bool
}

// Relay maps room names to their current members.
type Relay struct {
	mu    sync.RWMutex
	rooms map[string]map[string]Peer
}

// NewRelay creates an empty relay.
func NewRelay() *Relay {
	return &Relay{rooms: make(map[string]map[string]Peer)}
}

// Join adds p to room and tells every other member a peer arrived.
// Joining a room twice is harmless. It returns the number of members notified.
func (r *Relay) Join(room, role string, p Peer) (int, error) {
	if room == "" {
		return 0, ErrEmptyRoom
	}

	r.mu.Lock()
	members, ok := r.rooms[room]
	if !ok {
		members = make(map[string]Peer)
		r.rooms[room] = members
	}
	members[p.ID()] = p
	others := othersLocked(members, p.ID())
	rooms := len(r.rooms)
	r.mu.Unlock()

	metrics.SignalingRooms.Set(float64(rooms))

	notice := models.PeerJoined{Role: role, PeerID: p.ID()}
	delivered := deliver(others, models.EventPeerJoined, notice)
	metrics.RecordSignalingForward(models.EventPeerJoined, delivered)

	logging.Debug().
		Str("room", logging.SanitizeField(room)).
		Str("role", logging.SanitizeField(role)).
		Str("peer_id", p.ID()).
		Int("notified", delivered).
		Msg("Peer joined room")
	return delivered, nil
}

// Forward sends event with payload to every member of room except from.
// The sender does not have to be a member. It returns the number of
// members the message was queued for.
func (r *Relay) Forward(room string, from Peer, event string, payload any) (int, error) {
	if room == "" {
		return 0, ErrEmptyRoom
	}

	r.mu.RLock()
	others := othersLocked(r.rooms[room], from.ID())
	r.mu.RUnlock()

	delivered := deliver(others, event, payload)
	metrics.RecordSignalingForward(event, delivered)
	return delivered, nil
}

// Leave removes p from every room and deletes rooms left empty. No event is
// sent; the remaining member notices through its own WebRTC state.
func (r *Relay) Leave(p Peer) []string {
	id := p.ID()

	r.mu.Lock()
	var left []string
	for name, members := range r.rooms {
		if _, ok := members[id]; !ok {
			continue
		}
		delete(members, id)
		left = append(left, name)
		if len(members) == 0 {
			delete(r.rooms, name)
		}
	}
	rooms := len(r.rooms)
	r.mu.Unlock()

	metrics.SignalingRooms.Set(float64(rooms))
	sort.Strings(left)
	return left
}

// Members returns the peer IDs in room, sorted.
func (r *Relay) Members(room string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.rooms[room]))
	for id := range r.rooms[room] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RoomCount returns the number of rooms with at least one member.
func (r *Relay) RoomCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// othersLocked returns the members other than exclude, ordered by ID.
func othersLocked(members map[string]Peer, exclude string) []Peer {
	out := make([]Peer, 0, len(members))
	for id, p := range members {
		if id != exclude {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func deliver(peers []Peer, event string, payload any) int {
	n := 0
	for _, p := range peers {
		if p.Send(event, payload) {
			n++
		}
	}
	return n
}
