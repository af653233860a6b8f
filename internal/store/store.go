// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/aerocam-hub/internal/metrics"
	"github.com/tomtom215/aerocam-hub/internal/models"
)

// Publisher receives every state change. Broadcast is called with the store
// lock held and must neither block nor call back into the store.
type Publisher interface {
	Broadcast(event string, data any)
}

type nopPublisher struct{}

func (nopPublisher) Broadcast(string, any) {}

// Option configures a Store.
type Option func(*Store)

// WithPublisher sets the change listener. Without one, changes are not published.
func WithPublisher(p Publisher) Option {
	return func(s *Store) {
		if p != nil {
			s.pub = p
		}
	}
}

// WithClock overrides time.Now for updatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the request ID generator (UUIDv4 by default).
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// Store holds aerocams, requests and positions behind a single mutex.
type Store struct {
	mu        sync.Mutex
	aerocams  *ordered[models.AeroCam]
	requests  *ordered[models.Request]
	positions *ordered[models.Position]

	pub   Publisher
	now   func() time.Time
	newID func() string
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		aerocams:  newOrdered[models.AeroCam](),
		requests:  newOrdered[models.Request](),
		positions: newOrdered[models.Position](),
		pub:       nopPublisher{},
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot is a consistent copy of all three mappings.
type Snapshot struct {
	AeroCams  []models.AeroCam
	Requests  []models.Request
	Positions []models.Position
}

// WithSnapshot calls fn with a consistent snapshot while holding the store
// lock. No mutation, and therefore no broadcast, can happen until fn returns.
func (s *Store) WithSnapshot(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(Snapshot{
		AeroCams:  s.aerocams.values(),
		Requests:  s.requests.values(),
		Positions: s.positions.values(),
	})
}

// Counts summarizes store sizes for health reporting.
type Counts struct {
	AeroCams       int `json:"aerocams"`
	OnlineAeroCams int `json:"onlineAerocams"`
	Requests       int `json:"requests"`
	Positions      int `json:"positions"`
}

// Counts returns the current store sizes.
func (s *Store) Counts() Counts {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countsLocked()
}

func (s *Store) countsLocked() Counts {
	c := Counts{
		AeroCams:  s.aerocams.len(),
		Requests:  s.requests.len(),
		Positions: s.positions.len(),
	}
	for _, cam := range s.aerocams.vals {
		if cam.Online {
			c.OnlineAeroCams++
		}
	}
	return c
}

// stamp returns the current time in epoch milliseconds, never earlier than prev.
func (s *Store) stamp(prev int64) int64 {
	now := s.now().UnixMilli()
	if now < prev {
		return prev
	}
	return now
}

func (s *Store) publishAeroCams() {
	s.pub.Broadcast(models.EventAeroCamsUpdate, s.aerocams.values())
	s.updateGauges()
}

func (s *Store) publishRequests() {
	s.pub.Broadcast(models.EventRequestsUpdate, s.requests.values())
	s.updateGauges()
}

func (s *Store) publishPositions() {
	s.pub.Broadcast(models.EventPositionsUpdate, s.positions.values())
	s.updateGauges()
}

func (s *Store) updateGauges() {
	c := s.countsLocked()
	metrics.UpdateEntityGauges(c.AeroCams, c.Requests, c.Positions, c.OnlineAeroCams)
}
