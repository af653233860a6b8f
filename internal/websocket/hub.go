// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package websocket

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomtom215/aerocam-hub/internal/logging"
	"github.com/tomtom215/aerocam-hub/internal/metrics"
)

// ShutdownReason identifies why the hub stopped.
type ShutdownReason string

const (
	// ShutdownReasonContextCanceled is the normal graceful path (SIGTERM).
	ShutdownReasonContextCanceled ShutdownReason = "context_canceled"

	// ShutdownReasonContextDeadline means the context deadline was exceeded.
	ShutdownReasonContextDeadline ShutdownReason = "context_deadline"
)

// ErrHubNotRunning is returned by Attach when the run loop does not accept
// the client in time.
var ErrHubNotRunning = errors.New("websocket hub is not running")

// Config bounds per-connection resources.
type Config struct {
	SendBuffer        int
	MaxMessageSize    int64
	MessagesPerSecond float64
	Burst             int
	PingInterval      time.Duration
	PongWait          time.Duration
	WriteWait         time.Duration
}

// DefaultConfig returns the limits used when none are configured.
func DefaultConfig() Config {
	return Config{
		SendBuffer:        256,
		MaxMessageSize:    512 * 1024,
		MessagesPerSecond: 20,
		Burst:             40,
		PingInterval:      54 * time.Second,
		PongWait:          60 * time.Second,
		WriteWait:         10 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.SendBuffer <= 0 {
		c.SendBuffer = d.SendBuffer
	}
	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = d.MaxMessageSize
	}
	if c.Burst <= 0 {
		c.Burst = d.Burst
	}
	if c.PongWait <= 0 {
		c.PongWait = d.PongWait
	}
	if c.PingInterval <= 0 || c.PingInterval >= c.PongWait {
		c.PingInterval = (c.PongWait * 9) / 10
	}
	if c.WriteWait <= 0 {
		c.WriteWait = d.WriteWait
	}
	return c
}

// Handler reacts to connection lifecycle and inbound messages.
type Handler interface {
	// OnConnect runs on the hub loop for every new client. It must call join
	// exactly once to add the client to the broadcast set.
	OnConnect(c *Client, join func())
	// OnMessage runs on the client's read goroutine.
	OnMessage(c *Client, in Inbound)
	// OnDisconnect runs once per client after it leaves the broadcast set.
	OnDisconnect(c *Client)
}

type joinOnlyHandler struct{}

func (joinOnlyHandler) OnConnect(_ *Client, join func()) { join() }
func (joinOnlyHandler) OnMessage(*Client, Inbound)       {}
func (joinOnlyHandler) OnDisconnect(*Client)             {}

// Hub maintains the set of active clients and fans messages out to them.
type Hub struct {
	cfg     Config
	handler Handler

	clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	stop       chan struct{}
	mu         sync.RWMutex

	running atomic.Bool
}

// NewHub creates a hub. Zero fields in cfg take their defaults.
func NewHub(cfg Config) *Hub {
	return &Hub{
		cfg:        cfg.withDefaults(),
		handler:    joinOnlyHandler{},
		clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		stop:       make(chan struct{}),
	}
}

// SetHandler installs the lifecycle handler. Call it before RunWithContext.
func (h *Hub) SetHandler(handler Handler) {
	if handler == nil {
		handler = joinOnlyHandler{}
	}
	h.mu.Lock()
	h.handler = handler
	h.mu.Unlock()
}

// Running reports whether the run loop is active.
func (h *Hub) Running() bool {
	return h.running.Load()
}

// RunWithContext runs the hub loop until ctx is canceled, then closes every
// client and returns ctx.Err(). It may be restarted by a supervisor.
//
// Shutdown is checked first, then registrations, so a client is always
// registered before its own unregistration is processed.
func (h *Hub) RunWithContext(ctx context.Context) error {
	h.mu.Lock()
	select {
	case <-h.stop:
		h.stop = make(chan struct{}) // restarted after a shutdown
	default:
	}
	h.mu.Unlock()

	h.running.Store(true)
	defer h.running.Store(false)

	for {
		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		default:
		}

		select {
		case client := <-h.Register:
			h.handleRegister(client)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		case client := <-h.Register:
			h.handleRegister(client)
		case client := <-h.Unregister:
			h.handleUnregister(client)
		}
	}
}

// Attach hands a new client to the run loop and starts its pumps.
func (h *Hub) Attach(ctx context.Context, c *Client) error {
	timer := time.NewTimer(h.cfg.WriteWait)
	defer timer.Stop()

	select {
	case h.Register <- c:
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrHubNotRunning
	}
	c.Start()
	return nil
}

func (h *Hub) handleRegister(c *Client) {
	h.currentHandler().OnConnect(c, func() {
		h.mu.Lock()
		h.clients[c] = true
		n := len(h.clients)
		h.mu.Unlock()
		metrics.WSConnections.Set(float64(n))
	})
	logging.Ctx(c.ctx).Info().
		Str("codec", c.codec.Name()).
		Int("total_clients", h.GetClientCount()).
		Msg("websocket client connected")
}

func (h *Hub) handleUnregister(c *Client) {
	h.mu.Lock()
	delete(h.clients, c)
	n := len(h.clients)
	h.mu.Unlock()
	metrics.WSConnections.Set(float64(n))

	c.close()
	h.disconnect(c)
	logging.Ctx(c.ctx).Info().Int("total_clients", n).Msg("websocket client disconnected")
}

// unregister is called by the read pump; it gives up once the loop stops.
func (h *Hub) unregister(c *Client) {
	h.mu.RLock()
	stop := h.stop
	h.mu.RUnlock()

	select {
	case h.Unregister <- c:
	case <-stop:
	}
}

// disconnect runs OnDisconnect at most once per client.
func (h *Hub) disconnect(c *Client) {
	if !c.released.CompareAndSwap(false, true) {
		return
	}
	h.currentHandler().OnDisconnect(c)
}

func (h *Hub) currentHandler() Handler {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.handler
}

// shutdown closes all clients, runs their disconnect cleanup and releases
// read pumps waiting to unregister.
func (h *Hub) shutdown(ctx context.Context) {
	clients := h.closeAllClients()
	for _, c := range clients {
		h.disconnect(c)
	}

	h.mu.Lock()
	close(h.stop)
	h.mu.Unlock()

	logging.Info().
		Str("component", "websocket-hub").
		Str("reason", string(getShutdownReason(ctx))).
		Int("clients_closed", len(clients)).
		Msg("websocket hub stopped")
}

func getShutdownReason(ctx context.Context) ShutdownReason {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ShutdownReasonContextDeadline
	}
	return ShutdownReasonContextCanceled
}

// sortedClientsLocked returns clients in connection order. Must hold h.mu.
func (h *Hub) sortedClientsLocked() []*Client {
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].seq < clients[j].seq
	})
	return clients
}

// Broadcast sends one message to every joined client, in connection order.
// The message is encoded once per codec. Clients whose buffer is full are
// dropped; their read pump then unregisters them and cleanup runs.
func (h *Hub) Broadcast(event string, data any) {
	msg := Message{Type: event, Data: data}

	h.mu.Lock()
	defer h.mu.Unlock()

	frames := make(map[string][]byte, 2)
	delivered, dropped := 0, 0
	for _, c := range h.sortedClientsLocked() {
		name := c.codec.Name()
		frame, ok := frames[name]
		if !ok {
			encoded, err := c.codec.Marshal(msg)
			if err != nil {
				logging.Error().Err(err).Str("event", event).Str("codec", name).Msg("failed to encode broadcast")
				metrics.WSErrors.WithLabelValues("encode").Inc()
			}
			frames[name] = encoded
			frame = encoded
		}
		if frame == nil {
			continue
		}

		if c.enqueue(frame) {
			delivered++
			continue
		}
		dropped++
		delete(h.clients, c)
		c.close()
		logging.Ctx(c.ctx).Warn().Str("event", event).Msg("dropping slow websocket client")
	}

	metrics.RecordBroadcast(event, delivered, dropped)
	if dropped > 0 {
		metrics.WSConnections.Set(float64(len(h.clients)))
	}
}

// closeAllClients removes and closes every client, returning them in
// connection order.
func (h *Hub) closeAllClients() []*Client {
	h.mu.Lock()
	clients := h.sortedClientsLocked()
	for _, c := range clients {
		delete(h.clients, c)
		c.close()
	}
	h.mu.Unlock()

	metrics.WSConnections.Set(0)
	return clients
}

// GetClientCount returns the number of joined clients.
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
