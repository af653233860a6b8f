// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package websocket

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/tomtom215/aerocam-hub/internal/logging"
	"github.com/tomtom215/aerocam-hub/internal/metrics"
	"github.com/tomtom215/aerocam-hub/internal/models"
)

// clientSeq orders clients for deterministic fan-out.
var clientSeq atomic.Uint64

// Client is a middleman between one websocket connection and the hub.
type Client struct {
	seq   uint64
	id    string
	hub   *Hub
	conn  *websocket.Conn
	codec Codec
	ctx   context.Context

	limiter  *rate.Limiter
	released atomic.Bool

	mu     sync.Mutex
	send   chan []byte
	closed bool
}

// NewClient creates a client for conn. The client's ID is a fresh UUID and
// is the transport identifier used for disconnect cleanup.
func NewClient(hub *Hub, conn *websocket.Conn, codec Codec) *Client {
	if codec == nil {
		codec = JSONCodec{}
	}
	cfg := hub.cfg
	limit := rate.Inf
	if cfg.MessagesPerSecond > 0 {
		limit = rate.Limit(cfg.MessagesPerSecond)
	}

	id := uuid.NewString()
	return &Client{
		seq:     clientSeq.Add(1),
		id:      id,
		hub:     hub,
		conn:    conn,
		codec:   codec,
		ctx:     logging.ContextWithConnID(context.Background(), id),
		limiter: rate.NewLimiter(limit, cfg.Burst),
		send:    make(chan []byte, cfg.SendBuffer),
	}
}

// ID returns the connection's transport identifier.
func (c *Client) ID() string {
	return c.id
}

// Codec returns the codec negotiated for this connection.
func (c *Client) Codec() Codec {
	return c.codec
}

// Context carries the connection ID for logging.
func (c *Client) Context() context.Context {
	return c.ctx
}

// Send encodes one message for this client only. It reports false when the
// client is closed, the payload cannot be encoded, or the buffer is full.
func (c *Client) Send(event string, data any) bool {
	frame, err := c.codec.Marshal(Message{Type: event, Data: data})
	if err != nil {
		logging.Ctx(c.ctx).Error().Err(err).Str("event", event).Msg("failed to encode websocket message")
		metrics.WSErrors.WithLabelValues("encode").Inc()
		return false
	}
	if !c.enqueue(frame) {
		metrics.WSMessagesDropped.Inc()
		return false
	}
	metrics.WSMessagesSent.WithLabelValues(event).Inc()
	return true
}

// enqueue queues an encoded frame without blocking.
func (c *Client) enqueue(frame []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// close stops the write pump after queued frames drain. Safe to call twice.
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// readPump pumps frames from the connection to the hub's handler.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		_ = c.conn.Close() // best-effort cleanup
	}()

	cfg := c.hub.cfg
	c.conn.SetReadLimit(cfg.MaxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(cfg.PongWait)); err != nil {
		logging.Ctx(c.ctx).Error().Err(err).Msg("failed to set read deadline")
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
	})

	for {
		_, frame, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				logging.Ctx(c.ctx).Warn().Err(err).Msg("unexpected websocket close error")
				metrics.WSErrors.WithLabelValues("unexpected_close").Inc()
			}
			return
		}
		c.handleFrame(frame)
	}
}

// handleFrame decodes and dispatches one inbound frame.
func (c *Client) handleFrame(frame []byte) {
	if !c.limiter.Allow() {
		metrics.WSRateLimited.Inc()
		logging.Ctx(c.ctx).Debug().Msg("inbound websocket message rate limited")
		return
	}

	in, err := c.codec.DecodeEnvelope(frame)
	if err != nil {
		metrics.WSMessagesReceived.WithLabelValues("invalid").Inc()
		metrics.WSErrors.WithLabelValues("invalid_message").Inc()
		c.Send(models.EventError, models.ErrorEvent{Message: "mensaje inválido"})
		return
	}
	metrics.WSMessagesReceived.WithLabelValues(in.Type).Inc()

	if in.Type == models.EventPing {
		c.Send(models.EventPong, nil)
		return
	}
	c.dispatch(in)
}

// dispatch runs the handler inside a recover boundary: a failing message is
// logged and reported to its sender only.
func (c *Client) dispatch(in Inbound) {
	defer func() {
		if r := recover(); r != nil {
			logging.Ctx(c.ctx).Error().
				Str("event", in.Type).
				Str("panic", fmt.Sprint(r)).
				Msg("recovered from panic while handling websocket message")
			metrics.WSErrors.WithLabelValues("handler_panic").Inc()
			c.Send(models.EventError, models.ErrorEvent{Event: in.Type, Message: "error interno"})
		}
	}()
	c.hub.currentHandler().OnMessage(c, in)
}

// writePump pumps queued frames to the connection and keeps it alive with pings.
func (c *Client) writePump() {
	cfg := c.hub.cfg
	ticker := time.NewTicker(cfg.PingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close() // best-effort cleanup
	}()

	for {
		select {
		case frame, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait)); err != nil {
				logging.Ctx(c.ctx).Error().Err(err).Msg("failed to set write deadline")
				return
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(c.codec.FrameType(), frame); err != nil {
				logging.Ctx(c.ctx).Debug().Err(err).Msg("failed to write websocket message")
				metrics.WSErrors.WithLabelValues("write").Inc()
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait)); err != nil {
				logging.Ctx(c.ctx).Error().Err(err).Msg("failed to set write deadline for ping")
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Start begins reading and writing for the client.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}
