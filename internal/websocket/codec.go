// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package websocket

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

// Subprotocol names negotiated on upgrade.
const (
	SubprotocolJSON    = "json"
	SubprotocolMsgpack = "msgpack"
)

// ErrEmptyType is returned for frames without a message type.
var ErrEmptyType = errors.New("message type is empty")

// Message is the envelope of every frame: {"type": ..., "data": ...}.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Codec serializes frames for one wire format.
type Codec interface {
	// Name is the subprotocol that selects this codec.
	Name() string
	// FrameType is websocket.TextMessage or websocket.BinaryMessage.
	FrameType() int
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	// DecodeEnvelope splits a frame into its type and still-encoded payload.
	DecodeEnvelope(frame []byte) (Inbound, error)
}

// Inbound is a decoded envelope whose payload is bound lazily, so the
// handler picks the payload type after looking at Type.
type Inbound struct {
	Type    string
	payload []byte
	codec   Codec
}

// NewInbound builds an Inbound from an already encoded payload.
func NewInbound(typ string, payload []byte, codec Codec) Inbound {
	return Inbound{Type: typ, payload: payload, codec: codec}
}

// Bind decodes the payload into v. A missing payload leaves v untouched.
func (in Inbound) Bind(v any) error {
	if len(in.payload) == 0 || in.codec == nil {
		return nil
	}
	if err := in.codec.Unmarshal(in.payload, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", in.Type, err)
	}
	return nil
}

// CodecFor returns the codec for a negotiated subprotocol; JSON is the default.
func CodecFor(subprotocol string) Codec {
	if subprotocol == SubprotocolMsgpack {
		return MsgpackCodec{}
	}
	return JSONCodec{}
}

// JSONCodec encodes text frames with goccy/go-json.
type JSONCodec struct{}

func (JSONCodec) Name() string   { return SubprotocolJSON }
func (JSONCodec) FrameType() int { return websocket.TextMessage }

func (JSONCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (JSONCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (c JSONCodec) DecodeEnvelope(frame []byte) (Inbound, error) {
	var env struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(frame, &env); err != nil {
		return Inbound{}, fmt.Errorf("decode json envelope: %w", err)
	}
	if env.Type == "" {
		return Inbound{}, ErrEmptyType
	}
	return Inbound{Type: env.Type, payload: env.Data, codec: c}, nil
}

// MsgpackCodec encodes binary frames with MessagePack. Struct fields use
// their json tags so both codecs share one wire vocabulary.
type MsgpackCodec struct{}

func (MsgpackCodec) Name() string   { return SubprotocolMsgpack }
func (MsgpackCodec) FrameType() int { return websocket.BinaryMessage }

func (MsgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	enc.UseCompactInts(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (MsgpackCodec) Unmarshal(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}

func (c MsgpackCodec) DecodeEnvelope(frame []byte) (Inbound, error) {
	var env struct {
		Type string             `msgpack:"type"`
		Data msgpack.RawMessage `msgpack:"data"`
	}
	if err := msgpack.Unmarshal(frame, &env); err != nil {
		return Inbound{}, fmt.Errorf("decode msgpack envelope: %w", err)
	}
	if env.Type == "" {
		return Inbound{}, ErrEmptyType
	}
	return Inbound{Type: env.Type, payload: env.Data, codec: c}, nil
}
