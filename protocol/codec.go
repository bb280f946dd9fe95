package protocol

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/mapleleafu/cheesechase/models"
)

var ErrEmptyFrame = errors.New("empty frame")

// Codec turns messages into frame payloads and back. Binary codecs go out as
// binary WebSocket frames, the rest as text frames.
type Codec interface {
	Name() string
	Binary() bool
	Encode(v any) ([]byte, error)
	Decode(b []byte, v any) error
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Binary() bool { return false }

func (jsonCodec) Encode(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Decode(b []byte, v any) error { return json.Unmarshal(b, v) }

// msgpackCodec reuses the json struct tags so both codecs share field names.
type msgpackCodec struct{}

func (msgpackCodec) Name() string { return "msgpack" }

func (msgpackCodec) Binary() bool { return true }

func (msgpackCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (msgpackCodec) Decode(b []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(b))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}

var (
	JSON    Codec = jsonCodec{}
	MsgPack Codec = msgpackCodec{}
)

// Lookup picks a codec by name. Anything unknown, including "", gets JSON.
func Lookup(name string) Codec {
	if name == MsgPack.Name() {
		return MsgPack
	}
	return JSON
}

// DecodeClientMessage parses one inbound frame. Frames without a type are
// rejected.
func DecodeClientMessage(c Codec, b []byte) (models.ClientMessage, error) {
	if len(b) == 0 {
		return models.ClientMessage{}, ErrEmptyFrame
	}
	var msg models.ClientMessage
	if err := c.Decode(b, &msg); err != nil {
		return models.ClientMessage{}, fmt.Errorf("decode %s frame: %w", c.Name(), err)
	}
	if msg.Type == "" {
		return models.ClientMessage{}, fmt.Errorf("decode %s frame: missing type", c.Name())
	}
	return msg, nil
}
