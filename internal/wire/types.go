// Package wire implements the AMQP 0-9-1 field codec and frame codec: the
// bit-exact, allocation-light encode/decode layer the rest of the library is
// built on. Nothing in this package blocks or owns a socket.
package wire

import "time"

// Table is an ordered-on-the-wire, unordered-in-memory set of named,
// typed values. Decoding preserves insertion order is not guaranteed;
// AMQP does not require it.
type Table map[string]interface{}

// Decimal is a scaled signed 32-bit integer: value == Value * 10^-Scale.
type Decimal struct {
	Scale uint8
	Value int32
}

// ShortStr marks a string that must be encoded with the 8-bit-length
// short-string form (tag 's') instead of the default long-string form
// ('S') used for a bare Go string.
type ShortStr string

// Timestamp is a point in time with AMQP's one-second resolution.
type Timestamp time.Time

// Frame type octets, spec.md §4.2 / §6.
const (
	FrameMethod    byte = 1
	FrameHeader    byte = 2
	FrameBody      byte = 3
	FrameHeartbeat byte = 8
)

// FrameEnd is the fixed trailing octet of every frame.
const FrameEnd byte = 0xCE

// FrameOverhead is the fixed 7-byte header plus 1-byte trailer that
// every frame carries in addition to its payload.
const FrameOverhead = 8

// Frame is the tagged union described in spec.md §3.
type Frame interface {
	ChannelID() uint16
}

// MethodFrame carries a method's class/method ids and its still-encoded
// argument bytes in Payload; internal/spec091 decodes those. wire only
// needs the class/method ids to know how much of the payload it owns
// versus what the caller decodes.
type MethodFrame struct {
	Channel  uint16
	ClassID  uint16
	MethodID uint16
	Payload  []byte // method arguments, undecoded
}

func (f *MethodFrame) ChannelID() uint16 { return f.Channel }

// HeaderFrame is a content header: the body-size announcement plus the
// subset of properties whose flag bit was set.
type HeaderFrame struct {
	Channel       uint16
	ClassID       uint16
	BodySize      uint64
	PropertyFlags uint16
	Properties    []byte // encoded property values, undecoded
}

func (f *HeaderFrame) ChannelID() uint16 { return f.Channel }

// BodyFrame is a raw slice of a message body.
type BodyFrame struct {
	Channel uint16
	Body    []byte
}

func (f *BodyFrame) ChannelID() uint16 { return f.Channel }

// HeartbeatFrame always lives on channel 0 and carries no payload.
type HeartbeatFrame struct{}

func (f *HeartbeatFrame) ChannelID() uint16 { return 0 }
