package wire

import "encoding/binary"

const frameHeaderSize = 7 // type(1) + channel(2) + length(4)

// ParseFrame decodes exactly one frame from the front of buf.
//
// It returns ErrNeedMore (and consumed == 0) when buf does not yet hold a
// complete frame; the caller must re-present buf unchanged plus whatever
// additional bytes arrive, per spec.md §4.2/§8 ("no-partial-consume").
// A malformed end marker is a fatal codec-error, never ErrNeedMore.
func ParseFrame(buf []byte) (fr Frame, consumed int, err error) {
	if len(buf) < frameHeaderSize+1 {
		return nil, 0, ErrNeedMore
	}

	typ := buf[0]
	channel := binary.BigEndian.Uint16(buf[1:3])
	length := binary.BigEndian.Uint32(buf[3:7])

	total := frameHeaderSize + int(length) + 1
	if len(buf) < total {
		return nil, 0, ErrNeedMore
	}

	payload := buf[frameHeaderSize : frameHeaderSize+int(length)]
	if buf[total-1] != FrameEnd {
		return nil, 0, WrapCodec(total-1, ErrFrameEnd)
	}

	switch typ {
	case FrameMethod:
		if len(payload) < 4 {
			return nil, 0, WrapCodec(frameHeaderSize, ErrUnknownType)
		}
		fr = &MethodFrame{
			Channel:  channel,
			ClassID:  binary.BigEndian.Uint16(payload[0:2]),
			MethodID: binary.BigEndian.Uint16(payload[2:4]),
			Payload:  payload[4:],
		}
	case FrameHeader:
		if len(payload) < 14 {
			return nil, 0, WrapCodec(frameHeaderSize, ErrUnknownType)
		}
		fr = &HeaderFrame{
			Channel:       channel,
			ClassID:       binary.BigEndian.Uint16(payload[0:2]),
			BodySize:      binary.BigEndian.Uint64(payload[4:12]),
			PropertyFlags: binary.BigEndian.Uint16(payload[12:14]),
			Properties:    payload[14:],
		}
	case FrameBody:
		fr = &BodyFrame{Channel: channel, Body: payload}
	case FrameHeartbeat:
		fr = &HeartbeatFrame{}
	default:
		return nil, 0, WrapCodec(0, ErrUnknownType)
	}

	return fr, total, nil
}

// WriteFrame appends one frame of type typ on channel, carrying payload, to
// out and returns the extended slice. It never splits payload across
// multiple frames; splitting a
// publish body into max-frame-sized chunks is the channel engine's job.
func WriteFrame(out []byte, typ byte, channel uint16, payload []byte) []byte {
	var hdr [frameHeaderSize]byte
	hdr[0] = typ
	binary.BigEndian.PutUint16(hdr[1:3], channel)
	binary.BigEndian.PutUint32(hdr[3:7], uint32(len(payload)))
	out = append(out, hdr[:]...)
	out = append(out, payload...)
	out = append(out, FrameEnd)
	return out
}

// EncodeMethod serializes a method frame's payload (class-id, method-id,
// then argument bytes) ready for WriteFrame.
func EncodeMethod(classID, methodID uint16, args []byte) []byte {
	w := NewWriter()
	w.WriteUint16(classID)
	w.WriteUint16(methodID)
	out := w.Bytes()
	return append(out, args...)
}

// EncodeHeader serializes a header frame's payload: class-id, a zero
// weight field (unused by AMQP 0-9-1), body-size, property-flags, then
// the already-encoded present properties.
func EncodeHeader(classID uint16, bodySize uint64, flags uint16, props []byte) []byte {
	w := NewWriter()
	w.WriteUint16(classID)
	w.WriteUint16(0) // weight, unused, must be 0
	w.WriteUint64(bodySize)
	w.WriteUint16(flags)
	out := w.Bytes()
	return append(out, props...)
}
