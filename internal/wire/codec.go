package wire

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/pkg/errors"
)

// Type tags for field-table/array entries, matching the extended set
// RabbitMQ and its Go clients (streadway/amqp, rabbitmq/amqp091-go) use on
// the wire.
const (
	tagBool      byte = 't'
	tagInt8      byte = 'b'
	tagUint8     byte = 'B'
	tagInt16     byte = 'U'
	tagUint16    byte = 'u'
	tagInt32     byte = 'I'
	tagUint32    byte = 'i'
	tagInt64     byte = 'L'
	tagUint64    byte = 'l'
	tagFloat32   byte = 'f'
	tagFloat64   byte = 'd'
	tagDecimal   byte = 'D'
	tagShortStr  byte = 's'
	tagLongStr   byte = 'S'
	tagArray     byte = 'A'
	tagTimestamp byte = 'T'
	tagTable     byte = 'F'
	tagVoid      byte = 'V'
)

// Reader is a forward-only cursor over a complete, already-framed payload.
// Frame-level partial-read handling happens before a Reader is ever
// constructed; a Reader never needs to report "need more".
type Reader struct {
	buf []byte
	pos int
}

func NewReader(buf []byte) *Reader { return &Reader{buf: buf} }

func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

func (r *Reader) take(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, WrapCodec(r.pos, errors.Errorf("wire: need %d bytes, have %d", n, r.Remaining()))
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *Reader) ReadByte() (byte, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadByte()
	return b != 0, err
}

func (r *Reader) ReadUint8() (uint8, error) {
	return r.ReadByte()
}

func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.ReadByte()
	return int8(b), err
}

func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	return math.Float32frombits(v), err
}

func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	return math.Float64frombits(v), err
}

func (r *Reader) ReadDecimal() (Decimal, error) {
	scale, err := r.ReadUint8()
	if err != nil {
		return Decimal{}, err
	}
	val, err := r.ReadInt32()
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{Scale: scale, Value: val}, nil
}

func (r *Reader) ReadTimestamp() (time.Time, error) {
	secs, err := r.ReadUint64()
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(secs), 0).UTC(), nil
}

// ReadShortString decodes an 8-bit-length-prefixed UTF-8 string.
func (r *Reader) ReadShortString() (string, error) {
	n, err := r.ReadUint8()
	if err != nil {
		return "", err
	}
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadLongString decodes a 32-bit-length-prefixed binary-safe string.
func (r *Reader) ReadLongString() (string, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return "", err
	}
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadTable decodes a 4-byte-length-prefixed field table.
func (r *Reader) ReadTable() (Table, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	b, err := r.take(int(n))
	if err != nil {
		return nil, err
	}
	sub := NewReader(b)
	t := Table{}
	for sub.Remaining() > 0 {
		name, err := sub.ReadShortString()
		if err != nil {
			return nil, err
		}
		val, err := sub.ReadValue()
		if err != nil {
			return nil, err
		}
		t[name] = val
	}
	return t, nil
}

// ReadArray decodes a 4-byte-length-prefixed array of typed values.
func (r *Reader) ReadArray() ([]interface{}, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	b, err := r.take(int(n))
	if err != nil {
		return nil, err
	}
	sub := NewReader(b)
	var arr []interface{}
	for sub.Remaining() > 0 {
		val, err := sub.ReadValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}
	return arr, nil
}

// ReadValue decodes one tagged value: a 1-byte type tag followed by its
// payload. An unrecognised tag is a fatal codec-error (spec.md §4.1: "not
// safe" to skip it).
func (r *Reader) ReadValue() (interface{}, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case tagBool:
		return r.ReadBool()
	case tagInt8:
		return r.ReadInt8()
	case tagUint8:
		return r.ReadUint8()
	case tagInt16:
		return r.ReadInt16()
	case tagUint16:
		return r.ReadUint16()
	case tagInt32:
		return r.ReadInt32()
	case tagUint32:
		return r.ReadUint32()
	case tagInt64:
		return r.ReadInt64()
	case tagUint64:
		return r.ReadUint64()
	case tagFloat32:
		return r.ReadFloat32()
	case tagFloat64:
		return r.ReadFloat64()
	case tagDecimal:
		return r.ReadDecimal()
	case tagShortStr:
		return ShortStr0(r)
	case tagLongStr:
		return r.ReadLongString()
	case tagArray:
		return r.ReadArray()
	case tagTimestamp:
		return r.ReadTimestamp()
	case tagTable:
		return r.ReadTable()
	case tagVoid:
		return nil, nil
	default:
		return nil, WrapCodec(r.pos-1, ErrUnknownType)
	}
}

func ShortStr0(r *Reader) (ShortStr, error) {
	s, err := r.ReadShortString()
	return ShortStr(s), err
}

// Writer accumulates encoded bytes. It never fragments a frame: callers
// build a complete payload in one Writer before handing it to the frame
// codec.
type Writer struct {
	buf []byte
}

func NewWriter() *Writer { return &Writer{} }

func (w *Writer) Bytes() []byte { return w.buf }

func (w *Writer) Len() int { return len(w.buf) }

func (w *Writer) WriteByte(b byte) { w.buf = append(w.buf, b) }

func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteByte(1)
	} else {
		w.WriteByte(0)
	}
}

func (w *Writer) WriteUint8(v uint8)   { w.WriteByte(v) }
func (w *Writer) WriteInt8(v int8)     { w.WriteByte(byte(v)) }

func (w *Writer) WriteUint16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *Writer) WriteInt16(v int16) { w.WriteUint16(uint16(v)) }

func (w *Writer) WriteUint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *Writer) WriteInt32(v int32) { w.WriteUint32(uint32(v)) }

func (w *Writer) WriteUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *Writer) WriteInt64(v int64) { w.WriteUint64(uint64(v)) }

func (w *Writer) WriteFloat32(v float32) { w.WriteUint32(math.Float32bits(v)) }
func (w *Writer) WriteFloat64(v float64) { w.WriteUint64(math.Float64bits(v)) }

func (w *Writer) WriteDecimal(d Decimal) {
	w.WriteUint8(d.Scale)
	w.WriteInt32(d.Value)
}

func (w *Writer) WriteTimestamp(t time.Time) {
	w.WriteUint64(uint64(t.Unix()))
}

// WriteShortString encodes an 8-bit-length-prefixed string. A string
// longer than 255 bytes is a fatal encode error (spec.md §4.1).
func (w *Writer) WriteShortString(s string) error {
	if len(s) > 255 {
		return ErrShortStringTooLong
	}
	w.WriteUint8(uint8(len(s)))
	w.buf = append(w.buf, s...)
	return nil
}

// WriteLongString encodes a 32-bit-length-prefixed binary-safe string.
func (w *Writer) WriteLongString(s string) {
	w.WriteUint32(uint32(len(s)))
	w.buf = append(w.buf, s...)
}

// WriteTable encodes a field table with its 4-byte total-length prefix.
func (w *Writer) WriteTable(t Table) error {
	sub := NewWriter()
	for name, val := range t {
		if err := sub.WriteShortString(name); err != nil {
			return err
		}
		if err := sub.WriteValue(val); err != nil {
			return err
		}
	}
	w.WriteUint32(uint32(sub.Len()))
	w.buf = append(w.buf, sub.Bytes()...)
	return nil
}

// WriteArray encodes an array with its 4-byte total-length prefix.
func (w *Writer) WriteArray(arr []interface{}) error {
	sub := NewWriter()
	for _, val := range arr {
		if err := sub.WriteValue(val); err != nil {
			return err
		}
	}
	w.WriteUint32(uint32(sub.Len()))
	w.buf = append(w.buf, sub.Bytes()...)
	return nil
}

// WriteValue encodes a 1-byte type tag followed by the value's payload.
// Go string values are always tagged as long-string; use ShortStr to force
// the short-string encoding.
func (w *Writer) WriteValue(v interface{}) error {
	switch val := v.(type) {
	case nil:
		w.WriteByte(tagVoid)
	case bool:
		w.WriteByte(tagBool)
		w.WriteBool(val)
	case int8:
		w.WriteByte(tagInt8)
		w.WriteInt8(val)
	case uint8:
		w.WriteByte(tagUint8)
		w.WriteUint8(val)
	case int16:
		w.WriteByte(tagInt16)
		w.WriteInt16(val)
	case uint16:
		w.WriteByte(tagUint16)
		w.WriteUint16(val)
	case int32:
		w.WriteByte(tagInt32)
		w.WriteInt32(val)
	case uint32:
		w.WriteByte(tagUint32)
		w.WriteUint32(val)
	case int64:
		w.WriteByte(tagInt64)
		w.WriteInt64(val)
	case uint64:
		w.WriteByte(tagUint64)
		w.WriteUint64(val)
	case int:
		w.WriteByte(tagInt64)
		w.WriteInt64(int64(val))
	case float32:
		w.WriteByte(tagFloat32)
		w.WriteFloat32(val)
	case float64:
		w.WriteByte(tagFloat64)
		w.WriteFloat64(val)
	case Decimal:
		w.WriteByte(tagDecimal)
		w.WriteDecimal(val)
	case ShortStr:
		w.WriteByte(tagShortStr)
		return w.WriteShortString(string(val))
	case string:
		w.WriteByte(tagLongStr)
		w.WriteLongString(val)
	case time.Time:
		w.WriteByte(tagTimestamp)
		w.WriteTimestamp(val)
	case Timestamp:
		w.WriteByte(tagTimestamp)
		w.WriteTimestamp(time.Time(val))
	case Table:
		w.WriteByte(tagTable)
		return w.WriteTable(val)
	case []interface{}:
		w.WriteByte(tagArray)
		return w.WriteArray(val)
	default:
		return errors.Errorf("wire: unsupported field value type %T", v)
	}
	return nil
}
