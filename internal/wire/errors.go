package wire

import "github.com/pkg/errors"

// ErrNeedMore is returned by ParseFrame when the supplied buffer does not
// yet hold a complete frame. It is not a protocol fault: the caller is
// expected to re-present the same bytes plus whatever arrives next.
var ErrNeedMore = errors.New("wire: need more bytes")

// ErrFrameEnd is a codec-error: the trailing octet was not 0xCE.
var ErrFrameEnd = errors.New("wire: malformed frame, missing end marker")

// ErrUnknownType is a codec-error: a field-table/array entry carried a
// type tag this codec does not recognise.
var ErrUnknownType = errors.New("wire: unknown field type tag")

// ErrShortStringTooLong is a usage-error raised when encoding a string
// longer than 255 bytes into a short-string slot.
var ErrShortStringTooLong = errors.New("wire: short string exceeds 255 bytes")

// CodecError wraps a decode failure with the byte offset it occurred at,
// matching the taxonomy in spec.md §7 (fatal to the connection).
type CodecError struct {
	Offset int
	Err    error
}

func (e *CodecError) Error() string {
	return errors.Wrapf(e.Err, "wire: codec error at offset %d", e.Offset).Error()
}

func (e *CodecError) Unwrap() error { return e.Err }

// WrapCodec attaches a byte offset to an underlying decode error.
func WrapCodec(offset int, err error) error {
	if err == nil {
		return nil
	}
	return &CodecError{Offset: offset, Err: err}
}
