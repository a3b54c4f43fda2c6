package spec091

import "github.com/rabbitbridge/amqp-core/internal/wire"

// Method is satisfied by every argument struct in this package. Read/Write
// only ever touch the method's own argument bytes; the class-id/method-id
// header that precedes them on the wire is handled by wire.EncodeMethod and
// internal/wire's frame parser.
type Method interface {
	ClassID() uint16
	MethodID() uint16
	Write(w *wire.Writer) error
	Read(r *wire.Reader) error
}

// New returns a zero-valued Method for the given class/method id, or nil if
// unrecognised. Used by the connection/channel dispatch to decode an
// incoming MethodFrame's payload.
func New(classID, methodID uint16) Method {
	if ctor, ok := registry[key{classID, methodID}]; ok {
		return ctor()
	}
	return nil
}

type key struct {
	class, method uint16
}

var registry = map[key]func() Method{}

func register(classID, methodID uint16, ctor func() Method) {
	registry[key{classID, methodID}] = ctor
}
