// Package amqp implements the wire-level core of an AMQP 0-9-1 client:
// frame and field-table codecs, the connection handshake state machine,
// and channel multiplexing with publisher confirms and message
// reassembly. Unlike most clients in this space it never opens a socket
// or starts a goroutine itself — a Connection is driven entirely by a
// host-supplied Transport and the Parse/OnWritable/OnDetached/Tick entry
// points, so it can be embedded in any event loop. Dial and DialConfig are
// provided as blocking convenience wrappers over internal/transport for
// callers who just want a socket opened for them.
package amqp
