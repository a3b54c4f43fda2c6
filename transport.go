package amqp

import "time"

// TransportFlags tells the host transport which readiness notifications
// the core currently wants, spec.md §6: "flags ∈ {0, readable, writable,
// readable|writable}, 0 meaning 'stop monitoring'".
type TransportFlags int

const (
	FlagNone     TransportFlags = 0
	FlagReadable TransportFlags = 1 << 0
	FlagWritable TransportFlags = 1 << 1
)

// Transport is the host-supplied adapter spec.md §4.6/§6 describes: the
// library never opens a socket, resolves DNS, or drives an event loop
// itself. A Connection is handed a Transport and thereafter only calls
// the methods below; the host drives the Connection back via Parse,
// OnWritable and OnDetached.
type Transport interface {
	// Write attempts a non-blocking write of b and returns how many
	// leading bytes were actually accepted. A short write means the
	// Connection must re-offer the remainder later (it does so via
	// Monitor(FlagWritable) and a subsequent OnWritable call).
	Write(b []byte) (int, error)

	// Monitor requests (or, with FlagNone, cancels) readiness
	// notification on the transport's underlying descriptor.
	Monitor(flags TransportFlags)

	// OnNegotiate lets the host override the heartbeat interval the
	// server proposed, before tune-ok is sent.
	OnNegotiate(suggested time.Duration) time.Duration

	// OnSecured is consulted once any TLS handshake the host performed
	// has completed; returning false aborts the connection.
	OnSecured() bool

	OnConnected()
	OnHeartbeat()
	OnError(err error)
	OnClosed()
}

// NopTransport is a Transport that accepts every write and ignores every
// notification; useful for unit tests that only want to inspect what the
// core would have sent.
type NopTransport struct {
	Written [][]byte
}

func (t *NopTransport) Write(b []byte) (int, error) {
	cp := append([]byte(nil), b...)
	t.Written = append(t.Written, cp)
	return len(b), nil
}
func (t *NopTransport) Monitor(TransportFlags)                       {}
func (t *NopTransport) OnNegotiate(suggested time.Duration) time.Duration { return suggested }
func (t *NopTransport) OnSecured() bool                               { return true }
func (t *NopTransport) OnConnected()                                  {}
func (t *NopTransport) OnHeartbeat()                                  {}
func (t *NopTransport) OnError(error)                                 {}
func (t *NopTransport) OnClosed()                                     {}
