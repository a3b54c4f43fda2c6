// Package transport is the reference Transport implementation the core's
// event-loop-agnostic design (spec.md §9's REDESIGN) asks hosts to supply:
// it owns the goroutines and the net.Conn that amqp.Connection itself
// never touches. Generated the way the teacher's Dial/DialTLS/DialConfig
// trio did, minus the blocking reader loop those relied on.
package transport

import (
	"crypto/tls"
	"net"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rabbitbridge/amqp-core"
)

// Conn adapts a net.Conn into the amqp.Transport interface, with a single
// background goroutine pumping inbound bytes into the callbacks supplied
// at construction. It never touches protocol state; amqp.Connection still
// owns that.
type Conn struct {
	conn net.Conn

	mu     sync.Mutex
	closed bool

	onReadable func([]byte)
	onDetached func()
}

// DialTimeout is the default connect timeout used by Dial when the caller
// does not specify one, matching the teacher's historical default.
const DialTimeout = 30 * time.Second

// Dial opens a plain TCP connection to addr. The caller must invoke Start
// once it has finished wiring onReadable's destination (e.g. after
// constructing the amqp.Connection that onReadable closes over) — Dial
// itself never starts the read pump, so a byte arriving before Start is
// never delivered into a half-built callback.
func Dial(addr string, timeout time.Duration, onReadable func([]byte), onDetached func()) (*Conn, error) {
	if timeout <= 0 {
		timeout = DialTimeout
	}
	nc, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, errors.Wrap(err, "amqp/transport: dial")
	}
	return newConn(nc, onReadable, onDetached), nil
}

// DialTLS is Dial's TLS-wrapped counterpart. Start must be called the same
// way Dial's caller calls it.
func DialTLS(addr string, timeout time.Duration, tlsConfig *tls.Config, onReadable func([]byte), onDetached func()) (*Conn, error) {
	if timeout <= 0 {
		timeout = DialTimeout
	}
	dialer := &net.Dialer{Timeout: timeout}
	nc, err := tls.DialWithDialer(dialer, "tcp", addr, tlsConfig)
	if err != nil {
		return nil, errors.Wrap(err, "amqp/transport: dial tls")
	}
	return newConn(nc, onReadable, onDetached), nil
}

func newConn(nc net.Conn, onReadable func([]byte), onDetached func()) *Conn {
	return &Conn{conn: nc, onReadable: onReadable, onDetached: onDetached}
}

// Start launches the background goroutine that pumps inbound bytes to
// onReadable until the connection fails, at which point onDetached fires
// exactly once. Safe to call only once per Conn.
func (c *Conn) Start() {
	go c.readPump()
}

// readPump bridges net.Conn's blocking Read into the non-blocking core:
// this is the one goroutine the whole library needs, isolated here so the
// protocol core stays free of concurrency concerns (spec.md §9).
func (c *Conn) readPump() {
	buf := make([]byte, 128*1024)
	for {
		n, err := c.conn.Read(buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)
			c.onReadable(chunk)
		}
		if err != nil {
			c.mu.Lock()
			detached := !c.closed
			c.closed = true
			c.mu.Unlock()
			if detached && c.onDetached != nil {
				c.onDetached()
			}
			return
		}
	}
}

func (c *Conn) Write(b []byte) (int, error) {
	return c.conn.Write(b)
}

func (c *Conn) Monitor(flags amqp.TransportFlags) {
	// net.Conn's Write is itself blocking, so a short write never happens
	// here; OnWritable would only matter for a non-blocking socket layer,
	// which this reference adapter doesn't need.
}

func (c *Conn) OnNegotiate(suggested time.Duration) time.Duration { return suggested }
func (c *Conn) OnSecured() bool                                   { return true }
func (c *Conn) OnConnected()                                      {}
func (c *Conn) OnHeartbeat()                                      {}
func (c *Conn) OnError(error)                                     {}
func (c *Conn) OnClosed() {
	c.mu.Lock()
	already := c.closed
	c.closed = true
	c.mu.Unlock()
	if !already {
		_ = c.conn.Close()
	}
}

var _ amqp.Transport = (*Conn)(nil)
