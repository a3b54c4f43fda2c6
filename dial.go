package amqp

import (
	"crypto/tls"
	"time"

	"github.com/pkg/errors"
	"github.com/rabbitbridge/amqp-core/internal/transport"
)

// Dial is the blocking convenience entry point most callers want: parse a
// uri, open a TCP connection, run the handshake, and return once it has
// either succeeded or failed. Everything it does is also reachable
// non-blockingly through Open and a Transport of the caller's own, which
// Dial exists only to save callers from writing themselves (spec.md §9
// explicitly keeps this carve-out, same as the teacher's Dial/DialConfig).
func Dial(uri string) (*Connection, error) {
	return DialConfig(uri, Config{})
}

// DialConfig is Dial with an explicit Config; the URI's vhost and
// credentials are used unless config already sets them.
func DialConfig(uri string, config Config) (*Connection, error) {
	u, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}
	if config.Vhost == "" {
		config.Vhost = u.Vhost
	}
	if len(config.SASL) == 0 {
		config.SASL = []Authentication{u.PlainAuth()}
	}

	if u.Scheme == "amqps" {
		return dialTLS(u.Address(), config, nil)
	}
	return dialPlain(u.Address(), config)
}

// DialTLS is DialConfig's explicit-TLS-config counterpart, for callers
// that need client certificates or a custom RootCAs pool.
func DialTLS(uri string, config Config, tlsConfig *tls.Config) (*Connection, error) {
	u, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}
	if config.Vhost == "" {
		config.Vhost = u.Vhost
	}
	if len(config.SASL) == 0 {
		config.SASL = []Authentication{u.PlainAuth()}
	}
	return dialTLS(u.Address(), config, tlsConfig)
}

// dialPlain and dialTLS must construct the Connection before the
// transport's read pump goroutine can run a single byte through
// onReadable — otherwise a fast-answering broker can race the pump against
// the `conn =` assignment below and dereference a nil *Connection. Dial
// only constructs the socket; Start is deferred until conn is safely set.
func dialPlain(addr string, config Config) (*Connection, error) {
	result := make(chan error, 1)
	var conn *Connection

	tc, err := transport.Dial(addr, 0, func(b []byte) { pump(conn, b) }, func() { conn.OnDetached() })
	if err != nil {
		return nil, err
	}
	conn = Open(tc, config, func(err error) { result <- err })
	tc.Start()
	return waitOpen(conn, result)
}

func dialTLS(addr string, config Config, tlsConfig *tls.Config) (*Connection, error) {
	result := make(chan error, 1)
	var conn *Connection

	tc, err := transport.DialTLS(addr, 0, tlsConfig, func(b []byte) { pump(conn, b) }, func() { conn.OnDetached() })
	if err != nil {
		return nil, err
	}
	conn = Open(tc, config, func(err error) { result <- err })
	tc.Start()
	return waitOpen(conn, result)
}

// pump feeds one read's worth of bytes into Parse. Parse carries any
// trailing partial frame in its own buffer (spec.md §8's "no-partial-
// consume"), so a single call per chunk is all a host ever needs to make.
func pump(conn *Connection, b []byte) {
	_, _ = conn.Parse(b)
}

func waitOpen(conn *Connection, result chan error) (*Connection, error) {
	if err := <-result; err != nil {
		return nil, errors.Wrap(err, "amqp: handshake failed")
	}
	return conn, nil
}
