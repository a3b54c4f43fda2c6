package amqp

import (
	"time"

	"go.uber.org/zap"
)

// defaults per spec.md §3.
const (
	defaultMaxFrameSize   = 4096
	defaultChannelMax     = 2047
	minFrameOverheadBytes = 8 // spec.md §4.2: a body frame must leave room for the frame header+end
)

// Config tunes the connection handshake. The zero value is valid; each
// zero field has the meaning given in its own comment below.
type Config struct {
	// SASL mechanisms to offer, most preferred first. Defaults to PLAIN
	// using the URI's credentials.
	SASL []Authentication

	// Vhost overrides the URI's vhost when set.
	Vhost string

	ChannelMax int           // 0 means "propose no limit, accept the server's"
	FrameMax   int           // 0 means "propose no limit, accept the server's"
	Heartbeat  time.Duration // 0 disables heartbeats entirely

	// MaxUnconfirmedPublishes bounds how many confirm-mode publishes may be
	// outstanding at once on a channel (spec.md §8's publisher-confirms
	// operation). Once the limit is reached, Publish fails fast with
	// ErrConfirmBacklogFull instead of blocking, keeping the core
	// non-blocking. 0 means unlimited.
	MaxUnconfirmedPublishes int

	// Logger is kept on the Connection; the core itself writes no log
	// entries to it. A nil Logger is replaced with a no-op one; library
	// code never assumes it is set.
	Logger *zap.SugaredLogger

	// Properties are merged into the client-properties table sent with
	// connection.start-ok, on top of the library's own identification.
	Properties Table
}

func (c Config) logger() *zap.SugaredLogger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop().Sugar()
}

// negotiateMax and negotiateHeartbeat implement spec.md §3's two negotiation rules: max-frame is
// min(client, server) with 0 meaning "no limit" on either side; heartbeat
// likewise except that either side offering 0 disables heartbeats
// entirely (spec.md §3 "0 disables heartbeats").
func negotiateMax(client, server int) int {
	switch {
	case client == 0:
		return server
	case server == 0:
		return client
	case client < server:
		return client
	default:
		return server
	}
}

func negotiateHeartbeat(client, server int) int {
	if client == 0 || server == 0 {
		return 0
	}
	if client < server {
		return client
	}
	return server
}
