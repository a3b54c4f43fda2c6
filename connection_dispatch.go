package amqp

import (
	"strings"
	"time"

	"github.com/rabbitbridge/amqp-core/internal/spec091"
	"github.com/rabbitbridge/amqp-core/internal/wire"
)

// demux implements spec.md §4.3: frames on channel 0 go to the
// connection, all others go to the addressed channel.
func (c *Connection) demux(fr wire.Frame) {
	if fr.ChannelID() == 0 {
		c.dispatch0(fr)
	} else {
		c.dispatchN(fr)
	}
}

func (c *Connection) dispatch0(fr wire.Frame) {
	switch f := fr.(type) {
	case *wire.MethodFrame:
		m := spec091.New(f.ClassID, f.MethodID)
		if m == nil {
			c.fail(newLocalError(KindProtocol, "amqp: unknown method on channel 0"))
			return
		}
		if err := m.Read(wire.NewReader(f.Payload)); err != nil {
			c.fail(newLocalError(KindCodec, err.Error()))
			return
		}
		c.handleMethod0(m)
	case *wire.HeartbeatFrame:
		// inbound byte already reset lastRecv in Parse; nothing else to do.
	default:
		c.fail(ErrUnexpectedFrame)
	}
}

func (c *Connection) dispatchN(fr wire.Frame) {
	ch := c.channels.get(fr.ChannelID())
	if ch == nil {
		c.dispatchClosedChannel(fr)
		return
	}
	ch.recv(fr)
}

// dispatchClosedChannel implements the teacher's handling of frames that
// arrive for a channel id we no longer track: a lone channel.close gets
// a close-ok so the peer isn't left hanging, anything else is a protocol
// error.
func (c *Connection) dispatchClosedChannel(fr wire.Frame) {
	mf, ok := fr.(*wire.MethodFrame)
	if !ok {
		c.fail(newLocalError(KindProtocol, "amqp: unknown channel id"))
		return
	}
	switch mf.ClassID {
	case spec091.ClassChannel:
		switch mf.MethodID {
		case spec091.ChannelClose:
			_ = c.sendMethod(mf.Channel, &spec091.ChannelCloseOk1{})
		case spec091.ChannelCloseOk:
			// already gone, nothing to do
		default:
			c.fail(ErrUnexpectedFrame)
		}
	default:
		c.fail(newLocalError(KindProtocol, "amqp: unknown channel id"))
	}
}

func (c *Connection) handleMethod0(m spec091.Method) {
	switch msg := m.(type) {
	case *spec091.ConnectionStart1:
		c.onConnectionStart(msg)
	case *spec091.ConnectionSecure1:
		c.onConnectionSecure(msg)
	case *spec091.ConnectionTune1:
		c.onConnectionTune(msg)
	case *spec091.ConnectionOpenOk1:
		c.onConnectionOpenOk()
	case *spec091.ConnectionClose1:
		_ = c.sendMethod(0, &spec091.ConnectionCloseOk1{})
		c.shutdown(newServerError(KindConnection, int(msg.ReplyCode), msg.ReplyText, msg.ClassID_, msg.MethodID_))
	case *spec091.ConnectionCloseOk1:
		c.shutdown(nil)
	case *spec091.ConnectionBlocked1:
		for _, b := range c.blocks {
			b <- Blocking{Active: true, Reason: msg.Reason}
		}
	case *spec091.ConnectionUnblocked1:
		for _, b := range c.blocks {
			b <- Blocking{Active: false}
		}
	default:
		c.fail(ErrCommandInvalid)
	}
}

func (c *Connection) onConnectionStart(start *spec091.ConnectionStart1) {
	if c.state != stateProtocolHeaderSent {
		c.fail(ErrUnexpectedFrame)
		return
	}
	c.Major = int(start.VersionMajor)
	c.Minor = int(start.VersionMinor)
	c.Properties = start.ServerProperties

	sasl := c.sasl
	if len(sasl) == 0 {
		sasl = []Authentication{&PlainAuth{Username: "guest", Password: "guest"}}
	}
	auth, ok := pickSASLMechanism(sasl, strings.Split(start.Mechanisms, " "))
	if !ok {
		c.openFailed(ErrSASL)
		return
	}
	c.login = auth

	props := Table{
		"product": "amqp-core",
		"version": "0.1",
		"platform": "Go",
		"capabilities": Table{
			"authentication_failure_close": true,
			"publisher_confirms":           true,
			"consumer_cancel_notify":       true,
			"connection.blocked":           true,
		},
	}
	for k, v := range c.Config.Properties {
		props[k] = v
	}

	_ = c.sendMethod(0, &spec091.ConnectionStartOk1{
		ClientProperties: props,
		Mechanism:        auth.Mechanism(),
		Response:         auth.Response(),
		Locale:           "en_US",
	})
	c.state = stateTuning
}

// onConnectionSecure replies secure-ok with an empty response: the core
// does not implement a true challenge/response loop (spec.md §9 open
// question notwithstanding, SASL mechanisms beyond PLAIN/AMQPLAIN are
// out of scope here since no example authenticator needs one).
func (c *Connection) onConnectionSecure(*spec091.ConnectionSecure1) {
	_ = c.sendMethod(0, &spec091.ConnectionSecureOk1{Response: ""})
}

func (c *Connection) onConnectionTune(tune *spec091.ConnectionTune1) {
	if c.state != stateTuning {
		c.fail(ErrUnexpectedFrame)
		return
	}

	channelMax := negotiateMax(c.Config.ChannelMax, int(tune.ChannelMax))
	frameMax := negotiateMax(c.Config.FrameMax, int(tune.FrameMax))
	heartbeatSecs := negotiateHeartbeat(int(c.Config.Heartbeat/time.Second), int(tune.Heartbeat))

	suggested := c.transport.OnNegotiate(time.Duration(heartbeatSecs) * time.Second)
	c.heartbeat = suggested

	c.channels.max = uint16(channelMax)
	c.Config.ChannelMax = channelMax
	c.Config.FrameMax = frameMax
	c.Config.Heartbeat = c.heartbeat

	_ = c.sendMethod(0, &spec091.ConnectionTuneOk1{
		ChannelMax: uint16(channelMax),
		FrameMax:   uint32(frameMax),
		Heartbeat:  uint16(c.heartbeat / time.Second),
	})

	c.state = stateOpening
	_ = c.sendMethod(0, &spec091.ConnectionOpen1{VirtualHost: c.vhost})
}

func (c *Connection) onConnectionOpenOk() {
	if c.state != stateOpening {
		c.fail(ErrUnexpectedFrame)
		return
	}
	c.state = stateConnected
	c.transport.OnConnected()
	if c.onOpen != nil {
		c.onOpen(nil)
	}
	c.flushPreOpenQueue()
}

func (c *Connection) openFailed(err error) {
	c.state = stateClosed
	if c.onOpen != nil {
		c.onOpen(err)
	}
	c.transport.OnError(err)
}

// fail implements the codec-error/protocol-error handling of spec.md §7:
// fatal, fails every channel's deferreds, marks the connection closed.
func (c *Connection) fail(err error) {
	if c.state == stateClosed {
		return
	}
	var ae *Error
	if e, ok := err.(*Error); ok {
		ae = e
	} else {
		ae = newLocalError(KindConnection, err.Error())
	}
	c.shutdown(ae)
}

func (c *Connection) shutdown(err *Error) {
	if c.state == stateClosed {
		return
	}
	c.state = stateClosed
	c.token.Kill()
	c.closeErr = err

	for _, ch := range c.channels.removeAll() {
		ch.connectionShutdown(err)
	}

	if err != nil {
		for _, c2 := range c.closes {
			c2 <- err
		}
		c.transport.OnError(err)
	}
	for _, c2 := range c.closes {
		close(c2)
	}
	for _, b := range c.blocks {
		close(b)
	}
	c.transport.Monitor(FlagNone)
	c.transport.OnClosed()

	if c.closeDone != nil {
		var retErr error
		if err != nil {
			retErr = err
		}
		c.closeDone(retErr)
	}
}

func (c *Connection) flushPreOpenQueue() {
	for _, raw := range c.preOpenQueue {
		c.writeRaw(raw)
	}
	c.preOpenQueue = nil
}

// sendChannelFrame routes a channel-level frame through the pre-open
// backlog until connection.open-ok has been seen (spec.md §4.4 step 5),
// and straight to the wire afterwards.
func (c *Connection) sendChannelFrame(raw []byte) {
	if c.state != stateConnected {
		c.preOpenQueue = append(c.preOpenQueue, raw)
		return
	}
	c.writeRaw(raw)
}
