package amqp

import (
	"time"

	"github.com/rabbitbridge/amqp-core/internal/monitor"
	"github.com/rabbitbridge/amqp-core/internal/spec091"
	"github.com/rabbitbridge/amqp-core/internal/wire"
	"go.uber.org/zap"
)

// protocolHeader is the fixed 8-byte AMQP 0-9-1 preamble, spec.md §6.
var protocolHeader = []byte{'A', 'M', 'Q', 'P', 0, 0, 9, 1}

type connState int

const (
	stateNew connState = iota
	stateProtocolHeaderSent
	stateTuning
	stateOpening
	stateConnected
	stateClosing
	stateClosed
)

// Connection is the non-blocking AMQP 0-9-1 connection core, spec.md §3/§4.4.
// Every exported method is safe to call promptly and returns without
// blocking; I/O happens only through the Transport supplied to Open, via
// Parse/OnWritable/OnDetached calls made by the host event loop.
type Connection struct {
	transport Transport
	log       *zap.SugaredLogger
	now       func() time.Time

	state    connState
	channels *channelRegistry
	token    *monitor.Token

	login Authentication
	sasl  []Authentication
	vhost string

	Config     Config
	Major      int
	Minor      int
	Properties Table

	heartbeat time.Duration
	lastRecv  time.Time
	lastSent  time.Time

	outbound     []byte   // bytes the transport could not accept immediately
	preOpenQueue [][]byte // channel frames queued before connection.open-ok, spec.md §4.4

	closes []chan *Error
	blocks []chan Blocking

	closeErr  *Error
	onOpen    func(error)
	closeDone func(error)
	recvBuf   []byte // bytes carried over from a previous Parse that didn't form a whole frame
}

// Open begins the client-driven handshake (spec.md §4.4) over transport
// and returns immediately; completion or failure is reported through
// onOpen once connection.open-ok (or a fatal error) is seen. The host
// must start pumping inbound bytes into Parse right away, since the
// protocol header is written synchronously before Open returns.
func Open(transport Transport, config Config, onOpen func(err error)) *Connection {
	c := &Connection{
		transport: transport,
		log:       config.logger(),
		now:       time.Now,
		channels:  newChannelRegistry(uint16(config.ChannelMax)),
		token:     monitor.NewToken(),
		sasl:      config.SASL,
		vhost:     config.Vhost,
		Config:    config,
		onOpen:    onOpen,
	}
	if c.vhost == "" {
		c.vhost = "/"
	}
	c.lastRecv = c.now()
	c.lastSent = c.now()
	c.transport.Monitor(FlagReadable)
	c.writeRaw(protocolHeader)
	c.state = stateProtocolHeaderSent
	return c
}

// Parse feeds inbound bytes to the connection, spec.md §6
// ("parse(bytes) -> consumed-count"). It decodes and dispatches every
// complete frame it can form and keeps any incomplete trailing bytes in
// an internal buffer, prepending them to the next call's input, so each
// inbound byte is passed exactly once and a caller must not re-present
// bytes it already handed over. The returned count is the number of bytes
// of buf that completed a frame during this call; it is 0 when buf only
// extends a still-incomplete frame.
func (c *Connection) Parse(buf []byte) (int, error) {
	if c.state == stateClosed {
		return len(buf), nil
	}

	data := buf
	if len(c.recvBuf) > 0 {
		data = append(c.recvBuf, buf...)
	}

	total := 0
	for {
		fr, n, err := wire.ParseFrame(data[total:])
		if err == wire.ErrNeedMore {
			break
		}
		if err != nil {
			c.fail(newLocalError(KindCodec, err.Error()))
			return len(buf), nil
		}
		total += n
		c.lastRecv = c.now()
		c.demux(fr)
		if c.state == stateClosed {
			break
		}
	}

	if len(buf) > 0 {
		c.lastRecv = c.now()
	}

	consumedFromCarry := 0
	if len(c.recvBuf) > 0 {
		consumedFromCarry = len(c.recvBuf)
	}
	c.recvBuf = append([]byte(nil), data[total:]...)

	consumedFromBuf := total - consumedFromCarry
	if consumedFromBuf < 0 {
		consumedFromBuf = 0
	}
	if consumedFromBuf > len(buf) {
		consumedFromBuf = len(buf)
	}
	return consumedFromBuf, nil
}

// OnWritable drains the outbound backlog once the transport reports it
// can accept more bytes.
func (c *Connection) OnWritable() {
	if len(c.outbound) == 0 {
		c.transport.Monitor(c.wantFlags())
		return
	}
	n, err := c.transport.Write(c.outbound)
	if err != nil {
		c.fail(newLocalError(KindTransport, err.Error()))
		return
	}
	if n > 0 {
		c.lastSent = c.now()
	}
	c.outbound = c.outbound[n:]
	c.transport.Monitor(c.wantFlags())
}

func (c *Connection) wantFlags() TransportFlags {
	if len(c.outbound) > 0 {
		return FlagReadable | FlagWritable
	}
	return FlagReadable
}

// OnDetached tells the connection its transport is gone; every channel's
// outstanding deferreds fail as if the server had closed the connection.
func (c *Connection) OnDetached() {
	c.fail(newLocalError(KindTransport, "amqp: transport detached"))
}

// Tick lets the host drive time-based behaviour (heartbeat emission and
// idle-timeout detection, spec.md §4.4/§8) without the core owning a
// timer itself. Call it periodically, e.g. once per second, passing the
// current time.
func (c *Connection) Tick(now time.Time) {
	if c.state != stateConnected && c.state != stateClosing {
		return
	}
	if c.heartbeat <= 0 {
		return
	}
	if now.Sub(c.lastSent) >= c.heartbeat/2 {
		c.writeFrame(wire.FrameHeartbeat, 0, nil)
		c.transport.OnHeartbeat()
	}
	if now.Sub(c.lastRecv) >= 2*c.heartbeat {
		c.fail(newLocalError(KindTransport, "amqp: heartbeat timeout"))
	}
}

func (c *Connection) writeRaw(b []byte) {
	if len(c.outbound) > 0 {
		c.outbound = append(c.outbound, b...)
		c.transport.Monitor(c.wantFlags())
		return
	}
	n, err := c.transport.Write(b)
	if err != nil {
		c.fail(newLocalError(KindTransport, err.Error()))
		return
	}
	if n > 0 {
		c.lastSent = c.now()
	}
	if n < len(b) {
		c.outbound = append(c.outbound, b[n:]...)
		c.transport.Monitor(c.wantFlags())
	}
}

func (c *Connection) writeFrame(typ byte, channel uint16, payload []byte) {
	c.writeRaw(wire.WriteFrame(nil, typ, channel, payload))
}

func (c *Connection) sendMethod(channel uint16, m spec091.Method) error {
	w := wire.NewWriter()
	if err := m.Write(w); err != nil {
		return err
	}
	c.writeFrame(wire.FrameMethod, channel, wire.EncodeMethod(m.ClassID(), m.MethodID(), w.Bytes()))
	return nil
}

// sendChannelMethod is sendMethod's counterpart for channel-owned requests:
// it holds the frame in preOpenQueue rather than writing it immediately if
// connection.open-ok has not yet arrived.
func (c *Connection) sendChannelMethod(channel uint16, m spec091.Method) error {
	w := wire.NewWriter()
	if err := m.Write(w); err != nil {
		return err
	}
	c.sendChannelFrame(wire.WriteFrame(nil, wire.FrameMethod, channel, wire.EncodeMethod(m.ClassID(), m.MethodID(), w.Bytes())))
	return nil
}

// sendChannelRaw queues/writes an already-framed header or body frame for
// channel, honoring the same pre-open backlog as sendChannelMethod.
func (c *Connection) sendChannelRaw(channel uint16, typ byte, payload []byte) {
	c.sendChannelFrame(wire.WriteFrame(nil, typ, channel, payload))
}

// maxBodyChunk returns the largest body-frame payload a publish may use
// under the negotiated frame-max, spec.md §8's body-splitting rule.
func (c *Connection) maxBodyChunk() int {
	max := c.Config.FrameMax
	if max <= 0 {
		max = defaultMaxFrameSize
	}
	chunk := max - wire.FrameOverhead
	if chunk <= 0 {
		chunk = max
	}
	return chunk
}

// isCapable inspects the server's reported capabilities table, matching
// the teacher's Connection.isCapable.
func (c *Connection) isCapable(name string) bool {
	caps, _ := c.Properties["capabilities"].(Table)
	v, _ := caps[name].(bool)
	return v
}

// NotifyClose registers a listener for connection-level close events,
// whether server-initiated or a normal client Close.
func (c *Connection) NotifyClose(ch chan *Error) chan *Error {
	if c.state == stateClosed {
		close(ch)
		return ch
	}
	c.closes = append(c.closes, ch)
	return ch
}

// NotifyBlocked registers a listener for connection.blocked/unblocked.
func (c *Connection) NotifyBlocked(ch chan Blocking) chan Blocking {
	if c.state == stateClosed {
		close(ch)
		return ch
	}
	c.blocks = append(c.blocks, ch)
	return ch
}

// Channel allocates a new channel and begins its open handshake
// (channel.open / open-ok). onOpen is invoked once that completes (or
// fails); the returned Channel must not be used for requests before then:
// until the channel is open its request methods return ErrClosed, nothing
// is queued.
func (c *Connection) Channel(onOpen func(*Channel, error)) (*Channel, error) {
	if c.state == stateClosed || c.state == stateClosing {
		return nil, ErrClosed
	}
	id, ok := c.channels.allocate()
	if !ok {
		return nil, newLocalError(KindUsage, "amqp: channel-max exhausted")
	}
	ch := newChannel(c, id)
	c.channels.add(id, ch)
	ch.open(onOpen)
	return ch, nil
}

// Close begins a client-initiated connection close (spec.md §4.4): sends
// connection.close and waits for close-ok before the transport is torn
// down. done, if non-nil, is invoked once teardown completes.
func (c *Connection) Close(done func(error)) {
	if c.state == stateClosed || c.state == stateClosing {
		if done != nil {
			done(ErrAlreadyClosed)
		}
		return
	}
	c.state = stateClosing
	c.closeDone = done
	_ = c.sendMethod(0, &spec091.ConnectionClose1{ReplyCode: ReplySuccess, ReplyText: "kthxbai"})
}
