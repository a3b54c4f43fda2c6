package amqp

import (
	"testing"
	"time"

	"github.com/rabbitbridge/amqp-core/internal/spec091"
	"github.com/rabbitbridge/amqp-core/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serverFrame(typ byte, channel uint16, payload []byte) []byte {
	return wire.WriteFrame(nil, typ, channel, payload)
}

func serverMethod(channel uint16, m spec091.Method) []byte {
	w := wire.NewWriter()
	if err := m.Write(w); err != nil {
		panic(err)
	}
	return serverFrame(wire.FrameMethod, channel, wire.EncodeMethod(m.ClassID(), m.MethodID(), w.Bytes()))
}

// lastMethod decodes the most recent full frame the connection wrote, on
// whatever channel, for assertions against what the handshake sent.
func lastMethod(t *testing.T, tr *NopTransport) (classID, methodID uint16, payload []byte) {
	t.Helper()
	require.NotEmpty(t, tr.Written)
	buf := tr.Written[len(tr.Written)-1]
	fr, n, err := wire.ParseFrame(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	mf, ok := fr.(*wire.MethodFrame)
	require.True(t, ok)
	return mf.ClassID, mf.MethodID, mf.Payload
}

func openHandshake(t *testing.T) (*Connection, *NopTransport, chan error) {
	t.Helper()
	tr := &NopTransport{}
	result := make(chan error, 1)
	conn := Open(tr, Config{Heartbeat: 60 * time.Second}, func(err error) { result <- err })

	require.Equal(t, protocolHeader, tr.Written[0])

	_, err := conn.Parse(serverMethod(0, &spec091.ConnectionStart1{
		VersionMajor: 0, VersionMinor: 9,
		ServerProperties: Table{"product": "rabbitbridge-test"},
		Mechanisms:       "PLAIN",
		Locales:          "en_US",
	}))
	require.NoError(t, err)

	classID, methodID, payload := lastMethod(t, tr)
	assert.Equal(t, spec091.ClassConnection, classID)
	assert.Equal(t, spec091.ConnectionStartOk, methodID)
	startOk := &spec091.ConnectionStartOk1{}
	require.NoError(t, startOk.Read(wire.NewReader(payload)))
	assert.Equal(t, "PLAIN", startOk.Mechanism)
	assert.Equal(t, "\x00guest\x00guest", startOk.Response)

	_, err = conn.Parse(serverMethod(0, &spec091.ConnectionTune1{
		ChannelMax: 2047, FrameMax: 4096, Heartbeat: 60,
	}))
	require.NoError(t, err)

	classID, methodID, _ = lastMethod(t, tr)
	assert.Equal(t, spec091.ConnectionOpen, methodID, "tune-ok should be immediately followed by connection.open")
	_ = classID

	_, err = conn.Parse(serverMethod(0, &spec091.ConnectionOpenOk1{}))
	require.NoError(t, err)

	return conn, tr, result
}

func TestHandshakeCompletesOnOpenOk(t *testing.T) {
	conn, _, result := openHandshake(t)
	select {
	case err := <-result:
		require.NoError(t, err)
	default:
		t.Fatal("onOpen callback was not invoked")
	}
	assert.Equal(t, stateConnected, conn.state)
	assert.EqualValues(t, 4096, conn.Config.FrameMax)
	assert.Equal(t, 60*time.Second, conn.heartbeat)
}

func TestParseNeverConsumesAPartialFrame(t *testing.T) {
	conn, tr, _ := openHandshake(t)
	_ = tr

	full := serverMethod(0, &spec091.ConnectionBlocked1{Reason: "low on disk"})
	for i := 0; i < len(full); i++ {
		c := &Connection{
			transport: &NopTransport{},
			now:       time.Now,
			channels:  newChannelRegistry(0),
			state:     stateConnected,
		}
		n, err := c.Parse(full[:i])
		require.NoError(t, err)
		assert.Equal(t, 0, n, "prefix of length %d should not be consumed", i)
	}

	blocked := make(chan Blocking, 1)
	conn.NotifyBlocked(blocked)
	_, err := conn.Parse(full)
	require.NoError(t, err)
	b := <-blocked
	assert.True(t, b.Active)
	assert.Equal(t, "low on disk", b.Reason)
}

func TestServerCloseFailsChannelsAndNotifiesClose(t *testing.T) {
	conn, _, _ := openHandshake(t)

	opened := make(chan *Channel, 1)
	_, err := conn.Channel(func(ch *Channel, err error) {
		require.NoError(t, err)
		opened <- ch
	})
	require.NoError(t, err)
	_, err = conn.Parse(serverMethod(1, &spec091.ChannelOpenOk1{}))
	require.NoError(t, err)
	ch := <-opened

	declareErr := make(chan error, 1)
	require.NoError(t, ch.QueueDeclare("q", false, false, false, false, nil, func(_ QueueState, err error) {
		declareErr <- err
	}))

	closes := make(chan *Error, 1)
	conn.NotifyClose(closes)

	_, err = conn.Parse(serverMethod(0, &spec091.ConnectionClose1{ReplyCode: ReplyConnectionForced, ReplyText: "kicked"}))
	require.NoError(t, err)

	select {
	case err := <-declareErr:
		require.Error(t, err)
	default:
		t.Fatal("pending queue.declare should have been failed by connection shutdown")
	}

	select {
	case e := <-closes:
		require.NotNil(t, e)
		assert.Equal(t, ReplyConnectionForced, e.Code)
	default:
		t.Fatal("NotifyClose listener should have received the close reason")
	}

	assert.Equal(t, stateClosed, conn.state)
}

func TestHeartbeatEmittedAtHalfIntervalAndTimeoutAtDouble(t *testing.T) {
	tr := &NopTransport{}
	base := time.Unix(1_700_000_000, 0)
	conn := &Connection{
		transport: tr,
		now:       func() time.Time { return base },
		channels:  newChannelRegistry(0),
		state:     stateConnected,
		heartbeat: 10 * time.Second,
		lastRecv:  base,
		lastSent:  base,
	}

	before := len(tr.Written)
	conn.Tick(base.Add(4 * time.Second))
	assert.Len(t, tr.Written, before, "no heartbeat before half the interval elapses")

	conn.Tick(base.Add(6 * time.Second))
	assert.Len(t, tr.Written, before+1, "heartbeat expected once half the interval elapses")

	closes := make(chan *Error, 1)
	conn.NotifyClose(closes)
	conn.Tick(base.Add(21 * time.Second))
	select {
	case e := <-closes:
		require.NotNil(t, e)
	default:
		t.Fatal("idle timeout past 2x heartbeat should have failed the connection")
	}
}
