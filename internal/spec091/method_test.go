package spec091

import (
	"fmt"
	"testing"
	"time"

	"github.com/rabbitbridge/amqp-core/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, m Method) Method {
	t.Helper()
	w := wire.NewWriter()
	require.NoError(t, m.Write(w))

	got := New(m.ClassID(), m.MethodID())
	require.NotNil(t, got, "method not registered")
	require.NoError(t, got.Read(wire.NewReader(w.Bytes())))
	return got
}

func TestMethodRoundTrip(t *testing.T) {
	cases := []Method{
		&ConnectionStart1{VersionMajor: 0, VersionMinor: 9, ServerProperties: wire.Table{}, Mechanisms: "PLAIN", Locales: "en_US"},
		&ConnectionStartOk1{ClientProperties: wire.Table{"product": "amqp-core"}, Mechanism: "PLAIN", Response: "\x00guest\x00guest", Locale: "en_US"},
		&ConnectionTune1{ChannelMax: 2047, FrameMax: 131072, Heartbeat: 60},
		&ConnectionTuneOk1{ChannelMax: 2047, FrameMax: 131072, Heartbeat: 60},
		&ConnectionOpen1{VirtualHost: "/"},
		&ConnectionOpenOk1{},
		&ConnectionClose1{ReplyCode: 200, ReplyText: "bye", ClassID_: 0, MethodID_: 0},
		&ConnectionCloseOk1{},
		&ConnectionBlocked1{Reason: "low on memory"},
		&ConnectionUnblocked1{},
		&ChannelOpen1{},
		&ChannelOpenOk1{},
		&ChannelClose1{ReplyCode: 404, ReplyText: "NOT_FOUND", ClassID_: 60, MethodID_: 40},
		&ChannelCloseOk1{},
		&ExchangeDeclare1{Exchange: "ex", Type: "topic", Durable: true, Arguments: wire.Table{}},
		&ExchangeDeclareOk1{},
		&QueueDeclare1{Queue: "q1", Durable: true, Arguments: wire.Table{}},
		&QueueDeclareOk1{Queue: "q1", MessageCount: 0, ConsumerCount: 0},
		&QueueBind1{Queue: "q1", Exchange: "ex", RoutingKey: "r", Arguments: wire.Table{}},
		&QueueBindOk1{},
		&BasicQos1{PrefetchCount: 10},
		&BasicConsume1{Queue: "q1", ConsumerTag: "ctag", Arguments: wire.Table{}},
		&BasicConsumeOk1{ConsumerTag: "ctag"},
		&BasicCancel1{ConsumerTag: "ctag"},
		&BasicCancelOk1{ConsumerTag: "ctag"},
		&BasicPublish1{Exchange: "ex", RoutingKey: "r", Mandatory: true},
		&BasicReturn1{ReplyCode: 312, ReplyText: "NO_ROUTE", Exchange: "ex", RoutingKey: "r"},
		&BasicDeliver1{ConsumerTag: "ctag", DeliveryTag: 1, Exchange: "ex", RoutingKey: "r"},
		&BasicGet1{Queue: "q1"},
		&BasicGetOk1{DeliveryTag: 1, Exchange: "ex", RoutingKey: "r", MessageCount: 0},
		&BasicGetEmpty1{},
		&BasicAck1{DeliveryTag: 2, Multiple: true},
		&BasicReject1{DeliveryTag: 3, Requeue: false},
		&BasicNack1{DeliveryTag: 3, Multiple: false, Requeue: false},
		&ConfirmSelect1{},
		&ConfirmSelectOk1{},
		&TxSelect1{},
		&TxCommit1{},
	}

	for _, c := range cases {
		c := c
		t.Run(methodName(c), func(t *testing.T) {
			got := roundTrip(t, c)
			assert.Equal(t, c, got)
		})
	}
}

func methodName(m Method) string {
	return fmt.Sprintf("%T", m)
}

func TestPropertiesRoundTripSubset(t *testing.T) {
	ts := time.Unix(1_700_000_000, 0).UTC()
	p := Properties{
		ContentType:   "application/json",
		DeliveryMode:  2,
		Priority:      5,
		CorrelationID: "abc-123",
		Timestamp:     ts,
		Headers:       wire.Table{"x-retry": int32(1)},
	}
	p.SetFlag(FlagContentType, true)
	p.SetFlag(FlagDeliveryMode, true)
	p.SetFlag(FlagPriority, true)
	p.SetFlag(FlagCorrelationID, true)
	p.SetFlag(FlagTimestamp, true)
	p.SetFlag(FlagHeaders, true)

	w := wire.NewWriter()
	flags, err := p.Encode(w)
	require.NoError(t, err)

	got, err := DecodeProperties(flags, wire.NewReader(w.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, p.ContentType, got.ContentType)
	assert.Equal(t, p.DeliveryMode, got.DeliveryMode)
	assert.Equal(t, p.Priority, got.Priority)
	assert.Equal(t, p.CorrelationID, got.CorrelationID)
	assert.True(t, p.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, p.Headers, got.Headers)
	assert.Empty(t, got.ReplyTo)
}
