package amqp

import (
	"testing"

	"github.com/rabbitbridge/amqp-core/internal/spec091"
	"github.com/rabbitbridge/amqp-core/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openChannel drives channel.open/open-ok on top of an already-handshaken
// connection and returns the resulting Channel.
func openChannel(t *testing.T, conn *Connection, tr *NopTransport) *Channel {
	t.Helper()
	opened := make(chan *Channel, 1)
	ch, err := conn.Channel(func(c *Channel, err error) {
		require.NoError(t, err)
		opened <- c
	})
	require.NoError(t, err)

	classID, methodID, _ := lastMethod(t, tr)
	assert.Equal(t, spec091.ClassChannel, classID)
	assert.Equal(t, spec091.ChannelOpen, methodID)

	_, err = conn.Parse(serverMethod(ch.ID(), &spec091.ChannelOpenOk1{}))
	require.NoError(t, err)
	return <-opened
}

func TestQueueDeclareRoundTrip(t *testing.T) {
	conn, tr, _ := openHandshake(t)
	ch := openChannel(t, conn, tr)

	result := make(chan QueueState, 1)
	errs := make(chan error, 1)
	require.NoError(t, ch.QueueDeclare("orders", true, false, false, false, nil, func(q QueueState, err error) {
		if err != nil {
			errs <- err
			return
		}
		result <- q
	}))

	classID, methodID, payload := lastMethod(t, tr)
	assert.Equal(t, spec091.ClassQueue, classID)
	assert.Equal(t, spec091.QueueDeclare, methodID)
	sent := &spec091.QueueDeclare1{}
	require.NoError(t, sent.Read(wire.NewReader(payload)))
	assert.Equal(t, "orders", sent.Queue)
	assert.True(t, sent.Durable)

	_, err := conn.Parse(serverMethod(ch.ID(), &spec091.QueueDeclareOk1{
		Queue: "orders", MessageCount: 3, ConsumerCount: 1,
	}))
	require.NoError(t, err)

	select {
	case q := <-result:
		assert.Equal(t, "orders", q.Name)
		assert.EqualValues(t, 3, q.MessageCount)
		assert.EqualValues(t, 1, q.ConsumerCount)
	case err := <-errs:
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPublishSplitsBodyAcrossFrames(t *testing.T) {
	tr := &NopTransport{}
	result := make(chan error, 1)
	conn := Open(tr, Config{FrameMax: 64}, func(err error) { result <- err })
	_, err := conn.Parse(serverMethod(0, &spec091.ConnectionStart1{Mechanisms: "PLAIN"}))
	require.NoError(t, err)
	_, err = conn.Parse(serverMethod(0, &spec091.ConnectionTune1{ChannelMax: 0, FrameMax: 64, Heartbeat: 0}))
	require.NoError(t, err)
	_, err = conn.Parse(serverMethod(0, &spec091.ConnectionOpenOk1{}))
	require.NoError(t, err)
	require.NoError(t, <-result)

	ch := openChannel(t, conn, tr)

	before := len(tr.Written)
	body := make([]byte, 200)
	for i := range body {
		body[i] = byte(i)
	}
	tag, err := ch.Publish("", "q", false, false, Publishing{Body: body})
	require.NoError(t, err)
	assert.Zero(t, tag, "publish outside confirm mode must not assign a delivery tag")

	frames := tr.Written[before:]
	require.True(t, len(frames) >= 3, "expected basic.publish + header + multiple body frames, got %d frames", len(frames))

	chunk := conn.maxBodyChunk()
	require.Greater(t, chunk, 0)

	var reassembled []byte
	for _, raw := range frames[2:] {
		fr, n, err := wire.ParseFrame(raw)
		require.NoError(t, err)
		require.Equal(t, len(raw), n)
		bf, ok := fr.(*wire.BodyFrame)
		require.True(t, ok)
		assert.LessOrEqual(t, len(bf.Body), chunk)
		reassembled = append(reassembled, bf.Body...)
	}
	assert.Equal(t, body, reassembled)
}

func TestPublishEncodesClusterId(t *testing.T) {
	conn, tr, _ := openHandshake(t)
	ch := openChannel(t, conn, tr)

	before := len(tr.Written)
	_, err := ch.Publish("", "q", false, false, Publishing{Body: []byte("x"), ClusterId: "eu-west"})
	require.NoError(t, err)

	header := tr.Written[before+1]
	fr, _, err := wire.ParseFrame(header)
	require.NoError(t, err)
	hf, ok := fr.(*wire.HeaderFrame)
	require.True(t, ok)

	props, err := spec091.DecodeProperties(hf.PropertyFlags, wire.NewReader(hf.Properties))
	require.NoError(t, err)
	assert.Equal(t, "eu-west", props.ClusterID)
}

func TestConfirmModeResolvesMultipleAck(t *testing.T) {
	conn, tr, _ := openHandshake(t)
	ch := openChannel(t, conn, tr)

	confirmErr := make(chan error, 1)
	require.NoError(t, ch.Confirm(false, func(err error) { confirmErr <- err }))
	_, err := conn.Parse(serverMethod(ch.ID(), &spec091.ConfirmSelectOk1{}))
	require.NoError(t, err)
	require.NoError(t, <-confirmErr)

	tag1, err := ch.Publish("", "q", false, false, Publishing{Body: []byte("a")})
	require.NoError(t, err)
	tag2, err := ch.Publish("", "q", false, false, Publishing{Body: []byte("b")})
	require.NoError(t, err)
	assert.EqualValues(t, 1, tag1)
	assert.EqualValues(t, 2, tag2)

	confirms := make(chan Confirmation, 2)
	ch.NotifyPublish(confirms)

	_, err = conn.Parse(serverMethod(ch.ID(), &spec091.BasicAck1{DeliveryTag: 2, Multiple: true}))
	require.NoError(t, err)

	var got []Confirmation
	got = append(got, <-confirms)
	select {
	case c := <-confirms:
		got = append(got, c)
	default:
	}
	require.Len(t, got, 2)
	assert.ElementsMatch(t, []uint64{1, 2}, []uint64{got[0].DeliveryTag, got[1].DeliveryTag})
	assert.True(t, got[0].Ack)
	assert.True(t, got[1].Ack)
}

func TestConsumeReassemblesDeliveryAcrossFrames(t *testing.T) {
	conn, tr, _ := openHandshake(t)
	ch := openChannel(t, conn, tr)

	deliveries := make(chan Delivery, 1)
	consumeErrs := make(chan error, 1)
	tagCh := make(chan string, 1)
	require.NoError(t, ch.Consume("orders", "", false, false, false, false, nil, func(d Delivery) {
		deliveries <- d
	}, func(tag string, err error) {
		if err != nil {
			consumeErrs <- err
			return
		}
		tagCh <- tag
	}))
	_, err := conn.Parse(serverMethod(ch.ID(), &spec091.BasicConsumeOk1{ConsumerTag: "ctag-1"}))
	require.NoError(t, err)
	require.Equal(t, "ctag-1", <-tagCh)

	body := []byte("hello world")
	_, err = conn.Parse(serverMethod(ch.ID(), &spec091.BasicDeliver1{
		ConsumerTag: "ctag-1", DeliveryTag: 7, Exchange: "ex", RoutingKey: "rk",
	}))
	require.NoError(t, err)

	props := spec091.Properties{ContentType: "text/plain"}
	props.SetFlag(spec091.FlagContentType, true)
	w := wire.NewWriter()
	flags, err := props.Encode(w)
	require.NoError(t, err)
	_, err = conn.Parse(serverFrame(wire.FrameHeader, ch.ID(), wire.EncodeHeader(spec091.ClassBasic, uint64(len(body)), flags, w.Bytes())))
	require.NoError(t, err)

	_, err = conn.Parse(serverFrame(wire.FrameBody, ch.ID(), body[:5]))
	require.NoError(t, err)
	select {
	case <-deliveries:
		t.Fatal("delivery completed before all body frames arrived")
	default:
	}
	_, err = conn.Parse(serverFrame(wire.FrameBody, ch.ID(), body[5:]))
	require.NoError(t, err)

	d := <-deliveries
	assert.Equal(t, "ctag-1", d.ConsumerTag)
	assert.EqualValues(t, 7, d.DeliveryTag)
	assert.Equal(t, "ex", d.Exchange)
	assert.Equal(t, "rk", d.RoutingKey)
	assert.Equal(t, body, d.Body)
	assert.Equal(t, "text/plain", d.ContentType)

	require.NoError(t, d.Ack(false))
	classID, methodID, payload := lastMethod(t, tr)
	assert.Equal(t, spec091.ClassBasic, classID)
	assert.Equal(t, spec091.BasicAck, methodID)
	ack := &spec091.BasicAck1{}
	require.NoError(t, ack.Read(wire.NewReader(payload)))
	assert.EqualValues(t, 7, ack.DeliveryTag)

	_ = consumeErrs
}

func TestSynchronousCallsAreGatedUntilReplyArrives(t *testing.T) {
	conn, tr, _ := openHandshake(t)
	ch := openChannel(t, conn, tr)

	firstErr := make(chan error, 1)
	secondErr := make(chan error, 1)

	before := len(tr.Written)
	require.NoError(t, ch.ExchangeDeclare("ex1", "direct", false, false, false, false, nil, func(err error) { firstErr <- err }))
	require.NoError(t, ch.ExchangeDeclare("ex2", "direct", false, false, false, false, nil, func(err error) { secondErr <- err }))

	assert.Len(t, tr.Written, before+1, "a second synchronous call must be held back, not written, while one is outstanding")
	assert.True(t, ch.waiting)
	require.Len(t, ch.backlog, 1)

	classID, methodID, payload := lastMethod(t, tr)
	assert.Equal(t, spec091.ClassExchange, classID)
	assert.Equal(t, spec091.ExchangeDeclare, methodID)
	sent := &spec091.ExchangeDeclare1{}
	require.NoError(t, sent.Read(wire.NewReader(payload)))
	assert.Equal(t, "ex1", sent.Exchange, "the backlogged ex2 declare must not jump ahead of ex1's")

	_, err := conn.Parse(serverMethod(ch.ID(), &spec091.ExchangeDeclareOk1{}))
	require.NoError(t, err)
	require.NoError(t, <-firstErr)

	assert.Len(t, tr.Written, before+2, "resolving the first reply must release the backlog onto the wire")
	assert.True(t, ch.waiting, "the now-sent second request is itself outstanding")
	assert.Empty(t, ch.backlog)

	classID, methodID, payload = lastMethod(t, tr)
	assert.Equal(t, spec091.ClassExchange, classID)
	assert.Equal(t, spec091.ExchangeDeclare, methodID)
	sent = &spec091.ExchangeDeclare1{}
	require.NoError(t, sent.Read(wire.NewReader(payload)))
	assert.Equal(t, "ex2", sent.Exchange)

	_, err = conn.Parse(serverMethod(ch.ID(), &spec091.ExchangeDeclareOk1{}))
	require.NoError(t, err)
	require.NoError(t, <-secondErr)
	assert.False(t, ch.waiting)
}

func TestChannelCloseServerInitiatedFailsPendingCalls(t *testing.T) {
	conn, tr, _ := openHandshake(t)
	ch := openChannel(t, conn, tr)

	declareErr := make(chan error, 1)
	require.NoError(t, ch.QueueDeclare("q", false, false, false, false, nil, func(_ QueueState, err error) {
		declareErr <- err
	}))

	closes := make(chan *Error, 1)
	ch.NotifyClose(closes)

	_, err := conn.Parse(serverMethod(ch.ID(), &spec091.ChannelClose1{
		ReplyCode: ReplyNotFound, ReplyText: "no queue 'q'",
	}))
	require.NoError(t, err)

	classID, methodID, _ := lastMethod(t, tr)
	assert.Equal(t, spec091.ClassChannel, classID)
	assert.Equal(t, spec091.ChannelCloseOk, methodID, "channel.close must be answered with close-ok")

	select {
	case err := <-declareErr:
		require.Error(t, err)
	default:
		t.Fatal("pending queue.declare should have failed when the channel closed")
	}
	select {
	case e := <-closes:
		require.NotNil(t, e)
		assert.Equal(t, ReplyNotFound, e.Code)
	default:
		t.Fatal("NotifyClose listener should have received the close reason")
	}

	_, err = ch.Publish("", "q", false, false, Publishing{Body: []byte("x")})
	assert.Equal(t, ErrClosed, err, "a closed channel must reject further requests")
}

func TestTxSelectCommitRollbackRoundTrip(t *testing.T) {
	conn, tr, _ := openHandshake(t)
	ch := openChannel(t, conn, tr)

	selectErr := make(chan error, 1)
	require.NoError(t, ch.TxSelect(func(err error) { selectErr <- err }))
	classID, methodID, _ := lastMethod(t, tr)
	assert.Equal(t, spec091.ClassTx, classID)
	assert.Equal(t, spec091.TxSelect, methodID)
	_, err := conn.Parse(serverMethod(ch.ID(), &spec091.TxSelectOk1{}))
	require.NoError(t, err)
	require.NoError(t, <-selectErr)

	commitErr := make(chan error, 1)
	require.NoError(t, ch.TxCommit(func(err error) { commitErr <- err }))
	classID, methodID, _ = lastMethod(t, tr)
	assert.Equal(t, spec091.ClassTx, classID)
	assert.Equal(t, spec091.TxCommit, methodID)
	_, err = conn.Parse(serverMethod(ch.ID(), &spec091.TxCommitOk1{}))
	require.NoError(t, err)
	require.NoError(t, <-commitErr)

	rollbackErr := make(chan error, 1)
	require.NoError(t, ch.TxRollback(func(err error) { rollbackErr <- err }))
	classID, methodID, _ = lastMethod(t, tr)
	assert.Equal(t, spec091.ClassTx, classID)
	assert.Equal(t, spec091.TxRollback, methodID)
	_, err = conn.Parse(serverMethod(ch.ID(), &spec091.TxRollbackOk1{}))
	require.NoError(t, err)
	require.NoError(t, <-rollbackErr)
}

func TestRecoverWaitsForReplyButRecoverAsyncDoesNot(t *testing.T) {
	conn, tr, _ := openHandshake(t)
	ch := openChannel(t, conn, tr)

	recoverErr := make(chan error, 1)
	require.NoError(t, ch.Recover(true, func(err error) { recoverErr <- err }))
	classID, methodID, payload := lastMethod(t, tr)
	assert.Equal(t, spec091.ClassBasic, classID)
	assert.Equal(t, spec091.BasicRecover, methodID)
	sent := &spec091.BasicRecover1{}
	require.NoError(t, sent.Read(wire.NewReader(payload)))
	assert.True(t, sent.Requeue)

	select {
	case <-recoverErr:
		t.Fatal("Recover must not resolve before basic.recover-ok arrives")
	default:
	}
	_, err := conn.Parse(serverMethod(ch.ID(), &spec091.BasicRecoverOk1{}))
	require.NoError(t, err)
	require.NoError(t, <-recoverErr)

	before := len(tr.Written)
	require.NoError(t, ch.RecoverAsync(false))
	assert.Len(t, tr.Written, before+1, "RecoverAsync must write immediately since no reply is ever coming")
	classID, methodID, payload = lastMethod(t, tr)
	assert.Equal(t, spec091.ClassBasic, classID)
	assert.Equal(t, spec091.BasicRecoverAsync, methodID)
	sent = &spec091.BasicRecover1{}
	require.NoError(t, sent.Read(wire.NewReader(payload)))
	assert.False(t, sent.Requeue)
}

func TestGetEmptyResolvesWithNilDelivery(t *testing.T) {
	conn, tr, _ := openHandshake(t)
	ch := openChannel(t, conn, tr)

	result := make(chan *Delivery, 1)
	errs := make(chan error, 1)
	require.NoError(t, ch.Get("q", false, func(d *Delivery, err error) {
		if err != nil {
			errs <- err
			return
		}
		result <- d
	}))

	_, err := conn.Parse(serverMethod(ch.ID(), &spec091.BasicGetEmpty1{}))
	require.NoError(t, err)

	select {
	case d := <-result:
		assert.Nil(t, d)
	case err := <-errs:
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestServerInitiatedCancelNotifiesAndRemovesConsumer(t *testing.T) {
	conn, tr, _ := openHandshake(t)
	ch := openChannel(t, conn, tr)

	tagCh := make(chan string, 1)
	require.NoError(t, ch.Consume("orders", "ctag-9", false, false, false, false, nil, func(Delivery) {}, func(tag string, err error) {
		require.NoError(t, err)
		tagCh <- tag
	}))
	_, err := conn.Parse(serverMethod(ch.ID(), &spec091.BasicConsumeOk1{ConsumerTag: "ctag-9"}))
	require.NoError(t, err)
	require.Equal(t, "ctag-9", <-tagCh)

	cancels := make(chan string, 1)
	ch.NotifyCancel(cancels)

	_, err = conn.Parse(serverMethod(ch.ID(), &spec091.BasicCancel1{ConsumerTag: "ctag-9"}))
	require.NoError(t, err)

	assert.Equal(t, "ctag-9", <-cancels)
	classID, methodID, payload := lastMethod(t, tr)
	assert.Equal(t, spec091.ClassBasic, classID)
	assert.Equal(t, spec091.BasicCancelOk, methodID)
	ok := &spec091.BasicCancelOk1{}
	require.NoError(t, ok.Read(wire.NewReader(payload)))
	assert.Equal(t, "ctag-9", ok.ConsumerTag)

	_, ok2 := ch.consumers["ctag-9"]
	assert.False(t, ok2, "a server-cancelled consumer must be removed")
}
