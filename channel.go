package amqp

import (
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/rabbitbridge/amqp-core/internal/monitor"
	"github.com/rabbitbridge/amqp-core/internal/spec091"
	"github.com/rabbitbridge/amqp-core/internal/wire"
)

type chanState int

const (
	chanNew chanState = iota
	chanOpening
	chanOpen
	chanClosing
	chanClosed
)

// pendingReply is one outstanding synchronous request awaiting its reply:
// channel.call sends the method and appends one of these, and the matching
// *Ok reply resolves the oldest entry first (basic.get-ok/get-empty resolve
// pendingGetResolve instead). AMQP
// guarantees a broker answers channel requests in the order it received
// them, so a plain FIFO is enough to match replies to callers.
type pendingReply struct {
	resolve func(m spec091.Method, err error)
}

// backlogEntry is a synchronous request submitted while the channel already
// has one outstanding (spec.md §4.5's waiting flag): it is held here, as a
// not-yet-sent method, until the outstanding reply arrives and
// advanceBacklog lets it onto the wire. isGet distinguishes a queued
// basic.get, which resolves through pendingGetResolve rather than the
// generic pending queue.
type backlogEntry struct {
	method  spec091.Method
	resolve func(m spec091.Method, err error)
	isGet   bool
	getDone func(*Delivery, error)
}

type inboundKind int

const (
	inboundDeliver inboundKind = iota
	inboundGetOk
	inboundReturn
)

// inboundAssembly reassembles the header+body frames that follow an
// asynchronous basic.deliver/get-ok/return method, spec.md §8 ("Message
// reassembly").
type inboundAssembly struct {
	kind     inboundKind
	deliver  *spec091.BasicDeliver1
	getOk    *spec091.BasicGetOk1
	ret      *spec091.BasicReturn1
	bodySize uint64
	props    spec091.Properties
	body     []byte
	haveHdr  bool
}

// Channel is one multiplexed AMQP channel, spec.md §4.5/§8. Like
// Connection, every method here returns without blocking; results of
// synchronous AMQP methods (declare, bind, ...) arrive through the done
// callback once the broker's reply is dispatched.
type Channel struct {
	conn  *Connection
	id    uint16
	token *monitor.Token
	state chanState

	openDone  func(*Channel, error)
	closeDone func(error)

	pending []pendingReply

	// waiting/backlog implement spec.md §4.5's synchronous gating: a channel
	// holds at most one outstanding synchronous request at a time, and
	// further requests queue here as unsent methods until that reply
	// arrives (see call/advanceBacklog).
	waiting bool
	backlog []backlogEntry

	confirmMode      bool
	nextPublishSeqNo uint64
	unacked          []uint64
	confirmThrottle  *semaphore.Weighted // nil when Config.MaxUnconfirmedPublishes is 0 (unlimited)

	consumers         map[string]func(Delivery)
	pendingGetResolve func(*Delivery, error)

	inflight *inboundAssembly

	closes   []chan *Error
	returns  []chan Return
	confirms []chan Confirmation
	cancels  []chan string

	closeErr *Error
}

func newChannel(c *Connection, id uint16) *Channel {
	return &Channel{
		conn:      c,
		id:        id,
		token:     monitor.NewToken(),
		consumers: make(map[string]func(Delivery)),
	}
}

// ID returns the channel number assigned by Connection.Channel.
func (ch *Channel) ID() uint16 { return ch.id }

func (ch *Channel) open(onOpen func(*Channel, error)) {
	ch.state = chanOpening
	ch.openDone = onOpen
	_ = ch.conn.sendChannelMethod(ch.id, &spec091.ChannelOpen1{})
}

func (ch *Channel) onOpened() {
	ch.state = chanOpen
	if cb := ch.openDone; cb != nil {
		ch.openDone = nil
		cb(ch, nil)
	}
}

// call sends m, unless the channel already has an outstanding synchronous
// request: per spec.md §4.5 a channel holds at most one such request at a
// time, so while waiting is set call instead holds m on the backlog as a
// not-yet-sent method and returns immediately, the way the teacher's
// single-in-flight Channel.call serialized requests but without blocking
// the caller. noWait methods never set the reply gate, since the broker
// sends nothing back to wait for.
func (ch *Channel) call(m spec091.Method, noWait bool, resolve func(spec091.Method, error)) error {
	if ch.state != chanOpen {
		return ErrClosed
	}
	if noWait {
		if err := ch.conn.sendChannelMethod(ch.id, m); err != nil {
			return err
		}
		if resolve != nil {
			resolve(nil, nil)
		}
		return nil
	}
	if ch.waiting {
		ch.backlog = append(ch.backlog, backlogEntry{method: m, resolve: resolve})
		return nil
	}
	if err := ch.conn.sendChannelMethod(ch.id, m); err != nil {
		return err
	}
	ch.waiting = true
	ch.pending = append(ch.pending, pendingReply{resolve: resolve})
	return nil
}

func (ch *Channel) resolveNext(m spec091.Method, err error) {
	if len(ch.pending) == 0 {
		return
	}
	p := ch.pending[0]
	ch.pending = ch.pending[1:]
	if p.resolve != nil {
		guard := monitor.Watch(ch.token)
		p.resolve(m, err)
		if !guard.Survived() {
			return
		}
	}
	ch.advanceBacklog()
}

// advanceBacklog is the other half of spec.md §4.5's gating: once the
// outstanding reply has been resolved, either send the oldest backlogged
// request (keeping waiting set for its own reply) or clear waiting so the
// next call goes straight to the wire.
func (ch *Channel) advanceBacklog() {
	if len(ch.backlog) == 0 {
		ch.waiting = false
		return
	}
	next := ch.backlog[0]
	ch.backlog = ch.backlog[1:]
	if err := ch.conn.sendChannelMethod(ch.id, next.method); err != nil {
		if next.isGet {
			if next.getDone != nil {
				next.getDone(nil, err)
			}
		} else if next.resolve != nil {
			next.resolve(nil, err)
		}
		ch.advanceBacklog()
		return
	}
	ch.waiting = true
	if next.isGet {
		ch.pendingGetResolve = next.getDone
	} else {
		ch.pending = append(ch.pending, pendingReply{resolve: next.resolve})
	}
}

// recv implements spec.md §4.5's per-channel dispatch: method frames either
// resolve a pending synchronous call, start an async message assembly, or
// are handled immediately (flow, close); header/body frames feed whatever
// assembly is in progress.
func (ch *Channel) recv(fr wire.Frame) {
	switch f := fr.(type) {
	case *wire.MethodFrame:
		m := spec091.New(f.ClassID, f.MethodID)
		if m == nil {
			ch.conn.fail(newLocalError(KindProtocol, "amqp: unknown method on channel"))
			return
		}
		if err := m.Read(wire.NewReader(f.Payload)); err != nil {
			ch.conn.fail(newLocalError(KindCodec, err.Error()))
			return
		}
		ch.handleMethod(m)
	case *wire.HeaderFrame:
		ch.handleHeader(f)
	case *wire.BodyFrame:
		ch.handleBody(f)
	default:
		ch.conn.fail(ErrUnexpectedFrame)
	}
}

func (ch *Channel) handleMethod(m spec091.Method) {
	switch msg := m.(type) {
	case *spec091.ChannelOpenOk1:
		ch.onOpened()
	case *spec091.ChannelFlow1:
		_ = ch.conn.sendChannelMethod(ch.id, &spec091.ChannelFlowOk1{Active: msg.Active})
	case *spec091.ChannelFlowOk1:
		// only ever seen answering our own channel.flow, which this
		// engine never sends today; nothing to do.
	case *spec091.ChannelClose1:
		_ = ch.conn.sendChannelMethod(ch.id, &spec091.ChannelCloseOk1{})
		ch.shutdown(newServerError(KindChannel, int(msg.ReplyCode), msg.ReplyText, msg.ClassID_, msg.MethodID_))
	case *spec091.ChannelCloseOk1:
		ch.shutdown(nil)
	case *spec091.BasicDeliver1:
		ch.inflight = &inboundAssembly{kind: inboundDeliver, deliver: msg}
	case *spec091.BasicReturn1:
		ch.inflight = &inboundAssembly{kind: inboundReturn, ret: msg}
	case *spec091.BasicGetOk1:
		ch.inflight = &inboundAssembly{kind: inboundGetOk, getOk: msg}
	case *spec091.BasicGetEmpty1:
		if cb := ch.pendingGetResolve; cb != nil {
			ch.pendingGetResolve = nil
			cb(nil, nil)
		}
		ch.advanceBacklog()
	case *spec091.BasicAck1:
		ch.resolveConfirm(msg.DeliveryTag, msg.Multiple, true)
	case *spec091.BasicNack1:
		ch.resolveConfirm(msg.DeliveryTag, msg.Multiple, false)
	case *spec091.BasicCancel1:
		delete(ch.consumers, msg.ConsumerTag)
		for _, c := range ch.cancels {
			c <- msg.ConsumerTag
		}
		if !msg.NoWait {
			_ = ch.conn.sendChannelMethod(ch.id, &spec091.BasicCancelOk1{ConsumerTag: msg.ConsumerTag})
		}
	default:
		ch.resolveNext(m, nil)
	}
}

func (ch *Channel) handleHeader(f *wire.HeaderFrame) {
	if ch.inflight == nil {
		ch.conn.fail(ErrUnexpectedFrame)
		return
	}
	props, err := spec091.DecodeProperties(f.PropertyFlags, wire.NewReader(f.Properties))
	if err != nil {
		ch.conn.fail(newLocalError(KindCodec, err.Error()))
		return
	}
	ch.inflight.props = props
	ch.inflight.bodySize = f.BodySize
	ch.inflight.haveHdr = true
	if ch.inflight.bodySize == 0 {
		ch.completeAssembly()
	}
}

func (ch *Channel) handleBody(f *wire.BodyFrame) {
	if ch.inflight == nil || !ch.inflight.haveHdr {
		ch.conn.fail(ErrUnexpectedFrame)
		return
	}
	ch.inflight.body = append(ch.inflight.body, f.Body...)
	if uint64(len(ch.inflight.body)) >= ch.inflight.bodySize {
		ch.completeAssembly()
	}
}

func (ch *Channel) completeAssembly() {
	a := ch.inflight
	ch.inflight = nil
	pub := propsToPublishing(a.props, a.body)

	switch a.kind {
	case inboundDeliver:
		handler, ok := ch.consumers[a.deliver.ConsumerTag]
		if !ok {
			return
		}
		d := Delivery{
			Publishing:  pub,
			ConsumerTag: a.deliver.ConsumerTag,
			DeliveryTag: a.deliver.DeliveryTag,
			Redelivered: a.deliver.Redelivered,
			Exchange:    a.deliver.Exchange,
			RoutingKey:  a.deliver.RoutingKey,
			channel:     ch,
		}
		guard := monitor.Watch(ch.token)
		handler(d)
		_ = guard
	case inboundReturn:
		r := Return{
			ReplyCode:  a.ret.ReplyCode,
			ReplyText:  a.ret.ReplyText,
			Exchange:   a.ret.Exchange,
			RoutingKey: a.ret.RoutingKey,
			Publishing: pub,
		}
		for _, c := range ch.returns {
			c <- r
		}
	case inboundGetOk:
		d := Delivery{
			Publishing:  pub,
			DeliveryTag: a.getOk.DeliveryTag,
			Redelivered: a.getOk.Redelivered,
			Exchange:    a.getOk.Exchange,
			RoutingKey:  a.getOk.RoutingKey,
			channel:     ch,
		}
		if cb := ch.pendingGetResolve; cb != nil {
			ch.pendingGetResolve = nil
			cb(&d, nil)
		}
		ch.advanceBacklog()
	}
}

func (ch *Channel) resolveConfirm(tag uint64, multiple, ack bool) {
	var resolved, kept []uint64
	for _, t := range ch.unacked {
		if (multiple && t <= tag) || (!multiple && t == tag) {
			resolved = append(resolved, t)
		} else {
			kept = append(kept, t)
		}
	}
	ch.unacked = kept
	for _, t := range resolved {
		ch.releaseConfirmThrottle()
		for _, c := range ch.confirms {
			c <- Confirmation{DeliveryTag: t, Ack: ack}
		}
	}
}

// releaseConfirmThrottle gives back one slot on the confirm backlog
// semaphore. A no-op when the channel isn't confirm-throttled.
func (ch *Channel) releaseConfirmThrottle() {
	if ch.confirmThrottle != nil {
		ch.confirmThrottle.Release(1)
	}
}

// --- exchange/queue topology -------------------------------------------

func (ch *Channel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args Table, done func(error)) error {
	return ch.call(&spec091.ExchangeDeclare1{
		Exchange: name, Type: kind, Durable: durable, AutoDelete: autoDelete, Internal: internal, NoWait: noWait, Arguments: args,
	}, noWait, func(_ spec091.Method, err error) {
		if done != nil {
			done(err)
		}
	})
}

func (ch *Channel) ExchangeDelete(name string, ifUnused, noWait bool, done func(error)) error {
	return ch.call(&spec091.ExchangeDelete1{Exchange: name, IfUnused: ifUnused, NoWait: noWait}, noWait, func(_ spec091.Method, err error) {
		if done != nil {
			done(err)
		}
	})
}

func (ch *Channel) ExchangeBind(destination, source, routingKey string, noWait bool, args Table, done func(error)) error {
	return ch.call(&spec091.ExchangeBind1{Destination: destination, Source: source, RoutingKey: routingKey, NoWait: noWait, Arguments: args}, noWait, func(_ spec091.Method, err error) {
		if done != nil {
			done(err)
		}
	})
}

func (ch *Channel) ExchangeUnbind(destination, source, routingKey string, noWait bool, args Table, done func(error)) error {
	return ch.call(&spec091.ExchangeUnbind1{Destination: destination, Source: source, RoutingKey: routingKey, NoWait: noWait, Arguments: args}, noWait, func(_ spec091.Method, err error) {
		if done != nil {
			done(err)
		}
	})
}

func (ch *Channel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args Table, done func(QueueState, error)) error {
	return ch.call(&spec091.QueueDeclare1{
		Queue: name, Durable: durable, Exclusive: exclusive, AutoDelete: autoDelete, NoWait: noWait, Arguments: args,
	}, noWait, func(m spec091.Method, err error) {
		if done == nil {
			return
		}
		if err != nil {
			done(QueueState{}, err)
			return
		}
		if noWait {
			done(QueueState{Name: name}, nil)
			return
		}
		ok := m.(*spec091.QueueDeclareOk1)
		done(QueueState{Name: ok.Queue, MessageCount: ok.MessageCount, ConsumerCount: ok.ConsumerCount}, nil)
	})
}

func (ch *Channel) QueueBind(queue, exchange, routingKey string, noWait bool, args Table, done func(error)) error {
	return ch.call(&spec091.QueueBind1{Queue: queue, Exchange: exchange, RoutingKey: routingKey, NoWait: noWait, Arguments: args}, noWait, func(_ spec091.Method, err error) {
		if done != nil {
			done(err)
		}
	})
}

func (ch *Channel) QueueUnbind(queue, exchange, routingKey string, args Table, done func(error)) error {
	return ch.call(&spec091.QueueUnbind1{Queue: queue, Exchange: exchange, RoutingKey: routingKey, Arguments: args}, false, func(_ spec091.Method, err error) {
		if done != nil {
			done(err)
		}
	})
}

func (ch *Channel) QueuePurge(queue string, noWait bool, done func(messageCount uint32, err error)) error {
	return ch.call(&spec091.QueuePurge1{Queue: queue, NoWait: noWait}, noWait, func(m spec091.Method, err error) {
		if done == nil {
			return
		}
		if err != nil || noWait {
			done(0, err)
			return
		}
		done(m.(*spec091.QueuePurgeOk1).MessageCount, nil)
	})
}

func (ch *Channel) QueueDelete(queue string, ifUnused, ifEmpty, noWait bool, done func(messageCount uint32, err error)) error {
	return ch.call(&spec091.QueueDelete1{Queue: queue, IfUnused: ifUnused, IfEmpty: ifEmpty, NoWait: noWait}, noWait, func(m spec091.Method, err error) {
		if done == nil {
			return
		}
		if err != nil || noWait {
			done(0, err)
			return
		}
		done(m.(*spec091.QueueDeleteOk1).MessageCount, nil)
	})
}

// --- basic ---------------------------------------------------------------

func (ch *Channel) Qos(prefetchCount, prefetchSize int, global bool, done func(error)) error {
	return ch.call(&spec091.BasicQos1{PrefetchSize: uint32(prefetchSize), PrefetchCount: uint16(prefetchCount), Global: global}, false, func(_ spec091.Method, err error) {
		if done != nil {
			done(err)
		}
	})
}

// Confirm puts the channel into publisher-confirm mode (spec.md §8's
// "Publisher confirms" operation); every Publish afterwards returns a
// nonzero delivery tag that a NotifyPublish listener will see acked or
// nacked. When the connection's Config.MaxUnconfirmedPublishes is nonzero,
// Publish refuses (rather than blocks, keeping the core non-blocking) once
// that many confirms are outstanding.
func (ch *Channel) Confirm(noWait bool, done func(error)) error {
	return ch.call(&spec091.ConfirmSelect1{NoWait: noWait}, noWait, func(_ spec091.Method, err error) {
		if err == nil {
			ch.confirmMode = true
			if limit := ch.conn.Config.MaxUnconfirmedPublishes; limit > 0 {
				ch.confirmThrottle = semaphore.NewWeighted(int64(limit))
			}
		}
		if done != nil {
			done(err)
		}
	})
}

// --- transactions ----------------------------------------------------------

// TxSelect puts the channel into transactional mode (spec.md §1's
// "managing transactions"); tx.select has no no-wait variant, so it always
// gates behind a reply like any other synchronous call.
func (ch *Channel) TxSelect(done func(error)) error {
	return ch.call(&spec091.TxSelect1{}, false, func(_ spec091.Method, err error) {
		if done != nil {
			done(err)
		}
	})
}

// TxCommit commits the transaction started by TxSelect.
func (ch *Channel) TxCommit(done func(error)) error {
	return ch.call(&spec091.TxCommit1{}, false, func(_ spec091.Method, err error) {
		if done != nil {
			done(err)
		}
	})
}

// TxRollback rolls back the transaction started by TxSelect.
func (ch *Channel) TxRollback(done func(error)) error {
	return ch.call(&spec091.TxRollback1{}, false, func(_ spec091.Method, err error) {
		if done != nil {
			done(err)
		}
	})
}

func (ch *Channel) Consume(queue, consumerTag string, autoAck, exclusive, noLocal, noWait bool, args Table, handler func(Delivery), done func(tag string, err error)) error {
	if handler == nil {
		return newLocalError(KindUsage, "amqp: Consume requires a handler")
	}
	if noWait && consumerTag == "" {
		// No consume-ok is coming to learn a server-assigned tag from, so a
		// noWait consumer must pick its own, the way most client libraries
		// mint one client-side rather than leaving it server-only.
		consumerTag = uuid.NewString()
	}
	return ch.call(&spec091.BasicConsume1{
		Queue: queue, ConsumerTag: consumerTag, NoLocal: noLocal, NoAck: autoAck, Exclusive: exclusive, NoWait: noWait, Arguments: args,
	}, noWait, func(m spec091.Method, err error) {
		if err != nil {
			if done != nil {
				done("", err)
			}
			return
		}
		tag := consumerTag
		if !noWait {
			tag = m.(*spec091.BasicConsumeOk1).ConsumerTag
		}
		ch.consumers[tag] = handler
		if done != nil {
			done(tag, nil)
		}
	})
}

func (ch *Channel) Cancel(consumerTag string, noWait bool, done func(error)) error {
	return ch.call(&spec091.BasicCancel1{ConsumerTag: consumerTag, NoWait: noWait}, noWait, func(_ spec091.Method, err error) {
		delete(ch.consumers, consumerTag)
		if done != nil {
			done(err)
		}
	})
}

// Get implements basic.get. It shares call's synchronous gate (spec.md
// §4.5): issuing a Get while another synchronous request is outstanding
// backlogs it like any other call instead of racing it onto the wire.
func (ch *Channel) Get(queue string, autoAck bool, done func(*Delivery, error)) error {
	if ch.state != chanOpen {
		return ErrClosed
	}
	m := &spec091.BasicGet1{Queue: queue, NoAck: autoAck}
	if ch.waiting {
		ch.backlog = append(ch.backlog, backlogEntry{method: m, isGet: true, getDone: done})
		return nil
	}
	if err := ch.conn.sendChannelMethod(ch.id, m); err != nil {
		return err
	}
	ch.waiting = true
	ch.pendingGetResolve = done
	return nil
}

// Publish sends msg, splitting its body across as many body frames as the
// negotiated frame-max requires (spec.md §8's body-splitting rule). When
// the channel is in confirm mode the returned delivery tag is nonzero and
// will surface on a NotifyPublish listener once the broker (n)acks it.
func (ch *Channel) Publish(exchange, routingKey string, mandatory, immediate bool, msg Publishing) (uint64, error) {
	if ch.state != chanOpen {
		return 0, ErrClosed
	}
	if ch.confirmMode && ch.confirmThrottle != nil {
		if !ch.confirmThrottle.TryAcquire(1) {
			return 0, ErrConfirmBacklogFull
		}
	}
	if err := ch.conn.sendChannelMethod(ch.id, &spec091.BasicPublish1{
		Exchange: exchange, RoutingKey: routingKey, Mandatory: mandatory, Immediate: immediate,
	}); err != nil {
		ch.releaseConfirmThrottle()
		return 0, err
	}

	if msg.MessageId == "" {
		msg.MessageId = uuid.NewString()
	}
	props := propsFromPublishing(msg)
	w := wire.NewWriter()
	flags, err := props.Encode(w)
	if err != nil {
		ch.releaseConfirmThrottle()
		return 0, err
	}
	ch.conn.sendChannelRaw(ch.id, wire.FrameHeader, wire.EncodeHeader(spec091.ClassBasic, uint64(len(msg.Body)), flags, w.Bytes()))

	chunk := ch.conn.maxBodyChunk()
	body := msg.Body
	for len(body) > 0 {
		n := chunk
		if n > len(body) {
			n = len(body)
		}
		ch.conn.sendChannelRaw(ch.id, wire.FrameBody, body[:n])
		body = body[n:]
	}

	var tag uint64
	if ch.confirmMode {
		ch.nextPublishSeqNo++
		tag = ch.nextPublishSeqNo
		ch.unacked = append(ch.unacked, tag)
	}
	return tag, nil
}

func (ch *Channel) Ack(deliveryTag uint64, multiple bool) error {
	if ch.state != chanOpen {
		return ErrClosed
	}
	return ch.conn.sendChannelMethod(ch.id, &spec091.BasicAck1{DeliveryTag: deliveryTag, Multiple: multiple})
}

func (ch *Channel) Nack(deliveryTag uint64, multiple, requeue bool) error {
	if ch.state != chanOpen {
		return ErrClosed
	}
	return ch.conn.sendChannelMethod(ch.id, &spec091.BasicNack1{DeliveryTag: deliveryTag, Multiple: multiple, Requeue: requeue})
}

func (ch *Channel) Reject(deliveryTag uint64, requeue bool) error {
	if ch.state != chanOpen {
		return ErrClosed
	}
	return ch.conn.sendChannelMethod(ch.id, &spec091.BasicReject1{DeliveryTag: deliveryTag, Requeue: requeue})
}

// Recover asks the broker to redeliver unacknowledged messages on this
// channel, requeuing them first when requeue is set. It waits for
// basic.recover-ok like any other synchronous call (spec.md §9).
func (ch *Channel) Recover(requeue bool, done func(error)) error {
	return ch.call(&spec091.BasicRecover1{Requeue: requeue}, false, func(_ spec091.Method, err error) {
		if done != nil {
			done(err)
		}
	})
}

// RecoverAsync is basic.recover-async: the same redeliver request as
// Recover, but fire-and-forget — the broker never replies to it, so it
// skips the synchronous gate entirely rather than waiting on a reply that
// will never arrive (spec.md §9's basic.recover open question).
func (ch *Channel) RecoverAsync(requeue bool) error {
	if ch.state != chanOpen {
		return ErrClosed
	}
	return ch.conn.sendChannelMethod(ch.id, &spec091.BasicRecoverAsync1{Requeue: requeue})
}

// --- notifications ---------------------------------------------------------

func (ch *Channel) NotifyClose(c chan *Error) chan *Error {
	if ch.state == chanClosed {
		close(c)
		return c
	}
	ch.closes = append(ch.closes, c)
	return c
}

func (ch *Channel) NotifyReturn(c chan Return) chan Return {
	if ch.state == chanClosed {
		close(c)
		return c
	}
	ch.returns = append(ch.returns, c)
	return c
}

func (ch *Channel) NotifyPublish(c chan Confirmation) chan Confirmation {
	if ch.state == chanClosed {
		close(c)
		return c
	}
	ch.confirms = append(ch.confirms, c)
	return c
}

func (ch *Channel) NotifyCancel(c chan string) chan string {
	if ch.state == chanClosed {
		close(c)
		return c
	}
	ch.cancels = append(ch.cancels, c)
	return c
}

// Close begins a client-initiated channel close (spec.md §4.5).
func (ch *Channel) Close(done func(error)) {
	if ch.state == chanClosed || ch.state == chanClosing {
		if done != nil {
			done(ErrAlreadyClosed)
		}
		return
	}
	ch.state = chanClosing
	ch.closeDone = done
	_ = ch.conn.sendChannelMethod(ch.id, &spec091.ChannelClose1{ReplyCode: ReplySuccess, ReplyText: "kthxbai"})
}

// connectionShutdown is invoked by Connection.shutdown for every channel
// still registered when the connection dies; it reuses the same teardown
// as a normal close, just with the connection's failure (or nil, for a
// graceful Connection.Close) as the reason every channel reports.
func (ch *Channel) connectionShutdown(err *Error) { ch.shutdown(err) }

func (ch *Channel) shutdown(err *Error) {
	if ch.state == chanClosed {
		return
	}
	ch.state = chanClosed
	ch.token.Kill()
	ch.closeErr = err
	ch.conn.channels.remove(ch.id)

	// err is *Error; convert to a plain error only when non-nil so a
	// graceful close (err == nil) never hands callbacks a non-nil error
	// interface wrapping a nil pointer.
	var asErr error
	if err != nil {
		asErr = err
	}

	for _, p := range ch.pending {
		if p.resolve != nil {
			p.resolve(nil, asErr)
		}
	}
	ch.pending = nil
	for _, b := range ch.backlog {
		if b.isGet {
			if b.getDone != nil {
				b.getDone(nil, asErr)
			}
		} else if b.resolve != nil {
			b.resolve(nil, asErr)
		}
	}
	ch.backlog = nil
	ch.waiting = false
	if cb := ch.pendingGetResolve; cb != nil {
		ch.pendingGetResolve = nil
		cb(nil, asErr)
	}

	if err != nil {
		for _, c := range ch.closes {
			c <- err
		}
	}
	for _, c := range ch.closes {
		close(c)
	}
	for _, c := range ch.returns {
		close(c)
	}
	for _, c := range ch.confirms {
		close(c)
	}
	for _, c := range ch.cancels {
		close(c)
	}

	if cb := ch.closeDone; cb != nil {
		ch.closeDone = nil
		var retErr error
		if err != nil {
			retErr = err
		}
		cb(retErr)
	}
}
