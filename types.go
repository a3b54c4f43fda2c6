package amqp

import (
	"time"

	"github.com/rabbitbridge/amqp-core/internal/wire"
)

// Table is re-exported from internal/wire so callers never need to import
// an internal package to build a field table.
type Table = wire.Table

// Decimal is re-exported from internal/wire.
type Decimal = wire.Decimal

// ShortStr forces the short-string wire encoding for a table/array entry.
type ShortStr = wire.ShortStr

// Publishing captures everything a caller supplies to Channel.Publish:
// the envelope properties (spec.md §3) plus the body.
type Publishing struct {
	ContentType     string
	ContentEncoding string
	Headers         Table
	DeliveryMode    uint8
	Priority        uint8
	CorrelationId   string
	ReplyTo         string
	Expiration      string
	MessageId       string
	Timestamp       time.Time
	Type            string
	UserId          string
	AppId           string
	ClusterId       string
	Body            []byte
}

// Delivery is a fully reassembled inbound message: a Publishing plus the
// transport metadata spec.md §3 adds (exchange, routing key, delivery
// tag, redelivered).
type Delivery struct {
	Publishing

	ConsumerTag string
	DeliveryTag uint64
	Redelivered bool
	Exchange    string
	RoutingKey  string

	channel *Channel
}

// Ack acknowledges this delivery. multiple also acknowledges every
// unacknowledged delivery on the same channel up to and including this
// one.
func (d Delivery) Ack(multiple bool) error {
	return d.channel.Ack(d.DeliveryTag, multiple)
}

// Nack negatively acknowledges this delivery.
func (d Delivery) Nack(multiple, requeue bool) error {
	return d.channel.Nack(d.DeliveryTag, multiple, requeue)
}

// Reject rejects this single delivery.
func (d Delivery) Reject(requeue bool) error {
	return d.channel.Reject(d.DeliveryTag, requeue)
}

// Return is delivered to a NotifyReturn listener when a mandatory or
// immediate publish could not be routed (spec.md §6, basic.return).
type Return struct {
	ReplyCode  uint16
	ReplyText  string
	Exchange   string
	RoutingKey string
	Publishing
}

// Blocking reports a RabbitMQ TCP-flow-control notification
// (connection.blocked/unblocked), spec.md §4.3/§6.
type Blocking struct {
	Active bool
	Reason string
}

// Confirmation is delivered on a publisher-confirm listener channel:
// the delivery tag assigned at publish time, and whether the broker
// acked or nacked it.
type Confirmation struct {
	DeliveryTag uint64
	Ack         bool
}

// QueueState is the result of a successful queue.declare.
type QueueState struct {
	Name          string
	MessageCount  uint32
	ConsumerCount uint32
}
