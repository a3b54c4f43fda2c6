// Package spec091 holds the AMQP 0-9-1 method and property definitions: one
// struct per method, each knowing its own class/method id and how to read
// and write its arguments. It is the hand-written equivalent of the
// generated spec091.go a from-source AMQP client carries, built the way the
// teacher's connection.go implies one exists (connectionStart,
// connectionTune, channelClose, ... all referenced but never shown).
package spec091

// Class ids, spec.md §6 / AMQP 0-9-1.
const (
	ClassConnection uint16 = 10
	ClassChannel    uint16 = 20
	ClassExchange   uint16 = 40
	ClassQueue      uint16 = 50
	ClassBasic      uint16 = 60
	ClassTx         uint16 = 90
	ClassConfirm    uint16 = 85
)

// Connection method ids.
const (
	ConnectionStart      uint16 = 10
	ConnectionStartOk    uint16 = 11
	ConnectionSecure     uint16 = 20
	ConnectionSecureOk   uint16 = 21
	ConnectionTune       uint16 = 30
	ConnectionTuneOk     uint16 = 31
	ConnectionOpen       uint16 = 40
	ConnectionOpenOk     uint16 = 41
	ConnectionClose      uint16 = 50
	ConnectionCloseOk    uint16 = 51
	ConnectionBlocked    uint16 = 60
	ConnectionUnblocked  uint16 = 61
)

// Channel method ids.
const (
	ChannelOpen    uint16 = 10
	ChannelOpenOk  uint16 = 11
	ChannelFlow    uint16 = 20
	ChannelFlowOk  uint16 = 21
	ChannelClose   uint16 = 40
	ChannelCloseOk uint16 = 41
)

// Exchange method ids.
const (
	ExchangeDeclare   uint16 = 10
	ExchangeDeclareOk uint16 = 11
	ExchangeDelete    uint16 = 20
	ExchangeDeleteOk  uint16 = 21
	ExchangeBind      uint16 = 30
	ExchangeBindOk    uint16 = 31
	ExchangeUnbind    uint16 = 40
	ExchangeUnbindOk  uint16 = 51
)

// Queue method ids.
const (
	QueueDeclare   uint16 = 10
	QueueDeclareOk uint16 = 11
	QueueBind      uint16 = 20
	QueueBindOk    uint16 = 21
	QueuePurge     uint16 = 30
	QueuePurgeOk   uint16 = 31
	QueueDelete    uint16 = 40
	QueueDeleteOk  uint16 = 41
	QueueUnbind    uint16 = 50
	QueueUnbindOk  uint16 = 51
)

// Basic method ids.
const (
	BasicQos          uint16 = 10
	BasicQosOk        uint16 = 11
	BasicConsume      uint16 = 20
	BasicConsumeOk    uint16 = 21
	BasicCancel       uint16 = 30
	BasicCancelOk     uint16 = 31
	BasicPublish      uint16 = 40
	BasicReturn       uint16 = 50
	BasicDeliver      uint16 = 60
	BasicGet          uint16 = 70
	BasicGetOk        uint16 = 71
	BasicGetEmpty     uint16 = 72
	BasicAck          uint16 = 80
	BasicReject       uint16 = 90
	BasicRecoverAsync uint16 = 100
	BasicRecover      uint16 = 110
	BasicRecoverOk    uint16 = 111
	BasicNack         uint16 = 120
)

// Tx method ids.
const (
	TxSelect       uint16 = 10
	TxSelectOk     uint16 = 11
	TxCommit       uint16 = 20
	TxCommitOk     uint16 = 21
	TxRollback     uint16 = 30
	TxRollbackOk   uint16 = 31
)

// Confirm method ids.
const (
	ConfirmSelect   uint16 = 10
	ConfirmSelectOk uint16 = 11
)

// Content-header property flag bits, in the canonical order spec.md §4.2
// requires properties be written/read in.
const (
	FlagContentType     uint16 = 1 << 15
	FlagContentEncoding uint16 = 1 << 14
	FlagHeaders         uint16 = 1 << 13
	FlagDeliveryMode    uint16 = 1 << 12
	FlagPriority        uint16 = 1 << 11
	FlagCorrelationID   uint16 = 1 << 10
	FlagReplyTo         uint16 = 1 << 9
	FlagExpiration      uint16 = 1 << 8
	FlagMessageID       uint16 = 1 << 7
	FlagTimestamp       uint16 = 1 << 6
	FlagType            uint16 = 1 << 5
	FlagUserID          uint16 = 1 << 4
	FlagAppID           uint16 = 1 << 3
	FlagClusterID       uint16 = 1 << 2
)
