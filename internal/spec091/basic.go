package spec091

import "github.com/rabbitbridge/amqp-core/internal/wire"

func init() {
	register(ClassBasic, BasicQos, func() Method { return &BasicQos1{} })
	register(ClassBasic, BasicQosOk, func() Method { return &BasicQosOk1{} })
	register(ClassBasic, BasicConsume, func() Method { return &BasicConsume1{} })
	register(ClassBasic, BasicConsumeOk, func() Method { return &BasicConsumeOk1{} })
	register(ClassBasic, BasicCancel, func() Method { return &BasicCancel1{} })
	register(ClassBasic, BasicCancelOk, func() Method { return &BasicCancelOk1{} })
	register(ClassBasic, BasicPublish, func() Method { return &BasicPublish1{} })
	register(ClassBasic, BasicReturn, func() Method { return &BasicReturn1{} })
	register(ClassBasic, BasicDeliver, func() Method { return &BasicDeliver1{} })
	register(ClassBasic, BasicGet, func() Method { return &BasicGet1{} })
	register(ClassBasic, BasicGetOk, func() Method { return &BasicGetOk1{} })
	register(ClassBasic, BasicGetEmpty, func() Method { return &BasicGetEmpty1{} })
	register(ClassBasic, BasicAck, func() Method { return &BasicAck1{} })
	register(ClassBasic, BasicReject, func() Method { return &BasicReject1{} })
	register(ClassBasic, BasicRecoverAsync, func() Method { return &BasicRecoverAsync1{} })
	register(ClassBasic, BasicRecover, func() Method { return &BasicRecover1{} })
	register(ClassBasic, BasicRecoverOk, func() Method { return &BasicRecoverOk1{} })
	register(ClassBasic, BasicNack, func() Method { return &BasicNack1{} })
}

type BasicQos1 struct {
	PrefetchSize  uint32
	PrefetchCount uint16
	Global        bool
}

func (*BasicQos1) ClassID() uint16  { return ClassBasic }
func (*BasicQos1) MethodID() uint16 { return BasicQos }
func (m *BasicQos1) Write(w *wire.Writer) error {
	w.WriteUint32(m.PrefetchSize)
	w.WriteUint16(m.PrefetchCount)
	w.WriteByte(packBits(m.Global))
	return nil
}
func (m *BasicQos1) Read(r *wire.Reader) (err error) {
	if m.PrefetchSize, err = r.ReadUint32(); err != nil {
		return err
	}
	if m.PrefetchCount, err = r.ReadUint16(); err != nil {
		return err
	}
	bits, err := r.ReadByte()
	if err != nil {
		return err
	}
	m.Global, _ = unpackBits2(bits)
	return nil
}

type BasicQosOk1 struct{}

func (*BasicQosOk1) ClassID() uint16       { return ClassBasic }
func (*BasicQosOk1) MethodID() uint16      { return BasicQosOk }
func (*BasicQosOk1) Write(w *wire.Writer) error { return nil }
func (*BasicQosOk1) Read(r *wire.Reader) error  { return nil }

// basic.consume bit field: no-local, no-ack, exclusive, no-wait.
type BasicConsume1 struct {
	Queue       string
	ConsumerTag string
	NoLocal     bool
	NoAck       bool
	Exclusive   bool
	NoWait      bool
	Arguments   wire.Table
}

func (*BasicConsume1) ClassID() uint16  { return ClassBasic }
func (*BasicConsume1) MethodID() uint16 { return BasicConsume }
func (m *BasicConsume1) Write(w *wire.Writer) error {
	w.WriteUint16(0)
	if err := w.WriteShortString(m.Queue); err != nil {
		return err
	}
	if err := w.WriteShortString(m.ConsumerTag); err != nil {
		return err
	}
	w.WriteByte(packBits(m.NoLocal, m.NoAck, m.Exclusive, m.NoWait))
	return w.WriteTable(m.Arguments)
}
func (m *BasicConsume1) Read(r *wire.Reader) (err error) {
	if _, err = r.ReadUint16(); err != nil {
		return err
	}
	if m.Queue, err = r.ReadShortString(); err != nil {
		return err
	}
	if m.ConsumerTag, err = r.ReadShortString(); err != nil {
		return err
	}
	bits, err := r.ReadByte()
	if err != nil {
		return err
	}
	bs := unpackBits(bits, 4)
	m.NoLocal, m.NoAck, m.Exclusive, m.NoWait = bs[0], bs[1], bs[2], bs[3]
	m.Arguments, err = r.ReadTable()
	return err
}

type BasicConsumeOk1 struct {
	ConsumerTag string
}

func (*BasicConsumeOk1) ClassID() uint16  { return ClassBasic }
func (*BasicConsumeOk1) MethodID() uint16 { return BasicConsumeOk }
func (m *BasicConsumeOk1) Write(w *wire.Writer) error {
	return w.WriteShortString(m.ConsumerTag)
}
func (m *BasicConsumeOk1) Read(r *wire.Reader) (err error) {
	m.ConsumerTag, err = r.ReadShortString()
	return err
}

type BasicCancel1 struct {
	ConsumerTag string
	NoWait      bool
}

func (*BasicCancel1) ClassID() uint16  { return ClassBasic }
func (*BasicCancel1) MethodID() uint16 { return BasicCancel }
func (m *BasicCancel1) Write(w *wire.Writer) error {
	if err := w.WriteShortString(m.ConsumerTag); err != nil {
		return err
	}
	w.WriteByte(packBits(m.NoWait))
	return nil
}
func (m *BasicCancel1) Read(r *wire.Reader) (err error) {
	if m.ConsumerTag, err = r.ReadShortString(); err != nil {
		return err
	}
	bits, err := r.ReadByte()
	if err != nil {
		return err
	}
	m.NoWait, _ = unpackBits2(bits)
	return nil
}

type BasicCancelOk1 struct {
	ConsumerTag string
}

func (*BasicCancelOk1) ClassID() uint16  { return ClassBasic }
func (*BasicCancelOk1) MethodID() uint16 { return BasicCancelOk }
func (m *BasicCancelOk1) Write(w *wire.Writer) error {
	return w.WriteShortString(m.ConsumerTag)
}
func (m *BasicCancelOk1) Read(r *wire.Reader) (err error) {
	m.ConsumerTag, err = r.ReadShortString()
	return err
}

// basic.publish bit field: mandatory, immediate.
type BasicPublish1 struct {
	Exchange   string
	RoutingKey string
	Mandatory  bool
	Immediate  bool
}

func (*BasicPublish1) ClassID() uint16  { return ClassBasic }
func (*BasicPublish1) MethodID() uint16 { return BasicPublish }
func (m *BasicPublish1) Write(w *wire.Writer) error {
	w.WriteUint16(0)
	if err := w.WriteShortString(m.Exchange); err != nil {
		return err
	}
	if err := w.WriteShortString(m.RoutingKey); err != nil {
		return err
	}
	w.WriteByte(packBits(m.Mandatory, m.Immediate))
	return nil
}
func (m *BasicPublish1) Read(r *wire.Reader) (err error) {
	if _, err = r.ReadUint16(); err != nil {
		return err
	}
	if m.Exchange, err = r.ReadShortString(); err != nil {
		return err
	}
	if m.RoutingKey, err = r.ReadShortString(); err != nil {
		return err
	}
	bits, err := r.ReadByte()
	if err != nil {
		return err
	}
	m.Mandatory, m.Immediate = unpackBits2(bits)
	return nil
}

type BasicReturn1 struct {
	ReplyCode  uint16
	ReplyText  string
	Exchange   string
	RoutingKey string
}

func (*BasicReturn1) ClassID() uint16  { return ClassBasic }
func (*BasicReturn1) MethodID() uint16 { return BasicReturn }
func (m *BasicReturn1) Write(w *wire.Writer) error {
	w.WriteUint16(m.ReplyCode)
	if err := w.WriteShortString(m.ReplyText); err != nil {
		return err
	}
	if err := w.WriteShortString(m.Exchange); err != nil {
		return err
	}
	return w.WriteShortString(m.RoutingKey)
}
func (m *BasicReturn1) Read(r *wire.Reader) (err error) {
	if m.ReplyCode, err = r.ReadUint16(); err != nil {
		return err
	}
	if m.ReplyText, err = r.ReadShortString(); err != nil {
		return err
	}
	if m.Exchange, err = r.ReadShortString(); err != nil {
		return err
	}
	m.RoutingKey, err = r.ReadShortString()
	return err
}

type BasicDeliver1 struct {
	ConsumerTag string
	DeliveryTag uint64
	Redelivered bool
	Exchange    string
	RoutingKey  string
}

func (*BasicDeliver1) ClassID() uint16  { return ClassBasic }
func (*BasicDeliver1) MethodID() uint16 { return BasicDeliver }
func (m *BasicDeliver1) Write(w *wire.Writer) error {
	if err := w.WriteShortString(m.ConsumerTag); err != nil {
		return err
	}
	w.WriteUint64(m.DeliveryTag)
	w.WriteByte(packBits(m.Redelivered))
	if err := w.WriteShortString(m.Exchange); err != nil {
		return err
	}
	return w.WriteShortString(m.RoutingKey)
}
func (m *BasicDeliver1) Read(r *wire.Reader) (err error) {
	if m.ConsumerTag, err = r.ReadShortString(); err != nil {
		return err
	}
	if m.DeliveryTag, err = r.ReadUint64(); err != nil {
		return err
	}
	bits, err := r.ReadByte()
	if err != nil {
		return err
	}
	m.Redelivered, _ = unpackBits2(bits)
	if m.Exchange, err = r.ReadShortString(); err != nil {
		return err
	}
	m.RoutingKey, err = r.ReadShortString()
	return err
}

type BasicGet1 struct {
	Queue  string
	NoAck  bool
}

func (*BasicGet1) ClassID() uint16  { return ClassBasic }
func (*BasicGet1) MethodID() uint16 { return BasicGet }
func (m *BasicGet1) Write(w *wire.Writer) error {
	w.WriteUint16(0)
	if err := w.WriteShortString(m.Queue); err != nil {
		return err
	}
	w.WriteByte(packBits(m.NoAck))
	return nil
}
func (m *BasicGet1) Read(r *wire.Reader) (err error) {
	if _, err = r.ReadUint16(); err != nil {
		return err
	}
	if m.Queue, err = r.ReadShortString(); err != nil {
		return err
	}
	bits, err := r.ReadByte()
	if err != nil {
		return err
	}
	m.NoAck, _ = unpackBits2(bits)
	return nil
}

type BasicGetOk1 struct {
	DeliveryTag  uint64
	Redelivered  bool
	Exchange     string
	RoutingKey   string
	MessageCount uint32
}

func (*BasicGetOk1) ClassID() uint16  { return ClassBasic }
func (*BasicGetOk1) MethodID() uint16 { return BasicGetOk }
func (m *BasicGetOk1) Write(w *wire.Writer) error {
	w.WriteUint64(m.DeliveryTag)
	w.WriteByte(packBits(m.Redelivered))
	if err := w.WriteShortString(m.Exchange); err != nil {
		return err
	}
	if err := w.WriteShortString(m.RoutingKey); err != nil {
		return err
	}
	w.WriteUint32(m.MessageCount)
	return nil
}
func (m *BasicGetOk1) Read(r *wire.Reader) (err error) {
	if m.DeliveryTag, err = r.ReadUint64(); err != nil {
		return err
	}
	bits, err := r.ReadByte()
	if err != nil {
		return err
	}
	m.Redelivered, _ = unpackBits2(bits)
	if m.Exchange, err = r.ReadShortString(); err != nil {
		return err
	}
	if m.RoutingKey, err = r.ReadShortString(); err != nil {
		return err
	}
	m.MessageCount, err = r.ReadUint32()
	return err
}

type BasicGetEmpty1 struct{}

func (*BasicGetEmpty1) ClassID() uint16  { return ClassBasic }
func (*BasicGetEmpty1) MethodID() uint16 { return BasicGetEmpty }
func (*BasicGetEmpty1) Write(w *wire.Writer) error {
	return w.WriteShortString("") // reserved
}
func (*BasicGetEmpty1) Read(r *wire.Reader) error {
	_, err := r.ReadShortString()
	return err
}

type BasicAck1 struct {
	DeliveryTag uint64
	Multiple    bool
}

func (*BasicAck1) ClassID() uint16  { return ClassBasic }
func (*BasicAck1) MethodID() uint16 { return BasicAck }
func (m *BasicAck1) Write(w *wire.Writer) error {
	w.WriteUint64(m.DeliveryTag)
	w.WriteByte(packBits(m.Multiple))
	return nil
}
func (m *BasicAck1) Read(r *wire.Reader) (err error) {
	if m.DeliveryTag, err = r.ReadUint64(); err != nil {
		return err
	}
	bits, err := r.ReadByte()
	if err != nil {
		return err
	}
	m.Multiple, _ = unpackBits2(bits)
	return nil
}

type BasicReject1 struct {
	DeliveryTag uint64
	Requeue     bool
}

func (*BasicReject1) ClassID() uint16  { return ClassBasic }
func (*BasicReject1) MethodID() uint16 { return BasicReject }
func (m *BasicReject1) Write(w *wire.Writer) error {
	w.WriteUint64(m.DeliveryTag)
	w.WriteByte(packBits(m.Requeue))
	return nil
}
func (m *BasicReject1) Read(r *wire.Reader) (err error) {
	if m.DeliveryTag, err = r.ReadUint64(); err != nil {
		return err
	}
	bits, err := r.ReadByte()
	if err != nil {
		return err
	}
	m.Requeue, _ = unpackBits2(bits)
	return nil
}

type BasicRecoverAsync1 struct {
	Requeue bool
}

func (*BasicRecoverAsync1) ClassID() uint16  { return ClassBasic }
func (*BasicRecoverAsync1) MethodID() uint16 { return BasicRecoverAsync }
func (m *BasicRecoverAsync1) Write(w *wire.Writer) error {
	w.WriteByte(packBits(m.Requeue))
	return nil
}
func (m *BasicRecoverAsync1) Read(r *wire.Reader) (err error) {
	bits, err := r.ReadByte()
	if err != nil {
		return err
	}
	m.Requeue, _ = unpackBits2(bits)
	return nil
}

type BasicRecover1 struct {
	Requeue bool
}

func (*BasicRecover1) ClassID() uint16  { return ClassBasic }
func (*BasicRecover1) MethodID() uint16 { return BasicRecover }
func (m *BasicRecover1) Write(w *wire.Writer) error {
	w.WriteByte(packBits(m.Requeue))
	return nil
}
func (m *BasicRecover1) Read(r *wire.Reader) (err error) {
	bits, err := r.ReadByte()
	if err != nil {
		return err
	}
	m.Requeue, _ = unpackBits2(bits)
	return nil
}

type BasicRecoverOk1 struct{}

func (*BasicRecoverOk1) ClassID() uint16       { return ClassBasic }
func (*BasicRecoverOk1) MethodID() uint16      { return BasicRecoverOk }
func (*BasicRecoverOk1) Write(w *wire.Writer) error { return nil }
func (*BasicRecoverOk1) Read(r *wire.Reader) error  { return nil }

type BasicNack1 struct {
	DeliveryTag uint64
	Multiple    bool
	Requeue     bool
}

func (*BasicNack1) ClassID() uint16  { return ClassBasic }
func (*BasicNack1) MethodID() uint16 { return BasicNack }
func (m *BasicNack1) Write(w *wire.Writer) error {
	w.WriteUint64(m.DeliveryTag)
	w.WriteByte(packBits(m.Multiple, m.Requeue))
	return nil
}
func (m *BasicNack1) Read(r *wire.Reader) (err error) {
	if m.DeliveryTag, err = r.ReadUint64(); err != nil {
		return err
	}
	bits, err := r.ReadByte()
	if err != nil {
		return err
	}
	m.Multiple, m.Requeue = unpackBits2(bits)
	return nil
}
