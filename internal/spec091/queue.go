package spec091

import "github.com/rabbitbridge/amqp-core/internal/wire"

func init() {
	register(ClassQueue, QueueDeclare, func() Method { return &QueueDeclare1{} })
	register(ClassQueue, QueueDeclareOk, func() Method { return &QueueDeclareOk1{} })
	register(ClassQueue, QueueBind, func() Method { return &QueueBind1{} })
	register(ClassQueue, QueueBindOk, func() Method { return &QueueBindOk1{} })
	register(ClassQueue, QueuePurge, func() Method { return &QueuePurge1{} })
	register(ClassQueue, QueuePurgeOk, func() Method { return &QueuePurgeOk1{} })
	register(ClassQueue, QueueDelete, func() Method { return &QueueDelete1{} })
	register(ClassQueue, QueueDeleteOk, func() Method { return &QueueDeleteOk1{} })
	register(ClassQueue, QueueUnbind, func() Method { return &QueueUnbind1{} })
	register(ClassQueue, QueueUnbindOk, func() Method { return &QueueUnbindOk1{} })
}

// queue.declare bit field: passive, durable, exclusive, auto-delete, no-wait.
type QueueDeclare1 struct {
	Queue      string
	Passive    bool
	Durable    bool
	Exclusive  bool
	AutoDelete bool
	NoWait     bool
	Arguments  wire.Table
}

func (*QueueDeclare1) ClassID() uint16  { return ClassQueue }
func (*QueueDeclare1) MethodID() uint16 { return QueueDeclare }
func (m *QueueDeclare1) Write(w *wire.Writer) error {
	w.WriteUint16(0)
	if err := w.WriteShortString(m.Queue); err != nil {
		return err
	}
	w.WriteByte(packBits(m.Passive, m.Durable, m.Exclusive, m.AutoDelete, m.NoWait))
	return w.WriteTable(m.Arguments)
}
func (m *QueueDeclare1) Read(r *wire.Reader) (err error) {
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
	m.Passive, m.Durable, m.Exclusive, m.AutoDelete, m.NoWait = unpackBits5(bits)
	m.Arguments, err = r.ReadTable()
	return err
}

type QueueDeclareOk1 struct {
	Queue         string
	MessageCount  uint32
	ConsumerCount uint32
}

func (*QueueDeclareOk1) ClassID() uint16  { return ClassQueue }
func (*QueueDeclareOk1) MethodID() uint16 { return QueueDeclareOk }
func (m *QueueDeclareOk1) Write(w *wire.Writer) error {
	if err := w.WriteShortString(m.Queue); err != nil {
		return err
	}
	w.WriteUint32(m.MessageCount)
	w.WriteUint32(m.ConsumerCount)
	return nil
}
func (m *QueueDeclareOk1) Read(r *wire.Reader) (err error) {
	if m.Queue, err = r.ReadShortString(); err != nil {
		return err
	}
	if m.MessageCount, err = r.ReadUint32(); err != nil {
		return err
	}
	m.ConsumerCount, err = r.ReadUint32()
	return err
}

type QueueBind1 struct {
	Queue      string
	Exchange   string
	RoutingKey string
	NoWait     bool
	Arguments  wire.Table
}

func (*QueueBind1) ClassID() uint16  { return ClassQueue }
func (*QueueBind1) MethodID() uint16 { return QueueBind }
func (m *QueueBind1) Write(w *wire.Writer) error {
	w.WriteUint16(0)
	if err := w.WriteShortString(m.Queue); err != nil {
		return err
	}
	if err := w.WriteShortString(m.Exchange); err != nil {
		return err
	}
	if err := w.WriteShortString(m.RoutingKey); err != nil {
		return err
	}
	w.WriteByte(packBits(m.NoWait))
	return w.WriteTable(m.Arguments)
}
func (m *QueueBind1) Read(r *wire.Reader) (err error) {
	if _, err = r.ReadUint16(); err != nil {
		return err
	}
	if m.Queue, err = r.ReadShortString(); err != nil {
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
	m.NoWait, _ = unpackBits2(bits)
	m.Arguments, err = r.ReadTable()
	return err
}

type QueueBindOk1 struct{}

func (*QueueBindOk1) ClassID() uint16       { return ClassQueue }
func (*QueueBindOk1) MethodID() uint16      { return QueueBindOk }
func (*QueueBindOk1) Write(w *wire.Writer) error { return nil }
func (*QueueBindOk1) Read(r *wire.Reader) error  { return nil }

type QueuePurge1 struct {
	Queue  string
	NoWait bool
}

func (*QueuePurge1) ClassID() uint16  { return ClassQueue }
func (*QueuePurge1) MethodID() uint16 { return QueuePurge }
func (m *QueuePurge1) Write(w *wire.Writer) error {
	w.WriteUint16(0)
	if err := w.WriteShortString(m.Queue); err != nil {
		return err
	}
	w.WriteByte(packBits(m.NoWait))
	return nil
}
func (m *QueuePurge1) Read(r *wire.Reader) (err error) {
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
	m.NoWait, _ = unpackBits2(bits)
	return nil
}

type QueuePurgeOk1 struct {
	MessageCount uint32
}

func (*QueuePurgeOk1) ClassID() uint16  { return ClassQueue }
func (*QueuePurgeOk1) MethodID() uint16 { return QueuePurgeOk }
func (m *QueuePurgeOk1) Write(w *wire.Writer) error {
	w.WriteUint32(m.MessageCount)
	return nil
}
func (m *QueuePurgeOk1) Read(r *wire.Reader) (err error) {
	m.MessageCount, err = r.ReadUint32()
	return err
}

type QueueDelete1 struct {
	Queue    string
	IfUnused bool
	IfEmpty  bool
	NoWait   bool
}

func (*QueueDelete1) ClassID() uint16  { return ClassQueue }
func (*QueueDelete1) MethodID() uint16 { return QueueDelete }
func (m *QueueDelete1) Write(w *wire.Writer) error {
	w.WriteUint16(0)
	if err := w.WriteShortString(m.Queue); err != nil {
		return err
	}
	w.WriteByte(packBits(m.IfUnused, m.IfEmpty, m.NoWait))
	return nil
}
func (m *QueueDelete1) Read(r *wire.Reader) (err error) {
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
	bs := unpackBits(bits, 3)
	m.IfUnused, m.IfEmpty, m.NoWait = bs[0], bs[1], bs[2]
	return nil
}

type QueueDeleteOk1 struct {
	MessageCount uint32
}

func (*QueueDeleteOk1) ClassID() uint16  { return ClassQueue }
func (*QueueDeleteOk1) MethodID() uint16 { return QueueDeleteOk }
func (m *QueueDeleteOk1) Write(w *wire.Writer) error {
	w.WriteUint32(m.MessageCount)
	return nil
}
func (m *QueueDeleteOk1) Read(r *wire.Reader) (err error) {
	m.MessageCount, err = r.ReadUint32()
	return err
}

type QueueUnbind1 struct {
	Queue      string
	Exchange   string
	RoutingKey string
	Arguments  wire.Table
}

func (*QueueUnbind1) ClassID() uint16  { return ClassQueue }
func (*QueueUnbind1) MethodID() uint16 { return QueueUnbind }
func (m *QueueUnbind1) Write(w *wire.Writer) error {
	w.WriteUint16(0)
	if err := w.WriteShortString(m.Queue); err != nil {
		return err
	}
	if err := w.WriteShortString(m.Exchange); err != nil {
		return err
	}
	if err := w.WriteShortString(m.RoutingKey); err != nil {
		return err
	}
	return w.WriteTable(m.Arguments)
}
func (m *QueueUnbind1) Read(r *wire.Reader) (err error) {
	if _, err = r.ReadUint16(); err != nil {
		return err
	}
	if m.Queue, err = r.ReadShortString(); err != nil {
		return err
	}
	if m.Exchange, err = r.ReadShortString(); err != nil {
		return err
	}
	if m.RoutingKey, err = r.ReadShortString(); err != nil {
		return err
	}
	m.Arguments, err = r.ReadTable()
	return err
}

type QueueUnbindOk1 struct{}

func (*QueueUnbindOk1) ClassID() uint16       { return ClassQueue }
func (*QueueUnbindOk1) MethodID() uint16      { return QueueUnbindOk }
func (*QueueUnbindOk1) Write(w *wire.Writer) error { return nil }
func (*QueueUnbindOk1) Read(r *wire.Reader) error  { return nil }
