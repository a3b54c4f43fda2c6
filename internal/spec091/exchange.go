package spec091

import "github.com/rabbitbridge/amqp-core/internal/wire"

func init() {
	register(ClassExchange, ExchangeDeclare, func() Method { return &ExchangeDeclare1{} })
	register(ClassExchange, ExchangeDeclareOk, func() Method { return &ExchangeDeclareOk1{} })
	register(ClassExchange, ExchangeDelete, func() Method { return &ExchangeDelete1{} })
	register(ClassExchange, ExchangeDeleteOk, func() Method { return &ExchangeDeleteOk1{} })
	register(ClassExchange, ExchangeBind, func() Method { return &ExchangeBind1{} })
	register(ClassExchange, ExchangeBindOk, func() Method { return &ExchangeBindOk1{} })
	register(ClassExchange, ExchangeUnbind, func() Method { return &ExchangeUnbind1{} })
	register(ClassExchange, ExchangeUnbindOk, func() Method { return &ExchangeUnbindOk1{} })
}

// exchange.declare bit field, low bit first: passive, durable, auto-delete,
// internal, no-wait.
type ExchangeDeclare1 struct {
	Exchange   string
	Type       string
	Passive    bool
	Durable    bool
	AutoDelete bool
	Internal   bool
	NoWait     bool
	Arguments  wire.Table
}

func (*ExchangeDeclare1) ClassID() uint16  { return ClassExchange }
func (*ExchangeDeclare1) MethodID() uint16 { return ExchangeDeclare }
func (m *ExchangeDeclare1) Write(w *wire.Writer) error {
	w.WriteUint16(0) // reserved: ticket
	if err := w.WriteShortString(m.Exchange); err != nil {
		return err
	}
	if err := w.WriteShortString(m.Type); err != nil {
		return err
	}
	w.WriteByte(packBits(m.Passive, m.Durable, m.AutoDelete, m.Internal, m.NoWait))
	return w.WriteTable(m.Arguments)
}
func (m *ExchangeDeclare1) Read(r *wire.Reader) (err error) {
	if _, err = r.ReadUint16(); err != nil {
		return err
	}
	if m.Exchange, err = r.ReadShortString(); err != nil {
		return err
	}
	if m.Type, err = r.ReadShortString(); err != nil {
		return err
	}
	bits, err := r.ReadByte()
	if err != nil {
		return err
	}
	m.Passive, m.Durable, m.AutoDelete, m.Internal, m.NoWait = unpackBits5(bits)
	m.Arguments, err = r.ReadTable()
	return err
}

type ExchangeDeclareOk1 struct{}

func (*ExchangeDeclareOk1) ClassID() uint16       { return ClassExchange }
func (*ExchangeDeclareOk1) MethodID() uint16      { return ExchangeDeclareOk }
func (*ExchangeDeclareOk1) Write(w *wire.Writer) error { return nil }
func (*ExchangeDeclareOk1) Read(r *wire.Reader) error  { return nil }

type ExchangeDelete1 struct {
	Exchange string
	IfUnused bool
	NoWait   bool
}

func (*ExchangeDelete1) ClassID() uint16  { return ClassExchange }
func (*ExchangeDelete1) MethodID() uint16 { return ExchangeDelete }
func (m *ExchangeDelete1) Write(w *wire.Writer) error {
	w.WriteUint16(0)
	if err := w.WriteShortString(m.Exchange); err != nil {
		return err
	}
	w.WriteByte(packBits(m.IfUnused, m.NoWait))
	return nil
}
func (m *ExchangeDelete1) Read(r *wire.Reader) (err error) {
	if _, err = r.ReadUint16(); err != nil {
		return err
	}
	if m.Exchange, err = r.ReadShortString(); err != nil {
		return err
	}
	bits, err := r.ReadByte()
	if err != nil {
		return err
	}
	m.IfUnused, m.NoWait = unpackBits2(bits)
	return nil
}

type ExchangeDeleteOk1 struct{}

func (*ExchangeDeleteOk1) ClassID() uint16       { return ClassExchange }
func (*ExchangeDeleteOk1) MethodID() uint16      { return ExchangeDeleteOk }
func (*ExchangeDeleteOk1) Write(w *wire.Writer) error { return nil }
func (*ExchangeDeleteOk1) Read(r *wire.Reader) error  { return nil }

type ExchangeBind1 struct {
	Destination string
	Source      string
	RoutingKey  string
	NoWait      bool
	Arguments   wire.Table
}

func (*ExchangeBind1) ClassID() uint16  { return ClassExchange }
func (*ExchangeBind1) MethodID() uint16 { return ExchangeBind }
func (m *ExchangeBind1) Write(w *wire.Writer) error {
	w.WriteUint16(0)
	if err := w.WriteShortString(m.Destination); err != nil {
		return err
	}
	if err := w.WriteShortString(m.Source); err != nil {
		return err
	}
	if err := w.WriteShortString(m.RoutingKey); err != nil {
		return err
	}
	w.WriteByte(packBits(m.NoWait))
	return w.WriteTable(m.Arguments)
}
func (m *ExchangeBind1) Read(r *wire.Reader) (err error) {
	if _, err = r.ReadUint16(); err != nil {
		return err
	}
	if m.Destination, err = r.ReadShortString(); err != nil {
		return err
	}
	if m.Source, err = r.ReadShortString(); err != nil {
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

type ExchangeBindOk1 struct{}

func (*ExchangeBindOk1) ClassID() uint16       { return ClassExchange }
func (*ExchangeBindOk1) MethodID() uint16      { return ExchangeBindOk }
func (*ExchangeBindOk1) Write(w *wire.Writer) error { return nil }
func (*ExchangeBindOk1) Read(r *wire.Reader) error  { return nil }

type ExchangeUnbind1 struct {
	Destination string
	Source      string
	RoutingKey  string
	NoWait      bool
	Arguments   wire.Table
}

func (*ExchangeUnbind1) ClassID() uint16  { return ClassExchange }
func (*ExchangeUnbind1) MethodID() uint16 { return ExchangeUnbind }
func (m *ExchangeUnbind1) Write(w *wire.Writer) error {
	w.WriteUint16(0)
	if err := w.WriteShortString(m.Destination); err != nil {
		return err
	}
	if err := w.WriteShortString(m.Source); err != nil {
		return err
	}
	if err := w.WriteShortString(m.RoutingKey); err != nil {
		return err
	}
	w.WriteByte(packBits(m.NoWait))
	return w.WriteTable(m.Arguments)
}
func (m *ExchangeUnbind1) Read(r *wire.Reader) (err error) {
	if _, err = r.ReadUint16(); err != nil {
		return err
	}
	if m.Destination, err = r.ReadShortString(); err != nil {
		return err
	}
	if m.Source, err = r.ReadShortString(); err != nil {
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

type ExchangeUnbindOk1 struct{}

func (*ExchangeUnbindOk1) ClassID() uint16       { return ClassExchange }
func (*ExchangeUnbindOk1) MethodID() uint16      { return ExchangeUnbindOk }
func (*ExchangeUnbindOk1) Write(w *wire.Writer) error { return nil }
func (*ExchangeUnbindOk1) Read(r *wire.Reader) error  { return nil }
