package spec091

import "github.com/rabbitbridge/amqp-core/internal/wire"

func init() {
	register(ClassChannel, ChannelOpen, func() Method { return &ChannelOpen1{} })
	register(ClassChannel, ChannelOpenOk, func() Method { return &ChannelOpenOk1{} })
	register(ClassChannel, ChannelFlow, func() Method { return &ChannelFlow1{} })
	register(ClassChannel, ChannelFlowOk, func() Method { return &ChannelFlowOk1{} })
	register(ClassChannel, ChannelClose, func() Method { return &ChannelClose1{} })
	register(ClassChannel, ChannelCloseOk, func() Method { return &ChannelCloseOk1{} })
}

type ChannelOpen1 struct{}

func (*ChannelOpen1) ClassID() uint16  { return ClassChannel }
func (*ChannelOpen1) MethodID() uint16 { return ChannelOpen }
func (*ChannelOpen1) Write(w *wire.Writer) error {
	return w.WriteShortString("") // reserved
}
func (*ChannelOpen1) Read(r *wire.Reader) error {
	_, err := r.ReadShortString()
	return err
}

type ChannelOpenOk1 struct{}

func (*ChannelOpenOk1) ClassID() uint16  { return ClassChannel }
func (*ChannelOpenOk1) MethodID() uint16 { return ChannelOpenOk }
func (*ChannelOpenOk1) Write(w *wire.Writer) error {
	w.WriteLongString("") // reserved
	return nil
}
func (*ChannelOpenOk1) Read(r *wire.Reader) error {
	_, err := r.ReadLongString()
	return err
}

type ChannelFlow1 struct {
	Active bool
}

func (*ChannelFlow1) ClassID() uint16  { return ClassChannel }
func (*ChannelFlow1) MethodID() uint16 { return ChannelFlow }
func (m *ChannelFlow1) Write(w *wire.Writer) error {
	w.WriteBool(m.Active)
	return nil
}
func (m *ChannelFlow1) Read(r *wire.Reader) (err error) {
	m.Active, err = r.ReadBool()
	return err
}

type ChannelFlowOk1 struct {
	Active bool
}

func (*ChannelFlowOk1) ClassID() uint16  { return ClassChannel }
func (*ChannelFlowOk1) MethodID() uint16 { return ChannelFlowOk }
func (m *ChannelFlowOk1) Write(w *wire.Writer) error {
	w.WriteBool(m.Active)
	return nil
}
func (m *ChannelFlowOk1) Read(r *wire.Reader) (err error) {
	m.Active, err = r.ReadBool()
	return err
}

type ChannelClose1 struct {
	ReplyCode uint16
	ReplyText string
	ClassID_  uint16
	MethodID_ uint16
}

func (*ChannelClose1) ClassID() uint16  { return ClassChannel }
func (*ChannelClose1) MethodID() uint16 { return ChannelClose }
func (m *ChannelClose1) Write(w *wire.Writer) error {
	w.WriteUint16(m.ReplyCode)
	if err := w.WriteShortString(m.ReplyText); err != nil {
		return err
	}
	w.WriteUint16(m.ClassID_)
	w.WriteUint16(m.MethodID_)
	return nil
}
func (m *ChannelClose1) Read(r *wire.Reader) (err error) {
	if m.ReplyCode, err = r.ReadUint16(); err != nil {
		return err
	}
	if m.ReplyText, err = r.ReadShortString(); err != nil {
		return err
	}
	if m.ClassID_, err = r.ReadUint16(); err != nil {
		return err
	}
	m.MethodID_, err = r.ReadUint16()
	return err
}

type ChannelCloseOk1 struct{}

func (*ChannelCloseOk1) ClassID() uint16       { return ClassChannel }
func (*ChannelCloseOk1) MethodID() uint16      { return ChannelCloseOk }
func (*ChannelCloseOk1) Write(w *wire.Writer) error { return nil }
func (*ChannelCloseOk1) Read(r *wire.Reader) error  { return nil }
