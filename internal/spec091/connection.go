package spec091

import "github.com/rabbitbridge/amqp-core/internal/wire"

func init() {
	register(ClassConnection, ConnectionStart, func() Method { return &ConnectionStart1{} })
	register(ClassConnection, ConnectionStartOk, func() Method { return &ConnectionStartOk1{} })
	register(ClassConnection, ConnectionSecure, func() Method { return &ConnectionSecure1{} })
	register(ClassConnection, ConnectionSecureOk, func() Method { return &ConnectionSecureOk1{} })
	register(ClassConnection, ConnectionTune, func() Method { return &ConnectionTune1{} })
	register(ClassConnection, ConnectionTuneOk, func() Method { return &ConnectionTuneOk1{} })
	register(ClassConnection, ConnectionOpen, func() Method { return &ConnectionOpen1{} })
	register(ClassConnection, ConnectionOpenOk, func() Method { return &ConnectionOpenOk1{} })
	register(ClassConnection, ConnectionClose, func() Method { return &ConnectionClose1{} })
	register(ClassConnection, ConnectionCloseOk, func() Method { return &ConnectionCloseOk1{} })
	register(ClassConnection, ConnectionBlocked, func() Method { return &ConnectionBlocked1{} })
	register(ClassConnection, ConnectionUnblocked, func() Method { return &ConnectionUnblocked1{} })
}

type ConnectionStart1 struct {
	VersionMajor     byte
	VersionMinor     byte
	ServerProperties wire.Table
	Mechanisms       string
	Locales          string
}

func (*ConnectionStart1) ClassID() uint16  { return ClassConnection }
func (*ConnectionStart1) MethodID() uint16 { return ConnectionStart }

func (m *ConnectionStart1) Write(w *wire.Writer) error {
	w.WriteUint8(m.VersionMajor)
	w.WriteUint8(m.VersionMinor)
	if err := w.WriteTable(m.ServerProperties); err != nil {
		return err
	}
	w.WriteLongString(m.Mechanisms)
	w.WriteLongString(m.Locales)
	return nil
}

func (m *ConnectionStart1) Read(r *wire.Reader) (err error) {
	if m.VersionMajor, err = r.ReadUint8(); err != nil {
		return err
	}
	if m.VersionMinor, err = r.ReadUint8(); err != nil {
		return err
	}
	if m.ServerProperties, err = r.ReadTable(); err != nil {
		return err
	}
	if m.Mechanisms, err = r.ReadLongString(); err != nil {
		return err
	}
	m.Locales, err = r.ReadLongString()
	return err
}

type ConnectionStartOk1 struct {
	ClientProperties wire.Table
	Mechanism        string
	Response         string
	Locale           string
}

func (*ConnectionStartOk1) ClassID() uint16  { return ClassConnection }
func (*ConnectionStartOk1) MethodID() uint16 { return ConnectionStartOk }

func (m *ConnectionStartOk1) Write(w *wire.Writer) error {
	if err := w.WriteTable(m.ClientProperties); err != nil {
		return err
	}
	if err := w.WriteShortString(m.Mechanism); err != nil {
		return err
	}
	w.WriteLongString(m.Response)
	return w.WriteShortString(m.Locale)
}

func (m *ConnectionStartOk1) Read(r *wire.Reader) (err error) {
	if m.ClientProperties, err = r.ReadTable(); err != nil {
		return err
	}
	if m.Mechanism, err = r.ReadShortString(); err != nil {
		return err
	}
	if m.Response, err = r.ReadLongString(); err != nil {
		return err
	}
	m.Locale, err = r.ReadShortString()
	return err
}

type ConnectionSecure1 struct {
	Challenge string
}

func (*ConnectionSecure1) ClassID() uint16  { return ClassConnection }
func (*ConnectionSecure1) MethodID() uint16 { return ConnectionSecure }
func (m *ConnectionSecure1) Write(w *wire.Writer) error {
	w.WriteLongString(m.Challenge)
	return nil
}
func (m *ConnectionSecure1) Read(r *wire.Reader) (err error) {
	m.Challenge, err = r.ReadLongString()
	return err
}

type ConnectionSecureOk1 struct {
	Response string
}

func (*ConnectionSecureOk1) ClassID() uint16  { return ClassConnection }
func (*ConnectionSecureOk1) MethodID() uint16 { return ConnectionSecureOk }
func (m *ConnectionSecureOk1) Write(w *wire.Writer) error {
	w.WriteLongString(m.Response)
	return nil
}
func (m *ConnectionSecureOk1) Read(r *wire.Reader) (err error) {
	m.Response, err = r.ReadLongString()
	return err
}

type ConnectionTune1 struct {
	ChannelMax uint16
	FrameMax   uint32
	Heartbeat  uint16
}

func (*ConnectionTune1) ClassID() uint16  { return ClassConnection }
func (*ConnectionTune1) MethodID() uint16 { return ConnectionTune }
func (m *ConnectionTune1) Write(w *wire.Writer) error {
	w.WriteUint16(m.ChannelMax)
	w.WriteUint32(m.FrameMax)
	w.WriteUint16(m.Heartbeat)
	return nil
}
func (m *ConnectionTune1) Read(r *wire.Reader) (err error) {
	if m.ChannelMax, err = r.ReadUint16(); err != nil {
		return err
	}
	if m.FrameMax, err = r.ReadUint32(); err != nil {
		return err
	}
	m.Heartbeat, err = r.ReadUint16()
	return err
}

type ConnectionTuneOk1 struct {
	ChannelMax uint16
	FrameMax   uint32
	Heartbeat  uint16
}

func (*ConnectionTuneOk1) ClassID() uint16  { return ClassConnection }
func (*ConnectionTuneOk1) MethodID() uint16 { return ConnectionTuneOk }
func (m *ConnectionTuneOk1) Write(w *wire.Writer) error {
	w.WriteUint16(m.ChannelMax)
	w.WriteUint32(m.FrameMax)
	w.WriteUint16(m.Heartbeat)
	return nil
}
func (m *ConnectionTuneOk1) Read(r *wire.Reader) (err error) {
	if m.ChannelMax, err = r.ReadUint16(); err != nil {
		return err
	}
	if m.FrameMax, err = r.ReadUint32(); err != nil {
		return err
	}
	m.Heartbeat, err = r.ReadUint16()
	return err
}

type ConnectionOpen1 struct {
	VirtualHost string
}

func (*ConnectionOpen1) ClassID() uint16  { return ClassConnection }
func (*ConnectionOpen1) MethodID() uint16 { return ConnectionOpen }
func (m *ConnectionOpen1) Write(w *wire.Writer) error {
	if err := w.WriteShortString(m.VirtualHost); err != nil {
		return err
	}
	if err := w.WriteShortString(""); err != nil { // reserved: capabilities
		return err
	}
	w.WriteBool(false) // reserved: insist
	return nil
}
func (m *ConnectionOpen1) Read(r *wire.Reader) (err error) {
	if m.VirtualHost, err = r.ReadShortString(); err != nil {
		return err
	}
	if _, err = r.ReadShortString(); err != nil {
		return err
	}
	_, err = r.ReadBool()
	return err
}

type ConnectionOpenOk1 struct{}

func (*ConnectionOpenOk1) ClassID() uint16  { return ClassConnection }
func (*ConnectionOpenOk1) MethodID() uint16 { return ConnectionOpenOk }
func (m *ConnectionOpenOk1) Write(w *wire.Writer) error {
	return w.WriteShortString("") // reserved
}
func (m *ConnectionOpenOk1) Read(r *wire.Reader) error {
	_, err := r.ReadShortString()
	return err
}

type ConnectionClose1 struct {
	ReplyCode uint16
	ReplyText string
	ClassID_  uint16
	MethodID_ uint16
}

func (*ConnectionClose1) ClassID() uint16  { return ClassConnection }
func (*ConnectionClose1) MethodID() uint16 { return ConnectionClose }
func (m *ConnectionClose1) Write(w *wire.Writer) error {
	w.WriteUint16(m.ReplyCode)
	if err := w.WriteShortString(m.ReplyText); err != nil {
		return err
	}
	w.WriteUint16(m.ClassID_)
	w.WriteUint16(m.MethodID_)
	return nil
}
func (m *ConnectionClose1) Read(r *wire.Reader) (err error) {
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

type ConnectionCloseOk1 struct{}

func (*ConnectionCloseOk1) ClassID() uint16       { return ClassConnection }
func (*ConnectionCloseOk1) MethodID() uint16      { return ConnectionCloseOk }
func (*ConnectionCloseOk1) Write(w *wire.Writer) error { return nil }
func (*ConnectionCloseOk1) Read(r *wire.Reader) error  { return nil }

type ConnectionBlocked1 struct {
	Reason string
}

func (*ConnectionBlocked1) ClassID() uint16  { return ClassConnection }
func (*ConnectionBlocked1) MethodID() uint16 { return ConnectionBlocked }
func (m *ConnectionBlocked1) Write(w *wire.Writer) error {
	return w.WriteShortString(m.Reason)
}
func (m *ConnectionBlocked1) Read(r *wire.Reader) (err error) {
	m.Reason, err = r.ReadShortString()
	return err
}

type ConnectionUnblocked1 struct{}

func (*ConnectionUnblocked1) ClassID() uint16       { return ClassConnection }
func (*ConnectionUnblocked1) MethodID() uint16      { return ConnectionUnblocked }
func (*ConnectionUnblocked1) Write(w *wire.Writer) error { return nil }
func (*ConnectionUnblocked1) Read(r *wire.Reader) error  { return nil }
