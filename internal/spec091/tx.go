package spec091

import "github.com/rabbitbridge/amqp-core/internal/wire"

func init() {
	register(ClassTx, TxSelect, func() Method { return &TxSelect1{} })
	register(ClassTx, TxSelectOk, func() Method { return &TxSelectOk1{} })
	register(ClassTx, TxCommit, func() Method { return &TxCommit1{} })
	register(ClassTx, TxCommitOk, func() Method { return &TxCommitOk1{} })
	register(ClassTx, TxRollback, func() Method { return &TxRollback1{} })
	register(ClassTx, TxRollbackOk, func() Method { return &TxRollbackOk1{} })

	register(ClassConfirm, ConfirmSelect, func() Method { return &ConfirmSelect1{} })
	register(ClassConfirm, ConfirmSelectOk, func() Method { return &ConfirmSelectOk1{} })
}

type TxSelect1 struct{}

func (*TxSelect1) ClassID() uint16       { return ClassTx }
func (*TxSelect1) MethodID() uint16      { return TxSelect }
func (*TxSelect1) Write(w *wire.Writer) error { return nil }
func (*TxSelect1) Read(r *wire.Reader) error  { return nil }

type TxSelectOk1 struct{}

func (*TxSelectOk1) ClassID() uint16       { return ClassTx }
func (*TxSelectOk1) MethodID() uint16      { return TxSelectOk }
func (*TxSelectOk1) Write(w *wire.Writer) error { return nil }
func (*TxSelectOk1) Read(r *wire.Reader) error  { return nil }

type TxCommit1 struct{}

func (*TxCommit1) ClassID() uint16       { return ClassTx }
func (*TxCommit1) MethodID() uint16      { return TxCommit }
func (*TxCommit1) Write(w *wire.Writer) error { return nil }
func (*TxCommit1) Read(r *wire.Reader) error  { return nil }

type TxCommitOk1 struct{}

func (*TxCommitOk1) ClassID() uint16       { return ClassTx }
func (*TxCommitOk1) MethodID() uint16      { return TxCommitOk }
func (*TxCommitOk1) Write(w *wire.Writer) error { return nil }
func (*TxCommitOk1) Read(r *wire.Reader) error  { return nil }

type TxRollback1 struct{}

func (*TxRollback1) ClassID() uint16       { return ClassTx }
func (*TxRollback1) MethodID() uint16      { return TxRollback }
func (*TxRollback1) Write(w *wire.Writer) error { return nil }
func (*TxRollback1) Read(r *wire.Reader) error  { return nil }

type TxRollbackOk1 struct{}

func (*TxRollbackOk1) ClassID() uint16       { return ClassTx }
func (*TxRollbackOk1) MethodID() uint16      { return TxRollbackOk }
func (*TxRollbackOk1) Write(w *wire.Writer) error { return nil }
func (*TxRollbackOk1) Read(r *wire.Reader) error  { return nil }

type ConfirmSelect1 struct {
	NoWait bool
}

func (*ConfirmSelect1) ClassID() uint16  { return ClassConfirm }
func (*ConfirmSelect1) MethodID() uint16 { return ConfirmSelect }
func (m *ConfirmSelect1) Write(w *wire.Writer) error {
	w.WriteByte(packBits(m.NoWait))
	return nil
}
func (m *ConfirmSelect1) Read(r *wire.Reader) (err error) {
	bits, err := r.ReadByte()
	if err != nil {
		return err
	}
	m.NoWait, _ = unpackBits2(bits)
	return nil
}

type ConfirmSelectOk1 struct{}

func (*ConfirmSelectOk1) ClassID() uint16       { return ClassConfirm }
func (*ConfirmSelectOk1) MethodID() uint16      { return ConfirmSelectOk }
func (*ConfirmSelectOk1) Write(w *wire.Writer) error { return nil }
func (*ConfirmSelectOk1) Read(r *wire.Reader) error  { return nil }
