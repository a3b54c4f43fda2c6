package spec091

import (
	"time"

	"github.com/rabbitbridge/amqp-core/internal/wire"
)

// Properties mirrors AMQP's basic-class content-header properties,
// spec.md §3 ("Envelope / Message"). Presence on the wire is controlled
// entirely by the flag bitmask, not by the Go zero value: a field whose
// flag is set is encoded even when it is zero, and a field whose flag is
// clear is omitted whatever its value.
type Properties struct {
	ContentType     string
	ContentEncoding string
	Headers         wire.Table
	DeliveryMode    uint8
	Priority        uint8
	CorrelationID   string
	ReplyTo         string
	Expiration      string
	MessageID       string
	Timestamp       time.Time
	Type            string
	UserID          string
	AppID           string
	ClusterID       string

	flags uint16 // which fields were present when decoded, or are to be sent
}

// Flags returns the presence bitmask: the fields that were present when
// decoded, or that Encode will write. SetFlag sets or clears one bit.
func (p *Properties) Flags() uint16 { return p.flags }

func (p *Properties) SetFlag(bit uint16, present bool) {
	if present {
		p.flags |= bit
	} else {
		p.flags &^= bit
	}
}

func (p *Properties) HasFlag(bit uint16) bool { return p.flags&bit != 0 }

// Encode writes the properties whose flag bit is set, in the canonical
// order spec.md §4.2 mandates, and returns the flags actually written.
func (p *Properties) Encode(w *wire.Writer) (uint16, error) {
	if p.flags&FlagContentType != 0 {
		if err := w.WriteShortString(p.ContentType); err != nil {
			return 0, err
		}
	}
	if p.flags&FlagContentEncoding != 0 {
		if err := w.WriteShortString(p.ContentEncoding); err != nil {
			return 0, err
		}
	}
	if p.flags&FlagHeaders != 0 {
		if err := w.WriteTable(p.Headers); err != nil {
			return 0, err
		}
	}
	if p.flags&FlagDeliveryMode != 0 {
		w.WriteUint8(p.DeliveryMode)
	}
	if p.flags&FlagPriority != 0 {
		w.WriteUint8(p.Priority)
	}
	if p.flags&FlagCorrelationID != 0 {
		if err := w.WriteShortString(p.CorrelationID); err != nil {
			return 0, err
		}
	}
	if p.flags&FlagReplyTo != 0 {
		if err := w.WriteShortString(p.ReplyTo); err != nil {
			return 0, err
		}
	}
	if p.flags&FlagExpiration != 0 {
		if err := w.WriteShortString(p.Expiration); err != nil {
			return 0, err
		}
	}
	if p.flags&FlagMessageID != 0 {
		if err := w.WriteShortString(p.MessageID); err != nil {
			return 0, err
		}
	}
	if p.flags&FlagTimestamp != 0 {
		w.WriteTimestamp(p.Timestamp)
	}
	if p.flags&FlagType != 0 {
		if err := w.WriteShortString(p.Type); err != nil {
			return 0, err
		}
	}
	if p.flags&FlagUserID != 0 {
		if err := w.WriteShortString(p.UserID); err != nil {
			return 0, err
		}
	}
	if p.flags&FlagAppID != 0 {
		if err := w.WriteShortString(p.AppID); err != nil {
			return 0, err
		}
	}
	if p.flags&FlagClusterID != 0 {
		if err := w.WriteShortString(p.ClusterID); err != nil {
			return 0, err
		}
	}
	return p.flags, nil
}

// DecodeProperties reads only the properties flags marks present.
func DecodeProperties(flags uint16, r *wire.Reader) (Properties, error) {
	p := Properties{flags: flags}
	var err error
	if flags&FlagContentType != 0 {
		if p.ContentType, err = r.ReadShortString(); err != nil {
			return p, err
		}
	}
	if flags&FlagContentEncoding != 0 {
		if p.ContentEncoding, err = r.ReadShortString(); err != nil {
			return p, err
		}
	}
	if flags&FlagHeaders != 0 {
		if p.Headers, err = r.ReadTable(); err != nil {
			return p, err
		}
	}
	if flags&FlagDeliveryMode != 0 {
		if p.DeliveryMode, err = r.ReadUint8(); err != nil {
			return p, err
		}
	}
	if flags&FlagPriority != 0 {
		if p.Priority, err = r.ReadUint8(); err != nil {
			return p, err
		}
	}
	if flags&FlagCorrelationID != 0 {
		if p.CorrelationID, err = r.ReadShortString(); err != nil {
			return p, err
		}
	}
	if flags&FlagReplyTo != 0 {
		if p.ReplyTo, err = r.ReadShortString(); err != nil {
			return p, err
		}
	}
	if flags&FlagExpiration != 0 {
		if p.Expiration, err = r.ReadShortString(); err != nil {
			return p, err
		}
	}
	if flags&FlagMessageID != 0 {
		if p.MessageID, err = r.ReadShortString(); err != nil {
			return p, err
		}
	}
	if flags&FlagTimestamp != 0 {
		if p.Timestamp, err = r.ReadTimestamp(); err != nil {
			return p, err
		}
	}
	if flags&FlagType != 0 {
		if p.Type, err = r.ReadShortString(); err != nil {
			return p, err
		}
	}
	if flags&FlagUserID != 0 {
		if p.UserID, err = r.ReadShortString(); err != nil {
			return p, err
		}
	}
	if flags&FlagAppID != 0 {
		if p.AppID, err = r.ReadShortString(); err != nil {
			return p, err
		}
	}
	if flags&FlagClusterID != 0 {
		if p.ClusterID, err = r.ReadShortString(); err != nil {
			return p, err
		}
	}
	return p, nil
}
