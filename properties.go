package amqp

import "github.com/rabbitbridge/amqp-core/internal/spec091"

// propsFromPublishing maps a caller-supplied Publishing onto the wire
// property set, setting each flag bit only for fields the caller actually
// populated, i.e. left at a non-zero value; a field at its Go zero value
// (DeliveryMode 0, an empty string) is never sent.
func propsFromPublishing(m Publishing) spec091.Properties {
	p := spec091.Properties{
		ContentType:     m.ContentType,
		ContentEncoding: m.ContentEncoding,
		Headers:         m.Headers,
		DeliveryMode:    m.DeliveryMode,
		Priority:        m.Priority,
		CorrelationID:   m.CorrelationId,
		ReplyTo:         m.ReplyTo,
		Expiration:      m.Expiration,
		MessageID:       m.MessageId,
		Timestamp:       m.Timestamp,
		Type:            m.Type,
		UserID:          m.UserId,
		AppID:           m.AppId,
		ClusterID:       m.ClusterId,
	}
	p.SetFlag(spec091.FlagContentType, m.ContentType != "")
	p.SetFlag(spec091.FlagContentEncoding, m.ContentEncoding != "")
	p.SetFlag(spec091.FlagHeaders, len(m.Headers) > 0)
	p.SetFlag(spec091.FlagDeliveryMode, m.DeliveryMode != 0)
	p.SetFlag(spec091.FlagPriority, m.Priority != 0)
	p.SetFlag(spec091.FlagCorrelationID, m.CorrelationId != "")
	p.SetFlag(spec091.FlagReplyTo, m.ReplyTo != "")
	p.SetFlag(spec091.FlagExpiration, m.Expiration != "")
	p.SetFlag(spec091.FlagMessageID, m.MessageId != "")
	p.SetFlag(spec091.FlagTimestamp, !m.Timestamp.IsZero())
	p.SetFlag(spec091.FlagType, m.Type != "")
	p.SetFlag(spec091.FlagUserID, m.UserId != "")
	p.SetFlag(spec091.FlagAppID, m.AppId != "")
	p.SetFlag(spec091.FlagClusterID, m.ClusterId != "")
	return p
}

// propsToPublishing is propsFromPublishing's inverse, used when
// reassembling an inbound deliver/get-ok/return.
func propsToPublishing(p spec091.Properties, body []byte) Publishing {
	return Publishing{
		ContentType:     p.ContentType,
		ContentEncoding: p.ContentEncoding,
		Headers:         p.Headers,
		DeliveryMode:    p.DeliveryMode,
		Priority:        p.Priority,
		CorrelationId:   p.CorrelationID,
		ReplyTo:         p.ReplyTo,
		Expiration:      p.Expiration,
		MessageId:       p.MessageID,
		Timestamp:       p.Timestamp,
		Type:            p.Type,
		UserId:          p.UserID,
		AppId:           p.AppID,
		ClusterId:       p.ClusterID,
		Body:            body,
	}
}
