// Package wire encodes archive records in the protobuf wire format.
// Records are small and flat, so they are written field by field with protowire
// instead of going through generated message types.
package wire

import (
	"chat-archive/domain"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Encoder appends protobuf fields to a buffer. Zero values are skipped, as proto3 does.
type Encoder struct {
	b []byte
}

func (e *Encoder) String(num protowire.Number, s string) *Encoder {
	if s == "" {
		return e
	}
	e.b = protowire.AppendTag(e.b, num, protowire.BytesType)
	e.b = protowire.AppendString(e.b, s)
	return e
}

func (e *Encoder) Int64(num protowire.Number, v int64) *Encoder {
	if v == 0 {
		return e
	}
	e.b = protowire.AppendTag(e.b, num, protowire.VarintType)
	e.b = protowire.AppendVarint(e.b, uint64(v))
	return e
}

func (e *Encoder) Bool(num protowire.Number, v bool) *Encoder {
	if !v {
		return e
	}
	e.b = protowire.AppendTag(e.b, num, protowire.VarintType)
	e.b = protowire.AppendVarint(e.b, protowire.EncodeBool(v))
	return e
}

// OptionalInt writes v when set, zero included.
func (e *Encoder) OptionalInt(num protowire.Number, v *int) *Encoder {
	if v == nil {
		return e
	}
	e.b = protowire.AppendTag(e.b, num, protowire.VarintType)
	e.b = protowire.AppendVarint(e.b, uint64(int64(*v)))
	return e
}

// OptionalString writes s when set, empty included.
func (e *Encoder) OptionalString(num protowire.Number, s *string) *Encoder {
	if s == nil {
		return e
	}
	e.b = protowire.AppendTag(e.b, num, protowire.BytesType)
	e.b = protowire.AppendString(e.b, *s)
	return e
}

// Message writes an embedded message, even when empty, so repeated fields keep their length.
func (e *Encoder) Message(num protowire.Number, b []byte) *Encoder {
	e.b = protowire.AppendTag(e.b, num, protowire.BytesType)
	e.b = protowire.AppendBytes(e.b, b)
	return e
}

func (e *Encoder) Bytes() []byte { return e.b }

// Field is one decoded field. Bytes aliases the input buffer.
type Field struct {
	Num    protowire.Number
	Varint uint64
	Bytes  []byte
}

func (f Field) String() string { return string(f.Bytes) }
func (f Field) Int64() int64   { return int64(f.Varint) }
func (f Field) Bool() bool     { return protowire.DecodeBool(f.Varint) }

// Walk visits every varint and length-delimited field of b; other wire types are skipped.
func Walk(b []byte, visit func(Field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		f := Field{Num: num}
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			f.Varint = v
			b = b[n:]
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			f.Bytes = v
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
			b = b[n:]
			continue
		}
		if err := visit(f); err != nil {
			return err
		}
	}
	return nil
}

func EncodeConversation(c domain.Conversation) []byte {
	e := &Encoder{}
	return e.String(1, c.ID).
		String(2, c.Key).
		String(3, c.ParticipantOne).
		String(4, c.ParticipantTwo).
		Int64(5, domain.ToMillis(c.CreatedAt)).
		Int64(6, domain.ToMillis(c.UpdatedAt)).
		Int64(7, int64(c.MessageCount)).
		Bytes()
}

func DecodeConversation(b []byte) (domain.Conversation, error) {
	var c domain.Conversation
	err := Walk(b, func(f Field) error {
		switch f.Num {
		case 1:
			c.ID = f.String()
		case 2:
			c.Key = f.String()
		case 3:
			c.ParticipantOne = f.String()
		case 4:
			c.ParticipantTwo = f.String()
		case 5:
			c.CreatedAt = domain.FromMillis(f.Int64())
		case 6:
			c.UpdatedAt = domain.FromMillis(f.Int64())
		case 7:
			c.MessageCount = int(f.Int64())
		}
		return nil
	})
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("decode conversation: %w", err)
	}
	return c, nil
}

func EncodeMessage(m domain.ArchivedMessage) []byte {
	e := &Encoder{}
	return e.String(1, m.ID).
		String(2, m.ConversationID).
		String(3, m.From).
		String(4, m.To).
		String(5, m.Body).
		Int64(6, int64(m.Status)).
		Int64(7, domain.ToMillis(m.CreatedAt)).
		Int64(8, domain.ToMillis(m.UpdatedAt)).
		Bytes()
}

func DecodeMessage(b []byte) (domain.ArchivedMessage, error) {
	var m domain.ArchivedMessage
	err := Walk(b, func(f Field) error {
		switch f.Num {
		case 1:
			m.ID = f.String()
		case 2:
			m.ConversationID = f.String()
		case 3:
			m.From = f.String()
		case 4:
			m.To = f.String()
		case 5:
			m.Body = f.String()
		case 6:
			m.Status = domain.MessageStatus(f.Int64())
		case 7:
			m.CreatedAt = domain.FromMillis(f.Int64())
		case 8:
			m.UpdatedAt = domain.FromMillis(f.Int64())
		}
		return nil
	})
	if err != nil {
		return domain.ArchivedMessage{}, fmt.Errorf("decode message: %w", err)
	}
	return m, nil
}

func EncodeEvent(ev domain.ConversationEvent) []byte {
	e := &Encoder{}
	return e.String(1, ev.MessageID).
		String(2, ev.Sender).
		String(3, ev.Receiver).
		Int64(4, int64(ev.Status)).
		Int64(5, domain.ToMillis(ev.Timestamp)).
		String(6, ev.Body).
		Bytes()
}

func DecodeEvent(b []byte) (domain.ConversationEvent, error) {
	var ev domain.ConversationEvent
	err := Walk(b, func(f Field) error {
		switch f.Num {
		case 1:
			ev.MessageID = f.String()
		case 2:
			ev.Sender = f.String()
		case 3:
			ev.Receiver = f.String()
		case 4:
			ev.Status = domain.MessageStatus(f.Int64())
		case 5:
			ev.Timestamp = domain.FromMillis(f.Int64())
		case 6:
			ev.Body = f.String()
		}
		return nil
	})
	if err != nil {
		return domain.ConversationEvent{}, fmt.Errorf("decode event: %w", err)
	}
	return ev, nil
}
