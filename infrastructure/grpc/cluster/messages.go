package cluster

import (
	"chat-archive/domain"
	"chat-archive/infrastructure/wire"
	"fmt"
)

// ConversationReply answers GetConversation. Found is false for an unknown id.
type ConversationReply struct {
	Found        bool
	Conversation domain.Conversation
}

func (r *ConversationReply) MarshalWire() ([]byte, error) {
	e := &wire.Encoder{}
	e.Bool(1, r.Found)
	if r.Found {
		e.Message(2, wire.EncodeConversation(r.Conversation))
	}
	return e.Bytes(), nil
}

func (r *ConversationReply) UnmarshalWire(b []byte) error {
	*r = ConversationReply{}
	return wire.Walk(b, func(f wire.Field) (err error) {
		switch f.Num {
		case 1:
			r.Found = f.Bool()
		case 2:
			r.Conversation, err = wire.DecodeConversation(f.Bytes)
		}
		return err
	})
}

// ConversationList answers ListConversations, oldest first.
type ConversationList struct {
	Conversations []domain.Conversation
}

func (l *ConversationList) MarshalWire() ([]byte, error) {
	e := &wire.Encoder{}
	for _, c := range l.Conversations {
		e.Message(1, wire.EncodeConversation(c))
	}
	return e.Bytes(), nil
}

func (l *ConversationList) UnmarshalWire(b []byte) error {
	*l = ConversationList{}
	return wire.Walk(b, func(f wire.Field) error {
		if f.Num != 1 {
			return nil
		}
		c, err := wire.DecodeConversation(f.Bytes)
		if err != nil {
			return err
		}
		l.Conversations = append(l.Conversations, c)
		return nil
	})
}

// EventBatch carries buffered events to the authoritative node, in routing order.
type EventBatch struct {
	Events []domain.ConversationEvent
}

func (e *EventBatch) MarshalWire() ([]byte, error) {
	enc := &wire.Encoder{}
	for _, ev := range e.Events {
		enc.Message(1, wire.EncodeEvent(ev))
	}
	return enc.Bytes(), nil
}

func (e *EventBatch) UnmarshalWire(b []byte) error {
	*e = EventBatch{}
	return wire.Walk(b, func(f wire.Field) error {
		if f.Num != 1 {
			return nil
		}
		ev, err := wire.DecodeEvent(f.Bytes)
		if err != nil {
			return err
		}
		e.Events = append(e.Events, ev)
		return nil
	})
}

// HistoryRequest is a history query. Cursor fields keep their presence on the wire.
type HistoryRequest struct {
	Query domain.HistoryQuery
}

func (r *HistoryRequest) MarshalWire() ([]byte, error) {
	q := r.Query
	e := &wire.Encoder{}
	return e.String(1, q.Owner).
		String(2, q.With).
		Int64(3, domain.ToMillis(q.Window.Start)).
		Int64(4, domain.ToMillis(q.Window.End)).
		OptionalInt(5, q.Page.Max).
		OptionalInt(6, q.Page.Index).
		OptionalString(7, q.Page.After).
		OptionalString(8, q.Page.Before).
		Bytes(), nil
}

func (r *HistoryRequest) UnmarshalWire(b []byte) error {
	*r = HistoryRequest{}
	q := &r.Query
	err := wire.Walk(b, func(f wire.Field) error {
		switch f.Num {
		case 1:
			q.Owner = f.String()
		case 2:
			q.With = f.String()
		case 3:
			q.Window.Start = domain.FromMillis(f.Int64())
		case 4:
			q.Window.End = domain.FromMillis(f.Int64())
		case 5:
			v := int(f.Int64())
			q.Page.Max = &v
		case 6:
			v := int(f.Int64())
			q.Page.Index = &v
		case 7:
			v := f.String()
			q.Page.After = &v
		case 8:
			v := f.String()
			q.Page.Before = &v
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("decode history request: %w", err)
	}
	return nil
}

// HistoryReply is one page of archived messages.
type HistoryReply struct {
	History domain.History
}

func (r *HistoryReply) MarshalWire() ([]byte, error) {
	e := &wire.Encoder{}
	for _, m := range r.History.Messages {
		e.Message(1, wire.EncodeMessage(m))
	}
	page := r.History.Page
	return e.Int64(2, int64(page.FirstIndex)).
		Int64(3, int64(page.Count)).
		Bool(4, page.Complete).
		Bytes(), nil
}

func (r *HistoryReply) UnmarshalWire(b []byte) error {
	*r = HistoryReply{}
	h := &r.History
	return wire.Walk(b, func(f wire.Field) error {
		switch f.Num {
		case 1:
			m, err := wire.DecodeMessage(f.Bytes)
			if err != nil {
				return err
			}
			h.Messages = append(h.Messages, m)
		case 2:
			h.Page.FirstIndex = int(f.Int64())
		case 3:
			h.Page.Count = int(f.Int64())
		case 4:
			h.Page.Complete = f.Bool()
		}
		return nil
	})
}

// SummaryRequest lists the conversations of Owner with a message in the window.
type SummaryRequest struct {
	Owner  string
	Window domain.Window
	Limit  int
}

func (r *SummaryRequest) MarshalWire() ([]byte, error) {
	e := &wire.Encoder{}
	return e.String(1, r.Owner).
		Int64(2, domain.ToMillis(r.Window.Start)).
		Int64(3, domain.ToMillis(r.Window.End)).
		Int64(4, int64(r.Limit)).
		Bytes(), nil
}

func (r *SummaryRequest) UnmarshalWire(b []byte) error {
	*r = SummaryRequest{}
	return wire.Walk(b, func(f wire.Field) error {
		switch f.Num {
		case 1:
			r.Owner = f.String()
		case 2:
			r.Window.Start = domain.FromMillis(f.Int64())
		case 3:
			r.Window.End = domain.FromMillis(f.Int64())
		case 4:
			r.Limit = int(f.Int64())
		}
		return nil
	})
}

// SummaryList holds one entry per conversation, most recent first.
type SummaryList struct {
	Summaries []domain.ConversationSummary
}

func (l *SummaryList) MarshalWire() ([]byte, error) {
	e := &wire.Encoder{}
	for _, s := range l.Summaries {
		entry := &wire.Encoder{}
		entry.Message(1, wire.EncodeConversation(s.Conversation)).
			Message(2, wire.EncodeMessage(s.Last))
		e.Message(1, entry.Bytes())
	}
	return e.Bytes(), nil
}

func (l *SummaryList) UnmarshalWire(b []byte) error {
	*l = SummaryList{}
	return wire.Walk(b, func(f wire.Field) error {
		if f.Num != 1 {
			return nil
		}
		var s domain.ConversationSummary
		err := wire.Walk(f.Bytes, func(inner wire.Field) (err error) {
			switch inner.Num {
			case 1:
				s.Conversation, err = wire.DecodeConversation(inner.Bytes)
			case 2:
				s.Last, err = wire.DecodeMessage(inner.Bytes)
			}
			return err
		})
		if err != nil {
			return fmt.Errorf("decode summary: %w", err)
		}
		l.Summaries = append(l.Summaries, s)
		return nil
	})
}
