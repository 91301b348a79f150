package domain

import (
	"chat-archive/errors"
	"time"
)

// Window bounds a history query by creation time. Zero bounds are open.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within [Start, End].
func (w Window) Contains(t time.Time) bool {
	if !w.Start.IsZero() && t.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && t.After(w.End) {
		return false
	}
	return true
}

// PageRequest is a client page directive. At most one of Index, After and Before is set.
// After and Before hold message ids.
type PageRequest struct {
	Max    *int
	Index  *int
	After  *string
	Before *string
}

// Validate rejects requests setting more than one directive.
func (p PageRequest) Validate() error {
	set := 0
	if p.Index != nil {
		set++
	}
	if p.After != nil {
		set++
	}
	if p.Before != nil {
		set++
	}
	if set > 1 {
		return errors.ErrConflictingCursor
	}
	if p.Index != nil && *p.Index < 0 {
		return errors.ErrInvalidQuery
	}
	if p.Max != nil && *p.Max < 0 {
		return errors.ErrInvalidQuery
	}
	return nil
}

// PageResult is what the resolver reports back to the protocol layer.
type PageResult struct {
	FirstIndex int
	Count      int
	Complete   bool
}

// HistoryQuery asks for the messages exchanged between Owner and With.
type HistoryQuery struct {
	Owner  string
	With   string
	Window Window
	Page   PageRequest
}

// History is one page of archived messages.
type History struct {
	Messages []ArchivedMessage
	Page     PageResult
}

// ConversationSummary is one entry of a conversation list: the conversation and its latest message.
type ConversationSummary struct {
	Conversation Conversation
	Last         ArchivedMessage
}
