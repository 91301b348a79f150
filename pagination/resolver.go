// Package pagination turns a client page request into an offset and a limit
// over the messages of one conversation, ordered by creation time.
package pagination

import (
	"chat-archive/domain"
	"fmt"
	"time"
)

const DefaultMaxMessages = 100

// MessageCounter is the part of the message store the resolver needs.
type MessageCounter interface {
	Count(conversationID string, window domain.Window) (int, error)
	CountBefore(conversationID string, window domain.Window, before time.Time) (int, error)
	Lookup(messageID string) (domain.ArchivedMessage, error)
}

// Page is a resolved request. Offset is zero-based.
type Page struct {
	Offset   int
	Limit    int
	Total    int
	Complete bool
	Reverse  bool
}

// Result is what gets reported back to the client: Count is the number of
// messages in the whole window, not on the page.
func (p Page) Result() domain.PageResult {
	return domain.PageResult{FirstIndex: p.Offset, Count: p.Total, Complete: p.Complete}
}

type Resolver struct {
	counter    MessageCounter
	defaultMax int
}

func NewResolver(counter MessageCounter, defaultMax int) *Resolver {
	if defaultMax <= 0 {
		defaultMax = DefaultMaxMessages
	}
	return &Resolver{counter: counter, defaultMax: defaultMax}
}

// Resolve computes the page of a history request. The total is counted once
// over the window; after and before cursors are counted within the same window.
func (r *Resolver) Resolve(conversationID string, window domain.Window, req domain.PageRequest) (Page, error) {
	if err := req.Validate(); err != nil {
		return Page{}, err
	}
	limit := r.defaultMax
	if req.Max != nil {
		limit = *req.Max
	}
	total, err := r.counter.Count(conversationID, window)
	if err != nil {
		return Page{}, fmt.Errorf("count messages of %s: %w", conversationID, err)
	}

	page := Page{Limit: limit, Total: total}
	switch {
	case req.Index != nil:
		page.Offset = *req.Index
	case req.After != nil:
		before, err := r.countBefore(conversationID, window, *req.After)
		if err != nil {
			return Page{}, err
		}
		page.Offset = before + 1
	case req.Before != nil:
		before, err := r.countBefore(conversationID, window, *req.Before)
		if err != nil {
			return Page{}, err
		}
		page.Offset = max(before-limit, 0)
		if before < limit {
			page.Limit = before
		}
		page.Reverse = true
	}
	page.Complete = isLastPage(page)
	return page, nil
}

func (r *Resolver) countBefore(conversationID string, window domain.Window, messageID string) (int, error) {
	cursor, err := r.counter.Lookup(messageID)
	if err != nil {
		return 0, err
	}
	return r.counter.CountBefore(conversationID, window, cursor.CreatedAt)
}

// isLastPage: a reverse page is the last one once it starts at the first message,
// a forward one once it reaches the total.
func isLastPage(p Page) bool {
	if p.Reverse {
		return p.Offset == 0
	}
	return p.Offset+p.Limit >= p.Total
}
