package runtime

import (
	"chat-archive/domain"
	"sync"
)

// fifo is an unbounded multi-producer queue drained all at once by a single consumer.
type fifo[T any] struct {
	mu    sync.Mutex
	items []T
}

func (q *fifo[T]) push(item T) {
	q.mu.Lock()
	q.items = append(q.items, item)
	q.mu.Unlock()
}

func (q *fifo[T]) drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}

func (q *fifo[T]) any(match func(T) bool) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, item := range q.items {
		if match(item) {
			return true
		}
	}
	return false
}

func (q *fifo[T]) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// PendingQueues holds what the batch writer still has to persist.
// Pushes never block on the store.
type PendingQueues struct {
	newConversations     fifo[domain.Conversation]
	newMessages          fifo[domain.ArchivedMessage]
	updatedConversations fifo[domain.Conversation]
	statusUpdates        fifo[domain.ArchivedMessage]
}

func NewPendingQueues() *PendingQueues {
	return &PendingQueues{}
}

func (p *PendingQueues) PushNewConversation(c domain.Conversation) { p.newConversations.push(c) }
func (p *PendingQueues) PushNewMessage(m domain.ArchivedMessage)   { p.newMessages.push(m) }
func (p *PendingQueues) PushUpdatedConversation(c domain.Conversation) {
	p.updatedConversations.push(c)
}
func (p *PendingQueues) PushStatusUpdate(m domain.ArchivedMessage) { p.statusUpdates.push(m) }

func (p *PendingQueues) DrainNewConversations() []domain.Conversation {
	return p.newConversations.drain()
}
func (p *PendingQueues) DrainNewMessages() []domain.ArchivedMessage { return p.newMessages.drain() }
func (p *PendingQueues) DrainUpdatedConversations() []domain.Conversation {
	return p.updatedConversations.drain()
}
func (p *PendingQueues) DrainStatusUpdates() []domain.ArchivedMessage { return p.statusUpdates.drain() }

// Len is the total number of pending items.
func (p *PendingQueues) Len() int {
	return p.newConversations.len() + p.newMessages.len() +
		p.updatedConversations.len() + p.statusUpdates.len()
}

// HoldsConversation reports whether an insert or an update of the conversation
// keyed by key is still waiting for the batch writer.
func (p *PendingQueues) HoldsConversation(key string) bool {
	sameKey := func(c domain.Conversation) bool { return c.Key == key }
	return p.newConversations.any(sameKey) || p.updatedConversations.any(sameKey)
}
