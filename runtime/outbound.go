package runtime

import (
	"chat-archive/domain"
	"sync"
)

// OutboundQueue buffers events for the authoritative node, one FIFO list per
// conversation key. Drain keeps each key's events in arrival order and emits
// keys in the order they first appeared.
type OutboundQueue struct {
	mu    sync.Mutex
	order []string
	byKey map[string][]domain.ConversationEvent
	size  int
}

func NewOutboundQueue() *OutboundQueue {
	return &OutboundQueue{byKey: make(map[string][]domain.ConversationEvent)}
}

func (q *OutboundQueue) Enqueue(key string, event domain.ConversationEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.byKey[key]; !ok {
		q.order = append(q.order, key)
	}
	q.byKey[key] = append(q.byKey[key], event)
	q.size++
}

func (q *OutboundQueue) Drain() []domain.ConversationEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.size == 0 {
		return nil
	}
	events := make([]domain.ConversationEvent, 0, q.size)
	for _, key := range q.order {
		events = append(events, q.byKey[key]...)
	}
	q.order = nil
	q.byKey = make(map[string][]domain.ConversationEvent)
	q.size = 0
	return events
}

func (q *OutboundQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}
