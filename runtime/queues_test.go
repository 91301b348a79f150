package runtime

import (
	"chat-archive/domain"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPendingQueues_DrainEmptiesEachQueue(t *testing.T) {
	req := require.New(t)
	pending := NewPendingQueues()
	c := conversationAt("alice@example.com", "bob@example.com", t0)
	m := domain.ArchivedMessage{ID: "m1", ConversationID: c.ID}

	pending.PushNewConversation(c)
	pending.PushNewMessage(m)
	pending.PushUpdatedConversation(c)
	pending.PushStatusUpdate(m)
	req.Equal(4, pending.Len())

	req.Equal([]domain.Conversation{c}, pending.DrainNewConversations())
	req.Equal([]domain.ArchivedMessage{m}, pending.DrainNewMessages())
	req.Equal([]domain.Conversation{c}, pending.DrainUpdatedConversations())
	req.Equal([]domain.ArchivedMessage{m}, pending.DrainStatusUpdates())
	req.Zero(pending.Len())
	req.Empty(pending.DrainNewMessages())
}

func TestPendingQueues_HoldsConversation(t *testing.T) {
	req := require.New(t)
	pending := NewPendingQueues()
	created := conversationAt("alice@example.com", "bob@example.com", t0)
	updated := conversationAt("alice@example.com", "carol@example.com", t0)

	pending.PushNewConversation(created)
	pending.PushUpdatedConversation(updated)
	pending.PushNewMessage(domain.ArchivedMessage{ID: "m1", ConversationID: "other"})

	req.True(pending.HoldsConversation(created.Key))
	req.True(pending.HoldsConversation(updated.Key))
	req.False(pending.HoldsConversation("alice@example.com_dave@example.com"))

	pending.DrainNewConversations()
	pending.DrainUpdatedConversations()
	req.False(pending.HoldsConversation(created.Key))
	req.False(pending.HoldsConversation(updated.Key))
}

func TestPendingQueues_ConcurrentProducers(t *testing.T) {
	req := require.New(t)
	pending := NewPendingQueues()

	var wg sync.WaitGroup
	for p := 0; p < 8; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				pending.PushNewMessage(domain.ArchivedMessage{ID: fmt.Sprintf("%d-%d", p, i)})
			}
		}(p)
	}
	wg.Wait()

	req.Len(pending.DrainNewMessages(), 800)
}

func TestOutboundQueue_KeepsPerKeyOrder(t *testing.T) {
	req := require.New(t)
	queue := NewOutboundQueue()
	event := func(id string) domain.ConversationEvent { return domain.ConversationEvent{MessageID: id} }

	// Given events of two conversations interleaved
	queue.Enqueue("a_b", event("1"))
	queue.Enqueue("a_c", event("2"))
	queue.Enqueue("a_b", event("3"))
	queue.Enqueue("a_c", event("4"))
	req.Equal(4, queue.Len())

	// When drained
	events := queue.Drain()

	// Then each key keeps its arrival order, keys in first-seen order
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.MessageID)
	}
	req.Equal([]string{"1", "3", "2", "4"}, ids)
	req.Zero(queue.Len())
	req.Nil(queue.Drain())
}

func TestKeyLock_SerializesSameKey(t *testing.T) {
	req := require.New(t)
	locks := NewKeyLock()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("alice@example.com_bob@example.com")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	req.Equal(50, counter)
	req.Equal(shardOf("x"), shardOf("x"))
}
