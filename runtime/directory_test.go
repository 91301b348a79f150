package runtime

import (
	"chat-archive/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func conversationAt(a, b string, at time.Time) domain.Conversation {
	return domain.NewConversation(domain.MustParseAddress(a), domain.MustParseAddress(b), at)
}

func TestDirectory_UpsertGetRemove(t *testing.T) {
	req := require.New(t)
	directory := NewDirectory()
	c := conversationAt("alice@example.com", "bob@example.com", t0)

	// Given a conversation is tracked
	directory.Upsert(c.Key, c)

	// Then it can be found by key and by id
	found, ok := directory.Get(c.Key)
	req.True(ok)
	req.Equal(c, found)
	found, ok = directory.FindByID(c.ID)
	req.True(ok)
	req.Equal(c.Key, found.Key)
	req.Equal(1, directory.Count())

	// When it is removed
	directory.Remove(c.Key)

	// Then it is gone
	_, ok = directory.Get(c.Key)
	req.False(ok)
	_, ok = directory.FindByID(c.ID)
	req.False(ok)
}

func TestDirectory_AllIsOrderedByCreation(t *testing.T) {
	req := require.New(t)
	directory := NewDirectory()
	late := conversationAt("alice@example.com", "bob@example.com", t0.Add(time.Hour))
	early := conversationAt("alice@example.com", "carol@example.com", t0)
	directory.Upsert(late.Key, late)
	directory.Upsert(early.Key, early)

	all := directory.All()
	req.Len(all, 2)
	req.Equal(early.ID, all[0].ID)
	req.Equal(late.ID, all[1].ID)
}

func TestDirectory_EvictAndClear(t *testing.T) {
	req := require.New(t)
	directory := NewDirectory()
	idle := conversationAt("alice@example.com", "bob@example.com", t0)
	busy := conversationAt("alice@example.com", "carol@example.com", t0)
	busy.MessageReceived(t0.Add(10 * time.Minute))
	directory.Upsert(idle.Key, idle)
	directory.Upsert(busy.Key, busy)

	// When conversations untouched for 5 minutes are evicted
	now := t0.Add(12 * time.Minute)
	evicted := directory.Evict(func(c domain.Conversation) bool { return c.IdleFor(now) > 5*time.Minute })

	// Then only the idle one is gone
	req.Len(evicted, 1)
	req.Equal(idle.ID, evicted[0].ID)
	req.Equal(1, directory.Count())

	req.Equal(1, directory.Clear())
	req.Zero(directory.Count())
}
