package runtime

import (
	"chat-archive/domain"
	"sort"
	"sync"
)

// Directory maps canonical keys to active conversations.
// Only the authoritative node mutates it. Conversations are values, so callers
// always get a copy and never observe a half-applied update.
type Directory struct {
	mu            sync.RWMutex
	conversations map[string]domain.Conversation
}

func NewDirectory() *Directory {
	return &Directory{conversations: make(map[string]domain.Conversation)}
}

func (d *Directory) Get(key string) (domain.Conversation, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.conversations[key]
	return c, ok
}

// FindByID scans the active conversations for the given id.
func (d *Directory) FindByID(id string) (domain.Conversation, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, c := range d.conversations {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Conversation{}, false
}

func (d *Directory) Upsert(key string, c domain.Conversation) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.conversations[key] = c
}

func (d *Directory) Remove(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.conversations, key)
}

func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.conversations)
}

// All returns the active conversations, oldest first.
func (d *Directory) All() []domain.Conversation {
	d.mu.RLock()
	all := make([]domain.Conversation, 0, len(d.conversations))
	for _, c := range d.conversations {
		all = append(all, c)
	}
	d.mu.RUnlock()
	sortByCreation(all)
	return all
}

func (d *Directory) Evict(match func(domain.Conversation) bool) []domain.Conversation {
	d.mu.Lock()
	defer d.mu.Unlock()
	var evicted []domain.Conversation
	for key, c := range d.conversations {
		if match(c) {
			delete(d.conversations, key)
			evicted = append(evicted, c)
		}
	}
	return evicted
}

// Clear drops every conversation, used when this node loses authority.
func (d *Directory) Clear() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := len(d.conversations)
	d.conversations = make(map[string]domain.Conversation)
	return n
}

func sortByCreation(conversations []domain.Conversation) {
	sort.Slice(conversations, func(i, j int) bool {
		if conversations[i].CreatedAt.Equal(conversations[j].CreatedAt) {
			return conversations[i].ID < conversations[j].ID
		}
		return conversations[i].CreatedAt.Before(conversations[j].CreatedAt)
	})
}
