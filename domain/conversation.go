package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tick is the smallest time step the archive distinguishes.
// Timestamps are stored with millisecond precision.
const Tick = time.Millisecond

// Conversation is a tracked two-party chat session.
type Conversation struct {
	ID             string
	Key            string
	ParticipantOne string
	ParticipantTwo string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	MessageCount   int
}

// NewConversation opens a conversation for a pair whose first message arrived at firstMessageAt.
// The conversation is dated one tick earlier so it never appears created after its first message.
func NewConversation(sender, receiver Address, firstMessageAt time.Time) Conversation {
	at := Millis(firstMessageAt).Add(-Tick)
	return Conversation{
		ID:             uuid.NewString(),
		Key:            ConversationKey(sender, receiver),
		ParticipantOne: sender.Bare(),
		ParticipantTwo: receiver.Bare(),
		CreatedAt:      at,
		UpdatedAt:      at,
	}
}

// MessageReceived records one more message in the conversation.
func (c *Conversation) MessageReceived(at time.Time) {
	at = Millis(at)
	if at.Before(c.CreatedAt) {
		at = c.CreatedAt
	}
	c.UpdatedAt = at
	c.MessageCount++
}

// IdleFor reports how long the conversation has been untouched.
func (c Conversation) IdleFor(now time.Time) time.Duration {
	return now.Sub(c.UpdatedAt)
}

// HasParticipant reports whether the bare address takes part in the conversation.
func (c Conversation) HasParticipant(bare string) bool {
	return c.ParticipantOne == bare || c.ParticipantTwo == bare
}

// Peer returns the other participant of the conversation.
func (c Conversation) Peer(bare string) string {
	if c.ParticipantOne == bare {
		return c.ParticipantTwo
	}
	return c.ParticipantOne
}

// Millis truncates t to the archive precision and normalizes it to UTC.
func Millis(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.UnixMilli(t.UnixMilli()).UTC()
}

// FromMillis converts a stored epoch millisecond value back to a time.
func FromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

// ToMillis is the inverse of FromMillis.
func ToMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}
