package domain

import (
	"chat-archive/errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type EventKind int

const (
	MessageReceived EventKind = iota
	StatusChanged
)

func (k EventKind) String() string {
	if k == StatusChanged {
		return "status_changed"
	}
	return "message_received"
}

// ConversationEvent is the serializable envelope of a message or status event.
// It only exists to cross the cluster boundary and is never persisted.
type ConversationEvent struct {
	MessageID string        `validate:"required"`
	Sender    string        `validate:"required"`
	Receiver  string        `validate:"required"`
	Status    MessageStatus `validate:"required"`
	Timestamp time.Time     `validate:"required"`
	Body      string
}

// Kind derives the event kind from its status.
func (e ConversationEvent) Kind() EventKind {
	if e.Status.IsUpdate() {
		return StatusChanged
	}
	return MessageReceived
}

// Validate rejects events missing a required field, carrying an unknown status
// or dated at or before the epoch. A received message must carry a body.
func (e ConversationEvent) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrMalformedEvent, err)
	}
	if !e.Status.Valid() {
		return fmt.Errorf("%w: status %d", errors.ErrMalformedEvent, int(e.Status))
	}
	if ToMillis(e.Timestamp) <= 0 {
		return fmt.Errorf("%w: message %s is dated %s", errors.ErrMalformedEvent, e.MessageID, e.Timestamp)
	}
	if e.Kind() == MessageReceived && e.Body == "" {
		return fmt.Errorf("%w: message %s has no body", errors.ErrMalformedEvent, e.MessageID)
	}
	return nil
}

// Participants parses sender and receiver.
func (e ConversationEvent) Participants() (Address, Address, error) {
	sender, err := ParseAddress(e.Sender)
	if err != nil {
		return Address{}, Address{}, fmt.Errorf("%w: sender: %v", errors.ErrMalformedEvent, err)
	}
	receiver, err := ParseAddress(e.Receiver)
	if err != nil {
		return Address{}, Address{}, fmt.Errorf("%w: receiver: %v", errors.ErrMalformedEvent, err)
	}
	return sender, receiver, nil
}

// MessageReceivedEvent builds the event for a new chat message.
func MessageReceivedEvent(messageID string, sender, receiver Address, body string, at time.Time) ConversationEvent {
	return ConversationEvent{
		MessageID: messageID,
		Sender:    sender.String(),
		Receiver:  receiver.String(),
		Status:    StatusSent,
		Timestamp: Millis(at),
		Body:      body,
	}
}

// StatusChangedEvent builds the event for a delivery status update.
func StatusChangedEvent(messageID string, sender, receiver Address, status MessageStatus, at time.Time) ConversationEvent {
	return ConversationEvent{
		MessageID: messageID,
		Sender:    sender.String(),
		Receiver:  receiver.String(),
		Status:    status,
		Timestamp: Millis(at),
	}
}
