// Package domain contains core concepts of the archive.
// This file defines archived messages and their delivery status.
// Messages are validated by the domain on construction.
package domain

import (
	"chat-archive/errors"
	"fmt"
	"time"
)

// MessageStatus is the delivery state of a message. The set is closed.
type MessageStatus int

const (
	StatusSent      MessageStatus = 1
	StatusDelivered MessageStatus = 2
	StatusRead      MessageStatus = 3
	StatusFailed    MessageStatus = 4
)

// ParseMessageStatus maps a wire code to a status, rejecting unknown codes.
func ParseMessageStatus(code int) (MessageStatus, error) {
	s := MessageStatus(code)
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %d", errors.ErrUnknownStatus, code)
	}
	return s, nil
}

func (s MessageStatus) Valid() bool {
	switch s {
	case StatusSent, StatusDelivered, StatusRead, StatusFailed:
		return true
	}
	return false
}

// IsUpdate reports whether the status describes a change to an already sent message.
func (s MessageStatus) IsUpdate() bool {
	return s.Valid() && s != StatusSent
}

func (s MessageStatus) String() string {
	switch s {
	case StatusSent:
		return "sent"
	case StatusDelivered:
		return "delivered"
	case StatusRead:
		return "read"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ArchivedMessage is a message persisted in a conversation.
// Body is empty for pure status updates.
type ArchivedMessage struct {
	ID             string
	ConversationID string
	From           string
	To             string
	Body           string
	Status         MessageStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewArchivedMessage builds a well-formed message or fails with ErrInvalidMessage.
// A sent message must carry a body; status updates may not.
func NewArchivedMessage(id, conversationID, from, to, body string, status MessageStatus,
	createdAt, updatedAt time.Time) (ArchivedMessage, error) {
	switch {
	case id == "":
		return ArchivedMessage{}, fmt.Errorf("%w: empty id", errors.ErrInvalidMessage)
	case conversationID == "":
		return ArchivedMessage{}, fmt.Errorf("%w: empty conversation id for %s", errors.ErrInvalidMessage, id)
	case from == "" || to == "":
		return ArchivedMessage{}, fmt.Errorf("%w: missing participant for %s", errors.ErrInvalidMessage, id)
	case !status.Valid():
		return ArchivedMessage{}, fmt.Errorf("%w: %s has status %d", errors.ErrInvalidMessage, id, int(status))
	case ToMillis(createdAt) <= 0 || ToMillis(updatedAt) <= 0:
		return ArchivedMessage{}, fmt.Errorf("%w: %s has no timestamp", errors.ErrInvalidMessage, id)
	case status == StatusSent && body == "":
		return ArchivedMessage{}, fmt.Errorf("%w: sent message %s has no body", errors.ErrInvalidMessage, id)
	}
	return ArchivedMessage{
		ID:             id,
		ConversationID: conversationID,
		From:           from,
		To:             to,
		Body:           body,
		Status:         status,
		CreatedAt:      Millis(createdAt),
		UpdatedAt:      Millis(updatedAt),
	}, nil
}
