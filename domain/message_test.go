package domain

import (
	"chat-archive/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewArchivedMessage(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		id      string
		convID  string
		from    string
		to      string
		body    string
		status  MessageStatus
		at      time.Time
		wantErr bool
	}{
		{"sent with body", "m1", "c1", "a@x.org", "b@x.org", "hello", StatusSent, at, false},
		{"sent without body", "m1", "c1", "a@x.org", "b@x.org", "", StatusSent, at, true},
		{"delivered without body", "m1", "c1", "a@x.org", "b@x.org", "", StatusDelivered, at, false},
		{"read without body", "m1", "c1", "a@x.org", "b@x.org", "", StatusRead, at, false},
		{"missing id", "", "c1", "a@x.org", "b@x.org", "hello", StatusSent, at, true},
		{"missing conversation", "m1", "", "a@x.org", "b@x.org", "hello", StatusSent, at, true},
		{"missing sender", "m1", "c1", "", "b@x.org", "hello", StatusSent, at, true},
		{"unknown status", "m1", "c1", "a@x.org", "b@x.org", "hello", MessageStatus(42), at, true},
		{"zero timestamp", "m1", "c1", "a@x.org", "b@x.org", "hello", StatusSent, time.Time{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			m, err := NewArchivedMessage(tc.id, tc.convID, tc.from, tc.to, tc.body, tc.status, tc.at, tc.at)
			if tc.wantErr {
				req.ErrorIs(err, errors.ErrInvalidMessage)
				req.Equal(ArchivedMessage{}, m)
				return
			}
			req.NoError(err)
			req.Equal(tc.id, m.ID)
			req.Equal(tc.status, m.Status)
		})
	}
}

func TestParseMessageStatus(t *testing.T) {
	req := require.New(t)

	s, err := ParseMessageStatus(3)
	req.NoError(err)
	req.Equal(StatusRead, s)
	req.True(s.IsUpdate())
	req.False(StatusSent.IsUpdate())

	_, err = ParseMessageStatus(0)
	req.ErrorIs(err, errors.ErrUnknownStatus)
	_, err = ParseMessageStatus(99)
	req.ErrorIs(err, errors.ErrUnknownStatus)
}

func TestConversationEvent_Validate(t *testing.T) {
	req := require.New(t)
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	alice, bob := MustParseAddress("alice@x.org"), MustParseAddress("bob@x.org")

	received := MessageReceivedEvent("m1", alice, bob, "hi", at)
	req.NoError(received.Validate())
	req.Equal(MessageReceived, received.Kind())

	update := StatusChangedEvent("m1", bob, alice, StatusRead, at)
	req.NoError(update.Validate())
	req.Equal(StatusChanged, update.Kind())

	noID := received
	noID.MessageID = ""
	req.ErrorIs(noID.Validate(), errors.ErrMalformedEvent)

	noStatus := received
	noStatus.Status = 0
	req.ErrorIs(noStatus.Validate(), errors.ErrMalformedEvent)

	badStatus := received
	badStatus.Status = 17
	req.ErrorIs(badStatus.Validate(), errors.ErrMalformedEvent)

	noBody := received
	noBody.Body = ""
	req.ErrorIs(noBody.Validate(), errors.ErrMalformedEvent)
}

func TestPageRequest_Validate(t *testing.T) {
	req := require.New(t)
	index, after := 2, "m4"

	req.NoError(PageRequest{}.Validate())
	req.NoError(PageRequest{Index: &index}.Validate())
	req.ErrorIs(PageRequest{Index: &index, After: &after}.Validate(), errors.ErrConflictingCursor)
}
