package domain

import (
	"fmt"
	"time"
)

const DefaultSearchResults = 15

// ArchiveSearch filters archived conversations.
// With one participant it matches every conversation of that participant,
// with two it matches the conversation between them.
type ArchiveSearch struct {
	Participants []string
	// CreatedFrom and CreatedTo bound CreatedAt inclusively; zero means open.
	CreatedFrom time.Time
	CreatedTo   time.Time
	StartIndex  int
	NumResults  int
}

// NewArchiveSearch returns a search with the default page size.
func NewArchiveSearch() ArchiveSearch {
	return ArchiveSearch{NumResults: DefaultSearchResults}
}

// WithParticipants restricts the search to conversations of at most two participants.
func (s ArchiveSearch) WithParticipants(participants ...Address) (ArchiveSearch, error) {
	if len(participants) > 2 {
		return s, fmt.Errorf("cannot search on more than two participants")
	}
	s.Participants = make([]string, 0, len(participants))
	for _, p := range participants {
		s.Participants = append(s.Participants, p.Bare())
	}
	return s, nil
}

// Matches applies the search filters to a conversation.
func (s ArchiveSearch) Matches(c Conversation) bool {
	for _, p := range s.Participants {
		if !c.HasParticipant(p) {
			return false
		}
	}
	if !s.CreatedFrom.IsZero() && c.CreatedAt.Before(s.CreatedFrom) {
		return false
	}
	if !s.CreatedTo.IsZero() && c.CreatedAt.After(s.CreatedTo) {
		return false
	}
	return true
}

// Retention bounds how long conversations live in memory and on disk.
// Zero disables the corresponding sweep.
type Retention struct {
	IdleTime time.Duration
	MaxAge   time.Duration
}
