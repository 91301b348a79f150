package services

import (
	"chat-archive/domain"
	"chat-archive/errors"
	"chat-archive/infrastructure/storage"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
)

// ArchiveSearcher finds archived conversations.
// A plain two-participant lookup goes through the pair entry of the store,
// everything else through the search index.
type ArchiveSearcher struct {
	log           *slog.Logger
	conversations storage.IConversationRepository
	index         storage.IConversationIndex
}

func NewArchiveSearcher(log *slog.Logger, conversations storage.IConversationRepository,
	index storage.IConversationIndex) *ArchiveSearcher {
	return &ArchiveSearcher{log: log, conversations: conversations, index: index}
}

func (s *ArchiveSearcher) Search(ctx context.Context, search domain.ArchiveSearch) ([]domain.Conversation, error) {
	if isPairLookup(search) {
		c, err := s.conversations.FindByKey(domain.PairKey(search.Participants[0], search.Participants[1]))
		if stderrors.Is(err, errors.ErrConversationNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return []domain.Conversation{c}, nil
	}

	ids, err := s.index.Search(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}
	conversations := make([]domain.Conversation, 0, len(ids))
	for _, id := range ids {
		c, err := s.conversations.Get(id)
		if stderrors.Is(err, errors.ErrConversationNotFound) {
			s.log.Warn("Indexed conversation missing from the store", "conversation_id", id)
			continue
		}
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, c)
	}
	return conversations, nil
}

func isPairLookup(search domain.ArchiveSearch) bool {
	return len(search.Participants) == 2 &&
		search.CreatedFrom.IsZero() && search.CreatedTo.IsZero() &&
		search.StartIndex == 0
}
