//go:generate go run go.uber.org/mock/mockgen -source=history_service.go -destination=../mocks/mock_history_service.go -package=mocks
package services

import (
	"chat-archive/contract"
	"chat-archive/domain"
	"chat-archive/errors"
	"chat-archive/infrastructure/storage"
	"chat-archive/pagination"
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/samber/lo"
)

type IHistoryService interface {
	History(ctx context.Context, query domain.HistoryQuery) (domain.History, error)
	ListConversations(ctx context.Context, owner string, window domain.Window, limit int) ([]domain.ConversationSummary, error)
}

type HistoryService struct {
	log      *slog.Logger
	searcher contract.IConversationSearcher
	messages storage.IMessageRepository
	resolver *pagination.Resolver
}

func NewHistoryService(log *slog.Logger,
	searcher contract.IConversationSearcher,
	messages storage.IMessageRepository,
	maxMessages int) *HistoryService {
	return &HistoryService{
		log:      log,
		searcher: searcher,
		messages: messages,
		resolver: pagination.NewResolver(messages, maxMessages),
	}
}

// History returns one page of the messages exchanged between the owner and the peer.
// An unknown peer or an unknown pair gives an empty, complete page.
func (s *HistoryService) History(ctx context.Context, query domain.HistoryQuery) (domain.History, error) {
	if err := query.Page.Validate(); err != nil {
		return domain.History{}, err
	}
	if query.With == "" {
		return domain.History{Page: domain.PageResult{Complete: true}}, nil
	}
	owner, err := domain.ParseAddress(query.Owner)
	if err != nil {
		return domain.History{}, fmt.Errorf("%w: owner: %v", errors.ErrInvalidQuery, err)
	}
	with, err := domain.ParseAddress(query.With)
	if err != nil {
		return domain.History{}, fmt.Errorf("%w: with: %v", errors.ErrInvalidQuery, err)
	}

	search, err := domain.NewArchiveSearch().WithParticipants(owner, with)
	if err != nil {
		return domain.History{}, err
	}
	search.NumResults = 1
	found, err := s.searcher.Search(ctx, search)
	if err != nil {
		return domain.History{}, err
	}
	if len(found) == 0 {
		return domain.History{Page: domain.PageResult{Complete: true}}, nil
	}
	c := found[0]

	page, err := s.resolver.Resolve(c.ID, query.Window, query.Page)
	if err != nil {
		return domain.History{}, err
	}
	messages, err := s.messages.Range(c.ID, query.Window, page.Offset, page.Limit)
	if err != nil {
		return domain.History{}, fmt.Errorf("read messages of %s: %w", c.ID, err)
	}
	if len(messages) > page.Limit {
		messages = messages[:page.Limit]
	}
	s.log.Debug("History page",
		"conversation_id", c.ID,
		"first_index", page.Offset,
		"count", len(messages),
		"total", page.Total,
		"complete", page.Complete)
	return domain.History{Messages: messages, Page: page.Result()}, nil
}

// ListConversations returns the conversations of the owner that have a message in the window,
// most recent first.
func (s *HistoryService) ListConversations(ctx context.Context, owner string, window domain.Window,
	limit int) ([]domain.ConversationSummary, error) {
	address, err := domain.ParseAddress(owner)
	if err != nil {
		return nil, fmt.Errorf("%w: owner: %v", errors.ErrInvalidQuery, err)
	}
	if limit <= 0 {
		limit = domain.DefaultSearchResults
	}
	search, err := domain.ArchiveSearch{}.WithParticipants(address)
	if err != nil {
		return nil, err
	}
	conversations, err := s.searcher.Search(ctx, search)
	if err != nil {
		return nil, err
	}

	var summaries []domain.ConversationSummary
	for _, c := range conversations {
		last, ok, err := s.messages.Last(c.ID, window)
		if err != nil {
			return nil, fmt.Errorf("last message of %s: %w", c.ID, err)
		}
		if ok {
			summaries = append(summaries, domain.ConversationSummary{Conversation: c, Last: last})
		}
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Last.CreatedAt.After(summaries[j].Last.CreatedAt)
	})
	return lo.Subset(summaries, 0, uint(limit)), nil
}
