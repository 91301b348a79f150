//go:generate go run go.uber.org/mock/mockgen -source=archive_service.go -destination=../mocks/mock_archive_service.go -package=mocks
package services

import (
	"chat-archive/contract"
	"chat-archive/domain"
	"chat-archive/infrastructure/storage"
	"context"
	"log/slog"
)

// IArchiveService answers the read-only conversation queries of the cluster.
// Only the authoritative node reads its directory; other nodes ask it.
type IArchiveService interface {
	ConversationCount(ctx context.Context) (int, error)
	Conversation(ctx context.Context, id string) (domain.Conversation, error)
	Conversations(ctx context.Context) ([]domain.Conversation, error)
	ArchivedConversationCount() (int, error)
}

type ArchiveService struct {
	log           *slog.Logger
	membership    contract.IMembership
	directory     contract.IDirectory
	conversations storage.IConversationRepository
	client        contract.IClusterClient
}

func NewArchiveService(log *slog.Logger,
	membership contract.IMembership,
	directory contract.IDirectory,
	conversations storage.IConversationRepository,
	client contract.IClusterClient) *ArchiveService {
	return &ArchiveService{
		log:           log,
		membership:    membership,
		directory:     directory,
		conversations: conversations,
		client:        client,
	}
}

// ConversationCount is the number of active conversations.
func (s *ArchiveService) ConversationCount(ctx context.Context) (int, error) {
	if !s.membership.IsAuthoritative() {
		return s.client.ConversationCount(ctx)
	}
	return s.directory.Count(), nil
}

// Conversation returns an active conversation, or the archived one once evicted.
func (s *ArchiveService) Conversation(ctx context.Context, id string) (domain.Conversation, error) {
	if !s.membership.IsAuthoritative() {
		return s.client.Conversation(ctx, id)
	}
	if c, ok := s.directory.FindByID(id); ok {
		return c, nil
	}
	return s.conversations.Get(id)
}

// Conversations lists the active conversations, oldest first.
func (s *ArchiveService) Conversations(ctx context.Context) ([]domain.Conversation, error) {
	if !s.membership.IsAuthoritative() {
		return s.client.Conversations(ctx)
	}
	return s.directory.All(), nil
}

// ArchivedConversationCount counts the conversations of the local store.
func (s *ArchiveService) ArchivedConversationCount() (int, error) {
	return s.conversations.Count()
}
