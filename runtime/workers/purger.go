package workers

import (
	"chat-archive/contract"
	"chat-archive/domain"
	"chat-archive/infrastructure/storage"
	"chat-archive/observability"
	"context"
	"log/slog"
	"time"
)

// PurgerWorker deletes archived conversations older than the max age.
// Each conversation is deleted on its own: messages first, then the record.
// An interrupted run leaves the remaining conversations for the next one.
type PurgerWorker struct {
	log           *slog.Logger
	retention     contract.IRetentionSource
	searcher      contract.IConversationSearcher
	conversations storage.IConversationRepository
	messages      storage.IMessageRepository
	directory     contract.IDirectory
	monitoring    *observability.MonitoringManager
	interval      time.Duration
	now           func() time.Time
}

func NewPurgerWorker(log *slog.Logger,
	retention contract.IRetentionSource,
	searcher contract.IConversationSearcher,
	conversations storage.IConversationRepository,
	messages storage.IMessageRepository,
	directory contract.IDirectory,
	monitoring *observability.MonitoringManager,
	interval time.Duration) *PurgerWorker {
	return &PurgerWorker{
		log:           log,
		retention:     retention,
		searcher:      searcher,
		conversations: conversations,
		messages:      messages,
		directory:     directory,
		monitoring:    monitoring,
		interval:      interval,
		now:           time.Now,
	}
}

func (w *PurgerWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.Purge(ctx)
		}
	}
}

// Purge returns the number of deleted conversations.
func (w *PurgerWorker) Purge(ctx context.Context) int {
	maxAge := w.retention.Retention().MaxAge
	if maxAge <= 0 {
		return 0
	}
	cutoff := w.now().Add(-maxAge)
	expired, err := w.searcher.Search(ctx, domain.ArchiveSearch{CreatedTo: cutoff})
	if err != nil {
		w.log.Error("Unable to find expired conversations", "cutoff", cutoff, "error", err)
		return 0
	}

	deleted := 0
	for _, c := range expired {
		if ctx.Err() != nil {
			break
		}
		if _, err = w.messages.DeleteByConversation(c.ID); err != nil {
			w.log.Error("Unable to delete messages", "conversation_id", c.ID, "error", err)
			continue
		}
		if err = w.conversations.Delete(c.ID); err != nil {
			w.log.Error("Unable to delete conversation", "conversation_id", c.ID, "error", err)
			continue
		}
		if active, ok := w.directory.Get(c.Key); ok && active.ID == c.ID {
			w.directory.Remove(c.Key)
		}
		w.log.Debug("Deleted conversation", "conversation_id", c.ID, "created_at", c.CreatedAt, "cutoff", cutoff)
		deleted++
	}
	if deleted > 0 {
		w.log.Info("Deleted expired conversations", "count", deleted, "cutoff", cutoff)
	}
	w.monitoring.AddConversationsPurged(deleted)
	return deleted
}
