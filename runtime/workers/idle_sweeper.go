package workers

import (
	"chat-archive/contract"
	"chat-archive/domain"
	"chat-archive/observability"
	"context"
	"log/slog"
	"time"
)

// IdleSweeperWorker evicts conversations nobody wrote to for longer than the idle time.
// Evicted conversations stay in the store. A conversation whose write is still
// queued is kept until the archiver persisted it, otherwise the next lookup would
// read a stale or missing record.
type IdleSweeperWorker struct {
	log        *slog.Logger
	directory  contract.IDirectory
	pending    contract.IPendingQueues
	retention  contract.IRetentionSource
	monitoring *observability.MonitoringManager
	interval   time.Duration
	now        func() time.Time
}

func NewIdleSweeperWorker(log *slog.Logger,
	directory contract.IDirectory,
	pending contract.IPendingQueues,
	retention contract.IRetentionSource,
	monitoring *observability.MonitoringManager,
	interval time.Duration) *IdleSweeperWorker {
	return &IdleSweeperWorker{
		log:        log,
		directory:  directory,
		pending:    pending,
		retention:  retention,
		monitoring: monitoring,
		interval:   interval,
		now:        time.Now,
	}
}

func (w *IdleSweeperWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.Sweep()
		}
	}
}

// Sweep returns the number of evicted conversations.
func (w *IdleSweeperWorker) Sweep() int {
	idle := w.retention.Retention().IdleTime
	if idle <= 0 {
		return 0
	}
	now := w.now()
	evicted := w.directory.Evict(func(c domain.Conversation) bool {
		return c.IdleFor(now) > idle && !w.pending.HoldsConversation(c.Key)
	})
	if len(evicted) > 0 {
		w.log.Debug("Idle conversations evicted", "count", len(evicted), "idle_time", idle)
	}
	w.monitoring.AddConversationsEvicted(len(evicted))
	w.monitoring.UpdateActive(w.directory.Count())
	return len(evicted)
}
