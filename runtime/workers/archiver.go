package workers

import (
	"chat-archive/contract"
	"chat-archive/infrastructure/storage"
	"chat-archive/observability"
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/samber/lo"
)

// MaxBatchOps caps the logical operations committed in one physical batch.
const MaxBatchOps = 500

// ArchiverWorker is the only writer draining the pending queues into the store.
// It runs on a fixed interval and once more when stopped.
type ArchiverWorker struct {
	log        *slog.Logger
	pending    contract.IPendingQueues
	store      storage.IArchiveStore
	monitoring *observability.MonitoringManager
	interval   time.Duration
	running    atomic.Bool
}

func NewArchiverWorker(log *slog.Logger,
	pending contract.IPendingQueues,
	store storage.IArchiveStore,
	monitoring *observability.MonitoringManager,
	interval time.Duration) *ArchiverWorker {
	return &ArchiverWorker{
		log:        log,
		pending:    pending,
		store:      store,
		monitoring: monitoring,
		interval:   interval,
	}
}

func (w *ArchiverWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Archiving what is left before stopping", "pending", w.pending.Len())
			w.Flush()
			return ctx.Err()
		case <-ticker.C:
			w.Flush()
		}
	}
}

// Flush drains every queue and writes the content.
// It returns false without doing anything when another run is in progress.
func (w *ArchiverWorker) Flush() bool {
	if !w.running.CompareAndSwap(false, true) {
		w.monitoring.IncrFlushSkipped()
		w.log.Debug("Archiving already in progress, skipping")
		return false
	}
	defer w.running.Store(false)

	started := time.Now()
	ops := w.drain()
	if len(ops) > 0 {
		written, failed := w.write(ops)
		w.monitoring.AddOpsWritten(written)
		w.monitoring.AddWriteFailures(failed)
		w.log.Debug("Archiving done", "written", written, "failed", failed, "took", time.Since(started))
	}
	w.monitoring.FlushDone(started, w.pending.Len())
	return true
}

// drain takes everything queued, in write order.
func (w *ArchiverWorker) drain() []storage.Op {
	var ops []storage.Op
	for _, c := range w.pending.DrainNewConversations() {
		ops = append(ops, storage.ConversationOp(storage.InsertConversation, c))
	}
	for _, m := range w.pending.DrainNewMessages() {
		ops = append(ops, storage.MessageOp(storage.InsertMessage, m))
	}
	for _, c := range w.pending.DrainUpdatedConversations() {
		ops = append(ops, storage.ConversationOp(storage.UpdateConversation, c))
	}
	for _, m := range w.pending.DrainStatusUpdates() {
		ops = append(ops, storage.MessageOp(storage.UpdateMessageStatus, m))
	}
	return ops
}

// write commits ops in batches when the store supports it, one by one otherwise.
// A failed batch is logged and not retried.
func (w *ArchiverWorker) write(ops []storage.Op) (written, failed int) {
	if !w.store.Batching() {
		for _, op := range ops {
			if err := w.store.Write(op); err != nil {
				w.log.Error("Unable to archive", "op", op.Kind.String(), "error", err)
				failed++
				continue
			}
			written++
		}
		return written, failed
	}
	for _, batch := range lo.Chunk(ops, MaxBatchOps) {
		if err := w.store.WriteBatch(batch); err != nil {
			w.log.Error("Unable to archive batch", "size", len(batch), "error", err)
			failed += len(batch)
			continue
		}
		written += len(batch)
	}
	return written, failed
}
