package workers

import (
	"chat-archive/contract"
	"chat-archive/observability"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HeartbeatWorker periodically logs process health and the archive counters.
type HeartbeatWorker struct {
	log        *slog.Logger
	membership contract.IMembership
	directory  contract.IDirectory
	pending    contract.IPendingQueues
	monitoring *observability.MonitoringManager
	interval   time.Duration
}

func NewHeartbeatWorker(log *slog.Logger,
	membership contract.IMembership,
	directory contract.IDirectory,
	pending contract.IPendingQueues,
	monitoring *observability.MonitoringManager,
	interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{
		log:        log,
		membership: membership,
		directory:  directory,
		pending:    pending,
		monitoring: monitoring,
		interval:   interval,
	}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.beat(p)
		}
	}
}

func (w *HeartbeatWorker) beat(p *process.Process) {
	w.monitoring.UpdateActive(w.directory.Count())
	stats := w.monitoring.GetLatest()

	attrs := []any{
		"node_id", w.membership.LocalNodeID(),
		"authoritative", w.membership.IsAuthoritative(),
		"active_conversations", stats.ActiveCount,
		"pending_ops", w.pending.Len(),
		"events_routed", stats.EventsRouted,
		"events_forwarded", stats.EventsForwarded,
		"events_dropped", stats.EventsDropped,
		"ops_written", stats.OpsWritten,
		"write_failures", stats.WriteFailures,
		"flush_skipped", stats.FlushSkipped,
		"evicted", stats.ConversationsEvicted,
		"purged", stats.ConversationsPurged,
		"alloc_mem_mb", stats.AllocMemMb,
	}
	rss, cpu, status, err := selfStats(p)
	if err != nil {
		w.log.Warn("Failed to collect self stats", "err", err)
	} else {
		attrs = append(attrs, "rss_bytes", rss, "cpu_percent", cpu, "status", status)
	}
	w.log.Info("Heartbeat", attrs...)
}

// selfStats retrieves memory, CPU and OS status of the given process.
func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}
	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
