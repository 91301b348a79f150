package observability

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// ArchiveStats is a point-in-time copy of the archive counters.
type ArchiveStats struct {
	EventsRouted         uint64 `json:"events_routed"`
	EventsForwarded      uint64 `json:"events_forwarded"`
	EventsDropped        uint64 `json:"events_dropped"`
	ConversationsCreated uint64 `json:"conversations_created"`
	MessagesQueued       uint64 `json:"messages_queued"`
	OpsWritten           uint64 `json:"ops_written"`
	FlushRuns            uint64 `json:"flush_runs"`
	FlushSkipped         uint64 `json:"flush_skipped"`
	WriteFailures        uint64 `json:"write_failures"`
	ConversationsEvicted uint64 `json:"conversations_evicted"`
	ConversationsPurged  uint64 `json:"conversations_purged"`

	PendingOps    int       `json:"pending_ops"`
	ActiveCount   int       `json:"active_count"`
	LastFlush     time.Time `json:"last_flush"`
	LastFlushTook string    `json:"last_flush_took"`

	AllocMemMb uint64 `json:"alloc_mem_mb"`
	NumGC      uint32 `json:"num_gc"`
}

// MonitoringManager collects archive counters shared by the router and the workers.
// Counters are lock-free; gauges and the last flush are guarded by mu.
type MonitoringManager struct {
	log *slog.Logger
	mu  sync.RWMutex

	eventsRouted         atomic.Uint64
	eventsForwarded      atomic.Uint64
	eventsDropped        atomic.Uint64
	conversationsCreated atomic.Uint64
	messagesQueued       atomic.Uint64
	opsWritten           atomic.Uint64
	flushRuns            atomic.Uint64
	flushSkipped         atomic.Uint64
	writeFailures        atomic.Uint64
	conversationsEvicted atomic.Uint64
	conversationsPurged  atomic.Uint64

	pendingOps    int
	activeCount   int
	lastFlush     time.Time
	lastFlushTook time.Duration
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{log: log}
}

func (mm *MonitoringManager) IncrEventsRouted()         { mm.eventsRouted.Add(1) }
func (mm *MonitoringManager) IncrEventsDropped()        { mm.eventsDropped.Add(1) }
func (mm *MonitoringManager) IncrConversationsCreated() { mm.conversationsCreated.Add(1) }
func (mm *MonitoringManager) IncrMessagesQueued()       { mm.messagesQueued.Add(1) }
func (mm *MonitoringManager) IncrFlushSkipped()         { mm.flushSkipped.Add(1) }

func (mm *MonitoringManager) AddEventsForwarded(n int)      { mm.eventsForwarded.Add(uint64(n)) }
func (mm *MonitoringManager) AddOpsWritten(n int)           { mm.opsWritten.Add(uint64(n)) }
func (mm *MonitoringManager) AddWriteFailures(n int)        { mm.writeFailures.Add(uint64(n)) }
func (mm *MonitoringManager) AddConversationsEvicted(n int) { mm.conversationsEvicted.Add(uint64(n)) }
func (mm *MonitoringManager) AddConversationsPurged(n int)  { mm.conversationsPurged.Add(uint64(n)) }

// FlushDone records the end of an archiving run.
func (mm *MonitoringManager) FlushDone(started time.Time, pending int) {
	mm.flushRuns.Add(1)
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.lastFlush = started
	mm.lastFlushTook = time.Since(started)
	mm.pendingOps = pending
}

func (mm *MonitoringManager) UpdateActive(count int) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.activeCount = count
}

func (mm *MonitoringManager) GetLatest() ArchiveStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return ArchiveStats{
		EventsRouted:         mm.eventsRouted.Load(),
		EventsForwarded:      mm.eventsForwarded.Load(),
		EventsDropped:        mm.eventsDropped.Load(),
		ConversationsCreated: mm.conversationsCreated.Load(),
		MessagesQueued:       mm.messagesQueued.Load(),
		OpsWritten:           mm.opsWritten.Load(),
		FlushRuns:            mm.flushRuns.Load(),
		FlushSkipped:         mm.flushSkipped.Load(),
		WriteFailures:        mm.writeFailures.Load(),
		ConversationsEvicted: mm.conversationsEvicted.Load(),
		ConversationsPurged:  mm.conversationsPurged.Load(),
		PendingOps:           mm.pendingOps,
		ActiveCount:          mm.activeCount,
		LastFlush:            mm.lastFlush,
		LastFlushTook:        mm.lastFlushTook.String(),
		AllocMemMb:           m.Alloc / 1024 / 1024,
		NumGC:                m.NumGC,
	}
}
