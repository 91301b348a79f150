// Package runtime wires the conversation directory, the event router and the
// periodic archive jobs. It owns their lifecycle, not the archiving rules.
package runtime

import (
	"chat-archive/cluster"
	"chat-archive/contract"
	"chat-archive/domain"
	"chat-archive/infrastructure/storage"
	"chat-archive/observability"
	"chat-archive/runtime/workers"
	"context"
	"log/slog"
	"sync"
	"time"
)

type Intervals struct {
	Archive    time.Duration
	IdleSweep  time.Duration
	Purge      time.Duration
	Forward    time.Duration
	Heartbeat  time.Duration
	RPCTimeout time.Duration
}

type Orchestrator struct {
	mu            sync.Mutex
	log           *slog.Logger
	supervisor    contract.ISupervisor
	router        *Router
	directory     *Directory
	pending       *PendingQueues
	outbound      *OutboundQueue
	store         storage.IArchiveStore
	searcher      contract.IConversationSearcher
	conversations storage.IConversationRepository
	messages      storage.IMessageRepository
	membership    *cluster.Membership
	client        contract.IClusterClient
	retention     contract.IRetentionSource
	monitoring    *observability.MonitoringManager
	intervals     Intervals
	archiver      *workers.ArchiverWorker
	sweeper       *workers.IdleSweeperWorker
	started       bool
}

func NewOrchestrator(log *slog.Logger,
	supervisor contract.ISupervisor,
	router *Router,
	directory *Directory,
	pending *PendingQueues,
	outbound *OutboundQueue,
	store storage.IArchiveStore,
	searcher contract.IConversationSearcher,
	conversations storage.IConversationRepository,
	messages storage.IMessageRepository,
	membership *cluster.Membership,
	client contract.IClusterClient,
	retention contract.IRetentionSource,
	monitoring *observability.MonitoringManager,
	intervals Intervals) *Orchestrator {
	return &Orchestrator{
		log:           log,
		supervisor:    supervisor,
		router:        router,
		directory:     directory,
		pending:       pending,
		outbound:      outbound,
		store:         store,
		searcher:      searcher,
		conversations: conversations,
		messages:      messages,
		membership:    membership,
		client:        client,
		retention:     retention,
		monitoring:    monitoring,
		intervals:     intervals,
		archiver:      workers.NewArchiverWorker(log, pending, store, monitoring, intervals.Archive),
		sweeper:       workers.NewIdleSweeperWorker(log, directory, pending, retention, monitoring, intervals.IdleSweep),
	}
}

// Start registers the periodic jobs and blocks until they all stopped.
func (o *Orchestrator) Start(ctx context.Context) error {
	jobs := o.prepareWorkers()

	o.mu.Lock()
	if !o.started {
		o.membership.Subscribe(o.authorityChanged)
		o.started = true
	}
	o.supervisor.Add(jobs...)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers",
		"node_id", o.membership.LocalNodeID(),
		"authoritative", o.membership.IsAuthoritative())
	o.supervisor.Run(ctx)
	return nil
}

func (o *Orchestrator) prepareWorkers() []contract.Worker {
	return []contract.Worker{
		o.archiver,
		o.sweeper,
		workers.NewPurgerWorker(o.log, o.retention, o.searcher, o.conversations, o.messages,
			o.directory, o.monitoring, o.intervals.Purge),
		workers.NewForwarderWorker(o.log, o.outbound, o.membership, o.client, o.router,
			o.monitoring, o.intervals.Forward, o.intervals.RPCTimeout),
		workers.NewHeartbeatWorker(o.log, o.membership, o.directory, o.pending, o.monitoring, o.intervals.Heartbeat),
	}
}

// authorityChanged drops the local view when another node takes over.
// The new authority rebuilds its own view lazily from the store.
func (o *Orchestrator) authorityChanged(authority contract.NodeInfo, local bool) {
	if local {
		o.log.Info("This node is now authoritative", "node_id", authority.ID)
		return
	}
	dropped := o.directory.Clear()
	o.log.Info("Authority moved", "authority", authority.ID, "dropped_conversations", dropped)
}

// RetentionChanged sweeps at once when the idle time got shorter instead of
// waiting for the next tick. A longer one needs nothing.
func (o *Orchestrator) RetentionChanged(previous, current domain.Retention) {
	if current.IdleTime <= 0 || (previous.IdleTime > 0 && current.IdleTime >= previous.IdleTime) {
		return
	}
	evicted := o.sweeper.Sweep()
	o.log.Info("Idle sweep after retention change", "idle_time", current.IdleTime, "evicted", evicted)
}

// Flush triggers an archiving run outside of the schedule.
func (o *Orchestrator) Flush() bool {
	return o.archiver.Flush()
}

// Stop cancels the workers. The archiver drains the queues once more on its way out.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
