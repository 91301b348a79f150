package workers

import (
	"chat-archive/contract"
	"chat-archive/observability"
	"context"
	"log/slog"
	"time"
)

// ForwarderWorker ships the events buffered on a non-authoritative node to the
// authoritative one. A batch the authority cannot take is dropped.
type ForwarderWorker struct {
	log        *slog.Logger
	outbound   contract.IOutboundQueue
	membership contract.IMembership
	client     contract.IClusterClient
	applier    contract.IEventApplier
	monitoring *observability.MonitoringManager
	interval   time.Duration
	timeout    time.Duration
}

func NewForwarderWorker(log *slog.Logger,
	outbound contract.IOutboundQueue,
	membership contract.IMembership,
	client contract.IClusterClient,
	applier contract.IEventApplier,
	monitoring *observability.MonitoringManager,
	interval, timeout time.Duration) *ForwarderWorker {
	return &ForwarderWorker{
		log:        log,
		outbound:   outbound,
		membership: membership,
		client:     client,
		applier:    applier,
		monitoring: monitoring,
		interval:   interval,
		timeout:    timeout,
	}
}

func (w *ForwarderWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Forward(context.WithoutCancel(ctx))
			return ctx.Err()
		case <-ticker.C:
			w.Forward(ctx)
		}
	}
}

// Forward sends everything buffered and returns the number of events handed over.
// Events buffered before this node became authoritative are applied locally.
func (w *ForwarderWorker) Forward(ctx context.Context) int {
	events := w.outbound.Drain()
	if len(events) == 0 {
		return 0
	}

	if w.membership.IsAuthoritative() {
		applied := 0
		for _, event := range events {
			if err := w.applier.Apply(ctx, event); err != nil {
				w.log.Warn("Unable to apply buffered event", "message_id", event.MessageID, "error", err)
				w.monitoring.IncrEventsDropped()
				continue
			}
			applied++
		}
		return applied
	}

	callCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	if err := w.client.ApplyEvents(callCtx, events); err != nil {
		w.log.Error("Unable to forward events to the authoritative node", "count", len(events), "error", err)
		for range events {
			w.monitoring.IncrEventsDropped()
		}
		return 0
	}
	w.monitoring.AddEventsForwarded(len(events))
	return len(events)
}
