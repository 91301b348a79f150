package runtime

import (
	"chat-archive/contract"
	"chat-archive/domain"
	"chat-archive/errors"
	"chat-archive/infrastructure/storage"
	"chat-archive/observability"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Router turns inbound message and status events into directory updates and
// persistence deltas. On a node that is not authoritative it only buffers the
// events for the authoritative one.
type Router struct {
	log         *slog.Logger
	directory   contract.IDirectory
	locks       *KeyLock
	pending     contract.IPendingQueues
	outbound    contract.IOutboundQueue
	store       storage.IArchiveStore
	searcher    contract.IConversationSearcher
	membership  contract.IMembership
	eligibility *Eligibility
	monitoring  *observability.MonitoringManager

	mu        sync.RWMutex
	listeners []contract.ConversationListener
}

func NewRouter(log *slog.Logger,
	directory contract.IDirectory,
	pending contract.IPendingQueues,
	outbound contract.IOutboundQueue,
	store storage.IArchiveStore,
	searcher contract.IConversationSearcher,
	membership contract.IMembership,
	eligibility *Eligibility,
	monitoring *observability.MonitoringManager) *Router {
	return &Router{
		log:         log,
		directory:   directory,
		locks:       NewKeyLock(),
		pending:     pending,
		outbound:    outbound,
		store:       store,
		searcher:    searcher,
		membership:  membership,
		eligibility: eligibility,
		monitoring:  monitoring,
	}
}

func (r *Router) AddListener(l contract.ConversationListener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, l)
}

func (r *Router) RemoveListener(l contract.ConversationListener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.listeners {
		if existing == l {
			r.listeners = append(r.listeners[:i], r.listeners[i+1:]...)
			return
		}
	}
}

// Route is the entry point for events delivered by the chat server.
// Archiving is best-effort: failures are logged and never reach the caller.
func (r *Router) Route(ctx context.Context, event domain.ConversationEvent) {
	if err := event.Validate(); err != nil {
		r.drop("Discarding malformed event", err, event)
		return
	}
	sender, receiver, err := event.Participants()
	if err != nil {
		r.drop("Discarding malformed event", err, event)
		return
	}
	if !r.eligibility.IsConversation(sender, receiver) {
		r.log.Debug("Not archived", "sender", event.Sender, "receiver", event.Receiver)
		return
	}
	r.monitoring.IncrEventsRouted()

	if !r.membership.IsAuthoritative() {
		r.outbound.Enqueue(domain.ConversationKey(sender, receiver), event)
		return
	}
	if err = r.apply(ctx, event, sender, receiver); err != nil {
		r.drop("Unable to apply event", err, event)
	}
}

// Apply runs an already routed event on this node.
func (r *Router) Apply(ctx context.Context, event domain.ConversationEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}
	sender, receiver, err := event.Participants()
	if err != nil {
		return err
	}
	return r.apply(ctx, event, sender, receiver)
}

func (r *Router) apply(ctx context.Context, event domain.ConversationEvent, sender, receiver domain.Address) error {
	switch event.Kind() {
	case domain.StatusChanged:
		return r.ProcessStatusUpdate(ctx, event.MessageID, sender, receiver, event.Status, event.Timestamp)
	default:
		return r.ProcessMessage(ctx, event.MessageID, sender, receiver, event.Body, event.Timestamp)
	}
}

// ProcessMessage records a chat message, opening the conversation on first contact.
func (r *Router) ProcessMessage(ctx context.Context, messageID string, sender, receiver domain.Address,
	body string, at time.Time) error {
	key := domain.ConversationKey(sender, receiver)
	unlock := r.locks.Lock(key)
	defer unlock()

	c, found, err := r.lookup(ctx, key, sender, receiver)
	if err != nil {
		return err
	}
	if !found {
		c = domain.NewConversation(sender, receiver, at)
	}

	// Nothing is announced nor stored before the message is known to be valid.
	msg, err := domain.NewArchivedMessage(messageID, c.ID, sender.String(), receiver.String(),
		body, domain.StatusSent, at, at)
	if err != nil {
		return err
	}
	if !found {
		r.open(c)
	}
	c.MessageReceived(at)
	r.directory.Upsert(key, c)

	r.pending.PushUpdatedConversation(c)
	r.pending.PushNewMessage(msg)
	r.monitoring.IncrMessagesQueued()
	r.notifyUpdated(c, msg.CreatedAt)
	return nil
}

// ProcessStatusUpdate queues a delivery status change. Conversation counters are left alone.
func (r *Router) ProcessStatusUpdate(ctx context.Context, messageID string, sender, receiver domain.Address,
	status domain.MessageStatus, at time.Time) error {
	key := domain.ConversationKey(sender, receiver)
	unlock := r.locks.Lock(key)
	defer unlock()

	c, found, err := r.lookup(ctx, key, sender, receiver)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s for message %s", errors.ErrUnknownConversation, key, messageID)
	}
	update, err := domain.NewArchivedMessage(messageID, c.ID, sender.String(), receiver.String(),
		"", status, at, at)
	if err != nil {
		return err
	}
	r.directory.Upsert(key, c)
	r.pending.PushStatusUpdate(update)
	return nil
}

// lookup checks the directory, then the archive for a conversation of the pair.
func (r *Router) lookup(ctx context.Context, key string, sender, receiver domain.Address) (domain.Conversation, bool, error) {
	if c, ok := r.directory.Get(key); ok {
		return c, true, nil
	}
	search, err := domain.NewArchiveSearch().WithParticipants(sender, receiver)
	if err != nil {
		return domain.Conversation{}, false, err
	}
	search.NumResults = 1
	found, err := r.searcher.Search(ctx, search)
	if err != nil {
		return domain.Conversation{}, false, fmt.Errorf("search conversation %s: %w", key, err)
	}
	if len(found) == 0 {
		return domain.Conversation{}, false, nil
	}
	return found[0], true, nil
}

// open announces a new conversation, tries to persist it at once and queues it otherwise.
func (r *Router) open(c domain.Conversation) {
	r.monitoring.IncrConversationsCreated()
	r.notifyCreated(c)
	if err := r.store.Write(storage.ConversationOp(storage.InsertConversation, c)); err != nil {
		r.log.Warn("Immediate insert failed, conversation queued", "conversation_id", c.ID, "error", err)
		r.pending.PushNewConversation(c)
	}
}

func (r *Router) notifyCreated(c domain.Conversation) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.listeners {
		l.ConversationCreated(c)
	}
}

func (r *Router) notifyUpdated(c domain.Conversation, at time.Time) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.listeners {
		l.ConversationUpdated(c, at)
	}
}

func (r *Router) drop(msg string, err error, event domain.ConversationEvent) {
	r.monitoring.IncrEventsDropped()
	r.log.Warn(msg,
		"message_id", event.MessageID,
		"sender", event.Sender,
		"receiver", event.Receiver,
		"error", err)
}
