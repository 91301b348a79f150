//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-archive/domain"
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// ConversationListener is notified synchronously on the authoritative node only.
type ConversationListener interface {
	ConversationCreated(c domain.Conversation)
	ConversationUpdated(c domain.Conversation, at time.Time)
}

// IDirectory is the in-memory view of active conversations.
type IDirectory interface {
	Get(key string) (domain.Conversation, bool)
	FindByID(id string) (domain.Conversation, bool)
	Upsert(key string, c domain.Conversation)
	Remove(key string)
	Count() int
	All() []domain.Conversation
	// Evict removes and returns every conversation matching the predicate.
	Evict(match func(domain.Conversation) bool) []domain.Conversation
}

// IPendingQueues holds the persistence deltas waiting for the batch writer.
type IPendingQueues interface {
	PushNewConversation(c domain.Conversation)
	PushNewMessage(m domain.ArchivedMessage)
	PushUpdatedConversation(c domain.Conversation)
	PushStatusUpdate(m domain.ArchivedMessage)
	DrainNewConversations() []domain.Conversation
	DrainNewMessages() []domain.ArchivedMessage
	DrainUpdatedConversations() []domain.Conversation
	DrainStatusUpdates() []domain.ArchivedMessage
	HoldsConversation(key string) bool
	Len() int
}

// IOutboundQueue buffers events waiting to be shipped to the authoritative node.
type IOutboundQueue interface {
	Enqueue(key string, event domain.ConversationEvent)
	Drain() []domain.ConversationEvent
	Len() int
}

// IRetentionSource exposes the current retention policy.
type IRetentionSource interface {
	Retention() domain.Retention
}

// IMembership tells whether this node currently owns the conversation directory.
type IMembership interface {
	LocalNodeID() string
	IsAuthoritative() bool
	Authority() (NodeInfo, bool)
}

type NodeInfo struct {
	ID   string
	Addr string
}

// IClusterClient performs the remote calls against the authoritative node.
type IClusterClient interface {
	ConversationCount(ctx context.Context) (int, error)
	Conversation(ctx context.Context, id string) (domain.Conversation, error)
	Conversations(ctx context.Context) ([]domain.Conversation, error)
	ApplyEvents(ctx context.Context, events []domain.ConversationEvent) error
}

// IEventApplier applies events on the authoritative node.
type IEventApplier interface {
	Apply(ctx context.Context, event domain.ConversationEvent) error
}

// IEventRouter receives events from the chat server on any node.
type IEventRouter interface {
	Route(ctx context.Context, event domain.ConversationEvent)
}

// IConversationSearcher finds archived conversations.
type IConversationSearcher interface {
	Search(ctx context.Context, search domain.ArchiveSearch) ([]domain.Conversation, error)
}
