package runtime

import (
	"chat-archive/domain"
	"chat-archive/errors"
	"chat-archive/infrastructure/storage"
	"chat-archive/mocks"
	"chat-archive/observability"
	"context"
	stderrors "errors"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	alice = domain.MustParseAddress("alice@example.com/phone")
	bob   = domain.MustParseAddress("bob@example.com/desk")
)

type routerFixture struct {
	router     *Router
	directory  *Directory
	pending    *PendingQueues
	outbound   *OutboundQueue
	store      *mocks.MockIArchiveStore
	searcher   *mocks.MockIConversationSearcher
	membership *mocks.MockIMembership
	monitoring *observability.MonitoringManager
}

func newRouterFixture(t *testing.T) routerFixture {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	f := routerFixture{
		directory:  NewDirectory(),
		pending:    NewPendingQueues(),
		outbound:   NewOutboundQueue(),
		store:      mocks.NewMockIArchiveStore(ctrl),
		searcher:   mocks.NewMockIConversationSearcher(ctrl),
		membership: mocks.NewMockIMembership(ctrl),
		monitoring: observability.NewMonitoringManager(log),
	}
	f.router = NewRouter(log, f.directory, f.pending, f.outbound, f.store, f.searcher,
		f.membership, NewEligibility("example.com"), f.monitoring)
	return f
}

type recordingListener struct {
	created []domain.Conversation
	updated []time.Time
}

func (l *recordingListener) ConversationCreated(c domain.Conversation) {
	l.created = append(l.created, c)
}

func (l *recordingListener) ConversationUpdated(_ domain.Conversation, at time.Time) {
	l.updated = append(l.updated, at)
}

func TestRouter_FirstMessageOpensConversation(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	ctx := context.Background()
	listener := &recordingListener{}
	f.router.AddListener(listener)

	// Given nothing archived for the pair
	f.membership.EXPECT().IsAuthoritative().Return(true).Times(2)
	f.searcher.EXPECT().Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s domain.ArchiveSearch) ([]domain.Conversation, error) {
			req.ElementsMatch([]string{"alice@example.com", "bob@example.com"}, s.Participants)
			req.Equal(1, s.NumResults)
			return nil, nil
		}).Times(1)
	f.store.EXPECT().Write(gomock.Any()).
		DoAndReturn(func(op storage.Op) error {
			req.Equal(storage.InsertConversation, op.Kind)
			return nil
		}).Times(1)

	// When two messages are routed
	f.router.Route(ctx, domain.MessageReceivedEvent("m1", alice, bob, "hello", t0))
	f.router.Route(ctx, domain.MessageReceivedEvent("m2", bob, alice, "hi", t0.Add(time.Second)))

	// Then one conversation is active with both messages counted
	c, ok := f.directory.Get(domain.ConversationKey(alice, bob))
	req.True(ok)
	req.Equal(2, c.MessageCount)
	req.Equal("alice@example.com", c.ParticipantOne)
	req.True(c.CreatedAt.Before(t0))
	req.True(t0.Add(time.Second).Equal(c.UpdatedAt))

	// And the conversation was written at once, not queued
	req.Empty(f.pending.DrainNewConversations())
	messages := f.pending.DrainNewMessages()
	req.Len(messages, 2)
	req.Equal("alice@example.com/phone", messages[0].From)
	req.Equal(domain.StatusSent, messages[0].Status)
	req.Equal(c.ID, messages[1].ConversationID)
	req.Len(f.pending.DrainUpdatedConversations(), 2)

	req.Len(listener.created, 1)
	req.Len(listener.updated, 2)
	req.Equal(uint64(2), f.monitoring.GetLatest().EventsRouted)
}

func TestRouter_PreEpochMessageLeavesNoTrace(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	ctx := context.Background()
	listener := &recordingListener{}
	f.router.AddListener(listener)
	beforeEpoch := time.Date(1969, 12, 31, 23, 0, 0, 0, time.UTC)

	// Routed: rejected as malformed before membership or the store are asked
	event := domain.MessageReceivedEvent("m1", alice, bob, "hello", beforeEpoch)
	req.ErrorIs(event.Validate(), errors.ErrMalformedEvent)
	f.router.Route(ctx, event)
	req.Equal(uint64(1), f.monitoring.GetLatest().EventsDropped)

	// Applied directly: the message is refused before the conversation is opened
	f.searcher.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	err := f.router.ProcessMessage(ctx, "m1", alice, bob, "hello", beforeEpoch)
	req.ErrorIs(err, errors.ErrInvalidMessage)

	req.Zero(f.directory.Count())
	req.Empty(listener.created)
	req.Zero(f.pending.Len())
	req.Zero(f.monitoring.GetLatest().ConversationsCreated)
}

func TestRouter_FailedInsertIsQueued(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)

	f.searcher.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	f.store.EXPECT().Write(gomock.Any()).Return(stderrors.New("disk full")).Times(1)

	err := f.router.ProcessMessage(context.Background(), "m1", alice, bob, "hello", t0)
	req.NoError(err)

	queued := f.pending.DrainNewConversations()
	req.Len(queued, 1)
	req.Equal(domain.ConversationKey(alice, bob), queued[0].Key)
}

func TestRouter_ArchivedConversationIsReused(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	archived := domain.NewConversation(alice, bob, t0.Add(-time.Hour))
	archived.MessageReceived(t0.Add(-time.Hour))

	// Given the conversation was evicted but is still archived
	f.searcher.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]domain.Conversation{archived}, nil).Times(1)

	err := f.router.ProcessMessage(context.Background(), "m2", alice, bob, "back", t0)
	req.NoError(err)

	c, ok := f.directory.Get(archived.Key)
	req.True(ok)
	req.Equal(archived.ID, c.ID)
	req.Equal(2, c.MessageCount)
}

func TestRouter_StatusUpdate(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	ctx := context.Background()

	// Given no conversation for the pair
	f.searcher.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	err := f.router.ProcessStatusUpdate(ctx, "m1", alice, bob, domain.StatusDelivered, t0)
	req.ErrorIs(err, errors.ErrUnknownConversation)
	req.Zero(f.pending.Len())

	// Given an archived conversation
	archived := domain.NewConversation(alice, bob, t0.Add(-time.Hour))
	f.searcher.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]domain.Conversation{archived}, nil).Times(1)

	err = f.router.ProcessStatusUpdate(ctx, "m1", bob, alice, domain.StatusRead, t0)
	req.NoError(err)

	// Then the update is queued and the conversation is active again, counters untouched
	updates := f.pending.DrainStatusUpdates()
	req.Len(updates, 1)
	req.Equal(domain.StatusRead, updates[0].Status)
	req.Empty(updates[0].Body)
	c, ok := f.directory.Get(archived.Key)
	req.True(ok)
	req.Zero(c.MessageCount)
	req.Empty(f.pending.DrainUpdatedConversations())
}

func TestRouter_NotAuthoritativeBuffersEvents(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	f.membership.EXPECT().IsAuthoritative().Return(false).Times(2)

	f.router.Route(context.Background(), domain.MessageReceivedEvent("m1", alice, bob, "hello", t0))
	f.router.Route(context.Background(), domain.StatusChangedEvent("m1", bob, alice, domain.StatusRead, t0))

	req.Equal(2, f.outbound.Len())
	req.Zero(f.directory.Count())
	req.Zero(f.pending.Len())
}

func TestRouter_DropsIneligibleAndMalformed(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	ctx := context.Background()
	room := domain.MustParseAddress("room@conference.example.com")

	// Ineligible: nothing happens, nothing is counted as dropped
	f.router.Route(ctx, domain.MessageReceivedEvent("m1", alice, room, "hello", t0))
	// Malformed: no body on a sent message
	f.router.Route(ctx, domain.ConversationEvent{MessageID: "m2", Sender: alice.String(),
		Receiver: bob.String(), Status: domain.StatusSent, Timestamp: t0})
	// Malformed: unknown status
	f.router.Route(ctx, domain.ConversationEvent{MessageID: "m3", Sender: alice.String(),
		Receiver: bob.String(), Status: 9, Timestamp: t0, Body: "x"})

	stats := f.monitoring.GetLatest()
	req.Zero(stats.EventsRouted)
	req.Equal(uint64(2), stats.EventsDropped)
	req.Zero(f.pending.Len())
	req.Zero(f.outbound.Len())
}

func TestRouter_RemoveListener(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t)
	listener := &recordingListener{}
	f.router.AddListener(listener)
	f.router.RemoveListener(listener)

	f.searcher.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	f.store.EXPECT().Write(gomock.Any()).Return(nil).Times(1)
	req.NoError(f.router.ProcessMessage(context.Background(), "m1", alice, bob, "hello", t0))

	req.Empty(listener.created)
	req.Empty(listener.updated)
}
