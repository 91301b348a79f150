package workers

import (
	"chat-archive/domain"
	"chat-archive/infrastructure/storage"
	"chat-archive/mocks"
	"chat-archive/observability"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

type archiverFixture struct {
	worker     *ArchiverWorker
	pending    *mocks.MockIPendingQueues
	store      *mocks.MockIArchiveStore
	monitoring *observability.MonitoringManager
}

func newArchiverFixture(t *testing.T) archiverFixture {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	f := archiverFixture{
		pending:    mocks.NewMockIPendingQueues(ctrl),
		store:      mocks.NewMockIArchiveStore(ctrl),
		monitoring: observability.NewMonitoringManager(log),
	}
	f.worker = NewArchiverWorker(log, f.pending, f.store, f.monitoring, time.Hour)
	f.pending.EXPECT().Len().Return(0).AnyTimes()
	return f
}

// expectDrain makes the queues hand out the given content once, then nothing.
func (f archiverFixture) expectDrain(newConversations []domain.Conversation, newMessages []domain.ArchivedMessage,
	updated []domain.Conversation, statuses []domain.ArchivedMessage) {
	f.pending.EXPECT().DrainNewConversations().Return(newConversations).Times(1)
	f.pending.EXPECT().DrainNewMessages().Return(newMessages).Times(1)
	f.pending.EXPECT().DrainUpdatedConversations().Return(updated).Times(1)
	f.pending.EXPECT().DrainStatusUpdates().Return(statuses).Times(1)
}

func messages(n int) []domain.ArchivedMessage {
	var all []domain.ArchivedMessage
	for i := 0; i < n; i++ {
		all = append(all, domain.ArchivedMessage{ID: fmt.Sprintf("m%d", i)})
	}
	return all
}

func TestArchiverWorker_WriteOrder(t *testing.T) {
	req := require.New(t)
	f := newArchiverFixture(t)
	c := domain.NewConversation(domain.MustParseAddress("a@x.org"), domain.MustParseAddress("b@x.org"), t0)

	f.expectDrain([]domain.Conversation{c}, messages(1), []domain.Conversation{c}, messages(1))
	f.store.EXPECT().Batching().Return(true)
	f.store.EXPECT().WriteBatch(gomock.Any()).
		DoAndReturn(func(ops []storage.Op) error {
			kinds := make([]storage.OpKind, 0, len(ops))
			for _, op := range ops {
				kinds = append(kinds, op.Kind)
			}
			req.Equal([]storage.OpKind{
				storage.InsertConversation,
				storage.InsertMessage,
				storage.UpdateConversation,
				storage.UpdateMessageStatus,
			}, kinds)
			return nil
		}).Times(1)

	req.True(f.worker.Flush())
	req.Equal(uint64(4), f.monitoring.GetLatest().OpsWritten)
}

func TestArchiverWorker_ChunksLargeBatches(t *testing.T) {
	req := require.New(t)
	f := newArchiverFixture(t)

	// Given 1201 messages waiting
	f.expectDrain(nil, messages(1201), nil, nil)
	f.store.EXPECT().Batching().Return(true)

	var sizes []int
	f.store.EXPECT().WriteBatch(gomock.Any()).
		DoAndReturn(func(ops []storage.Op) error {
			sizes = append(sizes, len(ops))
			return nil
		}).Times(3)

	req.True(f.worker.Flush())

	// Then no physical batch exceeds 500 ops
	req.Equal([]int{500, 500, 201}, sizes)
}

func TestArchiverWorker_WithoutBatching(t *testing.T) {
	req := require.New(t)
	f := newArchiverFixture(t)

	f.expectDrain(nil, messages(3), nil, nil)
	f.store.EXPECT().Batching().Return(false)
	gomock.InOrder(
		f.store.EXPECT().Write(gomock.Any()).Return(nil),
		f.store.EXPECT().Write(gomock.Any()).Return(errors.New("conflict")),
		f.store.EXPECT().Write(gomock.Any()).Return(nil),
	)

	req.True(f.worker.Flush())
	stats := f.monitoring.GetLatest()
	req.Equal(uint64(2), stats.OpsWritten)
	req.Equal(uint64(1), stats.WriteFailures)
}

func TestArchiverWorker_FailedBatchIsNotRetried(t *testing.T) {
	req := require.New(t)
	f := newArchiverFixture(t)

	f.expectDrain(nil, messages(2), nil, nil)
	f.store.EXPECT().Batching().Return(true)
	f.store.EXPECT().WriteBatch(gomock.Any()).Return(errors.New("disk full")).Times(1)
	req.True(f.worker.Flush())

	// The next run finds nothing to write
	f.expectDrain(nil, nil, nil, nil)
	req.True(f.worker.Flush())
	req.Equal(uint64(2), f.monitoring.GetLatest().WriteFailures)
}

func TestArchiverWorker_ConcurrentFlushIsSkipped(t *testing.T) {
	req := require.New(t)
	f := newArchiverFixture(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.expectDrain(nil, messages(1), nil, nil)
	f.store.EXPECT().Batching().Return(true)
	f.store.EXPECT().WriteBatch(gomock.Any()).
		DoAndReturn(func(ops []storage.Op) error {
			close(entered)
			<-release
			return nil
		}).Times(1)

	// Given a run blocked on the store
	first := make(chan bool)
	go func() { first <- f.worker.Flush() }()
	<-entered

	// When another run is triggered
	req.False(f.worker.Flush())

	close(release)
	req.True(<-first)
	req.Equal(uint64(1), f.monitoring.GetLatest().FlushSkipped)
}

func TestArchiverWorker_FlushesOnStop(t *testing.T) {
	req := require.New(t)
	f := newArchiverFixture(t)

	f.expectDrain(nil, messages(1), nil, nil)
	f.store.EXPECT().Batching().Return(true)
	f.store.EXPECT().WriteBatch(gomock.Any()).Return(nil).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.worker.Run(ctx)
	req.ErrorIs(err, context.Canceled)
	req.Equal(uint64(1), f.monitoring.GetLatest().OpsWritten)
}
