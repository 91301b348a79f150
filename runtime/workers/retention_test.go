package workers

import (
	"chat-archive/domain"
	"chat-archive/infrastructure/storage"
	"chat-archive/mocks"
	"chat-archive/observability"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedRetention domain.Retention

func (r fixedRetention) Retention() domain.Retention { return domain.Retention(r) }

func TestIdleSweeperWorker_Sweep(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	directory := mocks.NewMockIDirectory(ctrl)
	pending := mocks.NewMockIPendingQueues(ctrl)
	now := t0.Add(time.Hour)

	idle := domain.NewConversation(domain.MustParseAddress("a@x.org"), domain.MustParseAddress("b@x.org"), t0)
	busy := domain.NewConversation(domain.MustParseAddress("a@x.org"), domain.MustParseAddress("c@x.org"), t0)
	busy.MessageReceived(now.Add(-time.Minute))
	queued := domain.NewConversation(domain.MustParseAddress("a@x.org"), domain.MustParseAddress("d@x.org"), t0)

	pending.EXPECT().HoldsConversation(idle.Key).Return(false).Times(1)
	pending.EXPECT().HoldsConversation(queued.Key).Return(true).Times(1)
	directory.EXPECT().Evict(gomock.Any()).
		DoAndReturn(func(match func(domain.Conversation) bool) []domain.Conversation {
			req.True(match(idle))
			req.False(match(busy))
			req.False(match(queued))
			return []domain.Conversation{idle}
		}).Times(1)
	directory.EXPECT().Count().Return(1).Times(1)

	worker := NewIdleSweeperWorker(log, directory, pending, fixedRetention{IdleTime: 10 * time.Minute},
		observability.NewMonitoringManager(log), time.Minute)
	worker.now = func() time.Time { return now }

	req.Equal(1, worker.Sweep())
}

func TestIdleSweeperWorker_DisabledWithZeroIdleTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	directory := mocks.NewMockIDirectory(ctrl)

	worker := NewIdleSweeperWorker(log, directory, mocks.NewMockIPendingQueues(ctrl), fixedRetention{},
		observability.NewMonitoringManager(log), time.Minute)
	require.Zero(t, worker.Sweep())
}

type purgeFixture struct {
	store         *storage.ArchiveStore
	conversations *storage.ConversationRepository
	messages      *storage.MessageRepository
}

func newPurgeFixture(t *testing.T) purgeFixture {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)
	t.Cleanup(func() { _ = writer.Close() })

	index := storage.NewConversationIndex(writer, log)
	return purgeFixture{
		store:         storage.NewArchiveStore(db, index, log),
		conversations: storage.NewConversationRepository(db, index, log),
		messages:      storage.NewMessageRepository(db, log),
	}
}

func (f purgeFixture) archive(t *testing.T, c domain.Conversation, at time.Time) {
	m, err := domain.NewArchivedMessage(c.ID+"-m1", c.ID, c.ParticipantOne, c.ParticipantTwo, "hello",
		domain.StatusSent, at, at)
	require.NoError(t, err)
	require.NoError(t, f.store.WriteBatch([]storage.Op{
		storage.ConversationOp(storage.InsertConversation, c),
		storage.MessageOp(storage.InsertMessage, m),
	}))
}

func TestPurgerWorker_Purge(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	f := newPurgeFixture(t)
	searcher := mocks.NewMockIConversationSearcher(ctrl)
	directory := mocks.NewMockIDirectory(ctrl)
	now := t0.Add(48 * time.Hour)

	old := domain.NewConversation(domain.MustParseAddress("a@x.org"), domain.MustParseAddress("b@x.org"), t0)
	recent := domain.NewConversation(domain.MustParseAddress("a@x.org"), domain.MustParseAddress("c@x.org"), now.Add(-time.Hour))
	f.archive(t, old, t0)
	f.archive(t, recent, now.Add(-time.Hour))

	// Given the searcher returns what was created before the cutoff
	searcher.EXPECT().Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s domain.ArchiveSearch) ([]domain.Conversation, error) {
			req.True(s.CreatedTo.Equal(now.Add(-24 * time.Hour)))
			req.True(s.CreatedFrom.IsZero())
			return []domain.Conversation{old}, nil
		}).Times(1)
	// And the old conversation is still active
	directory.EXPECT().Get(old.Key).Return(old, true).Times(1)
	directory.EXPECT().Remove(old.Key).Times(1)

	worker := NewPurgerWorker(log, fixedRetention{MaxAge: 24 * time.Hour}, searcher,
		f.conversations, f.messages, directory, observability.NewMonitoringManager(log), time.Minute)
	worker.now = func() time.Time { return now }

	req.Equal(1, worker.Purge(context.Background()))

	// Then the old conversation and its messages are gone
	_, err := f.conversations.Get(old.ID)
	req.Error(err)
	count, err := f.messages.Count(old.ID, domain.Window{})
	req.NoError(err)
	req.Zero(count)

	// And the recent one is untouched
	kept, err := f.conversations.Get(recent.ID)
	req.NoError(err)
	req.Equal(recent.Key, kept.Key)
	count, err = f.messages.Count(recent.ID, domain.Window{})
	req.NoError(err)
	req.Equal(1, count)
}

func TestPurgerWorker_DisabledWithZeroMaxAge(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	worker := NewPurgerWorker(log, fixedRetention{}, mocks.NewMockIConversationSearcher(ctrl),
		nil, nil, mocks.NewMockIDirectory(ctrl), observability.NewMonitoringManager(log), time.Minute)

	require.Zero(t, worker.Purge(context.Background()))
}
