package services

import (
	"chat-archive/domain"
	"chat-archive/errors"
	"chat-archive/infrastructure/storage"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type historyFixture struct {
	store   *storage.ArchiveStore
	service *HistoryService
}

func newHistoryFixture(t *testing.T) historyFixture {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)
	t.Cleanup(func() { _ = writer.Close() })

	index := storage.NewConversationIndex(writer, log)
	conversations := storage.NewConversationRepository(db, index, log)
	messages := storage.NewMessageRepository(db, log)
	return historyFixture{
		store:   storage.NewArchiveStore(db, index, log),
		service: NewHistoryService(log, NewArchiveSearcher(log, conversations, index), messages, 50),
	}
}

// archive stores a conversation with messages m1..mN created i seconds after base.
func (f historyFixture) archive(t *testing.T, c domain.Conversation, prefix string, n int) {
	ops := []storage.Op{storage.ConversationOp(storage.InsertConversation, c)}
	for i := 1; i <= n; i++ {
		at := base.Add(time.Duration(i) * time.Second)
		m, err := domain.NewArchivedMessage(fmt.Sprintf("%sm%d", prefix, i), c.ID, c.ParticipantOne,
			c.ParticipantTwo, fmt.Sprintf("body %d", i), domain.StatusSent, at, at)
		require.NoError(t, err)
		ops = append(ops, storage.MessageOp(storage.InsertMessage, m))
	}
	require.NoError(t, f.store.WriteBatch(ops))
}

func ptr[T any](v T) *T { return &v }

func ids(messages []domain.ArchivedMessage) []string {
	out := make([]string, 0, len(messages))
	for _, m := range messages {
		out = append(out, m.ID)
	}
	return out
}

func TestHistoryService_History(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newHistoryFixture(t)
	f.archive(t, conversation("alice@x.org", "bob@x.org", base), "", 10)

	query := func(page domain.PageRequest) domain.HistoryQuery {
		return domain.HistoryQuery{Owner: "alice@x.org/phone", With: "bob@x.org", Page: page}
	}

	// After m4, three per page
	history, err := f.service.History(ctx, query(domain.PageRequest{Max: ptr(3), After: ptr("m4")}))
	req.NoError(err)
	req.Equal([]string{"m5", "m6", "m7"}, ids(history.Messages))
	req.Equal(domain.PageResult{FirstIndex: 4, Count: 10, Complete: false}, history.Page)

	// Before m8, reverse paging
	history, err = f.service.History(ctx, query(domain.PageRequest{Max: ptr(3), Before: ptr("m8")}))
	req.NoError(err)
	req.Equal([]string{"m5", "m6", "m7"}, ids(history.Messages))
	req.False(history.Page.Complete)

	// Last forward page
	history, err = f.service.History(ctx, query(domain.PageRequest{Max: ptr(3), Index: ptr(8)}))
	req.NoError(err)
	req.Equal([]string{"m9", "m10"}, ids(history.Messages))
	req.Equal(domain.PageResult{FirstIndex: 8, Count: 10, Complete: true}, history.Page)

	// Window on creation time, default page size
	history, err = f.service.History(ctx, domain.HistoryQuery{
		Owner:  "bob@x.org",
		With:   "alice@x.org",
		Window: domain.Window{Start: base.Add(3 * time.Second), End: base.Add(5 * time.Second)},
	})
	req.NoError(err)
	req.Equal([]string{"m3", "m4", "m5"}, ids(history.Messages))
	req.Equal(domain.PageResult{FirstIndex: 0, Count: 3, Complete: true}, history.Page)
}

func TestHistoryService_EmptyPages(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newHistoryFixture(t)

	history, err := f.service.History(ctx, domain.HistoryQuery{Owner: "alice@x.org"})
	req.NoError(err)
	req.Empty(history.Messages)
	req.True(history.Page.Complete)

	history, err = f.service.History(ctx, domain.HistoryQuery{Owner: "alice@x.org", With: "nobody@x.org"})
	req.NoError(err)
	req.Empty(history.Messages)
	req.True(history.Page.Complete)

	_, err = f.service.History(ctx, domain.HistoryQuery{Owner: "alice@x.org", With: "bob@x.org",
		Page: domain.PageRequest{Index: ptr(1), After: ptr("m1")}})
	req.ErrorIs(err, errors.ErrConflictingCursor)
}

func TestHistoryService_ListConversations(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newHistoryFixture(t)
	withBob := conversation("alice@x.org", "bob@x.org", base)
	withCarol := conversation("alice@x.org", "carol@x.org", base)
	notAlice := conversation("bob@x.org", "carol@x.org", base)
	f.archive(t, withBob, "b", 2)
	f.archive(t, withCarol, "c", 5)
	f.archive(t, notAlice, "n", 1)

	summaries, err := f.service.ListConversations(ctx, "alice@x.org", domain.Window{}, 0)
	req.NoError(err)
	req.Len(summaries, 2)
	req.Equal(withCarol.ID, summaries[0].Conversation.ID)
	req.Equal("cm5", summaries[0].Last.ID)
	req.Equal("bm2", summaries[1].Last.ID)

	// A window ending before carol's later messages
	summaries, err = f.service.ListConversations(ctx, "alice@x.org",
		domain.Window{End: base.Add(2 * time.Second)}, 1)
	req.NoError(err)
	req.Len(summaries, 1)
	req.Contains([]string{"bm2", "cm2"}, summaries[0].Last.ID)
}
