package storage

import (
	"chat-archive/domain"
	"fmt"
	"testing"
	"time"

	"github.com/mama165/sdk-go/database"
	"github.com/stretchr/testify/require"
)

// seedOnDisk writes n messages of one conversation through the batch writer, 500 ops at a time.
func seedOnDisk(b *testing.B, store *ArchiveStore, c domain.Conversation, n int) {
	ops := []Op{ConversationOp(InsertConversation, c)}
	for i := 1; i <= n; i++ {
		at := base.Add(time.Duration(i) * time.Millisecond)
		m, err := domain.NewArchivedMessage(fmt.Sprintf("m%d", i), c.ID, c.ParticipantOne, c.ParticipantTwo,
			"body", domain.StatusSent, at, at)
		require.NoError(b, err)
		ops = append(ops, MessageOp(InsertMessage, m))
		if len(ops) == 500 {
			require.NoError(b, store.WriteBatch(ops))
			ops = ops[:0]
		}
	}
	require.NoError(b, store.WriteBatch(ops))
}

func BenchmarkMessageRepository_Page(b *testing.B) {
	_, log, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	require.NoError(b, err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	index := NewConversationIndex(blugeWriter, log)
	store := NewArchiveStore(badgerDB, index, log)
	messages := NewMessageRepository(badgerDB, log)
	c := conversation("alice@x.org", "bob@x.org", base)
	seedOnDisk(b, store, c, 10_000)
	window := domain.Window{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		before, err := messages.CountBefore(c.ID, window, base.Add(5*time.Second))
		if err != nil {
			b.Fatal(err)
		}
		page, err := messages.Range(c.ID, window, before-100, 100)
		if err != nil || len(page) != 100 {
			b.Fatalf("page of %d messages, err %v", len(page), err)
		}
	}
}

func BenchmarkArchiveStore_WriteBatch(b *testing.B) {
	_, log, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	require.NoError(b, err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	store := NewArchiveStore(badgerDB, NewConversationIndex(blugeWriter, log), log)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := conversation(fmt.Sprintf("user%d@x.org", i), "bob@x.org", base)
		seedOnDisk(b, store, c, 500)
	}
}
