//go:generate go run go.uber.org/mock/mockgen -source=conversation_index.go -destination=../../mocks/mock_conversation_index.go -package=mocks
package storage

import (
	"chat-archive/domain"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blugelabs/bluge"
)

const (
	fieldParticipant = "participant"
	fieldCreatedAt   = "created_at"
	fieldID          = "_id"
	searchPageSize   = 1000
)

var (
	openStart = time.Unix(0, 0).UTC()
	openEnd   = time.Date(2200, 1, 1, 0, 0, 0, 0, time.UTC)
)

// IConversationIndex finds conversation ids by participant and creation time.
type IConversationIndex interface {
	Index(conversations ...domain.Conversation) error
	Delete(ids ...string) error
	Search(ctx context.Context, search domain.ArchiveSearch) ([]string, error)
}

// ConversationIndex keeps a Bluge secondary index next to the Badger records.
// It only holds what the archive search filters on.
type ConversationIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewConversationIndex(writer *bluge.Writer, log *slog.Logger) *ConversationIndex {
	return &ConversationIndex{writer: writer, log: log}
}

func (i *ConversationIndex) Index(conversations ...domain.Conversation) error {
	if len(conversations) == 0 {
		return nil
	}
	batch := bluge.NewBatch()
	for _, c := range conversations {
		doc := bluge.NewDocument(c.ID).
			AddField(bluge.NewKeywordField(fieldParticipant, c.ParticipantOne)).
			AddField(bluge.NewKeywordField(fieldParticipant, c.ParticipantTwo)).
			AddField(bluge.NewDateTimeField(fieldCreatedAt, c.CreatedAt).Sortable())
		batch.Update(doc.ID(), doc)
	}
	if err := i.writer.Batch(batch); err != nil {
		return fmt.Errorf("index %d conversations: %w", len(conversations), err)
	}
	return nil
}

func (i *ConversationIndex) Delete(ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	batch := bluge.NewBatch()
	for _, id := range ids {
		batch.Delete(bluge.Identifier(id))
	}
	return i.writer.Batch(batch)
}

// Search returns matching ids ordered by creation time.
// A non-positive NumResults returns every match after StartIndex.
func (i *ConversationIndex) Search(ctx context.Context, search domain.ArchiveSearch) ([]string, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("open index reader: %w", err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Warn("Unable to close index reader", "error", err)
		}
	}()

	query := buildQuery(search)
	from := max(search.StartIndex, 0)
	var ids []string
	for {
		size := searchPageSize
		if search.NumResults > 0 {
			size = min(searchPageSize, search.NumResults-len(ids))
		}
		req := bluge.NewTopNSearch(size, query).
			SetFrom(from).
			SortBy([]string{fieldCreatedAt, fieldID})
		dmi, err := reader.Search(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("search conversations: %w", err)
		}
		page := 0
		match, err := dmi.Next()
		for err == nil && match != nil {
			err = match.VisitStoredFields(func(field string, value []byte) bool {
				if field == fieldID {
					ids = append(ids, string(value))
				}
				return true
			})
			page++
			if err == nil {
				match, err = dmi.Next()
			}
		}
		if err != nil {
			return nil, fmt.Errorf("read search results: %w", err)
		}
		from += page
		if page < size || (search.NumResults > 0 && len(ids) >= search.NumResults) {
			return ids, nil
		}
	}
}

func buildQuery(search domain.ArchiveSearch) bluge.Query {
	hasWindow := !search.CreatedFrom.IsZero() || !search.CreatedTo.IsZero()
	if len(search.Participants) == 0 && !hasWindow {
		return bluge.NewMatchAllQuery()
	}
	query := bluge.NewBooleanQuery()
	for _, p := range search.Participants {
		query.AddMust(bluge.NewTermQuery(p).SetField(fieldParticipant))
	}
	if hasWindow {
		start, end := search.CreatedFrom, search.CreatedTo
		if start.IsZero() {
			start = openStart
		}
		if end.IsZero() {
			end = openEnd
		}
		query.AddMust(bluge.NewDateRangeInclusiveQuery(start, end, true, true).SetField(fieldCreatedAt))
	}
	return query
}
