//go:generate go run go.uber.org/mock/mockgen -source=message_repository.go -destination=../../mocks/mock_message_repository.go -package=mocks
package storage

import (
	"chat-archive/domain"
	"chat-archive/errors"
	"chat-archive/infrastructure/wire"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// IMessageRepository reads the messages of one conversation in creation order.
// Every query is restricted to a window on the creation time.
type IMessageRepository interface {
	Count(conversationID string, window domain.Window) (int, error)
	CountBefore(conversationID string, window domain.Window, before time.Time) (int, error)
	Range(conversationID string, window domain.Window, offset, limit int) ([]domain.ArchivedMessage, error)
	Lookup(messageID string) (domain.ArchivedMessage, error)
	Last(conversationID string, window domain.Window) (domain.ArchivedMessage, bool, error)
	DeleteByConversation(conversationID string) (int, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) *MessageRepository {
	return &MessageRepository{db: db, log: log}
}

func (r *MessageRepository) Count(conversationID string, window domain.Window) (int, error) {
	count := 0
	err := r.scan(conversationID, window, false, false, func(_ *badger.Item, _ int64) (bool, error) {
		count++
		return true, nil
	})
	return count, err
}

// CountBefore counts the messages of the window created strictly before the given time.
func (r *MessageRepository) CountBefore(conversationID string, window domain.Window, before time.Time) (int, error) {
	limit := domain.ToMillis(before)
	count := 0
	err := r.scan(conversationID, window, false, false, func(_ *badger.Item, ts int64) (bool, error) {
		if ts >= limit {
			return false, nil
		}
		count++
		return true, nil
	})
	return count, err
}

// Range skips offset messages of the window and returns at most limit of the following ones.
func (r *MessageRepository) Range(conversationID string, window domain.Window, offset, limit int) ([]domain.ArchivedMessage, error) {
	if limit <= 0 {
		return nil, nil
	}
	var messages []domain.ArchivedMessage
	skipped := 0
	err := r.scan(conversationID, window, false, true, func(item *badger.Item, _ int64) (bool, error) {
		if skipped < offset {
			skipped++
			return true, nil
		}
		m, err := decodeItem(item)
		if err != nil {
			return false, err
		}
		messages = append(messages, m)
		return len(messages) < limit, nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// Lookup finds a message by its id, failing with ErrMessageNotFound.
func (r *MessageRepository) Lookup(messageID string) (domain.ArchivedMessage, error) {
	var m domain.ArchivedMessage
	err := r.db.View(func(txn *badger.Txn) error {
		key, err := lookupMessageKey(txn, messageID)
		if err != nil {
			return err
		}
		item, err := txn.Get(key)
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", errors.ErrMessageNotFound, messageID)
		}
		if err != nil {
			return err
		}
		m, err = decodeItem(item)
		return err
	})
	return m, err
}

// Last returns the most recent message of the window.
func (r *MessageRepository) Last(conversationID string, window domain.Window) (domain.ArchivedMessage, bool, error) {
	var last domain.ArchivedMessage
	found := false
	err := r.scan(conversationID, window, true, true, func(item *badger.Item, _ int64) (bool, error) {
		m, err := decodeItem(item)
		if err != nil {
			return false, err
		}
		last, found = m, true
		return false, nil
	})
	return last, found, err
}

// DeleteByConversation removes every message of the conversation and its id entries.
func (r *MessageRepository) DeleteByConversation(conversationID string) (int, error) {
	var keys [][]byte
	prefix := messagesOf(conversationID)
	err := r.scan(conversationID, domain.Window{}, false, false, func(item *badger.Item, _ int64) (bool, error) {
		key := item.KeyCopy(nil)
		_, id, err := parseMessageKey(key, len(prefix))
		if err != nil {
			return false, err
		}
		keys = append(keys, key, messageIDKey(id))
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}
	wb := r.db.NewWriteBatch()
	defer wb.Cancel()
	for _, k := range keys {
		if err = wb.Delete(k); err != nil {
			return 0, err
		}
	}
	if err = wb.Flush(); err != nil {
		return 0, fmt.Errorf("delete messages of %s: %w", conversationID, err)
	}
	return len(keys) / 2, nil
}

// scan walks the messages of a conversation inside the window, oldest first unless reverse.
// fn returns false to stop.
func (r *MessageRepository) scan(conversationID string, window domain.Window, reverse, values bool,
	fn func(item *badger.Item, ts int64) (bool, error)) error {
	prefix := messagesOf(conversationID)
	start, end := bounds(window)
	return r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = values
		opts.Reverse = reverse
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		seek := seekAt(prefix, start)
		if reverse {
			seek = seekAfter(prefix, end)
		}
		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			ts, _, err := parseMessageKey(item.Key(), len(prefix))
			if err != nil {
				r.log.Warn("Skipping message key", "key", string(item.Key()), "error", err)
				continue
			}
			if (!reverse && ts > end) || (reverse && ts < start) {
				return nil
			}
			if ts < start || ts > end {
				continue
			}
			next, err := fn(item, ts)
			if err != nil {
				return err
			}
			if !next {
				return nil
			}
		}
		return nil
	})
}

func lookupMessageKey(txn *badger.Txn, messageID string) ([]byte, error) {
	item, err := txn.Get(messageIDKey(messageID))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", errors.ErrMessageNotFound, messageID)
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func decodeItem(item *badger.Item) (domain.ArchivedMessage, error) {
	var m domain.ArchivedMessage
	err := item.Value(func(val []byte) error {
		var err error
		m, err = wire.DecodeMessage(val)
		return err
	})
	return m, err
}
