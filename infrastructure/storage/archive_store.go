//go:generate go run go.uber.org/mock/mockgen -source=archive_store.go -destination=../../mocks/mock_archive_store.go -package=mocks
package storage

import (
	"chat-archive/domain"
	"chat-archive/errors"
	"chat-archive/infrastructure/wire"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

type OpKind int

const (
	InsertConversation OpKind = iota
	InsertMessage
	UpdateConversation
	UpdateMessageStatus
)

func (k OpKind) String() string {
	switch k {
	case InsertConversation:
		return "insert_conversation"
	case InsertMessage:
		return "insert_message"
	case UpdateConversation:
		return "update_conversation"
	case UpdateMessageStatus:
		return "update_message_status"
	default:
		return fmt.Sprintf("op(%d)", int(k))
	}
}

// Op is one logical write. Conversation ops use Conversation, message ops use Message.
// A status update only needs Message.ID, Message.Status and Message.UpdatedAt.
type Op struct {
	Kind         OpKind
	Conversation domain.Conversation
	Message      domain.ArchivedMessage
}

func ConversationOp(kind OpKind, c domain.Conversation) Op { return Op{Kind: kind, Conversation: c} }

func MessageOp(kind OpKind, m domain.ArchivedMessage) Op { return Op{Kind: kind, Message: m} }

// IArchiveStore is the write side of the archive.
type IArchiveStore interface {
	// Batching reports whether WriteBatch may be used.
	Batching() bool
	// WriteBatch commits ops as one physical batch.
	WriteBatch(ops []Op) error
	// Write commits a single op in its own transaction.
	Write(op Op) error
}

type ArchiveStore struct {
	db       *badger.DB
	index    IConversationIndex
	log      *slog.Logger
	batching bool
}

type StoreOption func(*ArchiveStore)

// WithoutBatching forces one transaction per op.
func WithoutBatching() StoreOption {
	return func(s *ArchiveStore) { s.batching = false }
}

func NewArchiveStore(db *badger.DB, index IConversationIndex, log *slog.Logger, opts ...StoreOption) *ArchiveStore {
	s := &ArchiveStore{db: db, index: index, log: log, batching: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ArchiveStore) Batching() bool { return s.batching }

type entry struct {
	key   []byte
	value []byte
}

func (s *ArchiveStore) WriteBatch(ops []Op) error {
	if len(ops) == 0 {
		return nil
	}
	var entries []entry
	inBatch := make(map[string]domain.ArchivedMessage)
	err := s.db.View(func(txn *badger.Txn) error {
		for _, op := range ops {
			e, err := s.entriesFor(txn, op, inBatch)
			if err != nil {
				return err
			}
			entries = append(entries, e...)
		}
		return nil
	})
	if err != nil {
		return err
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, e := range entries {
		if err = wb.Set(e.key, e.value); err != nil {
			return fmt.Errorf("prepare batch of %d ops: %w", len(ops), err)
		}
	}
	if err = wb.Flush(); err != nil {
		return fmt.Errorf("commit batch of %d ops: %w", len(ops), err)
	}
	return s.reindex(ops...)
}

func (s *ArchiveStore) Write(op Op) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		entries, err := s.entriesFor(txn, op, nil)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if err = txn.Set(e.key, e.value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op.Kind, err)
	}
	return s.reindex(op)
}

// entriesFor turns an op into key/value pairs. inBatch tracks messages inserted earlier in
// the same batch so a status update can find them before they are committed.
func (s *ArchiveStore) entriesFor(txn *badger.Txn, op Op, inBatch map[string]domain.ArchivedMessage) ([]entry, error) {
	switch op.Kind {
	case InsertConversation:
		c := op.Conversation
		return []entry{
			{conversationKey(c.ID), wire.EncodeConversation(c)},
			{pairKey(c.Key), []byte(c.ID)},
		}, nil
	case UpdateConversation:
		return []entry{{conversationKey(op.Conversation.ID), wire.EncodeConversation(op.Conversation)}}, nil
	case InsertMessage:
		m := op.Message
		key := messageKey(m)
		if inBatch != nil {
			inBatch[m.ID] = m
		}
		return []entry{
			{key, wire.EncodeMessage(m)},
			{messageIDKey(m.ID), key},
		}, nil
	case UpdateMessageStatus:
		m, err := s.currentMessage(txn, op.Message.ID, inBatch)
		if stderrors.Is(err, errors.ErrMessageNotFound) {
			s.log.Debug("Status update for a message not archived", "message_id", op.Message.ID)
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		m.Status = op.Message.Status
		if op.Message.UpdatedAt.After(m.UpdatedAt) {
			m.UpdatedAt = op.Message.UpdatedAt
		}
		if inBatch != nil {
			inBatch[m.ID] = m
		}
		return []entry{{messageKey(m), wire.EncodeMessage(m)}}, nil
	default:
		return nil, fmt.Errorf("unknown op kind %d", int(op.Kind))
	}
}

func (s *ArchiveStore) currentMessage(txn *badger.Txn, id string, inBatch map[string]domain.ArchivedMessage) (domain.ArchivedMessage, error) {
	if m, ok := inBatch[id]; ok {
		return m, nil
	}
	key, err := lookupMessageKey(txn, id)
	if err != nil {
		return domain.ArchivedMessage{}, err
	}
	item, err := txn.Get(key)
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.ArchivedMessage{}, fmt.Errorf("%w: %s", errors.ErrMessageNotFound, id)
	}
	if err != nil {
		return domain.ArchivedMessage{}, err
	}
	return decodeItem(item)
}

func (s *ArchiveStore) reindex(ops ...Op) error {
	if s.index == nil {
		return nil
	}
	var conversations []domain.Conversation
	for _, op := range ops {
		if op.Kind == InsertConversation || op.Kind == UpdateConversation {
			conversations = append(conversations, op.Conversation)
		}
	}
	return s.index.Index(conversations...)
}
