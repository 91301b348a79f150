//go:generate go run go.uber.org/mock/mockgen -source=conversation_repository.go -destination=../../mocks/mock_conversation_repository.go -package=mocks
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

type IConversationRepository interface {
	Get(id string) (domain.Conversation, error)
	FindByKey(key string) (domain.Conversation, error)
	Count() (int, error)
	Delete(id string) error
}

type ConversationRepository struct {
	db    *badger.DB
	index IConversationIndex
	log   *slog.Logger
}

func NewConversationRepository(db *badger.DB, index IConversationIndex, log *slog.Logger) *ConversationRepository {
	return &ConversationRepository{db: db, index: index, log: log}
}

// Get loads a conversation by id, failing with ErrConversationNotFound.
func (r *ConversationRepository) Get(id string) (domain.Conversation, error) {
	var c domain.Conversation
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		c, err = getConversation(txn, id)
		return err
	})
	return c, err
}

// FindByKey resolves the pair index then loads the conversation.
func (r *ConversationRepository) FindByKey(key string) (domain.Conversation, error) {
	var c domain.Conversation
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(pairKey(key))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: pair %s", errors.ErrConversationNotFound, key)
		}
		if err != nil {
			return err
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		c, err = getConversation(txn, string(id))
		return err
	})
	return c, err
}

// Count walks the conversation keys without loading values.
func (r *ConversationRepository) Count() (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		prefix := []byte(conversationPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// Delete removes the conversation record, its pair entry and its index entry.
// Deleting an unknown conversation is not an error.
func (r *ConversationRepository) Delete(id string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		c, err := getConversation(txn, id)
		if stderrors.Is(err, errors.ErrConversationNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err = txn.Delete(pairKey(c.Key)); err != nil {
			return err
		}
		return txn.Delete(conversationKey(id))
	})
	if err != nil {
		return fmt.Errorf("delete conversation %s: %w", id, err)
	}
	if r.index == nil {
		return nil
	}
	return r.index.Delete(id)
}

func getConversation(txn *badger.Txn, id string) (domain.Conversation, error) {
	item, err := txn.Get(conversationKey(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Conversation{}, fmt.Errorf("%w: %s", errors.ErrConversationNotFound, id)
	}
	if err != nil {
		return domain.Conversation{}, err
	}
	var c domain.Conversation
	err = item.Value(func(val []byte) error {
		c, err = wire.DecodeConversation(val)
		return err
	})
	return c, err
}
