package storage

import (
	"chat-archive/domain"
	"fmt"
	"math"
	"strconv"
)

// Key layout:
//
//	conv:{id}                              conversation record
//	pair:{canonicalKey}                    conversation id
//	msg:{conversationID}:{millis19}:{id}   message record, chronological within a conversation
//	msgid:{messageID}                      message key
const (
	conversationPrefix = "conv:"
	pairPrefix         = "pair:"
	messagePrefix      = "msg:"
	messageIDPrefix    = "msgid:"
	timestampWidth     = 19
)

func conversationKey(id string) []byte { return []byte(conversationPrefix + id) }

func pairKey(key string) []byte { return []byte(pairPrefix + key) }

func messageIDKey(id string) []byte { return []byte(messageIDPrefix + id) }

func messagesOf(conversationID string) []byte {
	return []byte(messagePrefix + conversationID + ":")
}

// messageKey pads the timestamp to 19 digits so lexicographic order is chronological.
func messageKey(m domain.ArchivedMessage) []byte {
	return []byte(fmt.Sprintf("%s%s:%019d:%s",
		messagePrefix, m.ConversationID, domain.ToMillis(m.CreatedAt), m.ID))
}

func seekAt(prefix []byte, ms int64) []byte {
	return append(append([]byte{}, prefix...), fmt.Sprintf("%019d", ms)...)
}

// seekAfter sorts after every key of the prefix stamped ms.
func seekAfter(prefix []byte, ms int64) []byte {
	return append(seekAt(prefix, ms), ':', 0xFF)
}

// parseMessageKey returns the timestamp and message id following the conversation prefix.
func parseMessageKey(key []byte, prefixLen int) (int64, string, error) {
	rest := key[prefixLen:]
	if len(rest) < timestampWidth+1 || rest[timestampWidth] != ':' {
		return 0, "", fmt.Errorf("malformed message key %q", key)
	}
	ms, err := strconv.ParseInt(string(rest[:timestampWidth]), 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("malformed message key %q: %w", key, err)
	}
	return ms, string(rest[timestampWidth+1:]), nil
}

// bounds converts a window into inclusive epoch millisecond bounds.
func bounds(w domain.Window) (int64, int64) {
	start, end := domain.ToMillis(w.Start), domain.ToMillis(w.End)
	if w.End.IsZero() {
		end = math.MaxInt64
	}
	if start < 0 {
		start = 0
	}
	return start, end
}
