// Package conversation owns the ordered message log and its persistence.
package conversation

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/longkey1/ragechat/internal/ragechat"
	"github.com/longkey1/ragechat/internal/ragechat/storage"
)

// Store holds the conversation in insertion order and persists it under
// storage.HistoryKey.
type Store struct {
	kv       storage.Storage
	logger   *slog.Logger
	messages []ragechat.Message
}

// NewStore creates an empty store backed by kv.
func NewStore(kv storage.Storage, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		kv:       kv,
		logger:   logger,
		messages: []ragechat.Message{},
	}
}

// Append adds a message at the tail.
func (s *Store) Append(m ragechat.Message) {
	s.messages = append(s.messages, m)
}

// Messages returns a copy of the conversation in order.
func (s *Store) Messages() []ragechat.Message {
	out := make([]ragechat.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages.
func (s *Store) Len() int {
	return len(s.messages)
}

// Last returns the most recent message.
func (s *Store) Last() (ragechat.Message, bool) {
	if len(s.messages) == 0 {
		return ragechat.Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}

// Clear empties the conversation and deletes the persisted history.
// The theme preference is left alone.
func (s *Store) Clear() error {
	s.messages = []ragechat.Message{}
	if err := s.kv.Remove(storage.HistoryKey); err != nil {
		return fmt.Errorf("removing history: %w", err)
	}
	return nil
}

// Save writes the whole conversation to storage.
func (s *Store) Save() error {
	data, err := Marshal(s.messages)
	if err != nil {
		return err
	}
	if err := s.kv.Set(storage.HistoryKey, string(data)); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}

// Load replaces the in-memory conversation with the persisted one and
// returns it so the caller can render every message in order.
// A missing entry yields an empty conversation. A malformed entry is logged
// and also yields an empty conversation; it is left in storage untouched
// until the next Save overwrites it.
func (s *Store) Load() ([]ragechat.Message, error) {
	raw, ok, err := s.kv.Get(storage.HistoryKey)
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	s.messages = []ragechat.Message{}
	if !ok {
		return s.Messages(), nil
	}

	messages, err := Unmarshal([]byte(raw))
	if err != nil {
		s.logger.Warn("discarding unreadable chat history", "error", err)
		return s.Messages(), nil
	}
	s.messages = messages
	return s.Messages(), nil
}

// Marshal serializes messages as a JSON array. A nil slice encodes as [].
func Marshal(messages []ragechat.Message) ([]byte, error) {
	if messages == nil {
		messages = []ragechat.Message{}
	}
	data, err := json.Marshal(messages)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize history: %w", err)
	}
	return data, nil
}

// Unmarshal parses a JSON array of messages. JSON null decodes as empty.
func Unmarshal(data []byte) ([]ragechat.Message, error) {
	var messages []ragechat.Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}
	if messages == nil {
		messages = []ragechat.Message{}
	}
	return messages, nil
}
