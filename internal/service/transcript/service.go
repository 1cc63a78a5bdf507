package transcript

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/serein-care/serein/backend/internal/model/chat"
)

var ErrConversationUnknown = errors.New("conversation unknown")

// Service keeps the rolling per-conversation transcript. It feeds both the
// composer's history window and the crisis detector's deterioration trend.
type Service struct {
	mu       sync.RWMutex
	messages map[string][]chat.Message
	limit    int
}

// NewService bootstraps the in-memory transcript store. limit bounds retained
// messages per conversation; 0 keeps the default of 50.
func NewService(limit int) *Service {
	if limit <= 0 {
		limit = 50
	}
	return &Service{messages: make(map[string][]chat.Message), limit: limit}
}

// Append records one turn message, trimming the transcript to the limit.
func (s *Service) Append(_ context.Context, message chat.Message) error {
	if message.ConversationID == "" {
		return ErrConversationUnknown
	}

	message.ID = uuid.NewString()
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.messages[message.ConversationID], message)
	if len(history) > s.limit {
		history = history[len(history)-s.limit:]
	}
	s.messages[message.ConversationID] = history
	return nil
}

// Load returns a copy of the stored messages for a conversation. An unknown
// conversation yields an empty transcript, not an error: first turns are
// expected to arrive before any history exists.
func (s *Service) Load(_ context.Context, conversationID string) []chat.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.messages[conversationID]
	copied := make([]chat.Message, len(history))
	copy(copied, history)
	return copied
}
