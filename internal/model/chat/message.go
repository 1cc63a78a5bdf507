package chat

import "time"

// Message persists individual turns for history replay and trend analysis.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	Emotion        string    `json:"emotion,omitempty"`
	MoodScore      int       `json:"moodScore,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Roles used in history entries. Anything else is ignored when history is
// replayed into a completion request.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
