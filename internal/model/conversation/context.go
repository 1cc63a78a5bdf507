package conversation

import "time"

// PromptSnapshot is the frozen identity-lock blob written when a persona is
// bound to a conversation. It is persisted under
// "conversation_system_prompt_{id}" and re-read verbatim on every turn so the
// instruction text never drifts mid-conversation.
type PromptSnapshot struct {
	PersonaID            string    `json:"personaId"`
	SystemPrompt         string    `json:"systemPrompt"`
	SpecialtyDescription string    `json:"specialtyDescription"`
	Name                 string    `json:"name"`
	Specialty            string    `json:"specialty"`
	Approach             string    `json:"approach"`
	Personality          string    `json:"personality"`
	CulturalBackground   string    `json:"culturalBackground"`
	Language             string    `json:"language"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// Binding records which persona serves a conversation and under which theme.
// Persisted under "conversation_expert_{id}".
type Binding struct {
	ExpertID        string            `json:"expertId"`
	ThemeID         string            `json:"themeId"`
	UserPreferences map[string]string `json:"userPreferences,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// Context is the assembled per-conversation view served to the orchestrator.
type Context struct {
	ConversationID string
	Snapshot       PromptSnapshot
	Binding        Binding
}
