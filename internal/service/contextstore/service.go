package contextstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/serein-care/serein/backend/internal/model/conversation"
	"github.com/serein-care/serein/backend/internal/model/persona"
	"github.com/serein-care/serein/backend/internal/service/ai"
)

var (
	ErrPersonaNotFound = errors.New("persona not found")
	ErrContextMissing  = errors.New("conversation context missing")
)

const (
	promptKeyFormat  = "conversation_system_prompt_%s"
	bindingKeyFormat = "conversation_expert_%s"
)

// AssignParams describes a persona binding request.
type AssignParams struct {
	ConversationID string
	PersonaID      string
	ThemeID        string
	// UserPreferences may carry "culturalBackground" and "language" tags used
	// for localization and cultural adaptation.
	UserPreferences map[string]string
}

// Service owns the per-conversation persona binding and the frozen
// identity-lock snapshot. Operations are independent per conversation key.
type Service struct {
	personas persona.Store
	kv       KV
	// retention of 0 keeps bindings forever, the historical behavior.
	retention time.Duration
	now       func() time.Time
}

// NewService builds the context store over the given backend. retention is the
// TTL applied to both keys; zero disables expiry.
func NewService(personas persona.Store, kv KV, retention time.Duration) *Service {
	return &Service{personas: personas, kv: kv, retention: retention, now: time.Now}
}

// Assign binds a persona to a conversation and freezes the identity-lock
// snapshot. Re-assigning through this method overwrites both keys.
func (s *Service) Assign(ctx context.Context, params AssignParams) error {
	profile, ok := s.personas.FindByID(params.PersonaID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrPersonaNotFound, params.PersonaID)
	}

	snapshot := conversation.PromptSnapshot{
		PersonaID:            profile.ID,
		SystemPrompt:         ai.BuildIdentityLock(profile),
		SpecialtyDescription: profile.SpecialtyDescription(),
		Name:                 profile.Name,
		Specialty:            profile.Specialty,
		Approach:             profile.Approach,
		Personality:          profile.Personality,
		CulturalBackground:   params.UserPreferences["culturalBackground"],
		Language:             profile.Language,
		UpdatedAt:            s.now().UTC(),
	}
	if lang := params.UserPreferences["language"]; lang != "" {
		snapshot.Language = lang
	}

	binding := conversation.Binding{
		ExpertID:        profile.ID,
		ThemeID:         params.ThemeID,
		UserPreferences: params.UserPreferences,
		CreatedAt:       s.now().UTC(),
	}

	if err := s.writeJSON(ctx, fmt.Sprintf(promptKeyFormat, params.ConversationID), snapshot); err != nil {
		return err
	}
	return s.writeJSON(ctx, fmt.Sprintf(bindingKeyFormat, params.ConversationID), binding)
}

// Get loads the context for a conversation, or ErrContextMissing.
func (s *Service) Get(ctx context.Context, conversationID string) (*conversation.Context, error) {
	var snapshot conversation.PromptSnapshot
	found, err := s.readJSON(ctx, fmt.Sprintf(promptKeyFormat, conversationID), &snapshot)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrContextMissing, conversationID)
	}

	var binding conversation.Binding
	if _, err := s.readJSON(ctx, fmt.Sprintf(bindingKeyFormat, conversationID), &binding); err != nil {
		return nil, err
	}

	return &conversation.Context{
		ConversationID: conversationID,
		Snapshot:       snapshot,
		Binding:        binding,
	}, nil
}

// Reassign hands the conversation to a new persona, preserving theme and
// preferences, and returns a transition line attributed to the new persona.
func (s *Service) Reassign(ctx context.Context, conversationID, newPersonaID string) (string, error) {
	current, err := s.Get(ctx, conversationID)
	if err != nil {
		return "", err
	}

	profile, ok := s.personas.FindByID(newPersonaID)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrPersonaNotFound, newPersonaID)
	}

	params := AssignParams{
		ConversationID:  conversationID,
		PersonaID:       newPersonaID,
		ThemeID:         current.Binding.ThemeID,
		UserPreferences: current.Binding.UserPreferences,
	}
	if err := s.Assign(ctx, params); err != nil {
		return "", err
	}

	transition := fmt.Sprintf(
		"Bonjour, je suis %s, %s. Ma collègue m'a transmis l'essentiel de votre parcours, et je reprends nos échanges avec toute mon attention. Reprenons là où vous en êtes.",
		profile.Name, profile.Title)
	return transition, nil
}

func (s *Service) writeJSON(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.kv.Set(ctx, key, string(raw), s.retention)
}

func (s *Service) readJSON(ctx context.Context, key string, out any) (bool, error) {
	raw, found, err := s.kv.Get(ctx, key)
	if err != nil || !found {
		return found, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return true, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}
