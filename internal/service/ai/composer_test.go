package ai

import (
	"fmt"
	"strings"
	"testing"

	"github.com/serein-care/serein/backend/internal/analysis/emotion"
	"github.com/serein-care/serein/backend/internal/model/chat"
	"github.com/serein-care/serein/backend/internal/model/conversation"
	"github.com/serein-care/serein/backend/internal/model/persona"
)

func testProfile(t *testing.T) persona.Profile {
	t.Helper()
	seed := persona.Seed()
	if len(seed) == 0 {
		t.Fatal("empty persona catalog")
	}
	return seed[0]
}

func TestBuildIdentityLockLeadsWithNeverReveal(t *testing.T) {
	lock := BuildIdentityLock(testProfile(t))

	revealIdx := strings.Index(lock, "ne révèles jamais")
	if revealIdx == -1 {
		t.Fatal("identity lock must contain the never-reveal clause")
	}
	specialtyIdx := strings.Index(lock, "Spécialité")
	if specialtyIdx == -1 || revealIdx > specialtyIdx {
		t.Fatal("never-reveal clause must precede the specialty description")
	}
}

func TestBuildIdentityLockCarriesBiography(t *testing.T) {
	profile := testProfile(t)
	lock := BuildIdentityLock(profile)

	if !strings.Contains(lock, profile.Name) {
		t.Fatalf("lock missing persona name %q", profile.Name)
	}
	if !strings.Contains(lock, fmt.Sprintf("%d ans", profile.YearsOfPractice)) {
		t.Fatal("lock missing years of practice")
	}
	if !strings.Contains(lock, profile.Approach) {
		t.Fatal("lock missing approach")
	}
}

func TestComposeIsByteIdentical(t *testing.T) {
	profile := testProfile(t)
	snapshot := conversation.PromptSnapshot{
		SystemPrompt:       BuildIdentityLock(profile),
		CulturalBackground: "qc",
		Language:           "fr",
	}
	reading := emotion.Reading{Emotion: emotion.Anxiety, Intensity: 4}
	history := []chat.Message{
		{Role: chat.RoleUser, Content: "bonjour"},
		{Role: chat.RoleAssistant, Content: "bonjour, je vous écoute"},
	}

	first := Compose(&profile, snapshot, reading, history)
	second := Compose(&profile, snapshot, reading, history)
	if first.SystemInstruction != second.SystemInstruction {
		t.Fatal("instruction payload must be byte-identical for identical inputs")
	}
	if len(first.History) != len(second.History) {
		t.Fatal("history window must be stable")
	}
}

func TestComposeOmitsCulturalClauseWhenUnset(t *testing.T) {
	profile := testProfile(t)
	snapshot := conversation.PromptSnapshot{SystemPrompt: BuildIdentityLock(profile)}

	req := Compose(&profile, snapshot, emotion.Reading{Emotion: emotion.Neutral, Intensity: emotion.DefaultIntensity}, nil)
	if strings.Contains(req.SystemInstruction, "Contexte culturel") {
		t.Fatal("cultural clause must not appear without a declared background")
	}
}

func TestComposeEmotionalGuidanceVariesWithIntensity(t *testing.T) {
	profile := testProfile(t)
	snapshot := conversation.PromptSnapshot{SystemPrompt: BuildIdentityLock(profile)}

	low := Compose(&profile, snapshot, emotion.Reading{Emotion: emotion.Sadness, Intensity: 1}, nil)
	high := Compose(&profile, snapshot, emotion.Reading{Emotion: emotion.Sadness, Intensity: 2}, nil)
	if low.SystemInstruction == high.SystemInstruction {
		t.Fatal("different intensities should rotate the guidance phrases")
	}
}

func TestComposeSkipsGuidanceWithoutProfile(t *testing.T) {
	req := Compose(nil, GenericSnapshot(), emotion.Reading{Emotion: emotion.Sadness, Intensity: 5}, nil)
	if strings.Contains(req.SystemInstruction, "État émotionnel perçu") {
		t.Fatal("persona-less turns must not embed pattern guidance")
	}
}

func TestBoundHistoryKeepsLastWindow(t *testing.T) {
	history := make([]chat.Message, 0, HistoryWindow+5)
	for i := 0; i < HistoryWindow+5; i++ {
		history = append(history, chat.Message{Role: chat.RoleUser, Content: fmt.Sprintf("message %d", i)})
	}

	req := Compose(nil, GenericSnapshot(), emotion.Reading{Emotion: emotion.Neutral}, history)
	if len(req.History) != HistoryWindow {
		t.Fatalf("expected %d retained messages, got %d", HistoryWindow, len(req.History))
	}
	if req.History[0].Content != "message 5" {
		t.Fatalf("window should start at the fifth message, got %q", req.History[0].Content)
	}
}

func TestBoundHistoryDropsForeignRoles(t *testing.T) {
	history := []chat.Message{
		{Role: chat.RoleUser, Content: "un"},
		{Role: "system", Content: "interne"},
		{Role: chat.RoleAssistant, Content: "deux"},
	}
	req := Compose(nil, GenericSnapshot(), emotion.Reading{Emotion: emotion.Neutral}, history)
	if len(req.History) != 2 {
		t.Fatalf("expected 2 retained messages, got %d", len(req.History))
	}
}
