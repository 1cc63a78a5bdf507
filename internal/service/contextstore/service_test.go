package contextstore

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/serein-care/serein/backend/internal/model/persona"
)

func newTestService(t *testing.T) (*Service, *persona.MemoryStore) {
	t.Helper()
	store := persona.NewMemoryStore(persona.Seed())
	return NewService(store, NewMemoryKV(), 0), store
}

func TestAssignAndGet(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	profiles := store.List()
	if len(profiles) == 0 {
		t.Fatal("empty catalog")
	}
	target := profiles[0]

	err := svc.Assign(ctx, AssignParams{
		ConversationID:  "conv-1",
		PersonaID:       target.ID,
		ThemeID:         "anxiete",
		UserPreferences: map[string]string{"culturalBackground": "qc"},
	})
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	got, err := svc.Get(ctx, "conv-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Snapshot.PersonaID != target.ID {
		t.Fatalf("snapshot bound to %s, want %s", got.Snapshot.PersonaID, target.ID)
	}
	if got.Snapshot.CulturalBackground != "qc" {
		t.Fatalf("cultural background lost: %q", got.Snapshot.CulturalBackground)
	}
	if !strings.Contains(got.Snapshot.SystemPrompt, "ne révèles jamais") {
		t.Fatal("frozen prompt missing the identity lock")
	}
	if got.Binding.ExpertID != target.ID || got.Binding.ThemeID != "anxiete" {
		t.Fatalf("binding mismatch: %+v", got.Binding)
	}
}

func TestAssignUnknownPersona(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Assign(context.Background(), AssignParams{ConversationID: "conv-1", PersonaID: "nobody"})
	if !errors.Is(err, ErrPersonaNotFound) {
		t.Fatalf("expected ErrPersonaNotFound, got %v", err)
	}
}

func TestGetMissingContext(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), "never-assigned")
	if !errors.Is(err, ErrContextMissing) {
		t.Fatalf("expected ErrContextMissing, got %v", err)
	}
}

func TestLanguagePreferenceOverridesPersonaDefault(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	target := store.List()[0]

	err := svc.Assign(ctx, AssignParams{
		ConversationID:  "conv-lang",
		PersonaID:       target.ID,
		UserPreferences: map[string]string{"language": "en"},
	})
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	got, err := svc.Get(ctx, "conv-lang")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Snapshot.Language != "en" {
		t.Fatalf("language preference ignored: %q", got.Snapshot.Language)
	}
}

func TestReassignPreservesThemeAndPreferences(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	profiles := store.List()
	if len(profiles) < 2 {
		t.Fatal("need at least two personas")
	}

	prefs := map[string]string{"culturalBackground": "be"}
	if err := svc.Assign(ctx, AssignParams{
		ConversationID:  "conv-2",
		PersonaID:       profiles[0].ID,
		ThemeID:         "stress",
		UserPreferences: prefs,
	}); err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	transition, err := svc.Reassign(ctx, "conv-2", profiles[1].ID)
	if err != nil {
		t.Fatalf("reassign failed: %v", err)
	}
	if !strings.Contains(transition, profiles[1].Name) {
		t.Fatalf("transition not attributed to new persona: %q", transition)
	}

	got, err := svc.Get(ctx, "conv-2")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Snapshot.PersonaID != profiles[1].ID {
		t.Fatalf("snapshot not rebound, got %s", got.Snapshot.PersonaID)
	}
	if got.Binding.ThemeID != "stress" {
		t.Fatalf("theme lost on reassign: %q", got.Binding.ThemeID)
	}
	if got.Binding.UserPreferences["culturalBackground"] != "be" {
		t.Fatalf("preferences lost on reassign: %+v", got.Binding.UserPreferences)
	}
}

func TestReassignWithoutAssignment(t *testing.T) {
	svc, store := newTestService(t)

	_, err := svc.Reassign(context.Background(), "conv-none", store.List()[0].ID)
	if !errors.Is(err, ErrContextMissing) {
		t.Fatalf("expected ErrContextMissing, got %v", err)
	}
}

func TestMemoryKVExpiry(t *testing.T) {
	kv := NewMemoryKV()
	current := time.Now()
	kv.now = func() time.Time { return current }
	ctx := context.Background()

	if err := kv.Set(ctx, "k", "v", time.Hour); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, found, _ := kv.Get(ctx, "k"); !found {
		t.Fatal("fresh key should be readable")
	}

	current = current.Add(2 * time.Hour)
	if _, found, _ := kv.Get(ctx, "k"); found {
		t.Fatal("expired key should be gone")
	}
}

func TestMemoryKVZeroTTLKeepsForever(t *testing.T) {
	kv := NewMemoryKV()
	current := time.Now()
	kv.now = func() time.Time { return current }
	ctx := context.Background()

	if err := kv.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	current = current.Add(1000 * time.Hour)
	if _, found, _ := kv.Get(ctx, "k"); !found {
		t.Fatal("zero-TTL key must never expire")
	}
}

func TestRedisKVRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	kv := NewRedisKV(client, "serein")
	ctx := context.Background()

	if err := kv.Set(ctx, "conversation_system_prompt_abc", `{"personaId":"claire-dubois"}`, time.Hour); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	value, found, err := kv.Get(ctx, "conversation_system_prompt_abc")
	if err != nil || !found {
		t.Fatalf("get failed: %v found=%v", err, found)
	}
	if !strings.Contains(value, "claire-dubois") {
		t.Fatalf("unexpected value %q", value)
	}

	if _, found, err := kv.Get(ctx, "unknown"); err != nil || found {
		t.Fatalf("missing key must read as absent without error, got found=%v err=%v", found, err)
	}

	if err := kv.Delete(ctx, "conversation_system_prompt_abc"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, found, _ := kv.Get(ctx, "conversation_system_prompt_abc"); found {
		t.Fatal("deleted key still readable")
	}
}

func TestServiceOverRedisBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := persona.NewMemoryStore(persona.Seed())
	svc := NewService(store, NewRedisKV(client, "serein"), time.Hour)
	ctx := context.Background()
	target := store.List()[0]

	if err := svc.Assign(ctx, AssignParams{ConversationID: "conv-r", PersonaID: target.ID}); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	got, err := svc.Get(ctx, "conv-r")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Snapshot.PersonaID != target.ID {
		t.Fatalf("snapshot bound to %s, want %s", got.Snapshot.PersonaID, target.ID)
	}

	mr.FastForward(2 * time.Hour)
	if _, err := svc.Get(ctx, "conv-r"); !errors.Is(err, ErrContextMissing) {
		t.Fatalf("expired binding should read as missing, got %v", err)
	}
}
