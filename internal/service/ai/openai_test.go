package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/serein-care/serein/backend/internal/model/chat"
)

func TestOpenAICompatGenerate(t *testing.T) {
	var captured compatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("missing bearer auth, got %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode failed: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Je vous écoute."}},
			},
			"usage": map[string]int{"prompt_tokens": 42, "completion_tokens": 7},
		})
	}))
	defer server.Close()

	provider := NewOpenAICompatProvider(OpenAICompatConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Model:   "test-model",
	}, server.Client())

	resp, err := provider.Generate(context.Background(), Request{
		SystemInstruction: "instruction",
		History: []chat.Message{
			{Role: chat.RoleUser, Content: "bonjour"},
			{Role: chat.RoleAssistant, Content: "bonjour, je vous écoute"},
			{Role: "system", Content: "interne"},
		},
		Message: "je me sens tendu",
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if resp.Text != "Je vous écoute." {
		t.Fatalf("unexpected text %q", resp.Text)
	}
	if resp.Usage.PromptTokens != 42 || resp.Usage.CompletionTokens != 7 {
		t.Fatalf("usage not mapped: %+v", resp.Usage)
	}

	// system first, two history turns, user message last; foreign roles dropped.
	if len(captured.Messages) != 4 {
		t.Fatalf("expected 4 wire messages, got %d", len(captured.Messages))
	}
	if captured.Messages[0].Role != "system" {
		t.Fatalf("system instruction must lead, got %q", captured.Messages[0].Role)
	}
	if captured.Messages[3].Role != "user" || captured.Messages[3].Content != "je me sens tendu" {
		t.Fatalf("user message must close the array: %+v", captured.Messages[3])
	}
	if captured.Model != "test-model" {
		t.Fatalf("model not forwarded: %q", captured.Model)
	}
}

func TestOpenAICompatNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := NewOpenAICompatProvider(OpenAICompatConfig{BaseURL: server.URL}, server.Client())
	_, err := provider.Generate(context.Background(), Request{Message: "bonjour"})

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if provErr.Provider != "openai-compat" {
		t.Fatalf("wrong provider tag %q", provErr.Provider)
	}
}

func TestOpenAICompatEmptyCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	provider := NewOpenAICompatProvider(OpenAICompatConfig{BaseURL: server.URL}, server.Client())
	if _, err := provider.Generate(context.Background(), Request{Message: "bonjour"}); err == nil {
		t.Fatal("empty choices must fail so the chain advances")
	}
}

func TestTruncateCutsOnRunes(t *testing.T) {
	long := strings.Repeat("é", 10)
	got := truncate(long, 4)
	if got != strings.Repeat("é", 4)+"…" {
		t.Fatalf("unexpected truncation %q", got)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("truncation split a UTF-8 sequence: %q", got)
	}
	if truncate("court", 10) != "court" {
		t.Fatal("short strings must pass through unchanged")
	}
}

func TestOpenAICompatVendorError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"error": map[string]string{"message": "model overloaded"}})
	}))
	defer server.Close()

	provider := NewOpenAICompatProvider(OpenAICompatConfig{BaseURL: server.URL}, server.Client())
	_, err := provider.Generate(context.Background(), Request{Message: "bonjour"})
	if err == nil {
		t.Fatal("vendor error payload must be surfaced")
	}
}
