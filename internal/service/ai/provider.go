package ai

import (
	"context"
	"fmt"

	"github.com/serein-care/serein/backend/internal/model/chat"
)

// Request is the provider-neutral completion request built by the composer.
type Request struct {
	SystemInstruction string
	History           []chat.Message
	Message           string
}

// Usage reports token accounting when the vendor supplies it.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
}

// Response is a successful completion.
type Response struct {
	Text  string
	Usage Usage
}

// Provider is a single completion backend. Implementations are injected into
// the orchestrator at construction; there is no module-level client state.
type Provider interface {
	Name() string
	Generate(ctx context.Context, req Request) (Response, error)
}

// ProviderError wraps vendor failures (quota, network, non-2xx status) so the
// orchestrator can advance the fallback chain without inspecting vendor types.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s unavailable: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
