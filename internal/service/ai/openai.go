package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/serein-care/serein/backend/internal/model/chat"
)

// OpenAICompatConfig configures the secondary completion backend, any endpoint
// speaking the chat-completions wire format.
type OpenAICompatConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}

// OpenAICompatProvider is the ordered fallback behind the Ark chain. It talks
// plain HTTP; timeout behavior belongs to the injected http.Client.
type OpenAICompatProvider struct {
	cfg    OpenAICompatConfig
	client *http.Client
}

// NewOpenAICompatProvider builds the provider. A nil client falls back to
// http.DefaultClient.
func NewOpenAICompatProvider(cfg OpenAICompatConfig, client *http.Client) *OpenAICompatProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &OpenAICompatProvider{cfg: cfg, client: client}
}

func (p *OpenAICompatProvider) Name() string { return "openai-compat" }

type compatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type compatRequest struct {
	Model       string          `json:"model"`
	Messages    []compatMessage `json:"messages"`
	Temperature float64         `json:"temperature,omitempty"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
}

type compatResponse struct {
	Choices []struct {
		Message compatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate adapts the provider-neutral request to the messages-array wire
// format: system instruction first, then history, then the user message.
func (p *OpenAICompatProvider) Generate(ctx context.Context, req Request) (Response, error) {
	messages := make([]compatMessage, 0, len(req.History)+2)
	if req.SystemInstruction != "" {
		messages = append(messages, compatMessage{Role: "system", Content: req.SystemInstruction})
	}
	for _, msg := range req.History {
		if msg.Role != chat.RoleUser && msg.Role != chat.RoleAssistant {
			continue
		}
		messages = append(messages, compatMessage{Role: msg.Role, Content: msg.Content})
	}
	messages = append(messages, compatMessage{Role: "user", Content: req.Message})

	payload, err := json.Marshal(compatRequest{
		Model:       p.cfg.Model,
		Messages:    messages,
		Temperature: p.cfg.Temperature,
		MaxTokens:   p.cfg.MaxTokens,
	})
	if err != nil {
		return Response{}, &ProviderError{Provider: p.Name(), Err: err}
	}

	url := strings.TrimSuffix(p.cfg.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return Response{}, &ProviderError{Provider: p.Name(), Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	}

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return Response{}, &ProviderError{Provider: p.Name(), Err: err}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
	if err != nil {
		return Response{}, &ProviderError{Provider: p.Name(), Err: err}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return Response{}, &ProviderError{
			Provider: p.Name(),
			Err:      fmt.Errorf("unexpected status %d: %s", httpResp.StatusCode, truncate(string(body), 200)),
		}
	}

	var parsed compatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Response{}, &ProviderError{Provider: p.Name(), Err: err}
	}
	if parsed.Error != nil {
		return Response{}, &ProviderError{Provider: p.Name(), Err: fmt.Errorf("%s", parsed.Error.Message)}
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return Response{}, &ProviderError{Provider: p.Name(), Err: fmt.Errorf("empty completion")}
	}

	return Response{
		Text: parsed.Choices[0].Message.Content,
		Usage: Usage{
			PromptTokens:     parsed.Usage.PromptTokens,
			CompletionTokens: parsed.Usage.CompletionTokens,
		},
	}, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
