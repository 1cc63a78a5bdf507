package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/serein-care/serein/backend/internal/model/chat"
)

// ArkProvider is the primary completion backend: a compiled eino chain over an
// Ark chat model.
type ArkProvider struct {
	chatModel model.ChatModel
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewArkProvider compiles the prompt template and model into a runnable chain.
func NewArkProvider(ctx context.Context, chatModel model.ChatModel) (*ArkProvider, error) {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &ArkProvider{chatModel: chatModel, chain: runnable}, nil
}

func (p *ArkProvider) Name() string { return "ark" }

// Generate runs one completion through the chain. Vendor failures come back as
// ProviderError so the orchestrator advances the fallback chain.
func (p *ArkProvider) Generate(ctx context.Context, req Request) (Response, error) {
	input := map[string]any{
		"system":  req.SystemInstruction,
		"history": toSchemaHistory(req.History),
		"query":   req.Message,
	}

	msg, err := p.chain.Invoke(ctx, input)
	if err != nil {
		return Response{}, &ProviderError{Provider: p.Name(), Err: err}
	}
	if msg == nil || msg.Content == "" {
		return Response{}, &ProviderError{Provider: p.Name(), Err: fmt.Errorf("empty completion")}
	}

	resp := Response{Text: msg.Content}
	if msg.ResponseMeta != nil && msg.ResponseMeta.Usage != nil {
		resp.Usage = Usage{
			PromptTokens:     msg.ResponseMeta.Usage.PromptTokens,
			CompletionTokens: msg.ResponseMeta.Usage.CompletionTokens,
		}
	}

	log.Printf("[ai] ark completion ok, length=%d", len(resp.Text))
	return resp, nil
}

func toSchemaHistory(history []chat.Message) []*schema.Message {
	if len(history) == 0 {
		return nil
	}
	out := make([]*schema.Message, 0, len(history))
	for _, msg := range history {
		switch msg.Role {
		case chat.RoleUser:
			out = append(out, schema.UserMessage(msg.Content))
		case chat.RoleAssistant:
			out = append(out, schema.AssistantMessage(msg.Content, nil))
		}
	}
	return out
}
