package ai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type openAIProvider struct {
	apiKey string
	model  string
}

func (p *openAIProvider) Open(context.Context) (Handle, error) {
	return &openAIHandle{client: openai.NewClient(p.apiKey), model: p.model}, nil
}

type openAIHandle struct {
	client *openai.Client
	model  string
}

// Generate maps the leading part to a system message when more than one part
// is given.
func (h *openAIHandle) Generate(ctx context.Context, parts []string, opts GenerateOptions) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    h.model,
		Messages: openAIMessages(parts),
	}
	if opts.JSON {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}
	}
	if opts.Temperature != nil {
		req.Temperature = *opts.Temperature
	}
	if opts.MaxOutputTokens != nil {
		req.MaxTokens = int(*opts.MaxOutputTokens)
	}

	resp, err := h.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: openai: %v", ErrTransport, err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: openai returned no text", ErrTransport)
	}
	return resp.Choices[0].Message.Content, nil
}

func (h *openAIHandle) Close() error { return nil }

func openAIMessages(parts []string) []openai.ChatCompletionMessage {
	msgs := make([]openai.ChatCompletionMessage, 0, len(parts))
	for i, p := range parts {
		role := openai.ChatMessageRoleUser
		if i == 0 && len(parts) > 1 {
			role = openai.ChatMessageRoleSystem
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: p})
	}
	return msgs
}
