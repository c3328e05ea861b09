package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type geminiProvider struct {
	apiKey string
	model  string
}

func (p *geminiProvider) Open(ctx context.Context) (Handle, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", ErrUnavailable, err)
	}
	return &geminiHandle{client: client, model: p.model}, nil
}

type geminiHandle struct {
	client *genai.Client
	model  string
}

func (h *geminiHandle) Generate(ctx context.Context, parts []string, opts GenerateOptions) (string, error) {
	m := h.client.GenerativeModel(h.model)
	if opts.JSON {
		m.ResponseMIMEType = "application/json"
	}
	if opts.Temperature != nil {
		m.SetTemperature(*opts.Temperature)
	}
	if opts.MaxOutputTokens != nil {
		m.SetMaxOutputTokens(*opts.MaxOutputTokens)
	}

	prompt := make([]genai.Part, 0, len(parts))
	for _, p := range parts {
		prompt = append(prompt, genai.Text(p))
	}

	resp, err := m.GenerateContent(ctx, prompt...)
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", ErrTransport, err)
	}

	text := geminiText(resp)
	if text == "" {
		return "", fmt.Errorf("%w: gemini returned no text", ErrTransport)
	}
	return text, nil
}

func (h *geminiHandle) Close() error {
	return h.client.Close()
}

// geminiText returns the text of the first candidate that carries any.
func geminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				sb.WriteString(string(txt))
			}
		}
		if sb.Len() > 0 {
			return sb.String()
		}
	}
	return ""
}
