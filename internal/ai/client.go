package ai

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	DefaultGeminiModel = "gemini-1.5-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// Config is resolved once at startup and handed to NewProvider.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

// GenerateOptions are optional per-call generation settings.
type GenerateOptions struct {
	JSON            bool
	Temperature     *float32
	MaxOutputTokens *int32
}

// Handle issues generation requests against one provider session.
type Handle interface {
	// Generate sends the parts in order and returns the text of the reply.
	Generate(ctx context.Context, parts []string, opts GenerateOptions) (string, error)
	Close() error
}

// Provider opens a fresh Handle for every operation.
type Provider interface {
	Open(ctx context.Context) (Handle, error)
}

// NewProvider picks the backend named in cfg. Without an API key the returned
// provider always reports ErrUnavailable.
func NewProvider(cfg Config) Provider {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return unavailableProvider{}
	}

	switch strings.ToLower(cfg.Provider) {
	case "openai":
		if cfg.Model == "" {
			cfg.Model = DefaultOpenAIModel
		}
		return &openAIProvider{apiKey: cfg.APIKey, model: cfg.Model}
	default:
		if cfg.Model == "" {
			cfg.Model = DefaultGeminiModel
		}
		return &geminiProvider{apiKey: cfg.APIKey, model: cfg.Model}
	}
}

type unavailableProvider struct{}

func (unavailableProvider) Open(context.Context) (Handle, error) {
	return nil, fmt.Errorf("%w: no API key configured", ErrUnavailable)
}

func float32Ptr(v float32) *float32 { return &v }

func int32Ptr(v int32) *int32 { return &v }
