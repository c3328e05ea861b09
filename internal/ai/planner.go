package ai

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// Planner runs the six generation operations. None of them returns an error:
// any failed stage is logged and answered with the operation's fallback.
type Planner struct {
	provider Provider
	cfg      Config
	log      *zap.Logger
}

func NewPlanner(provider Provider, cfg Config, log *zap.Logger) *Planner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Planner{provider: provider, cfg: cfg, log: log.Named("ai")}
}

// generate opens a handle, sends the parts and returns the raw reply.
func (p *Planner) generate(ctx context.Context, parts []string, opts GenerateOptions) (string, error) {
	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	handle, err := p.provider.Open(ctx)
	if err != nil {
		if !errors.Is(err, ErrUnavailable) {
			err = errors.Join(ErrUnavailable, err)
		}
		return "", err
	}
	defer func() {
		if cerr := handle.Close(); cerr != nil {
			p.log.Debug("closing model handle", zap.Error(cerr))
		}
	}()

	raw, err := handle.Generate(ctx, parts, opts)
	if err != nil {
		if !errors.Is(err, ErrTransport) {
			err = errors.Join(ErrTransport, err)
		}
		return "", err
	}
	return raw, nil
}

// generateJSON adds the parse stage on top of generate.
func (p *Planner) generateJSON(ctx context.Context, prompt string, opts GenerateOptions) (any, error) {
	raw, err := p.generate(ctx, []string{prompt}, opts)
	if err != nil {
		return nil, err
	}
	return decodeResponse(raw)
}

func (p *Planner) degraded(op string, err error) {
	fields := []zap.Field{zap.String("op", op), zap.String("reason", Reason(err)), zap.Error(err)}
	if errors.Is(err, ErrUnavailable) {
		p.log.Debug("AI operation using fallback", fields...)
		return
	}
	p.log.Warn("AI operation using fallback", fields...)
}

func (p *Planner) GenerateItinerary(ctx context.Context, tc TripContext) Itinerary {
	parsed, err := p.generateJSON(ctx, ItineraryPrompt(tc), GenerateOptions{JSON: true})
	if err == nil {
		var it Itinerary
		if it, err = NormalizeItinerary(parsed); err == nil {
			return it
		}
	}
	p.degraded("itinerary", err)
	return DefaultItinerary()
}

func (p *Planner) GenerateSuggestions(ctx context.Context, location string, budgetCents *int64, durationDays *int, interests []string) SuggestionsResult {
	parsed, err := p.generateJSON(ctx, SuggestionsPrompt(location, budgetCents, durationDays, interests), GenerateOptions{JSON: true})
	if err == nil {
		var items []Suggestion
		if items, err = NormalizeSuggestions(parsed); err == nil {
			return SuggestionsResult{Suggestions: items}
		}
	}
	p.degraded("suggestions", err)
	return DefaultSuggestions(err)
}

func (p *Planner) GenerateRecommendations(ctx context.Context, tc TripContext, activityType string) Recommendations {
	if strings.TrimSpace(activityType) == "" {
		activityType = DefaultActivity
	}
	parsed, err := p.generateJSON(ctx, RecommendationsPrompt(tc, activityType), GenerateOptions{})
	if err == nil {
		var recs Recommendations
		if recs, err = NormalizeRecommendations(parsed, activityType); err == nil {
			return recs
		}
	}
	p.degraded("recommendations", err)
	return DefaultRecommendations(activityType)
}

// Chat answers in plain text; it has no parse stage.
func (p *Planner) Chat(ctx context.Context, message string, chatContext map[string]any) string {
	opts := GenerateOptions{Temperature: float32Ptr(0.7), MaxOutputTokens: int32Ptr(500)}
	raw, err := p.generate(ctx, ChatPrompt(message, chatContext), opts)
	if err == nil {
		if text := strings.TrimSpace(raw); text != "" {
			return text
		}
		err = ErrShape
	}
	p.degraded("chat", err)
	return ChatUnavailableMessage
}

func (p *Planner) GeneratePackingList(ctx context.Context, tc TripContext, additional string) PackingList {
	parsed, err := p.generateJSON(ctx, PackingListPrompt(tc, additional), GenerateOptions{})
	if err == nil {
		var list PackingList
		if list, err = NormalizePackingList(parsed); err == nil {
			return list
		}
	}
	p.degraded("packing_list", err)
	return DefaultPackingList()
}

func (p *Planner) AnalyzeBudget(ctx context.Context, tc TripContext) BudgetAnalysis {
	parsed, err := p.generateJSON(ctx, BudgetPrompt(tc), GenerateOptions{})
	if err == nil {
		var analysis BudgetAnalysis
		if analysis, err = NormalizeBudget(parsed); err == nil {
			return analysis
		}
	}
	p.degraded("budget_analysis", err)
	return DefaultBudgetAnalysis(err)
}
