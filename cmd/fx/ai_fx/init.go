package ai_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyage/internal/ai"
	"voyage/internal/config"
	"voyage/internal/repositories"
	"voyage/internal/services"
)

var Module = fx.Provide(
	ProvideAIConfig,
	ProvideProvider,
	ProvidePlanner,
	ProvidePlannerService)

func ProvideAIConfig(cfg config.Config) ai.Config {
	return ai.Config{
		Provider: cfg.AI.Provider,
		APIKey:   cfg.AI.APIKey,
		Model:    cfg.AI.Model,
		Timeout:  cfg.AI.Timeout,
	}
}

// ProvideProvider never fails: a missing key yields a provider whose every
// call degrades to the fallback payloads.
func ProvideProvider(cfg ai.Config, log *zap.Logger) ai.Provider {
	if cfg.APIKey == "" {
		log.Warn("AI provider not configured, serving fallbacks", zap.String("provider", cfg.Provider))
	} else {
		log.Info("AI provider configured", zap.String("provider", cfg.Provider), zap.String("model", cfg.Model))
	}
	return ai.NewProvider(cfg)
}

func ProvidePlanner(provider ai.Provider, cfg ai.Config, log *zap.Logger) *ai.Planner {
	return ai.NewPlanner(provider, cfg, log)
}

func ProvidePlannerService(
	planner *ai.Planner,
	tripRepo repositories.ITripRepository,
	log *zap.Logger,
) services.PlannerServiceInterface {
	return services.NewPlannerService(planner, tripRepo, log)
}
