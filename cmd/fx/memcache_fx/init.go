package memcache_fx

import (
	"time"

	"go.uber.org/fx"

	"voyage/internal/config"
	mem "voyage/pkg/memcache"
)

const limiterIdleTTL = 30 * time.Minute

var Module = fx.Provide(provideLimiters)

func provideLimiters(cfg config.Config) mem.LimiterStore {
	return mem.NewLimiters(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst, limiterIdleTTL)
}
