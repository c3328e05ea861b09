package redis_fx

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyage/internal/config"
	"voyage/internal/infra"
	"voyage/internal/repositories"
)

var Module = fx.Provide(
	provideRedis, provideTokenBlacklist)

func provideRedis(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) *redis.Client {
	client := infra.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Logout checks fail closed while Redis is down; boot anyway.
			if err := infra.PingRedis(ctx, client); err != nil {
				log.Warn("redis unreachable", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client
}

func provideTokenBlacklist(client *redis.Client) repositories.TokenBlacklist {
	return repositories.NewTokenBlacklist(client)
}
