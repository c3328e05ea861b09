package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"voyage/cmd/fx/account_fx"
	"voyage/cmd/fx/ai_fx"
	"voyage/cmd/fx/carpool_fx"
	"voyage/cmd/fx/config_fx"
	"voyage/cmd/fx/controllers_fx"
	"voyage/cmd/fx/db_fx"
	"voyage/cmd/fx/logger_fx"
	"voyage/cmd/fx/memcache_fx"
	"voyage/cmd/fx/redis_fx"
	"voyage/cmd/fx/trip_fx"
	"voyage/cmd/fx/weather_fx"
	"voyage/internal/config"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		redis_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		carpool_fx.Module,
		ai_fx.Module,
		weather_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
