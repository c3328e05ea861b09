package weather_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyage/internal/config"
	"voyage/internal/services"
	"voyage/internal/weather"
)

var Module = fx.Provide(
	provideWeatherSource, provideWeatherService)

func provideWeatherSource(cfg config.Config, log *zap.Logger) weather.Source {
	if cfg.Weather.APIKey == "" {
		log.Warn("OpenWeather key not configured, serving sample weather")
	}
	return weather.NewSource(weather.Config{
		APIKey:  cfg.Weather.APIKey,
		BaseURL: cfg.Weather.BaseURL,
		Timeout: cfg.Weather.Timeout,
	})
}

func provideWeatherService(source weather.Source, log *zap.Logger) services.WeatherServiceInterface {
	return services.NewWeatherService(source, log)
}
