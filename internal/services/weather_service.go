package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"voyage/internal/models/response_models"
	"voyage/internal/weather"
)

const (
	unknownLocation   = "Unknown"
	sampleSummary     = "Partly cloudy"
	sampleTempC       = 24.0
	unavailableReport = "Weather unavailable"
)

type WeatherServiceInterface interface {
	// Current never fails: an unconfigured source yields the sample reading and
	// a failed lookup yields an "unavailable" reading with no temperature.
	Current(ctx context.Context, location string) response_models.WeatherResponse
}

type WeatherService struct {
	source weather.Source
	now    func() time.Time
	log    *zap.Logger
}

func NewWeatherService(source weather.Source, log *zap.Logger) WeatherServiceInterface {
	return &WeatherService{
		source: source,
		now:    time.Now,
		log:    log.Named("WeatherService"),
	}
}

func (w *WeatherService) Current(ctx context.Context, location string) response_models.WeatherResponse {
	location = strings.TrimSpace(location)
	if location == "" {
		location = unknownLocation
	}
	report := response_models.WeatherResponse{
		Location:    location,
		RetrievedAt: w.now().UTC().Format(time.RFC3339),
	}

	conditions, err := w.source.Current(ctx, location)
	switch {
	case err == nil:
		report.Summary = conditions.Summary
		report.TempC = &conditions.TempC
	case errors.Is(err, weather.ErrUnavailable):
		temp := sampleTempC
		report.Summary = sampleSummary
		report.TempC = &temp
	default:
		w.log.Warn("weather lookup failed", zap.String("location", location), zap.Error(err))
		report.Summary = unavailableReport
	}
	return report
}
