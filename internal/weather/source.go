package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"
)

// ErrUnavailable means no API key is configured.
var ErrUnavailable = errors.New("weather source unavailable")

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Conditions is one current-weather reading.
type Conditions struct {
	Summary string
	TempC   float64
}

// Source looks up current conditions for a free-text location.
type Source interface {
	Current(ctx context.Context, location string) (Conditions, error)
}

// NewSource returns an OpenWeather client, or a source that always reports
// ErrUnavailable when cfg has no key.
func NewSource(cfg Config) Source {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return unavailableSource{}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &openWeather{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type unavailableSource struct{}

func (unavailableSource) Current(context.Context, string) (Conditions, error) {
	return Conditions{}, ErrUnavailable
}

type openWeather struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type currentWeatherReply struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
}

func (o *openWeather) Current(ctx context.Context, location string) (Conditions, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", o.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Conditions{}, fmt.Errorf("building weather request: %w", err)
	}
	res, err := o.client.Do(req)
	if err != nil {
		return Conditions{}, fmt.Errorf("requesting weather: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return Conditions{}, fmt.Errorf("weather API returned %d", res.StatusCode)
	}

	var reply currentWeatherReply
	if err := json.NewDecoder(res.Body).Decode(&reply); err != nil {
		return Conditions{}, fmt.Errorf("decoding weather reply: %w", err)
	}
	if len(reply.Weather) == 0 || reply.Main.Temp == nil {
		return Conditions{}, errors.New("weather reply missing description or temperature")
	}
	return Conditions{
		Summary: titleCase(reply.Weather[0].Description),
		TempC:   *reply.Main.Temp,
	}, nil
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
