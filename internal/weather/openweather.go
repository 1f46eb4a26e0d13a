// Package weather implements the provider boundary the scorer reads through.
// Lookups are best-effort: any upstream failure degrades to a neutral
// fallback instead of failing the scoring call.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"safewalk/internal/config"
	"safewalk/internal/domain"
)

// conditionScores mirrors the fixed score table of the original model:
// better weather, higher score.
var conditionScores = map[domain.WeatherCondition]int{
	domain.WeatherClear:  90,
	domain.WeatherCloudy: 70,
	domain.WeatherRainy:  40,
	domain.WeatherStormy: 20,
}

// Fallback is returned whenever the upstream cannot be reached.
var Fallback = domain.Weather{Condition: domain.WeatherClear, Score: 75, Temperature: 25}

type OpenWeather struct {
	logger *slog.Logger
	cfg    config.WeatherConfig
	http   *http.Client
}

func NewOpenWeather(logger *slog.Logger, cfg config.WeatherConfig) *OpenWeather {
	return &OpenWeather{
		logger: logger,
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
	}
}

type owmResponse struct {
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// Current samples the weather at a coordinate. Never fails: upstream errors
// are logged and replaced by Fallback.
func (w *OpenWeather) Current(ctx context.Context, c domain.Coordinate) domain.Weather {
	if w.cfg.APIKey == "" {
		return Fallback
	}

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", c.Lat))
	q.Set("lon", fmt.Sprintf("%f", c.Lng))
	q.Set("units", "metric")
	q.Set("appid", w.cfg.APIKey)

	reqURL := w.cfg.BaseURL + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		w.logger.Error("weather request build failed", slog.Any("error", err))
		return Fallback
	}

	resp, err := w.http.Do(req)
	if err != nil {
		w.logger.Warn("weather fetch failed", slog.Any("error", err))
		return Fallback
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		w.logger.Warn("weather fetch bad status", slog.String("status", resp.Status))
		return Fallback
	}

	var body owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		w.logger.Warn("weather decode failed", slog.Any("error", err))
		return Fallback
	}

	cond := domain.WeatherCloudy
	if len(body.Weather) > 0 {
		cond = mapCondition(body.Weather[0].Main)
	}

	return domain.Weather{
		Condition:   cond,
		Score:       conditionScores[cond],
		Temperature: body.Main.Temp,
	}
}

func mapCondition(main string) domain.WeatherCondition {
	switch main {
	case "Clear":
		return domain.WeatherClear
	case "Thunderstorm", "Tornado", "Squall":
		return domain.WeatherStormy
	case "Rain", "Drizzle", "Snow":
		return domain.WeatherRainy
	default:
		return domain.WeatherCloudy
	}
}

// Static always returns the same observation. Used when no API key is
// configured and in tests.
type Static struct {
	Weather domain.Weather
}

func NewStatic(w domain.Weather) *Static { return &Static{Weather: w} }

func (s *Static) Current(_ context.Context, _ domain.Coordinate) domain.Weather {
	return s.Weather
}
