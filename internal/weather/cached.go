package weather

import (
	"context"
	"log/slog"

	"safewalk/internal/domain"
)

// CacheStore is the memoization backend for weather lookups.
type CacheStore interface {
	Get(ctx context.Context, c domain.Coordinate) (domain.Weather, bool, error)
	Set(ctx context.Context, c domain.Coordinate, w domain.Weather) error
}

// Provider samples current conditions at a coordinate.
type Provider interface {
	Current(ctx context.Context, c domain.Coordinate) domain.Weather
}

// Cached wraps a provider with a cache. Cache errors degrade to the wrapped
// provider; a lookup never fails.
type Cached struct {
	logger *slog.Logger
	inner  Provider
	cache  CacheStore
}

func NewCached(logger *slog.Logger, inner Provider, cache CacheStore) *Cached {
	return &Cached{
		logger: logger,
		inner:  inner,
		cache:  cache,
	}
}

func (p *Cached) Current(ctx context.Context, c domain.Coordinate) domain.Weather {
	if w, ok, err := p.cache.Get(ctx, c); err == nil && ok {
		return w
	} else if err != nil {
		p.logger.Warn("weather cache read failed", slog.String("error", err.Error()))
	}

	w := p.inner.Current(ctx, c)

	if err := p.cache.Set(ctx, c, w); err != nil {
		p.logger.Warn("weather cache write failed", slog.String("error", err.Error()))
	}
	return w
}
