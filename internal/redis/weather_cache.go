package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"safewalk/internal/domain"
)

// WeatherCache memoizes upstream weather lookups. Coordinates are rounded to
// two decimals (roughly a 1 km cell) so nearby requests share an entry.
type WeatherCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewWeatherCache(r *Redis, ttl time.Duration) *WeatherCache {
	return &WeatherCache{
		client: r.Client,
		ttl:    ttl,
	}
}

func (c *WeatherCache) Get(ctx context.Context, coord domain.Coordinate) (domain.Weather, bool, error) {
	var w domain.Weather

	data, err := c.client.Get(ctx, weatherKey(coord)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return w, false, nil
		}
		return w, false, err
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return w, false, err
	}
	return w, true, nil
}

func (c *WeatherCache) Set(ctx context.Context, coord domain.Coordinate, w domain.Weather) error {
	b, err := json.Marshal(w)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, weatherKey(coord), b, c.ttl).Err()
}

func weatherKey(c domain.Coordinate) string {
	return fmt.Sprintf("weather:%.2f:%.2f", c.Lat, c.Lng)
}
