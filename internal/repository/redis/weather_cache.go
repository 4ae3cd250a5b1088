package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"skyStop/domain"

	"github.com/redis/go-redis/v9"
)

// WeatherCache stores weather snapshots per city so repeated discovery calls
// for the same destination do not hammer the upstream provider.
type WeatherCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewWeatherCache(client *redis.Client, ttl time.Duration) *WeatherCache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &WeatherCache{
		client: client,
		ttl:    ttl,
	}
}

func weatherKey(city string) string {
	return fmt.Sprintf("weather:city:%s", city)
}

func (c *WeatherCache) Get(ctx context.Context, city string) (domain.WeatherSnapshot, bool, error) {
	val, err := c.client.Get(ctx, weatherKey(city)).Result()
	if err == redis.Nil {
		return domain.WeatherSnapshot{}, false, nil
	}
	if err != nil {
		return domain.WeatherSnapshot{}, false, fmt.Errorf("failed to get weather from Redis: %w", err)
	}

	var snap domain.WeatherSnapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return domain.WeatherSnapshot{}, false, fmt.Errorf("failed to unmarshal weather snapshot: %w", err)
	}

	return snap, true, nil
}

func (c *WeatherCache) Set(ctx context.Context, city string, snap domain.WeatherSnapshot) error {
	jsonData, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal weather snapshot: %w", err)
	}

	if err := c.client.Set(ctx, weatherKey(city), jsonData, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store weather in Redis: %w", err)
	}

	return nil
}

func (c *WeatherCache) Invalidate(ctx context.Context, city string) error {
	if err := c.client.Del(ctx, weatherKey(city)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate weather cache: %w", err)
	}
	return nil
}
