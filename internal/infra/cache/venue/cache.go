// Package venue кэширует настройки площадки в Redis.
package venue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
)

const settingsKey = "venue:settings"

// ErrCacheMiss возвращается, когда значения нет в кэше
var ErrCacheMiss = errors.New("venue.cache: miss")

// Cache кэш настроек площадки
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewCache создает кэш. ttl <= 0 отключает запись
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: client, ttl: ttl}
}

// Get читает настройки из кэша
func (c *Cache) Get(ctx context.Context) (*domain.VenueSettings, error) {
	data, err := c.redis.Get(ctx, settingsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get venue settings: %w", err)
	}

	var settings domain.VenueSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("unmarshal cached venue settings: %w", err)
	}

	return &settings, nil
}

// Set кладет настройки в кэш
func (c *Cache) Set(ctx context.Context, settings *domain.VenueSettings) error {
	if c.ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal venue settings for cache: %w", err)
	}

	if err := c.redis.Set(ctx, settingsKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set venue settings: %w", err)
	}

	return nil
}

// Invalidate удаляет настройки из кэша
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.redis.Del(ctx, settingsKey).Err(); err != nil {
		return fmt.Errorf("redis del venue settings: %w", err)
	}
	return nil
}
