// Package redis caches computed page statistics in Redis as JSON.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"backoffice/internal/config/configs"
	"backoffice/internal/core/port"
)

// NewClient connects to the Redis server described by cfg.
func NewClient(cfg configs.Redis) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
}

// StatsCache implements port.StatsCache.
type StatsCache struct {
	rdb goredis.Cmdable
	ttl time.Duration
}

var _ port.StatsCache = (*StatsCache)(nil)

// NewStatsCache returns a cache writing entries with the given TTL. A
// non-positive ttl uses TTLStats.
func NewStatsCache(rdb goredis.Cmdable, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = TTLStats
	}
	return &StatsCache{rdb: rdb, ttl: ttl}
}

func (c *StatsCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, err := c.rdb.Get(ctx, fmt.Sprintf(KeyStats, key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err = json.Unmarshal(b, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (c *StatsCache) Set(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, fmt.Sprintf(KeyStats, key), b, c.ttl).Err()
}

func (c *StatsCache) Invalidate(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, fmt.Sprintf(KeyStats, key)).Err()
}
