package redisx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// OrderCache stores encoded orders in Redis so that several instances share
// one read cache. Redis failures degrade to cache misses.
type OrderCache struct {
	logger *slog.Logger
	rdb    redis.Cmdable
	ttl    time.Duration
}

func NewOrderCache(logger *slog.Logger, rdb redis.Cmdable, ttl time.Duration) *OrderCache {
	return &OrderCache{
		logger: logger.With(slog.String("component", "redis_cache")),
		rdb:    rdb,
		ttl:    ttl,
	}
}

func (c *OrderCache) Get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	data, err := c.rdb.Get(ctx, fmt.Sprintf(KeyOrder, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("failed to read from redis", slog.String("key", key), slog.Any("error", err))
		return nil, false
	}
	return data, true
}

func (c *OrderCache) Set(key string, value []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := c.rdb.Set(ctx, fmt.Sprintf(KeyOrder, key), value, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to write to redis", slog.String("key", key), slog.Any("error", err))
	}
}

func (c *OrderCache) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := c.rdb.Del(ctx, fmt.Sprintf(KeyOrder, key)).Err(); err != nil {
		c.logger.Warn("failed to delete from redis", slog.String("key", key), slog.Any("error", err))
	}
}
