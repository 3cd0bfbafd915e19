package redisx

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/config"

	"github.com/redis/go-redis/v9"
)

func New(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return rdb, nil
}
