// Package cache stores derived API payloads in Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-ranker/pkg/metrics"
	"movie-ranker/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is a JSON value cache. Get reports false on a miss.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Close() error
}

// NewRedis connects to Redis and checks it with a ping.
func NewRedis(ctx context.Context, cfg utils.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}

// New returns a Redis-backed cache, or a no-op cache when cfg.Addr is empty.
func New(ctx context.Context, cfg utils.RedisConfig, log *zap.Logger) (Cache, error) {
	if cfg.Addr == "" {
		log.Info("Redis address not set, response cache disabled")
		return Noop{}, nil
	}

	client, err := NewRedis(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info("Redis connected", zap.String("addr", cfg.Addr))
	return NewRedisCache(client, cfg.TTL, log), nil
}

type redisCache struct {
	rdb redis.Cmdable
	ttl time.Duration
	log *zap.Logger
}

// NewRedisCache wraps an existing client.
func NewRedisCache(rdb redis.Cmdable, ttl time.Duration, log *zap.Logger) Cache {
	return &redisCache{
		rdb: rdb,
		ttl: ttl,
		log: log.With(zap.String("component", "cache")),
	}
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheLookupsTotal.WithLabelValues("redis", "miss").Inc()
		return false, nil
	}
	if err != nil {
		metrics.CacheLookupsTotal.WithLabelValues("redis", "error").Inc()
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		metrics.CacheLookupsTotal.WithLabelValues("redis", "error").Inc()
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	metrics.CacheLookupsTotal.WithLabelValues("redis", "hit").Inc()
	return true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	c.log.Debug("Cached value", zap.String("key", key), zap.Int("bytes", len(raw)))
	return nil
}

func (c *redisCache) Close() error {
	if closer, ok := c.rdb.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Noop) Set(context.Context, string, any) error         { return nil }
func (Noop) Close() error                                   { return nil }
