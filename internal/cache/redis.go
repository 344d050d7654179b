package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/optomarket/optomarket-api/internal/config"
	"github.com/optomarket/optomarket-api/internal/logger"

	"github.com/redis/go-redis/v9"
)

var (
	client *redis.Client
	prefix string
)

// InitRedis connects the shared client. A failed ping disables the
// cache instead of aborting startup.
func InitRedis(cfg config.RedisConfig) error {
	if !cfg.Enabled {
		logger.Infow("redis_cache_disabled")
		return nil
	}
	c := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		logger.Warnw("redis_unreachable_cache_disabled", "error", err)
		return err
	}
	client = c
	prefix = cfg.Prefix
	logger.Infow("redis_cache_ready", "addr", c.Options().Addr, "prefix", prefix)
	return nil
}

// Enabled reports whether the cache is usable.
func Enabled() bool {
	return client != nil
}

// Client exposes the raw connection for callers that need more than
// the JSON helpers, such as rate limiting.
func Client() *redis.Client {
	return client
}

// Key builds a namespaced cache key.
func Key(parts ...interface{}) string {
	key := prefix
	for _, p := range parts {
		key += fmt.Sprintf(":%v", p)
	}
	return key
}

// GetJSON reads a cached value into dest. The bool reports a hit.
func GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if client == nil {
		return false, nil
	}
	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores a value with a TTL.
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, raw, ttl).Err()
}

// Delete removes keys. Missing keys are not an error.
func Delete(ctx context.Context, keys ...string) error {
	if client == nil || len(keys) == 0 {
		return nil
	}
	return client.Del(ctx, keys...).Err()
}

// DeleteByPattern removes every key matching a glob pattern via SCAN.
func DeleteByPattern(ctx context.Context, pattern string) error {
	if client == nil {
		return nil
	}
	iter := client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return Delete(ctx, keys...)
}
