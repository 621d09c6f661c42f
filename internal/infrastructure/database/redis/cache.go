package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
	apperrors "github.com/glycoshape/glycoshape-api/pkg/errors"
)

// Cache is a small JSON-value cache on top of a Redis client. Errors other
// than a miss are reported so callers can decide whether to proceed without
// the cache.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
	log logging.Logger
}

// NewCache wraps an established Redis client.
func NewCache(rdb *redis.Client, ttl time.Duration, log logging.Logger) *Cache {
	return &Cache{rdb: rdb, ttl: ttl, log: log.Named("cache")}
}

// GetJSON loads the value stored at key into dest. The boolean reports
// whether the key was present.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.Wrap(err, apperrors.ErrCodeCacheError, "cache read")
	}
	if err := json.Unmarshal(data, dest); err != nil {
		// A corrupt entry behaves like a miss; the caller recomputes and
		// overwrites it.
		c.log.Warn("dropping corrupt cache entry", logging.String("key", key), logging.Err(err))
		_ = c.rdb.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

// SetJSON stores value at key with the cache TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeSerialization, "encoding cache value")
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeCacheError, "cache write")
	}
	return nil
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.rdb.Close()
}
