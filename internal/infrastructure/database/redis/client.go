// Package redis provides the Redis-backed cache used to memoize external
// conversion results.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/glycoshape/glycoshape-api/internal/config"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
	apperrors "github.com/glycoshape/glycoshape-api/pkg/errors"
)

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(cfg config.RedisConfig, log logging.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, apperrors.Wrap(err, apperrors.ErrCodeCacheError, "connecting to redis")
	}

	log.Info("redis connected", logging.String("addr", cfg.Addr))
	return client, nil
}
