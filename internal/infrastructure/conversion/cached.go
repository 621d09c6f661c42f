package conversion

import (
	"context"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
)

// JSONCache is the subset of the cache used by the cached converter.
// Satisfied by redis.Cache.
type JSONCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}) error
}

// CachedIUPACConverter memoizes conversion results and collapses concurrent
// requests for the same IUPAC string into one upstream call. Conversion
// failures are never cached.
type CachedIUPACConverter struct {
	next  IUPACConverter
	cache JSONCache
	group singleflight.Group
	obs   Observer
	log   logging.Logger
}

var _ IUPACConverter = (*CachedIUPACConverter)(nil)

// NewCachedIUPACConverter wraps next with cache. obs may be nil.
func NewCachedIUPACConverter(next IUPACConverter, cache JSONCache, obs Observer, log logging.Logger) *CachedIUPACConverter {
	return &CachedIUPACConverter{next: next, cache: cache, obs: obs, log: log.Named("conversion_cache")}
}

func conversionKey(iupac string) string {
	return "conv:iupac2wurcs:" + strings.ToLower(iupac)
}

// IUPACToWURCS serves from cache when possible; cache errors fall through to
// the upstream converter.
func (c *CachedIUPACConverter) IUPACToWURCS(ctx context.Context, iupac string) (*IUPACResult, error) {
	key := conversionKey(iupac)

	var cached IUPACResult
	hit, err := c.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		c.log.Warn("cache unavailable, converting directly", logging.Err(err))
	} else if hit {
		observe(c.obs, "iupac2wurcs_cache", "hit")
		return &cached, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		result, err := c.next.IUPACToWURCS(ctx, iupac)
		if err != nil {
			return nil, err
		}
		if err := c.cache.SetJSON(ctx, key, result); err != nil {
			c.log.Warn("cache write failed", logging.Err(err))
		}
		return result, nil
	})
	if err != nil {
		observe(c.obs, "iupac2wurcs_cache", "error")
		return nil, err
	}
	observe(c.obs, "iupac2wurcs_cache", "miss")
	return v.(*IUPACResult), nil
}
