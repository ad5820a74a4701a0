package server

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_cache_hits_total",
		Help: "The total number of responses served from cache",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_cache_misses_total",
		Help: "The total number of responses that had to be computed",
	})
)

// CacheHelper reads through a ResponseCache. A nil cache always computes.
type CacheHelper[T any] struct {
	Cache      ResponseCache
	Expiration time.Duration
}

func NewCacheHelper[T any](cache ResponseCache, expiration time.Duration) *CacheHelper[T] {
	return &CacheHelper[T]{Cache: cache, Expiration: expiration}
}

// Handle fills out from the cache or from fn. Cache failures only cost a recompute;
// errors from fn are returned and nothing is stored.
func (c *CacheHelper[T]) Handle(ctx context.Context, key string, out *T, fn func() (T, error)) (bool, error) {
	if c.Cache != nil && c.Cache.Get(ctx, key, out) == nil {
		cacheHits.Inc()
		return true, nil
	}
	cacheMisses.Inc()
	v, err := fn()
	if err != nil {
		return false, err
	}
	*out = v
	if c.Cache != nil {
		_ = c.Cache.Set(ctx, key, v, c.Expiration)
	}
	return false, nil
}
