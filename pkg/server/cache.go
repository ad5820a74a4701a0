package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cache miss")

// ResponseCache stores encoded responses by key.
type ResponseCache interface {
	Get(ctx context.Context, key string, out any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

type localEntry struct {
	expires time.Time
	data    []byte
}

// Cache is a redis backed cache with a short lived in-process copy of recent entries.
type Cache struct {
	client   *redis.Client
	local    time.Duration
	maxLocal int
	mu       sync.Mutex
	memCache map[string]localEntry
}

const defaultMaxLocalEntries = 1024

func NewCache(addr, password string, db int) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return NewCacheWithClient(rdb)
}

func NewCacheWithClient(client *redis.Client) *Cache {
	return &Cache{client: client, local: time.Minute, maxLocal: defaultMaxLocalEntries, memCache: make(map[string]localEntry)}
}

func (c *Cache) getLocal(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, found := c.memCache[key]
	if !found {
		return nil, false
	}
	if entry.expires.Before(time.Now()) {
		delete(c.memCache, key)
		return nil, false
	}
	return entry.data, true
}

// sweepUnsafe drops expired entries and, when the copy is still full, all of them.
func (c *Cache) sweepUnsafe(now time.Time) {
	for k, e := range c.memCache {
		if e.expires.Before(now) {
			delete(c.memCache, k)
		}
	}
	if len(c.memCache) >= c.maxLocal {
		clear(c.memCache)
	}
}

func (c *Cache) setLocal(key string, data []byte, expiration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.memCache[key]; !found && len(c.memCache) >= c.maxLocal {
		c.sweepUnsafe(time.Now())
	}
	c.memCache[key] = localEntry{expires: time.Now().Add(min(expiration, c.local)), data: data}
}

func (c *Cache) Get(ctx context.Context, key string, out any) error {
	data, found := c.getLocal(key)
	if !found {
		s, err := c.client.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		if err != nil {
			return err
		}
		data = []byte(s)
		c.setLocal(key, data, c.local)
	}
	return sonic.Unmarshal(data, out)
}

func (c *Cache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	data, err := sonic.Marshal(value)
	if err != nil {
		return err
	}
	c.setLocal(key, data, expiration)
	return c.client.Set(ctx, key, data, expiration).Err()
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}
