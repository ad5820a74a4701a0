package server

import (
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newLocalOnlyCache(maxLocal int) *Cache {
	c := NewCacheWithClient(redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"}))
	c.maxLocal = maxLocal
	return c
}

func TestLocalCacheSweepsExpiredEntries(t *testing.T) {
	c := newLocalOnlyCache(4)
	defer c.Close()
	for i := range 3 {
		c.setLocal(fmt.Sprintf("old-%d", i), []byte("1"), -time.Second)
	}
	c.setLocal("live", []byte("2"), time.Minute)
	assert.Len(t, c.memCache, 4)

	c.setLocal("next", []byte("3"), time.Minute)
	assert.Len(t, c.memCache, 2)
	_, found := c.getLocal("live")
	assert.True(t, found)
	_, found = c.getLocal("next")
	assert.True(t, found)
}

func TestLocalCacheStaysBounded(t *testing.T) {
	c := newLocalOnlyCache(8)
	defer c.Close()
	for i := range 100 {
		c.setLocal(fmt.Sprintf("key-%d", i), []byte("1"), time.Minute)
		assert.LessOrEqual(t, len(c.memCache), 8)
	}
	_, found := c.getLocal("key-99")
	assert.True(t, found)
}

func TestLocalCacheOverwriteDoesNotSweep(t *testing.T) {
	c := newLocalOnlyCache(2)
	defer c.Close()
	c.setLocal("a", []byte("1"), time.Minute)
	c.setLocal("b", []byte("1"), time.Minute)
	c.setLocal("b", []byte("2"), time.Minute)
	assert.Len(t, c.memCache, 2)
}
