package services

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

const (
	coverCacheSize = 2048
	coverCacheTTL  = 24 * time.Hour
)

type coverCacheEntry struct {
	exists    bool
	expiresAt time.Time
}

// coverCache memoizes cover existence checks so repeated history loads do not
// hammer the bucket with HeadObject calls.
type coverCache struct {
	cache *lru.Cache
}

func newCoverCache() (*coverCache, error) {
	cache, err := lru.New(coverCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create cover cache: %w", err)
	}
	return &coverCache{cache: cache}, nil
}

func (c *coverCache) get(key string) (exists, ok bool) {
	value, ok := c.cache.Get(key)
	if !ok {
		return false, false
	}
	entry := value.(coverCacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.cache.Remove(key)
		return false, false
	}
	return entry.exists, true
}

func (c *coverCache) put(key string, exists bool) {
	c.cache.Add(key, coverCacheEntry{
		exists:    exists,
		expiresAt: time.Now().Add(coverCacheTTL),
	})
}
