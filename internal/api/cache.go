package api

import (
	lru "github.com/hashicorp/golang-lru"
)

// responseCache keeps encoded response bodies by request URL. The engine is
// immutable, so entries never go stale for the life of the process. A nil
// *responseCache is a disabled cache.
type responseCache struct {
	lru *lru.Cache
}

func newResponseCache(size int) (*responseCache, error) {
	if size <= 0 {
		return nil, nil
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &responseCache{lru: c}, nil
}

func (c *responseCache) get(key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

func (c *responseCache) add(key string, body []byte) {
	if c == nil {
		return
	}
	c.lru.Add(key, body)
}

func (c *responseCache) len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
