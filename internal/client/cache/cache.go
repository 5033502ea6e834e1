// Package cache is a small in-memory TTL cache for server responses.
// It exists so list/detail screens do not re-fetch on every redraw, and so
// logout can discard every cached authenticated response in one call.
package cache

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	data      any
	expiresAt time.Time
}

type Cache struct {
	store    sync.Map
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a cache with the given default TTL and starts a background
// sweep that evicts expired entries. Call Close on teardown.
func New(ttl time.Duration) *Cache {
	c := &Cache{
		ttl:  ttl,
		stop: make(chan struct{}),
	}
	go c.sweep()
	return c
}

func (c *Cache) Get(key string) (any, bool) {
	val, ok := c.store.Load(key)
	if !ok {
		return nil, false
	}

	e := val.(entry)
	if time.Now().After(e.expiresAt) {
		c.store.Delete(key)
		return nil, false
	}

	return e.data, true
}

func (c *Cache) Set(key string, value any) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL.
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) {
	c.store.Store(key, entry{
		data:      value,
		expiresAt: time.Now().Add(ttl),
	})
}

func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

// DeletePrefix evicts every key under the given prefix. Services group their
// keys by resource ("tasks:", "groups:") so a write can invalidate the whole
// resource without touching the rest of the cache.
func (c *Cache) DeletePrefix(prefix string) {
	c.store.Range(func(key, _ any) bool {
		if k, ok := key.(string); ok && strings.HasPrefix(k, prefix) {
			c.store.Delete(key)
		}
		return true
	})
}

// Purge discards every entry unconditionally. Invoked on logout so no
// response fetched under one session is ever shown to the next.
func (c *Cache) Purge() {
	c.store.Range(func(key, _ any) bool {
		c.store.Delete(key)
		return true
	})
}

// Close stops the background sweep. Safe to call more than once.
func (c *Cache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.store.Range(func(key, val any) bool {
				if now.After(val.(entry).expiresAt) {
					c.store.Delete(key)
				}
				return true
			})
		case <-c.stop:
			return
		}
	}
}
