package rates

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultCacheTTL         = time.Minute
	DefaultCacheMaxEntries  = 1024
	DefaultCacheLoadTimeout = 10 * time.Second
)

// CacheOptions configures a RateCache. LoadTimeout bounds one shared upstream load.
type CacheOptions struct {
	TTL         time.Duration
	MaxEntries  int
	LoadTimeout time.Duration
}

// CacheHooks are optional callbacks used to export cache metrics.
type CacheHooks struct {
	OnHit  func(key string)
	OnMiss func(key string)
}

type cacheEntry struct {
	rate      float64
	expiresAt time.Time
}

// RateCache keeps oracle rates for a short time. Failed loads are never stored.
//
// Concurrent misses for the same key share one loader call. The loader runs detached
// from any single caller's cancellation and is bounded by LoadTimeout; each caller stops
// waiting when its own context ends. Past MaxEntries the oldest key is evicted first.
type RateCache struct {
	mu    sync.RWMutex
	items map[string]cacheEntry
	order []string
	opts  CacheOptions
	hooks CacheHooks
	sf    singleflight.Group
	now   func() time.Time
}

type RateLoader func(ctx context.Context) (float64, error)

func NewRateCache(opts CacheOptions, hooks CacheHooks) *RateCache {
	if opts.TTL <= 0 {
		opts.TTL = DefaultCacheTTL
	}
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = DefaultCacheMaxEntries
	}
	if opts.LoadTimeout <= 0 {
		opts.LoadTimeout = DefaultCacheLoadTimeout
	}
	return &RateCache{
		items: make(map[string]cacheEntry),
		order: make([]string, 0, 64),
		opts:  opts,
		hooks: hooks,
		now:   time.Now,
	}
}

func (c *RateCache) Get(ctx context.Context, key string, loader RateLoader) (float64, error) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()
	if ok && c.now().Before(e.expiresAt) {
		if c.hooks.OnHit != nil {
			c.hooks.OnHit(key)
		}
		return e.rate, nil
	}

	if c.hooks.OnMiss != nil {
		c.hooks.OnMiss(key)
	}
	ch := c.sf.DoChan(key, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.opts.LoadTimeout)
		defer cancel()
		rate, err := loader(loadCtx)
		if err != nil {
			return 0.0, err
		}
		c.store(key, rate)
		return rate, nil
	})

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return 0, res.Err
		}
		return res.Val.(float64), nil
	}
}

func (c *RateCache) store(key string, rate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[key]; !exists {
		c.order = append(c.order, key)
	}
	c.items[key] = cacheEntry{rate: rate, expiresAt: c.now().Add(c.opts.TTL)}

	for len(c.items) > c.opts.MaxEntries && len(c.order) > 0 {
		victim := c.order[0]
		c.order = c.order[1:]
		delete(c.items, victim)
	}
}

func (c *RateCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; !ok {
		return
	}
	delete(c.items, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *RateCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]cacheEntry)
	c.order = c.order[:0]
}

func (c *RateCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
