package cache

import (
	"context"
	"errors"
	"time"

	"yatube/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// IndexTTL is how long a rendered index page stays cached. Posts deleted
// inside this window keep appearing on the index until expiry or an
// explicit Clear; that staleness is deliberate.
const IndexTTL = 20 * time.Second

// PageCache caches whole rendered responses keyed by route under a common
// prefix. It is an injectable service rather than a package global so
// callers (and tests) can run independent instances side by side. With a
// nil client every lookup falls through to compute.
type PageCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewPageCache returns a PageCache storing entries under prefix with the given TTL.
func NewPageCache(client *redis.Client, prefix string, ttl time.Duration) *PageCache {
	return &PageCache{client: client, prefix: prefix, ttl: ttl}
}

func (p *PageCache) key(key string) string {
	return p.prefix + ":" + key
}

// GetOrCompute returns the cached bytes for key if present and unexpired.
// On miss it invokes compute, stores the result with the cache TTL, and
// returns it. Cached entries are served as-is even when the underlying
// store has changed since they were written.
func (p *PageCache) GetOrCompute(ctx context.Context, key string, compute func() ([]byte, error)) ([]byte, error) {
	if p.client == nil {
		return compute()
	}

	cached, err := p.client.Get(ctx, p.key(key)).Bytes()
	if err == nil {
		middleware.CacheRequests.WithLabelValues("hit").Inc()
		return cached, nil
	}
	if !errors.Is(err, redis.Nil) {
		// Redis trouble: fail open and serve a live response.
		return compute()
	}

	middleware.CacheRequests.WithLabelValues("miss").Inc()
	body, err := compute()
	if err != nil {
		return nil, err
	}

	// Best-effort store; a failed write only costs the next request a recompute.
	_ = p.client.Set(ctx, p.key(key), body, p.ttl).Err()
	return body, nil
}

// Clear deletes every entry under the cache prefix immediately, regardless
// of remaining TTL. Safe to call concurrently with reads and writes.
func (p *PageCache) Clear(ctx context.Context) error {
	if p.client == nil {
		return nil
	}

	var cursor uint64
	for {
		keys, next, err := p.client.Scan(ctx, cursor, p.prefix+":*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := p.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
