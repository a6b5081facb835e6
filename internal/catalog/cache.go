package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const listCacheKey = "catalog:products"

// ListCache keeps the full product list in Redis. The list is small and read
// on every storefront load, so one key with a short TTL is enough. A nil
// client degrades to pass-through.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListCache instantiates the cache helper.
func NewListCache(client *redis.Client, ttl time.Duration) *ListCache {
	return &ListCache{client: client, ttl: ttl}
}

// Fetch loads the cached list or populates it using the loader.
func (c *ListCache) Fetch(ctx context.Context, loader func(context.Context) ([]Product, error)) ([]Product, error) {
	if loader == nil {
		return nil, errors.New("catalog: cache loader required")
	}
	if c == nil || c.client == nil {
		return loader(ctx)
	}

	payload, err := c.client.Get(ctx, listCacheKey).Bytes()
	if err == nil {
		var products []Product
		if err := json.Unmarshal(payload, &products); err == nil {
			return products, nil
		}
		// Corrupt entry: fall through and rebuild.
	} else if !errors.Is(err, redis.Nil) {
		return nil, err
	}

	products, err := loader(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return nil, err
	}
	if err := c.client.Set(ctx, listCacheKey, raw, c.ttl).Err(); err != nil {
		return nil, err
	}
	return products, nil
}

// Invalidate drops the cached list. Safe to call with a nil client.
func (c *ListCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, listCacheKey).Err()
}
