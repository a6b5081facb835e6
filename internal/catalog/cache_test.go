package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*ListCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewListCache(client, time.Minute), mr
}

func TestListCacheFetchPopulates(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	calls := 0
	loader := func(ctx context.Context) ([]Product, error) {
		calls++
		return []Product{{ID: 1, Name: "Coca", SKU: "COCA-2L", Quantity: 24}}, nil
	}

	products, err := cache.Fetch(ctx, loader)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, 1, calls)
	require.True(t, mr.Exists(listCacheKey))

	// Second fetch is served from Redis.
	products, err = cache.Fetch(ctx, loader)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "COCA-2L", products[0].SKU)
	require.Equal(t, 1, calls)
}

func TestListCacheInvalidate(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	calls := 0
	loader := func(ctx context.Context) ([]Product, error) {
		calls++
		return nil, nil
	}

	_, err := cache.Fetch(ctx, loader)
	require.NoError(t, err)
	require.NoError(t, cache.Invalidate(ctx))
	require.False(t, mr.Exists(listCacheKey))

	_, err = cache.Fetch(ctx, loader)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestListCacheExpiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	calls := 0
	loader := func(ctx context.Context) ([]Product, error) {
		calls++
		return []Product{{Name: "Pan"}}, nil
	}

	_, err := cache.Fetch(ctx, loader)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = cache.Fetch(ctx, loader)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestListCacheNilClientPassesThrough(t *testing.T) {
	cache := NewListCache(nil, time.Minute)

	products, err := cache.Fetch(context.Background(), func(ctx context.Context) ([]Product, error) {
		return []Product{{Name: "Arroz"}}, nil
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.NoError(t, cache.Invalidate(context.Background()))
}
