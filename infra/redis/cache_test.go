package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestCache(t *testing.T) {
	ctx := context.Background()

	t.Run("delete without keys is a no-op", func(t *testing.T) {
		cache := NewCache(unreachableClient(t))
		assert.NoError(t, cache.Delete(ctx))
	})

	t.Run("unencodable values never reach the server", func(t *testing.T) {
		cache := NewCache(unreachableClient(t))

		err := cache.Set(ctx, "k", make(chan int), time.Minute)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "json")
	})

	t.Run("unreachable server", func(t *testing.T) {
		cache := NewCache(unreachableClient(t))

		var dest map[string]any
		assert.Error(t, cache.Get(ctx, "k", &dest))
		assert.Nil(t, dest)
	})
}
