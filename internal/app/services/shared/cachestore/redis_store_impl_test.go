package cachestore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return server, client
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	server, client := newTestRedisStore(t)
	store := NewRedisStore(client)

	t.Run("set then find", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "k", []byte(`{"a":1}`), time.Minute))

		value, found, err := store.Find(ctx, "k")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte(`{"a":1}`), value)
	})

	t.Run("missing key is not an error", func(t *testing.T) {
		_, found, err := store.Find(ctx, "absent")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("ttl expiry", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "short", []byte("v"), time.Second))
		server.FastForward(2 * time.Second)

		_, found, err := store.Find(ctx, "short")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("zero ttl persists", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "token", []byte("t"), 0))
		assert.Equal(t, time.Duration(0), server.TTL("token"))
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "gone", []byte("v"), time.Minute))
		require.NoError(t, store.Remove(ctx, "gone"))
		assert.False(t, server.Exists("gone"))
	})
}

func TestRedisStore_ClearPrefix(t *testing.T) {
	ctx := context.Background()
	server, client := newTestRedisStore(t)
	store := NewRedisStore(client)

	for i := 0; i < redisScanBatchSize+15; i++ {
		require.NoError(t, store.Set(ctx, fmt.Sprintf("app:cache:GET:/patient/%d", i), []byte("v"), time.Minute))
	}
	require.NoError(t, store.Set(ctx, "app:auth_token", []byte("t"), 0))

	require.NoError(t, store.ClearPrefix(ctx, "app:cache:"))

	assert.Equal(t, []string{"app:auth_token"}, server.Keys())
}

func TestRedisStore_ServerDown(t *testing.T) {
	ctx := context.Background()
	server, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: server.Addr(), MaxRetries: -1})
	defer client.Close()
	store := NewRedisStore(client)
	server.Close()

	_, _, err = store.Find(ctx, "k")
	assert.Error(t, err)
}

func TestRedisStore_ClearPrefixSeveralBatches(t *testing.T) {
	ctx := context.Background()
	server, client := newTestRedisStore(t)
	store := NewRedisStore(client)

	for i := 0; i < 3*redisScanBatchSize+7; i++ {
		require.NoError(t, server.Set(fmt.Sprintf("app:cache:GET:/patientRecord/%d", i), "v"))
	}
	require.NoError(t, server.Set("app:other", "keep"))

	require.NoError(t, store.ClearPrefix(ctx, "app:cache:"))
	assert.Equal(t, []string{"app:other"}, server.Keys(), "every prefixed key should be gone")

	require.NoError(t, store.ClearPrefix(ctx, "app:cache:"), "clearing an empty prefix is a no-op")
}
