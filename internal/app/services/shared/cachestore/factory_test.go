package cachestore

import (
	"testing"

	"patient-records-service/internal/pkg/constvars"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCacheStore(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	t.Run("memory by default", func(t *testing.T) {
		store, err := NewCacheStore("", Dependencies{})
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, store)
	})

	t.Run("redis", func(t *testing.T) {
		store, err := NewCacheStore(constvars.CacheDriverRedis, Dependencies{Redis: client})
		require.NoError(t, err)
		assert.IsType(t, &redisStore{}, store)
	})

	t.Run("redis without client", func(t *testing.T) {
		_, err := NewCacheStore(constvars.CacheDriverRedis, Dependencies{})
		assert.Error(t, err)
	})

	t.Run("mongo without collection", func(t *testing.T) {
		_, err := NewCacheStore(constvars.CacheDriverMongo, Dependencies{})
		assert.Error(t, err)
	})

	t.Run("minio without bucket", func(t *testing.T) {
		_, err := NewCacheStore(constvars.CacheDriverMinio, Dependencies{})
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := NewCacheStore("dynamo", Dependencies{})
		assert.Error(t, err)
	})
}
