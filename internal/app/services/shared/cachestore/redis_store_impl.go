package cachestore

import (
	"context"
	"errors"
	"time"

	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/pkg/exceptions"

	"github.com/redis/go-redis/v9"
)

const redisScanBatchSize = 100

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) contracts.CacheStore {
	return &redisStore{client: client}
}

func (r *redisStore) Find(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, exceptions.ErrCacheStoreFind(err, key)
	}
	return data, true, nil
}

func (r *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		return exceptions.ErrCacheStoreSet(err, key)
	}
	return nil
}

func (r *redisStore) Remove(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrCacheStoreRemove(err, key)
	}
	return nil
}

// ClearPrefix finishes the SCAN before deleting anything; deleting while the
// cursor walks the keyspace can skip keys.
func (r *redisStore) ClearPrefix(ctx context.Context, prefix string) error {
	var keys []string
	iter := r.client.Scan(ctx, 0, prefix+"*", redisScanBatchSize).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return exceptions.ErrCacheStoreClearPrefix(err, prefix)
	}

	for start := 0; start < len(keys); start += redisScanBatchSize {
		end := start + redisScanBatchSize
		if end > len(keys) {
			end = len(keys)
		}
		if err := r.client.Del(ctx, keys[start:end]...).Err(); err != nil {
			return exceptions.ErrCacheStoreClearPrefix(err, prefix)
		}
	}
	return nil
}
