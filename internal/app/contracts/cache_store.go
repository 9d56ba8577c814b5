package contracts

import (
	"context"
	"time"
)

// CacheStore is the storage contract behind the HTTP response cache and the
// auth token. Find reports found=false for missing or expired keys.
type CacheStore interface {
	Find(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Remove(ctx context.Context, key string) error
	ClearPrefix(ctx context.Context, prefix string) error
}

type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
