package tokenstore

import (
	"context"
	"strings"

	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/pkg/constvars"
)

// tokenStore keeps the upstream bearer token in the cache store without a TTL.
type tokenStore struct {
	store contracts.CacheStore
	key   string
}

func NewTokenStore(store contracts.CacheStore) contracts.TokenStore {
	return &tokenStore{store: store, key: constvars.AuthTokenKey}
}

// Get returns "" when no token is stored.
func (s *tokenStore) Get(ctx context.Context) (string, error) {
	value, found, err := s.store.Find(ctx, s.key)
	if err != nil || !found {
		return "", err
	}
	return string(value), nil
}

func (s *tokenStore) Set(ctx context.Context, token string) error {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), constvars.BearerPrefix))
	if token == "" {
		return s.Clear(ctx)
	}
	return s.store.Set(ctx, s.key, []byte(token), 0)
}

func (s *tokenStore) Clear(ctx context.Context) error {
	return s.store.Remove(ctx, s.key)
}
