package tokenstore

import (
	"context"
	"testing"

	"patient-records-service/internal/app/services/shared/cachestore"
	"patient-records-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStore(t *testing.T) {
	ctx := context.Background()
	backing := cachestore.NewMemoryStore()
	store := NewTokenStore(backing)

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token, "no token should be stored initially")

	require.NoError(t, store.Set(ctx, "Bearer abc.def.ghi"))
	token, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token, "bearer prefix should be stripped")

	raw, found, err := backing.Find(ctx, constvars.AuthTokenKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "abc.def.ghi", string(raw))

	require.NoError(t, store.Clear(ctx))
	token, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestTokenStore_BlankClears(t *testing.T) {
	ctx := context.Background()
	store := NewTokenStore(cachestore.NewMemoryStore())

	require.NoError(t, store.Set(ctx, "abc"))
	require.NoError(t, store.Set(ctx, "   "))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}
