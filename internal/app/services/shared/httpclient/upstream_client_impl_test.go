package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"patient-records-service/internal/app/services/shared/cachestore"
	"patient-records-service/internal/app/services/shared/tokenstore"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type upstreamStub struct {
	server    *httptest.Server
	hits      int32
	status    int32
	lastAuth  atomic.Value
	lastBody  atomic.Value
	responses func(r *http.Request) string
}

func newUpstreamStub(t *testing.T) *upstreamStub {
	t.Helper()
	stub := &upstreamStub{status: http.StatusOK}
	stub.lastAuth.Store("")
	stub.lastBody.Store("")
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit := atomic.AddInt32(&stub.hits, 1)
		stub.lastAuth.Store(r.Header.Get(constvars.HeaderAuthorization))
		body, _ := io.ReadAll(r.Body)
		stub.lastBody.Store(string(body))

		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.WriteHeader(int(atomic.LoadInt32(&stub.status)))
		if stub.responses != nil {
			w.Write([]byte(stub.responses(r)))
			return
		}
		w.Write([]byte(`{"hit":` + strconv.Itoa(int(hit)) + `}`))
	}))
	t.Cleanup(stub.server.Close)
	return stub
}

func (s *upstreamStub) Hits() int {
	return int(atomic.LoadInt32(&s.hits))
}

func newTestClient(stub *upstreamStub, clock *testClock) (*upstreamClient, *cachestore.MemoryStore) {
	store := cachestore.NewMemoryStoreWithClock(clock.Now)
	tokens := tokenstore.NewTokenStore(store)
	client := NewUpstreamClient(Config{
		BaseURL:  stub.server.URL,
		CacheTTL: 5 * time.Minute,
		Timeout:  5 * time.Second,
	}, store, tokens, zap.NewNop(), WithClock(clock.Now))
	return client.(*upstreamClient), store
}

func TestUpstreamClient_GetCachesWithinTTL(t *testing.T) {
	ctx := context.Background()
	stub := newUpstreamStub(t)
	clock := &testClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	client, _ := newTestClient(stub, clock)

	first, err := client.Get(ctx, "/patient_all")
	require.NoError(t, err)

	clock.Advance(4 * time.Minute)
	second, err := client.Get(ctx, "/patient_all")
	require.NoError(t, err)

	assert.Equal(t, first, second, "second GET within the TTL should return the cached body")
	assert.Equal(t, 1, stub.Hits(), "second GET within the TTL should not reach the network")
}

func TestUpstreamClient_RefetchAfterInvalidate(t *testing.T) {
	ctx := context.Background()
	stub := newUpstreamStub(t)
	clock := &testClock{now: time.Now()}
	client, _ := newTestClient(stub, clock)

	first, err := client.Get(ctx, "/patient_all")
	require.NoError(t, err)

	require.NoError(t, client.Invalidate(ctx, "/patient_all"))

	second, err := client.Get(ctx, "/patient_all")
	require.NoError(t, err)

	assert.Equal(t, 2, stub.Hits(), "GET after invalidation should issue a fresh network call")
	assert.NotEqual(t, first, second)
}

func TestUpstreamClient_RefetchAfterExpiry(t *testing.T) {
	ctx := context.Background()
	stub := newUpstreamStub(t)
	clock := &testClock{now: time.Now()}
	client, _ := newTestClient(stub, clock)

	_, err := client.Get(ctx, "/patient_all")
	require.NoError(t, err)

	clock.Advance(5 * time.Minute)
	_, err = client.Get(ctx, "/patient_all")
	require.NoError(t, err)

	assert.Equal(t, 2, stub.Hits(), "an entry at its expiry time should not be served")
}

func TestUpstreamClient_InvalidateAll(t *testing.T) {
	ctx := context.Background()
	stub := newUpstreamStub(t)
	clock := &testClock{now: time.Now()}
	client, store := newTestClient(stub, clock)

	require.NoError(t, store.Set(ctx, constvars.AuthTokenKey, []byte("opaque-token"), 0))
	_, err := client.Get(ctx, "/patient_all")
	require.NoError(t, err)
	_, err = client.Get(ctx, "/patient/1")
	require.NoError(t, err)

	require.NoError(t, client.InvalidateAll(ctx))

	_, err = client.Get(ctx, "/patient_all")
	require.NoError(t, err)
	_, err = client.Get(ctx, "/patient/1")
	require.NoError(t, err)

	assert.Equal(t, 4, stub.Hits())
	_, found, _ := store.Find(ctx, constvars.AuthTokenKey)
	assert.True(t, found, "clearing the cache should keep the auth token")
}

func TestUpstreamClient_MutationsBypassCache(t *testing.T) {
	ctx := context.Background()
	stub := newUpstreamStub(t)
	clock := &testClock{now: time.Now()}
	client, store := newTestClient(stub, clock)

	_, err := client.Post(ctx, "/patient", map[string]string{"name": "Jane"})
	require.NoError(t, err)
	_, err = client.Post(ctx, "/patient", map[string]string{"name": "Jane"})
	require.NoError(t, err)
	_, err = client.Put(ctx, "/patient/1", map[string]string{"name": "Jane"})
	require.NoError(t, err)
	_, err = client.Delete(ctx, "/patient/1")
	require.NoError(t, err)

	assert.Equal(t, 4, stub.Hits())
	assert.Equal(t, 0, store.Len(), "mutations should never populate the cache")
}

func TestUpstreamClient_PostSendsJSONBody(t *testing.T) {
	ctx := context.Background()
	stub := newUpstreamStub(t)
	clock := &testClock{now: time.Now()}
	client, _ := newTestClient(stub, clock)

	_, err := client.Post(ctx, "/patient", map[string]interface{}{"name": "Jane", "age": 30})
	require.NoError(t, err)

	assert.JSONEq(t, `{"name":"Jane","age":30}`, stub.lastBody.Load().(string))
}

func TestUpstreamClient_BearerToken(t *testing.T) {
	ctx := context.Background()
	stub := newUpstreamStub(t)
	clock := &testClock{now: time.Now()}
	client, store := newTestClient(stub, clock)
	tokens := tokenstore.NewTokenStore(store)

	t.Run("no token no header", func(t *testing.T) {
		_, err := client.Post(ctx, "/patient", nil)
		require.NoError(t, err)
		assert.Equal(t, "", stub.lastAuth.Load().(string))
	})

	t.Run("opaque token attached", func(t *testing.T) {
		require.NoError(t, tokens.Set(ctx, "opaque-token"))
		_, err := client.Post(ctx, "/patient", nil)
		require.NoError(t, err)
		assert.Equal(t, "Bearer opaque-token", stub.lastAuth.Load().(string))
	})

	t.Run("expired jwt dropped and cleared", func(t *testing.T) {
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": clock.Now().Add(-time.Hour).Unix(),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)
		require.NoError(t, tokens.Set(ctx, expired))

		_, err = client.Post(ctx, "/patient", nil)
		require.NoError(t, err)
		assert.Equal(t, "", stub.lastAuth.Load().(string))

		token, err := tokens.Get(ctx)
		require.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("valid jwt attached", func(t *testing.T) {
		valid, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": clock.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)
		require.NoError(t, tokens.Set(ctx, valid))

		_, err = client.Post(ctx, "/patient", nil)
		require.NoError(t, err)
		assert.Equal(t, "Bearer "+valid, stub.lastAuth.Load().(string))
	})
}

func TestUpstreamClient_UnauthorizedClearsToken(t *testing.T) {
	ctx := context.Background()
	stub := newUpstreamStub(t)
	atomic.StoreInt32(&stub.status, http.StatusUnauthorized)
	clock := &testClock{now: time.Now()}
	client, store := newTestClient(stub, clock)
	tokens := tokenstore.NewTokenStore(store)
	require.NoError(t, tokens.Set(ctx, "stale-token"))

	_, err := client.Get(ctx, "/patient_all")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, exceptions.StatusCode(err))

	token, err := tokens.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token, "a 401 should clear the stored token")
}

func TestUpstreamClient_FailuresPropagateAndAreNotCached(t *testing.T) {
	statuses := []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusBadRequest}

	for _, status := range statuses {
		t.Run(http.StatusText(status), func(t *testing.T) {
			ctx := context.Background()
			stub := newUpstreamStub(t)
			atomic.StoreInt32(&stub.status, int32(status))
			clock := &testClock{now: time.Now()}
			client, store := newTestClient(stub, clock)
			require.NoError(t, store.Set(ctx, constvars.AuthTokenKey, []byte("kept"), 0))

			_, err := client.Get(ctx, "/patient/1")
			require.Error(t, err)

			var customErr *exceptions.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, status, customErr.StatusCode)

			_, err = client.Get(ctx, "/patient/1")
			require.Error(t, err)
			assert.Equal(t, 2, stub.Hits(), "failed responses should not be cached")

			_, found, _ := store.Find(ctx, constvars.AuthTokenKey)
			assert.True(t, found, "only a 401 clears the token")
		})
	}
}

func TestUpstreamClient_TransportFailure(t *testing.T) {
	stub := newUpstreamStub(t)
	clock := &testClock{now: time.Now()}
	client, _ := newTestClient(stub, clock)
	stub.server.Close()

	_, err := client.Get(context.Background(), "/patient_all")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, exceptions.StatusCode(err))
}

type failingCacheStore struct {
	mock.Mock
}

func (m *failingCacheStore) Find(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	return nil, args.Bool(1), args.Error(2)
}

func (m *failingCacheStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *failingCacheStore) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *failingCacheStore) ClearPrefix(ctx context.Context, prefix string) error {
	args := m.Called(ctx, prefix)
	return args.Error(0)
}

func TestUpstreamClient_CacheFailuresAreMisses(t *testing.T) {
	ctx := context.Background()
	stub := newUpstreamStub(t)

	store := new(failingCacheStore)
	store.On("Find", mock.Anything, mock.Anything).Return(nil, false, errors.New("cache down"))
	store.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("cache down"))

	client := NewUpstreamClient(Config{BaseURL: stub.server.URL, CacheTTL: time.Minute}, store, nil, zap.NewNop())

	_, err := client.Get(ctx, "/patient_all")
	require.NoError(t, err, "cache failures should not fail the request")
	_, err = client.Get(ctx, "/patient_all")
	require.NoError(t, err)

	assert.Equal(t, 2, stub.Hits())
	store.AssertNumberOfCalls(t, "Set", 2)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "patient-records:cache:GET:http://upstream/patient_all", CacheKey(constvars.MethodGet, "http://upstream/patient_all"))
	assert.NotEqual(t, CacheKey(constvars.MethodGet, "http://u/a"), CacheKey(constvars.MethodPost, "http://u/a"))
}
