package contracts

import "context"

// HTTPClient talks to the upstream patient backend. Paths are relative to the
// configured base URL. Only GET responses are cached.
type HTTPClient interface {
	Get(ctx context.Context, path string) ([]byte, error)
	Post(ctx context.Context, path string, body interface{}) ([]byte, error)
	Put(ctx context.Context, path string, body interface{}) ([]byte, error)
	Delete(ctx context.Context, path string) ([]byte, error)
	Invalidate(ctx context.Context, paths ...string) error
	InvalidateAll(ctx context.Context) error
}
