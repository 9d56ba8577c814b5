package middlewares

import (
	"errors"
	"net/http"
	"time"

	"patient-records-service/internal/pkg/exceptions"
	"patient-records-service/internal/pkg/utils"

	"github.com/go-chi/httprate"
)

var errRateLimited = errors.New("rate limit exceeded")

// RateLimiter limits requests per client IP over the configured window. A
// non-positive MaxRequests disables limiting.
func (m *Middlewares) RateLimiter() func(next http.Handler) http.Handler {
	if m.InternalConfig.App.MaxRequests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}

	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(errRateLimited))
		}),
	)
}
