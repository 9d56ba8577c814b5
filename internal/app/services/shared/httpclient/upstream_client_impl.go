package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/exceptions"
	"patient-records-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxLoggedBodyBytes = 512

type Config struct {
	BaseURL           string
	CacheTTL          time.Duration
	Timeout           time.Duration
	RequestsPerSecond float64
}

type Option func(*upstreamClient)

func WithHTTPClient(client *http.Client) Option {
	return func(c *upstreamClient) {
		c.httpClient = client
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *upstreamClient) {
		c.now = now
	}
}

type upstreamClient struct {
	baseURL    string
	cacheTTL   time.Duration
	httpClient *http.Client
	cache      contracts.CacheStore
	tokens     contracts.TokenStore
	limiter    *rate.Limiter
	now        func() time.Time
	Log        *zap.Logger
}

func NewUpstreamClient(cfg Config, cache contracts.CacheStore, tokens contracts.TokenStore, logger *zap.Logger, opts ...Option) contracts.HTTPClient {
	limit := rate.Inf
	burst := 1
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
		burst = int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
	}

	client := &upstreamClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		cacheTTL:   cfg.CacheTTL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cache:      cache,
		tokens:     tokens,
		limiter:    rate.NewLimiter(limit, burst),
		now:        time.Now,
		Log:        logger,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// CacheKey derives the storage key of a request from its method and full URL.
func CacheKey(method, url string) string {
	return constvars.CacheKeyPrefix + method + ":" + url
}

func (c *upstreamClient) Get(ctx context.Context, path string) ([]byte, error) {
	requestID := utils.GetRequestID(ctx)
	url := c.url(path)
	key := CacheKey(constvars.MethodGet, url)

	if body, ok := c.findCached(ctx, key); ok {
		c.Log.Debug("upstreamClient.Get cache hit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, key),
		)
		return body, nil
	}

	body, statusCode, err := c.do(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	c.storeCached(ctx, key, body, statusCode)
	return body, nil
}

func (c *upstreamClient) Post(ctx context.Context, path string, body interface{}) ([]byte, error) {
	responseBody, _, err := c.do(ctx, constvars.MethodPost, c.url(path), body)
	return responseBody, err
}

func (c *upstreamClient) Put(ctx context.Context, path string, body interface{}) ([]byte, error) {
	responseBody, _, err := c.do(ctx, constvars.MethodPut, c.url(path), body)
	return responseBody, err
}

func (c *upstreamClient) Delete(ctx context.Context, path string) ([]byte, error) {
	responseBody, _, err := c.do(ctx, constvars.MethodDelete, c.url(path), nil)
	return responseBody, err
}

// Invalidate drops the cached GET response of every path.
func (c *upstreamClient) Invalidate(ctx context.Context, paths ...string) error {
	requestID := utils.GetRequestID(ctx)

	var errs []error
	for _, path := range paths {
		key := CacheKey(constvars.MethodGet, c.url(path))
		if err := c.cache.Remove(ctx, key); err != nil {
			c.Log.Warn("upstreamClient.Invalidate failed to remove cache entry",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKey, key),
				zap.Error(err),
			)
			errs = append(errs, err)
			continue
		}
		c.Log.Debug("upstreamClient.Invalidate removed cache entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKey, key),
		)
	}
	return errors.Join(errs...)
}

func (c *upstreamClient) InvalidateAll(ctx context.Context) error {
	err := c.cache.ClearPrefix(ctx, constvars.CacheKeyPrefix)
	if err != nil {
		c.Log.Warn("upstreamClient.InvalidateAll failed to clear cache",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (c *upstreamClient) url(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// findCached treats every cache failure as a miss.
func (c *upstreamClient) findCached(ctx context.Context, key string) ([]byte, bool) {
	raw, found, err := c.cache.Find(ctx, key)
	if err != nil {
		c.Log.Warn("upstreamClient.findCached cache read failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
		return nil, false
	}
	if !found {
		return nil, false
	}

	var entry models.CacheEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		c.Log.Warn("upstreamClient.findCached dropping unreadable cache entry",
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
		c.cache.Remove(ctx, key)
		return nil, false
	}

	if entry.IsExpired(c.now()) {
		c.cache.Remove(ctx, key)
		return nil, false
	}
	return entry.Body, true
}

func (c *upstreamClient) storeCached(ctx context.Context, key string, body []byte, statusCode int) {
	if c.cacheTTL <= 0 {
		return
	}

	now := c.now()
	raw, err := json.Marshal(models.CacheEntry{
		Body:       body,
		StatusCode: statusCode,
		StoredAt:   now,
		ExpiresAt:  now.Add(c.cacheTTL),
	})
	if err != nil {
		c.Log.Warn("upstreamClient.storeCached cannot encode cache entry",
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
		return
	}

	if err := c.cache.Set(ctx, key, raw, c.cacheTTL); err != nil {
		c.Log.Warn("upstreamClient.storeCached cache write failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCacheKey, key),
			zap.Error(err),
		)
	}
}

func (c *upstreamClient) do(ctx context.Context, method, url string, payload interface{}) ([]byte, int, error) {
	requestID := utils.GetRequestID(ctx)
	start := time.Now()

	if err := c.limiter.Wait(ctx); err != nil {
		c.Log.Error("upstreamClient.do rate limiter wait failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingURLKey, url),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrUpstreamRateLimiter(err)
	}

	var requestBody io.Reader
	if payload != nil {
		requestJSON, err := json.Marshal(payload)
		if err != nil {
			c.Log.Error("upstreamClient.do error marshaling JSON",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, 0, exceptions.ErrCannotMarshalJSON(err)
		}
		requestBody = bytes.NewReader(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, requestBody)
	if err != nil {
		c.Log.Error("upstreamClient.do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if payload != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	c.attachToken(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.Log.Error("upstreamClient.do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingURLKey, url),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("upstreamClient.do error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, resp.StatusCode, exceptions.ErrReadHTTPResponse(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, c.handleFailure(ctx, method, url, resp.StatusCode, body)
	}

	c.Log.Debug("upstreamClient.do succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingURLKey, url),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	return body, resp.StatusCode, nil
}

// attachToken sets the bearer header. A token whose exp claim has passed is
// cleared instead of being sent.
func (c *upstreamClient) attachToken(ctx context.Context, req *http.Request) {
	if c.tokens == nil {
		return
	}

	token, err := c.tokens.Get(ctx)
	if err != nil {
		c.Log.Warn("upstreamClient.attachToken cannot read auth token",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return
	}
	if token == "" {
		return
	}

	if utils.IsTokenExpired(token, c.now()) {
		c.Log.Warn("upstreamClient.attachToken dropping expired auth token",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		)
		c.clearToken(ctx)
		return
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+token)
}

func (c *upstreamClient) handleFailure(ctx context.Context, method, url string, statusCode int, body []byte) error {
	requestID := utils.GetRequestID(ctx)
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingURLKey, url),
		zap.Int(constvars.LoggingStatusCodeKey, statusCode),
	}

	switch statusCode {
	case constvars.StatusUnauthorized:
		c.Log.Warn("upstreamClient unauthorized, clearing auth token", fields...)
		c.clearToken(ctx)
	case constvars.StatusNotFound:
		c.Log.Warn("upstreamClient resource not found", fields...)
	case constvars.StatusInternalServerError:
		c.Log.Error("upstreamClient server error", fields...)
	default:
		c.Log.Error("upstreamClient API error",
			append(fields, zap.String(constvars.LoggingResponseBodyKey, truncate(body, maxLoggedBodyBytes)))...,
		)
	}

	return exceptions.ErrUpstreamStatus(fmt.Errorf("%s", truncate(body, maxLoggedBodyBytes)), method, url, statusCode)
}

func (c *upstreamClient) clearToken(ctx context.Context) {
	if c.tokens == nil {
		return
	}
	if err := c.tokens.Clear(ctx); err != nil {
		c.Log.Warn("upstreamClient.clearToken failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}

func truncate(body []byte, limit int) string {
	text := strings.TrimSpace(string(body))
	if len(text) > limit {
		return text[:limit] + "..."
	}
	return text
}
