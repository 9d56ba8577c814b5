package models

import "time"

// CacheEntry is the serialized form of a cached upstream GET response.
type CacheEntry struct {
	Body       []byte    `json:"body"`
	StatusCode int       `json:"status_code"`
	StoredAt   time.Time `json:"stored_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

func (e CacheEntry) IsExpired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}
