package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// A SubmissionCache remembers recently seen submission fingerprints
// so double-submitted reports can be rejected.
type SubmissionCache interface {
	// Seen records the fingerprint and reports whether it was already present.
	Seen(ctx context.Context, fingerprint string) bool
}

// DedupSubmissions fingerprints POST bodies and responds 409
// when an identical body was submitted within the cache's window.
//
// Non-POST requests pass through untouched.
// If cache is nil, NoopAdapter returns and this middleware does nothing.
func DedupSubmissions(cache SubmissionCache) Adapter {
	if cache == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				h.ServeHTTP(w, r)
				return
			}

			buf := new(bytes.Buffer)
			sum := sha256.New()
			if _, err := io.Copy(io.MultiWriter(buf, sum), r.Body); err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			r.Body = io.NopCloser(buf)
			fingerprint := r.URL.Path + ":" + hex.EncodeToString(sum.Sum(nil))

			if cache.Seen(r.Context(), fingerprint) {
				http.Error(w, http.StatusText(http.StatusConflict), http.StatusConflict)
				return
			}

			h.ServeHTTP(w, r)
		})
	}
}

// A MemorySubmissionCache stores fingerprints in a map.
//
// Server restarts reset it; reach for RedisSubmissionCache in production.
type MemorySubmissionCache struct {
	mu     sync.Mutex
	window time.Duration
	seen   map[string]time.Time
}

func NewMemorySubmissionCache(window time.Duration) *MemorySubmissionCache {
	return &MemorySubmissionCache{window: window, seen: make(map[string]time.Time)}
}

func (c *MemorySubmissionCache) Seen(_ context.Context, fingerprint string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := time.Now().Add(-c.window)
	for k, at := range c.seen {
		if at.Before(cutoff) {
			delete(c.seen, k)
		}
	}

	if _, ok := c.seen[fingerprint]; ok {
		return true
	}

	c.seen[fingerprint] = time.Now()
	return false
}

// A RedisSubmissionCache stores fingerprints in a Redis backend,
// surviving restarts and shared across instances.
type RedisSubmissionCache struct {
	client *redis.Client
	window time.Duration
}

func NewRedisSubmissionCache(opts *redis.Options, window time.Duration) RedisSubmissionCache {
	return RedisSubmissionCache{client: redis.NewClient(opts), window: window}
}

func (c RedisSubmissionCache) Seen(ctx context.Context, fingerprint string) bool {
	ok, err := c.client.SetNX(ctx, fingerprint, 1, c.window).Result()
	if err != nil {
		// a cache outage must not block submissions
		return false
	}

	return !ok
}
