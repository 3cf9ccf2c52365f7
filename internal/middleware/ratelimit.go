package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RateLimiter applies a fixed-window rate limit backed by Redis. Each
// limiter carries a scope so stacked limiters (global plus per-API) count
// against separate windows.
type RateLimiter struct {
	cache  *redis.Client
	scope  string
	limit  int
	window time.Duration
}

// NewRateLimiter constructs a RateLimiter for the given scope.
func NewRateLimiter(cache *redis.Client, scope string, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		cache:  cache,
		scope:  scope,
		limit:  limit,
		window: window,
	}
}

// Limit enforces the rate limit, keyed by client IP and, when available,
// the authenticated user ID.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			ip = host
		}

		key := fmt.Sprintf("ratelimit:%s:%s", rl.scope, ip)
		if userID, ok := r.Context().Value(ctxUserIDKey).(uuid.UUID); ok && userID != uuid.Nil {
			key = fmt.Sprintf("ratelimit:%s:%s:%s", rl.scope, ip, userID)
		}

		count, err := rl.cache.Incr(r.Context(), key).Result()
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		if count == 1 {
			if err := rl.cache.Expire(r.Context(), key, rl.window).Err(); err != nil {
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))

		if count > int64(rl.limit) {
			w.Header().Set("X-RateLimit-Remaining", "0")
			if ttl, err := rl.cache.TTL(r.Context(), key).Result(); err == nil && ttl > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(int(ttl.Seconds())))
			}
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(rl.limit-int(count)))
		next.ServeHTTP(w, r)
	})
}
