package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/admindash/auth-service/internal/domain"
	redisinfra "github.com/admindash/auth-service/internal/infrastructure/redis"
	"github.com/admindash/auth-service/internal/transport/http/response"
)

// RateLimitFixedWindow throttles a route to limit requests per window,
// keyed by the authenticated user when present and the client IP otherwise.
// A nil limiter lets everything through.
func RateLimitFixedWindow(limiter *redisinfra.FixedWindowLimiter, scope string, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil {
				next.ServeHTTP(w, r)
				return
			}

			key := fmt.Sprintf("ratelimit:%s:%s:%s", scope, userOrIP(r), windowBucket(window))
			dec, err := limiter.AllowFixedWindow(r.Context(), key, limit, window)
			if err != nil {
				// Fail open: the limiter is protective, not load-bearing.
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(dec.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(dec.Remaining))
			if !dec.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(dec.RetryAfter.Seconds())))
				response.WriteError(w, r, domain.ErrRateLimited())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func userOrIP(r *http.Request) string {
	if id, ok := UserIDFromContext(r.Context()); ok {
		return "u:" + id
	}
	return "ip:" + clientIP(r)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func windowBucket(window time.Duration) string {
	if window <= 0 {
		window = time.Minute
	}
	bucket := time.Now().Unix() / int64(window.Seconds())
	return strconv.FormatInt(bucket, 10)
}
