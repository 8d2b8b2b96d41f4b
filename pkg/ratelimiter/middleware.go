package ratelimiter

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/cidadaoativo/cidadao/pkg/logger"
)

// KeyFunc extracts a rate limit key from the request. An empty key skips
// the limiter.
type KeyFunc func(r *http.Request) string

// ByRemoteIP keys requests by the host part of r.RemoteAddr. Behind a proxy,
// run chi's RealIP middleware first.
func ByRemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// SetHeaders writes the X-RateLimit-* headers, and Retry-After when denied.
func SetHeaders(w http.ResponseWriter, res *Result) {
	h := w.Header()
	h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
	h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))
	if !res.Allowed() {
		h.Set("Retry-After", strconv.Itoa(max(1, int(res.RetryAfter().Seconds()+0.5))))
	}
}

// Middleware rejects requests with 429 once the bucket for their key is
// empty. Store failures are logged and the request is let through.
func Middleware(limiter RateLimiter, keyFunc KeyFunc, log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := limiter.Allow(r.Context(), key)
			if err != nil {
				log.WarnContext(r.Context(), "rate limiter unavailable", logger.Component("ratelimiter"), logger.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			SetHeaders(w, res)
			if !res.Allowed() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
