package clientip

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cidadaoativo/cidadao/pkg/logger"
)

type contextKey struct{}

// WithContext stores ip in ctx.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the address stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Key returns the address stored by Middleware. Its signature matches
// ratelimiter.KeyFunc.
func Key(r *http.Request) string {
	return FromContext(r.Context())
}

// LoggerExtractor adds client_ip to log records.
func LoggerExtractor(ctx context.Context) (slog.Attr, bool) {
	ip := FromContext(ctx)
	if ip == "" {
		return slog.Attr{}, false
	}
	return logger.ClientIP(ip), true
}
