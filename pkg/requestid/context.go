package requestid

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cidadaoativo/cidadao/pkg/logger"
)

type contextKey struct{}

// WithContext stores id in ctx.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the stored id or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// LoggerExtractor adds request_id to log records.
func LoggerExtractor(ctx context.Context) (slog.Attr, bool) {
	id := FromContext(ctx)
	if id == "" {
		return slog.Attr{}, false
	}
	return logger.RequestID(id), true
}

// Propagate sets the header on an outbound request when its context carries an id.
func Propagate(req *http.Request) {
	if id := FromContext(req.Context()); id != "" {
		req.Header.Set(Header, id)
	}
}
