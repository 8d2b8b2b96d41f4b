package i18n

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cidadaoativo/cidadao/pkg/logger"
)

// QueryParam overrides Accept-Language when present, e.g. ?lang=en.
const QueryParam = "lang"

// Middleware negotiates the request language and stores it in the context.
// The chosen language is echoed in Content-Language.
func Middleware(t *Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := t.Match(r.URL.Query().Get(QueryParam), r.Header.Get("Accept-Language"))
			w.Header().Set("Content-Language", lang)
			w.Header().Add("Vary", "Accept-Language")
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), lang)))
		})
	}
}

// LoggerExtractor adds the negotiated language to log records.
func LoggerExtractor(ctx context.Context) (slog.Attr, bool) {
	lang, ok := ctx.Value(localeContextKey{}).(string)
	if !ok || lang == "" {
		return slog.Attr{}, false
	}
	return logger.Lang(lang), true
}
