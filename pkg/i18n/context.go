package i18n

import "context"

type localeContextKey struct{}

// WithLocale stores lang in ctx.
func WithLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, lang)
}

// Locale returns the language stored by Middleware, or DefaultLanguage.
func Locale(ctx context.Context) string {
	if lang, ok := ctx.Value(localeContextKey{}).(string); ok && lang != "" {
		return lang
	}
	return DefaultLanguage
}
