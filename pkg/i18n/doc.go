// Package i18n translates user-facing messages.
//
// Translations are nested maps keyed by language tag; leaves are strings
// with %{name} placeholders. They are read from YAML or JSON files, usually
// embedded with go:embed:
//
//	pt-BR:
//	  validation:
//	    min_age: "Idade mínima de %{min_age} anos"
//
// Files are merged per language, so several packages can ship their own
// locale files. Lookups that miss in the requested language fall back to
// the default language and then to the key itself.
//
// Middleware negotiates the request language from a "lang" query parameter
// or the Accept-Language header using golang.org/x/text/language and stores
// it in the context, where Locale reads it back.
package i18n
