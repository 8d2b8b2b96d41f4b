package i18n

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when nothing better is negotiated.
const DefaultLanguage = "pt-BR"

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage changes the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithLogger logs missing keys at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.log = l
		}
	}
}

// Translator looks up messages. It is read-only after New and safe for
// concurrent use.
type Translator struct {
	translations Translations
	defaultLang  string
	langs        []string
	matcher      language.Matcher
	log          *slog.Logger
}

// New builds a Translator. The default language must be present.
func New(translations Translations, opts ...Option) (*Translator, error) {
	t := &Translator{
		translations: translations,
		defaultLang:  DefaultLanguage,
		log:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}

	if len(translations) == 0 {
		return nil, ErrNoTranslations
	}
	if _, ok := translations[t.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: default language %q", ErrNoTranslations, t.defaultLang)
	}

	others := make([]string, 0, len(translations)-1)
	for lang := range translations {
		if lang != t.defaultLang {
			others = append(others, lang)
		}
	}
	sort.Strings(others)
	// The matcher falls back to its first tag, so the default goes first.
	t.langs = append([]string{t.defaultLang}, others...)

	tags := make([]language.Tag, 0, len(t.langs))
	for _, lang := range t.langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: language tag %q: %v", ErrInvalidStructure, lang, err)
		}
		tags = append(tags, tag)
	}
	t.matcher = language.NewMatcher(tags)

	return t, nil
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string { return t.defaultLang }

// SupportedLanguages lists languages with the default first.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.langs)
}

// Match returns the supported language that best fits an Accept-Language
// style value, or the default language.
func (t *Translator) Match(preferences ...string) string {
	var desired []language.Tag
	for _, p := range preferences {
		if p == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		desired = append(desired, tags...)
	}
	if len(desired) == 0 {
		return t.defaultLang
	}
	_, idx, conf := t.matcher.Match(desired...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// Has reports whether key exists in lang without falling back.
func (t *Translator) Has(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key into lang. args are name/value pairs for placeholders:
//
//	t.T("pt-BR", "validation.password_min_length", "min", "6")
func (t *Translator) T(lang, key string, args ...string) string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return substitute(t.resolve(lang, key), params)
}

// TParams is T with a parameter map, as carried by validation errors.
func (t *Translator) TParams(lang, key string, params map[string]any) string {
	str := make(map[string]string, len(params))
	for k, v := range params {
		str[k] = fmt.Sprint(v)
	}
	return substitute(t.resolve(lang, key), str)
}

func (t *Translator) resolve(lang, key string) string {
	if msg, ok := t.lookup(lang, key); ok {
		return msg
	}
	if lang != t.defaultLang {
		if msg, ok := t.lookup(t.defaultLang, key); ok {
			return msg
		}
	}
	t.log.Debug("missing translation", slog.String("lang", lang), slog.String("key", key))
	return key
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	node, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		next, ok := node[part].(map[string]any)
		if !ok {
			return "", false
		}
		node = next
	}
	switch v := node[parts[len(parts)-1]].(type) {
	case string:
		return v, true
	case nil, map[string]any:
		return "", false
	default:
		return fmt.Sprint(v), true
	}
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name}; unknown placeholders are left as they are.
func substitute(tmpl string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		if v, ok := params[m[2:len(m)-1]]; ok {
			return v
		}
		return m
	})
}
