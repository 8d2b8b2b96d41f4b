package i18n_test

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cidadaoativo/cidadao/pkg/i18n"
	"github.com/cidadaoativo/cidadao/pkg/logger"
)

const ptYAML = `
pt-BR:
  validation:
    required: "%{field} é obrigatório"
    password_min_length: "Senha deve ter pelo menos %{min} caracteres"
    birth_date: "Data inválida ou idade menor que %{min_age} anos"
  fields:
    cpf: CPF
`

const enJSON = `{
  "en": {
    "validation": {
      "required": "%{field} is required",
      "password_min_length": "Password must be at least %{min} characters"
    }
  }
}`

func newTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	fsys := fstest.MapFS{
		"locales/pt-BR.yaml": {Data: []byte(ptYAML)},
		"locales/en.json":    {Data: []byte(enJSON)},
		"locales/README.md":  {Data: []byte("ignored")},
	}
	tr, err := i18n.LoadFS(fsys, "locales")
	require.NoError(t, err)
	translator, err := i18n.New(tr, opts...)
	require.NoError(t, err)
	return translator
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)

	tests := []struct {
		name string
		lang string
		key  string
		args []string
		want string
	}{
		{"pt-BR with param", "pt-BR", "validation.password_min_length", []string{"min", "6"}, "Senha deve ter pelo menos 6 caracteres"},
		{"en with param", "en", "validation.password_min_length", []string{"min", "6"}, "Password must be at least 6 characters"},
		{"falls back to default language", "en", "validation.birth_date", []string{"min_age", "18"}, "Data inválida ou idade menor que 18 anos"},
		{"unknown language uses default", "fr", "fields.cpf", nil, "CPF"},
		{"missing key returns key", "pt-BR", "validation.nope", nil, "validation.nope"},
		{"branch is not a message", "pt-BR", "validation", nil, "validation"},
		{"unknown placeholder kept", "pt-BR", "validation.required", []string{"other", "x"}, "%{field} é obrigatório"},
		{"odd args ignored", "pt-BR", "validation.password_min_length", []string{"min"}, "Senha deve ter pelo menos %{min} caracteres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tr.T(tt.lang, tt.key, tt.args...))
		})
	}
}

func TestTranslator_TParams(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)
	got := tr.TParams("pt-BR", "validation.birth_date", map[string]any{"min_age": 18})
	assert.Equal(t, "Data inválida ou idade menor que 18 anos", got)
}

func TestTranslator_Has(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)
	assert.True(t, tr.Has("pt-BR", "fields.cpf"))
	assert.False(t, tr.Has("en", "fields.cpf"))
	assert.False(t, tr.Has("de", "fields.cpf"))
}

func TestTranslator_Match(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)

	tests := []struct {
		name  string
		prefs []string
		want  string
	}{
		{"empty", nil, "pt-BR"},
		{"english region", []string{"en-US,en;q=0.9"}, "en"},
		{"portuguese base", []string{"pt"}, "pt-BR"},
		{"quality order", []string{"en;q=0.4, pt-BR;q=0.9"}, "pt-BR"},
		{"unsupported", []string{"ja"}, "pt-BR"},
		{"garbage", []string{";;;"}, "pt-BR"},
		{"first preference wins", []string{"en", "pt-BR"}, "en"},
		{"empty first preference skipped", []string{"", "en-GB"}, "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tr.Match(tt.prefs...))
		})
	}
}

func TestTranslator_SupportedLanguages(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)
	assert.Equal(t, []string{"pt-BR", "en"}, tr.SupportedLanguages())
	assert.Equal(t, "pt-BR", tr.DefaultLanguage())
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := i18n.New(nil)
	assert.ErrorIs(t, err, i18n.ErrNoTranslations)

	_, err = i18n.New(i18n.Translations{"en": {"a": "b"}})
	assert.ErrorIs(t, err, i18n.ErrNoTranslations, "default language must exist")

	tr, err := i18n.New(i18n.Translations{"en": {"a": "b"}}, i18n.WithDefaultLanguage("en"))
	require.NoError(t, err)
	assert.Equal(t, "b", tr.T("pt-BR", "a"))
}

func TestTranslator_LogsMissingKeys(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	tr := newTranslator(t, i18n.WithLogger(logger.New(logger.WithOutput(buf), logger.WithLevelName("debug"))))
	tr.T("en", "missing.key")
	assert.Contains(t, buf.String(), "missing translation")
	assert.Contains(t, buf.String(), "missing.key")
}
