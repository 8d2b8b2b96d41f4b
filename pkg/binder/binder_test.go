package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cidadaoativo/cidadao/pkg/binder"
)

type loginForm struct {
	CPF      string `json:"cpf" form:"cpf"`
	Password string `json:"password" form:"password"`
	Remember *bool  `json:"remember" form:"remember"`
	Attempts int    `json:"-" form:"attempts"`
	Internal string `json:"-" form:"-"`
	Lang     string
}

func TestJSON(t *testing.T) {
	t.Parallel()

	bind := binder.JSON()

	t.Run("decodes body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"cpf":"529.982.247-25","password":"segredo","extra":1}`))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")

		var f loginForm
		require.NoError(t, bind(req, &f))
		assert.Equal(t, "529.982.247-25", f.CPF)
		assert.Equal(t, "segredo", f.Password)
	})

	t.Run("not applicable for other media types", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("cpf=1"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		assert.ErrorIs(t, bind(req, &loginForm{}), binder.ErrBinderNotApplicable)

		req = httptest.NewRequest(http.MethodPost, "/login", nil)
		assert.ErrorIs(t, bind(req, &loginForm{}), binder.ErrBinderNotApplicable)
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		for _, body := range []string{"", "{", `{"cpf":1}`, `{"cpf":"1"} {"cpf":"2"}`} {
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			assert.ErrorIs(t, bind(req, &loginForm{}), binder.ErrFailedToParseJSON, body)
		}
	})
}

func TestForm(t *testing.T) {
	t.Parallel()

	bind := binder.Form()

	values := url.Values{
		"cpf":      {"52998224725"},
		"password": {"segredo"},
		"remember": {"on"},
		"attempts": {"2"},
		"Internal": {"ignored"},
		"internal": {"ignored"},
		"lang":     {"en"},
	}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var f loginForm
	require.NoError(t, bind(req, &f))
	assert.Equal(t, "52998224725", f.CPF)
	assert.Equal(t, "segredo", f.Password)
	require.NotNil(t, f.Remember)
	assert.True(t, *f.Remember)
	assert.Equal(t, 2, f.Attempts)
	assert.Empty(t, f.Internal)
	assert.Equal(t, "en", f.Lang)
}

func TestForm_Errors(t *testing.T) {
	t.Parallel()

	bind := binder.Form()

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("attempts=many"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	assert.ErrorIs(t, bind(req, &loginForm{}), binder.ErrFailedToParseForm)

	req = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("cpf=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	var notStruct string
	err := bind(req, &notStruct)
	assert.ErrorIs(t, err, binder.ErrInvalidTarget)
}

func TestQuery(t *testing.T) {
	t.Parallel()

	bind := binder.Query()

	req := httptest.NewRequest(http.MethodGet, "/cpf/mask?cpf=5299822", nil)
	var f loginForm
	require.NoError(t, bind(req, &f))
	assert.Equal(t, "5299822", f.CPF)

	post := httptest.NewRequest(http.MethodPost, "/cpf/mask?cpf=1", nil)
	assert.ErrorIs(t, bind(post, &f), binder.ErrBinderNotApplicable)
}

func TestSignals(t *testing.T) {
	t.Parallel()

	bind := binder.Signals()

	t.Run("GET reads query parameter", func(t *testing.T) {
		t.Parallel()
		q := url.Values{"datastar": {`{"cpf":"529982"}`}}
		req := httptest.NewRequest(http.MethodGet, "/cpf/mask?"+q.Encode(), nil)
		req.Header.Set(binder.DatastarHeader, "true")

		var f loginForm
		require.NoError(t, bind(req, &f))
		assert.Equal(t, "529982", f.CPF)
	})

	t.Run("POST reads body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"cpf":"11144477735","password":"x"}`))
		req.Header.Set(binder.DatastarHeader, "true")
		req.Header.Set("Content-Type", "application/json")

		var f loginForm
		require.NoError(t, bind(req, &f))
		assert.Equal(t, "11144477735", f.CPF)
		assert.True(t, binder.IsDatastar(req))
	})

	t.Run("not applicable without header", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/cpf/mask", nil)
		assert.ErrorIs(t, bind(req, &loginForm{}), binder.ErrBinderNotApplicable)
		assert.False(t, binder.IsDatastar(req))
	})
}
