package authapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cidadaoativo/cidadao/pkg/authapi"
	"github.com/cidadaoativo/cidadao/pkg/requestid"
)

func newClient(t *testing.T, h http.HandlerFunc) *authapi.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := authapi.New(authapi.Config{BaseURL: srv.URL + "/", Timeout: time.Second})
	require.NoError(t, err)
	return c
}

func TestNew_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	for _, u := range []string{"", "localhost:3000", "ftp://auth", "http://"} {
		_, err := authapi.New(authapi.Config{BaseURL: u})
		assert.ErrorIs(t, err, authapi.ErrInvalidBaseURL, u)
	}
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-7", r.Header.Get(requestid.Header))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"cpf": "52998224725", "password": "segredo"}, body)

		_, _ = w.Write([]byte(`{"access_token":"tok-123"}`))
	})

	ctx := requestid.WithContext(context.Background(), "req-7")
	tok, err := c.Login(ctx, authapi.LoginRequest{CPF: "52998224725", Password: "segredo"})
	require.NoError(t, err)
	assert.Equal(t, "tok-123", tok.AccessToken)
}

func TestClient_Login_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
		desc     string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"description":"CPF ou senha inválidos"}`, authapi.ErrUnauthorized, "CPF ou senha inválidos"},
		{"forbidden", http.StatusForbidden, `{}`, authapi.ErrUnauthorized, ""},
		{"server error", http.StatusInternalServerError, `oops`, authapi.ErrBackend, ""},
		{"message array", http.StatusBadRequest, `{"message":["cpf must be a string","password too short"]}`, authapi.ErrBackend, "cpf must be a string; password too short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Login(context.Background(), authapi.LoginRequest{CPF: "1", Password: "2"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			var apiErr *authapi.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.desc, apiErr.Description)
		})
	}
}

func TestClient_Login_EmptyToken(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	_, err := c.Login(context.Background(), authapi.LoginRequest{})
	assert.ErrorIs(t, err, authapi.ErrBackend)
}

func TestClient_Login_MalformedBody(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":`))
	})
	_, err := c.Login(context.Background(), authapi.LoginRequest{})
	assert.ErrorIs(t, err, authapi.ErrBackend)
}

func TestClient_Register(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Maria da Silva", body["fullName"])
		assert.Equal(t, "52998224725", body["cpf"])
		assert.Equal(t, "1990-05-20", body["birthDate"])
		assert.NotContains(t, body, "confirmPassword")
		w.WriteHeader(http.StatusCreated)
	})

	err := c.Register(context.Background(), authapi.RegisterRequest{
		FullName:  "Maria da Silva",
		CPF:       "52998224725",
		BirthDate: "1990-05-20",
		Password:  "segredo",
	})
	assert.NoError(t, err)
}

func TestClient_Register_Conflict(t *testing.T) {
	t.Parallel()

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"description":"CPF já cadastrado"}`))
	})

	err := c.Register(context.Background(), authapi.RegisterRequest{})
	assert.ErrorIs(t, err, authapi.ErrConflict)
	assert.Contains(t, err.Error(), "CPF já cadastrado")
}

func TestClient_Unavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := authapi.New(authapi.Config{BaseURL: url})
	require.NoError(t, err)

	_, err = c.Login(context.Background(), authapi.LoginRequest{})
	assert.ErrorIs(t, err, authapi.ErrUnavailable)
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	c, err := authapi.New(authapi.Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	err = c.Register(context.Background(), authapi.RegisterRequest{})
	assert.ErrorIs(t, err, authapi.ErrUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
