package httpserver_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cidadaoativo/cidadao/pkg/httpserver"
	"github.com/cidadaoativo/cidadao/pkg/logger"
)

func listen(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return ln
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	var (
		resp *http.Response
		err  error
	)
	for range 50 {
		resp, err = http.Get(url)
		if err == nil {
			return resp
		}
		time.Sleep(20 * time.Millisecond)
	}
	require.NoError(t, err)
	return nil
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	var stopped atomic.Bool
	buf := &bytes.Buffer{}
	srv := httpserver.New(
		httpserver.Config{ShutdownTimeout: time.Second},
		httpserver.WithLogger(logger.New(logger.WithOutput(buf))),
		httpserver.WithStopHook(func() { stopped.Store(true) }),
	)

	ln := listen(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, ln, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "ok")
		}))
	}()

	resp := get(t, "http://"+ln.Addr().String())
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "serve did not return")
	}

	assert.True(t, stopped.Load())
	assert.NoError(t, srv.Shutdown(context.Background()))
	assert.Contains(t, buf.String(), "http server stopped")
}

func TestServe_ManualShutdown(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.Config{ShutdownTimeout: time.Second})
	ln := listen(t)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(context.Background(), ln, nil) }()

	resp := get(t, "http://"+ln.Addr().String())
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	require.NoError(t, srv.Shutdown(context.Background()))
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "serve did not return")
	}
}

func TestServe_AlreadyRunning(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.Config{ShutdownTimeout: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ln := listen(t)
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln, nil) }()
	resp := get(t, "http://"+ln.Addr().String())
	require.NoError(t, resp.Body.Close())

	err := srv.Serve(ctx, listen(t), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)

	cancel()
	<-done
}

func TestRun_BadAddress(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.Config{Addr: "not-an-address"})
	err := srv.Run(context.Background(), nil)
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestShutdown_NotStarted(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.Config{})
	assert.NoError(t, srv.Shutdown(context.Background()))
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		checks   []httpserver.Check
		wantCode int
		wantBody string
	}{
		{"liveness", nil, http.StatusOK, "ALIVE"},
		{
			"ready",
			[]httpserver.Check{func(context.Context) error { return nil }},
			http.StatusOK, "READY",
		},
		{
			"dependency down",
			[]httpserver.Check{
				func(context.Context) error { return nil },
				func(context.Context) error { return errors.New("redis: connection refused") },
			},
			http.StatusServiceUnavailable, "NOT_READY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			httpserver.HealthCheckHandler(nil, tt.checks...).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}
