package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/cidadaoativo/cidadao/pkg/i18n"
)

// Context wraps http.Request and http.ResponseWriter with context.Context.
// It embeds the request's context and provides access to HTTP components.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter

	// Lang is the negotiated language stored by the i18n middleware, or
	// an empty string when the middleware is not mounted.
	Lang() string

	// IsDatastar reports whether the request came from the Datastar client.
	IsDatastar() bool
}

// NewContext creates a new Context from HTTP request and response writer.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{w: w, r: r}
}

type httpContext struct {
	w http.ResponseWriter
	r *http.Request
}

func (c *httpContext) Request() *http.Request {
	return c.r
}

func (c *httpContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

func (c *httpContext) Lang() string {
	return i18n.Locale(c.r.Context())
}

func (c *httpContext) IsDatastar() bool {
	return IsDatastar(c.r)
}

// Delegate context.Context methods to the request's context
func (c *httpContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *httpContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *httpContext) Err() error {
	return c.r.Context().Err()
}

func (c *httpContext) Value(key any) any {
	return c.r.Context().Value(key)
}
