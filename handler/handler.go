package handler

import (
	"errors"
	"net/http"

	"github.com/cidadaoativo/cidadao/pkg/binder"
)

// HandlerFunc handles a request already decoded into R.
//
// Example:
//
//	func login(ctx handler.Context, req LoginForm) handler.Response {
//		if err := req.Validate(); err != nil {
//			return handler.Error(err)
//		}
//		return handler.JSON(http.StatusOK, token)
//	}
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response renders itself to an http.ResponseWriter.
// Implementations set headers, status code and body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind decodes an HTTP request into v. A binder that cannot handle the
// request returns binder.ErrBinderNotApplicable.
type Bind func(r *http.Request, v any) error

// ErrorHandler writes the response for an error raised while binding,
// handling or rendering.
type ErrorHandler func(ctx Context, err error)

// Option configures Wrap.
type Option func(*wrapConfig)

type wrapConfig struct {
	binders      []Bind
	errorHandler ErrorHandler
}

// WithBinders sets the request binders. They are tried in order and the
// first applicable one decodes the request; the rest are skipped so a body
// is read only once.
//
// Example:
//
//	r.Post("/login", handler.Wrap(s.login,
//		handler.WithBinders(binder.Signals(), binder.JSON(), binder.Form()),
//	))
func WithBinders(binders ...Bind) Option {
	return func(c *wrapConfig) {
		for _, b := range binders {
			if b != nil {
				c.binders = append(c.binders, b)
			}
		}
	}
}

// WithErrorHandler sets the error handler. The default writes the
// status code and translation key as plain text.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *wrapConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

func defaultErrorHandler(ctx Context, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
		return
	}
	http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
// A request no configured binder accepts fails with ErrUnsupportedMediaType.
// Without binders the handler receives the zero value of R.
func Wrap[R any](h HandlerFunc[R], opts ...Option) http.HandlerFunc {
	cfg := &wrapConfig{errorHandler: defaultErrorHandler}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)

		var req R
		if len(cfg.binders) > 0 {
			if err := bindFirst(cfg.binders, r, &req); err != nil {
				cfg.errorHandler(ctx, err)
				return
			}
		}

		response := h(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}

func bindFirst(binders []Bind, r *http.Request, v any) error {
	for _, bind := range binders {
		err := bind(r, v)
		if errors.Is(err, binder.ErrBinderNotApplicable) {
			continue
		}
		return err
	}
	return ErrUnsupportedMediaType
}
