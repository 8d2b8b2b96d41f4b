package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption configures a templ response.
type TemplOption func(*templResponse)

// WithTarget sets the selector the component is patched into for
// Datastar requests.
func WithTarget(selector string) TemplOption {
	return func(t *templResponse) {
		t.patch = append(t.patch, datastar.WithSelector(selector))
	}
}

// WithPatchMode sets how the component is merged into the DOM for
// Datastar requests.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return func(t *templResponse) {
		t.patch = append(t.patch, datastar.WithMode(mode))
	}
}

// WithStatus sets the status code of a plain HTML response. Datastar
// responses are always 200 event streams.
func WithStatus(code int) TemplOption {
	return func(t *templResponse) {
		t.status = code
	}
}

type templResponse struct {
	component templ.Component
	status    int
	patch     []datastar.PatchElementOption
}

// Render outputs the component via SSE for Datastar or as HTML otherwise.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDatastar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(t.component, t.patch...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(t.status)
	return t.component.Render(r.Context(), w)
}

// Templ creates a response from a templ component.
//
//	return handler.Templ(views.ErrorPage(params), handler.WithStatus(http.StatusNotFound))
func Templ(component templ.Component, opts ...TemplOption) Response {
	t := &templResponse{component: component, status: http.StatusOK}
	for _, opt := range opts {
		opt(t)
	}
	return *t
}
