// Package binder decodes HTTP requests into structs.
//
// Each binder has the signature func(*http.Request, any) error and returns
// ErrBinderNotApplicable when the request is not meant for it, so several
// binders can be offered for one endpoint and the first one that applies
// wins:
//
//	handler.Wrap(login, handler.WithBinders[handler.Context, LoginForm](
//		binder.Signals(), // Datastar requests
//		binder.JSON(),    // application/json
//		binder.Form(),    // application/x-www-form-urlencoded
//	))
//
// JSON and Signals use `json` tags. Form and Query use `form` tags; fields
// without a tag are matched by their lower-cased name and `form:"-"` skips
// a field. Supported field kinds are string, bool, the integer kinds and
// pointers to them.
package binder
