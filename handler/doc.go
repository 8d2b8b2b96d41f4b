// Package handler provides type-safe HTTP request handling.
//
// A HandlerFunc receives a request already decoded into a Go value and
// returns a Response. Wrap turns it into an http.HandlerFunc:
//
//	type LoginForm struct {
//		CPF      string `json:"cpf" form:"cpf"`
//		Password string `json:"password" form:"password"`
//	}
//
//	func login(ctx handler.Context, req LoginForm) handler.Response {
//		if err := req.Validate(); err != nil {
//			return handler.Error(err)
//		}
//		return handler.JSON(http.StatusOK, token)
//	}
//
//	r.Post("/login", handler.Wrap(login,
//		handler.WithBinders(binder.Signals(), binder.JSON(), binder.Form()),
//		handler.WithErrorHandler(errorHandler),
//	))
//
// # Responses
//
//	handler.JSON(http.StatusCreated, v)   // JSON body
//	handler.Signals(map[string]any{...})  // Datastar signal patch
//	handler.Templ(component)              // HTML, or an element patch for Datastar
//	handler.Error(err)                    // delegates to the ErrorHandler
//
// # Errors
//
// NewErrorHandler classifies errors once for every route:
// validator.ValidationErrors become 422 with one translated message per
// field, HTTPError values keep their status and translation key, binder
// failures become 400 or 415 and anything else is a 500. The response
// format follows the client: Datastar signals, an HTML page for browsers,
// JSON otherwise.
package handler
