package handler

import (
	"errors"
	"net/http"
)

var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError carries a status code and a translation key for the message
// shown to the client. A non-empty Message is shown verbatim instead.
type HTTPError struct {
	Code    int
	Key     string
	Message string
}

func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError creates an HTTP error with a custom translation key.
//
//	err := handler.NewHTTPError(http.StatusConflict, "errors.cpf_taken")
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

// WithMessage returns a copy of e that shows msg instead of the
// translated key. An empty msg keeps the translation.
func (e HTTPError) WithMessage(msg string) HTTPError {
	e.Message = msg
	return e
}

// 4xx
var (
	ErrBadRequest           = HTTPError{Code: http.StatusBadRequest, Key: "errors.bad_request"}
	ErrUnauthorized         = HTTPError{Code: http.StatusUnauthorized, Key: "errors.unauthorized"}
	ErrNotFound             = HTTPError{Code: http.StatusNotFound, Key: "errors.not_found"}
	ErrMethodNotAllowed     = HTTPError{Code: http.StatusMethodNotAllowed, Key: "errors.method_not_allowed"}
	ErrConflict             = HTTPError{Code: http.StatusConflict, Key: "errors.conflict"}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "errors.unsupported_media_type"}
	ErrUnprocessableEntity  = HTTPError{Code: http.StatusUnprocessableEntity, Key: "errors.validation"}
	ErrTooManyRequests      = HTTPError{Code: http.StatusTooManyRequests, Key: "errors.too_many_requests"}
)

// 5xx
var (
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "errors.internal"}
	ErrBadGateway          = HTTPError{Code: http.StatusBadGateway, Key: "errors.bad_gateway"}
	ErrServiceUnavailable  = HTTPError{Code: http.StatusServiceUnavailable, Key: "errors.service_unavailable"}
)
