package handler

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the JSON envelope of an error response.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	if j.status == http.StatusNoContent {
		return nil
	}
	return json.NewEncoder(w).Encode(j.body)
}

// JSON writes v encoded as JSON with the given status code.
// A zero status means 200.
func JSON(status int, v any) Response {
	if status == 0 {
		status = http.StatusOK
	}
	return jsonResponse{status: status, body: v}
}

// JSONError writes an error envelope.
func JSONError(status int, detail ErrorDetail) Response {
	return jsonResponse{status: status, body: ErrorBody{Error: detail}}
}

// Error defers to the configured ErrorHandler: Render returns err so Wrap
// hands it over. Use it to return domain errors from a HandlerFunc.
func Error(err error) Response {
	return errorResponse{err: err}
}

type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	if e.err == nil {
		return ErrInternalServerError
	}
	return e.err
}
