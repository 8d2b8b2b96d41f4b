// Package authapi is the client for the external authentication backend.
//
// The backend owns accounts; this service validates forms and forwards
// them. Login posts {cpf, password} to /auth/login and receives an access
// token; Register posts the sign-up form to /auth/register.
//
// Errors returned by the client wrap one of the package sentinels so
// callers can map them to HTTP responses with errors.Is:
//
//	ErrUnauthorized  401/403 from the backend
//	ErrConflict      409, the CPF is already registered
//	ErrBackend       any other non-2xx status
//	ErrUnavailable   the backend could not be reached or timed out
//
// Non-2xx responses are returned as *APIError, which keeps the status and
// the backend's "description" field.
package authapi
