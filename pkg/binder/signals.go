package binder

import (
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// DatastarHeader is set by the Datastar client on every request it makes.
const DatastarHeader = "Datastar-Request"

// IsDatastar reports whether r was sent by the Datastar client.
func IsDatastar(r *http.Request) bool {
	return r.Header.Get(DatastarHeader) == "true"
}

// Signals decodes Datastar signals: the "datastar" query parameter on GET
// requests and the JSON body otherwise.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !IsDatastar(r) {
			return ErrBinderNotApplicable
		}
		if r.Body != nil {
			r.Body = http.MaxBytesReader(nil, r.Body, MaxBodySize)
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToReadSignals, err)
		}
		return nil
	}
}
