package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/cidadaoativo/cidadao/pkg/binder"
)

// DatastarAcceptHeader is sent by clients that expect Server-Sent Events.
const DatastarAcceptHeader = "text/event-stream"

// Patch mode aliases for convenience
const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchReplace = datastar.ElementPatchModeReplace
	PatchRemove  = datastar.ElementPatchModeRemove
	PatchAppend  = datastar.ElementPatchModeAppend
	PatchPrepend = datastar.ElementPatchModePrepend
)

// IsDatastar reports whether r comes from the Datastar client, either by
// its request header or by accepting an event stream.
func IsDatastar(r *http.Request) bool {
	if binder.IsDatastar(r) {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), DatastarAcceptHeader)
}

type signalsResponse struct {
	signals any
}

func (s signalsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	sse := datastar.NewSSE(w, r)
	return sse.MarshalAndPatchSignals(s.signals)
}

// Signals patches the client's signals with v marshalled as JSON.
// Keys absent from v are left untouched on the client; a nil value
// removes the signal.
func Signals(v any) Response {
	return signalsResponse{signals: v}
}
