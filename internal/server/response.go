package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

type envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *errorDetail `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(envelope{Data: v})
}

func writeJSONError(w http.ResponseWriter, err error) error {
	status, code := classify(err)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(envelope{Error: &errorDetail{Code: code, Message: err.Error()}})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "not_found"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// isDatastar reports whether r was sent by the datastar client, which
// expects a stream of server-sent events.
func isDatastar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
		return true
	}
	if r.Header.Get("Datastar-Request") == "true" {
		return true
	}
	return r.URL.Query().Has("datastar")
}

func writeHTML(w http.ResponseWriter, r *http.Request, status int, c templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return c.Render(r.Context(), w)
}

type patch struct {
	component templ.Component
	opts      []datastar.PatchElementOption
}

// writePatches streams element patches and, when signals is not nil, a
// signal patch.
func writePatches(w http.ResponseWriter, r *http.Request, signals any, patches ...patch) error {
	sse := datastar.NewSSE(w, r)
	for _, p := range patches {
		if err := sse.PatchElementTempl(p.component, p.opts...); err != nil {
			return err
		}
	}
	if signals == nil {
		return nil
	}
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return sse.PatchSignals(data)
}
