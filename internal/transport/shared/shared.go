// Package shared centralizes JSON and error writing for the HTTP handlers so
// every vertical produces the same envelopes.
package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "cinelog/pkg/domainerrors"
)

// ErrorResponse is the uniform error envelope. Fields enumerates every
// rejected field for validation failures and is omitted otherwise. Stack
// traces, table names, and echoed input never go in here.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// WriteJSON serializes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a coded domain error into its status and envelope.
// Plain errors collapse to a generic 500 so internals cannot leak.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	message := "internal server error"
	var e *dErrors.Error
	if errors.As(err, &e) {
		message = e.Message
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), ErrorResponse{
		Error:   string(code),
		Message: message,
		Fields:  dErrors.FieldsOf(err),
	})
}
