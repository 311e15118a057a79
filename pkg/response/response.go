// Package response writes JSON bodies for plain http.Handlers (middleware,
// panics) using the same error shape as pkg/ctx.
package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the error payload returned by every endpoint.
type ErrorBody struct {
	Detail string            `json:"detail"`
	Errors map[string]string `json:"errors,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v) //nolint:errcheck
}

// Error sends {"detail": message}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Detail: message})
}

// ValidationError sends a 422 with the field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	JSON(w, http.StatusUnprocessableEntity, ErrorBody{
		Detail: "Validation failed",
		Errors: errs,
	})
}

// Truncate shortens s to at most n runes so store errors stay readable.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
