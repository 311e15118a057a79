// Package bind decodes and validates an HTTP request body into a struct.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/shashiranjanraj/foodshop/config"
	"github.com/shashiranjanraj/foodshop/pkg/validate"
)

// ErrEmptyBody is returned when a body is required but none was sent.
var ErrEmptyBody = errors.New("request body is empty")

var errTrailingData = errors.New("unexpected data after top-level value")

// JSON decodes r.Body as JSON into dest and runs validation.
// The body is capped at MAX_BODY_BYTES (default 4 MB).
// Returns (errs, nil) when there are validation failures.
// Returns (nil, err) when the body is empty, malformed or too large.
func JSON(r *http.Request, dest interface{}) (validate.Errors, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, config.MaxBodyBytes())

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyBody
		}
		return nil, decodeError(err)
	}
	// The body must hold exactly one JSON value.
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		return nil, decodeError(err)
	}

	if errs := validate.Struct(dest); validate.HasErrors(errs) {
		return errs, nil
	}
	return nil, nil
}

func decodeError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
	}
	return fmt.Errorf("invalid JSON: %w", err)
}
