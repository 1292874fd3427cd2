package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// maxBodyBytes bounds request bodies; RSVP submissions are a few dozen bytes.
const maxBodyBytes = 1 << 16

// Validator is implemented by request DTOs that support validation.
// Validate returns a slice of error messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate decodes the request body into dest (with DisallowUnknownFields),
// rejects anything after the first JSON value and, if dest implements Validator, runs Validate(). On decode or validation failure
// it writes an empty 400 and returns the messages; otherwise returns nil.
// Callers should return immediately when the result is non-nil.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) []string {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteStatus(w, http.StatusBadRequest)
		return []string{err.Error()}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		WriteStatus(w, http.StatusBadRequest)
		return []string{"request body must contain a single JSON object"}
	}
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			WriteStatus(w, http.StatusBadRequest)
			return errs
		}
	}
	return nil
}
