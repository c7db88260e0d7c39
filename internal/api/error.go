package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error is the normalized failure produced for any non-success response.
// Message is user-facing copy (possibly rewritten, see multipart.go); Status
// is the HTTP status code; Payload keeps the raw response body for callers
// that need structured detail.
type Error struct {
	Message string
	Status  int
	Payload json.RawMessage
}

func (e *Error) Error() string {
	return e.Message
}

// httpError builds the generic transport error for a non-success status.
func httpError(status int) *Error {
	return &Error{
		Message: fmt.Sprintf("Erreur HTTP: %d", status),
		Status:  status,
	}
}

// AsError unwraps err into *Error when possible.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
