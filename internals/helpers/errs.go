package helper

import (
	"errors"
	"fmt"
)

// ErrNotFound marks lookups (id/slug) that matched no row. Controllers
// map it to 404.
var ErrNotFound = errors.New("not found")

// FieldError is a write-time invariant violation tied to a field.
// Controllers surface the message verbatim as a 400.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

// AsFieldError unwraps a FieldError if err carries one.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
