// Package repository implements the entity services over the document
// store: every operation is a load of the full document, an in-memory
// mutation and a conditional save. The sentinel errors below let handlers
// translate failure scenarios into HTTP statuses without inspecting
// messages.
package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a board or task id does not resolve.
// Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the caller attempts an operation on a
// resource owned by another user. Handlers should translate this into an
// HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrEmailExists is returned by signup when the normalized email is already
// registered. Handlers should translate this into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

// ErrValidation is the base of all input validation failures. Concrete
// errors wrap it with a field-level message, so handlers can test with
// errors.Is and surface err.Error() in a 400 response.
var ErrValidation = errors.New("validation failed")

func validationErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
