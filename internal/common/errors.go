package common

import (
	"errors"
	"strings"
)

// Sentinel errors shared across services. Handlers map these to HTTP
// status codes; services wrap them with context via fmt.Errorf + %w.
var (
	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the requester is not the owner of the entity.
	ErrForbidden = errors.New("permission denied")

	// ErrAlreadyLiked means the user already liked the photo. A repeat
	// like is rejected, it does not unlike.
	ErrAlreadyLiked = errors.New("photo already liked")
)

// ValidationError carries one or more user-facing field errors. The API
// boundary serializes the list as {"errors": [...]} instead of a single
// opaque message.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

// NewValidationError builds a ValidationError from field messages.
func NewValidationError(msgs ...string) *ValidationError {
	return &ValidationError{Errors: msgs}
}

// AsValidationError unwraps err into a *ValidationError if possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
