package models

import (
	"errors"
	"fmt"
)

// Domain error taxonomy. Storage failures are not part of it; they
// propagate opaque and must never be dressed up as one of these.
var (
	ErrTopicNotFound     = errors.New("topic not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrDuplicateVote     = errors.New("identity has already voted on this topic")
)

// ValidationError reports malformed input along with the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
