package services

import (
	"errors"
	"fmt"
)

// ErrNotFound covers logs and entries that do not exist or do not belong to
// the requesting user.
var ErrNotFound = errors.New("not found")

// ValidationError marks bad caller input (missing or non-numeric fields).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func storeErr(err error) error {
	return fmt.Errorf("activity store: %w", err)
}
