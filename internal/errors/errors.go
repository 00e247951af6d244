// Package errors holds error types shared by the packages of this module.
package errors

import (
	"errors"
	"fmt"
)

type validationError struct {
	message string
}

func (v validationError) Error() string {
	return v.message
}

// NewValidationError creates a validation error from the given format string.
func NewValidationError(msg string, v ...interface{}) error {
	return validationError{fmt.Sprintf(msg, v...)}
}

// IsValidationError tells if err (or an error it wraps) is a validation error.
func IsValidationError(err error) bool {
	var v validationError
	return errors.As(err, &v)
}
