package domain

import (
	"errors"
	"fmt"
)

// ReadError reports that a file could not be opened or read. It never ends a
// session; the caller shows the message and carries on.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error loading file: %v", e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ValidationError reports a user action that was rejected before any work
// was attempted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation messages shown to the user.
var (
	ErrEmptyQuery = &ValidationError{Message: "Please enter a search string!"}
	ErrNoDocument = &ValidationError{Message: "Please load a file first!"}
	ErrNoPath     = &ValidationError{Message: "Please choose a file first!"}
)

// ErrNotText is wrapped in a ReadError when a file does not hold text.
var ErrNotText = errors.New("file is not a text file")

// IsReadError reports whether err is or wraps a *ReadError.
func IsReadError(err error) bool {
	var re *ReadError
	return errors.As(err, &re)
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
