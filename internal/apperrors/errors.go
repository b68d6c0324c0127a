// Package apperrors defines the typed errors shared across the
// application so callers can distinguish lookup misses, rejected input
// and unreadable workbooks without string matching.
package apperrors

import (
	"errors"
	"fmt"
)

// NotFoundError reports a record lookup by id that matched nothing.
type NotFoundError struct {
	Kind string
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s record %d not found", e.Kind, e.ID)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ValidationError reports a field that failed strict input validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ImportError wraps a failure to read or parse an import file. The
// original cause stays reachable through Unwrap.
type ImportError struct {
	FilePath string
	Err      error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("cannot import %s: %v", e.FilePath, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
