package graphio

import (
	"errors"
	"fmt"
)

// Sentinel errors for load and save.
var (
	// ErrMalformedInput is matched by every *MalformedInputError.
	ErrMalformedInput = errors.New("graphio: malformed input")

	// ErrIO wraps failures to read or write the persisted destination.
	ErrIO = errors.New("graphio: i/o failure")
)

// MalformedInputError describes the first bad row of a persisted source.
// Line is 1-based and counts the header for CSV input; for snapshots it is
// the 1-based record index.
type MalformedInputError struct {
	Line   int
	Field  string
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	msg := fmt.Sprintf("graphio: malformed input at line %d", e.Line)
	if e.Field != "" {
		msg += fmt.Sprintf(" (%s)", e.Field)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes the underlying cause, if any.
func (e *MalformedInputError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrMalformedInput) hold.
func (e *MalformedInputError) Is(target error) bool { return target == ErrMalformedInput }

func malformed(line int, field, reason string, cause error) error {
	return &MalformedInputError{Line: line, Field: field, Reason: reason, Err: cause}
}

func ioFailure(op, path string, cause error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrIO, op, path, cause)
}
