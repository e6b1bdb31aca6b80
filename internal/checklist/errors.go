package checklist

import (
	"errors"
	"fmt"
)

// Error variables for checklist operations.
var (
	ErrUnknownCategory    = errors.New("unknown category")
	ErrInvalidKey         = errors.New("invalid task key")
	ErrUnknownPage        = errors.New("unknown page")
	ErrManualTaskNotFound = errors.New("manual task not found")
	ErrTitleRequired      = errors.New("title is required")
	ErrFormat             = errors.New("invalid snapshot")
)

// FormatError reports a snapshot payload that is not shaped like a snapshot.
// It matches ErrFormat with errors.Is.
type FormatError struct {
	Field  string // top-level field at fault, empty for the payload itself
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := ErrFormat.Error()
	if e.Field != "" {
		msg += ": " + e.Field
	}

	msg += ": " + e.Reason

	if e.Err != nil {
		msg = fmt.Sprintf("%s (%v)", msg, e.Err)
	}

	return msg
}

// Is makes errors.Is(err, ErrFormat) true for every FormatError.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
