package cursor

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a cursor could not be decoded.
type ErrorKind string

const (
	Empty             ErrorKind = "empty"
	Malformed         ErrorKind = "malformed"
	InvalidPayload    ErrorKind = "invalid_payload"
	MissingField      ErrorKind = "missing_field"
	InvalidSourceType ErrorKind = "invalid_source_type"
)

// CursorError is returned by Decode and Encode.
type CursorError struct {
	Kind   ErrorKind
	Detail string
	Cause  error
}

func (e *CursorError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("invalid cursor (%s): %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("invalid cursor (%s)", e.Kind)
}

func (e *CursorError) Unwrap() error { return e.Cause }

// KindOf returns the kind of a cursor error, or "" when err is not one.
func KindOf(err error) ErrorKind {
	var cursorErr *CursorError
	if errors.As(err, &cursorErr) {
		return cursorErr.Kind
	}
	return ""
}
