package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPagination covers out-of-range page and page_size values.
	ErrInvalidPagination = errors.New("invalid pagination parameters")

	// ErrInvalidTagLink is returned by the tag write path for malformed links.
	ErrInvalidTagLink = errors.New("invalid content tag link")

	// ErrContentNotFound means a write targeted a record that does not exist.
	ErrContentNotFound = errors.New("content not found")
)

// FilterValidationKind enumerates the caller mistakes a filter can contain.
type FilterValidationKind string

const (
	UnknownSourceToken       FilterValidationKind = "unknown_source_token"
	UnknownLegacyValue       FilterValidationKind = "unknown_legacy_value"
	UnknownSortField         FilterValidationKind = "unknown_sort_field"
	CursorUnsupportedForSort FilterValidationKind = "cursor_unsupported_for_sort"
)

// FilterValidationError names the offending value so it can be reported back verbatim.
type FilterValidationError struct {
	Kind  FilterValidationKind
	Field string
	Value string
}

func (e *FilterValidationError) Error() string {
	switch e.Kind {
	case UnknownSourceToken:
		return fmt.Sprintf("invalid content source type %q", e.Value)
	case UnknownSortField:
		return fmt.Sprintf("unsupported sort field %q", e.Value)
	case CursorUnsupportedForSort:
		return fmt.Sprintf("cursor pagination is not available when sorting by %q", e.Value)
	default:
		return fmt.Sprintf("invalid value %q for %s", e.Value, e.Field)
	}
}

// StoreTimeoutError means the statement budget was exhausted.
type StoreTimeoutError struct {
	Op    string
	Cause error
}

func (e *StoreTimeoutError) Error() string {
	return fmt.Sprintf("%s: statement timeout exceeded: %v", e.Op, e.Cause)
}

func (e *StoreTimeoutError) Unwrap() error { return e.Cause }

// StoreError is any other failure of the backing store.
type StoreError struct {
	Op    string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *StoreError) Unwrap() error { return e.Cause }

// IsStoreTimeout reports whether err carries a StoreTimeoutError.
func IsStoreTimeout(err error) bool {
	var timeoutErr *StoreTimeoutError
	return errors.As(err, &timeoutErr)
}
