package errors

import (
	"errors"
)

// Sentinel errors usable with errors.Is across layers.
var (
	ErrDatabaseUnavailable = errors.New("database unavailable")
	ErrOperationTimeout    = errors.New("operation timeout")
	ErrInvalidInput        = errors.New("invalid input")
)

// IsDatabaseError checks if an error represents a database-related problem
func IsDatabaseError(err error) bool {
	return errors.Is(err, ErrDatabaseUnavailable)
}

// IsTimeoutError checks if an error represents a timeout condition
func IsTimeoutError(err error) bool {
	return errors.Is(err, ErrOperationTimeout)
}

// IsValidationError checks if an error represents invalid input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// AsAppContextError extracts the outermost AppContextError in err's chain.
func AsAppContextError(err error) (*AppContextError, bool) {
	var appErr *AppContextError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
