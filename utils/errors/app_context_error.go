// Package errors provides structured error handling for the genonaut service.
// Errors carry a code, the Clean Architecture layer they were raised in and
// free-form context; only a sanitised message ever reaches clients.
package errors

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// Error codes shared across layers.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeUnprocessable    = "UNPROCESSABLE_ENTITY"
	CodeCursor           = "CURSOR_ERROR"
	CodeFilterValidation = "FILTER_VALIDATION_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeRateLimit        = "RATE_LIMIT_ERROR"
	CodeTimeout          = "TIMEOUT_ERROR"
	CodeDatabase         = "DATABASE_ERROR"
	CodeUnknown          = "UNKNOWN_ERROR"
)

// AppContextError represents an error with rich context information
type AppContextError struct {
	ErrorID   string                 `json:"error_id"`
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Layer     string                 `json:"layer,omitempty"`     // rest, usecase, gateway, driver
	Component string                 `json:"component,omitempty"` // Specific component/service name
	Operation string                 `json:"operation,omitempty"` // Specific operation/method name
	Cause     error                  `json:"-"`
	Context   map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *AppContextError) Error() string {
	var prefix string
	if e.Layer != "" && e.Component != "" && e.Operation != "" {
		prefix = fmt.Sprintf("[%s:%s:%s] ", e.Layer, e.Component, e.Operation)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %s (caused by: %v)", prefix, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s%s: %s", prefix, e.Code, e.Message)
}

// Unwrap returns the underlying error for error chain unwrapping
func (e *AppContextError) Unwrap() error {
	return e.Cause
}

// HTTPStatusCode maps error codes to HTTP status codes
func (e *AppContextError) HTTPStatusCode() int {
	switch e.Code {
	case CodeValidation, CodeCursor, CodeFilterValidation:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnprocessable:
		return http.StatusUnprocessableEntity
	case CodeRateLimit:
		return http.StatusTooManyRequests
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// IsClientError reports whether the caller caused the error.
func (e *AppContextError) IsClientError() bool {
	status := e.HTTPStatusCode()
	return status >= 400 && status < 500
}

// SafeMessage returns a message that is safe to show to clients.
// Client errors echo the message because it only names the caller's own input.
func (e *AppContextError) SafeMessage() string {
	if e.IsClientError() {
		return e.Message
	}
	switch e.Code {
	case CodeTimeout:
		return "the query took too long to complete, narrow the filters and retry"
	default:
		return "internal server error"
	}
}

// SecureHTTPResponse is the only error body sent to clients.
type SecureHTTPResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
	ErrorID string `json:"error_id,omitempty"`
}

// ToSecureHTTPResponse converts the error into a client-safe body.
func (e *AppContextError) ToSecureHTTPResponse() SecureHTTPResponse {
	return SecureHTTPResponse{
		Error:   "error",
		Code:    e.Code,
		Message: e.SafeMessage(),
		ErrorID: e.ErrorID,
	}
}

// NewAppContextError creates a new AppContextError with full context
func NewAppContextError(
	code, message, layer, component, operation string,
	cause error,
	context map[string]interface{},
) *AppContextError {
	if context == nil {
		context = make(map[string]interface{})
	}

	return &AppContextError{
		ErrorID:   uuid.NewString(),
		Code:      code,
		Message:   message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     cause,
		Context:   context,
	}
}

// EnrichWithContext creates a new AppContextError by enriching an existing error with additional context
func EnrichWithContext(
	err *AppContextError,
	layer, component, operation string,
	additionalContext map[string]interface{},
) *AppContextError {
	mergedContext := make(map[string]interface{}, len(err.Context)+len(additionalContext))
	for k, v := range err.Context {
		mergedContext[k] = v
	}
	for k, v := range additionalContext {
		mergedContext[k] = v
	}

	return &AppContextError{
		ErrorID:   err.ErrorID,
		Code:      err.Code,
		Message:   err.Message,
		Layer:     layer,
		Component: component,
		Operation: operation,
		Cause:     err.Cause,
		Context:   mergedContext,
	}
}

func withType(context map[string]interface{}, errorType string) map[string]interface{} {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["error_type"] = errorType
	return context
}

// NewDatabaseContextError creates a database error with context
func NewDatabaseContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeDatabase, message, layer, component, operation, cause, withType(context, "database"))
}

// NewTimeoutContextError creates a timeout error with context
func NewTimeoutContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeTimeout, message, layer, component, operation, cause, withType(context, "timeout"))
}

// NewValidationContextError creates a validation error with context
func NewValidationContextError(message, layer, component, operation string, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeValidation, message, layer, component, operation, nil, withType(context, "validation"))
}

// NewUnprocessableContextError is used for well-formed requests with out-of-range parameters.
func NewUnprocessableContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeUnprocessable, message, layer, component, operation, cause, withType(context, "validation"))
}

// NewCursorContextError wraps a cursor decoding failure.
func NewCursorContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeCursor, message, layer, component, operation, cause, withType(context, "cursor"))
}

// NewFilterValidationContextError wraps an invalid filter value.
func NewFilterValidationContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeFilterValidation, message, layer, component, operation, cause, withType(context, "filter_validation"))
}

// NewNotFoundContextError reports a missing resource.
func NewNotFoundContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeNotFound, message, layer, component, operation, cause, withType(context, "not_found"))
}

// NewUnauthorizedContextError rejects a caller that failed service authentication.
func NewUnauthorizedContextError(message, layer, component, operation string, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeUnauthorized, message, layer, component, operation, nil, withType(context, "unauthorized"))
}

// NewRateLimitContextError creates a rate limit error with context
func NewRateLimitContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeRateLimit, message, layer, component, operation, cause, withType(context, "rate_limit"))
}

// NewUnknownContextError creates an unknown error with context
func NewUnknownContextError(message, layer, component, operation string, cause error, context map[string]interface{}) *AppContextError {
	return NewAppContextError(CodeUnknown, message, layer, component, operation, cause, withType(context, "unknown"))
}
