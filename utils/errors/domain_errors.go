package errors

import (
	"errors"

	"genonaut/domain"
	"genonaut/utils/cursor"
)

// FromDomainError converts an engine error into an AppContextError, keeping it as the cause.
// Errors that already are AppContextErrors are enriched rather than replaced.
func FromDomainError(err error, layer, component, operation string) *AppContextError {
	if err == nil {
		return nil
	}

	if appErr, ok := AsAppContextError(err); ok {
		return EnrichWithContext(appErr, layer, component, operation, nil)
	}

	var (
		cursorErr  *cursor.CursorError
		filterErr  *domain.FilterValidationError
		timeoutErr *domain.StoreTimeoutError
	)
	switch {
	case errors.As(err, &cursorErr):
		return NewCursorContextError(cursorErr.Error(), layer, component, operation, err,
			map[string]interface{}{"kind": string(cursorErr.Kind)})
	case errors.As(err, &filterErr):
		return NewFilterValidationContextError(filterErr.Error(), layer, component, operation, err,
			map[string]interface{}{"kind": string(filterErr.Kind), "field": filterErr.Field})
	case errors.Is(err, domain.ErrInvalidPagination), errors.Is(err, domain.ErrInvalidTagLink):
		return NewUnprocessableContextError(err.Error(), layer, component, operation, err, nil)
	case errors.Is(err, domain.ErrContentNotFound):
		return NewNotFoundContextError("content not found", layer, component, operation, err, nil)
	case errors.As(err, &timeoutErr):
		return NewTimeoutContextError("statement timeout exceeded", layer, component, operation, err,
			map[string]interface{}{"store_op": timeoutErr.Op})
	default:
		return NewDatabaseContextError("content store failure", layer, component, operation, err, nil)
	}
}
