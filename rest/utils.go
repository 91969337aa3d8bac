package rest

import (
	"genonaut/utils/constants"
	"genonaut/utils/errors"
	"genonaut/utils/logger"

	"github.com/labstack/echo/v4"
)

// handleError converts errors to client-safe HTTP responses.
func handleError(c echo.Context, err error, operation string) error {
	requestContext := map[string]interface{}{
		"path":       c.Request().URL.Path,
		"method":     c.Request().Method,
		"request_id": c.Response().Header().Get(constants.HeaderRequestID),
	}

	var enrichedErr *errors.AppContextError
	if appContextErr, ok := errors.AsAppContextError(err); ok {
		enrichedErr = errors.EnrichWithContext(appContextErr, "rest", "RESTHandler", operation, requestContext)
	} else {
		enrichedErr = errors.NewUnknownContextError("internal server error", "rest", "RESTHandler", operation, err, requestContext)
	}

	ctx := c.Request().Context()
	attrs := []any{
		"error", enrichedErr.Error(),
		"error_code", enrichedErr.Code,
		"error_id", enrichedErr.ErrorID,
		"operation", operation,
		"path", c.Request().URL.Path,
	}
	if enrichedErr.IsClientError() {
		logger.Logger.WarnContext(ctx, "REST request rejected", attrs...)
	} else {
		logger.Logger.ErrorContext(ctx, "REST handler error", attrs...)
	}

	return c.JSON(enrichedErr.HTTPStatusCode(), enrichedErr.ToSecureHTTPResponse())
}
